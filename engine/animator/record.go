package animator

import (
	"github.com/google/uuid"

	"github.com/K0rnli/rift-rewind/engine/scene"
)

// ClipInfo is a summary of one clip available on an instance.
type ClipInfo struct {
	// Name is the clip name.
	Name string

	// Duration is the clip length in seconds.
	Duration float32

	// Tracks is the number of keyframe tracks the clip carries.
	Tracks int
}

// Record is the per-instance animation bookkeeping: the clips the instance
// owns, an action per clip, and the current playback status. A record exists
// for every registered instance even when it has no clips.
type Record struct {
	// ObjectID is the ID of the instance's root object.
	ObjectID uuid.UUID

	// ObjectName is the instance name, for logs and introspection.
	ObjectName string

	// Clips summarizes the instance's clips in registration order.
	Clips []ClipInfo

	// IsPlaying reports whether the current action is actively advancing.
	IsPlaying bool

	// IsLooping reports whether the current action repeats.
	IsLooping bool

	// PlaybackSpeed is the time scale of the current action.
	PlaybackSpeed float32

	target  *scene.Object
	actions map[string]*Action
	current *Action
}

// Current returns the record's active action, or nil when nothing has been
// played or posed yet.
func (r *Record) Current() *Action {
	return r.current
}

// Action returns the action for an exact clip name.
//
// Parameters:
//   - clipName: the exact clip name
//
// Returns:
//   - *Action: the action, or nil when no such clip exists
func (r *Record) Action(clipName string) *Action {
	return r.actions[clipName]
}

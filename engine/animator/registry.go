package animator

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/K0rnli/rift-rewind/engine/model"
	"github.com/K0rnli/rift-rewind/engine/scene"
)

// Registry owns the animation records of every registered instance and drives
// their playback. Each instance gets its own cloned clips, so posing or
// playing one clone never disturbs another clone of the same asset.
// Thread-safe for concurrent access.
type Registry interface {
	// Register creates the animation record for an instance. The clips are
	// cloned so the record owns independent keyframe data. A record is created
	// even when clips is empty; playback calls on it are no-ops.
	//
	// Parameters:
	//   - obj: the instance's root object, posed in place by sampling
	//   - instanceName: the instance name, for logs and introspection
	//   - clips: the clips imported with the instance's asset
	//
	// Returns:
	//   - *Record: the new record
	Register(obj *scene.Object, instanceName string, clips []model.AnimationClip) *Record

	// Record returns the record for an object ID, or nil.
	Record(objectID uuid.UUID) *Record

	// Remove drops an instance's record.
	Remove(objectID uuid.UUID)

	// FindClipName resolves a clip name fuzzily: exact match ignoring case
	// first, then bidirectional substring containment, in registration order.
	//
	// Parameters:
	//   - objectID: the instance to search
	//   - searchName: the requested clip name
	//
	// Returns:
	//   - string: the resolved exact clip name
	//   - bool: whether a clip matched
	FindClipName(objectID uuid.UUID, searchName string) (string, bool)

	// HasClip reports whether the instance has a clip matching the name,
	// using the same fuzzy resolution as FindClipName.
	HasClip(objectID uuid.UUID, searchName string) bool

	// ClipsFor returns the instance's clip summaries, nil for unknown IDs.
	ClipsFor(objectID uuid.UUID) []ClipInfo

	// Play starts a clip from the beginning, stopping whatever action was
	// current first.
	//
	// Parameters:
	//   - objectID: the instance to play on
	//   - clipName: the clip name, resolved fuzzily
	//   - loop: repeat forever when true, play once when false
	//   - speed: the playback time scale
	//
	// Returns:
	//   - bool: whether the instance and clip were found
	Play(objectID uuid.UUID, clipName string, loop bool, speed float32) bool

	// Pause freezes the current action in place.
	Pause(objectID uuid.UUID)

	// Resume unfreezes a paused action.
	Resume(objectID uuid.UUID)

	// Stop halts the current action and clears it.
	Stop(objectID uuid.UUID)

	// SetSpeed changes the current action's time scale.
	SetSpeed(objectID uuid.UUID, speed float32)

	// Progress returns the current action's normalized position in [0, 1].
	// Instances with no current action, and clips with zero duration,
	// report 0.
	Progress(objectID uuid.UUID) float32

	// SetProgress jumps the current action to a normalized position and
	// re-samples the pose.
	SetProgress(objectID uuid.UUID, progress float32)

	// PoseAt freezes the instance on a clip at a normalized progress. The
	// action is reset to one-shot playback at unit speed, moved to the
	// requested time, applied, and immediately paused; the record reports
	// not playing afterwards.
	//
	// Parameters:
	//   - objectID: the instance to pose
	//   - clipName: the clip name, resolved fuzzily
	//   - progress: normalized position in [0, 1]
	//
	// Returns:
	//   - bool: whether the instance and clip were found
	PoseAt(objectID uuid.UUID, clipName string, progress float32) bool

	// ConfigureAction sets loop mode and speed on a clip's action without
	// starting it.
	//
	// Parameters:
	//   - objectID: the instance
	//   - clipName: the clip name, resolved fuzzily
	//   - loop: repeat forever when true
	//   - speed: the playback time scale
	//
	// Returns:
	//   - bool: whether the instance and clip were found
	ConfigureAction(objectID uuid.UUID, clipName string, loop bool, speed float32) bool

	// AdvanceAll steps every running action by dt seconds and re-samples the
	// affected poses.
	//
	// Parameters:
	//   - dt: the elapsed time in seconds
	AdvanceAll(dt float32)
}

type animRegistry struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Record
	log     zerolog.Logger
}

var _ Registry = &animRegistry{}

// NewRegistry creates an empty animation Registry.
//
// Parameters:
//   - opts: optional RegistryBuilderOption configuration
//
// Returns:
//   - Registry: the new registry
func NewRegistry(opts ...RegistryBuilderOption) Registry {
	r := &animRegistry{
		records: make(map[uuid.UUID]*Record),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *animRegistry) Register(obj *scene.Object, instanceName string, clips []model.AnimationClip) *Record {
	rec := &Record{
		ObjectID:      obj.ID,
		ObjectName:    instanceName,
		PlaybackSpeed: 1.0,
		target:        obj,
		actions:       make(map[string]*Action, len(clips)),
	}
	for i := range clips {
		clip := clips[i].Clone()
		rec.Clips = append(rec.Clips, ClipInfo{
			Name:     clip.Name,
			Duration: clip.Duration,
			Tracks:   clip.TrackCount(),
		})
		rec.actions[clip.Name] = newAction(clip)
	}
	r.mu.Lock()
	r.records[obj.ID] = rec
	r.mu.Unlock()
	r.log.Debug().
		Str("instance", instanceName).
		Int("clips", len(rec.Clips)).
		Msg("registered animation record")
	return rec
}

func (r *animRegistry) Record(objectID uuid.UUID) *Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[objectID]
}

func (r *animRegistry) Remove(objectID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, objectID)
}

func (r *animRegistry) FindClipName(objectID uuid.UUID, searchName string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec := r.records[objectID]
	if rec == nil {
		return "", false
	}
	return findClipName(rec, searchName)
}

// findClipName is the fuzzy resolver shared by lookup and playback paths.
// Callers hold at least a read lock.
func findClipName(rec *Record, searchName string) (string, bool) {
	searchLower := strings.ToLower(searchName)
	for _, info := range rec.Clips {
		if strings.ToLower(info.Name) == searchLower {
			return info.Name, true
		}
	}
	for _, info := range rec.Clips {
		nameLower := strings.ToLower(info.Name)
		if strings.Contains(nameLower, searchLower) || strings.Contains(searchLower, nameLower) {
			return info.Name, true
		}
	}
	return "", false
}

func (r *animRegistry) HasClip(objectID uuid.UUID, searchName string) bool {
	_, ok := r.FindClipName(objectID, searchName)
	return ok
}

func (r *animRegistry) ClipsFor(objectID uuid.UUID) []ClipInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec := r.records[objectID]
	if rec == nil {
		return nil
	}
	out := make([]ClipInfo, len(rec.Clips))
	copy(out, rec.Clips)
	return out
}

func (r *animRegistry) Play(objectID uuid.UUID, clipName string, loop bool, speed float32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[objectID]
	if rec == nil {
		return false
	}
	name, ok := findClipName(rec, clipName)
	if !ok {
		r.log.Debug().Str("instance", rec.ObjectName).Str("clip", clipName).Msg("clip not found")
		return false
	}
	act := rec.actions[name]
	if rec.current != nil {
		rec.current.stop()
	}
	act.reset()
	act.loop = loop
	act.timeScale = speed
	act.play()
	rec.current = act
	rec.IsPlaying = true
	rec.IsLooping = loop
	rec.PlaybackSpeed = speed
	samplePose(rec.target, act.clip, act.time)
	return true
}

func (r *animRegistry) Pause(objectID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[objectID]
	if rec == nil || rec.current == nil {
		return
	}
	rec.current.paused = true
	rec.IsPlaying = false
}

func (r *animRegistry) Resume(objectID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[objectID]
	if rec == nil || rec.current == nil {
		return
	}
	rec.current.paused = false
	rec.IsPlaying = true
}

func (r *animRegistry) Stop(objectID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[objectID]
	if rec == nil || rec.current == nil {
		return
	}
	rec.current.stop()
	rec.current = nil
	rec.IsPlaying = false
}

func (r *animRegistry) SetSpeed(objectID uuid.UUID, speed float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[objectID]
	if rec == nil || rec.current == nil {
		return
	}
	rec.current.timeScale = speed
	rec.PlaybackSpeed = speed
}

func (r *animRegistry) Progress(objectID uuid.UUID) float32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec := r.records[objectID]
	if rec == nil || rec.current == nil || rec.current.clip == nil {
		return 0
	}
	duration := rec.current.clip.Duration
	if duration <= 0 {
		return 0
	}
	return rec.current.time / duration
}

func (r *animRegistry) SetProgress(objectID uuid.UUID, progress float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[objectID]
	if rec == nil || rec.current == nil || rec.current.clip == nil {
		return
	}
	act := rec.current
	act.time = progress * act.clip.Duration
	samplePose(rec.target, act.clip, act.time)
}

func (r *animRegistry) PoseAt(objectID uuid.UUID, clipName string, progress float32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[objectID]
	if rec == nil {
		return false
	}
	name, ok := findClipName(rec, clipName)
	if !ok {
		r.log.Debug().Str("instance", rec.ObjectName).Str("clip", clipName).Msg("clip not found")
		return false
	}
	act := rec.actions[name]
	if rec.current != nil && rec.current != act {
		rec.current.stop()
	}
	act.reset()
	act.loop = false
	act.timeScale = 1.0
	act.time = progress * act.clip.Duration
	act.play()
	act.paused = true
	rec.current = act
	rec.IsPlaying = false
	samplePose(rec.target, act.clip, act.time)
	return true
}

func (r *animRegistry) ConfigureAction(objectID uuid.UUID, clipName string, loop bool, speed float32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[objectID]
	if rec == nil {
		return false
	}
	name, ok := findClipName(rec, clipName)
	if !ok {
		return false
	}
	act := rec.actions[name]
	act.loop = loop
	act.timeScale = speed
	if rec.current == act {
		rec.IsLooping = loop
		rec.PlaybackSpeed = speed
	}
	return true
}

func (r *animRegistry) AdvanceAll(dt float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		act := rec.current
		if act == nil || !act.Running() {
			continue
		}
		act.advance(dt)
		samplePose(rec.target, act.clip, act.time)
		if !act.running {
			rec.IsPlaying = false
		}
	}
}

package state

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/K0rnli/rift-rewind/engine/catalog"
	"github.com/K0rnli/rift-rewind/engine/scene"
)

// Poser applies animation pose directives to registered objects. The animator
// registry satisfies this.
type Poser interface {
	// PoseAt freezes the object on a clip at a normalized progress.
	//
	// Parameters:
	//   - objectID: the posed object's ID
	//   - clipName: the clip name, resolved fuzzily
	//   - progress: normalized position in [0, 1]
	//
	// Returns:
	//   - bool: whether the object and clip were found
	PoseAt(objectID uuid.UUID, clipName string, progress float32) bool

	// ConfigureAction sets loop mode and playback speed on a clip's action.
	//
	// Parameters:
	//   - objectID: the object's ID
	//   - clipName: the clip name, resolved fuzzily
	//   - loop: repeat forever when true, play once when false
	//   - speed: the playback time scale
	//
	// Returns:
	//   - bool: whether the object and clip were found
	ConfigureAction(objectID uuid.UUID, clipName string, loop bool, speed float32) bool
}

// Applier drives objects into named visual states: per-part visibility plus
// an optional animation pose. Applying a state an instance's type does not
// declare is a silent no-op, so callers can apply states speculatively.
type Applier interface {
	// Apply puts the object into the named state.
	//
	// Parameters:
	//   - obj: the object to mutate
	//   - instanceName: the instance name, used to classify the model type
	//   - stateName: the state to apply
	Apply(obj *scene.Object, instanceName, stateName string)
}

type applier struct {
	matcher Matcher
	poser   Poser
	log     zerolog.Logger
}

var _ Applier = &applier{}

// NewApplier creates an Applier with fuzzy part matching.
//
// Parameters:
//   - opts: optional ApplierBuilderOption configuration
//
// Returns:
//   - Applier: the new applier
func NewApplier(opts ...ApplierBuilderOption) Applier {
	a := &applier{
		matcher: NewFuzzyMatcher(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *applier) Apply(obj *scene.Object, instanceName, stateName string) {
	if obj == nil {
		return
	}
	modelType := catalog.ModelTypeOf(instanceName)
	states := catalog.StatesFor(modelType)
	if states == nil {
		return
	}
	cfg, ok := states[stateName]
	if !ok {
		return
	}

	keys := make([]string, 0, len(cfg.Parts))
	for key := range cfg.Parts {
		keys = append(keys, key)
	}

	obj.Traverse(func(child *scene.Object) {
		if !child.IsMesh && len(child.Children) == 0 {
			return
		}
		key, matched := a.matcher.Match(child.Name, child.MaterialName, keys)
		if matched {
			child.Visible = cfg.Parts[key]
			return
		}
		// Parts the state does not mention stay visible.
		child.Visible = true
	})

	if cfg.Animation == nil {
		return
	}
	if a.poser == nil {
		a.log.Debug().Str("instance", instanceName).Str("state", stateName).Msg("no poser configured, skipping animation directive")
		return
	}
	directive := cfg.Animation
	if !a.poser.PoseAt(obj.ID, directive.Clip, directive.Progress) {
		a.log.Debug().
			Str("instance", instanceName).
			Str("clip", directive.Clip).
			Msg("no animation data for object")
		return
	}
	a.poser.ConfigureAction(obj.ID, directive.Clip, directive.Loop, directive.Speed)
}

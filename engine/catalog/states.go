package catalog

// AnimationDirective describes the pose a state holds: which clip, how far
// into it, and how the action is configured if playback is started.
type AnimationDirective struct {
	// Clip is the clip name to resolve (fuzzily) against the instance's
	// registered clips.
	Clip string

	// Progress is the normalized pose position in [0, 1].
	Progress float32

	// Loop selects repeat-forever playback when the action runs.
	Loop bool

	// Speed is the playback time scale.
	Speed float32
}

// StateConfig is one named visual state of a model type: a mapping from
// sub-part identifier (mesh or material name, matched fuzzily) to visibility,
// plus an optional animation pose.
type StateConfig struct {
	// Parts maps mesh/material name keys to visibility.
	Parts map[string]bool

	// Animation is the pose directive, nil when the state has none.
	Animation *AnimationDirective
}

// StateDefault is the state every configured model type must define.
const StateDefault = "default"

// StateDestroyed is the terminal visual state for structures.
const StateDestroyed = "destroyed"

// StateDeath is the terminal visual state for monsters and players.
const StateDeath = "death"

// StatesFor returns the named states declared for a model type. Types with no
// declared states return nil; instances of such types simply stay as loaded.
//
// Parameters:
//   - modelType: the model type name
//
// Returns:
//   - map[string]StateConfig: state name to configuration, or nil
func StatesFor(modelType string) map[string]StateConfig {
	return modelStates[modelType]
}

// dragonStates builds the shared state table for all dragon variants. Every
// dragon asset shares mesh/material naming and clip names.
func dragonStates() map[string]StateConfig {
	return map[string]StateConfig{
		StateDefault: {
			Parts: map[string]bool{
				"MAT_Dragon":         true,
				"Dragon_RG_Default1": true,
			},
			Animation: &AnimationDirective{Clip: "Run", Progress: 0.53, Loop: true, Speed: 1.0},
		},
		StateDeath: {
			Parts: map[string]bool{
				"MAT_Dragon":         true,
				"Dragon_RG_Default1": true,
			},
			Animation: &AnimationDirective{Clip: "Death", Progress: 1.0, Speed: 1.0},
		},
	}
}

var modelStates = map[string]map[string]StateConfig{
	"Blue Turret": {
		StateDefault: {
			Parts: map[string]bool{
				"Stage1":                 false,
				"Stage2":                 false,
				"Stage3":                 false,
				"SRUAP_OrderTurret1_Mat": true,
			},
		},
		StateDestroyed: {
			Parts: map[string]bool{
				"Stage1":                 false,
				"Stage2":                 false,
				"Stage3":                 true,
				"SRUAP_OrderTurret1_Mat": false,
			},
		},
	},
	"Red Turret": {
		StateDefault: {
			Parts: map[string]bool{
				"Cloth1":                 true,
				"Cloth2":                 true,
				"Stage1":                 false,
				"Stage2":                 false,
				"SRUAP_ChaosTurret1_Mat": true,
				"Rubble":                 false,
			},
		},
		StateDestroyed: {
			Parts: map[string]bool{
				"Cloth1":                 false,
				"Cloth2":                 false,
				"Stage1":                 false,
				"Stage2":                 false,
				"SRUAP_ChaosTurret1_Mat": false,
				"Rubble":                 true,
			},
		},
		"damaged": {
			Parts: map[string]bool{
				"Cloth1":                 true,
				"Cloth2":                 true,
				"Stage1":                 true,
				"Stage2":                 false,
				"SRUAP_ChaosTurret1_Mat": true,
				"Rubble":                 false,
			},
			Animation: &AnimationDirective{Clip: "Damage", Progress: 0.3, Speed: 1.0},
		},
	},
	"Blue Nexus": {
		StateDefault: {
			Parts: map[string]bool{
				"destroyed":            false,
				"SRUAP_OrderNexus_Mat": true,
			},
			Animation: &AnimationDirective{Clip: "Idle1_base", Progress: 0.1, Loop: true, Speed: 0.5},
		},
		StateDestroyed: {
			Parts: map[string]bool{
				"destroyed":            true,
				"SRUAP_OrderNexus_Mat": false,
			},
			Animation: &AnimationDirective{Clip: "Death", Progress: 0.54, Speed: 1.0},
		},
	},
	"Red Nexus": {
		StateDefault: {
			Parts: map[string]bool{
				"destroyed":            false,
				"SRUAP_ChaosNexus_Mat": true,
			},
			Animation: &AnimationDirective{Clip: "Idle", Progress: 0.0, Loop: true, Speed: 0.5},
		},
		StateDestroyed: {
			Parts: map[string]bool{
				"Destroyed":            true,
				"SRUAP_ChaosNexus_Mat": false,
			},
			Animation: &AnimationDirective{Clip: "Death", Progress: 0.54, Speed: 1.0},
		},
	},
	"Blue Inhibitor": {
		StateDefault: {
			Parts: map[string]bool{
				"Destroyed":           false,
				"pally_inhib_texture": true,
			},
			Animation: &AnimationDirective{Clip: "Idle_Normal1", Progress: 0.0, Loop: true, Speed: 0.3},
		},
		StateDestroyed: {
			Parts: map[string]bool{
				"Destroyed":           true,
				"pally_inhib_texture": false,
			},
			Animation: &AnimationDirective{Clip: "Death_Base", Progress: 0.12, Speed: 1.0},
		},
	},
	"Red Inhibitor": {
		StateDefault: {
			Parts: map[string]bool{
				"Destroyed":                false,
				"SRUAP_OrderInhibitor_Mat": true,
			},
			Animation: &AnimationDirective{Clip: "Idle_Normal1", Progress: 0.0, Loop: true, Speed: 0.3},
		},
		StateDestroyed: {
			Parts: map[string]bool{
				"SRUAP_ChaosInhibitor_Mat": false,
				"Destroyed":                true,
			},
			Animation: &AnimationDirective{Clip: "Death_Base", Progress: 0.12, Speed: 1.0},
		},
	},
	"Baron": {
		StateDefault: {
			Parts: map[string]bool{
				"Shield": true,
				"Body":   true,
				"Horn":   false,
				"Eye":    false,
			},
			Animation: &AnimationDirective{Clip: "Attack2", Progress: 0.94, Loop: true, Speed: 1.0},
		},
		StateDeath: {
			Parts: map[string]bool{
				"Shield": true,
				"Body":   true,
				"Horn":   false,
				"Eye":    false,
			},
			Animation: &AnimationDirective{Clip: "Death", Progress: 0.76, Speed: 1.0},
		},
	},
	"Rift Herald": {
		StateDefault: {
			Parts: map[string]bool{
				"RiftHerald_Mat": true,
			},
			Animation: &AnimationDirective{Clip: "Spawn", Progress: 1.0, Loop: true, Speed: 1.0},
		},
		StateDeath: {
			Parts: map[string]bool{
				"RiftHerald_Mat": true,
			},
			Animation: &AnimationDirective{Clip: "Death", Progress: 0.57, Speed: 1.0},
		},
	},
	"Void Grub": {
		StateDefault: {
			Parts: map[string]bool{
				"Big_Grubby_Mat1": true,
			},
			Animation: &AnimationDirective{Clip: "IdleVar1", Progress: 0.0, Loop: true, Speed: 1.0},
		},
		StateDeath: {
			Parts: map[string]bool{
				"Big_Grubby_Mat1": true,
			},
			Animation: &AnimationDirective{Clip: "Death1", Progress: 0.51, Speed: 1.0},
		},
	},
	"Dragon Air":      dragonStates(),
	"Dragon Earth":    dragonStates(),
	"Dragon Fire":     dragonStates(),
	"Dragon Water":    dragonStates(),
	"Dragon Chemtech": dragonStates(),
	"Dragon Hextech":  dragonStates(),
	"Dragon Elder":    dragonStates(),
	"Player": {
		StateDefault: {
			Animation: &AnimationDirective{Clip: "Laugh", Progress: 0.0, Loop: true, Speed: 0.5},
		},
		StateDeath: {
			Animation: &AnimationDirective{Clip: "Death", Progress: 0.88, Speed: 1.0},
		},
	},
}

package catalog

import (
	"strconv"
	"strings"
)

// InstancePlacement is one named placement of a fan-out model type.
type InstancePlacement struct {
	// Name is the unique instance name ("Blue Turret Top Tier 1").
	Name string

	// Position is the world position of the instance.
	Position [3]float32

	// Rotation is the instance rotation in degrees.
	Rotation [3]float32
}

/// ModelConfig describes one catalog model type: where its asset lives and
// where its instances stand on the map. A config either places a single
// instance at Position/Rotation (Instances empty) or fans out one clone per
// entry in Instances.
type ModelConfig struct {
	// Name is the model type name ("Blue Turret", "Baron").
	Name string

	// Asset is the asset path relative to the asset source root.
	Asset string

	// Position is the world position for single-instance types.
	Position [3]float32

	// Rotation is the rotation in degrees for single-instance types.
	Rotation [3]float32

	// Scale is the instance scale. Zero means unit scale.
	Scale [3]float32

	// Instances lists named placements for fan-out types.
	Instances []InstancePlacement
}

// MapAsset is the asset path of the Summoners Rift map mesh.
const MapAsset = "models/map/SummonersRift.glb"

// MapInstanceName is the instance name of the map mesh.
const MapInstanceName = "Summoners Rift"

// ChampionAsset returns the asset path for a champion model.
//
// Parameters:
//   - championName: the champion name as it appears in match data
//
// Returns:
//   - string: the asset path relative to the asset source root
func ChampionAsset(championName string) string {
	return "models/champions/" + strings.ToLower(championName) + ".glb"
}

// PlayerInstanceName returns the instance name for a participant's avatar.
//
// Parameters:
//   - participantID: the participant's id (1-10)
//
// Returns:
//   - string: the instance name ("Player 3")
func PlayerInstanceName(participantID int) string {
	return "Player " + strconv.Itoa(participantID)
}

// modelTypePriority is the fixed priority list used by ModelTypeOf. Longer,
// more specific names come first so "Blue Turret Top Nexus" resolves to
// "Blue Turret" and never to a shorter accidental match.
var modelTypePriority = []string{
	"Blue Turret",
	"Red Turret",
	"Blue Nexus",
	"Red Nexus",
	"Blue Inhibitor",
	"Red Inhibitor",
	"Baron",
	"Rift Herald",
	"Void Grub",
	"Dragon Air",
	"Dragon Earth",
	"Dragon Fire",
	"Dragon Water",
	"Dragon Chemtech",
	"Dragon Hextech",
	"Dragon Elder",
	"Atakhan",
}

// ModelTypeOf resolves the catalog model type of an instance name. Matching
// is substring containment against the fixed priority list, except players,
// which are recognized by the "Player" prefix. Unknown names fall back to the
// instance name itself as its own type, so ad hoc instances still behave
// sensibly under the state system.
//
// Parameters:
//   - instanceName: the instance name to classify
//
// Returns:
//   - string: the model type name
func ModelTypeOf(instanceName string) string {
	for _, t := range modelTypePriority {
		if strings.Contains(instanceName, t) {
			return t
		}
	}
	if strings.HasPrefix(instanceName, "Player") {
		return "Player"
	}
	return instanceName
}

// monsterTypes is the closed set of neutral monster model types.
var monsterTypes = []string{
	"Baron",
	"Rift Herald",
	"Void Grub",
	"Dragon Air",
	"Dragon Earth",
	"Dragon Fire",
	"Dragon Water",
	"Dragon Chemtech",
	"Dragon Hextech",
	"Dragon Elder",
	"Atakhan",
}

// IsMonster reports whether a model type or instance name belongs to a
// neutral monster.
//
// Parameters:
//   - name: a model type or instance name
//
// Returns:
//   - bool: true if the name names a monster
func IsMonster(name string) bool {
	for _, t := range monsterTypes {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}

// IsPlayer reports whether an instance name belongs to a participant avatar.
//
// Parameters:
//   - name: an instance name
//
// Returns:
//   - bool: true if the name names a player avatar
func IsPlayer(name string) bool {
	return strings.HasPrefix(name, "Player")
}

// IsStructure reports whether a model type belongs to a destructible
// structure (turret, inhibitor, or nexus).
//
// Parameters:
//   - modelType: the model type name
//
// Returns:
//   - bool: true if the type is a structure
func IsStructure(modelType string) bool {
	switch modelType {
	case "Blue Turret", "Red Turret",
		"Blue Inhibitor", "Red Inhibitor",
		"Blue Nexus", "Red Nexus":
		return true
	}
	return false
}

// EphemeralInstances returns the instance names hidden as a baseline before
// each kill/game event re-reveals the relevant ones: every neutral monster
// instance and all ten player avatars.
//
// Returns:
//   - []string: the ephemeral instance name set
func EphemeralInstances() []string {
	return []string{
		"Baron", "Rift Herald",
		"Void Grub 1", "Void Grub 2", "Void Grub 3",
		"Dragon Air", "Dragon Earth", "Dragon Fire", "Dragon Water",
		"Dragon Chemtech", "Dragon Hextech", "Dragon Elder", "Atakhan",
		"Player 1", "Player 2", "Player 3", "Player 4", "Player 5",
		"Player 6", "Player 7", "Player 8", "Player 9", "Player 10",
	}
}

// MonsterInstances returns the monster subset of the ephemeral set. Game
// events hide monsters only; player avatars keep their last event-driven
// placement.
//
// Returns:
//   - []string: the monster instance name set
func MonsterInstances() []string {
	return []string{
		"Baron", "Rift Herald",
		"Void Grub 1", "Void Grub 2", "Void Grub 3",
		"Dragon Air", "Dragon Earth", "Dragon Fire", "Dragon Water",
		"Dragon Chemtech", "Dragon Hextech", "Dragon Elder", "Atakhan",
	}
}

// Configs returns the full static model catalog: every structure and neutral
// monster with its asset path and map placement. The returned slice is shared;
// callers must not mutate it.
//
// Returns:
//   - []ModelConfig: the catalog entries
func Configs() []ModelConfig {
	return modelConfigs
}

// ConfigFor returns the catalog entry for a model type.
//
// Parameters:
//   - modelType: the model type name
//
// Returns:
//   - *ModelConfig: the entry or nil if the type is unknown
func ConfigFor(modelType string) *ModelConfig {
	for i := range modelConfigs {
		if modelConfigs[i].Name == modelType {
			return &modelConfigs[i]
		}
	}
	return nil
}

var modelConfigs = []ModelConfig{
	{
		Name:     "Blue Nexus",
		Asset:    "models/structures/blueNexus.glb",
		Position: [3]float32{-1504, 97, 1593},
		Rotation: [3]float32{0, 45, 0},
	},
	{
		Name:  "Blue Turret",
		Asset: "models/structures/blueTurret.glb",
		Instances: []InstancePlacement{
			{Name: "Blue Turret Bot Nexus", Position: [3]float32{-2138, 97, 1708}, Rotation: [3]float32{0, -51, 0}},
			{Name: "Blue Turret Top Nexus", Position: [3]float32{-1692, 97, 2196}, Rotation: [3]float32{0, -25, 0}},
			{Name: "Blue Turret Top Tier 3", Position: [3]float32{-1117.42, 97, 4198.99}},
			{Name: "Blue Turret Top Tier 2", Position: [3]float32{-1462.09, 46, 6621.91}},
			{Name: "Blue Turret Top Tier 1", Position: [3]float32{-935.32, 46, 10361.62}},
			{Name: "Blue Turret Mid Tier 3", Position: [3]float32{-3614.02, 97, 3636.62}, Rotation: [3]float32{0, -45, 0}},
			{Name: "Blue Turret Mid Tier 2", Position: [3]float32{-4996.09, 46, 4756.26}, Rotation: [3]float32{0, -45, 0}},
			{Name: "Blue Turret Mid Tier 1", Position: [3]float32{-5794.45, 46, 6329.94}, Rotation: [3]float32{0, -45, 0}},
			{Name: "Blue Turret Bot Tier 3", Position: [3]float32{-4241.69, 97, 1178.12}, Rotation: [3]float32{0, -90, 0}},
			{Name: "Blue Turret Bot Tier 2", Position: [3]float32{-6875.86, 46, 1414.89}, Rotation: [3]float32{0, -90, 0}},
			{Name: "Blue Turret Bot Tier 1", Position: [3]float32{-10461.19, 46, 952.23}, Rotation: [3]float32{0, -90, 0}},
		},
	},
	{
		Name:  "Blue Inhibitor",
		Asset: "models/structures/blueInhibitor.glb",
		Instances: []InstancePlacement{
			{Name: "Blue Inhibitor Top", Position: [3]float32{-1121.24, 99, 3507.74}, Rotation: [3]float32{0, 90, 0}},
			{Name: "Blue Inhibitor Mid", Position: [3]float32{-3145.19, 99, 3145.16}, Rotation: [3]float32{0, 45, 0}},
			{Name: "Blue Inhibitor Bot", Position: [3]float32{-3419.45, 99, 1171.82}},
		},
	},
	{
		Name:     "Red Nexus",
		Asset:    "models/structures/redNexus.glb",
		Position: [3]float32{-13195.54, 97, 13171.67},
	},
	{
		Name:  "Red Turret",
		Asset: "models/structures/redTurret.glb",
		Instances: []InstancePlacement{
			{Name: "Red Turret Top Nexus", Position: [3]float32{-12564.02, 97, 13031.35}, Rotation: [3]float32{0, -11, 0}},
			{Name: "Red Turret Bot Nexus", Position: [3]float32{-13009.34, 97, 12557.67}, Rotation: [3]float32{0, 11, 0}},
			{Name: "Red Turret Top Tier 3", Position: [3]float32{-10433.69, 97, 13590.76}, Rotation: [3]float32{0, -45, 0}},
			{Name: "Red Turret Top Tier 2", Position: [3]float32{-7888.34, 46, 13336.03}, Rotation: [3]float32{0, -45, 0}},
			{Name: "Red Turret Top Tier 1", Position: [3]float32{-4274.11, 46, 13809.37}, Rotation: [3]float32{0, -45, 0}},
			{Name: "Red Turret Bot Tier 3", Position: [3]float32{-13579.13, 97, 10509.02}, Rotation: [3]float32{0, 45, 0}},
			{Name: "Red Turret Bot Tier 2", Position: [3]float32{-13281.14, 46, 8162.93}, Rotation: [3]float32{0, 45, 0}},
			{Name: "Red Turret Bot Tier 1", Position: [3]float32{-13818.14, 46, 4439.92}, Rotation: [3]float32{0, 45, 0}},
			{Name: "Red Turret Mid Tier 3", Position: [3]float32{-11086.15, 97, 11142.61}},
			{Name: "Red Turret Mid Tier 2", Position: [3]float32{-9731.42, 46, 10050.02}},
			{Name: "Red Turret Mid Tier 1", Position: [3]float32{-8908.26, 46, 8452.63}},
		},
	},
	{
		Name:  "Red Inhibitor",
		Asset: "models/structures/redInhibitor.glb",
		Instances: []InstancePlacement{
			{Name: "Red Inhibitor Top", Position: [3]float32{-11211.09, 97, 13597.38}, Rotation: [3]float32{0, -90, 0}},
			{Name: "Red Inhibitor Mid", Position: [3]float32{-11552.56, 97, 11597.78}, Rotation: [3]float32{0, -45, 0}},
			{Name: "Red Inhibitor Bot", Position: [3]float32{-13548.15, 97, 11248.27}},
		},
	},
	{
		Name:     "Baron",
		Asset:    "models/neutral objectives/baron.glb",
		Position: [3]float32{-4906.65, 10, 10361.79},
		Rotation: [3]float32{0, 145, 0},
	},
	{
		Name:     "Rift Herald",
		Asset:    "models/neutral objectives/rift_herald.glb",
		Position: [3]float32{-4816.65, -70, 10162.79},
		Rotation: [3]float32{0, 145, 0},
	},
	{
		Name:  "Void Grub",
		Asset: "models/neutral objectives/voidgrub.glb",
		Instances: []InstancePlacement{
			{Name: "Void Grub 1", Position: [3]float32{-4745.65, -75, 10143.79}, Rotation: [3]float32{0, -37, 0}},
			{Name: "Void Grub 2", Position: [3]float32{-4843.62, -75, 10602.19}, Rotation: [3]float32{0, -160, 0}},
			{Name: "Void Grub 3", Position: [3]float32{-5163.17, -75, 10331.88}, Rotation: [3]float32{0, 75, 0}},
		},
	},
	{
		Name:     "Dragon Air",
		Asset:    "models/neutral objectives/dragon_air.glb",
		Position: [3]float32{-9766.85, -75, 4342.72},
		Rotation: [3]float32{0, -37, 0},
	},
	{
		Name:     "Dragon Earth",
		Asset:    "models/neutral objectives/dragon_earth.glb",
		Position: [3]float32{-9766.85, -75, 4342.72},
		Rotation: [3]float32{0, -37, 0},
	},
	{
		Name:     "Dragon Fire",
		Asset:    "models/neutral objectives/dragon_fire.glb",
		Position: [3]float32{-9766.85, -75, 4342.72},
		Rotation: [3]float32{0, -37, 0},
	},
	{
		Name:     "Dragon Water",
		Asset:    "models/neutral objectives/dragon_water.glb",
		Position: [3]float32{-9766.85, -75, 4342.72},
		Rotation: [3]float32{0, -37, 0},
	},
	{
		Name:     "Dragon Chemtech",
		Asset:    "models/neutral objectives/dragon_chemtech.glb",
		Position: [3]float32{-9766.85, -75, 4342.72},
		Rotation: [3]float32{0, -37, 0},
	},
	{
		Name:     "Dragon Hextech",
		Asset:    "models/neutral objectives/dragon_hextech.glb",
		Position: [3]float32{-9766.85, -75, 4342.72},
		Rotation: [3]float32{0, -37, 0},
	},
	{
		Name:     "Dragon Elder",
		Asset:    "models/neutral objectives/dragon_elder.glb",
		Position: [3]float32{-9766.85, -75, 4342.72},
		Rotation: [3]float32{0, -37, 0},
	},
	{
		Name:     "Atakhan",
		Asset:    "models/neutral objectives/atakhan.glb",
		Position: [3]float32{-9766.85, -75, 4342.72},
		Rotation: [3]float32{0, -37, 0},
	},
}

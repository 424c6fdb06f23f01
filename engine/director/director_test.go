package director_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K0rnli/rift-rewind/engine/camera"
	"github.com/K0rnli/rift-rewind/engine/catalog"
	"github.com/K0rnli/rift-rewind/engine/director"
	"github.com/K0rnli/rift-rewind/engine/scene"
	"github.com/K0rnli/rift-rewind/engine/state"
	"github.com/K0rnli/rift-rewind/engine/timeline"
)

type fixture struct {
	director director.Director
	registry scene.Registry
	camera   camera.Camera
	graph    *scene.Graph
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	graph := scene.NewGraph()
	registry := scene.NewRegistry(graph, scene.WithTypeResolver(catalog.ModelTypeOf))
	applier := state.NewApplier()
	geometry := catalog.SummonersRift()
	cam := camera.NewCamera(camera.WithHome(geometry.CameraHome, geometry.CameraHomeTarget))
	d := director.NewDirector(registry, applier, geometry, director.WithCamera(cam))

	f := &fixture{director: d, registry: registry, camera: cam, graph: graph}
	for _, name := range []string{
		"Blue Turret Top Tier 3", "Blue Turret Bot Nexus", "Blue Turret Top Nexus",
		"Red Turret Mid Tier 1", "Red Turret Mid Tier 2",
		"Blue Nexus", "Red Nexus",
		"Blue Inhibitor Mid", "Red Inhibitor Bot",
		"Baron",
		"Player 1", "Player 6",
	} {
		f.add(name)
	}
	return f
}

// add places a minimal instance: a root with one mesh child so state
// application has something to toggle.
func (f *fixture) add(name string) {
	root := scene.NewObject(name)
	mesh := scene.NewObject(name + " Mesh")
	mesh.IsMesh = true
	root.AddChild(mesh)
	f.graph.Add(root)
	f.registry.Add(&scene.ModelInstance{
		Object:        root,
		ModelType:     catalog.ModelTypeOf(name),
		InstanceName:  name,
		OriginalState: catalog.StateDefault,
		CurrentState:  catalog.StateDefault,
		IsVisible:     true,
	})
}

func (f *fixture) stateOf(name string) string {
	instance := f.registry.Get(name)
	if instance == nil {
		return ""
	}
	return instance.CurrentState
}

func towerKill(ts int64, teamID int, towerType, laneType string, pos *timeline.Position) timeline.Entry {
	return timeline.Entry{
		Timestamp: ts,
		Category:  timeline.CategoryKill,
		Kill: &timeline.KillEvent{
			Type:         timeline.KillBuilding,
			Timestamp:    ts,
			KillerID:     1,
			TeamID:       teamID,
			BuildingType: timeline.BuildingTower,
			TowerType:    towerType,
			LaneType:     laneType,
			Position:     pos,
		},
	}
}

func TestTowerKillDestroysNamedTurret(t *testing.T) {
	f := newFixture(t)

	f.director.Handle(towerKill(600000, 200, timeline.TowerOuter, timeline.LaneMid, nil))
	assert.Equal(t, catalog.StateDestroyed, f.stateOf("Red Turret Mid Tier 1"))
	assert.Equal(t, catalog.StateDefault, f.stateOf("Red Turret Mid Tier 2"))

	f.director.Handle(towerKill(700000, 100, timeline.TowerBase, timeline.LaneTop, nil))
	assert.Equal(t, catalog.StateDestroyed, f.stateOf("Blue Turret Top Tier 3"))
}

func TestNexusTurretDisambiguatesBySide(t *testing.T) {
	f := newFixture(t)

	// x > y lands on the bot-side nexus turret.
	f.director.Handle(towerKill(900000, 100, timeline.TowerNexus, "", &timeline.Position{X: 2100, Y: 1700}))
	assert.Equal(t, catalog.StateDestroyed, f.stateOf("Blue Turret Bot Nexus"))
	assert.Equal(t, catalog.StateDefault, f.stateOf("Blue Turret Top Nexus"))

	// x < y lands on the top-side turret.
	f.director.Handle(towerKill(910000, 100, timeline.TowerNexus, "", &timeline.Position{X: 1600, Y: 2200}))
	assert.Equal(t, catalog.StateDestroyed, f.stateOf("Blue Turret Top Nexus"))
}

func TestNexusTurretWithoutPositionIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.director.Handle(towerKill(900000, 100, timeline.TowerNexus, "", nil))
	assert.Equal(t, catalog.StateDefault, f.stateOf("Blue Turret Bot Nexus"))
	assert.Equal(t, catalog.StateDefault, f.stateOf("Blue Turret Top Nexus"))
}

func TestTowerKillPlacesKiller(t *testing.T) {
	f := newFixture(t)

	f.director.Handle(towerKill(600000, 200, timeline.TowerOuter, timeline.LaneMid, nil))

	// The killer's avatar lands at the turret's offset spot, on the terrain.
	killer := f.registry.Get("Player 1")
	require.NotNil(t, killer)
	assert.Equal(t, [3]float32{-8338.11, 46, 8458.25}, killer.Object.Position)
	assert.Equal(t, catalog.StateDefault, killer.CurrentState)
}

func TestInhibitorKill(t *testing.T) {
	f := newFixture(t)

	f.director.Handle(timeline.Entry{
		Timestamp: 1200000,
		Category:  timeline.CategoryKill,
		Kill: &timeline.KillEvent{
			Type:         timeline.KillBuilding,
			Timestamp:    1200000,
			TeamID:       200,
			BuildingType: timeline.BuildingInhibitor,
			LaneType:     timeline.LaneBot,
		},
	})
	assert.Equal(t, catalog.StateDestroyed, f.stateOf("Red Inhibitor Bot"))
}

func TestMonsterKill(t *testing.T) {
	f := newFixture(t)

	f.director.Handle(timeline.Entry{
		Timestamp: 1500000,
		Category:  timeline.CategoryKill,
		Kill: &timeline.KillEvent{
			Type:        timeline.KillEliteMonster,
			Timestamp:   1500000,
			KillerID:    6,
			MonsterType: timeline.MonsterBaron,
		},
	})

	assert.Equal(t, catalog.StateDeath, f.stateOf("Baron"))

	killer := f.registry.Get("Player 6")
	require.NotNil(t, killer)
	assert.Equal(t, [3]float32{-4639.3, 46, 9867.24}, killer.Object.Position)

	// The camera frames the fallen monster's position.
	baron := f.registry.Get("Baron")
	assert.Equal(t, baron.Object.Position, f.camera.Target())
}

func TestChampionKillRepositionsBothChampions(t *testing.T) {
	f := newFixture(t)

	f.director.Handle(timeline.Entry{
		Timestamp: 300000,
		Category:  timeline.CategoryKill,
		Kill: &timeline.KillEvent{
			Type:      timeline.KillChampion,
			Timestamp: 300000,
			KillerID:  1,
			VictimID:  6,
			Position:  &timeline.Position{X: -7000, Y: 7000},
		},
	})

	victim := f.registry.Get("Player 6")
	killer := f.registry.Get("Player 1")
	require.NotNil(t, victim)
	require.NotNil(t, killer)

	// The kill position is mirrored across x and the pair is split along y.
	assert.Equal(t, [3]float32{7000, 46, 6900}, victim.Object.Position)
	assert.Equal(t, [3]float32{7000, 46, 7100}, killer.Object.Position)
	assert.Equal(t, catalog.StateDeath, victim.CurrentState)
	assert.Equal(t, catalog.StateDefault, killer.CurrentState)
	assert.Equal(t, killer.Object.Position, f.camera.Target())
}

func TestChampionKillHidesUninvolvedEphemerals(t *testing.T) {
	f := newFixture(t)

	f.director.Handle(timeline.Entry{
		Timestamp: 300000,
		Category:  timeline.CategoryKill,
		Kill: &timeline.KillEvent{
			Type:      timeline.KillChampion,
			Timestamp: 300000,
			KillerID:  1,
			VictimID:  6,
			Position:  &timeline.Position{X: -7000, Y: 7000},
		},
	})

	// The monster baseline is hidden; applying states to the two champions
	// brings their subtrees back.
	assert.False(t, f.registry.Get("Baron").Object.Visible)
	assert.True(t, f.registry.Get("Player 6").Object.Visible)
	assert.True(t, f.registry.Get("Player 1").Object.Visible)
}

func TestSpecialKillMovesNothing(t *testing.T) {
	f := newFixture(t)
	before := f.registry.Get("Player 1").Object.Position

	f.director.Handle(timeline.Entry{
		Timestamp: 310000,
		Category:  timeline.CategoryKill,
		Kill: &timeline.KillEvent{
			Type:      timeline.KillChampionSpecial,
			Timestamp: 310000,
			KillerID:  1,
			KillType:  "KILL_MULTI",
		},
	})

	assert.Equal(t, before, f.registry.Get("Player 1").Object.Position)
}

func TestGameEndDestroysLosingNexus(t *testing.T) {
	f := newFixture(t)

	f.director.Handle(timeline.Entry{
		Timestamp: 1800000,
		Category:  timeline.CategoryGame,
		Game: &timeline.GameEvent{
			Type:        timeline.GameEventGameEnd,
			Timestamp:   1800000,
			WinningTeam: 200,
		},
	})

	assert.Equal(t, catalog.StateDestroyed, f.stateOf("Blue Nexus"))
	assert.Equal(t, catalog.StateDefault, f.stateOf("Red Nexus"))
	assert.False(t, f.registry.Get("Baron").Object.Visible, "game events hide monsters")
}

func TestGameEndOtherWinner(t *testing.T) {
	f := newFixture(t)

	f.director.Handle(timeline.Entry{
		Timestamp: 1800000,
		Category:  timeline.CategoryGame,
		Game: &timeline.GameEvent{
			Type:        timeline.GameEventGameEnd,
			Timestamp:   1800000,
			WinningTeam: 100,
		},
	})

	assert.Equal(t, catalog.StateDestroyed, f.stateOf("Red Nexus"))
	assert.Equal(t, catalog.StateDefault, f.stateOf("Blue Nexus"))
}

func matchDoc() *timeline.CombinedMatchData {
	return &timeline.CombinedMatchData{
		KillEvents: []timeline.KillEvent{
			{
				Type: timeline.KillBuilding, Timestamp: 600000, KillerID: 1, TeamID: 200,
				BuildingType: timeline.BuildingTower,
				TowerType:    timeline.TowerOuter, LaneType: timeline.LaneMid,
			},
			{
				Type: timeline.KillChampion, Timestamp: 900000, KillerID: 1, VictimID: 6,
				Position: &timeline.Position{X: -7000, Y: 7000},
			},
			{
				Type: timeline.KillBuilding, Timestamp: 1200000, KillerID: 1, TeamID: 200,
				BuildingType: timeline.BuildingInhibitor, LaneType: timeline.LaneBot,
			},
		},
	}
}

func TestReplayToIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.director.SetMatch(matchDoc())

	f.director.ReplayTo(1300000)
	first := map[string]string{}
	for _, instance := range f.registry.All() {
		first[instance.InstanceName] = instance.CurrentState
	}

	f.director.ReplayTo(1300000)
	for _, instance := range f.registry.All() {
		assert.Equal(t, first[instance.InstanceName], instance.CurrentState,
			"replaying the same prefix twice must not change %q", instance.InstanceName)
	}
	assert.Equal(t, catalog.StateDestroyed, f.stateOf("Red Turret Mid Tier 1"))
	assert.Equal(t, catalog.StateDestroyed, f.stateOf("Red Inhibitor Bot"))
}

func TestLaterEventsRebuildEarlierDestruction(t *testing.T) {
	f := newFixture(t)
	f.director.SetMatch(matchDoc())

	// The champion kill at 900000 re-derives building states from its own
	// timestamp, so the tower destroyed at 600000 stays destroyed.
	f.director.ReplayTo(1000000)
	assert.Equal(t, catalog.StateDestroyed, f.stateOf("Red Turret Mid Tier 1"))
	assert.Equal(t, catalog.StateDefault, f.stateOf("Red Inhibitor Bot"))
}

func TestRewindRestoresStructures(t *testing.T) {
	f := newFixture(t)
	f.director.SetMatch(matchDoc())

	f.director.ReplayTo(1300000)
	require.Equal(t, catalog.StateDestroyed, f.stateOf("Red Turret Mid Tier 1"))

	// Scrubbing backward resets first, then replays the shorter prefix.
	f.director.ResetAll()
	f.director.ReplayTo(100000)
	assert.Equal(t, catalog.StateDefault, f.stateOf("Red Turret Mid Tier 1"))
	assert.Equal(t, catalog.StateDefault, f.stateOf("Red Inhibitor Bot"))
}

func TestHideAndShowModels(t *testing.T) {
	f := newFixture(t)

	f.director.HideModels([]string{"Baron", "Player 1"})
	assert.False(t, f.registry.Get("Baron").IsVisible)
	assert.False(t, f.registry.Get("Player 1").IsVisible)

	f.director.ShowModels([]string{"Baron"})
	assert.True(t, f.registry.Get("Baron").IsVisible)
	assert.False(t, f.registry.Get("Player 1").IsVisible)
}

func TestUpdateModelStateUnknownInstance(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.director.UpdateModelState("Teemo", catalog.StateDefault))
}

func TestUpdateModelPositionDerivesElevation(t *testing.T) {
	f := newFixture(t)

	f.director.UpdateModelPosition("Player 1", -1000, 1000)
	assert.Equal(t, [3]float32{-1000, 99, 1000}, f.registry.Get("Player 1").Object.Position)

	f.director.UpdateModelPosition("Player 1", -7000, 7000)
	assert.Equal(t, [3]float32{-7000, 46, 7000}, f.registry.Get("Player 1").Object.Position)
}

func TestResetAllRestoresOriginalStates(t *testing.T) {
	f := newFixture(t)
	f.director.UpdateModelState("Blue Nexus", catalog.StateDestroyed)
	require.Equal(t, catalog.StateDestroyed, f.stateOf("Blue Nexus"))

	f.director.ResetAll()
	assert.Equal(t, catalog.StateDefault, f.stateOf("Blue Nexus"))
}

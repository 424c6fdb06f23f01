package engine_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K0rnli/rift-rewind/engine"
	"github.com/K0rnli/rift-rewind/engine/catalog"
	"github.com/K0rnli/rift-rewind/engine/timeline"
)

// fakeSource serves the same minimal glTF document for every asset path.
type fakeSource struct {
	mu      sync.Mutex
	fetched int
}

func (s *fakeSource) Fetch(_ context.Context, _ string) ([]byte, error) {
	s.mu.Lock()
	s.fetched++
	s.mu.Unlock()
	return []byte(`{
		"asset": {"version": "2.0"},
		"scene": 0,
		"scenes": [{"name": "Asset", "nodes": [0]}],
		"nodes": [{"name": "Asset_Root", "children": [1]}, {"name": "Body", "mesh": 0}],
		"meshes": [{"name": "Body_Mesh", "primitives": [{"material": 0}]}],
		"materials": [{"name": "Generic_Mat"}]
	}`), nil
}

func loadedViewer(t *testing.T) engine.Viewer {
	t.Helper()
	v := engine.NewViewer(&fakeSource{})
	doc := &timeline.CombinedMatchData{
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
		},
	}
	doc.MatchData.Participants = []timeline.MatchParticipant{
		{ParticipantID: 1, ChampionName: "Ahri"},
		{ParticipantID: 6, ChampionName: "Garen"},
	}
	require.NoError(t, v.LoadMatchDocument(context.Background(), doc))
	return v
}

func TestViewerLoadMatchDocument(t *testing.T) {
	v := loadedViewer(t)

	require.NotNil(t, v.Timeline())
	assert.Equal(t, int64(900000), v.Timeline().EndTimestamp())

	assert.NotNil(t, v.Models().Get(catalog.MapInstanceName))
	assert.NotNil(t, v.Models().Get("Player 1"))
	assert.NotNil(t, v.Models().Get("Red Turret Mid Tier 1"))
}

func TestViewerScrubForward(t *testing.T) {
	v := loadedViewer(t)
	v.ScrubTo(700000)

	turret := v.Models().Get("Red Turret Mid Tier 1")
	require.NotNil(t, turret)
	assert.Equal(t, catalog.StateDestroyed, turret.CurrentState)

	// The champion kill has not happened yet.
	victim := v.Models().Get("Player 6")
	require.NotNil(t, victim)
	assert.Equal(t, catalog.StateDefault, victim.CurrentState)
}

func TestViewerScrubBackRestores(t *testing.T) {
	v := loadedViewer(t)
	v.ScrubTo(950000)

	victim := v.Models().Get("Player 6")
	require.NotNil(t, victim)
	assert.Equal(t, catalog.StateDeath, victim.CurrentState)

	v.ScrubTo(100000)
	assert.Equal(t, catalog.StateDefault, victim.CurrentState)
	assert.False(t, victim.IsVisible)

	turret := v.Models().Get("Red Turret Mid Tier 1")
	require.NotNil(t, turret)
	assert.Equal(t, catalog.StateDefault, turret.CurrentState)
}

func TestViewerScrubIsIdempotent(t *testing.T) {
	v := loadedViewer(t)

	snapshot := func() map[string]string {
		states := map[string]string{}
		for _, instance := range v.Models().All() {
			states[instance.InstanceName] = instance.CurrentState
		}
		return states
	}

	v.ScrubTo(950000)
	first := snapshot()
	v.ScrubTo(950000)
	assert.Equal(t, first, snapshot())
}

func TestViewerHandleEvent(t *testing.T) {
	v := loadedViewer(t)
	entries := v.Timeline().EventsUpTo(600000)
	require.NotEmpty(t, entries)

	v.HandleEvent(entries[len(entries)-1])

	turret := v.Models().Get("Red Turret Mid Tier 1")
	require.NotNil(t, turret)
	assert.Equal(t, catalog.StateDestroyed, turret.CurrentState)
}

func TestViewerAdvance(t *testing.T) {
	v := loadedViewer(t)
	// No playing animations; advancing must not panic.
	v.Advance(0.016)
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K0rnli/rift-rewind/engine/catalog"
)

func TestModelTypeOf(t *testing.T) {
	tests := []struct {
		name     string
		instance string
		want     string
	}{
		{"nexus turret resolves to turret", "Blue Turret Top Nexus", "Blue Turret"},
		{"tiered turret", "Red Turret Mid Tier 2", "Red Turret"},
		{"inhibitor", "Blue Inhibitor Bot", "Blue Inhibitor"},
		{"nexus", "Red Nexus", "Red Nexus"},
		{"numbered monster", "Void Grub 2", "Void Grub"},
		{"dragon variant", "Dragon Hextech", "Dragon Hextech"},
		{"player avatar", "Player 7", "Player"},
		{"unknown name is its own type", "Summoners Rift", "Summoners Rift"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ModelTypeOf(tt.instance))
		})
	}
}

func TestClassifiers(t *testing.T) {
	assert.True(t, catalog.IsMonster("Baron"))
	assert.True(t, catalog.IsMonster("Void Grub 3"))
	assert.False(t, catalog.IsMonster("Blue Turret Top Tier 1"))
	assert.False(t, catalog.IsMonster("Player 4"))

	assert.True(t, catalog.IsPlayer("Player 10"))
	assert.False(t, catalog.IsPlayer("Baron"))

	assert.True(t, catalog.IsStructure("Blue Turret"))
	assert.True(t, catalog.IsStructure("Red Nexus"))
	assert.False(t, catalog.IsStructure("Baron"))
	assert.False(t, catalog.IsStructure("Player"))
}

func TestPlayerInstanceName(t *testing.T) {
	assert.Equal(t, "Player 1", catalog.PlayerInstanceName(1))
	assert.Equal(t, "Player 10", catalog.PlayerInstanceName(10))
}

func TestChampionAssetLowercases(t *testing.T) {
	assert.Equal(t, "models/champions/ahri.glb", catalog.ChampionAsset("Ahri"))
	assert.Equal(t, "models/champions/khazix.glb", catalog.ChampionAsset("Khazix"))
}

func TestEphemeralInstances(t *testing.T) {
	ephemeral := catalog.EphemeralInstances()
	monsters := catalog.MonsterInstances()

	// 13 monsters plus 10 players.
	assert.Len(t, ephemeral, 23)
	assert.Len(t, monsters, 13)

	set := make(map[string]bool, len(ephemeral))
	for _, name := range ephemeral {
		set[name] = true
	}
	for _, name := range monsters {
		assert.True(t, set[name], "monster %q missing from ephemeral set", name)
	}
	for id := 1; id <= 10; id++ {
		assert.True(t, set[catalog.PlayerInstanceName(id)])
	}
}

func TestConfigsCoverEveryMonsterInstance(t *testing.T) {
	placed := make(map[string]bool)
	for _, cfg := range catalog.Configs() {
		if len(cfg.Instances) == 0 {
			placed[cfg.Name] = true
			continue
		}
		for _, inst := range cfg.Instances {
			placed[inst.Name] = true
		}
	}
	for _, name := range catalog.MonsterInstances() {
		assert.True(t, placed[name], "monster %q has no catalog placement", name)
	}
	// Three turret tiers plus two nexus turrets per side.
	for _, name := range []string{
		"Blue Turret Top Tier 1", "Blue Turret Mid Tier 2", "Blue Turret Bot Tier 3",
		"Blue Turret Top Nexus", "Blue Turret Bot Nexus",
		"Red Turret Top Tier 1", "Red Turret Mid Tier 2", "Red Turret Bot Tier 3",
		"Red Turret Top Nexus", "Red Turret Bot Nexus",
	} {
		assert.True(t, placed[name], "turret %q has no catalog placement", name)
	}
}

func TestConfigFor(t *testing.T) {
	cfg := catalog.ConfigFor("Baron")
	require.NotNil(t, cfg)
	assert.Equal(t, "models/neutral objectives/baron.glb", cfg.Asset)

	assert.Nil(t, catalog.ConfigFor("Teemo"))
}

func TestStatesForEveryConfiguredTypeHasDefault(t *testing.T) {
	types := []string{
		"Blue Turret", "Red Turret", "Blue Nexus", "Red Nexus",
		"Blue Inhibitor", "Red Inhibitor",
		"Baron", "Rift Herald", "Void Grub",
		"Dragon Air", "Dragon Earth", "Dragon Fire", "Dragon Water",
		"Dragon Chemtech", "Dragon Hextech", "Dragon Elder",
		"Player",
	}
	for _, modelType := range types {
		states := catalog.StatesFor(modelType)
		require.NotNil(t, states, "no states for %q", modelType)
		_, ok := states[catalog.StateDefault]
		assert.True(t, ok, "%q has no default state", modelType)
	}
	assert.Nil(t, catalog.StatesFor("Summoners Rift"))
}

func TestStructureStatesHaveDestroyed(t *testing.T) {
	for _, modelType := range []string{
		"Blue Turret", "Red Turret", "Blue Nexus", "Red Nexus",
		"Blue Inhibitor", "Red Inhibitor",
	} {
		states := catalog.StatesFor(modelType)
		require.NotNil(t, states)
		_, ok := states[catalog.StateDestroyed]
		assert.True(t, ok, "%q has no destroyed state", modelType)
	}
}

func TestMonsterStatesPoseDeath(t *testing.T) {
	for _, modelType := range []string{"Baron", "Rift Herald", "Void Grub", "Dragon Elder", "Player"} {
		states := catalog.StatesFor(modelType)
		require.NotNil(t, states)
		death, ok := states[catalog.StateDeath]
		require.True(t, ok, "%q has no death state", modelType)
		require.NotNil(t, death.Animation, "%q death state has no pose", modelType)
		assert.False(t, death.Animation.Loop)
	}
}

func TestHeightAt(t *testing.T) {
	g := catalog.SummonersRift()

	// Blue-side jungle quadrant is raised.
	assert.Equal(t, float32(99), g.HeightAt(-1000, 1000))
	// Red-side jungle quadrant is raised.
	assert.Equal(t, float32(99), g.HeightAt(-12000, 12000))
	// Mid river runs at the lower elevation.
	assert.Equal(t, float32(46), g.HeightAt(-7000, 7000))
	// Boundary coordinates fall back to the low elevation.
	assert.Equal(t, float32(46), g.HeightAt(-4996.09, 4756.26))
}

func TestNexusSide(t *testing.T) {
	g := catalog.SummonersRift()
	assert.Equal(t, "Bot", g.NexusSide(100, 50))
	assert.Equal(t, "Top", g.NexusSide(50, 100))
	assert.Equal(t, "", g.NexusSide(75, 75))
}

func TestAvatarOffset(t *testing.T) {
	g := catalog.SummonersRift()

	off, ok := g.AvatarOffset("Baron")
	require.True(t, ok)
	assert.Equal(t, [2]float32{-4639.3, 9867.24}, off)

	_, ok = g.AvatarOffset("Summoners Rift")
	assert.False(t, ok)

	// Every catalog placement that can be taken down has a landing spot.
	for _, name := range catalog.MonsterInstances() {
		_, ok := g.AvatarOffset(name)
		assert.True(t, ok, "no avatar offset for %q", name)
	}
}

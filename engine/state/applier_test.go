package state_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K0rnli/rift-rewind/engine/scene"
	"github.com/K0rnli/rift-rewind/engine/state"
)

type poseCall struct {
	clip     string
	progress float32
	loop     bool
	speed    float32
}

// fakePoser records pose directives instead of sampling animations.
type fakePoser struct {
	calls  []poseCall
	poseOK bool
}

func (p *fakePoser) PoseAt(_ uuid.UUID, clipName string, progress float32) bool {
	p.calls = append(p.calls, poseCall{clip: clipName, progress: progress})
	return p.poseOK
}

func (p *fakePoser) ConfigureAction(_ uuid.UUID, _ string, loop bool, speed float32) bool {
	last := &p.calls[len(p.calls)-1]
	last.loop = loop
	last.speed = speed
	return true
}

func blueTurret() *scene.Object {
	root := scene.NewObject("Blue Turret Top Tier 1")
	for _, part := range []string{"Stage1", "Stage2", "Stage3"} {
		mesh := scene.NewObject(part + "_Mesh")
		mesh.IsMesh = true
		mesh.MaterialName = "Rubble_Mat"
		root.AddChild(mesh)
	}
	intact := scene.NewObject("Tower_Mesh")
	intact.IsMesh = true
	intact.MaterialName = "SRUAP_OrderTurret1_Mat"
	root.AddChild(intact)
	return root
}

func TestApplyDefaultState(t *testing.T) {
	a := state.NewApplier()
	root := blueTurret()

	a.Apply(root, "Blue Turret Top Tier 1", "default")

	// The rubble stages are hidden, the intact tower mesh matched by material
	// stays visible.
	assert.False(t, root.Find("Stage1_Mesh").Visible)
	assert.False(t, root.Find("Stage2_Mesh").Visible)
	assert.False(t, root.Find("Stage3_Mesh").Visible)
	assert.True(t, root.Find("Tower_Mesh").Visible)
}

func TestApplyDestroyedState(t *testing.T) {
	a := state.NewApplier()
	root := blueTurret()

	a.Apply(root, "Blue Turret Top Tier 1", "destroyed")

	assert.True(t, root.Find("Stage3_Mesh").Visible)
	assert.False(t, root.Find("Stage1_Mesh").Visible)
	// Material key match hides the intact tower.
	assert.False(t, root.Find("Tower_Mesh").Visible)
}

func TestApplyLeavesUnmatchedPartsVisible(t *testing.T) {
	a := state.NewApplier()
	root := blueTurret()

	banner := scene.NewObject("Banner_Mesh")
	banner.IsMesh = true
	banner.Visible = false
	root.AddChild(banner)

	a.Apply(root, "Blue Turret Top Tier 1", "destroyed")

	// Parts no state key governs are forced visible rather than left in
	// whatever state the previous apply put them.
	assert.True(t, root.Find("Banner_Mesh").Visible)
}

func TestApplyUnknownStateIsNoOp(t *testing.T) {
	a := state.NewApplier()
	root := blueTurret()
	root.Find("Stage1_Mesh").Visible = true

	a.Apply(root, "Blue Turret Top Tier 1", "obliterated")

	assert.True(t, root.Find("Stage1_Mesh").Visible, "unknown states must not mutate the object")
}

func TestApplyUnknownTypeIsNoOp(t *testing.T) {
	a := state.NewApplier()
	root := scene.NewObject("Summoners Rift")
	mesh := scene.NewObject("Terrain")
	mesh.IsMesh = true
	root.AddChild(mesh)

	a.Apply(root, "Summoners Rift", "default")

	assert.True(t, mesh.Visible)
}

func TestApplyPosesAnimation(t *testing.T) {
	poser := &fakePoser{poseOK: true}
	a := state.NewApplier(state.WithPoser(poser))

	root := scene.NewObject("Blue Nexus")
	mesh := scene.NewObject("Nexus_Mesh")
	mesh.IsMesh = true
	mesh.MaterialName = "SRUAP_OrderNexus_Mat"
	root.AddChild(mesh)

	a.Apply(root, "Blue Nexus", "destroyed")

	require.Len(t, poser.calls, 1)
	call := poser.calls[0]
	assert.Equal(t, "Death", call.clip)
	assert.InDelta(t, 0.54, float64(call.progress), 1e-6)
	assert.False(t, call.loop)
	assert.Equal(t, float32(1.0), call.speed)
}

func TestApplySkipsConfigureWhenPoseFails(t *testing.T) {
	poser := &fakePoser{poseOK: false}
	a := state.NewApplier(state.WithPoser(poser))

	root := scene.NewObject("Player 3")
	a.Apply(root, "Player 3", "death")

	require.Len(t, poser.calls, 1)
	// ConfigureAction never ran, so loop and speed keep their zero values.
	assert.Equal(t, float32(0), poser.calls[0].speed)
}

func TestApplyNilObject(t *testing.T) {
	a := state.NewApplier()
	assert.NotPanics(t, func() {
		a.Apply(nil, "Blue Turret Top Tier 1", "default")
	})
}

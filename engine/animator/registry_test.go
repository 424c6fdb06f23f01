package animator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K0rnli/rift-rewind/engine/animator"
	"github.com/K0rnli/rift-rewind/engine/model"
	"github.com/K0rnli/rift-rewind/engine/scene"
)

// rig builds a two-node subtree with a 2 second clip sliding "Body" from the
// origin to (10, 0, 0).
func rig() (*scene.Object, []model.AnimationClip) {
	root := scene.NewObject("Baron")
	body := scene.NewObject("Body")
	body.IsMesh = true
	root.AddChild(body)

	clips := []model.AnimationClip{
		{
			Name:     "Death",
			Duration: 2,
			Channels: []model.AnimationChannel{
				{
					NodeName: "Body",
					PositionKeys: []model.VectorKeyframe{
						{Time: 0, Value: [3]float32{0, 0, 0}},
						{Time: 2, Value: [3]float32{10, 0, 0}},
					},
				},
			},
		},
		{
			Name:     "Attack2",
			Duration: 1,
			Channels: []model.AnimationChannel{
				{
					NodeName: "Body",
					PositionKeys: []model.VectorKeyframe{
						{Time: 0, Value: [3]float32{0, 0, 0}},
						{Time: 1, Value: [3]float32{0, 5, 0}},
					},
				},
			},
		},
	}
	return root, clips
}

func TestRegisterClonesClips(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()

	rec := reg.Register(root, "Baron", clips)
	require.NotNil(t, rec)
	require.Len(t, rec.Clips, 2)
	assert.Equal(t, float32(1.0), rec.PlaybackSpeed)
	assert.False(t, rec.IsPlaying)

	// Mutating the source keyframes must not reach the record.
	clips[0].Channels[0].PositionKeys[1].Value = [3]float32{999, 0, 0}
	reg.Play(root.ID, "Death", false, 1.0)
	reg.SetProgress(root.ID, 1.0)
	assert.Equal(t, [3]float32{10, 0, 0}, root.Find("Body").Position)
}

func TestRegisterEmptyClips(t *testing.T) {
	reg := animator.NewRegistry()
	root := scene.NewObject("Summoners Rift")

	rec := reg.Register(root, "Summoners Rift", nil)
	require.NotNil(t, rec)
	assert.Empty(t, rec.Clips)
	assert.False(t, reg.Play(root.ID, "Idle", true, 1.0))
	assert.Equal(t, float32(0), reg.Progress(root.ID))
}

func TestFindClipName(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	name, ok := reg.FindClipName(root.ID, "death")
	assert.True(t, ok)
	assert.Equal(t, "Death", name, "exact match ignores case")

	name, ok = reg.FindClipName(root.ID, "Attack")
	assert.True(t, ok)
	assert.Equal(t, "Attack2", name, "substring falls back when no exact match")

	name, ok = reg.FindClipName(root.ID, "Baron_Death_Full")
	assert.True(t, ok)
	assert.Equal(t, "Death", name, "containment works in both directions")

	_, ok = reg.FindClipName(root.ID, "Taunt")
	assert.False(t, ok)

	assert.True(t, reg.HasClip(root.ID, "atta"))
	assert.False(t, reg.HasClip(root.ID, "Recall"))
}

func TestPlayAndAdvance(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	require.True(t, reg.Play(root.ID, "Death", false, 1.0))
	rec := reg.Record(root.ID)
	assert.True(t, rec.IsPlaying)

	reg.AdvanceAll(1.0)
	assert.InDelta(t, 0.5, float64(reg.Progress(root.ID)), 1e-6)
	assert.Equal(t, [3]float32{5, 0, 0}, root.Find("Body").Position)

	// One-shot playback clamps at the end and stops.
	reg.AdvanceAll(5.0)
	assert.InDelta(t, 1.0, float64(reg.Progress(root.ID)), 1e-6)
	assert.Equal(t, [3]float32{10, 0, 0}, root.Find("Body").Position)
	assert.False(t, rec.IsPlaying)
}

func TestPlayLoopWraps(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	require.True(t, reg.Play(root.ID, "Death", true, 1.0))
	reg.AdvanceAll(2.5)
	assert.InDelta(t, 0.25, float64(reg.Progress(root.ID)), 1e-6)
	assert.True(t, reg.Record(root.ID).IsPlaying)
}

func TestPlaySpeedScalesClock(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	require.True(t, reg.Play(root.ID, "Death", true, 0.5))
	reg.AdvanceAll(1.0)
	assert.InDelta(t, 0.25, float64(reg.Progress(root.ID)), 1e-6)
}

func TestPlaySwitchesCurrentAction(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	require.True(t, reg.Play(root.ID, "Death", false, 1.0))
	reg.AdvanceAll(1.0)
	require.True(t, reg.Play(root.ID, "Attack2", true, 1.0))

	// The new action starts from zero.
	assert.Equal(t, float32(0), reg.Progress(root.ID))
	rec := reg.Record(root.ID)
	assert.True(t, rec.IsLooping)
	assert.Equal(t, "Attack2", rec.Current().Clip().Name)
}

func TestPauseAndResume(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	require.True(t, reg.Play(root.ID, "Death", false, 1.0))
	reg.Pause(root.ID)
	assert.False(t, reg.Record(root.ID).IsPlaying)

	// A paused action's clock does not advance.
	reg.AdvanceAll(1.0)
	assert.Equal(t, float32(0), reg.Progress(root.ID))

	reg.Resume(root.ID)
	reg.AdvanceAll(1.0)
	assert.InDelta(t, 0.5, float64(reg.Progress(root.ID)), 1e-6)
}

func TestStopClearsCurrent(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	require.True(t, reg.Play(root.ID, "Death", false, 1.0))
	reg.Stop(root.ID)

	rec := reg.Record(root.ID)
	assert.False(t, rec.IsPlaying)
	assert.Nil(t, rec.Current())
	assert.Equal(t, float32(0), reg.Progress(root.ID))
}

func TestPoseAtFreezesWithoutPlaying(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	require.True(t, reg.PoseAt(root.ID, "Death", 0.5))

	rec := reg.Record(root.ID)
	assert.False(t, rec.IsPlaying, "a posed model is not playing")
	assert.Equal(t, [3]float32{5, 0, 0}, root.Find("Body").Position)
	assert.InDelta(t, 0.5, float64(reg.Progress(root.ID)), 1e-6)

	// The frozen pose holds under the shared clock.
	reg.AdvanceAll(1.0)
	assert.Equal(t, [3]float32{5, 0, 0}, root.Find("Body").Position)
}

func TestPoseAtUnknownClip(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	assert.False(t, reg.PoseAt(root.ID, "Recall", 0.5))
}

func TestConfigureActionAfterPose(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	require.True(t, reg.PoseAt(root.ID, "Attack2", 0.94))
	require.True(t, reg.ConfigureAction(root.ID, "Attack2", true, 1.0))

	rec := reg.Record(root.ID)
	assert.True(t, rec.IsLooping)
	assert.Equal(t, float32(1.0), rec.PlaybackSpeed)
	// Still frozen until something resumes it.
	assert.False(t, rec.IsPlaying)
}

func TestSetProgressResamples(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	require.True(t, reg.Play(root.ID, "Death", false, 1.0))
	reg.SetProgress(root.ID, 0.25)
	assert.Equal(t, [3]float32{2.5, 0, 0}, root.Find("Body").Position)
}

func TestZeroDurationProgress(t *testing.T) {
	reg := animator.NewRegistry()
	root := scene.NewObject("Prop")
	clips := []model.AnimationClip{{Name: "Static", Duration: 0}}
	reg.Register(root, "Prop", clips)

	require.True(t, reg.Play(root.ID, "Static", false, 1.0))
	assert.Equal(t, float32(0), reg.Progress(root.ID))
	reg.AdvanceAll(1.0)
	assert.Equal(t, float32(0), reg.Progress(root.ID))
}

func TestRemove(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	reg.Remove(root.ID)
	assert.Nil(t, reg.Record(root.ID))
	assert.False(t, reg.Play(root.ID, "Death", false, 1.0))
}

func TestClipsForCopies(t *testing.T) {
	reg := animator.NewRegistry()
	root, clips := rig()
	reg.Register(root, "Baron", clips)

	infos := reg.ClipsFor(root.ID)
	require.Len(t, infos, 2)
	infos[0].Name = "mangled"
	fresh := reg.ClipsFor(root.ID)
	assert.Equal(t, "Death", fresh[0].Name)

	assert.Nil(t, reg.ClipsFor(scene.NewObject("ghost").ID))
}

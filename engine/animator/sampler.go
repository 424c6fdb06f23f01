package animator

import (
	"github.com/K0rnli/rift-rewind/common"
	"github.com/K0rnli/rift-rewind/engine/model"
	"github.com/K0rnli/rift-rewind/engine/scene"
)

// samplePose writes the clip's transforms at time t into the target subtree.
// Channels address nodes by name, so sampling works on any clone of the
// subtree the clip was imported with.
func samplePose(target *scene.Object, clip *model.AnimationClip, t float32) {
	if target == nil || clip == nil {
		return
	}
	for i := range clip.Channels {
		ch := &clip.Channels[i]
		node := target.Find(ch.NodeName)
		if node == nil {
			continue
		}
		if len(ch.PositionKeys) > 0 {
			node.Position = sampleVector(ch.PositionKeys, t)
		}
		if len(ch.RotationKeys) > 0 {
			node.Quaternion = sampleQuaternion(ch.RotationKeys, t)
		}
		if len(ch.ScaleKeys) > 0 {
			node.Scale = sampleVector(ch.ScaleKeys, t)
		}
	}
}

// sampleVector linearly interpolates a vector track at time t, clamping to
// the first and last keyframes.
func sampleVector(keys []model.VectorKeyframe, t float32) [3]float32 {
	if t <= keys[0].Time {
		return keys[0].Value
	}
	last := len(keys) - 1
	if t >= keys[last].Time {
		return keys[last].Value
	}
	i := segmentIndex(len(keys), func(j int) float32 { return keys[j].Time }, t)
	a, b := keys[i], keys[i+1]
	span := b.Time - a.Time
	if span <= 0 {
		return a.Value
	}
	return common.Lerp3(a.Value, b.Value, (t-a.Time)/span)
}

// sampleQuaternion spherically interpolates a rotation track at time t,
// clamping to the first and last keyframes.
func sampleQuaternion(keys []model.QuaternionKeyframe, t float32) [4]float32 {
	if t <= keys[0].Time {
		return keys[0].Value
	}
	last := len(keys) - 1
	if t >= keys[last].Time {
		return keys[last].Value
	}
	i := segmentIndex(len(keys), func(j int) float32 { return keys[j].Time }, t)
	a, b := keys[i], keys[i+1]
	span := b.Time - a.Time
	if span <= 0 {
		return a.Value
	}
	return common.Slerp(a.Value, b.Value, (t-a.Time)/span)
}

// segmentIndex binary-searches for the keyframe segment containing t,
// returning the index of the segment's left key.
func segmentIndex(n int, timeAt func(int) float32, t float32) int {
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if timeAt(mid) <= t {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

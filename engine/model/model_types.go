package model

// --- Transform Types ---

// Transform represents a decomposed transform for animation interpolation.
type Transform struct {
	// Translation is the position offset.
	Translation [3]float32

	// Rotation is the orientation as a quaternion (x, y, z, w).
	Rotation [4]float32

	// Scale is the scale factor along each axis.
	Scale [3]float32
}

// IdentityTransform returns a Transform with zero translation, identity
// rotation, and unit scale.
//
// Returns:
//   - Transform: the identity transform
func IdentityTransform() Transform {
	return Transform{
		Rotation: [4]float32{0, 0, 0, 1},
		Scale:    [3]float32{1, 1, 1},
	}
}

// --- Animation Types ---

// AnimationClip represents a single animation (idle, death, attack, etc.).
type AnimationClip struct {
	// Name is the animation identifier.
	Name string

	// Duration is the total length of the animation in seconds.
	Duration float32

	// Channels contains animation data for each animated node.
	Channels []AnimationChannel
}

// Clone returns a deep copy of the clip. Each placed instance of an asset
// samples its own copy so looping and clamping never share mutable state
// between instances.
//
// Returns:
//   - *AnimationClip: an independent copy of the clip
func (c *AnimationClip) Clone() *AnimationClip {
	out := &AnimationClip{
		Name:     c.Name,
		Duration: c.Duration,
		Channels: make([]AnimationChannel, len(c.Channels)),
	}
	for i, ch := range c.Channels {
		out.Channels[i] = AnimationChannel{
			NodeName:     ch.NodeName,
			PositionKeys: append([]VectorKeyframe(nil), ch.PositionKeys...),
			RotationKeys: append([]QuaternionKeyframe(nil), ch.RotationKeys...),
			ScaleKeys:    append([]VectorKeyframe(nil), ch.ScaleKeys...),
		}
	}
	return out
}

// TrackCount returns the number of keyframe tracks across all channels.
// A channel contributes one track per non-empty keyframe list.
//
// Returns:
//   - int: the total track count
func (c *AnimationClip) TrackCount() int {
	count := 0
	for _, ch := range c.Channels {
		if len(ch.PositionKeys) > 0 {
			count++
		}
		if len(ch.RotationKeys) > 0 {
			count++
		}
		if len(ch.ScaleKeys) > 0 {
			count++
		}
	}
	return count
}

// AnimationChannel contains keyframe data for a single scene node. Channels
// target nodes by name because placed instances are deep clones of the source
// asset: node identity changes per clone, node names do not.
type AnimationChannel struct {
	// NodeName is the name of the node this channel animates.
	NodeName string

	// PositionKeys are keyframes for translation.
	PositionKeys []VectorKeyframe

	// RotationKeys are keyframes for rotation (quaternion).
	RotationKeys []QuaternionKeyframe

	// ScaleKeys are keyframes for scale.
	ScaleKeys []VectorKeyframe
}

// VectorKeyframe stores a 3D vector value at a specific time.
type VectorKeyframe struct {
	// Time is the keyframe timestamp in seconds.
	Time float32

	// Value is the 3D vector value at this keyframe.
	Value [3]float32
}

// QuaternionKeyframe stores a quaternion rotation at a specific time.
type QuaternionKeyframe struct {
	// Time is the keyframe timestamp in seconds.
	Time float32

	// Value is the quaternion value at this keyframe (x, y, z, w).
	Value [4]float32
}

package common

import "math"

// DegToRad converts an angle from degrees to radians.
//
// Parameters:
//   - degrees: the angle in degrees
//
// Returns:
//   - float32: the angle in radians
func DegToRad(degrees float32) float32 {
	return degrees * math.Pi / 180
}

// RadToDeg converts an angle from radians to degrees.
//
// Parameters:
//   - radians: the angle in radians
//
// Returns:
//   - float32: the angle in degrees
func RadToDeg(radians float32) float32 {
	return radians * 180 / math.Pi
}

// Clamp01 clamps v to the [0, 1] range.
//
// Parameters:
//   - v: the value to clamp
//
// Returns:
//   - float32: v limited to [0, 1]
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor, usually in [0, 1]
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Lerp3 linearly interpolates between two 3-component vectors by t.
//
// Parameters:
//   - a: start vector
//   - b: end vector
//   - t: interpolation factor, usually in [0, 1]
//
// Returns:
//   - [3]float32: the interpolated vector
func Lerp3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// Slerp performs spherical linear interpolation between two quaternions (x, y, z, w).
// Falls back to normalized linear interpolation when the quaternions are nearly
// parallel, where the spherical formula becomes numerically unstable.
//
// Parameters:
//   - a: start quaternion
//   - b: end quaternion
//   - t: interpolation factor, usually in [0, 1]
//
// Returns:
//   - [4]float32: the interpolated unit quaternion
func Slerp(a, b [4]float32, t float32) [4]float32 {
	dot := a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]

	// Take the shorter arc.
	if dot < 0 {
		b = [4]float32{-b[0], -b[1], -b[2], -b[3]}
		dot = -dot
	}

	if dot > 0.9995 {
		return NormalizeQuat([4]float32{
			Lerp(a[0], b[0], t),
			Lerp(a[1], b[1], t),
			Lerp(a[2], b[2], t),
			Lerp(a[3], b[3], t),
		})
	}

	theta0 := float32(math.Acos(float64(dot)))
	theta := theta0 * t
	sinTheta := float32(math.Sin(float64(theta)))
	sinTheta0 := float32(math.Sin(float64(theta0)))

	s0 := float32(math.Cos(float64(theta))) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return [4]float32{
		s0*a[0] + s1*b[0],
		s0*a[1] + s1*b[1],
		s0*a[2] + s1*b[2],
		s0*a[3] + s1*b[3],
	}
}

// NormalizeQuat normalizes a quaternion to unit length. Returns the identity
// quaternion for zero-length input.
//
// Parameters:
//   - q: the quaternion to normalize (x, y, z, w)
//
// Returns:
//   - [4]float32: the unit-length quaternion
func NormalizeQuat(q [4]float32) [4]float32 {
	l := float32(math.Sqrt(float64(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])))
	if l == 0 {
		return [4]float32{0, 0, 0, 1}
	}
	return [4]float32{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

package camera

import (
	"sync"

	"github.com/K0rnli/rift-rewind/common"
)

type CameraBuilderOption func(*cameraImpl)

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = [3]float32{x, y, z}
	}
}

// WithFov sets the camera's field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the clip planes
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}

// WithHome sets the camera's home position and target, and starts the camera
// there.
//
// Parameters:
//   - position: the home world position
//   - target: the home look-at point
//
// Returns:
//   - CameraBuilderOption: a function that sets the home pose
func WithHome(position, target [3]float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.home = position
		c.homeTarget = target
		c.position = position
		c.target = target
	}
}

// NewCamera creates a Camera with sensible perspective defaults.
//
// Parameters:
//   - opts: optional CameraBuilderOption configuration
//
// Returns:
//   - Camera: the new camera
func NewCamera(opts ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		up:     [3]float32{0, 1, 0},
		fov:    common.DegToRad(75),
		aspect: 16.0 / 9.0,
		near:   0.1,
		far:    100000,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

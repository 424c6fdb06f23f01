package camera

import (
	"sync"
)

type cameraImpl struct {
	mu *sync.Mutex

	position [3]float32
	target   [3]float32
	up       [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	home       [3]float32
	homeTarget [3]float32
}

// Camera is the replay viewpoint. It holds a position and an orbit target;
// focusing on an object moves the target onto the object and offsets the
// position so the framing stays consistent across landmarks.
// Thread-safe for concurrent access.
type Camera interface {
	// Position returns the camera's world position.
	Position() [3]float32

	// SetPosition moves the camera.
	//
	// Parameters:
	//   - pos: the new world position
	SetPosition(pos [3]float32)

	// Target returns the camera's look-at point.
	Target() [3]float32

	// SetTarget moves the look-at point.
	//
	// Parameters:
	//   - target: the new look-at point
	SetTarget(target [3]float32)

	// Up returns the camera's up vector.
	Up() [3]float32

	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// SetAspect sets the aspect ratio.
	//
	// Parameters:
	//   - aspect: the new aspect ratio
	SetAspect(aspect float32)

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// Focus points the camera at a position: the target moves onto it and the
	// camera position becomes the position plus the offset.
	//
	// Parameters:
	//   - point: the world position to frame
	//   - offset: the camera displacement from the point
	Focus(point, offset [3]float32)

	// Reset returns the camera to its home position and target.
	Reset()
}

var _ Camera = &cameraImpl{}

func (c *cameraImpl) Position() [3]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(pos [3]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = pos
}

func (c *cameraImpl) Target() [3]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraImpl) SetTarget(target [3]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
}

func (c *cameraImpl) Up() [3]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Focus(point, offset [3]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = point
	c.position = [3]float32{
		point[0] + offset[0],
		point[1] + offset[1],
		point[2] + offset[2],
	}
}

func (c *cameraImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = c.home
	c.target = c.homeTarget
}

package director

import (
	"github.com/rs/zerolog"

	"github.com/K0rnli/rift-rewind/engine/camera"
)

// DirectorBuilderOption is a functional option for configuring a Director during construction.
type DirectorBuilderOption func(*director)

// WithCamera is an option builder that wires a camera into the director so
// events move the viewpoint. Without one, focus requests are skipped.
//
// Parameters:
//   - cam: the camera to drive
//
// Returns:
//   - DirectorBuilderOption: a function that applies the camera to a director
func WithCamera(cam camera.Camera) DirectorBuilderOption {
	return func(d *director) {
		d.camera = cam
	}
}

// WithDirectorLogger is an option builder that sets the director's logger.
//
// Parameters:
//   - log: the zerolog.Logger to emit event handling logs to
//
// Returns:
//   - DirectorBuilderOption: a function that applies the logger to a director
func WithDirectorLogger(log zerolog.Logger) DirectorBuilderOption {
	return func(d *director) {
		d.log = log
	}
}

package engine

import (
	"github.com/rs/zerolog"

	"github.com/K0rnli/rift-rewind/engine/camera"
	"github.com/K0rnli/rift-rewind/engine/catalog"
)

// ViewerBuilderOption is a functional option for configuring a Viewer.
// Use the With* functions to create options that are applied directly to the viewer instance.
type ViewerBuilderOption func(*viewer)

// WithViewerLogger sets the logger shared by every subsystem.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithViewerLogger(log zerolog.Logger) ViewerBuilderOption {
	return func(v *viewer) {
		v.log = log
	}
}

// WithViewerCamera sets a pre-configured camera rather than allowing the
// viewer to create one from the map geometry.
//
// Parameters:
//   - cam: a pre-configured Camera instance
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithViewerCamera(cam camera.Camera) ViewerBuilderOption {
	return func(v *viewer) {
		v.camera = cam
	}
}

// WithGeometry sets the map geometry driving elevation, camera framing, and
// avatar offsets.
//
// Parameters:
//   - geometry: the map's spatial constants
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithGeometry(geometry *catalog.MapGeometry) ViewerBuilderOption {
	return func(v *viewer) {
		v.geometry = geometry
	}
}

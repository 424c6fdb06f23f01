package animator

import (
	"github.com/rs/zerolog"
)

// RegistryBuilderOption is a functional option for configuring a Registry during construction.
type RegistryBuilderOption func(*animRegistry)

// WithLogger is an option builder that sets the registry's logger.
//
// Parameters:
//   - log: the zerolog.Logger to emit animation events to
//
// Returns:
//   - RegistryBuilderOption: a function that applies the logger to a registry
func WithLogger(log zerolog.Logger) RegistryBuilderOption {
	return func(r *animRegistry) {
		r.log = log
	}
}

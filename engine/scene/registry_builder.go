package scene

import (
	"github.com/rs/zerolog"
)

// RegistryBuilderOption is a functional option for configuring a Registry during construction.
type RegistryBuilderOption func(*registry)

// WithTypeResolver is an option builder that sets the classifier used when the
// registry adopts objects straight from the graph.
//
// Parameters:
//   - resolve: the TypeResolver to classify instance names with
//
// Returns:
//   - RegistryBuilderOption: a function that applies the resolver to a registry
func WithTypeResolver(resolve TypeResolver) RegistryBuilderOption {
	return func(r *registry) {
		if resolve != nil {
			r.resolve = resolve
		}
	}
}

// WithRegistryLogger is an option builder that sets the registry's logger.
//
// Parameters:
//   - log: the zerolog.Logger to emit registry events to
//
// Returns:
//   - RegistryBuilderOption: a function that applies the logger to a registry
func WithRegistryLogger(log zerolog.Logger) RegistryBuilderOption {
	return func(r *registry) {
		r.log = log
	}
}

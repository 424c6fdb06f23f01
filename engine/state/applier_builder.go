package state

import (
	"github.com/rs/zerolog"
)

// ApplierBuilderOption is a functional option for configuring an Applier during construction.
type ApplierBuilderOption func(*applier)

// WithMatcher is an option builder that replaces the applier's part matcher.
//
// Parameters:
//   - m: the Matcher to resolve part keys with
//
// Returns:
//   - ApplierBuilderOption: a function that applies the matcher to an applier
func WithMatcher(m Matcher) ApplierBuilderOption {
	return func(a *applier) {
		if m != nil {
			a.matcher = m
		}
	}
}

// WithPoser is an option builder that wires an animation poser into the
// applier so state animation directives take effect.
//
// Parameters:
//   - p: the Poser to forward directives to
//
// Returns:
//   - ApplierBuilderOption: a function that applies the poser to an applier
func WithPoser(p Poser) ApplierBuilderOption {
	return func(a *applier) {
		a.poser = p
	}
}

// WithApplierLogger is an option builder that sets the applier's logger.
//
// Parameters:
//   - log: the zerolog.Logger to emit applier events to
//
// Returns:
//   - ApplierBuilderOption: a function that applies the logger to an applier
func WithApplierLogger(log zerolog.Logger) ApplierBuilderOption {
	return func(a *applier) {
		a.log = log
	}
}

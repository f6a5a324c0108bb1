// Package attrenum generates members for attributes restricted to a closed
// set of values: a frozen choice constant, one predicate and one query scope
// per choice, and an inclusion validation.
package attrenum

import (
	"github.com/goliatone/go-attrenum/generator"
	"github.com/goliatone/go-attrenum/pkg/types"
	"github.com/goliatone/go-attrenum/registry"
)

// Re-export the core types so consumers can do `attrenum.Define(...)`
// without importing the individual packages.
type (
	Class       = registry.Class
	ClassOption = registry.Option
	Options     = types.Options
	Symbol      = types.Symbol
	Model       = types.Model
	Attributes  = types.Attributes
	Host        = types.Host
	Guard       = types.Guard
)

// NewClass constructs an in-memory host.
func NewClass(name string, opts ...ClassOption) *Class {
	return registry.NewClass(name, opts...)
}

// WithScopes enables scope generation on a Class.
func WithScopes() ClassOption {
	return registry.WithScopes()
}

// Define generates the constant, predicates, scopes and inclusion rule for
// attribute and installs them on host.
func Define(host Host, attribute string, choices []any, opts Options, options ...generator.Option) error {
	return generator.Apply(host, attribute, choices, opts, options...)
}

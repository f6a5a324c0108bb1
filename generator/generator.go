// Package generator turns a resolved EnumSpec into host members (constant,
// predicates, scopes and the inclusion rule) and installs them.
package generator

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-attrenum/naming"
	"github.com/goliatone/go-attrenum/options"
	"github.com/goliatone/go-attrenum/pkg/types"
	"github.com/goliatone/go-attrenum/validation"
)

type config struct {
	logger types.Logger
}

// Option customizes Apply.
type Option func(*config)

// WithLogger wires a logger that reports the generated member surface.
func WithLogger(logger types.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{logger: types.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Build computes every member for spec without touching any host.
func Build(spec types.EnumSpec) (types.Members, error) {
	if len(spec.Choices) == 0 {
		return types.Members{}, types.ConfigError(types.ErrEmptyChoices, types.TextCodeEmptyChoices,
			fmt.Sprintf("go-attrenum: %s requires at least one choice", spec.Attribute),
			map[string]any{"attribute": spec.Attribute})
	}
	resolved := spec.Options
	names, err := naming.Identifiers(spec.Choices, resolved.Prefix, resolved.Suffix)
	if err != nil {
		return types.Members{}, err
	}

	choices := types.NewChoices(spec.Choices...)
	members := types.Members{
		Attribute: spec.Attribute,
		Rule:      validation.NewInclusion(spec.Attribute, choices, resolved.Validation),
	}

	if resolved.GenerateConstant {
		members.Constant = &types.Constant{Name: resolved.ConstantName, Choices: choices}
	}

	for i, choice := range spec.Choices {
		if resolved.GenerateMethods {
			members.Predicates = append(members.Predicates, types.NamedPredicate{
				Name:   naming.PredicateName(names[i]),
				Choice: choice,
				Fn:     predicate(spec.Attribute, choice),
			})
		}
		if resolved.GenerateScopes {
			members.Scopes = append(members.Scopes, types.NamedScope{
				Name:      names[i],
				Condition: types.ScopeCondition{Attribute: spec.Attribute, Value: choice},
			})
		}
	}
	return members, nil
}

// Apply resolves options, builds the members and installs them on host in a
// single Install call. Nothing is installed when any step fails.
func Apply(host types.Host, attribute string, choices []any, raw types.Options, opts ...Option) error {
	cfg := applyOptions(opts)
	if host == nil {
		return goerrors.Wrap(types.ErrHostRequired, goerrors.CategoryInternal, "go-attrenum: apply requires a host").
			WithCode(goerrors.CodeInternal).
			WithTextCode(types.TextCodeHostRequired)
	}

	spec, err := options.Resolve(options.ResolveInput{
		Attribute: attribute,
		Choices:   choices,
		Options:   raw,
		Host:      host,
	})
	if err != nil {
		cfg.logger.Error("attrenum: option resolution failed", err, "attribute", attribute)
		return err
	}

	members, err := Build(spec)
	if err != nil {
		cfg.logger.Error("attrenum: member generation failed", err, "attribute", spec.Attribute)
		return err
	}

	if members.Constant != nil {
		existing, ok := host.Constant(members.Constant.Name)
		switch {
		case ok && existing.Equal(members.Constant.Choices):
			members.Constant = nil
		case ok:
			err := ConstantConflict(spec.Attribute, members.Constant.Name)
			cfg.logger.Error("attrenum: constant already defined", err, "attribute", spec.Attribute, "constant", members.Constant.Name)
			return err
		}
	}

	if err := host.Install(members); err != nil {
		cfg.logger.Error("attrenum: install failed", err, "attribute", spec.Attribute)
		return err
	}

	cfg.logger.Debug("attrenum: attribute defined",
		"attribute", spec.Attribute,
		"choices", len(spec.Choices),
		"predicates", len(members.Predicates),
		"scopes", len(members.Scopes),
		"constant", spec.Options.ConstantName,
	)
	return nil
}

// ConstantConflict reports that name already holds a different choice list.
func ConstantConflict(attribute, name string) error {
	return types.ConfigError(types.ErrConstantConflict, types.TextCodeConstantConflict,
		fmt.Sprintf("go-attrenum: constant %s is already defined with different values", name),
		map[string]any{"attribute": attribute, "constant": name})
}

func predicate(attribute string, choice any) types.Predicate {
	return func(model types.Model) bool {
		if model == nil {
			return false
		}
		return types.Equal(model.Attribute(attribute), choice)
	}
}

// Package options normalizes caller configuration for one enumerated
// attribute: defaults, aliases, naming toggles and the split between
// generation and validation settings.
package options

import (
	"fmt"
	"reflect"
	"strings"

	opts "github.com/goliatone/go-options"
	"github.com/goliatone/go-attrenum/naming"
	"github.com/goliatone/go-attrenum/pkg/types"
)

// DefaultMessage is the message symbol used when callers do not supply one.
const DefaultMessage = types.Symbol("invalid")

// ResolveInput carries everything the resolver needs for one attribute.
type ResolveInput struct {
	Attribute string
	Choices   []any
	Options   types.Options
	// Host is inspected for the types.ScopeCapable marker only.
	Host any
}

var aliases = map[string]string{
	types.OptionGenerateConstant: types.OptionConstant,
	types.OptionCreateMethods:    types.OptionGenerateMethods,
	types.OptionCreateScopes:     types.OptionGenerateScopes,
	types.OptionChoices:          types.OptionIn,
}

var generationKeys = map[string]struct{}{
	types.OptionConstant:        {},
	types.OptionPrefix:          {},
	types.OptionSuffix:          {},
	types.OptionGenerateMethods: {},
	types.OptionGenerateScopes:  {},
}

var validationKeys = map[string]struct{}{
	types.OptionIn:         {},
	types.OptionMessage:    {},
	types.OptionAllowNil:   {},
	types.OptionAllowBlank: {},
	types.OptionIf:         {},
	types.OptionUnless:     {},
}

// Defaults returns the canonical default option set.
func Defaults() types.Options {
	return types.Options{
		types.OptionConstant:        true,
		types.OptionPrefix:          true,
		types.OptionSuffix:          false,
		types.OptionGenerateMethods: true,
		types.OptionGenerateScopes:  true,
		types.OptionMessage:         DefaultMessage,
		types.OptionAllowNil:        false,
		types.OptionAllowBlank:      false,
	}
}

// IsGenerationKey reports whether key drives member generation.
func IsGenerationKey(key string) bool {
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	_, ok := generationKeys[key]
	return ok
}

// IsValidationKey reports whether key belongs to the validation allow-list.
func IsValidationKey(key string) bool {
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	_, ok := validationKeys[key]
	return ok
}

// Resolve merges caller options over the defaults and produces the
// EnumSpec the generator consumes. Every configuration problem is reported
// here, before anything touches the host.
func Resolve(input ResolveInput) (types.EnumSpec, error) {
	attribute := strings.TrimSpace(input.Attribute)
	if attribute == "" {
		return types.EnumSpec{}, types.ConfigError(types.ErrAttributeRequired, types.TextCodeInvalidOption,
			"go-attrenum: attribute name required", nil)
	}

	raw, err := canonicalize(attribute, input.Options)
	if err != nil {
		return types.EnumSpec{}, err
	}

	choices, err := resolveChoices(attribute, input.Choices, raw)
	if err != nil {
		return types.EnumSpec{}, err
	}

	ifGuards, err := guards(attribute, types.OptionIf, raw[types.OptionIf])
	if err != nil {
		return types.EnumSpec{}, err
	}
	unlessGuards, err := guards(attribute, types.OptionUnless, raw[types.OptionUnless])
	if err != nil {
		return types.EnumSpec{}, err
	}
	delete(raw, types.OptionIf)
	delete(raw, types.OptionUnless)

	merged, err := layer(Defaults(), raw)
	if err != nil {
		return types.EnumSpec{}, err
	}

	resolved := types.ResolvedOptions{}

	if resolved.GenerateConstant, resolved.ConstantName, err = constant(attribute, merged[types.OptionConstant]); err != nil {
		return types.EnumSpec{}, err
	}
	prefix, err := affix(attribute, types.OptionPrefix, merged[types.OptionPrefix])
	if err != nil {
		return types.EnumSpec{}, err
	}
	suffix, err := affix(attribute, types.OptionSuffix, merged[types.OptionSuffix])
	if err != nil {
		return types.EnumSpec{}, err
	}
	resolved.Prefix = naming.Prefix(prefix)
	resolved.Suffix = naming.Suffix(suffix)

	if resolved.GenerateMethods, err = boolean(attribute, types.OptionGenerateMethods, merged[types.OptionGenerateMethods]); err != nil {
		return types.EnumSpec{}, err
	}
	if resolved.GenerateScopes, err = boolean(attribute, types.OptionGenerateScopes, merged[types.OptionGenerateScopes]); err != nil {
		return types.EnumSpec{}, err
	}
	if !SupportsScopes(input.Host) {
		resolved.GenerateScopes = false
	}

	validation := types.ValidationOptions{If: ifGuards, Unless: unlessGuards}
	if validation.Message, err = message(attribute, merged[types.OptionMessage]); err != nil {
		return types.EnumSpec{}, err
	}
	if validation.AllowNil, err = boolean(attribute, types.OptionAllowNil, merged[types.OptionAllowNil]); err != nil {
		return types.EnumSpec{}, err
	}
	if validation.AllowBlank, err = boolean(attribute, types.OptionAllowBlank, merged[types.OptionAllowBlank]); err != nil {
		return types.EnumSpec{}, err
	}
	for key, value := range merged {
		if IsGenerationKey(key) || IsValidationKey(key) {
			continue
		}
		if validation.Extra == nil {
			validation.Extra = make(map[string]any)
		}
		validation.Extra[key] = value
	}
	resolved.Validation = validation

	if _, err := naming.Identifiers(choices, resolved.Prefix, resolved.Suffix); err != nil {
		return types.EnumSpec{}, err
	}

	return types.EnumSpec{
		Attribute: attribute,
		Choices:   choices,
		Options:   resolved,
	}, nil
}

// SupportsScopes reports whether host carries the scope capability marker.
func SupportsScopes(host any) bool {
	capable, ok := host.(types.ScopeCapable)
	if !ok {
		return false
	}
	return capable.SupportsScopes()
}

func canonicalize(attribute string, raw types.Options) (types.Options, error) {
	out := raw.Clone()
	for alias, canonical := range aliases {
		value, ok := out[alias]
		if !ok {
			continue
		}
		if existing, present := out[canonical]; present && !sameOption(existing, value) {
			return nil, types.ConfigError(types.ErrConflictingOptions, types.TextCodeConflictingOptions,
				fmt.Sprintf("go-attrenum: options %q and %q disagree", canonical, alias),
				map[string]any{"attribute": attribute, "option": canonical, "alias": alias})
		}
		out[canonical] = value
		delete(out, alias)
	}
	return out, nil
}

func resolveChoices(attribute string, positional []any, raw types.Options) ([]any, error) {
	choices := append([]any(nil), positional...)
	if value, ok := raw[types.OptionIn]; ok {
		fromOption, err := toSlice(attribute, types.OptionIn, value)
		if err != nil {
			return nil, err
		}
		switch {
		case len(choices) == 0:
			choices = fromOption
		case len(fromOption) > 0 && !types.NewChoices(choices...).Equal(types.NewChoices(fromOption...)):
			return nil, types.ConfigError(types.ErrConflictingOptions, types.TextCodeConflictingOptions,
				"go-attrenum: choices argument and \"in\" option disagree",
				map[string]any{"attribute": attribute, "option": types.OptionIn})
		}
		delete(raw, types.OptionIn)
	}

	if len(choices) == 0 {
		return nil, types.ConfigError(types.ErrEmptyChoices, types.TextCodeEmptyChoices,
			fmt.Sprintf("go-attrenum: %s requires at least one choice", attribute),
			map[string]any{"attribute": attribute})
	}
	for i, choice := range choices {
		if choice == nil || !types.Comparable(choice) {
			return nil, types.ConfigError(types.ErrUncomparableChoice, types.TextCodeUncomparableChoice,
				fmt.Sprintf("go-attrenum: choice %d of %s cannot be compared", i, attribute),
				map[string]any{"attribute": attribute, "index": i, "type": fmt.Sprintf("%T", choice)})
		}
	}
	return choices, nil
}

func layer(defaults, overrides types.Options) (map[string]any, error) {
	system := opts.NewScope("defaults", opts.ScopePrioritySystem, opts.WithScopeLabel("Defaults"))
	caller := opts.NewScope("caller", opts.ScopePriorityUser, opts.WithScopeLabel("Caller"))
	stack, err := opts.NewStack(
		opts.NewLayer(system, map[string]any(defaults), opts.WithSnapshotID[map[string]any](system.Name)),
		opts.NewLayer(caller, map[string]any(overrides.Clone()), opts.WithSnapshotID[map[string]any](caller.Name)),
	)
	if err != nil {
		return nil, err
	}
	merged, err := stack.Merge()
	if err != nil {
		return nil, err
	}
	return merged.Value, nil
}

func constant(attribute string, value any) (bool, string, error) {
	switch v := value.(type) {
	case nil:
		return false, "", nil
	case bool:
		if !v {
			return false, "", nil
		}
		return true, naming.ConstantName(attribute), nil
	case string, types.Symbol:
		name := strings.TrimSpace(types.ValueString(v))
		if name == "" {
			return false, "", nil
		}
		if !naming.ValidIdentifier(name) {
			return false, "", invalidOption(attribute, types.OptionConstant, value)
		}
		return true, name, nil
	default:
		return false, "", invalidOption(attribute, types.OptionConstant, value)
	}
}

func affix(attribute, key string, value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case bool:
		if v {
			return attribute, nil
		}
		return "", nil
	case string:
		return v, nil
	case types.Symbol:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Slice, reflect.Map, reflect.Func, reflect.Struct, reflect.Chan:
			return "", invalidOption(attribute, key, value)
		}
		return fmt.Sprint(v), nil
	}
}

func boolean(attribute, key string, value any) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	default:
		return false, invalidOption(attribute, key, value)
	}
}

func message(attribute string, value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return DefaultMessage, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return DefaultMessage, nil
		}
		return v, nil
	case types.Symbol:
		return v, nil
	default:
		return nil, invalidOption(attribute, types.OptionMessage, value)
	}
}

func guards(attribute, key string, value any) ([]types.Guard, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case types.Guard:
		if v == nil {
			return nil, nil
		}
		return []types.Guard{v}, nil
	case func(types.Model) bool:
		if v == nil {
			return nil, nil
		}
		return []types.Guard{v}, nil
	case []types.Guard:
		out := make([]types.Guard, 0, len(v))
		for _, g := range v {
			if g != nil {
				out = append(out, g)
			}
		}
		return out, nil
	case []func(types.Model) bool:
		out := make([]types.Guard, 0, len(v))
		for _, g := range v {
			if g != nil {
				out = append(out, g)
			}
		}
		return out, nil
	default:
		return nil, invalidOption(attribute, key, value)
	}
}

func toSlice(attribute, key string, value any) ([]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []any:
		return append([]any(nil), v...), nil
	case types.Choices:
		return v.Values(), nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, invalidOption(attribute, key, value)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

func sameOption(a, b any) bool {
	if types.Comparable(a) && types.Comparable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func invalidOption(attribute, key string, value any) error {
	return types.ConfigError(types.ErrInvalidOption, types.TextCodeInvalidOption,
		fmt.Sprintf("go-attrenum: option %q has unsupported value %v (%T)", key, value, value),
		map[string]any{"attribute": attribute, "option": key})
}

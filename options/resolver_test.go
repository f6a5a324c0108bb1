package options

import (
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-attrenum/pkg/types"
	"github.com/stretchr/testify/require"
)

type scopedHost struct{ enabled bool }

func (h scopedHost) SupportsScopes() bool { return h.enabled }

func TestResolve_Defaults(t *testing.T) {
	spec, err := Resolve(ResolveInput{
		Attribute: "color",
		Choices:   []any{"red", "blue"},
		Host:      scopedHost{enabled: true},
	})
	require.NoError(t, err)

	require.Equal(t, "color", spec.Attribute)
	require.Equal(t, []any{"red", "blue"}, spec.Choices)
	require.True(t, spec.Options.GenerateConstant)
	require.Equal(t, "COLORS", spec.Options.ConstantName)
	require.True(t, spec.Options.GenerateMethods)
	require.True(t, spec.Options.GenerateScopes)
	require.Equal(t, "color_", spec.Options.Prefix)
	require.Equal(t, "", spec.Options.Suffix)
	require.Equal(t, DefaultMessage, spec.Options.Validation.Message)
	require.False(t, spec.Options.Validation.AllowNil)
	require.False(t, spec.Options.Validation.AllowBlank)
	require.Empty(t, spec.Options.Validation.Extra)
}

func TestResolve_CallerOverridesDefaults(t *testing.T) {
	spec, err := Resolve(ResolveInput{
		Attribute: "color",
		Choices:   []any{"red", "blue"},
		Options: types.Options{
			types.OptionPrefix:          false,
			types.OptionSuffix:          "tone",
			types.OptionConstant:        types.Symbol("POSSIBLE_COLORS"),
			types.OptionGenerateMethods: false,
			types.OptionMessage:         "%{value} is not a valid color",
			types.OptionAllowNil:        true,
		},
		Host: scopedHost{enabled: true},
	})
	require.NoError(t, err)

	require.Equal(t, "", spec.Options.Prefix)
	require.Equal(t, "_tone", spec.Options.Suffix)
	require.Equal(t, "POSSIBLE_COLORS", spec.Options.ConstantName)
	require.False(t, spec.Options.GenerateMethods)
	require.True(t, spec.Options.GenerateScopes)
	require.Equal(t, "%{value} is not a valid color", spec.Options.Validation.Message)
	require.True(t, spec.Options.Validation.AllowNil)
}

func TestResolve_AffixForms(t *testing.T) {
	tests := []struct {
		name   string
		prefix any
		suffix any
		pre    string
		suf    string
	}{
		{"prefix true", true, nil, "color_", ""},
		{"prefix false", false, nil, "", ""},
		{"prefix blank", "", nil, "", ""},
		{"prefix custom", "colored", nil, "colored_", ""},
		{"prefix symbol", types.Symbol("paint"), nil, "paint_", ""},
		{"suffix true", false, true, "", "_color"},
		{"suffix false", false, false, "", ""},
		{"suffix custom", false, "shade", "", "_shade"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := types.Options{types.OptionPrefix: tt.prefix}
			if tt.suffix != nil {
				raw[types.OptionSuffix] = tt.suffix
			}
			spec, err := Resolve(ResolveInput{Attribute: "color", Choices: []any{"red"}, Options: raw})
			require.NoError(t, err)
			require.Equal(t, tt.pre, spec.Options.Prefix)
			require.Equal(t, tt.suf, spec.Options.Suffix)
		})
	}
}

func TestResolve_ConstantSuppressed(t *testing.T) {
	spec, err := Resolve(ResolveInput{
		Attribute: "color",
		Choices:   []any{"red"},
		Options:   types.Options{types.OptionConstant: false},
	})
	require.NoError(t, err)
	require.False(t, spec.Options.GenerateConstant)
	require.Empty(t, spec.Options.ConstantName)
}

func TestResolve_ScopesDowngradeWithoutCapability(t *testing.T) {
	spec, err := Resolve(ResolveInput{
		Attribute: "color",
		Choices:   []any{"red"},
		Options:   types.Options{types.OptionGenerateScopes: true},
		Host:      struct{}{},
	})
	require.NoError(t, err)
	require.False(t, spec.Options.GenerateScopes)

	spec, err = Resolve(ResolveInput{
		Attribute: "color",
		Choices:   []any{"red"},
		Host:      scopedHost{enabled: false},
	})
	require.NoError(t, err)
	require.False(t, spec.Options.GenerateScopes)
}

func TestResolve_Aliases(t *testing.T) {
	spec, err := Resolve(ResolveInput{
		Attribute: "color",
		Options: types.Options{
			types.OptionChoices:          []string{"red", "blue"},
			types.OptionGenerateConstant: "PALETTE",
			types.OptionCreateMethods:    false,
			types.OptionCreateScopes:     false,
		},
		Host: scopedHost{enabled: true},
	})
	require.NoError(t, err)
	require.Equal(t, []any{"red", "blue"}, spec.Choices)
	require.Equal(t, "PALETTE", spec.Options.ConstantName)
	require.False(t, spec.Options.GenerateMethods)
	require.False(t, spec.Options.GenerateScopes)
}

func TestResolve_ConflictingAliases(t *testing.T) {
	_, err := Resolve(ResolveInput{
		Attribute: "color",
		Choices:   []any{"red"},
		Options: types.Options{
			types.OptionGenerateMethods: true,
			types.OptionCreateMethods:   false,
		},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, types.ErrConflictingOptions))
}

func TestResolve_ChoicesAndInDisagree(t *testing.T) {
	_, err := Resolve(ResolveInput{
		Attribute: "color",
		Choices:   []any{"red"},
		Options:   types.Options{types.OptionIn: []any{"blue"}},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, types.ErrConflictingOptions))
}

func TestResolve_EmptyChoices(t *testing.T) {
	_, err := Resolve(ResolveInput{Attribute: "color"})
	require.Error(t, err)
	require.True(t, errors.Is(err, types.ErrEmptyChoices))
	require.True(t, types.IsConfigurationError(err))

	var richErr *goerrors.Error
	require.True(t, goerrors.As(err, &richErr))
	require.Equal(t, types.TextCodeEmptyChoices, richErr.TextCode)
	require.Equal(t, "color", richErr.Metadata["attribute"])
}

func TestResolve_DuplicateIdentifiers(t *testing.T) {
	_, err := Resolve(ResolveInput{
		Attribute: "color",
		Choices:   []any{"Light Blue", "light-blue"},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, types.ErrDuplicateIdentifier))
}

func TestResolve_UncomparableChoice(t *testing.T) {
	_, err := Resolve(ResolveInput{
		Attribute: "color",
		Choices:   []any{"red", []string{"blue"}},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, types.ErrUncomparableChoice))
}

func TestResolve_InvalidOptionTypes(t *testing.T) {
	tests := map[string]types.Options{
		"allow_nil string":  {types.OptionAllowNil: "yes"},
		"methods int":       {types.OptionGenerateMethods: 1},
		"message int":       {types.OptionMessage: 42},
		"constant invalid":  {types.OptionConstant: "not a name"},
		"guard wrong type":  {types.OptionIf: "choice_red?"},
		"prefix slice":      {types.OptionPrefix: []string{"a"}},
		"in not a sequence": {types.OptionIn: "red"},
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(ResolveInput{Attribute: "color", Choices: []any{"red"}, Options: raw})
			require.Error(t, err)
			require.True(t, errors.Is(err, types.ErrInvalidOption), "got %v", err)
		})
	}
}

func TestResolve_ValidationSplit(t *testing.T) {
	guard := func(types.Model) bool { return true }
	spec, err := Resolve(ResolveInput{
		Attribute: "color",
		Choices:   []any{"red"},
		Options: types.Options{
			types.OptionIf:         guard,
			types.OptionUnless:     []types.Guard{guard, guard},
			types.OptionAllowBlank: true,
			"strict":               true,
			"on":                   "create",
		},
	})
	require.NoError(t, err)
	require.Len(t, spec.Options.Validation.If, 1)
	require.Len(t, spec.Options.Validation.Unless, 2)
	require.True(t, spec.Options.Validation.AllowBlank)
	require.Equal(t, map[string]any{"strict": true, "on": "create"}, spec.Options.Validation.Extra)
}

func TestResolve_AttributeRequired(t *testing.T) {
	_, err := Resolve(ResolveInput{Attribute: "  ", Choices: []any{"red"}})
	require.Error(t, err)
	require.True(t, errors.Is(err, types.ErrAttributeRequired))
}

func TestResolve_DoesNotMutateCallerOptions(t *testing.T) {
	raw := types.Options{types.OptionCreateMethods: false, types.OptionIn: []any{"red"}}
	_, err := Resolve(ResolveInput{Attribute: "color", Options: raw})
	require.NoError(t, err)
	require.Contains(t, raw, types.OptionCreateMethods)
	require.Contains(t, raw, types.OptionIn)
}

func TestKeyClassification(t *testing.T) {
	require.True(t, IsGenerationKey(types.OptionPrefix))
	require.True(t, IsGenerationKey(types.OptionCreateScopes))
	require.False(t, IsGenerationKey(types.OptionMessage))
	require.True(t, IsValidationKey(types.OptionChoices))
	require.True(t, IsValidationKey(types.OptionUnless))
	require.False(t, IsValidationKey("strict"))
}

package command

import (
	"context"
	"errors"
	"testing"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-attrenum/pkg/types"
	"github.com/goliatone/go-attrenum/registry"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	infos  []string
	errors []error
}

func (l *recordingLogger) Debug(string, ...any) {}

func (l *recordingLogger) Info(msg string, _ ...any) {
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Error(_ string, err error, _ ...any) {
	l.errors = append(l.errors, err)
}

func TestDefineInput_Validate(t *testing.T) {
	require.ErrorIs(t, DefineInput{Attribute: "color"}.Validate(), ErrHostRequired)
	require.ErrorIs(t, DefineInput{Host: registry.NewClass("Paint"), Attribute: " "}.Validate(), ErrAttributeRequired)
	require.NoError(t, DefineInput{Host: registry.NewClass("Paint"), Attribute: "color"}.Validate())
	require.Equal(t, "command.attrenum.define", DefineInput{}.Type())
}

func TestDefineCommand_PopulatesResult(t *testing.T) {
	logger := &recordingLogger{}
	var hooked DefineResult
	cmd := NewDefineCommand(DefineCommandConfig{
		Logger: logger,
		Hooks: Hooks{AfterDefine: func(_ context.Context, r DefineResult) {
			hooked = r
		}},
	})
	class := registry.NewClass("Paint", registry.WithScopes())
	result := &DefineResult{}

	err := cmd.Execute(context.Background(), DefineInput{
		Host:      class,
		Attribute: "color",
		Choices:   []any{"red", "blue"},
		Result:    result,
	})
	require.NoError(t, err)

	require.Equal(t, "COLORS", result.Constant)
	require.Equal(t, []string{"color_red?", "color_blue?"}, result.Predicates)
	require.Equal(t, []string{"color_red", "color_blue"}, result.Scopes)
	require.Equal(t, *result, hooked)
	require.Len(t, logger.infos, 1)
	require.True(t, class.RespondsTo("color_red?"))
}

func TestDefineCommand_HonoursScopeCapability(t *testing.T) {
	cmd := NewDefineCommand(DefineCommandConfig{})
	result := &DefineResult{}
	err := cmd.Execute(context.Background(), DefineInput{
		Host:      registry.NewClass("Paint"),
		Attribute: "color",
		Choices:   []any{"red"},
		Options:   types.Options{types.OptionGenerateScopes: true},
		Result:    result,
	})
	require.NoError(t, err)
	require.Empty(t, result.Scopes)
}

func TestDefineCommand_LogsConfigurationErrors(t *testing.T) {
	logger := &recordingLogger{}
	cmd := NewDefineCommand(DefineCommandConfig{Logger: logger})
	err := cmd.Execute(context.Background(), DefineInput{
		Host:      registry.NewClass("Paint"),
		Attribute: "color",
	})
	require.True(t, errors.Is(err, types.ErrEmptyChoices))
	require.NotEmpty(t, logger.errors)
	require.Empty(t, logger.infos)
}

func TestValidateCommand_ReportsFailures(t *testing.T) {
	class := registry.NewClass("Paint")
	require.NoError(t, class.Define("color", []any{"red", "blue"}, nil))

	cmd := NewValidateCommand(nil)
	var result ozzo.Errors
	require.NoError(t, cmd.Execute(context.Background(), ValidateInput{
		Validator: class,
		Model:     types.Attributes{"color": "green"},
		Result:    &result,
	}))
	require.EqualError(t, result["color"], "is invalid")

	require.NoError(t, cmd.Execute(context.Background(), ValidateInput{
		Validator: class,
		Model:     types.Attributes{"color": "red"},
		Result:    &result,
	}))
	require.Nil(t, result)
}

func TestValidateCommand_RequiresInputs(t *testing.T) {
	cmd := NewValidateCommand(nil)
	require.ErrorIs(t, cmd.Execute(context.Background(), ValidateInput{Model: types.Attributes{}}), ErrValidatorRequired)
	require.ErrorIs(t, cmd.Execute(context.Background(), ValidateInput{Validator: registry.NewClass("Paint")}), ErrModelRequired)
}

type failingValidator struct{ err error }

func (f failingValidator) Validate(types.Model) error { return f.err }

func TestValidateCommand_PropagatesUnexpectedErrors(t *testing.T) {
	boom := errors.New("boom")
	logger := &recordingLogger{}
	cmd := NewValidateCommand(logger)
	err := cmd.Execute(context.Background(), ValidateInput{
		Validator: failingValidator{err: boom},
		Model:     types.Attributes{},
	})
	require.ErrorIs(t, err, boom)
	require.Len(t, logger.errors, 1)
}

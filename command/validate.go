package command

import (
	"context"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-attrenum/pkg/types"
)

// Validator checks a model against installed rules. registry.Class
// satisfies it.
type Validator interface {
	Validate(model types.Model) error
}

// ValidateInput asks Validator to check Model. Failures are reported in
// Result rather than as the command error.
type ValidateInput struct {
	Validator Validator
	Model     types.Model
	Result    *ozzo.Errors
}

// Type implements gocommand.Message.
func (ValidateInput) Type() string {
	return "command.attrenum.validate"
}

// Validate implements gocommand.Message.
func (input ValidateInput) Validate() error {
	if input.Validator == nil {
		return ErrValidatorRequired
	}
	if input.Model == nil {
		return ErrModelRequired
	}
	return nil
}

// ValidateCommand runs attribute validation for a model.
type ValidateCommand struct {
	logger types.Logger
}

// NewValidateCommand constructs the validate handler.
func NewValidateCommand(logger types.Logger) *ValidateCommand {
	return &ValidateCommand{logger: safeLogger(logger)}
}

var _ gocommand.Commander[ValidateInput] = (*ValidateCommand)(nil)

// Execute runs the validator. Only unexpected (non validation) errors are
// returned.
func (c *ValidateCommand) Execute(_ context.Context, input ValidateInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	err := input.Validator.Validate(input.Model)
	if err == nil {
		if input.Result != nil {
			*input.Result = nil
		}
		return nil
	}

	errs, ok := err.(ozzo.Errors)
	if !ok {
		c.logger.Error("attrenum validation failed", err)
		return err
	}
	c.logger.Debug("attrenum model invalid", "attributes", len(errs))
	if input.Result != nil {
		*input.Result = errs
	}
	return nil
}

package command

import (
	"errors"

	"github.com/goliatone/go-attrenum/pkg/types"
)

var (
	// ErrHostRequired indicates the define command was invoked without a host.
	ErrHostRequired = types.ErrHostRequired
	// ErrAttributeRequired indicates the attribute name was missing.
	ErrAttributeRequired = types.ErrAttributeRequired
	// ErrValidatorRequired indicates the validate command lacks a validator.
	ErrValidatorRequired = errors.New("go-attrenum: validator required")
	// ErrModelRequired indicates the validate command lacks a model.
	ErrModelRequired = errors.New("go-attrenum: model required")
)

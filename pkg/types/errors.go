package types

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to configuration errors.
const (
	TextCodeEmptyChoices        = "ATTRENUM_EMPTY_CHOICES"
	TextCodeDuplicateIdentifier = "ATTRENUM_DUPLICATE_IDENTIFIER"
	TextCodeInvalidIdentifier   = "ATTRENUM_INVALID_IDENTIFIER"
	TextCodeConstantConflict    = "ATTRENUM_CONSTANT_CONFLICT"
	TextCodeInvalidOption       = "ATTRENUM_INVALID_OPTION"
	TextCodeConflictingOptions  = "ATTRENUM_CONFLICTING_OPTIONS"
	TextCodeUncomparableChoice  = "ATTRENUM_UNCOMPARABLE_CHOICE"
	TextCodeHostRequired        = "ATTRENUM_HOST_REQUIRED"
)

var (
	// ErrConfiguration is the root of every class-setup failure.
	ErrConfiguration = errors.New("go-attrenum: configuration error")
	// ErrEmptyChoices indicates the choice set is empty.
	ErrEmptyChoices = fmt.Errorf("%w: choices must not be empty", ErrConfiguration)
	// ErrDuplicateIdentifier indicates two choices format to the same member name.
	ErrDuplicateIdentifier = fmt.Errorf("%w: duplicate identifier", ErrConfiguration)
	// ErrInvalidIdentifier indicates a choice cannot become a member name.
	ErrInvalidIdentifier = fmt.Errorf("%w: invalid identifier", ErrConfiguration)
	// ErrConstantConflict indicates the constant name already holds other values.
	ErrConstantConflict = fmt.Errorf("%w: constant already defined", ErrConfiguration)
	// ErrInvalidOption indicates an option carries a value of the wrong type.
	ErrInvalidOption = fmt.Errorf("%w: invalid option", ErrConfiguration)
	// ErrConflictingOptions indicates an option and its alias disagree.
	ErrConflictingOptions = fmt.Errorf("%w: conflicting options", ErrConfiguration)
	// ErrUncomparableChoice indicates a choice cannot be compared with ==.
	ErrUncomparableChoice = fmt.Errorf("%w: choice is not comparable", ErrConfiguration)
	// ErrAttributeRequired indicates the attribute name was blank.
	ErrAttributeRequired = fmt.Errorf("%w: attribute required", ErrConfiguration)

	// ErrHostRequired indicates Apply was called without a host.
	ErrHostRequired = errors.New("go-attrenum: host required")
	// ErrUnknownMember indicates a dispatcher lookup for a member that was never generated.
	ErrUnknownMember = errors.New("go-attrenum: unknown member")
)

// ConfigError wraps a configuration sentinel into a categorised go-errors value.
func ConfigError(sentinel error, textCode, message string, metadata map[string]any) error {
	err := goerrors.Wrap(sentinel, goerrors.CategoryValidation, message).
		WithCode(goerrors.CodeBadRequest).
		WithTextCode(textCode)
	if len(metadata) > 0 {
		err = err.WithMetadata(metadata)
	}
	return err
}

// IsConfigurationError reports whether err is a class-setup failure.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

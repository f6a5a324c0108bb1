// Package validation provides the inclusion rule installed for every
// enumerated attribute. The rule plugs into ozzo-validation so hosts can mix
// it with other rules.
package validation

import (
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-attrenum/pkg/types"
)

// ErrorCode is the ozzo error code carried by inclusion failures.
const ErrorCode = "validation_inclusion"

var messages = map[types.Symbol]string{
	"invalid":   "is invalid",
	"inclusion": "is not included in the list",
	"blank":     "can't be blank",
}

// Inclusion restricts an attribute to a closed set of choices. Membership
// uses strict equality, so a Symbol choice never accepts a plain string.
type Inclusion struct {
	attribute string
	choices   types.Choices
	opts      types.ValidationOptions
}

var (
	_ ozzo.Rule  = (*Inclusion)(nil)
	_ types.Rule = (*Inclusion)(nil)
)

// NewInclusion builds the rule for attribute.
func NewInclusion(attribute string, choices types.Choices, opts types.ValidationOptions) *Inclusion {
	return &Inclusion{
		attribute: attribute,
		choices:   choices,
		opts:      cloneOptions(opts),
	}
}

// Attribute implements types.Rule.
func (r *Inclusion) Attribute() string {
	return r.attribute
}

// Choices returns the allowed values.
func (r *Inclusion) Choices() types.Choices {
	return r.choices
}

// Options returns a copy of the validation options.
func (r *Inclusion) Options() types.ValidationOptions {
	return cloneOptions(r.opts)
}

// Applies evaluates the if/unless guards for model.
func (r *Inclusion) Applies(model types.Model) bool {
	for _, guard := range r.opts.If {
		if !guard(model) {
			return false
		}
	}
	for _, guard := range r.opts.Unless {
		if guard(model) {
			return false
		}
	}
	return true
}

// Check implements types.Rule: it reads the attribute from model and
// validates it when the guards allow.
func (r *Inclusion) Check(model types.Model) error {
	if !r.Applies(model) {
		return nil
	}
	var value any
	if model != nil {
		value = model.Attribute(r.attribute)
	}
	return r.Validate(value)
}

// Validate implements ozzo.Rule.
func (r *Inclusion) Validate(value any) error {
	deref, isNil := ozzo.Indirect(value)
	if isNil {
		if r.opts.AllowNil || r.opts.AllowBlank {
			return nil
		}
		return r.failure(nil)
	}
	if r.opts.AllowBlank && types.IsBlank(deref) {
		return nil
	}
	if r.choices.Contains(deref) {
		return nil
	}
	return r.failure(deref)
}

func (r *Inclusion) failure(value any) error {
	return ozzo.NewError(ErrorCode, r.Message(value))
}

// Message renders the failure message for value. Symbol messages are looked
// up in the built-in table; %{value} and %{attribute} are interpolated.
func (r *Inclusion) Message(value any) string {
	var text string
	switch m := r.opts.Message.(type) {
	case types.Symbol:
		if known, ok := messages[m]; ok {
			text = known
		} else {
			text = strings.ReplaceAll(string(m), "_", " ")
		}
	case string:
		text = m
	default:
		text = messages["invalid"]
	}
	return strings.NewReplacer(
		"%{value}", types.ValueString(value),
		"%{attribute}", r.attribute,
	).Replace(text)
}

func cloneOptions(opts types.ValidationOptions) types.ValidationOptions {
	out := opts
	out.If = append([]types.Guard(nil), opts.If...)
	out.Unless = append([]types.Guard(nil), opts.Unless...)
	if len(opts.Extra) > 0 {
		out.Extra = make(map[string]any, len(opts.Extra))
		for k, v := range opts.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

package types

import (
	"fmt"
	"reflect"
	"strings"
)

// Symbol is a symbolic atom. A Symbol never compares equal to a plain string
// holding the same text, so choice sets can keep both kinds apart.
type Symbol string

// String returns the symbol text.
func (s Symbol) String() string {
	return string(s)
}

// Option keys recognised by the resolver. Aliases are listed next to the
// canonical spelling they resolve to.
const (
	OptionIn      = "in"
	OptionChoices = "choices"

	OptionConstant         = "constant"
	OptionGenerateConstant = "generate_constant"

	OptionPrefix = "prefix"
	OptionSuffix = "suffix"

	OptionGenerateMethods = "generate_methods"
	OptionCreateMethods   = "create_methods"

	OptionGenerateScopes = "generate_scopes"
	OptionCreateScopes   = "create_scopes"

	OptionMessage    = "message"
	OptionAllowNil   = "allow_nil"
	OptionAllowBlank = "allow_blank"
	OptionIf         = "if"
	OptionUnless     = "unless"
)

// Options is the raw configuration supplied by callers. Keys are the Option*
// constants; unknown keys are forwarded to the validation rule untouched.
type Options map[string]any

// Clone returns a shallow copy so callers can keep mutating their map.
func (o Options) Clone() Options {
	if o == nil {
		return Options{}
	}
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Model exposes attribute values of a host instance.
type Model interface {
	Attribute(name string) any
}

// Attributes is a map backed Model, handy for dynamic records and tests.
type Attributes map[string]any

// Attribute implements Model.
func (a Attributes) Attribute(name string) any {
	if a == nil {
		return nil
	}
	return a[name]
}

// ModelFunc adapts a function to Model.
type ModelFunc func(name string) any

// Attribute implements Model.
func (fn ModelFunc) Attribute(name string) any {
	if fn == nil {
		return nil
	}
	return fn(name)
}

// Guard decides whether a conditional validation runs for a model.
type Guard func(Model) bool

// Predicate reports whether a model's attribute matches one choice.
type Predicate func(Model) bool

// ValueString returns the canonical string form of a choice value.
func ValueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case Symbol:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Comparable reports whether value can be used with the == operator without
// panicking.
func Comparable(value any) bool {
	if value == nil {
		return true
	}
	return reflect.TypeOf(value).Comparable()
}

// Equal compares two values with Go interface equality: dynamic types must
// match, so Symbol("red") != "red". Non comparable values are never equal.
func Equal(a, b any) bool {
	if !Comparable(a) || !Comparable(b) {
		return false
	}
	return a == b
}

// IsBlank reports whether value is nil, false, a whitespace-only string or
// symbol, or an empty collection.
func IsBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case Symbol:
		return strings.TrimSpace(string(v)) == ""
	case bool:
		return !v
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsBlank(rv.Elem().Interface())
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	}
	return false
}

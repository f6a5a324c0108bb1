package types

// Host is the class-like target augmented by the generator. Install must
// register the whole member set in one step: either everything becomes
// visible or nothing does.
type Host interface {
	Constant(name string) (Choices, bool)
	Install(members Members) error
}

// ScopeCapable marks hosts that can register named query scopes. Hosts that
// do not implement it, or report false, never receive scopes.
type ScopeCapable interface {
	SupportsScopes() bool
}

// Rule is a validation rule bound to one attribute.
type Rule interface {
	Attribute() string
	Check(model Model) error
}

// ScopeCondition is the backend neutral form of a generated scope:
// "rows where Attribute equals Value".
type ScopeCondition struct {
	Attribute string
	Value     any
}

// Constant is a named, frozen choice list.
type Constant struct {
	Name    string
	Choices Choices
}

// NamedPredicate pairs a generated predicate with its member name.
type NamedPredicate struct {
	Name   string
	Choice any
	Fn     Predicate
}

// NamedScope pairs a scope condition with its member name.
type NamedScope struct {
	Name      string
	Condition ScopeCondition
}

// Members is everything one generator run installs on a host.
type Members struct {
	Attribute  string
	Constant   *Constant
	Predicates []NamedPredicate
	Scopes     []NamedScope
	Rule       Rule
}

// EnumSpec is the ephemeral description of one enumerated attribute.
type EnumSpec struct {
	Attribute string
	Choices   []any
	Options   ResolvedOptions
}

// ValidationOptions configures the inclusion rule.
type ValidationOptions struct {
	Message    any
	AllowNil   bool
	AllowBlank bool
	If         []Guard
	Unless     []Guard
	Extra      map[string]any
}

// ResolvedOptions is the normalized configuration for one generator run.
// Prefix and Suffix already carry their separator when non-blank.
type ResolvedOptions struct {
	GenerateConstant bool
	ConstantName     string
	GenerateMethods  bool
	GenerateScopes   bool
	Prefix           string
	Suffix           string
	Validation       ValidationOptions
}

// Logger captures basic logging hooks used by the library.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Error(msg string, err error, fields ...any)
}

// NopLogger discards all log lines.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, ...any) {}

// Info implements Logger.
func (NopLogger) Info(string, ...any) {}

// Error implements Logger.
func (NopLogger) Error(string, error, ...any) {}

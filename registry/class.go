// Package registry provides an in-memory host for generated members: a
// member table keyed by name plus a dispatcher and validation runner.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-attrenum/generator"
	"github.com/goliatone/go-attrenum/naming"
	"github.com/goliatone/go-attrenum/pkg/types"
)

// Class is a model definition that generated members attach to. It is safe
// for concurrent use; Install publishes a whole member set atomically.
type Class struct {
	mu sync.RWMutex

	name       string
	scopes     bool
	logger     types.Logger
	constants  map[string]types.Choices
	predicates map[string]types.NamedPredicate
	scopeTable map[string]types.ScopeCondition
	rules      []types.Rule
}

// Option customizes a Class.
type Option func(*Class)

// WithScopes enables named query scope registration.
func WithScopes() Option {
	return func(c *Class) {
		c.scopes = true
	}
}

// WithLogger wires a logger for install diagnostics.
func WithLogger(logger types.Logger) Option {
	return func(c *Class) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClass constructs an empty host named name.
func NewClass(name string, opts ...Option) *Class {
	c := &Class{
		name:       name,
		logger:     types.NopLogger{},
		constants:  make(map[string]types.Choices),
		predicates: make(map[string]types.NamedPredicate),
		scopeTable: make(map[string]types.ScopeCondition),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

var (
	_ types.Host         = (*Class)(nil)
	_ types.ScopeCapable = (*Class)(nil)
)

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// SupportsScopes implements types.ScopeCapable.
func (c *Class) SupportsScopes() bool {
	return c.scopes
}

// Define is a shorthand for generator.Apply on this class.
func (c *Class) Define(attribute string, choices []any, opts types.Options) error {
	return generator.Apply(c, attribute, choices, opts, generator.WithLogger(c.logger))
}

// Constant implements types.Host.
func (c *Class) Constant(name string) (types.Choices, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	choices, ok := c.constants[name]
	return choices, ok
}

// Install implements types.Host. Conflicts are checked before anything is
// written so a failed install leaves the class untouched.
func (c *Class) Install(members types.Members) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if members.Constant != nil {
		if existing, ok := c.constants[members.Constant.Name]; ok && !existing.Equal(members.Constant.Choices) {
			return generator.ConstantConflict(members.Attribute, members.Constant.Name)
		}
	}
	if len(members.Scopes) > 0 && !c.scopes {
		return goerrors.New(fmt.Sprintf("go-attrenum: class %s does not support scopes", c.name), goerrors.CategoryInternal).
			WithCode(goerrors.CodeInternal)
	}

	if members.Constant != nil {
		c.constants[members.Constant.Name] = members.Constant.Choices
	}
	for _, p := range members.Predicates {
		c.predicates[p.Name] = p
	}
	for _, s := range members.Scopes {
		c.scopeTable[s.Name] = s.Condition
	}
	if members.Rule != nil {
		c.rules = append(c.rules, members.Rule)
	}

	c.logger.Debug("attrenum: members installed",
		"class", c.name,
		"attribute", members.Attribute,
		"predicates", len(members.Predicates),
		"scopes", len(members.Scopes),
	)
	return nil
}

// Predicate returns the predicate registered under name ("color_red?").
func (c *Class) Predicate(name string) (types.Predicate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.predicates[name]
	if !ok {
		return nil, false
	}
	return p.Fn, true
}

// Is dispatches the predicate name against model. The trailing "?" is
// optional.
func (c *Class) Is(model types.Model, name string) (bool, error) {
	if !strings.HasSuffix(name, naming.PredicateMark) {
		name = naming.PredicateName(name)
	}
	fn, ok := c.Predicate(name)
	if !ok {
		return false, fmt.Errorf("%w: %s#%s", types.ErrUnknownMember, c.name, name)
	}
	return fn(model), nil
}

// Scope returns the scope condition registered under name.
func (c *Class) Scope(name string) (types.ScopeCondition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cond, ok := c.scopeTable[name]
	return cond, ok
}

// Scopes returns a copy of every registered scope.
func (c *Class) Scopes() map[string]types.ScopeCondition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]types.ScopeCondition, len(c.scopeTable))
	for k, v := range c.scopeTable {
		out[k] = v
	}
	return out
}

// RespondsTo reports whether name is a registered constant, predicate or scope.
func (c *Class) RespondsTo(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.constants[name]; ok {
		return true
	}
	if _, ok := c.predicates[name]; ok {
		return true
	}
	_, ok := c.scopeTable[name]
	return ok
}

// Members returns the sorted names of every generated member.
func (c *Class) Members() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.constants)+len(c.predicates)+len(c.scopeTable))
	for name := range c.constants {
		names = append(names, name)
	}
	for name := range c.predicates {
		names = append(names, name)
	}
	for name := range c.scopeTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rules returns the installed validation rules in install order.
func (c *Class) Rules() []types.Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]types.Rule(nil), c.rules...)
}

// Validate runs every rule against model. The result is nil or an
// ozzo validation.Errors keyed by attribute; the first failure per attribute
// wins.
func (c *Class) Validate(model types.Model) error {
	errs := ozzo.Errors{}
	for _, rule := range c.Rules() {
		if _, seen := errs[rule.Attribute()]; seen {
			continue
		}
		if err := rule.Check(model); err != nil {
			var internal ozzo.InternalError
			if errors.As(err, &internal) {
				return err
			}
			errs[rule.Attribute()] = err
		}
	}
	return errs.Filter()
}

// Valid reports whether model passes every rule.
func (c *Class) Valid(model types.Model) bool {
	return c.Validate(model) == nil
}

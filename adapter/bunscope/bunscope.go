// Package bunscope turns generated scope conditions into go-repository-bun
// select criteria so named scopes can be applied to bun queries.
package bunscope

import (
	"context"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-attrenum/pkg/types"
	"github.com/uptrace/bun"
)

// Source exposes the named scopes registered on a host. registry.Class
// satisfies it.
type Source interface {
	Scope(name string) (types.ScopeCondition, bool)
	Scopes() map[string]types.ScopeCondition
}

type config struct {
	columns map[string]string
	alias   string
}

// Option customizes criteria construction.
type Option func(*config)

// WithColumn maps an attribute to a column name when they differ.
func WithColumn(attribute, column string) Option {
	return func(cfg *config) {
		if cfg.columns == nil {
			cfg.columns = make(map[string]string)
		}
		cfg.columns[attribute] = column
	}
}

// WithTableAlias qualifies columns with alias ("a"."status").
func WithTableAlias(alias string) Option {
	return func(cfg *config) {
		cfg.alias = alias
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (cfg config) column(attribute string) string {
	column := attribute
	if mapped, ok := cfg.columns[attribute]; ok && mapped != "" {
		column = mapped
	}
	if cfg.alias != "" {
		return cfg.alias + "." + column
	}
	return column
}

// Criteria renders cond as WHERE "column" = ?. Symbols are stored as their
// string form.
func Criteria(cond types.ScopeCondition, opts ...Option) repository.SelectCriteria {
	cfg := applyOptions(opts)
	column := cfg.column(cond.Attribute)
	value := columnValue(cond.Value)
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		if value == nil {
			return q.Where("? IS NULL", bun.Ident(column))
		}
		return q.Where("? = ?", bun.Ident(column), value)
	}
}

// Named resolves the scope registered as name on source.
func Named(source Source, name string, opts ...Option) (repository.SelectCriteria, error) {
	if source == nil {
		return nil, types.ErrHostRequired
	}
	cond, ok := source.Scope(name)
	if !ok {
		return nil, fmt.Errorf("%w: scope %s", types.ErrUnknownMember, name)
	}
	return Criteria(cond, opts...), nil
}

// All converts every scope registered on source.
func All(source Source, opts ...Option) map[string]repository.SelectCriteria {
	if source == nil {
		return nil
	}
	scopes := source.Scopes()
	out := make(map[string]repository.SelectCriteria, len(scopes))
	for name, cond := range scopes {
		out[name] = Criteria(cond, opts...)
	}
	return out
}

func columnValue(value any) any {
	if sym, ok := value.(types.Symbol); ok {
		return string(sym)
	}
	return value
}

// Finder lists repository records through named scopes.
type Finder[T any] struct {
	repo   repository.Repository[T]
	source Source
	opts   []Option
}

// NewFinder wires a finder over repo using the scopes registered on source.
func NewFinder[T any](repo repository.Repository[T], source Source, opts ...Option) *Finder[T] {
	return &Finder[T]{repo: repo, source: source, opts: opts}
}

// List returns the records matching scope plus any extra criteria, along
// with the total count reported by the repository.
func (f *Finder[T]) List(ctx context.Context, scope string, criteria ...repository.SelectCriteria) ([]T, int, error) {
	if f == nil || f.repo == nil {
		return nil, 0, fmt.Errorf("bunscope: repository required")
	}
	named, err := Named(f.source, scope, f.opts...)
	if err != nil {
		return nil, 0, err
	}
	return f.repo.List(ctx, append([]repository.SelectCriteria{named}, criteria...)...)
}

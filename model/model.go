// Package model adapts Go structs, including bun records, to types.Model so
// generated predicates and rules can read their attributes.
package model

import (
	"reflect"
	"strings"
	"sync"

	"github.com/goliatone/go-attrenum/naming"
	"github.com/goliatone/go-attrenum/pkg/types"
)

var fieldCache sync.Map // reflect.Type -> map[string][]int

// Of wraps v as a types.Model. Maps with string keys and values that already
// implement types.Model are returned as is; structs and struct pointers are
// read through reflection. Attributes resolve by bun column name first, then
// by the snake_cased field name. Pointer fields are dereferenced; nil
// pointers read as nil.
func Of(v any) types.Model {
	switch m := v.(type) {
	case nil:
		return types.Attributes(nil)
	case types.Model:
		return m
	case map[string]any:
		return types.Attributes(m)
	}
	return structModel{value: reflect.ValueOf(v)}
}

type structModel struct {
	value reflect.Value
}

func (m structModel) Attribute(name string) any {
	rv := m.value
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	index, ok := fields(rv.Type())[name]
	if !ok {
		return nil
	}
	field, err := rv.FieldByIndexErr(index)
	if err != nil {
		return nil
	}
	for field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return nil
		}
		field = field.Elem()
	}
	if !field.CanInterface() {
		return nil
	}
	return field.Interface()
}

// Columns lists the attribute names readable from values of v's type.
func Columns(v any) []string {
	rt := reflect.TypeOf(v)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	collect(rt, nil, func(name string, _ []int) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	})
	return out
}

func fields(rt reflect.Type) map[string][]int {
	if cached, ok := fieldCache.Load(rt); ok {
		return cached.(map[string][]int)
	}
	index := make(map[string][]int)
	collect(rt, nil, func(name string, path []int) {
		if _, exists := index[name]; !exists {
			index[name] = path
		}
	})
	fieldCache.Store(rt, index)
	return index
}

func collect(rt reflect.Type, parent []int, visit func(string, []int)) {
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		path := append(append([]int(nil), parent...), i)
		tag := f.Tag.Get("bun")

		// Embedded structs (bun.BaseModel included) contribute their fields.
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collect(f.Type, path, visit)
			continue
		}
		if !f.IsExported() || tag == "-" {
			continue
		}
		if name := columnName(f.Name, tag); name != "" {
			visit(name, path)
		}
	}
}

func columnName(field, tag string) string {
	if tag != "" {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && !strings.Contains(name, ":") {
			return name
		}
	}
	name, err := naming.Fragment(field)
	if err != nil {
		return ""
	}
	return name
}

// Package codegen renders typed Go helpers for enumerated attributes: the
// choice constant, predicate methods, bun scope functions and an ozzo
// validation method per attribute.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/goliatone/go-attrenum/generator"
	"github.com/goliatone/go-attrenum/naming"
	"github.com/goliatone/go-attrenum/options"
	"github.com/goliatone/go-attrenum/pkg/types"
	"github.com/goliatone/go-attrenum/validation"
)

const (
	bunPkg        = "github.com/uptrace/bun"
	validationPkg = "github.com/go-ozzo/ozzo-validation/v4"

	// Header is written at the top of every generated file.
	Header = "Code generated by attrenum. DO NOT EDIT."

	valuePlaceholder = types.Symbol("%{value}")
)

// Config describes one generated file.
type Config struct {
	Package string `yaml:"package"`
	Scopes  bool   `yaml:"scopes"`
	Enums   []Enum `yaml:"enums"`
}

// Enum describes one enumerated string field on a struct type.
type Enum struct {
	Type      string         `yaml:"type"`
	Field     string         `yaml:"field"`
	Attribute string         `yaml:"attribute"`
	Choices   []string       `yaml:"choices"`
	Options   map[string]any `yaml:"options"`
}

type target struct {
	scopes bool
}

func (t target) SupportsScopes() bool { return t.scopes }

// Generate builds the file for cfg. Options are resolved exactly as they are
// for runtime hosts, so names and messages match.
func Generate(cfg Config) (*jen.File, error) {
	pkg := strings.TrimSpace(cfg.Package)
	if pkg == "" {
		return nil, types.ConfigError(types.ErrInvalidOption, types.TextCodeInvalidOption,
			"attrenum codegen: package name required", nil)
	}

	f := jen.NewFile(pkg)
	f.HeaderComment(Header)
	f.ImportAlias(validationPkg, "validation")

	seen := make(map[string]string)
	for _, enum := range cfg.Enums {
		if err := genEnum(f, cfg, enum, seen); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Render writes the generated source for cfg to w.
func Render(cfg Config, w io.Writer) error {
	f, err := Generate(cfg)
	if err != nil {
		return err
	}
	return f.Render(w)
}

func genEnum(f *jen.File, cfg Config, enum Enum, seen map[string]string) error {
	if strings.TrimSpace(enum.Type) == "" || strings.TrimSpace(enum.Field) == "" {
		return types.ConfigError(types.ErrInvalidOption, types.TextCodeInvalidOption,
			"attrenum codegen: enum type and field are required",
			map[string]any{"type": enum.Type, "field": enum.Field})
	}

	attribute := strings.TrimSpace(enum.Attribute)
	if attribute == "" {
		name, err := naming.Fragment(enum.Field)
		if err != nil {
			return err
		}
		attribute = name
	}

	choices := make([]any, 0, len(enum.Choices))
	for _, choice := range enum.Choices {
		choices = append(choices, choice)
	}

	spec, err := options.Resolve(options.ResolveInput{
		Attribute: attribute,
		Choices:   choices,
		Options:   types.Options(enum.Options),
		Host:      target{scopes: cfg.Scopes},
	})
	if err != nil {
		return err
	}
	members, err := generator.Build(spec)
	if err != nil {
		return err
	}

	owner := enum.Type + "." + enum.Field
	claim := func(name string) error {
		if prev, ok := seen[name]; ok {
			return types.ConfigError(types.ErrDuplicateIdentifier, types.TextCodeDuplicateIdentifier,
				fmt.Sprintf("attrenum codegen: %s is generated by both %s and %s", name, prev, owner),
				map[string]any{"name": name, "attribute": attribute})
		}
		seen[name] = owner
		return nil
	}

	if members.Constant != nil {
		if err := claim(members.Constant.Name); err != nil {
			return err
		}
		f.Commentf("%s lists the allowed values of %s.", members.Constant.Name, owner)
		f.Var().Id(members.Constant.Name).Op("=").Index().String().Values(literals(members.Constant.Choices.Strings())...)
	}

	field := jen.Id("m").Dot(enum.Field)
	for _, p := range members.Predicates {
		name := "Is" + naming.Pascal(strings.TrimSuffix(p.Name, naming.PredicateMark))
		if err := claim(enum.Type + "." + name); err != nil {
			return err
		}
		f.Commentf("%s reports whether %s is %q.", name, enum.Field, types.ValueString(p.Choice))
		f.Func().Params(jen.Id("m").Op("*").Id(enum.Type)).Id(name).Params().Bool().Block(
			jen.Return(field.Clone().Op("==").Lit(types.ValueString(p.Choice))),
		)
	}

	for _, s := range members.Scopes {
		name := naming.Pascal(s.Name) + "Scope"
		if err := claim(name); err != nil {
			return err
		}
		f.Commentf("%s restricts q to rows where %s is %q.", name, s.Condition.Attribute, types.ValueString(s.Condition.Value))
		f.Func().Id(name).Params(jen.Id("q").Op("*").Qual(bunPkg, "SelectQuery")).Op("*").Qual(bunPkg, "SelectQuery").Block(
			jen.Return(jen.Id("q").Dot("Where").Call(
				jen.Lit("? = ?"),
				jen.Qual(bunPkg, "Ident").Call(jen.Lit(s.Condition.Attribute)),
				jen.Lit(types.ValueString(s.Condition.Value)),
			)),
		)
	}

	return genValidate(f, enum, members, claim)
}

func genValidate(f *jen.File, enum Enum, members types.Members, claim func(string) error) error {
	name := "Validate" + enum.Field
	if err := claim(enum.Type + "." + name); err != nil {
		return err
	}
	rule, ok := members.Rule.(*validation.Inclusion)
	if !ok {
		return fmt.Errorf("attrenum codegen: unexpected rule %T", members.Rule)
	}
	opts := rule.Options()
	field := jen.Id("m").Dot(enum.Field)
	msg := message(rule.Message(valuePlaceholder), field)

	in := jen.Qual(validationPkg, "In").Call(literals(rule.Choices().Strings())...).Dot("Error").Call(msg)

	var rules []jen.Code
	if opts.AllowBlank {
		rules = []jen.Code{
			jen.Qual(validationPkg, "When").Call(
				jen.Qual("strings", "TrimSpace").Call(field.Clone()).Op("!=").Lit(""),
				in,
			),
		}
	} else {
		rules = []jen.Code{
			jen.Qual(validationPkg, "Required").Dot("Error").Call(msg.Clone()),
			in,
		}
	}

	f.Commentf("%s checks %s against %s.", name, enum.Field, constantOrChoices(members))
	f.Func().Params(jen.Id("m").Op("*").Id(enum.Type)).Id(name).Params().Error().Block(
		jen.Return(jen.Qual(validationPkg, "Validate").Call(append([]jen.Code{field.Clone()}, rules...)...)),
	)
	return nil
}

// message renders text as a literal, or as fmt.Sprintf over the field when
// it interpolates %{value}.
func message(text string, field *jen.Statement) *jen.Statement {
	placeholder := string(valuePlaceholder)
	count := strings.Count(text, placeholder)
	if count == 0 {
		return jen.Lit(text)
	}
	format := strings.ReplaceAll(strings.ReplaceAll(text, "%", "%%"), "%"+placeholder, "%s")
	args := []jen.Code{jen.Lit(format)}
	for i := 0; i < count; i++ {
		args = append(args, field.Clone())
	}
	return jen.Qual("fmt", "Sprintf").Call(args...)
}

func constantOrChoices(members types.Members) string {
	if members.Constant != nil {
		return members.Constant.Name
	}
	return "its choices"
}

func literals(values []string) []jen.Code {
	out := make([]jen.Code, 0, len(values))
	for _, v := range values {
		out = append(out, jen.Lit(v))
	}
	return out
}

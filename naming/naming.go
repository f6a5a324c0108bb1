// Package naming turns arbitrary choice values into member-name-safe
// identifiers and composes them with prefixes and suffixes.
package naming

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"github.com/goliatone/go-attrenum/pkg/types"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins words, affixes and fragments.
const Separator = "_"

// PredicateMark is appended to predicate member names.
const PredicateMark = "?"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Fragment converts value into a lowercase, underscore separated identifier
// fragment. It fails when nothing alphanumeric survives normalization.
func Fragment(value any) (string, error) {
	if value == nil {
		return "", invalidIdentifier(value, "", "nil choice")
	}
	raw := types.ValueString(value)
	fragment := collapse(strings.ToLower(splitWords(fold(raw))))
	if fragment == "" {
		return "", invalidIdentifier(value, fragment, "choice has no alphanumeric characters")
	}
	return fragment, nil
}

// Format is Fragment plus the standalone identifier check: the result can be
// used as a member name on its own.
func Format(value any) (string, error) {
	fragment, err := Fragment(value)
	if err != nil {
		return "", err
	}
	if !ValidIdentifier(fragment) {
		return "", invalidIdentifier(value, fragment, "identifier must not start with a digit")
	}
	return fragment, nil
}

// Compose joins prefix, fragment and suffix. Affixes are expected to carry
// their separator already (see Prefix and Suffix).
func Compose(prefix, fragment, suffix string) (string, error) {
	name := prefix + fragment + suffix
	if !ValidIdentifier(name) {
		return "", invalidIdentifier(fragment, name, "composed name is not a valid identifier")
	}
	return name, nil
}

// Prefix returns affix followed by the separator, or "" for blank affixes.
func Prefix(affix string) string {
	affix = strings.TrimSpace(affix)
	if affix == "" {
		return ""
	}
	return affix + Separator
}

// Suffix returns the separator followed by affix, or "" for blank affixes.
func Suffix(affix string) string {
	affix = strings.TrimSpace(affix)
	if affix == "" {
		return ""
	}
	return Separator + affix
}

// ConstantName derives the default constant name for an attribute:
// color -> COLORS, status -> STATUSES.
func ConstantName(attribute string) string {
	return strings.ToUpper(inflect.Pluralize(strings.TrimSpace(attribute)))
}

// PredicateName returns the predicate member name for a formatted name.
func PredicateName(name string) string {
	return name + PredicateMark
}

// ValidIdentifier reports whether name is usable as a member name.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// Pascal converts a snake_case name into PascalCase (color_red -> ColorRed).
func Pascal(name string) string {
	parts := strings.Split(name, Separator)
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// fold strips diacritics so "café" formats as "cafe".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// splitWords inserts a separator at case transitions:
//
//	CamelCase -> Camel_Case, HTTPCode -> HTTP_Code, v2Beta -> v2_Beta
//
// Runs of capitals stay together so UPPERCASE is a single word.
func splitWords(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range rs {
		if i > 0 && isUpperASCII(r) {
			prev := rs[i-1]
			switch {
			case isLowerASCII(prev) || isDigitASCII(prev):
				b.WriteString(Separator)
			case isUpperASCII(prev) && i+1 < len(rs) && isLowerASCII(rs[i+1]):
				b.WriteString(Separator)
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// collapse replaces runs of non [a-z0-9] characters with one separator and
// trims separators at both ends.
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if isLowerASCII(r) || isDigitASCII(r) {
			if pending && b.Len() > 0 {
				b.WriteString(Separator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

func isUpperASCII(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLowerASCII(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigitASCII(r rune) bool { return r >= '0' && r <= '9' }

func invalidIdentifier(value any, name, reason string) error {
	return types.ConfigError(
		types.ErrInvalidIdentifier,
		types.TextCodeInvalidIdentifier,
		fmt.Sprintf("go-attrenum: %s", reason),
		map[string]any{
			"choice": types.ValueString(value),
			"name":   name,
		},
	)
}

// Identifiers formats every choice and composes it with the affixes. Two
// choices that end up with the same name are a configuration error.
func Identifiers(choices []any, prefix, suffix string) ([]string, error) {
	names := make([]string, len(choices))
	seen := make(map[string]int, len(choices))
	for i, choice := range choices {
		fragment, err := Fragment(choice)
		if err != nil {
			return nil, err
		}
		name, err := Compose(prefix, fragment, suffix)
		if err != nil {
			return nil, err
		}
		if j, ok := seen[name]; ok {
			return nil, types.ConfigError(
				types.ErrDuplicateIdentifier,
				types.TextCodeDuplicateIdentifier,
				fmt.Sprintf("go-attrenum: choices %q and %q both format to %q", types.ValueString(choices[j]), types.ValueString(choice), name),
				map[string]any{
					"name":    name,
					"choices": []string{types.ValueString(choices[j]), types.ValueString(choice)},
				},
			)
		}
		seen[name] = i
		names[i] = name
	}
	return names, nil
}

package types

// Choices is the frozen, ordered choice list registered as a host constant.
// The backing slice is never exposed; every accessor hands out copies.
type Choices struct {
	values []any
}

// NewChoices copies values into a read-only Choices list.
func NewChoices(values ...any) Choices {
	if len(values) == 0 {
		return Choices{}
	}
	copied := make([]any, len(values))
	copy(copied, values)
	return Choices{values: copied}
}

// Len returns the number of choices.
func (c Choices) Len() int {
	return len(c.values)
}

// At returns the choice at index i.
func (c Choices) At(i int) any {
	return c.values[i]
}

// Values returns a copy of the choices in their original order.
func (c Choices) Values() []any {
	if len(c.values) == 0 {
		return nil
	}
	out := make([]any, len(c.values))
	copy(out, c.values)
	return out
}

// Strings returns the canonical string form of each choice.
func (c Choices) Strings() []string {
	if len(c.values) == 0 {
		return nil
	}
	out := make([]string, len(c.values))
	for i, v := range c.values {
		out[i] = ValueString(v)
	}
	return out
}

// Contains reports whether value is one of the choices, using strict equality.
func (c Choices) Contains(value any) bool {
	for _, v := range c.values {
		if Equal(v, value) {
			return true
		}
	}
	return false
}

// Equal reports whether both lists hold the same values in the same order.
func (c Choices) Equal(other Choices) bool {
	if len(c.values) != len(other.values) {
		return false
	}
	for i := range c.values {
		if !Equal(c.values[i], other.values[i]) {
			return false
		}
	}
	return true
}

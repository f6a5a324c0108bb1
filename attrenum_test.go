package attrenum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefine(t *testing.T) {
	class := NewClass("TestModel", WithScopes())
	require.NoError(t, Define(class, "choice", []any{Symbol("red"), Symbol("blue")}, Options{"prefix": "colored"}))

	model := Attributes{"choice": Symbol("blue")}
	ok, err := class.Is(model, "colored_blue?")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, class.Valid(model))

	_, found := class.Scope("colored_red")
	require.True(t, found)

	choices, found := class.Constant("CHOICES")
	require.True(t, found)
	require.Equal(t, []any{Symbol("red"), Symbol("blue")}, choices.Values())
}

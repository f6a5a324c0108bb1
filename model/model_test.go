package model

import (
	"testing"

	"github.com/goliatone/go-attrenum/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

type timestamps struct {
	CreatedBy string `bun:"created_by"`
}

type account struct {
	bun.BaseModel `bun:"table:accounts"`
	timestamps

	ID         uuid.UUID    `bun:",pk,type:uuid"`
	Status     string       `bun:"status,notnull"`
	Tier       *string      `bun:"plan_tier"`
	Kind       types.Symbol `bun:"kind"`
	HTTPCode   int
	Ignored    string `bun:"-"`
	secretNote string
}

func TestOf_ReadsBunColumns(t *testing.T) {
	tier := "pro"
	id := uuid.New()
	rec := &account{
		timestamps: timestamps{CreatedBy: "admin"},
		ID:         id,
		Status:     "active",
		Tier:       &tier,
		Kind:       types.Symbol("person"),
		HTTPCode:   204,
		Ignored:    "x",
		secretNote: "hidden",
	}
	m := Of(rec)

	require.Equal(t, "active", m.Attribute("status"))
	require.Equal(t, "pro", m.Attribute("plan_tier"))
	require.Equal(t, types.Symbol("person"), m.Attribute("kind"))
	require.Equal(t, id, m.Attribute("id"))
	require.Equal(t, 204, m.Attribute("http_code"))
	require.Equal(t, "admin", m.Attribute("created_by"))
	require.Nil(t, m.Attribute("ignored"))
	require.Nil(t, m.Attribute("secret_note"))
	require.Nil(t, m.Attribute("missing"))
}

func TestOf_NilPointerFieldsReadAsNil(t *testing.T) {
	m := Of(account{Status: "pending"})
	require.Nil(t, m.Attribute("plan_tier"))
	require.Equal(t, "pending", m.Attribute("status"))

	var missing *account
	require.Nil(t, Of(missing).Attribute("status"))
	require.Nil(t, Of(nil).Attribute("status"))
}

func TestOf_PassesModelsThrough(t *testing.T) {
	attrs := types.Attributes{"status": "active"}
	require.Equal(t, attrs, Of(attrs))
	require.Equal(t, "active", Of(map[string]any{"status": "active"}).Attribute("status"))
}

func TestColumns(t *testing.T) {
	require.Equal(t, []string{"created_by", "id", "status", "plan_tier", "kind", "http_code"}, Columns(&account{}))
	require.Nil(t, Columns("not a struct"))
}

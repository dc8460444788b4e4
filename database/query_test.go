package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/model"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementWhere(t *testing.T) {
	columns := []string{"id", "status", "created_at", "company_id"}

	t.Run("No filters", func(t *testing.T) {
		stmt := &statement{}
		where, err := stmt.where(nil, columns)
		require.NoError(t, err)
		assert.Equal(t, "", where)
		assert.Empty(t, stmt.args)
	})

	t.Run("Combines filters with AND and numbers arguments", func(t *testing.T) {
		since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		stmt := &statement{}
		where, err := stmt.where([]model.Filter{
			model.Eq("status", "unread"),
			model.Gte("created_at", since),
			model.Lt("created_at", since.AddDate(0, 1, 0)),
		}, columns)
		require.NoError(t, err)
		assert.Equal(t, " WHERE status = $1 AND created_at >= $2 AND created_at < $3", where)
		assert.Equal(t, []any{"unread", since, since.AddDate(0, 1, 0)}, stmt.args)
	})

	t.Run("In list uses an array argument", func(t *testing.T) {
		id := uuid.New()
		stmt := &statement{}
		where, err := stmt.where([]model.Filter{model.In("id", []uuid.UUID{id})}, columns)
		require.NoError(t, err)
		assert.Equal(t, " WHERE id::text = ANY($1)", where)
		require.Len(t, stmt.args, 1)
		assert.Equal(t, pq.Array([]string{id.String()}), stmt.args[0])
	})

	t.Run("Empty in list matches nothing", func(t *testing.T) {
		stmt := &statement{}
		where, err := stmt.where([]model.Filter{model.In("id", []string{})}, columns)
		require.NoError(t, err)
		assert.Equal(t, " WHERE FALSE", where)
	})

	t.Run("Nil equality becomes IS NULL", func(t *testing.T) {
		stmt := &statement{}
		where, err := stmt.where([]model.Filter{model.Eq("company_id", nil)}, columns)
		require.NoError(t, err)
		assert.Equal(t, " WHERE company_id IS NULL", where)
	})

	t.Run("Unknown column is rejected", func(t *testing.T) {
		stmt := &statement{}
		_, err := stmt.where([]model.Filter{model.Eq("status; DROP TABLE jobs", "x")}, columns)
		assert.ErrorIs(t, err, ErrUnknownColumn)
	})

	t.Run("Wrong value type is rejected", func(t *testing.T) {
		stmt := &statement{}
		_, err := stmt.where([]model.Filter{model.Eq("created_at", "yesterday")}, columns)
		require.NoError(t, err)

		_, err = stmt.where([]model.Filter{{Column: "created_at", Op: model.OpGte, Value: "yesterday"}}, columns)
		assert.ErrorIs(t, err, model.ErrInvalidValue)

		_, err = stmt.where([]model.Filter{{Column: "status", Op: "like", Value: "x"}}, columns)
		assert.Error(t, err)
	})
}

func TestStatementOrderAndLimit(t *testing.T) {
	columns := []string{"id", "created_at"}

	stmt := &statement{}
	tail, err := stmt.orderAndLimit(model.Query{Order: &model.Order{Column: "created_at"}, Limit: 10}, columns)
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY created_at DESC, id LIMIT $1", tail)
	assert.Equal(t, []any{10}, stmt.args)

	stmt = &statement{}
	tail, err = stmt.orderAndLimit(model.Query{Order: &model.Order{Column: "created_at", Ascending: true}}, columns)
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY created_at ASC, id", tail)

	_, err = stmt.orderAndLimit(model.Query{Order: &model.Order{Column: "name"}}, columns)
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestStatementSet(t *testing.T) {
	stmt := &statement{}
	set := stmt.set(model.DataMap{"verified": true, "name": "Acme"})
	assert.Equal(t, "name = $1, verified = $2", set)
	assert.Equal(t, "$3", stmt.arg("id"))
	assert.Equal(t, []any{"Acme", true, "id"}, stmt.args)
}

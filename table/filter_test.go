package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	columns := []Column{
		{Key: "name", Header: "Company Name"},
		{Key: "industry", Header: "Industry"},
	}
	acme := Row{"id": "1", "name": "Acme Corp", "industry": "Tech"}
	globex := Row{"id": "2", "name": "Globex", "industry": nil}
	initech := Row{"id": "3", "name": "Initech", "industry": "Software"}
	rows := []Row{acme, globex, initech}

	t.Run("Empty query returns rows unchanged", func(t *testing.T) {
		filtered := Filter(rows, columns, "")
		assert.Equal(t, rows, filtered)
	})

	t.Run("Query matches case insensitively", func(t *testing.T) {
		filtered := Filter(rows, columns, "acm")
		require.Len(t, filtered, 1)
		assert.Equal(t, "1", filtered[0].ID())

		filtered = Filter(rows, columns, "ACME")
		require.Len(t, filtered, 1)
		assert.Equal(t, "1", filtered[0].ID())
	})

	t.Run("Query without match excludes row", func(t *testing.T) {
		filtered := Filter(rows, columns, "XYZ")
		assert.Empty(t, filtered)
	})

	t.Run("Any column may match", func(t *testing.T) {
		filtered := Filter(rows, columns, "soft")
		require.Len(t, filtered, 1)
		assert.Equal(t, "3", filtered[0].ID())
	})

	t.Run("Nil values behave as empty strings", func(t *testing.T) {
		filtered := Filter(rows, columns, "nil")
		assert.Empty(t, filtered)
	})

	t.Run("Only column keys are searched", func(t *testing.T) {
		filtered := Filter([]Row{{"id": "x", "secret": "hidden", "name": "Visible"}}, columns, "hidden")
		assert.Empty(t, filtered)
	})

	t.Run("Result is a subset in source order and source is untouched", func(t *testing.T) {
		source := []Row{initech, acme, globex}
		filtered := Filter(source, columns, "e")
		for _, row := range filtered {
			assert.True(t, Matches(row, columns, "e"))
			assert.Contains(t, source, row)
		}
		assert.Equal(t, []Row{initech, acme, globex}, source)
		assert.Equal(t, "3", filtered[0].ID())
	})
}

func TestRowString(t *testing.T) {
	var nilTime *time.Time
	row := Row{
		"text":    "hello",
		"number":  42,
		"flag":    false,
		"nil":     nil,
		"nilTime": nilTime,
		"time":    testTime,
	}

	assert.Equal(t, "hello", row.String("text"))
	assert.Equal(t, "42", row.String("number"))
	assert.Equal(t, "false", row.String("flag"))
	assert.Equal(t, "", row.String("nil"))
	assert.Equal(t, "", row.String("nilTime"))
	assert.Equal(t, "", row.String("missing"))
	assert.Equal(t, "2025-03-14T09:26:53Z", row.String("time"))
	assert.Nil(t, row.Time("nilTime"))
	require.NotNil(t, row.Time("time"))
	assert.True(t, row.Time("time").Equal(testTime))
}

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 3, TotalPages(25, 0), "Expected default page size for invalid size")
}

func TestPaginate(t *testing.T) {
	rows := numberedRows(25)

	t.Run("First page holds the first ten rows", func(t *testing.T) {
		page := Paginate(rows, 1, 10)
		assert.Len(t, page, 10)
		assert.Equal(t, "row-01", page[0].ID())
		assert.Equal(t, "row-10", page[9].ID())
	})

	t.Run("Last page holds the remainder", func(t *testing.T) {
		page := Paginate(rows, 3, 10)
		assert.Len(t, page, 5)
		assert.Equal(t, "row-21", page[0].ID())
		assert.Equal(t, "row-25", page[4].ID())
	})

	t.Run("Out of range pages are empty", func(t *testing.T) {
		assert.Empty(t, Paginate(rows, 4, 10))
		assert.Empty(t, Paginate(rows, 0, 10))
		assert.Empty(t, Paginate(nil, 1, 10))
	})

	t.Run("Appending to a page does not touch the source", func(t *testing.T) {
		page := Paginate(rows, 1, 10)
		_ = append(page, Row{"id": "intruder"})
		assert.Equal(t, "row-11", rows[10].ID())
	})
}

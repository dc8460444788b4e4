package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	t.Run("Initial state is empty query on page one", func(t *testing.T) {
		state := NewState()
		assert.Equal(t, "", state.Search)
		assert.Equal(t, 1, state.Page)
	})

	t.Run("Changing the query resets the page", func(t *testing.T) {
		state := NewState()
		assert.True(t, state.GoToPage(3, 3))
		state.SetSearch("acme")
		assert.Equal(t, "acme", state.Search)
		assert.Equal(t, 1, state.Page)
	})

	t.Run("Changing the page keeps the query", func(t *testing.T) {
		state := NewState()
		state.SetSearch("acme")
		assert.True(t, state.GoToPage(2, 4))
		assert.Equal(t, "acme", state.Search)
		assert.Equal(t, 2, state.Page)
	})

	t.Run("Navigation outside the page range is a no-op", func(t *testing.T) {
		state := NewState()
		assert.True(t, state.GoToPage(2, 3))

		assert.False(t, state.GoToPage(0, 3))
		assert.Equal(t, 2, state.Page)

		assert.False(t, state.GoToPage(4, 3))
		assert.Equal(t, 2, state.Page)

		assert.False(t, state.GoToPage(-1, 3))
		assert.Equal(t, 2, state.Page)
	})

	t.Run("No page is reachable without rows", func(t *testing.T) {
		state := NewState()
		assert.False(t, state.GoToPage(1, 0))
		assert.Equal(t, 1, state.Page)
	})
}

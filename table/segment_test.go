package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegments(t *testing.T) {
	rows := []Row{
		{"id": "1", "status": "unread"},
		{"id": "2", "status": "read"},
		{"id": "3", "status": "unread"},
		{"id": "4", "status": "replied"},
	}
	segments := Segments{
		{Key: "unread", Label: "Unread", Match: FieldEquals("status", "unread")},
		{Key: "read", Label: "Read", Match: FieldEquals("status", "read")},
		{Key: "replied", Label: "Replied", Match: FieldEquals("status", "replied")},
	}

	t.Run("Apply selects matching rows", func(t *testing.T) {
		assert.Len(t, segments.Apply(rows, "unread"), 2)
		assert.Len(t, segments.Apply(rows, "replied"), 1)
		assert.Len(t, segments.Apply(rows, SegmentAll), 4)
		assert.Len(t, segments.Apply(rows, "bogus"), 4)
	})

	t.Run("Normalize falls back to all", func(t *testing.T) {
		assert.Equal(t, "read", segments.Normalize("read"))
		assert.Equal(t, SegmentAll, segments.Normalize("bogus"))
		assert.Equal(t, SegmentAll, segments.Normalize(""))
	})

	t.Run("Chips count rows and mark the active one", func(t *testing.T) {
		chips := segments.Chips(rows, "unread")
		assert.Equal(t, []Chip{
			{Key: SegmentAll, Label: "All", Count: 4},
			{Key: "unread", Label: "Unread", Count: 2, Active: true},
			{Key: "read", Label: "Read", Count: 1},
			{Key: "replied", Label: "Replied", Count: 1},
		}, chips)

		chips = segments.Chips(rows, "bogus")
		assert.True(t, chips[0].Active)
	})
}

package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, 3, 7, 14, 5, 9, 0, time.UTC)

	assert.Equal(t, "07/03/2025", FormatDate(&date))
	assert.Equal(t, "07/03/2025, 14:05:09", FormatDateTime(&date))
	assert.Equal(t, "N/A", FormatDate(nil))
	assert.Equal(t, "N/A", FormatDateTime(&time.Time{}))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Full-time", Capitalize("full-time"))
	assert.Equal(t, "Ünread", Capitalize("ünread"))
	assert.Equal(t, "", Capitalize(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, "abcde...", Truncate("abcdefgh", 5))
	assert.Equal(t, "ab...", Truncate("ab   cd", 4))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatCount(1234567))
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "9", BadgeCount(9))
	assert.Equal(t, "9+", BadgeCount(10))
}

package helper

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006, 15:04:05"
	NotAvailable   = "N/A"
)

// FormatDate renders t as day/month/year, NotAvailable for nil or zero times.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NotAvailable
	}
	return t.Format(DateLayout)
}

// FormatDateTime is FormatDate with the time of day.
func FormatDateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NotAvailable
	}
	return t.Format(DateTimeLayout)
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Truncate shortens s to max runes and appends "..." if anything was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRightFunc(string(runes[:max]), unicode.IsSpace) + "..."
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// BadgeCount caps a counter badge at "9+".
func BadgeCount(n int) string {
	if n > 9 {
		return "9+"
	}
	return humanize.Comma(int64(n))
}

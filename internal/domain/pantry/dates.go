package pantry

import (
	"strings"
	"time"
)

// Accepted calendar date layouts: ISO, DD/MM/YYYY and DD-MM-YYYY.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// ParseDate parses a date string in one of the accepted layouts.
// It fails closed: anything unparseable reports ok=false and the caller
// substitutes an absent date instead of surfacing an error.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date in the ISO layout used for storage and responses.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay truncates a timestamp to midnight UTC. Depletion math works on
// calendar dates, so "days remaining" is measured between midnights.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

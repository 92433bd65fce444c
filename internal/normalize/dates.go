package normalize

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. Day-first layouts come before month-first
// ones, so "01/02/2023" resolves as 1 February while "02/13/2023" falls
// through to the month-first layout. The day and month verbs are unpadded
// so each layout accepts both "02/01/2023" and "2/1/2023".
var dateLayouts = []string{
	"2006-1-2",
	"2/1/2006",
	"1/2/2006",
	"2-1-2006",
	"2-Jan-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"2.1.2006",
	"2006/1/2",
}

// ParseDate parses a statement date using the known bank layouts.
// It reports false for empty input or when no layout matches the
// whole string; a failed parse is not an error at this level.
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

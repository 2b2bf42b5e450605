// Package timeutil provides time formatting utilities for chainview.
//
// Chain files carry their timestamps as free-form strings. These
// helpers parse the common layouts and fall back to the raw label
// when nothing matches, so display never fails on odd input.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// layouts are tried in order by Parse.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
	"Jan 02 2006",
}

// Parse reads a timestamp or date label. ok is false when no known
// layout matches.
func Parse(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatUpdate formats the chain's last-update label for the header.
// Format: "2006-01-02 15:04 MST"; unparseable input is returned as is.
func FormatUpdate(s string) string {
	t, ok := Parse(s)
	if !ok {
		return s
	}
	return t.Format("2006-01-02 15:04 MST")
}

// DaysToExpiry returns whole calendar days from asOf to the expiration
// date. ok is false when either label cannot be parsed.
func DaysToExpiry(date, asOf string) (days int, ok bool) {
	exp, ok := Parse(date)
	if !ok {
		return 0, false
	}
	ref, ok := Parse(asOf)
	if !ok {
		return 0, false
	}
	expDay := time.Date(exp.Year(), exp.Month(), exp.Day(), 0, 0, 0, 0, time.UTC)
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return int(expDay.Sub(refDay).Hours() / 24), true
}

// FormatExpiry labels an expiration with its days to expiry.
// Examples: "2024-03-22 (7d)", "2024-03-15 (0d)"; the bare date when
// the days cannot be computed.
func FormatExpiry(date, asOf string) string {
	days, ok := DaysToExpiry(date, asOf)
	if !ok {
		return date
	}
	return fmt.Sprintf("%s (%dd)", date, days)
}

// RelativeTime returns a human-readable age of t measured at now.
// Examples: "just now", "5s ago", "2m ago", "1h ago"
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Second:
		return "just now"
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
}

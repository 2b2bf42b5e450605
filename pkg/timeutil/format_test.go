package timeutil

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	for _, in := range []string{
		"2024-03-15T16:00:00Z",
		"2024-03-15T16:00:00.123-04:00",
		"2024-03-15 16:00",
		"2024-03-22",
		"03/22/2024",
		"Mar 22, 2024",
	} {
		if _, ok := Parse(in); !ok {
			t.Errorf("Parse(%q) failed", in)
		}
	}
	if _, ok := Parse("next friday"); ok {
		t.Error("expected free text to be rejected")
	}
}

func TestFormatUpdate(t *testing.T) {
	if got := FormatUpdate("2024-03-15T16:00:00Z"); got != "2024-03-15 16:00 UTC" {
		t.Errorf("unexpected format %q", got)
	}
	if got := FormatUpdate("at the close"); got != "at the close" {
		t.Errorf("unparseable labels should pass through, got %q", got)
	}
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		date, asOf, want string
	}{
		{"2024-03-22", "2024-03-15T16:00:00Z", "2024-03-22 (7d)"},
		{"2024-03-15", "2024-03-15T16:00:00Z", "2024-03-15 (0d)"},
		{"2024-04-19", "2024-03-15", "2024-04-19 (35d)"},
		{"weekly", "2024-03-15", "weekly"},
		{"2024-03-22", "", "2024-03-22"},
	}
	for _, tt := range tests {
		if got := FormatExpiry(tt.date, tt.asOf); got != tt.want {
			t.Errorf("FormatExpiry(%q, %q) = %q, want %q", tt.date, tt.asOf, got, tt.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "just now"},
		{5 * time.Second, "5s ago"},
		{2 * time.Minute, "2m ago"},
		{3 * time.Hour, "3h ago"},
		{50 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		if got := RelativeTime(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("RelativeTime(-%s) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

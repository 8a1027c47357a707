package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestFormatListDate(t *testing.T) {
	now := time.Now()

	t.Run("empty", func(t *testing.T) {
		if got := formatListDate(""); got != "—" {
			t.Errorf("formatListDate(\"\") = %q, want —", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if got := formatListDate("not a time"); got != "—" {
			t.Errorf("formatListDate(invalid) = %q, want —", got)
		}
	})

	t.Run("today", func(t *testing.T) {
		stamp := now.Add(-time.Hour).Format(time.RFC3339)
		if got := formatListDate(stamp); !strings.HasPrefix(got, "Today ") {
			t.Errorf("formatListDate(1h ago) = %q, want Today prefix", got)
		}
	})

	t.Run("this week", func(t *testing.T) {
		then := now.Add(-48 * time.Hour)
		got := formatListDate(then.Format(time.RFC3339))
		if !strings.HasPrefix(got, then.Format("Mon")) {
			t.Errorf("formatListDate(2d ago) = %q, want weekday prefix", got)
		}
	})

	t.Run("old", func(t *testing.T) {
		got := formatListDate("2020-03-15T10:00:00Z")
		if got != "2020-03-15" {
			t.Errorf("formatListDate(2020) = %q, want 2020-03-15", got)
		}
	})
}

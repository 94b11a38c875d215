package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	got, ok := ParseDate("2025-03-14", loc)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Format("2006-01-02") != "2025-03-14" {
		t.Fatalf("unexpected date %v", got)
	}
	if got.Location() != loc {
		t.Fatalf("expected date in %v, got %v", loc, got.Location())
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, ok := ParseDate("", time.UTC); ok {
		t.Fatalf("expected not ok for empty")
	}
	if _, ok := ParseDate("03/14/2025", time.UTC); ok {
		t.Fatalf("expected not ok for wrong layout")
	}
}

func TestParseDateDefault(t *testing.T) {
	def := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	got := ParseDateDefault("", time.UTC, def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("06:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 6 || m != 30 {
		t.Fatalf("unexpected clock %d:%d", h, m)
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, s := range []string{"", "630", "24:00", "06:60", "aa:bb"} {
		if _, _, err := ParseClock(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses "YYYY-MM-DD" in the given zone. Returns (t, true) if it worked.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDateDefault parses a date or returns default if empty/invalid.
func ParseDateDefault(s string, loc *time.Location, def time.Time) time.Time {
	if t, ok := ParseDate(s, loc); ok {
		return t
	}
	return def
}

// ParseClock splits an "HH:MM" clock time into hour and minute.
func ParseClock(s string) (int, int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock time %q, want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("invalid hour in clock time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid minute in clock time %q", s)
	}
	return h, m, nil
}

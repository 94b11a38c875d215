package calendar

import (
	"testing"
	"time"
)

func newCalendar(t *testing.T) *Calendar {
	t.Helper()
	cal, err := New("America/Los_Angeles", "06:30", "13:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cal
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New("Not/AZone", "06:30", "13:00"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
	if _, err := New("America/Los_Angeles", "630", "13:00"); err == nil {
		t.Fatalf("expected error for malformed open")
	}
	if _, err := New("America/Los_Angeles", "06:30", "25:00"); err == nil {
		t.Fatalf("expected error for out-of-range close")
	}
}

func TestSessionWindow(t *testing.T) {
	cal := newCalendar(t)
	day, _ := cal.ParseDate("2025-03-14")
	open, close := cal.SessionWindow(day)

	if open.Hour() != 6 || open.Minute() != 30 {
		t.Fatalf("unexpected open %v", open)
	}
	if close.Hour() != 13 || close.Minute() != 0 {
		t.Fatalf("unexpected close %v", close)
	}
	if close.Sub(open) != 6*time.Hour+30*time.Minute {
		t.Fatalf("unexpected session length %v", close.Sub(open))
	}
}

func TestSessionWindowAcrossDST(t *testing.T) {
	cal := newCalendar(t)
	// 2025-03-09 is the US spring-forward date; the session must still
	// open at 06:30 local.
	day, _ := cal.ParseDate("2025-03-09")
	open, close := cal.SessionWindow(day)

	if open.Hour() != 6 || open.Minute() != 30 {
		t.Fatalf("open drifted across DST: %v", open)
	}
	if close.Hour() != 13 {
		t.Fatalf("close drifted across DST: %v", close)
	}

	// The UTC instant of the open shifts with the offset change: 14:30Z
	// under PST the day before, 13:30Z under PDT.
	before, _ := cal.ParseDate("2025-03-08")
	openBefore, _ := cal.SessionWindow(before)
	if openBefore.UTC().Hour() != 14 {
		t.Fatalf("expected 14:30Z open under PST, got %v", openBefore.UTC())
	}
	if open.UTC().Hour() != 13 {
		t.Fatalf("expected 13:30Z open under PDT, got %v", open.UTC())
	}
}

func TestMostRecentBusinessDay(t *testing.T) {
	cal := newCalendar(t)
	sat, _ := cal.ParseDate("2025-03-15")
	sun, _ := cal.ParseDate("2025-03-16")
	wed, _ := cal.ParseDate("2025-03-12")

	if got := cal.FormatDate(cal.MostRecentBusinessDay(sat)); got != "2025-03-14" {
		t.Fatalf("saturday should roll back to friday, got %s", got)
	}
	if got := cal.FormatDate(cal.MostRecentBusinessDay(sun)); got != "2025-03-14" {
		t.Fatalf("sunday should roll back to friday, got %s", got)
	}
	if got := cal.FormatDate(cal.MostRecentBusinessDay(wed)); got != "2025-03-12" {
		t.Fatalf("weekday should pass through, got %s", got)
	}
}

func TestPrevBusinessDay(t *testing.T) {
	cal := newCalendar(t)
	mon, _ := cal.ParseDate("2025-03-17")
	fri, _ := cal.ParseDate("2025-03-14")

	if got := cal.FormatDate(cal.PrevBusinessDay(mon)); got != "2025-03-14" {
		t.Fatalf("monday's previous business day should be friday, got %s", got)
	}
	if got := cal.FormatDate(cal.PrevBusinessDay(fri)); got != "2025-03-13" {
		t.Fatalf("friday's previous business day should be thursday, got %s", got)
	}
}

func TestParseDate(t *testing.T) {
	cal := newCalendar(t)
	day, err := cal.ParseDate("2025-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.FormatDate(day) != "2025-03-14" {
		t.Fatalf("round trip failed: %s", cal.FormatDate(day))
	}
	if day.Location() != cal.Location() {
		t.Fatalf("date not in exchange zone")
	}
	if _, err := cal.ParseDate("14/03/2025"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

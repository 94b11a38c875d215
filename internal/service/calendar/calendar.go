// Package calendar supplies the exchange-local trading session window and
// business-day arithmetic. The zone and session clock are injected from
// config rather than read from a process-wide default, so session windows
// stay correct across DST boundaries and tests can pin the zone.
package calendar

import (
	"fmt"
	"time"

	"github.com/RuneweaverStudios/openingCandle/pkg/util"
)

const dateLayout = "2006-01-02"

// Calendar is an exchange calendar/timezone context.
type Calendar struct {
	loc        *time.Location
	openHour   int
	openMin    int
	closeHour  int
	closeMin   int
	openLabel  string
	closeLabel string
}

// New builds a Calendar for the given IANA zone name and "HH:MM" session
// open/close clock times.
func New(timezone, open, close string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	oh, om, err := util.ParseClock(open)
	if err != nil {
		return nil, fmt.Errorf("session open: %w", err)
	}
	ch, cm, err := util.ParseClock(close)
	if err != nil {
		return nil, fmt.Errorf("session close: %w", err)
	}
	return &Calendar{
		loc:        loc,
		openHour:   oh,
		openMin:    om,
		closeHour:  ch,
		closeMin:   cm,
		openLabel:  open + ":00",
		closeLabel: close + ":00",
	}, nil
}

// Location returns the exchange-local zone.
func (c *Calendar) Location() *time.Location { return c.loc }

// OpenLabel returns the session open as "HH:MM:SS".
func (c *Calendar) OpenLabel() string { return c.openLabel }

// CloseLabel returns the session close as "HH:MM:SS".
func (c *Calendar) CloseLabel() string { return c.closeLabel }

// SessionWindow returns the session open and close instants for the
// calendar day containing t, built in the exchange zone.
func (c *Calendar) SessionWindow(t time.Time) (time.Time, time.Time) {
	local := t.In(c.loc)
	y, m, d := local.Date()
	open := time.Date(y, m, d, c.openHour, c.openMin, 0, 0, c.loc)
	close := time.Date(y, m, d, c.closeHour, c.closeMin, 0, 0, c.loc)
	return open, close
}

// DayBounds returns midnight of the calendar day containing t and
// midnight of the following day, in the exchange zone.
func (c *Calendar) DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(c.loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, c.loc)
	return start, start.AddDate(0, 0, 1)
}

// MostRecentBusinessDay rolls a weekend date back to the preceding
// Friday; weekdays pass through unchanged.
func (c *Calendar) MostRecentBusinessDay(t time.Time) time.Time {
	local := t.In(c.loc)
	switch local.Weekday() {
	case time.Saturday:
		return local.AddDate(0, 0, -1)
	case time.Sunday:
		return local.AddDate(0, 0, -2)
	default:
		return local
	}
}

// PrevBusinessDay returns the business day before t.
func (c *Calendar) PrevBusinessDay(t time.Time) time.Time {
	local := t.In(c.loc).AddDate(0, 0, -1)
	return c.MostRecentBusinessDay(local)
}

// ParseDate parses a "YYYY-MM-DD" date in the exchange zone.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as "YYYY-MM-DD" in the exchange zone.
func (c *Calendar) FormatDate(t time.Time) string {
	return t.In(c.loc).Format(dateLayout)
}

package strategy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RuneweaverStudios/openingCandle/internal/domain/models"
	"github.com/RuneweaverStudios/openingCandle/internal/service/calendar"
	xlogger "github.com/RuneweaverStudios/openingCandle/pkg/logger"
)

type nopMetrics struct{}

func (nopMetrics) RecordFetch(string)           {}
func (nopMetrics) RecordFetchLatency(float64)   {}
func (nopMetrics) RecordBarsServed(string, int) {}
func (nopMetrics) RecordDayEvaluated(string)    {}

// fakeSource serves canned bars keyed by date and counts fetches.
type fakeSource struct {
	bars    map[string][]models.Bar
	errDays map[string]error
	calls   int
}

func (f *fakeSource) IntradayBars(_ context.Context, _ string, day time.Time) ([]models.Bar, error) {
	f.calls++
	key := day.Format("2006-01-02")
	if err, ok := f.errDays[key]; ok {
		return nil, err
	}
	return f.bars[key], nil
}

func testCalendar(t *testing.T) *calendar.Calendar {
	t.Helper()
	cal, err := calendar.New("America/Los_Angeles", "06:30", "13:00")
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	return cal
}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newTestEvaluator(t *testing.T, src *fakeSource) *Evaluator {
	t.Helper()
	cal := testCalendar(t)
	e := NewEvaluator(src, cal, nopMetrics{}, testLogger(t), "MNQ=F")
	// Pin "now" to a Friday so the trailing window is deterministic.
	e.now = func() time.Time {
		return time.Date(2025, 3, 14, 15, 0, 0, 0, cal.Location())
	}
	return e
}

// sessionBars builds n 1-minute bars starting at the session open of date.
func sessionBars(t *testing.T, cal *calendar.Calendar, date string, specs ...models.Bar) []models.Bar {
	t.Helper()
	day, err := cal.ParseDate(date)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	open, _ := cal.SessionWindow(day)
	out := make([]models.Bar, len(specs))
	for i, b := range specs {
		b.Timestamp = open.Add(time.Duration(i) * time.Minute)
		out[i] = b
	}
	return out
}

func TestEvaluateUpDayBreakouts(t *testing.T) {
	cal := testCalendar(t)
	src := &fakeSource{bars: map[string][]models.Bar{
		// Reference bar closes above its open: direction up.
		// Second bar's high breaks the reference high (win); third bar's
		// low breaks the reference low (loss).
		"2025-03-14": sessionBars(t, cal, "2025-03-14",
			models.Bar{Open: 100, High: 105, Low: 98, Close: 104, Volume: 100},
			models.Bar{Open: 104, High: 110, Low: 103, Close: 108, Volume: 100},
			models.Bar{Open: 104, High: 104.5, Low: 90, Close: 95, Volume: 100},
		),
	}}
	e := newTestEvaluator(t, src)

	sum, err := e.Evaluate(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TotalDays != 1 {
		t.Fatalf("expected 1 evaluated day, got %d", sum.TotalDays)
	}
	day := sum.DailyBreakdown[0]
	if day.Direction != DirectionUp {
		t.Fatalf("expected up direction, got %s", day.Direction)
	}
	// Reference bar is the first synthetic half of the first minute.
	// mid = (100+105+98+104)/4 = 101.75, so ref = {o:100 h:105 l:98 c:101.75}.
	if day.Open != 100 || day.High != 105 || day.Low != 98 || day.Close != 101.75 {
		t.Fatalf("unexpected reference bar %+v", day)
	}
	if day.Range != 7 {
		t.Fatalf("expected range 7, got %v", day.Range)
	}
	// Minute-2 halves break the reference high (wins); minute-3 halves
	// break the reference low (losses).
	if day.Wins == 0 || day.Losses == 0 {
		t.Fatalf("expected both wins and losses, got %+v", day)
	}
	if day.WinRate <= 0 || day.WinRate >= 100 {
		t.Fatalf("expected mixed win rate, got %v", day.WinRate)
	}
}

func TestEvaluateHighBreakOnDownDayIsLoss(t *testing.T) {
	cal := testCalendar(t)
	src := &fakeSource{bars: map[string][]models.Bar{
		// Reference closes below open: direction down. The following bar
		// breaks the reference high, which must count as a loss.
		"2025-03-14": sessionBars(t, cal, "2025-03-14",
			models.Bar{Open: 104, High: 105, Low: 98, Close: 99, Volume: 100},
			models.Bar{Open: 99, High: 120, Low: 99, Close: 119, Volume: 100},
		),
	}}
	e := newTestEvaluator(t, src)

	sum, err := e.Evaluate(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	day := sum.DailyBreakdown[0]
	if day.Direction != DirectionDown {
		t.Fatalf("expected down direction, got %s", day.Direction)
	}
	if day.Wins != 0 {
		t.Fatalf("high break on a down day must not be a win: %+v", day)
	}
	if day.Losses == 0 {
		t.Fatalf("expected at least one loss: %+v", day)
	}
}

func TestEvaluateHighBreakPrecedesLowBreak(t *testing.T) {
	cal := testCalendar(t)
	src := &fakeSource{bars: map[string][]models.Bar{
		// One subsequent minute breaks both sides of the reference range.
		// High-break precedence means its halves classify as wins only.
		"2025-03-14": sessionBars(t, cal, "2025-03-14",
			models.Bar{Open: 100, High: 101, Low: 99.5, Close: 100.5, Volume: 100},
			models.Bar{Open: 100, High: 150, Low: 50, Close: 100, Volume: 100},
		),
	}}
	e := newTestEvaluator(t, src)

	sum, err := e.Evaluate(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	day := sum.DailyBreakdown[0]
	if day.Direction != DirectionUp {
		t.Fatalf("expected up direction, got %s", day.Direction)
	}
	if day.Losses != 0 {
		t.Fatalf("both-side bars must classify on the high break only: %+v", day)
	}
	if day.Wins == 0 {
		t.Fatalf("expected wins from the high break: %+v", day)
	}
}

func TestEvaluateSkipsInsufficientDays(t *testing.T) {
	cal := testCalendar(t)
	src := &fakeSource{bars: map[string][]models.Bar{
		// Thursday has no bars at all; Friday has a full day.
		"2025-03-14": sessionBars(t, cal, "2025-03-14",
			models.Bar{Open: 100, High: 105, Low: 98, Close: 104, Volume: 100},
			models.Bar{Open: 104, High: 110, Low: 103, Close: 108, Volume: 100},
		),
	}}
	e := newTestEvaluator(t, src)

	sum, err := e.Evaluate(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TotalDays != 1 {
		t.Fatalf("empty day must be excluded from totals, got %d", sum.TotalDays)
	}
	if len(sum.DailyBreakdown) != 1 {
		t.Fatalf("empty day must be excluded from breakdown, got %d", len(sum.DailyBreakdown))
	}
	if src.calls != 2 {
		t.Fatalf("expected both days fetched, got %d", src.calls)
	}
}

func TestEvaluateSkipsFailedFetches(t *testing.T) {
	cal := testCalendar(t)
	src := &fakeSource{
		bars: map[string][]models.Bar{
			"2025-03-14": sessionBars(t, cal, "2025-03-14",
				models.Bar{Open: 100, High: 105, Low: 98, Close: 104, Volume: 100},
				models.Bar{Open: 104, High: 110, Low: 103, Close: 108, Volume: 100},
			),
		},
		errDays: map[string]error{
			"2025-03-13": errors.New("provider timeout"),
		},
	}
	e := newTestEvaluator(t, src)

	sum, err := e.Evaluate(context.Background(), 2)
	if err != nil {
		t.Fatalf("per-day failures must not fail the evaluation: %v", err)
	}
	if sum.TotalDays != 1 {
		t.Fatalf("failed day must be excluded, got %d days", sum.TotalDays)
	}
	if src.calls != 2 {
		t.Fatalf("loop must continue past the failed day, got %d calls", src.calls)
	}
}

func TestEvaluateOverallIsMeanOfDailyRates(t *testing.T) {
	cal := testCalendar(t)
	src := &fakeSource{bars: map[string][]models.Bar{
		// Friday: up day, every subsequent bar breaks high → 100%.
		"2025-03-14": sessionBars(t, cal, "2025-03-14",
			models.Bar{Open: 100, High: 101, Low: 99, Close: 100.5, Volume: 10},
			models.Bar{Open: 101, High: 110, Low: 100, Close: 109, Volume: 10},
		),
		// Thursday: up day, every subsequent bar breaks low → 0%.
		"2025-03-13": sessionBars(t, cal, "2025-03-13",
			models.Bar{Open: 100, High: 101, Low: 99, Close: 100.5, Volume: 10},
			models.Bar{Open: 99, High: 100.4, Low: 90, Close: 91, Volume: 10},
		),
	}}
	e := newTestEvaluator(t, src)

	sum, err := e.Evaluate(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TotalDays != 2 {
		t.Fatalf("expected 2 days, got %d", sum.TotalDays)
	}
	// Unweighted mean of 100 and 0, regardless of per-day trade counts.
	if sum.OverallWinRate != 50 {
		t.Fatalf("expected overall 50, got %v", sum.OverallWinRate)
	}
	if sum.WinningDays != 1 {
		t.Fatalf("expected 1 winning day, got %d", sum.WinningDays)
	}
	// Breakdown is chronological: Thursday before Friday.
	if sum.DailyBreakdown[0].Date != "2025-03-13" || sum.DailyBreakdown[1].Date != "2025-03-14" {
		t.Fatalf("breakdown out of order: %+v", sum.DailyBreakdown)
	}
}

func TestEvaluateRejectsNonPositiveDays(t *testing.T) {
	e := newTestEvaluator(t, &fakeSource{})
	if _, err := e.Evaluate(context.Background(), 0); err == nil {
		t.Fatalf("expected error for zero days")
	}
}

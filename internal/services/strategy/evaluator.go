// Package strategy replays the synthesized 30-second series against the
// first-candle breakout rule over a trailing window of business days.
package strategy

import (
	"context"
	"fmt"
	"time"

	"github.com/RuneweaverStudios/openingCandle/internal/domain/models"
	domrepo "github.com/RuneweaverStudios/openingCandle/internal/domain/repository"
	"github.com/RuneweaverStudios/openingCandle/internal/service/calendar"
	"github.com/RuneweaverStudios/openingCandle/internal/services/resample"
	xlogger "github.com/RuneweaverStudios/openingCandle/pkg/logger"
)

// Directions of the reference bar: up when close >= open, down otherwise.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Evaluator computes first-candle breakout win rates. Days are fetched
// sequentially with no retries; a day that fails to fetch or has fewer
// than two synthetic bars is skipped and the loop continues.
type Evaluator struct {
	source  domrepo.BarSource
	cal     *calendar.Calendar
	metrics domrepo.Metrics
	logger  *xlogger.Logger
	symbol  string

	now func() time.Time
}

func NewEvaluator(source domrepo.BarSource, cal *calendar.Calendar, m domrepo.Metrics, l *xlogger.Logger, symbol string) *Evaluator {
	return &Evaluator{
		source:  source,
		cal:     cal,
		metrics: m,
		logger:  l,
		symbol:  symbol,
		now:     time.Now,
	}
}

// Evaluate replays the trailing `days` business days ending at the most
// recent business day. Skipped days appear neither in the breakdown nor
// in any denominator.
func (e *Evaluator) Evaluate(ctx context.Context, days int) (*models.WinRateSummary, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}

	dates := make([]time.Time, days)
	day := e.cal.MostRecentBusinessDay(e.now())
	for i := days - 1; i >= 0; i-- {
		dates[i] = day
		day = e.cal.PrevBusinessDay(day)
	}

	summary := &models.WinRateSummary{
		DailyBreakdown: make([]models.DailyStrategyResult, 0, days),
	}
	var rateSum float64
	for _, d := range dates {
		res, ok := e.evaluateDay(ctx, d)
		if !ok {
			continue
		}
		summary.DailyBreakdown = append(summary.DailyBreakdown, res)
		summary.TotalWins += res.Wins
		summary.TotalLosses += res.Losses
		if res.WinRate > 50 {
			summary.WinningDays++
		}
		rateSum += res.WinRate
	}

	summary.TotalDays = len(summary.DailyBreakdown)
	if summary.TotalDays > 0 {
		// Unweighted mean of per-day rates, not the pooled ratio.
		summary.OverallWinRate = rateSum / float64(summary.TotalDays)
	}
	return summary, nil
}

func (e *Evaluator) evaluateDay(ctx context.Context, day time.Time) (models.DailyStrategyResult, bool) {
	date := e.cal.FormatDate(day)

	bars, err := e.source.IntradayBars(ctx, e.symbol, day)
	if err != nil {
		e.logger.Warn("winrate: day skipped, fetch failed",
			xlogger.String("date", date), xlogger.Error(err))
		e.metrics.RecordDayEvaluated("fetch_error")
		return models.DailyStrategyResult{}, false
	}

	open, close := e.cal.SessionWindow(day)
	session := resample.ClipWindow(bars, open, close)
	if len(session) == 0 {
		session = bars
	}

	synth := resample.SynthesizeSeries(session, resample.BaseInterval)
	if len(synth) < 2 {
		e.logger.Warn("winrate: day skipped, insufficient data",
			xlogger.String("date", date), xlogger.Int("bars", len(synth)))
		e.metrics.RecordDayEvaluated("insufficient")
		return models.DailyStrategyResult{}, false
	}

	ref := synth[0]
	direction := DirectionUp
	if ref.Close < ref.Open {
		direction = DirectionDown
	}

	var wins, losses int
	for _, b := range synth[1:] {
		// High-break takes precedence; a bar classifies at most once.
		switch {
		case b.High > ref.High:
			if direction == DirectionUp {
				wins++
			} else {
				losses++
			}
		case b.Low < ref.Low:
			if direction == DirectionDown {
				wins++
			} else {
				losses++
			}
		}
	}

	var rate float64
	if wins+losses > 0 {
		rate = float64(wins) / float64(wins+losses) * 100
	}

	e.metrics.RecordDayEvaluated("ok")
	return models.DailyStrategyResult{
		Date:      date,
		Open:      ref.Open,
		High:      ref.High,
		Low:       ref.Low,
		Close:     ref.Close,
		Range:     ref.High - ref.Low,
		Direction: direction,
		Wins:      wins,
		Losses:    losses,
		WinRate:   rate,
	}, true
}

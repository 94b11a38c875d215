package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RuneweaverStudios/openingCandle/internal/domain/models"
	domrepo "github.com/RuneweaverStudios/openingCandle/internal/domain/repository"
	"github.com/RuneweaverStudios/openingCandle/internal/service/calendar"
	"github.com/RuneweaverStudios/openingCandle/internal/services/resample"
	xlogger "github.com/RuneweaverStudios/openingCandle/pkg/logger"
)

// ErrNoData reports a valid empty upstream result: the requested date is
// outside the provider's intraday retention window. Distinct from a
// transport failure.
var ErrNoData = errors.New("no intraday data for requested date")

// ErrUpstream marks transport or provider failures on the single-date path.
var ErrUpstream = errors.New("upstream fetch failed")

// ChartUseCase turns one trading date into the three chart timeframes.
// All state is request-scoped; nothing is cached across requests.
type ChartUseCase struct {
	source  domrepo.BarSource
	cal     *calendar.Calendar
	metrics domrepo.Metrics
	logger  *xlogger.Logger
	symbol  string
}

func NewChartUseCase(source domrepo.BarSource, cal *calendar.Calendar, m domrepo.Metrics, l *xlogger.Logger, symbol string) *ChartUseCase {
	return &ChartUseCase{source: source, cal: cal, metrics: m, logger: l, symbol: symbol}
}

// GetChart fetches the 1-minute base series for dateStr (empty means the
// most recent business day), bounds it to the regular session, and builds
// the 30s/5m/15m series. The session filter falls back to the full
// fetched day when it would leave nothing, so off-hours sessions still
// chart.
func (uc *ChartUseCase) GetChart(ctx context.Context, dateStr string) (*models.ChartResult, error) {
	day, err := uc.resolveDate(dateStr)
	if err != nil {
		return nil, err
	}
	date := uc.cal.FormatDate(day)

	start := time.Now()
	bars, err := uc.source.IntradayBars(ctx, uc.symbol, day)
	uc.metrics.RecordFetchLatency(time.Since(start).Seconds())
	if err != nil {
		uc.metrics.RecordFetch("error")
		return nil, fmt.Errorf("fetch %s for %s: %w: %w", uc.symbol, date, ErrUpstream, err)
	}
	if len(bars) == 0 {
		uc.metrics.RecordFetch("empty")
		return nil, fmt.Errorf("%s: %w", date, ErrNoData)
	}
	uc.metrics.RecordFetch("ok")

	open, close := uc.cal.SessionWindow(day)
	session := resample.ClipWindow(bars, open, close)
	if len(session) == 0 {
		session = bars
	}

	tfs, err := resample.BuildTimeframes(session, open)
	if err != nil {
		return nil, fmt.Errorf("build timeframes for %s: %w", date, err)
	}

	uc.logger.Debug("chart built",
		xlogger.String("date", date),
		xlogger.Int("base_bars", len(session)),
		xlogger.Int("bars_30s", len(tfs.ThirtySec)),
		xlogger.Int("bars_5m", len(tfs.FiveMin)),
		xlogger.Int("bars_15m", len(tfs.FifteenMin)),
	)
	uc.metrics.RecordBarsServed(string(domrepo.TF30s), len(tfs.ThirtySec))
	uc.metrics.RecordBarsServed(string(domrepo.TF5m), len(tfs.FiveMin))
	uc.metrics.RecordBarsServed(string(domrepo.TF15m), len(tfs.FifteenMin))

	return &models.ChartResult{
		Date: date,
		MarketHours: models.MarketHours{
			Open:     uc.cal.OpenLabel(),
			Close:    uc.cal.CloseLabel(),
			Timezone: uc.cal.Location().String(),
		},
		Data: models.TimeframeData{
			ThirtySec:  uc.toRecords(tfs.ThirtySec),
			FiveMin:    uc.toRecords(tfs.FiveMin),
			FifteenMin: uc.toRecords(tfs.FifteenMin),
		},
	}, nil
}

func (uc *ChartUseCase) resolveDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return uc.cal.MostRecentBusinessDay(time.Now()), nil
	}
	day, err := uc.cal.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return day, nil
}

func (uc *ChartUseCase) toRecords(bars []models.Bar) []models.BarRecord {
	loc := uc.cal.Location()
	out := make([]models.BarRecord, 0, len(bars))
	for _, b := range bars {
		out = append(out, models.BarRecord{
			Timestamp: b.Timestamp.In(loc).Format(time.RFC3339),
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Volume:    b.Volume,
		})
	}
	return out
}

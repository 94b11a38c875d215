package repository

import (
	"context"
	"time"

	"github.com/RuneweaverStudios/openingCandle/internal/domain/models"
)

// BarSource supplies raw 1-minute intraday bars, including pre/post
// session, for one trading date. An empty slice with a nil error is a
// valid outcome: the provider has no data for that day (it typically
// retains intraday history for about a week).
type BarSource interface {
	IntradayBars(ctx context.Context, symbol string, day time.Time) ([]models.Bar, error)
}

type Metrics interface {
	RecordFetch(result string)
	RecordFetchLatency(seconds float64)
	RecordBarsServed(timeframe string, count int)
	RecordDayEvaluated(result string)
}

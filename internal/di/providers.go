package di

import (
	"fmt"

	"github.com/RuneweaverStudios/openingCandle/internal/domain/repository"
	"github.com/RuneweaverStudios/openingCandle/internal/handler/api"
	"github.com/RuneweaverStudios/openingCandle/internal/service/calendar"
	"github.com/RuneweaverStudios/openingCandle/internal/service/yahoo"
	"github.com/RuneweaverStudios/openingCandle/internal/services/strategy"
	"github.com/RuneweaverStudios/openingCandle/internal/usecase"
	"github.com/RuneweaverStudios/openingCandle/pkg/config"
	xhttp "github.com/RuneweaverStudios/openingCandle/pkg/http"
	"github.com/RuneweaverStudios/openingCandle/pkg/logger"
	"github.com/RuneweaverStudios/openingCandle/pkg/metrics"
	"github.com/RuneweaverStudios/openingCandle/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCalendar creates the exchange calendar context from config.
func ProvideCalendar(cfg *config.Config) (*calendar.Calendar, error) {
	cal, err := calendar.New(cfg.Market.Timezone, cfg.Market.Open, cfg.Market.Close)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}
	return cal, nil
}

// ProvideBarSource creates the Yahoo chart API bar source.
func ProvideBarSource(cfg *config.Config, cal *calendar.Calendar) repository.BarSource {
	return yahoo.New(cfg.Yahoo.BaseURL, cfg.Yahoo.UserAgent, cfg.Yahoo.Timeout, cal.Location())
}

// ProvideChartUseCase creates the chart use case.
func ProvideChartUseCase(source repository.BarSource, cal *calendar.Calendar, m repository.Metrics, l *logger.Logger, cfg *config.Config) *usecase.ChartUseCase {
	return usecase.NewChartUseCase(source, cal, m, l, cfg.Yahoo.Symbol)
}

// ProvideEvaluator creates the first-candle breakout evaluator.
func ProvideEvaluator(source repository.BarSource, cal *calendar.Calendar, m repository.Metrics, l *logger.Logger, cfg *config.Config) *strategy.Evaluator {
	return strategy.NewEvaluator(source, cal, m, l, cfg.Yahoo.Symbol)
}

// ProvideWinRateUseCase creates the win-rate use case.
func ProvideWinRateUseCase(eval *strategy.Evaluator, cfg *config.Config) *usecase.WinRateUseCase {
	return usecase.NewWinRateUseCase(eval, cfg.Market.WinRateDays)
}

// ProvideHandler creates the API handler.
func ProvideHandler(l *logger.Logger, chart *usecase.ChartUseCase, winrate *usecase.WinRateUseCase) xhttp.Handler {
	return api.NewChartEchoHandler(l, chart, winrate)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *logger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}

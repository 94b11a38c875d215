//go:build wireinject
// +build wireinject

package di

import (
	"github.com/RuneweaverStudios/openingCandle/pkg/config"
	"github.com/RuneweaverStudios/openingCandle/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCalendar,

		ProvideBarSource,

		ProvideChartUseCase,
		ProvideEvaluator,
		ProvideWinRateUseCase,

		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}

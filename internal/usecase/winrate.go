package usecase

import (
	"context"
	"fmt"

	"github.com/RuneweaverStudios/openingCandle/internal/domain/models"
	"github.com/RuneweaverStudios/openingCandle/internal/services/strategy"
)

// WinRateUseCase provides business logic for the first-candle breakout
// win-rate report.
type WinRateUseCase struct {
	eval        *strategy.Evaluator
	defaultDays int
}

func NewWinRateUseCase(eval *strategy.Evaluator, defaultDays int) *WinRateUseCase {
	if defaultDays <= 0 {
		defaultDays = 7
	}
	return &WinRateUseCase{eval: eval, defaultDays: defaultDays}
}

// GetWinRate evaluates the trailing window. days <= 0 selects the
// configured default.
func (uc *WinRateUseCase) GetWinRate(ctx context.Context, days int) (*models.WinRateSummary, error) {
	if days <= 0 {
		days = uc.defaultDays
	}
	summary, err := uc.eval.Evaluate(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("evaluate winrate: %w", err)
	}
	return summary, nil
}

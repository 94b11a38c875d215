package models

// DailyStrategyResult is one evaluated day of the first-candle breakout
// replay. Immutable once produced; the summary aggregates, never mutates.
type DailyStrategyResult struct {
	Date      string  `json:"date"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Range     float64 `json:"range"`
	Direction string  `json:"direction"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	WinRate   float64 `json:"winrate"`
}

// WinRateSummary aggregates a trailing window of evaluated days.
// OverallWinRate is the unweighted mean of the per-day win rates, not the
// pooled win/loss ratio.
type WinRateSummary struct {
	OverallWinRate float64               `json:"overall_winrate"`
	WinningDays    int                   `json:"winning_days"`
	TotalDays      int                   `json:"total_days"`
	TotalWins      int                   `json:"total_wins"`
	TotalLosses    int                   `json:"total_losses"`
	DailyBreakdown []DailyStrategyResult `json:"daily_breakdown"`
}

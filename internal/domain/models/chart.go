package models

// Requests for chart HTTP endpoints. Defined in domain for consistency and reuse.

type ChartRequest struct {
	Date string `query:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type WinRateRequest struct {
	Days int `query:"days" json:"days" default:"7" validate:"gte=1,lte=30"`
}

// BarRecord is the wire form of a Bar: RFC3339 zone-qualified timestamp,
// real-valued prices, integer volume.
type BarRecord struct {
	Timestamp string  `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}

// TimeframeData carries the three parallel renderings of one session.
// All three keys are always present; missing data is an empty list.
type TimeframeData struct {
	ThirtySec  []BarRecord `json:"30s"`
	FiveMin    []BarRecord `json:"5m"`
	FifteenMin []BarRecord `json:"15m"`
}

type MarketHours struct {
	Open     string `json:"open"`
	Close    string `json:"close"`
	Timezone string `json:"timezone"`
}

// ChartResult is the /api/mnq-data response body.
type ChartResult struct {
	Date        string        `json:"date"`
	MarketHours MarketHours   `json:"market_hours"`
	Data        TimeframeData `json:"data"`
}

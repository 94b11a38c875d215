package models

import "time"

// Bar is one OHLCV record covering a fixed time interval.
// Every bar the service emits satisfies High >= max(Open, Close) and
// Low <= min(Open, Close).
type Bar struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    int64
}

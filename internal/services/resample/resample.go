// Package resample re-expresses a 1-minute OHLCV base series at coarser
// granularities (bucket aggregation) and at a finer one (synthetic
// half-bar interpolation). The provider supplies no true sub-minute
// ticks, so the 30-second series is an approximation, not real data.
package resample

import (
	"fmt"
	"math"
	"time"

	"github.com/RuneweaverStudios/openingCandle/internal/domain/models"
	domrepo "github.com/RuneweaverStudios/openingCandle/internal/domain/repository"
)

// BaseInterval is the nominal interval of the upstream bar series.
const BaseInterval = time.Minute

// Aggregate partitions fixed-interval bars into contiguous target-interval
// buckets aligned to windowStart and rolls each non-empty bucket up with
// first/max/min/last/sum. Empty buckets produce no output bar. The input
// must be ordered by timestamp; provider gaps are tolerated.
func Aggregate(bars []models.Bar, base, target time.Duration, windowStart time.Time) ([]models.Bar, error) {
	if base <= 0 || target <= 0 {
		return nil, fmt.Errorf("intervals must be positive: base=%s target=%s", base, target)
	}
	if target%base != 0 {
		return nil, fmt.Errorf("target interval %s is not a multiple of base interval %s", target, base)
	}
	if target == base {
		// Identity: never send the input through bucket logic.
		return bars, nil
	}

	out := make([]models.Bar, 0, len(bars)/int(target/base)+1)
	var (
		cur    models.Bar
		curIdx int64
		open   bool
	)
	for _, b := range bars {
		idx := bucketIndex(b.Timestamp.Sub(windowStart), target)
		if !open || idx != curIdx {
			if open {
				out = append(out, cur)
			}
			cur = models.Bar{
				Timestamp: windowStart.Add(time.Duration(idx) * target),
				Open:      b.Open,
				High:      b.High,
				Low:       b.Low,
				Close:     b.Close,
				Volume:    b.Volume,
			}
			curIdx = idx
			open = true
			continue
		}
		if b.High > cur.High {
			cur.High = b.High
		}
		if b.Low < cur.Low {
			cur.Low = b.Low
		}
		cur.Close = b.Close
		cur.Volume += b.Volume
	}
	if open {
		out = append(out, cur)
	}
	return out, nil
}

// bucketIndex floors offset/target so bars ahead of the window start
// cannot collide with the first bucket.
func bucketIndex(offset, target time.Duration) int64 {
	idx := int64(offset / target)
	if offset < 0 && offset%target != 0 {
		idx--
	}
	return idx
}

// SynthesizeHalfBars splits one base-interval bar into two bars spanning
// half its duration each. mid = (o+h+l+c)/4 approximates a mid-period
// price and is clamped into [low, high] before use, so both halves keep
// the OHLC invariant. Each half carries floor(volume/2); the odd unit is
// dropped.
func SynthesizeHalfBars(bar models.Bar, base time.Duration) (models.Bar, models.Bar) {
	mid := (bar.Open + bar.High + bar.Low + bar.Close) / 4
	high := math.Max(bar.High, mid)
	low := math.Min(bar.Low, mid)
	half := bar.Volume / 2

	first := models.Bar{
		Timestamp: bar.Timestamp,
		Open:      bar.Open,
		High:      high,
		Low:       low,
		Close:     mid,
		Volume:    half,
	}
	second := models.Bar{
		Timestamp: bar.Timestamp.Add(base / 2),
		Open:      mid,
		High:      high,
		Low:       low,
		Close:     bar.Close,
		Volume:    half,
	}
	return first, second
}

// SynthesizeSeries applies SynthesizeHalfBars to every bar in order,
// yielding exactly 2N bars from N input bars.
func SynthesizeSeries(bars []models.Bar, base time.Duration) []models.Bar {
	out := make([]models.Bar, 0, len(bars)*2)
	for _, b := range bars {
		first, second := SynthesizeHalfBars(b, base)
		out = append(out, first, second)
	}
	return out
}

// Timeframes holds the three parallel renderings of one 1-minute base
// series. Slices are never nil; an empty base yields three empty series.
type Timeframes struct {
	ThirtySec  []models.Bar
	FiveMin    []models.Bar
	FifteenMin []models.Bar
}

// BuildTimeframes assembles the 30s, 5m, and 15m series from one
// 1-minute base series. The 5m and 15m rollups always run on the original
// base bars, never on the synthetic 30s series.
func BuildTimeframes(base []models.Bar, windowStart time.Time) (Timeframes, error) {
	five, err := Aggregate(base, BaseInterval, domrepo.TF5m.Duration(), windowStart)
	if err != nil {
		return Timeframes{}, fmt.Errorf("aggregate 5m: %w", err)
	}
	fifteen, err := Aggregate(base, BaseInterval, domrepo.TF15m.Duration(), windowStart)
	if err != nil {
		return Timeframes{}, fmt.Errorf("aggregate 15m: %w", err)
	}
	return Timeframes{
		ThirtySec:  SynthesizeSeries(base, BaseInterval),
		FiveMin:    five,
		FifteenMin: fifteen,
	}, nil
}

// ClipWindow keeps bars with start <= timestamp <= end, preserving order.
// Both endpoints are eligible, so a bar stamped exactly at the session
// close survives the filter.
func ClipWindow(bars []models.Bar, start, end time.Time) []models.Bar {
	out := make([]models.Bar, 0, len(bars))
	for _, b := range bars {
		if b.Timestamp.Before(start) || b.Timestamp.After(end) {
			continue
		}
		out = append(out, b)
	}
	return out
}

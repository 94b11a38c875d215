// Package yahoo implements a BarSource backed by the Yahoo Finance chart
// API. Yahoo serves 1-minute intraday bars, pre/post session included,
// for roughly the trailing week only; outside that window it returns an
// empty result set, which this client surfaces as no data, not an error.
package yahoo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/RuneweaverStudios/openingCandle/internal/domain/models"
	domrepo "github.com/RuneweaverStudios/openingCandle/internal/domain/repository"
	xhttp "github.com/RuneweaverStudios/openingCandle/pkg/http"
)

// Client fetches intraday bars from the Yahoo Finance chart API.
type Client struct {
	baseURL   string
	userAgent string
	loc       *time.Location
	http      *xhttp.Client
}

// New creates a Yahoo chart API BarSource. Timestamps on returned bars
// are expressed in loc, the exchange-local zone.
func New(baseURL, userAgent string, timeout time.Duration, loc *time.Location) domrepo.BarSource {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		loc:       loc,
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// chartResponse is the top-level container of the v8 chart endpoint.
type chartResponse struct {
	Chart chartData `json:"chart"`
}

type chartData struct {
	Result []chartResult `json:"result"`
	Error  *chartError   `json:"error"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartResult struct {
	Timestamp  []int64    `json:"timestamp"`
	Indicators indicators `json:"indicators"`
}

type indicators struct {
	Quote []quote `json:"quote"`
}

type quote struct {
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []int64   `json:"volume"`
}

// IntradayBars fetches the 1-minute bars covering the calendar day of
// `day` in the exchange zone.
func (c *Client) IntradayBars(ctx context.Context, symbol string, day time.Time) ([]models.Bar, error) {
	local := day.In(c.loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, c.loc)
	end := start.AddDate(0, 0, 1)

	var resp chartResponse
	err := c.http.Get(ctx, &xhttp.RequestOptions{
		URL: fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, symbol),
		Headers: map[string]string{
			"User-Agent": c.userAgent,
		},
		QueryParams: map[string][]string{
			"period1":        {strconv.FormatInt(start.Unix(), 10)},
			"period2":        {strconv.FormatInt(end.Unix(), 10)},
			"interval":       {string(domrepo.TF1m)},
			"includePrePost": {"true"},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart %s: %s: %s", symbol, resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	res := resp.Chart.Result[0]
	q := res.Indicators.Quote[0]
	bars := make([]models.Bar, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		if i >= len(q.Open) || i >= len(q.High) || i >= len(q.Low) || i >= len(q.Close) {
			break
		}
		// Yahoo pads halted minutes with nulls, which decode to zeros.
		if q.Open[i] == 0 && q.High[i] == 0 && q.Low[i] == 0 && q.Close[i] == 0 {
			continue
		}
		var v int64
		if i < len(q.Volume) {
			v = q.Volume[i]
		}
		bars = append(bars, models.Bar{
			Timestamp: time.Unix(ts, 0).In(c.loc),
			Open:      q.Open[i],
			High:      q.High[i],
			Low:       q.Low[i],
			Close:     q.Close[i],
			Volume:    v,
		})
	}
	return bars, nil
}

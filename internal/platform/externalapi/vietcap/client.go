// Package vietcap provides a client for the VietCap (VCI) OHLC chart API.
package vietcap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"vnquote/internal/feature/quotes/domain/entity"
	"vnquote/internal/feature/quotes/usecase"
)

// DefaultBaseURL is the public VietCap trading host.
const DefaultBaseURL = "https://trading.vietcap.com.vn"

// Client fetches daily bars from the VietCap gap-chart endpoint. Unlike the
// other sources this is a POST API that accepts a list of symbols; the client
// only ever asks for one.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ usecase.Source = (*Client)(nil)

// New creates a VietCap client against baseURL using the given HTTP client.
func New(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: baseURL, client: client}
}

// Name implements usecase.Source.
func (c *Client) Name() string { return "VCI" }

type chartRequest struct {
	TimeFrame string   `json:"timeFrame"`
	Symbols   []string `json:"symbols"`
	From      int64    `json:"from"`
	To        int64    `json:"to"`
}

// chartSeries is one per-symbol entry in the gap-chart response: parallel
// arrays indexed by bar.
type chartSeries struct {
	Symbol  string    `json:"symbol"`
	Opens   []float64 `json:"o"`
	Highs   []float64 `json:"h"`
	Lows    []float64 `json:"l"`
	Closes  []float64 `json:"c"`
	Volumes []int64   `json:"v"`
	Times   []int64   `json:"t"`
}

// History fetches daily bars for symbol in [start, end], ascending by date.
func (c *Client) History(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
	payload, err := json.Marshal(chartRequest{
		TimeFrame: "ONE_DAY",
		Symbols:   []string{symbol},
		From:      start.Unix(),
		To:        end.Unix(),
	})
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/api/chart/OHLCChart/gap-chart", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("vietcap http %d", res.StatusCode)
	}

	var body []chartSeries
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	s := body[0]
	bars := make([]entity.Bar, 0, len(s.Closes))
	for i := range s.Closes {
		bar := entity.Bar{Close: s.Closes[i]}
		if i < len(s.Times) {
			bar.Time = time.Unix(s.Times[i], 0).UTC()
		}
		if i < len(s.Opens) {
			bar.Open = &s.Opens[i]
		}
		if i < len(s.Highs) {
			bar.High = &s.Highs[i]
		}
		if i < len(s.Lows) {
			bar.Low = &s.Lows[i]
		}
		if i < len(s.Volumes) {
			bar.Volume = &s.Volumes[i]
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// Package vndirect provides a client for the VNDirect dchart history API,
// which speaks the TradingView UDF history format.
package vndirect

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"vnquote/internal/feature/quotes/domain/entity"
	"vnquote/internal/feature/quotes/usecase"
)

// DefaultBaseURL is the public VNDirect dchart host.
const DefaultBaseURL = "https://dchart-api.vndirect.com.vn"

// Client fetches daily bars from the VNDirect dchart history endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ usecase.Source = (*Client)(nil)

// New creates a VNDirect client against baseURL using the given HTTP client.
func New(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: baseURL, client: client}
}

// Name implements usecase.Source.
func (c *Client) Name() string { return "VND" }

// historyResponse is the TradingView UDF history shape: parallel arrays
// indexed by bar, with a status field.
type historyResponse struct {
	Status  string    `json:"s"`
	Message string    `json:"errmsg,omitempty"`
	Times   []int64   `json:"t"`
	Opens   []float64 `json:"o"`
	Highs   []float64 `json:"h"`
	Lows    []float64 `json:"l"`
	Closes  []float64 `json:"c"`
	Volumes []int64   `json:"v"`
}

// History fetches daily bars for symbol in [start, end], ascending by date.
// A "no_data" status yields an empty slice, not an error.
func (c *Client) History(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("resolution", "D")
	q.Set("from", strconv.FormatInt(start.Unix(), 10))
	q.Set("to", strconv.FormatInt(end.Unix(), 10))

	u := fmt.Sprintf("%s/dchart/history?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

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
		return nil, fmt.Errorf("vndirect http %d", res.StatusCode)
	}

	var body historyResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	switch body.Status {
	case "ok":
	case "no_data":
		return nil, nil
	default:
		return nil, fmt.Errorf("vndirect: status %s %s", body.Status, body.Message)
	}

	bars := make([]entity.Bar, 0, len(body.Closes))
	for i := range body.Closes {
		bar := entity.Bar{Close: body.Closes[i]}
		if i < len(body.Times) {
			bar.Time = time.Unix(body.Times[i], 0).UTC()
		}
		if i < len(body.Opens) {
			bar.Open = &body.Opens[i]
		}
		if i < len(body.Highs) {
			bar.High = &body.Highs[i]
		}
		if i < len(body.Lows) {
			bar.Low = &body.Lows[i]
		}
		if i < len(body.Volumes) {
			bar.Volume = &body.Volumes[i]
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// Package tcbs provides a client for the TCBS stock-insight bars API.
package tcbs

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

// DefaultBaseURL is the public TCBS API host.
const DefaultBaseURL = "https://apipubaws.tcbs.com.vn"

// Client fetches daily bars from the TCBS long-term bars endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ usecase.Source = (*Client)(nil)

// New creates a TCBS client against baseURL using the given HTTP client.
func New(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: baseURL, client: client}
}

// Name implements usecase.Source.
func (c *Client) Name() string { return "TCBS" }

// barsResponse is the JSON shape of the bars-long-term endpoint.
type barsResponse struct {
	Ticker string `json:"ticker"`
	Data   []struct {
		Open        *float64 `json:"open"`
		High        *float64 `json:"high"`
		Low         *float64 `json:"low"`
		Close       float64  `json:"close"`
		Volume      *int64   `json:"volume"`
		TradingDate string   `json:"tradingDate"`
	} `json:"data"`
}

// History fetches daily bars for symbol in [start, end], ascending by date.
func (c *Client) History(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
	q := url.Values{}
	q.Set("ticker", symbol)
	q.Set("type", "stock")
	q.Set("resolution", "D")
	q.Set("from", strconv.FormatInt(start.Unix(), 10))
	q.Set("to", strconv.FormatInt(end.Unix(), 10))

	u := fmt.Sprintf("%s/stock-insight/v2/stock/bars-long-term?%s", c.baseURL, q.Encode())

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
		return nil, fmt.Errorf("tcbs http %d", res.StatusCode)
	}

	var body barsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	bars := make([]entity.Bar, 0, len(body.Data))
	for _, d := range body.Data {
		var tm time.Time
		if d.TradingDate != "" {
			tm, err = time.Parse(time.RFC3339, d.TradingDate)
			if err != nil {
				tm, err = time.Parse("2006-01-02", d.TradingDate)
				if err != nil {
					return nil, fmt.Errorf("parse tradingDate %q: %w", d.TradingDate, err)
				}
			}
		}
		bars = append(bars, entity.Bar{
			Time:   tm,
			Open:   d.Open,
			High:   d.High,
			Low:    d.Low,
			Close:  d.Close,
			Volume: d.Volume,
		})
	}
	return bars, nil
}

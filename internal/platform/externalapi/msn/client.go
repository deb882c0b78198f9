// Package msn provides a client for the MSN Finance chart API.
package msn

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

// DefaultBaseURL is the public MSN Finance service host.
const DefaultBaseURL = "https://assets.msn.com/service"

// Client fetches daily bars from the MSN Finance chart endpoint. MSN omits
// the open/high/low/volume series for thinly traded symbols, so those come
// back as nil pointers rather than zeroes.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ usecase.Source = (*Client)(nil)

// New creates an MSN client against baseURL using the given HTTP client.
func New(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: baseURL, client: client}
}

// Name implements usecase.Source.
func (c *Client) Name() string { return "MSN" }

// chartResponse is the MSN chart shape: one series of parallel arrays, any of
// which may be missing or shorter than timeStamps.
type chartResponse struct {
	Series struct {
		TimeStamps []string  `json:"timeStamps"`
		Opens      []float64 `json:"openPrices"`
		Highs      []float64 `json:"pricesHigh"`
		Lows       []float64 `json:"pricesLow"`
		Closes     []float64 `json:"prices"`
		Volumes    []int64   `json:"volumes"`
	} `json:"series"`
}

// History fetches daily bars for symbol in [start, end], ascending by date.
func (c *Client) History(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
	days := int(end.Sub(start).Hours()/24) + 1

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("type", "All")
	q.Set("timeframe", strconv.Itoa(days))

	u := fmt.Sprintf("%s/Finance/Charts/TimeRange?%s", c.baseURL, q.Encode())

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
		return nil, fmt.Errorf("msn http %d", res.StatusCode)
	}

	var body chartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	s := body.Series
	if len(s.Closes) == 0 {
		return nil, nil
	}

	bars := make([]entity.Bar, 0, len(s.Closes))
	for i := range s.Closes {
		bar := entity.Bar{Close: s.Closes[i]}
		if i < len(s.TimeStamps) {
			tm, err := time.Parse(time.RFC3339, s.TimeStamps[i])
			if err != nil {
				return nil, fmt.Errorf("parse timestamp %q: %w", s.TimeStamps[i], err)
			}
			bar.Time = tm
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

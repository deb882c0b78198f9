package vietcap

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_History_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		if req["timeFrame"] != "ONE_DAY" {
			t.Errorf("expected timeFrame ONE_DAY, got %v", req["timeFrame"])
		}

		_, _ = w.Write([]byte(`[
			{"symbol": "HPG", "o": [28.0, 28.5], "h": [28.9, 29.1], "l": [27.8, 28.2], "c": [28.5, 29.0], "v": [3000000, 2500000], "t": [1710288000, 1710374400]}
		]`))
	}))
	defer server.Close()

	client := New(server.URL, server.Client())

	bars, err := client.History(context.Background(), "HPG", time.Now().AddDate(0, 0, -5), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[1].Close != 29.0 {
		t.Errorf("expected close 29.0, got %f", bars[1].Close)
	}
	if bars[1].High == nil || *bars[1].High != 29.1 {
		t.Errorf("expected high 29.1, got %v", bars[1].High)
	}
}

func TestClient_History_NoSeries(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, server.Client())

	bars, err := client.History(context.Background(), "ZZZZ", time.Now().AddDate(0, 0, -5), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 0 {
		t.Errorf("expected no bars, got %d", len(bars))
	}
}

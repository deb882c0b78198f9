package msn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_History_ShortSeries(t *testing.T) {
	t.Parallel()

	// MSN may omit whole series; here volumes are missing and opens are
	// shorter than the close series.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"series": {
				"timeStamps": ["2024-03-14T00:00:00Z", "2024-03-15T00:00:00Z"],
				"openPrices": [65.0],
				"prices": [65.5, 66.0]
			}
		}`))
	}))
	defer server.Close()

	client := New(server.URL, server.Client())

	bars, err := client.History(context.Background(), "VNM", time.Now().AddDate(0, 0, -5), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Open == nil || *bars[0].Open != 65.0 {
		t.Errorf("expected open 65.0 on first bar, got %v", bars[0].Open)
	}
	if bars[1].Open != nil {
		t.Errorf("expected nil open on second bar, got %v", *bars[1].Open)
	}
	if bars[1].Volume != nil {
		t.Error("expected nil volume when the series is absent")
	}
	if bars[1].Close != 66.0 {
		t.Errorf("expected close 66.0, got %f", bars[1].Close)
	}
}

func TestClient_History_EmptySeries(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"series": {}}`))
	}))
	defer server.Close()

	client := New(server.URL, server.Client())

	bars, err := client.History(context.Background(), "VNM", time.Now().AddDate(0, 0, -5), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 0 {
		t.Errorf("expected no bars, got %d", len(bars))
	}
}

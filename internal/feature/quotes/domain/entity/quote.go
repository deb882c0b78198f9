// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// Bar represents one daily OHLCV row returned by an upstream data source.
// Close is the only field every source is guaranteed to carry; the rest are
// pointers so that a source which omits them produces nil, not a zero value.
type Bar struct {
	Time   time.Time // Trading date; zero when the source has no per-bar timestamp
	Open   *float64  // Opening price, if provided
	High   *float64  // Highest price, if provided
	Low    *float64  // Lowest price, if provided
	Close  float64   // Closing price
	Volume *int64    // Trading volume, if provided
}

// Quote is the normalized latest-bar record this service returns for a symbol.
type Quote struct {
	Symbol string   // Uppercased ticker symbol (e.g., "VNM", "FPT")
	Price  float64  // Closing price of the latest bar
	Date   string   // Trading date of the latest bar, YYYY-MM-DD
	Source string   // Fixed tag identifying this service, not the upstream provider
	Open   *float64 // Opening price, if the upstream provided it
	High   *float64 // Highest price, if the upstream provided it
	Low    *float64 // Lowest price, if the upstream provided it
	Volume *int64   // Trading volume, if the upstream provided it
}

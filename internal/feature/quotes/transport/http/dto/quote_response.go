// Package dto defines request and response shapes for the quotes routes.
package dto

// QuoteResponse is the JSON body for a successful quote lookup. Optional
// fields are pointers with omitempty: a source that did not provide them
// leaves them out of the body entirely.
type QuoteResponse struct {
	Symbol string   `json:"symbol"`
	Price  float64  `json:"price"`
	Date   string   `json:"date"`
	Source string   `json:"source"`
	Open   *float64 `json:"open,omitempty"`
	High   *float64 `json:"high,omitempty"`
	Low    *float64 `json:"low,omitempty"`
	Volume *int64   `json:"volume,omitempty"`
}

// QuoteError is the per-symbol failure body. In a batch it appears in place
// of a QuoteResponse for the symbols that failed.
type QuoteError struct {
	Error  string `json:"error"`
	Symbol string `json:"symbol"`
}

// BatchRequest is the body of POST /api/stocks.
type BatchRequest struct {
	Symbols []string `json:"symbols"`
}

// BatchResponse carries one result per requested symbol, in request order.
// Each element is either a QuoteResponse or a QuoteError.
type BatchResponse struct {
	Results []any `json:"results"`
	Count   int   `json:"count"`
}

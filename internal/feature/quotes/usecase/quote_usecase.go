// Package usecase implements the quote fetch policy: try each configured
// upstream source in order and normalize the first non-empty result.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vnquote/internal/feature/quotes/domain/entity"
)

const (
	// SourceTag identifies this service in Quote.Source. It names the
	// service, not whichever upstream the bars came from.
	SourceTag = "vnquote-api"

	// LookbackDays is how far back the daily-bar window starts, relative
	// to the query time. Five days covers weekends and single holidays.
	LookbackDays = 5

	// DateLayout is the wire format for Quote.Date.
	DateLayout = "2006-01-02"
)

// Source is one upstream provider of daily bars. Interfaces are declared on
// the consumer side per Go convention; the externalapi packages implement it.
// History returns bars in ascending time order; an empty slice means the
// source had no data for the window, which is not an error.
type Source interface {
	Name() string
	History(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error)
}

// FetchError describes why no quote could be produced for a symbol. It is the
// per-symbol error shape: handlers embed Symbol and Reason in the JSON body.
type FetchError struct {
	Symbol string
	Reason string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("no data available for %s: %s", e.Symbol, e.Reason)
}

// quoteUsecase holds the ordered source list and an injectable clock.
type quoteUsecase struct {
	sources []Source
	now     func() time.Time
}

// NewQuoteUsecase creates a quoteUsecase over the given sources. The slice
// order is the fallback order; it is never reordered.
func NewQuoteUsecase(sources []Source) *quoteUsecase {
	return &quoteUsecase{sources: sources, now: time.Now}
}

// GetQuote fetches the latest daily bar for symbol, trying each source in
// order until one returns a non-empty bar set. It never panics: any failure,
// including a panic inside a source client, comes back as a *FetchError so
// that one symbol cannot abort a batch.
func (u *quoteUsecase) GetQuote(ctx context.Context, symbol string) (q entity.Quote, err error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))

	defer func() {
		if r := recover(); r != nil {
			slog.Error("quote fetch panicked", "symbol", sym, "panic", r)
			q = entity.Quote{}
			err = &FetchError{Symbol: sym, Reason: fmt.Sprintf("%v", r)}
		}
	}()

	if len(u.sources) == 0 {
		return entity.Quote{}, &FetchError{Symbol: sym, Reason: "no data sources configured"}
	}

	end := u.now()
	start := end.AddDate(0, 0, -LookbackDays)

	var bars []entity.Bar
	var lastErr error
	for _, src := range u.sources {
		bs, err := src.History(ctx, sym, start, end)
		if err != nil {
			slog.Warn("source failed", "source", src.Name(), "symbol", sym, "error", err)
			lastErr = err
			continue
		}
		if len(bs) > 0 {
			// First non-empty result wins; remaining sources are not tried.
			bars = bs
			break
		}
	}

	if len(bars) == 0 {
		reason := "no source returned data"
		if lastErr != nil {
			reason = fmt.Sprintf("last error: %s", lastErr)
		}
		return entity.Quote{}, &FetchError{Symbol: sym, Reason: reason}
	}

	latest := bars[len(bars)-1]
	date := end.Format(DateLayout)
	if !latest.Time.IsZero() {
		date = latest.Time.Format(DateLayout)
	}

	return entity.Quote{
		Symbol: sym,
		Price:  latest.Close,
		Date:   date,
		Source: SourceTag,
		Open:   latest.Open,
		High:   latest.High,
		Low:    latest.Low,
		Volume: latest.Volume,
	}, nil
}

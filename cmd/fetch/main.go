// Command fetch runs the quote fetcher against the configured sources and
// prints the results as JSON. It exercises the fallback chain without the
// HTTP surface.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"vnquote/internal/config"
	"vnquote/internal/feature/quotes/transport/http/dto"
	"vnquote/internal/feature/quotes/usecase"
	"vnquote/internal/platform/externalapi/msn"
	"vnquote/internal/platform/externalapi/tcbs"
	"vnquote/internal/platform/externalapi/vietcap"
	"vnquote/internal/platform/externalapi/vndirect"
	platformhttp "vnquote/internal/platform/http"
)

func main() {
	var symbolsCSV string
	var timeout int
	flag.StringVar(&symbolsCSV, "symbols", "VNM", "comma-separated ticker symbols")
	flag.IntVar(&timeout, "timeout", 10, "request timeout seconds")
	flag.Parse()

	symbols := splitCSV(symbolsCSV)
	if len(symbols) == 0 {
		log.Fatal("no symbols provided")
	}

	cfg := config.Load()
	httpClient := platformhttp.NewHTTPClient(time.Duration(timeout) * time.Second)
	uc := usecase.NewQuoteUsecase(buildSources(cfg, httpClient))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout*len(symbols))*time.Second)
	defer cancel()

	hadErr := false
	results := make([]any, 0, len(symbols))
	for _, s := range symbols {
		quote, err := uc.GetQuote(ctx, s)
		if err != nil {
			hadErr = true
			results = append(results, dto.QuoteError{Error: err.Error(), Symbol: strings.ToUpper(strings.TrimSpace(s))})
			continue
		}
		results = append(results, dto.QuoteResponse{
			Symbol: quote.Symbol,
			Price:  quote.Price,
			Date:   quote.Date,
			Source: quote.Source,
			Open:   quote.Open,
			High:   quote.High,
			Low:    quote.Low,
			Volume: quote.Volume,
		})
	}

	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(b))

	if hadErr {
		os.Exit(1)
	}
}

func buildSources(cfg config.Config, client *http.Client) []usecase.Source {
	var sources []usecase.Source
	if cfg.TCBS.Enabled {
		sources = append(sources, tcbs.New(cfg.TCBS.BaseURL, client))
	}
	if cfg.VNDirect.Enabled {
		sources = append(sources, vndirect.New(cfg.VNDirect.BaseURL, client))
	}
	if cfg.MSN.Enabled {
		sources = append(sources, msn.New(cfg.MSN.BaseURL, client))
	}
	if cfg.VietCap.Enabled {
		sources = append(sources, vietcap.New(cfg.VietCap.BaseURL, client))
	}
	return sources
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

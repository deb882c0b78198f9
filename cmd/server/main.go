package main

import (
	"log"
	"net/http"

	"vnquote/internal/app/router"
	"vnquote/internal/config"
	"vnquote/internal/feature/quotes/transport/handler"
	"vnquote/internal/feature/quotes/usecase"
	"vnquote/internal/platform/externalapi/msn"
	"vnquote/internal/platform/externalapi/tcbs"
	"vnquote/internal/platform/externalapi/vietcap"
	"vnquote/internal/platform/externalapi/vndirect"
	platformhttp "vnquote/internal/platform/http"
)

func main() {
	cfg := config.Load()

	// Shared outbound client for all source calls
	httpClient := platformhttp.NewHTTPClient(cfg.RequestTimeout)

	// Sources in fixed fallback order
	sources := buildSources(cfg, httpClient)
	if len(sources) == 0 {
		log.Println("[WARN] All data sources are disabled. Every fetch will fail.")
	}

	// Usecase
	quotesUC := usecase.NewQuoteUsecase(sources)

	// Handler
	quotesH := handler.NewQuoteHandler(quotesUC)

	// Router
	router := router.NewRouter(quotesH, cfg.APIKey)

	if cfg.APIKey == "" {
		log.Println("[WARN] API_KEY is not set. Data routes are unauthenticated.")
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// buildSources assembles the enabled source clients in fallback order.
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

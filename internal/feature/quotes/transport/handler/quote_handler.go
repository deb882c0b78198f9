// Package handler provides the HTTP handlers for the quotes feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vnquote/internal/feature/quotes/domain/entity"
	"vnquote/internal/feature/quotes/transport/http/dto"
	"vnquote/internal/feature/quotes/usecase"
)

// QuoteUsecase defines the quote fetch operation this handler depends on.
// The interface lives on the consumer side per Go convention.
type QuoteUsecase interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

// QuoteHandler handles the single and batch quote routes.
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler creates a QuoteHandler backed by the given usecase.
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuote handles GET /api/stock/:symbol. A symbol with no available data
// yields 404 with the per-symbol error body; success yields 200 with the
// normalized quote.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	symbol := c.Param("symbol")

	quote, err := h.uc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusNotFound, toQuoteError(symbol, err))
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// GetQuotesBatch handles POST /api/stocks. The body must carry a non-empty
// symbols array; symbols are fetched sequentially in request order. Individual
// failures are embedded as error items, never a batch-level failure.
func (h *QuoteHandler) GetQuotesBatch(c *gin.Context) {
	var req dto.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Symbols) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbols must be a non-empty array"})
		return
	}

	results := make([]any, 0, len(req.Symbols))
	for _, symbol := range req.Symbols {
		quote, err := h.uc.GetQuote(c.Request.Context(), symbol)
		if err != nil {
			results = append(results, toQuoteError(symbol, err))
			continue
		}
		results = append(results, toQuoteResponse(quote))
	}

	c.JSON(http.StatusOK, dto.BatchResponse{Results: results, Count: len(results)})
}

func toQuoteResponse(q entity.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		Symbol: q.Symbol,
		Price:  q.Price,
		Date:   q.Date,
		Source: q.Source,
		Open:   q.Open,
		High:   q.High,
		Low:    q.Low,
		Volume: q.Volume,
	}
}

func toQuoteError(symbol string, err error) dto.QuoteError {
	var fe *usecase.FetchError
	if errors.As(err, &fe) {
		return dto.QuoteError{Error: fe.Error(), Symbol: fe.Symbol}
	}
	return dto.QuoteError{Error: err.Error(), Symbol: strings.ToUpper(strings.TrimSpace(symbol))}
}

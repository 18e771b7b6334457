package repository

import (
	"fmt"

	"github.com/piquette/finance-go/quote"
)

// QuoteRepository looks up a live spot price so callers can prefill S0.
type QuoteRepository interface {
	LatestPrice(symbol string) (float64, error)
}

type yahooQuoteRepositoryHandler struct{}

func NewQuoteRepository() QuoteRepository {
	return yahooQuoteRepositoryHandler{}
}

func (h yahooQuoteRepositoryHandler) LatestPrice(symbol string) (float64, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return 0, fmt.Errorf("failed to fetch quote for %s: got 0 price", symbol)
	}

	return q.RegularMarketPrice, nil
}

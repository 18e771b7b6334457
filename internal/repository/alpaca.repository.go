package repository

import (
	"fmt"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

// AlpacaRepository is the authenticated spot-price source, used when the
// free quote feed is unavailable and alpaca keys are configured.
type AlpacaRepository interface {
	LatestPrice(symbol string) (float64, error)
}

type alpacaRepositoryHandler struct {
	MdClient *marketdata.Client
}

func NewAlpacaRepository(apiKey, apiSecret, endpoint string) AlpacaRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return alpacaRepositoryHandler{
		MdClient: mdClient,
	}
}

func (h alpacaRepositoryHandler) LatestPrice(symbol string) (float64, error) {
	results, err := h.MdClient.GetLatestQuotes([]string{symbol}, marketdata.GetLatestQuoteRequest{})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch alpaca quote for %s: %w", symbol, err)
	}

	result, ok := results[symbol]
	if !ok {
		return 0, fmt.Errorf("no alpaca quote returned for %s", symbol)
	}
	if result.BidPrice == 0 {
		return 0, fmt.Errorf("failed to get price for %s: got 0 price", symbol)
	}

	return result.BidPrice, nil
}

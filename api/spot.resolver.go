package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type spotResponse struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// spot looks up a live price for prefilling S0. The free quote feed is
// tried first; alpaca is the authenticated fallback when configured.
func (m ApiHandler) spot(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, 400, "malformed")
		return
	}

	price, err := m.QuoteRepository.LatestPrice(symbol)
	if err != nil && m.AlpacaRepository != nil {
		zap.S().Warnf("quote feed failed for %s, trying alpaca: %v", symbol, err)
		price, err = m.AlpacaRepository.LatestPrice(symbol)
	}
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, spotResponse{
		Symbol: symbol,
		Price:  price,
	})
}

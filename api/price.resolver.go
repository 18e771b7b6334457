package api

import (
	"fmt"

	"optionpricer/internal/domain"

	"github.com/gin-gonic/gin"
)

type priceRequest struct {
	Spot             float64 `json:"spot"`
	Strike           float64 `json:"strike"`
	RiskFreeRate     float64 `json:"riskFreeRate"`
	Volatility       float64 `json:"volatility"`
	Maturity         float64 `json:"maturity"`
	NumSimulations   int     `json:"numSimulations"`
	PayoffExpression string  `json:"payoffExpression"`
}

func (m ApiHandler) price(c *gin.Context) {
	var requestBody priceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(&domain.ValidationError{
			Field:   "body",
			Kind:    domain.ErrorKindMalformed,
			Message: fmt.Sprintf("could not parse request body: %v", err),
		}, c)
		return
	}

	req := domain.PricingRequest{
		Spot:             requestBody.Spot,
		Strike:           requestBody.Strike,
		RiskFreeRate:     requestBody.RiskFreeRate,
		Volatility:       requestBody.Volatility,
		Maturity:         requestBody.Maturity,
		NumSimulations:   requestBody.NumSimulations,
		PayoffExpression: requestBody.PayoffExpression,
	}

	result, err := m.PricingService.Price(c.Request.Context(), req, requestIDFromContext(c))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}

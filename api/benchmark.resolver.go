package api

import (
	"fmt"
	"strings"

	"optionpricer/internal/calculator"
	"optionpricer/internal/domain"

	"github.com/gin-gonic/gin"
)

type benchmarkRequest struct {
	Spot         float64 `json:"spot"`
	Strike       float64 `json:"strike"`
	RiskFreeRate float64 `json:"riskFreeRate"`
	Volatility   float64 `json:"volatility"`
	Maturity     float64 `json:"maturity"`
	OptionType   string  `json:"optionType"`
}

type benchmarkResponse struct {
	Price      float64          `json:"price"`
	OptionType string           `json:"optionType"`
	Inputs     benchmarkRequest `json:"inputs"`
}

// benchmark returns the closed-form Black-Scholes price for a vanilla
// call/put, so users can sanity-check what the simulation converges to.
func (m ApiHandler) benchmark(c *gin.Context) {
	var requestBody benchmarkRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(&domain.ValidationError{
			Field:   "body",
			Kind:    domain.ErrorKindMalformed,
			Message: fmt.Sprintf("could not parse request body: %v", err),
		}, c)
		return
	}

	// reuse the request validation; simulation-only fields don't apply here
	probe := domain.PricingRequest{
		Spot:           requestBody.Spot,
		Strike:         requestBody.Strike,
		RiskFreeRate:   requestBody.RiskFreeRate,
		Volatility:     requestBody.Volatility,
		Maturity:       requestBody.Maturity,
		NumSimulations: 1,
	}
	if err := probe.Validate(); err != nil {
		returnErrorJson(err, c)
		return
	}

	var price float64
	switch strings.ToLower(requestBody.OptionType) {
	case "call":
		price = calculator.BlackScholesCall(
			requestBody.Spot, requestBody.Strike, requestBody.RiskFreeRate,
			requestBody.Volatility, requestBody.Maturity,
		)
	case "put":
		price = calculator.BlackScholesPut(
			requestBody.Spot, requestBody.Strike, requestBody.RiskFreeRate,
			requestBody.Volatility, requestBody.Maturity,
		)
	default:
		returnErrorJson(&domain.ValidationError{
			Field:   "optionType",
			Kind:    domain.ErrorKindOutOfRange,
			Message: fmt.Sprintf("must be call or put, got %q", requestBody.OptionType),
		}, c)
		return
	}

	c.JSON(200, benchmarkResponse{
		Price:      price,
		OptionType: strings.ToLower(requestBody.OptionType),
		Inputs:     requestBody,
	})
}

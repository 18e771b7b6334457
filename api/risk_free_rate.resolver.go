package api

import (
	"fmt"
	"strconv"
	"time"

	"optionpricer/internal/domain"
	treasury_client "optionpricer/pkg/treasury"

	"github.com/gin-gonic/gin"
)

type riskFreeRateResponse struct {
	Maturity float64 `json:"maturity"`
	Rate     float64 `json:"rate"`
}

// riskFreeRate looks up the current treasury yield for a maturity, for
// prefilling r to match the option's tenor.
func (m ApiHandler) riskFreeRate(c *gin.Context) {
	maturity := 1.0
	if raw := c.Query("maturity"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			returnErrorJson(&domain.ValidationError{
				Field:   "maturity",
				Kind:    domain.ErrorKindMalformed,
				Message: fmt.Sprintf("could not parse maturity %q", raw),
			}, c)
			return
		}
		maturity = parsed
	}
	if maturity <= 0 {
		returnErrorJson(&domain.ValidationError{
			Field:   "maturity",
			Kind:    domain.ErrorKindOutOfRange,
			Message: "maturity must be positive",
		}, c)
		return
	}

	curve, err := treasury_client.GetYieldCurve(time.Now().UTC())
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to fetch yield curve: %w", err), c, 502, "internal")
		return
	}

	rate, err := curve.RateForMaturity(maturity)
	if err != nil {
		returnErrorJsonCode(err, c, 502, "internal")
		return
	}

	c.JSON(200, riskFreeRateResponse{
		Maturity: maturity,
		Rate:     rate,
	})
}

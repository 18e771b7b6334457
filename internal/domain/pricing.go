package domain

import (
	"fmt"
	"math"
)

// PricingRequest holds the validated inputs for one Monte Carlo pricing
// call. Constructed from external input and never mutated afterwards.
type PricingRequest struct {
	Spot             float64 `json:"spot"`
	Strike           float64 `json:"strike"`
	RiskFreeRate     float64 `json:"riskFreeRate"`
	Volatility       float64 `json:"volatility"`
	Maturity         float64 `json:"maturity"`
	NumSimulations   int     `json:"numSimulations"`
	PayoffExpression string  `json:"payoffExpression"`
}

// PricingResult is the only data the presentation layer may render. Floats
// are returned raw - rounding and formatting are the caller's problem.
type PricingResult struct {
	Price         float64        `json:"price"`
	StandardError float64        `json:"standardError"`
	MeanPayoff    float64        `json:"meanPayoff"`
	Request       PricingRequest `json:"inputs"`
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks every numeric field is finite and within its domain.
// It must pass before a payoff is compiled or any simulation runs.
func (r PricingRequest) Validate() error {
	numericFields := map[string]float64{
		"spot":         r.Spot,
		"strike":       r.Strike,
		"riskFreeRate": r.RiskFreeRate,
		"volatility":   r.Volatility,
		"maturity":     r.Maturity,
	}
	for field, v := range numericFields {
		if !finite(v) {
			return &ValidationError{
				Field:   field,
				Kind:    ErrorKindMalformed,
				Message: fmt.Sprintf("must be a finite number, got %v", v),
			}
		}
	}

	if r.Spot <= 0 {
		return outOfRange("spot", "must be positive", r.Spot)
	}
	if r.Strike <= 0 {
		return outOfRange("strike", "must be positive", r.Strike)
	}
	if r.Volatility < 0 {
		return outOfRange("volatility", "cannot be negative", r.Volatility)
	}
	if r.Maturity <= 0 {
		return outOfRange("maturity", "must be positive", r.Maturity)
	}
	if r.NumSimulations <= 0 {
		return outOfRange("numSimulations", "must be positive", float64(r.NumSimulations))
	}

	return nil
}

func outOfRange(field, constraint string, got float64) *ValidationError {
	return &ValidationError{
		Field:   field,
		Kind:    ErrorKindOutOfRange,
		Message: fmt.Sprintf("%s, got %v", constraint, got),
	}
}

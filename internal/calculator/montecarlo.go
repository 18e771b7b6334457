// Package calculator implements the Monte Carlo pricer and the closed-form
// Black-Scholes reference it is benchmarked against.
package calculator

import (
	"fmt"
	"math"
	"math/rand/v2"

	"optionpricer/internal/domain"
	"optionpricer/internal/expression"

	"github.com/montanaflynn/stats"
)

// NormalSource yields standard-normal variates. It is the single seam
// through which randomness enters a pricing call; tests inject a seeded
// source to make runs reproducible.
type NormalSource interface {
	NormFloat64() float64
}

type globalSource struct{}

func (globalSource) NormFloat64() float64 { return rand.NormFloat64() }

// NewNormalSource returns the production source, backed by the shared
// math/rand/v2 generator.
func NewNormalSource() NormalSource {
	return globalSource{}
}

// NewSeededNormalSource returns a deterministic PCG-backed source.
func NewSeededNormalSource(seed uint64) NormalSource {
	return rand.New(rand.NewPCG(seed, seed))
}

// RunMonteCarlo estimates the discounted expected payoff of req under the
// Black-Scholes risk-neutral terminal distribution:
//
//	S_T = S0 * exp((r - 0.5*sigma^2)*T + sigma*sqrt(T)*Z)
//
// The first numeric domain failure in the payoff aborts the whole call;
// partial averages are never returned. Pure function of (request, payoff,
// source) with O(numSimulations) transient memory.
func RunMonteCarlo(
	req domain.PricingRequest,
	payoff *expression.Payoff,
	src NormalSource,
) (*domain.PricingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	drift := (req.RiskFreeRate - 0.5*req.Volatility*req.Volatility) * req.Maturity
	diffusion := req.Volatility * math.Sqrt(req.Maturity)

	payoffs := make([]float64, req.NumSimulations)
	for i := range payoffs {
		terminalPrice := req.Spot * math.Exp(drift+diffusion*src.NormFloat64())
		v, err := payoff.Evaluate(terminalPrice)
		if err != nil {
			return nil, fmt.Errorf("simulation aborted at sample %d: %w", i, err)
		}
		payoffs[i] = v
	}

	meanPayoff, err := stats.Mean(payoffs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean payoff: %w", err)
	}

	sampleStdev := 0.0
	if len(payoffs) > 1 {
		sampleStdev, err = stats.StandardDeviationSample(payoffs)
		if err != nil {
			return nil, fmt.Errorf("failed to compute payoff stdev: %w", err)
		}
	}

	discount := math.Exp(-req.RiskFreeRate * req.Maturity)

	return &domain.PricingResult{
		Price:         discount * meanPayoff,
		StandardError: discount * sampleStdev / math.Sqrt(float64(req.NumSimulations)),
		MeanPayoff:    meanPayoff,
		Request:       req,
	}, nil
}

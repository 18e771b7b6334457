package calculator

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"optionpricer/internal/domain"
	"optionpricer/internal/expression"

	"github.com/stretchr/testify/require"
)

func validRequest() domain.PricingRequest {
	return domain.PricingRequest{
		Spot:             100,
		Strike:           100,
		RiskFreeRate:     0.03,
		Volatility:       0.2,
		Maturity:         1,
		NumSimulations:   50000,
		PayoffExpression: "maximum(S_T - K, 0)",
	}
}

func compilePayoff(t *testing.T, req domain.PricingRequest) *expression.Payoff {
	t.Helper()
	payoff, err := expression.Compile(req.PayoffExpression, expression.Env{
		K:  req.Strike,
		S0: req.Spot,
		R:  req.RiskFreeRate,
	})
	require.NoError(t, err)
	return payoff
}

func priceSeeded(t *testing.T, req domain.PricingRequest, seed uint64) *domain.PricingResult {
	t.Helper()
	result, err := RunMonteCarlo(req, compilePayoff(t, req), NewSeededNormalSource(seed))
	require.NoError(t, err)
	return result
}

func TestRunMonteCarlo_ConvergesToClosedForm(t *testing.T) {
	t.Run("vanilla call", func(t *testing.T) {
		req := validRequest()
		req.NumSimulations = 400000

		result := priceSeeded(t, req, 42)

		want := BlackScholesCall(req.Spot, req.Strike, req.RiskFreeRate, req.Volatility, req.Maturity)
		require.InDelta(t, want, result.Price, 4*result.StandardError)
	})

	t.Run("vanilla put", func(t *testing.T) {
		req := validRequest()
		req.PayoffExpression = "maximum(K - S_T, 0)"
		req.NumSimulations = 400000

		result := priceSeeded(t, req, 42)

		want := BlackScholesPut(req.Spot, req.Strike, req.RiskFreeRate, req.Volatility, req.Maturity)
		require.InDelta(t, want, result.Price, 4*result.StandardError)
	})
}

func TestRunMonteCarlo_PutCallParity(t *testing.T) {
	req := validRequest()
	req.NumSimulations = 400000

	call := priceSeeded(t, req, 7)

	putReq := req
	putReq.PayoffExpression = "maximum(K - S_T, 0)"
	put := priceSeeded(t, putReq, 7)

	wantParity := req.Spot - req.Strike*math.Exp(-req.RiskFreeRate*req.Maturity)
	tolerance := 4 * (call.StandardError + put.StandardError)
	require.InDelta(t, wantParity, call.Price-put.Price, tolerance)
}

func TestRunMonteCarlo_StandardErrorShrinksWithN(t *testing.T) {
	small := validRequest()
	small.NumSimulations = 1000

	large := validRequest()
	large.NumSimulations = 100000

	smallResult := priceSeeded(t, small, 11)
	largeResult := priceSeeded(t, large, 11)

	require.Greater(t, smallResult.StandardError, largeResult.StandardError)
}

func TestRunMonteCarlo_ZeroVolatilityIsDeterministic(t *testing.T) {
	req := validRequest()
	req.Volatility = 0
	req.NumSimulations = 1000

	result := priceSeeded(t, req, 3)

	forward := req.Spot * math.Exp(req.RiskFreeRate*req.Maturity)
	wantPayoff := math.Max(forward-req.Strike, 0)
	wantPrice := math.Exp(-req.RiskFreeRate*req.Maturity) * wantPayoff

	require.InDelta(t, wantPrice, result.Price, 1e-12)
	require.InDelta(t, wantPayoff, result.MeanPayoff, 1e-12)
	require.Equal(t, 0.0, result.StandardError)
}

func TestRunMonteCarlo_NonNegativePayoffGivesNonNegativePrice(t *testing.T) {
	// property check over random valid parameter tuples
	rng := rand.New(rand.NewPCG(99, 99))
	for i := 0; i < 25; i++ {
		req := domain.PricingRequest{
			Spot:             10 + 190*rng.Float64(),
			Strike:           10 + 190*rng.Float64(),
			RiskFreeRate:     -0.05 + 0.15*rng.Float64(),
			Volatility:       0.6 * rng.Float64(),
			Maturity:         0.1 + 3*rng.Float64(),
			NumSimulations:   2000,
			PayoffExpression: "maximum(S_T - K, 0)",
		}

		result := priceSeeded(t, req, uint64(i+1))
		require.GreaterOrEqual(t, result.Price, 0.0,
			"non-negative payoff priced negative for %+v", req)
	}
}

func TestRunMonteCarlo_EchoesRequest(t *testing.T) {
	req := validRequest()
	req.NumSimulations = 100

	result := priceSeeded(t, req, 5)
	require.Equal(t, req, result.Request)
}

func TestRunMonteCarlo_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.PricingRequest)
		field  string
	}{
		{"zero simulations", func(r *domain.PricingRequest) { r.NumSimulations = 0 }, "numSimulations"},
		{"negative simulations", func(r *domain.PricingRequest) { r.NumSimulations = -5 }, "numSimulations"},
		{"zero maturity", func(r *domain.PricingRequest) { r.Maturity = 0 }, "maturity"},
		{"negative spot", func(r *domain.PricingRequest) { r.Spot = -1 }, "spot"},
		{"negative volatility", func(r *domain.PricingRequest) { r.Volatility = -0.2 }, "volatility"},
		{"nan strike", func(r *domain.PricingRequest) { r.Strike = math.NaN() }, "strike"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			payoff := compilePayoff(t, validRequest())
			drawn := 0
			src := countingSource{count: &drawn}

			_, err := RunMonteCarlo(req, payoff, src)
			require.Error(t, err)

			var validationErr *domain.ValidationError
			require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %T", err)
			require.Equal(t, tc.field, validationErr.Field)
			require.Zero(t, drawn, "validation failures must never reach the sampling step")
		})
	}
}

func TestRunMonteCarlo_DomainFailureAbortsWholeCall(t *testing.T) {
	req := validRequest()
	// argument is negative for every reachable draw
	req.PayoffExpression = "log(S_T - 10*K)"
	req.NumSimulations = 1000

	_, err := RunMonteCarlo(req, compilePayoff(t, req), NewSeededNormalSource(1))
	require.Error(t, err)

	var evalErr *domain.EvaluationError
	require.True(t, errors.As(err, &evalErr), "expected EvaluationError, got %T", err)
}

type countingSource struct {
	count *int
}

func (s countingSource) NormFloat64() float64 {
	*s.count++
	return 0
}

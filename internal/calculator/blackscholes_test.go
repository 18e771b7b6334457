package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlackScholesKnownValues(t *testing.T) {
	// textbook example: S=100, K=100, r=5%, sigma=20%, T=1y
	call := BlackScholesCall(100, 100, 0.05, 0.2, 1)
	put := BlackScholesPut(100, 100, 0.05, 0.2, 1)

	require.InDelta(t, 10.4506, call, 1e-3)
	require.InDelta(t, 5.5735, put, 1e-3)
}

func TestBlackScholesPutCallParity(t *testing.T) {
	spot, strike, riskFreeRate, volatility, maturity := 105.0, 98.0, 0.02, 0.35, 0.75

	call := BlackScholesCall(spot, strike, riskFreeRate, volatility, maturity)
	put := BlackScholesPut(spot, strike, riskFreeRate, volatility, maturity)

	parity := spot - strike*math.Exp(-riskFreeRate*maturity)
	require.InDelta(t, parity, call-put, 1e-9)
}

func TestBlackScholesZeroVolatility(t *testing.T) {
	t.Run("in the money call", func(t *testing.T) {
		got := BlackScholesCall(120, 100, 0.05, 0, 1)
		require.InDelta(t, 120-100*math.Exp(-0.05), got, 1e-9)
	})

	t.Run("out of the money call", func(t *testing.T) {
		require.Equal(t, 0.0, BlackScholesCall(80, 100, 0.0, 0, 1))
	})
}

package calculator

import "math"

// Closed-form Black-Scholes vanilla prices. Used by the benchmark endpoint
// and as the convergence target in the Monte Carlo tests.

func normCdf(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// BlackScholesCall returns the closed-form price of a European call. With
// zero volatility the price degenerates to discounted forward intrinsic
// value.
func BlackScholesCall(spot, strike, riskFreeRate, volatility, maturity float64) float64 {
	if volatility <= 0 {
		return math.Max(spot-strike*math.Exp(-riskFreeRate*maturity), 0)
	}

	d1 := (math.Log(spot/strike) + (riskFreeRate+0.5*volatility*volatility)*maturity) /
		(volatility * math.Sqrt(maturity))
	d2 := d1 - volatility*math.Sqrt(maturity)

	return spot*normCdf(d1) - strike*math.Exp(-riskFreeRate*maturity)*normCdf(d2)
}

// BlackScholesPut returns the closed-form price of a European put.
func BlackScholesPut(spot, strike, riskFreeRate, volatility, maturity float64) float64 {
	if volatility <= 0 {
		return math.Max(strike*math.Exp(-riskFreeRate*maturity)-spot, 0)
	}

	d1 := (math.Log(spot/strike) + (riskFreeRate+0.5*volatility*volatility)*maturity) /
		(volatility * math.Sqrt(maturity))
	d2 := d1 - volatility*math.Sqrt(maturity)

	return strike*math.Exp(-riskFreeRate*maturity)*normCdf(-d2) - spot*normCdf(-d1)
}

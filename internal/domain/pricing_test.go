package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func validRequest() PricingRequest {
	return PricingRequest{
		Spot:             100,
		Strike:           100,
		RiskFreeRate:     0.03,
		Volatility:       0.2,
		Maturity:         1,
		NumSimulations:   50000,
		PayoffExpression: "maximum(S_T - K, 0)",
	}
}

func TestPricingRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, validRequest().Validate())
	})

	t.Run("negative rate is allowed", func(t *testing.T) {
		req := validRequest()
		req.RiskFreeRate = -0.01
		require.NoError(t, req.Validate())
	})

	t.Run("zero volatility is allowed", func(t *testing.T) {
		req := validRequest()
		req.Volatility = 0
		require.NoError(t, req.Validate())
	})

	tests := []struct {
		name     string
		mutate   func(*PricingRequest)
		field    string
		wantKind string
	}{
		{"negative spot", func(r *PricingRequest) { r.Spot = -1 }, "spot", ErrorKindOutOfRange},
		{"zero spot", func(r *PricingRequest) { r.Spot = 0 }, "spot", ErrorKindOutOfRange},
		{"zero strike", func(r *PricingRequest) { r.Strike = 0 }, "strike", ErrorKindOutOfRange},
		{"negative volatility", func(r *PricingRequest) { r.Volatility = -0.2 }, "volatility", ErrorKindOutOfRange},
		{"zero maturity", func(r *PricingRequest) { r.Maturity = 0 }, "maturity", ErrorKindOutOfRange},
		{"zero simulations", func(r *PricingRequest) { r.NumSimulations = 0 }, "numSimulations", ErrorKindOutOfRange},
		{"nan spot", func(r *PricingRequest) { r.Spot = math.NaN() }, "spot", ErrorKindMalformed},
		{"infinite maturity", func(r *PricingRequest) { r.Maturity = math.Inf(1) }, "maturity", ErrorKindMalformed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			require.Equal(t, tc.field, validationErr.Field)
			require.Equal(t, tc.wantKind, validationErr.Kind)
		})
	}
}

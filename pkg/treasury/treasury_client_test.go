package treasury_client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRateForMaturity(t *testing.T) {
	curve := YieldCurve{
		Rates: map[int]float64{
			1:   0.0148,
			12:  0.0159,
			24:  0.0158,
			120: 0.0192,
			360: 0.0239,
		},
	}

	t.Run("exact tenor", func(t *testing.T) {
		rate, err := curve.RateForMaturity(1)
		require.NoError(t, err)
		require.Equal(t, 0.0159, rate)
	})

	t.Run("interpolates between tenors", func(t *testing.T) {
		rate, err := curve.RateForMaturity(1.5)
		require.NoError(t, err)
		require.InDelta(t, (0.0159+0.0158)/2, rate, 1e-10)
	})

	t.Run("clamps below shortest tenor", func(t *testing.T) {
		rate, err := curve.RateForMaturity(0.01)
		require.NoError(t, err)
		require.Equal(t, 0.0148, rate)
	})

	t.Run("clamps beyond longest tenor", func(t *testing.T) {
		rate, err := curve.RateForMaturity(50)
		require.NoError(t, err)
		require.Equal(t, 0.0239, rate)
	})

	t.Run("empty curve errors", func(t *testing.T) {
		_, err := YieldCurve{}.RateForMaturity(1)
		require.Error(t, err)
	})
}

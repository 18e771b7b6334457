package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"optionpricer/internal/calculator"
	"optionpricer/internal/domain"
	"optionpricer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newTestHandler() ApiHandler {
	gin.SetMode(gin.TestMode)
	return ApiHandler{
		PricingService: service.NewPricingService(nil, calculator.NewSeededNormalSource(42)),
	}
}

func postJSON(t *testing.T, handler ApiHandler, route string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, route, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler.InitializeRouterEngine().ServeHTTP(recorder, req)
	return recorder
}

func TestPriceResolver(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		recorder := postJSON(t, newTestHandler(), "/price", priceRequest{
			Spot:             100,
			Strike:           100,
			RiskFreeRate:     0.03,
			Volatility:       0.2,
			Maturity:         1,
			NumSimulations:   20000,
			PayoffExpression: "maximum(S_T - K, 0)",
		})

		require.Equal(t, 200, recorder.Code)

		var response domain.PricingResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Greater(t, response.Price, 0.0)
		require.Greater(t, response.StandardError, 0.0)

		wantInputs := domain.PricingRequest{
			Spot:             100,
			Strike:           100,
			RiskFreeRate:     0.03,
			Volatility:       0.2,
			Maturity:         1,
			NumSimulations:   20000,
			PayoffExpression: "maximum(S_T - K, 0)",
		}
		require.Empty(t, cmp.Diff(wantInputs, response.Request))
	})

	t.Run("rejected expression returns 400", func(t *testing.T) {
		recorder := postJSON(t, newTestHandler(), "/price", priceRequest{
			Spot:             100,
			Strike:           100,
			RiskFreeRate:     0.03,
			Volatility:       0.2,
			Maturity:         1,
			NumSimulations:   100,
			PayoffExpression: "S_T + sigma",
		})

		require.Equal(t, 400, recorder.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Equal(t, domain.ErrorKindUnknownIdentifier, response["errorKind"])
	})

	t.Run("out of range input returns 400", func(t *testing.T) {
		recorder := postJSON(t, newTestHandler(), "/price", priceRequest{
			Spot:             -1,
			Strike:           100,
			RiskFreeRate:     0.03,
			Volatility:       0.2,
			Maturity:         1,
			NumSimulations:   100,
			PayoffExpression: "maximum(S_T - K, 0)",
		})

		require.Equal(t, 400, recorder.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Equal(t, domain.ErrorKindOutOfRange, response["errorKind"])
	})

	t.Run("numeric domain failure returns 422", func(t *testing.T) {
		recorder := postJSON(t, newTestHandler(), "/price", priceRequest{
			Spot:             100,
			Strike:           100,
			RiskFreeRate:     0.03,
			Volatility:       0.2,
			Maturity:         1,
			NumSimulations:   100,
			PayoffExpression: "log(S_T - 10*K)",
		})

		require.Equal(t, 422, recorder.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Equal(t, domain.ErrorKindNumericDomain, response["errorKind"])
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		handler := newTestHandler()
		req := httptest.NewRequest(http.MethodPost, "/price", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		handler.InitializeRouterEngine().ServeHTTP(recorder, req)

		require.Equal(t, 400, recorder.Code)
	})
}

func TestBenchmarkResolver(t *testing.T) {
	t.Run("call matches closed form", func(t *testing.T) {
		recorder := postJSON(t, newTestHandler(), "/benchmark", benchmarkRequest{
			Spot:         100,
			Strike:       100,
			RiskFreeRate: 0.05,
			Volatility:   0.2,
			Maturity:     1,
			OptionType:   "call",
		})

		require.Equal(t, 200, recorder.Code)

		var response benchmarkResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.InDelta(t, 10.4506, response.Price, 1e-3)
	})

	t.Run("unknown option type returns 400", func(t *testing.T) {
		recorder := postJSON(t, newTestHandler(), "/benchmark", benchmarkRequest{
			Spot:         100,
			Strike:       100,
			RiskFreeRate: 0.05,
			Volatility:   0.2,
			Maturity:     1,
			OptionType:   "straddle",
		})

		require.Equal(t, 400, recorder.Code)
	})
}

package expression

import (
	"errors"
	"math"
	"testing"

	"optionpricer/internal/domain"

	"github.com/stretchr/testify/require"
)

var testEnv = Env{K: 100, S0: 95, R: 0.05}

func evaluate(t *testing.T, expr string, terminalPrice float64) float64 {
	t.Helper()
	payoff, err := Compile(expr, testEnv)
	require.NoError(t, err)
	v, err := payoff.Evaluate(terminalPrice)
	require.NoError(t, err)
	return v
}

func TestCompileAndEvaluate(t *testing.T) {
	tests := []struct {
		name          string
		expression    string
		terminalPrice float64
		want          float64
	}{
		{"vanilla call itm", "maximum(S_T - K, 0)", 120, 20},
		{"vanilla call otm", "maximum(S_T - K, 0)", 80, 0},
		{"vanilla put", "maximum(K - S_T, 0)", 80, 20},
		{"max alias", "max(S_T - K, 0)", 120, 20},
		{"min alias", "min(S_T, K)", 120, 100},
		{"digital above strike", "(S_T > K) * 1", 120, 1},
		{"digital below strike", "(S_T > K) * 1", 80, 0},
		{"digital scaled", "(S_T >= K) * 10", 100, 10},
		{"not equal", "(S_T != K) * 2", 100, 0},
		{"clip inside", "clip(S_T - K, 0, 15)", 110, 10},
		{"clip above", "clip(S_T - K, 0, 15)", 140, 15},
		{"clip below", "clip(S_T - K, 0, 15)", 90, 0},
		{"abs", "abs(K - S_T)", 120, 20},
		{"bound names", "S0 + r", 0, 95.05},
		{"constants", "pi + e", 0, math.Pi + math.E},
		{"power right assoc", "2 ** 3 ** 2", 0, 512},
		{"unary minus binds looser than power", "-2 ** 2", 0, -4},
		{"negative exponent", "2 ** -1", 0, 0.5},
		{"unary plus", "+S_T", 50, 50},
		{"modulo", "S_T % 30", 100, 10},
		{"scientific literal", "1e2 + 0.5", 0, 100.5},
		{"precedence", "1 + 2 * 3", 0, 7},
		{"parentheses", "(1 + 2) * 3", 0, 9},
		{"exp log roundtrip", "exp(log(S_T))", 50, 50},
		{"sqrt", "sqrt(S_T)", 49, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := evaluate(t, tc.expression, tc.terminalPrice)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestCompileRejections(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantKind   string
	}{
		{"python import", "S_T + __import__('os')", domain.ErrorKindUnsupportedSyntax},
		{"unknown identifier", "S_T + sigma", domain.ErrorKindUnknownIdentifier},
		{"unknown function", "foo(S_T)", domain.ErrorKindUnknownFunction},
		{"dunder function", "__import__(S_T)", domain.ErrorKindUnknownFunction},
		{"attribute access", "S_T.real", domain.ErrorKindUnsupportedSyntax},
		{"subscript", "S_T[0]", domain.ErrorKindUnsupportedSyntax},
		{"string literal", "\"os\"", domain.ErrorKindUnsupportedSyntax},
		{"statement", "S_T = 1", domain.ErrorKindUnsupportedSyntax},
		{"dangling operator", "S_T +", domain.ErrorKindUnsupportedSyntax},
		{"unbalanced parens", "maximum(S_T - K, 0", domain.ErrorKindUnsupportedSyntax},
		{"empty expression", "", domain.ErrorKindUnsupportedSyntax},
		{"maximum arity", "maximum(S_T)", domain.ErrorKindWrongArity},
		{"clip arity", "clip(S_T, 0)", domain.ErrorKindWrongArity},
		{"abs arity", "abs(S_T, K)", domain.ErrorKindWrongArity},
		{"nested bad identifier", "maximum(S_T - K, os)", domain.ErrorKindUnknownIdentifier},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.expression, testEnv)
			require.Error(t, err)

			var exprErr *domain.ExpressionError
			require.True(t, errors.As(err, &exprErr), "expected ExpressionError, got %T", err)
			require.Equal(t, tc.wantKind, exprErr.Kind)
		})
	}
}

func TestEvaluateNumericDomainFailures(t *testing.T) {
	tests := []struct {
		name          string
		expression    string
		terminalPrice float64
	}{
		{"log of negative", "log(S_T - 10*K)", 50},
		{"log of zero", "log(S_T - K)", 100},
		{"sqrt of negative", "sqrt(S_T - K)", 50},
		{"division by zero", "S_T / (S_T - K)", 100},
		{"modulo by zero", "S_T % (S_T - K)", 100},
		{"nan result", "(0 - S_T) ** 0.5", 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payoff, err := Compile(tc.expression, testEnv)
			require.NoError(t, err, "domain failures must surface at evaluation, not compile")

			_, err = payoff.Evaluate(tc.terminalPrice)
			require.Error(t, err)

			var evalErr *domain.EvaluationError
			require.True(t, errors.As(err, &evalErr), "expected EvaluationError, got %T", err)
			require.Equal(t, domain.ErrorKindNumericDomain, evalErr.Kind)
		})
	}
}

func TestPayoffIsReusable(t *testing.T) {
	payoff, err := Compile("maximum(S_T - K, 0)", testEnv)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		v, err := payoff.Evaluate(130)
		require.NoError(t, err)
		require.Equal(t, 30.0, v)
	}
}

package expression

import (
	"fmt"
	"math"

	"optionpricer/internal/domain"
)

// bindings holds the values all identifiers resolve to during one
// evaluation. S_T varies per Monte Carlo draw; the rest come from Env.
type bindings struct {
	terminalPrice float64
	strike        float64
	spot          float64
	riskFreeRate  float64
}

type node interface {
	eval(b *bindings) (float64, error)
}

type numberNode struct {
	value float64
}

func (n numberNode) eval(*bindings) (float64, error) { return n.value, nil }

type identNode struct {
	name string
}

func (n identNode) eval(b *bindings) (float64, error) {
	switch n.name {
	case "S_T":
		return b.terminalPrice, nil
	case "K":
		return b.strike, nil
	case "S0":
		return b.spot, nil
	case "r":
		return b.riskFreeRate, nil
	case "pi":
		return math.Pi, nil
	case "e":
		return math.E, nil
	}
	// unreachable: identifiers are whitelisted at compile time
	return 0, &domain.ExpressionError{
		Kind:      domain.ErrorKindUnknownIdentifier,
		Construct: n.name,
		Message:   "unknown identifier",
	}
}

type unaryNode struct {
	op      string
	operand node
}

func (n unaryNode) eval(b *bindings) (float64, error) {
	v, err := n.operand.eval(b)
	if err != nil {
		return 0, err
	}
	if n.op == "-" {
		return -v, nil
	}
	return v, nil
}

type binaryNode struct {
	op    string
	left  node
	right node
}

func (n binaryNode) eval(b *bindings) (float64, error) {
	l, err := n.left.eval(b)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(b)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, numericDomainError("division by zero")
		}
		return l / r, nil
	case "%":
		if r == 0 {
			return 0, numericDomainError("modulo by zero")
		}
		return math.Mod(l, r), nil
	case "**":
		return math.Pow(l, r), nil
	}
	return 0, numericDomainError(fmt.Sprintf("unknown operator %q", n.op))
}

// compareNode evaluates to 1 or 0 so comparisons compose arithmetically,
// e.g. the digital payoff (S_T > K) * 1.
type compareNode struct {
	op    string
	left  node
	right node
}

func (n compareNode) eval(b *bindings) (float64, error) {
	l, err := n.left.eval(b)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(b)
	if err != nil {
		return 0, err
	}

	var truth bool
	switch n.op {
	case "<":
		truth = l < r
	case "<=":
		truth = l <= r
	case ">":
		truth = l > r
	case ">=":
		truth = l >= r
	case "==":
		truth = l == r
	case "!=":
		truth = l != r
	}
	if truth {
		return 1, nil
	}
	return 0, nil
}

type callNode struct {
	name string
	args []node
}

func (n callNode) eval(b *bindings) (float64, error) {
	args := make([]float64, len(n.args))
	for i, arg := range n.args {
		v, err := arg.eval(b)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	switch n.name {
	case "maximum", "max":
		return math.Max(args[0], args[1]), nil
	case "minimum", "min":
		return math.Min(args[0], args[1]), nil
	case "abs":
		return math.Abs(args[0]), nil
	case "exp":
		return math.Exp(args[0]), nil
	case "log":
		if args[0] <= 0 {
			return 0, numericDomainError(fmt.Sprintf("log of non-positive number %v", args[0]))
		}
		return math.Log(args[0]), nil
	case "sqrt":
		if args[0] < 0 {
			return 0, numericDomainError(fmt.Sprintf("sqrt of negative number %v", args[0]))
		}
		return math.Sqrt(args[0]), nil
	case "clip":
		// numpy clip semantics: lower bound applied first
		return math.Min(math.Max(args[0], args[1]), args[2]), nil
	}
	// unreachable: call names and arities are whitelisted at compile time
	return 0, &domain.ExpressionError{
		Kind:      domain.ErrorKindUnknownFunction,
		Construct: n.name,
		Message:   "unknown function",
	}
}

func numericDomainError(message string) *domain.EvaluationError {
	return &domain.EvaluationError{
		Kind:    domain.ErrorKindNumericDomain,
		Message: message,
	}
}

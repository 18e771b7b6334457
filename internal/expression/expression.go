// Package expression compiles user-supplied payoff formulas into safely
// evaluable functions of the terminal asset price. The grammar is a fixed
// whitelist: the free variable S_T, the bound names K, S0 and r, the
// constants pi and e, arithmetic and comparison operators, and a handful of
// math functions. There is no way to reach host functionality from a payoff
// expression; everything else is rejected at compile time.
package expression

import (
	"fmt"
	"math"

	"optionpricer/internal/domain"
)

// Env carries the scalar contract parameters a payoff closes over. It is an
// explicit struct rather than lexical capture so a compiled Payoff is
// trivially shareable across samples and goroutines.
type Env struct {
	K  float64
	S0 float64
	R  float64
}

// Payoff is a compiled payoff expression. It is stateless after compilation
// and safe for concurrent use.
type Payoff struct {
	root node
	env  Env
}

var functionArity = map[string]int{
	"maximum": 2,
	"minimum": 2,
	"max":     2,
	"min":     2,
	"abs":     1,
	"exp":     1,
	"log":     1,
	"sqrt":    1,
	"clip":    3,
}

var allowedIdentifiers = map[string]bool{
	"S_T": true,
	"K":   true,
	"S0":  true,
	"r":   true,
	"pi":  true,
	"e":   true,
}

// Compile parses expr, statically validates every node against the
// whitelist, and returns a Payoff bound to env. All rejections are
// *domain.ExpressionError; no simulation work happens here.
func Compile(expr string, env Env) (*Payoff, error) {
	root, err := parse(expr)
	if err != nil {
		return nil, err
	}
	if err := validate(root); err != nil {
		return nil, err
	}
	return &Payoff{root: root, env: env}, nil
}

// validate walks the parsed structure once, checking identifiers and
// function calls against the whitelist. The parser only produces node types
// the grammar allows, so this walk is the complete static check.
func validate(n node) error {
	switch t := n.(type) {
	case numberNode:
		return nil

	case identNode:
		if !allowedIdentifiers[t.name] {
			return &domain.ExpressionError{
				Kind:      domain.ErrorKindUnknownIdentifier,
				Construct: t.name,
				Message:   fmt.Sprintf("identifier %q is not allowed", t.name),
			}
		}
		return nil

	case unaryNode:
		return validate(t.operand)

	case binaryNode:
		if err := validate(t.left); err != nil {
			return err
		}
		return validate(t.right)

	case compareNode:
		if err := validate(t.left); err != nil {
			return err
		}
		return validate(t.right)

	case callNode:
		arity, ok := functionArity[t.name]
		if !ok {
			return &domain.ExpressionError{
				Kind:      domain.ErrorKindUnknownFunction,
				Construct: t.name,
				Message:   fmt.Sprintf("function %q is not allowed", t.name),
			}
		}
		if len(t.args) != arity {
			return &domain.ExpressionError{
				Kind:      domain.ErrorKindWrongArity,
				Construct: t.name,
				Message:   fmt.Sprintf("%s takes %d arguments, got %d", t.name, arity, len(t.args)),
			}
		}
		for _, arg := range t.args {
			if err := validate(arg); err != nil {
				return err
			}
		}
		return nil
	}

	return &domain.ExpressionError{
		Kind:    domain.ErrorKindUnsupportedSyntax,
		Message: fmt.Sprintf("unsupported expression component %T", n),
	}
}

// Evaluate computes the payoff for one terminal price. Numeric domain
// failures (log of a non-positive number, division by zero, a NaN or
// infinite result) return *domain.EvaluationError.
func (p *Payoff) Evaluate(terminalPrice float64) (float64, error) {
	b := bindings{
		terminalPrice: terminalPrice,
		strike:        p.env.K,
		spot:          p.env.S0,
		riskFreeRate:  p.env.R,
	}
	v, err := p.root.eval(&b)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, numericDomainError("payoff evaluated to NaN")
	}
	if math.IsInf(v, 0) {
		return 0, numericDomainError("payoff evaluated to infinity")
	}
	return v, nil
}

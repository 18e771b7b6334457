package domain

import "fmt"

// Error kinds surfaced to callers alongside the message. Stable strings -
// the API and CLI echo them verbatim.
const (
	ErrorKindOutOfRange        = "out_of_range"
	ErrorKindMalformed         = "malformed"
	ErrorKindUnsupportedSyntax = "unsupported_syntax"
	ErrorKindUnknownIdentifier = "unknown_identifier"
	ErrorKindUnknownFunction   = "unknown_function"
	ErrorKindWrongArity        = "wrong_arity"
	ErrorKindNumericDomain     = "numeric_domain"
)

// ValidationError reports a pricing request field that is malformed or
// outside its allowed range. Raised before any expression compilation or
// sampling happens.
type ValidationError struct {
	Field   string
	Kind    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ExpressionError reports a payoff expression that failed static checks:
// syntax the grammar doesn't allow, an identifier or function outside the
// whitelist, or a call with the wrong number of arguments.
type ExpressionError struct {
	Kind      string
	Construct string
	Message   string
}

func (e *ExpressionError) Error() string {
	if e.Construct != "" {
		return fmt.Sprintf("invalid payoff expression: %s (%q)", e.Message, e.Construct)
	}
	return fmt.Sprintf("invalid payoff expression: %s", e.Message)
}

// EvaluationError reports a numeric domain failure while evaluating a
// compiled payoff against a simulated terminal price, e.g. log of a
// non-positive number. The first such failure aborts the whole pricing call.
type EvaluationError struct {
	Kind    string
	Message string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("payoff evaluation failed: %s", e.Message)
}

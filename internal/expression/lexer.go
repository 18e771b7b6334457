package expression

import (
	"fmt"
	"strconv"

	"optionpricer/internal/domain"
)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenIdent
	tokenOperator // + - * / % **
	tokenCompare  // < <= > >= == !=
	tokenLeftParen
	tokenRightParen
	tokenComma
	tokenEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

// tokenize splits the raw expression into tokens. Anything outside the
// grammar (string quotes, brackets, attribute access, etc) fails here, which
// guarantees no construct ever reaches the parser unnamed.
func tokenize(input string) ([]token, error) {
	tokens := []token{}
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case isDigit(c) || (c == '.' && i+1 < len(input) && isDigit(input[i+1])):
			start := i
			for i < len(input) && (isDigit(input[i]) || input[i] == '.') {
				i++
			}
			// exponent suffix, e.g. 1e-5
			if i < len(input) && (input[i] == 'e' || input[i] == 'E') {
				j := i + 1
				if j < len(input) && (input[j] == '+' || input[j] == '-') {
					j++
				}
				if j < len(input) && isDigit(input[j]) {
					i = j
					for i < len(input) && isDigit(input[i]) {
						i++
					}
				}
			}
			text := input[start:i]
			if _, err := strconv.ParseFloat(text, 64); err != nil {
				return nil, &domain.ExpressionError{
					Kind:      domain.ErrorKindUnsupportedSyntax,
					Construct: text,
					Message:   "malformed numeric literal",
				}
			}
			tokens = append(tokens, token{kind: tokenNumber, text: text, pos: start})

		case isIdentStart(c):
			start := i
			for i < len(input) && isIdentPart(input[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenIdent, text: input[start:i], pos: start})

		case c == '*':
			if i+1 < len(input) && input[i+1] == '*' {
				tokens = append(tokens, token{kind: tokenOperator, text: "**", pos: i})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokenOperator, text: "*", pos: i})
				i++
			}

		case c == '+' || c == '-' || c == '/' || c == '%':
			tokens = append(tokens, token{kind: tokenOperator, text: string(c), pos: i})
			i++

		case c == '<' || c == '>':
			if i+1 < len(input) && input[i+1] == '=' {
				tokens = append(tokens, token{kind: tokenCompare, text: input[i : i+2], pos: i})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokenCompare, text: string(c), pos: i})
				i++
			}

		case c == '=' || c == '!':
			if i+1 < len(input) && input[i+1] == '=' {
				tokens = append(tokens, token{kind: tokenCompare, text: input[i : i+2], pos: i})
				i += 2
			} else {
				return nil, unsupportedChar(c, i)
			}

		case c == '(':
			tokens = append(tokens, token{kind: tokenLeftParen, text: "(", pos: i})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRightParen, text: ")", pos: i})
			i++
		case c == ',':
			tokens = append(tokens, token{kind: tokenComma, text: ",", pos: i})
			i++

		default:
			return nil, unsupportedChar(c, i)
		}
	}

	tokens = append(tokens, token{kind: tokenEOF, pos: len(input)})
	return tokens, nil
}

func unsupportedChar(c byte, pos int) error {
	return &domain.ExpressionError{
		Kind:      domain.ErrorKindUnsupportedSyntax,
		Construct: string(c),
		Message:   fmt.Sprintf("unsupported character at position %d", pos),
	}
}

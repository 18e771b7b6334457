package expression

import (
	"fmt"
	"strconv"

	"optionpricer/internal/domain"
)

// Grammar, loosest binding first:
//
//	comparison  = additive { ("<" | "<=" | ">" | ">=" | "==" | "!=") additive }
//	additive    = multiplicative { ("+" | "-") multiplicative }
//	multiplicative = unary { ("*" | "/" | "%") unary }
//	unary       = ("-" | "+") unary | power
//	power       = primary [ "**" unary ]   (right-associative, -x allowed in exponent)
//	primary     = number | ident | ident "(" args ")" | "(" comparison ")"
type parser struct {
	tokens []token
	pos    int
}

func parse(input string) (node, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	root, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokenEOF {
		return nil, syntaxError(p.peek(), "unexpected trailing input")
	}
	return root, nil
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) parseComparison() (node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenCompare {
		op := p.next().text
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = compareNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAdditive() (node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenOperator && (p.peek().text == "+" || p.peek().text == "-") {
		op := p.next().text
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenOperator &&
		(p.peek().text == "*" || p.peek().text == "/" || p.peek().text == "%") {
		op := p.next().text
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

// Unary minus binds looser than ** so that -2**2 == -(2**2), matching the
// conventional math reading.
func (p *parser) parseUnary() (node, error) {
	if p.peek().kind == tokenOperator && (p.peek().text == "-" || p.peek().text == "+") {
		op := p.next().text
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op, operand: operand}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokenOperator && p.peek().text == "**" {
		p.next()
		exponent, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binaryNode{op: "**", left: base, right: exponent}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (node, error) {
	t := p.peek()
	switch t.kind {
	case tokenNumber:
		p.next()
		v, _ := strconv.ParseFloat(t.text, 64)
		return numberNode{value: v}, nil

	case tokenIdent:
		p.next()
		if p.peek().kind == tokenLeftParen {
			return p.parseCall(t.text)
		}
		return identNode{name: t.text}, nil

	case tokenLeftParen:
		p.next()
		inner, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokenRightParen {
			return nil, syntaxError(p.peek(), "expected closing parenthesis")
		}
		p.next()
		return inner, nil
	}

	return nil, syntaxError(t, "expected a number, identifier or parenthesized expression")
}

func (p *parser) parseCall(name string) (node, error) {
	p.next() // consume "("
	args := []node{}
	if p.peek().kind != tokenRightParen {
		for {
			arg, err := p.parseComparison()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokenComma {
				break
			}
			p.next()
		}
	}
	if p.peek().kind != tokenRightParen {
		return nil, syntaxError(p.peek(), "expected closing parenthesis in call")
	}
	p.next()
	return callNode{name: name, args: args}, nil
}

func syntaxError(t token, message string) error {
	construct := t.text
	if t.kind == tokenEOF {
		construct = "end of expression"
	}
	return &domain.ExpressionError{
		Kind:      domain.ErrorKindUnsupportedSyntax,
		Construct: construct,
		Message:   fmt.Sprintf("%s at position %d", message, t.pos),
	}
}

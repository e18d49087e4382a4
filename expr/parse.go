// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/numlab/numerr"
)

var (
	// ErrSyntax indicates malformed expression text.
	ErrSyntax = numerr.New(numerr.Validation, "expr: syntax error")

	// ErrUnknownName indicates an identifier that is neither x, a constant
	// nor a supported function.
	ErrUnknownName = numerr.New(numerr.Validation, "expr: unknown name")
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNum
	tokName
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// lex splits src into tokens. "**" is folded into "^".
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := rune(src[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			i = scanNumber(src, i)
			v, err := strconv.ParseFloat(src[start:i], 64)
			if err != nil {
				return nil, fmt.Errorf("at %d: bad number %q: %w", start, src[start:i], ErrSyntax)
			}
			toks = append(toks, token{kind: tokNum, text: src[start:i], num: v, pos: start})
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
			start := i
			for i < len(src) && (isNameByte(src[i]) || src[i] == '.') {
				i++
			}
			toks = append(toks, token{kind: tokName, text: src[start:i], pos: start})
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case c == '*' && i+1 < len(src) && src[i+1] == '*':
			toks = append(toks, token{kind: tokOp, text: "^", pos: i})
			i += 2
		case strings.ContainsRune("+-*/^", c):
			toks = append(toks, token{kind: tokOp, text: string(c), pos: i})
			i++
		default:
			return nil, fmt.Errorf("at %d: unexpected %q: %w", i, c, ErrSyntax)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

// scanNumber consumes digits, one decimal point and an optional exponent.
func scanNumber(src string, i int) int {
	for i < len(src) && (src[i] >= '0' && src[i] <= '9' || src[i] == '.') {
		i++
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && src[j] >= '0' && src[j] <= '9' {
			for j < len(src) && src[j] >= '0' && src[j] <= '9' {
				j++
			}
			return j
		}
	}
	return i
}

func isNameByte(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

type parser struct {
	toks []token
	pos  int
}

// Parse builds the expression tree for src.
//
// Errors: ErrSyntax (with byte offset) or ErrUnknownName.
func Parse(src string) (Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): %w", src, err)
	}
	p := &parser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): %w", src, err)
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("Parse(%q): at %d: unexpected %q: %w", src, t.pos, t.text, ErrSyntax)
	}
	return n, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isOp(ops string) (byte, bool) {
	t := p.peek()
	if t.kind == tokOp && strings.Contains(ops, t.text) {
		return t.text[0], true
	}
	return 0, false
}

func (p *parser) expr() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOp("+-")
		if !ok {
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, L: left, R: right}
	}
}

func (p *parser) term() (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOp("*/")
		if !ok {
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, L: left, R: right}
	}
}

func (p *parser) unary() (Node, error) {
	if op, ok := p.isOp("+-"); ok {
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == '-' {
			return Neg{X: x}, nil
		}
		return x, nil
	}
	return p.power()
}

func (p *parser) power() (Node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if _, ok := p.isOp("^"); !ok {
		return base, nil
	}
	p.next()
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return Binary{Op: '^', L: base, R: exp}, nil
}

func (p *parser) primary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNum:
		return Num{V: t.num}, nil
	case tokLParen:
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, fmt.Errorf("at %d: expected ')': %w", c.pos, ErrSyntax)
		}
		return n, nil
	case tokName:
		return p.name(t)
	case tokEOF:
		return nil, fmt.Errorf("at %d: unexpected end of input: %w", t.pos, ErrSyntax)
	}
	return nil, fmt.Errorf("at %d: unexpected %q: %w", t.pos, t.text, ErrSyntax)
}

func (p *parser) name(t token) (Node, error) {
	name := strings.TrimPrefix(strings.TrimPrefix(t.text, "np."), "math.")
	if p.peek().kind == tokLParen {
		if _, ok := functions[name]; !ok {
			return nil, fmt.Errorf("at %d: function %q: %w", t.pos, t.text, ErrUnknownName)
		}
		p.next()
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, fmt.Errorf("at %d: expected ')' after %s argument: %w", c.pos, name, ErrSyntax)
		}
		return Call{Fn: name, Arg: arg}, nil
	}
	if name == "x" {
		return Var{}, nil
	}
	if v, ok := constants[name]; ok {
		return Num{V: v}, nil
	}
	return nil, fmt.Errorf("at %d: %q: %w", t.pos, t.text, ErrUnknownName)
}

// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"

	"github.com/katalvlaran/numlab/numerr"
)

// ErrNotDifferentiable indicates a node with no usable symbolic derivative
// (sign has derivative 0 almost everywhere but is not differentiable at 0,
// which is exactly where Newton's method would need it).
var ErrNotDifferentiable = numerr.New(numerr.Validation, "expr: expression is not differentiable")

// Diff returns d/dx of n.
//
// Rules: sum/difference, product, quotient, power (constant exponent,
// constant base, general u^v), and the chain rule for every function in the
// closed set except sign. abs differentiates to sign(u)·u'.
//
// The result is folded with the same constructors the rules use, so
// Diff(x^2) renders as (2 * x) rather than (2 * (x ^ 1)) * 1.
func Diff(n Node) (Node, error) {
	switch t := n.(type) {
	case Num:
		return Num{V: 0}, nil
	case Var:
		return Num{V: 1}, nil
	case Neg:
		d, err := Diff(t.X)
		if err != nil {
			return nil, err
		}
		return neg(d), nil
	case Binary:
		return diffBinary(t)
	case Call:
		return diffCall(t)
	}
	return nil, fmt.Errorf("Diff: %T: %w", n, ErrNotDifferentiable)
}

func diffBinary(b Binary) (Node, error) {
	dl, err := Diff(b.L)
	if err != nil {
		return nil, err
	}
	dr, err := Diff(b.R)
	if err != nil {
		return nil, err
	}
	switch b.Op {
	case '+':
		return add(dl, dr), nil
	case '-':
		return sub(dl, dr), nil
	case '*':
		return add(mul(dl, b.R), mul(b.L, dr)), nil
	case '/':
		return div(sub(mul(dl, b.R), mul(b.L, dr)), pow(b.R, Num{V: 2})), nil
	case '^':
		switch {
		case !hasVar(b.R):
			// n·u^(n−1)·u'
			return mul(mul(b.R, pow(b.L, sub(b.R, Num{V: 1}))), dl), nil
		case !hasVar(b.L):
			// ln(a)·a^v·v'
			return mul(mul(call("log", b.L), b), dr), nil
		default:
			// u^v·(v'·ln(u) + v·u'/u)
			return mul(b, add(mul(dr, call("log", b.L)), div(mul(b.R, dl), b.L))), nil
		}
	}
	return nil, fmt.Errorf("Diff: operator %q: %w", b.Op, ErrNotDifferentiable)
}

func diffCall(c Call) (Node, error) {
	du, err := Diff(c.Arg)
	if err != nil {
		return nil, err
	}
	u := c.Arg
	var outer Node
	switch c.Fn {
	case "sin":
		outer = call("cos", u)
	case "cos":
		outer = neg(call("sin", u))
	case "tan":
		outer = div(Num{V: 1}, pow(call("cos", u), Num{V: 2}))
	case "exp":
		outer = c
	case "log", "ln":
		outer = div(Num{V: 1}, u)
	case "sqrt":
		outer = div(Num{V: 1}, mul(Num{V: 2}, c))
	case "abs":
		outer = call("sign", u)
	default:
		return nil, fmt.Errorf("Diff: %s: %w", c.Fn, ErrNotDifferentiable)
	}
	return mul(outer, du), nil
}

// ---------- folding constructors ----------

func isNum(n Node, v float64) bool {
	k, ok := n.(Num)
	return ok && k.V == v
}

func add(a, b Node) Node {
	ka, aok := a.(Num)
	kb, bok := b.(Num)
	switch {
	case aok && bok:
		return Num{V: ka.V + kb.V}
	case isNum(a, 0):
		return b
	case isNum(b, 0):
		return a
	}
	return Binary{Op: '+', L: a, R: b}
}

func sub(a, b Node) Node {
	ka, aok := a.(Num)
	kb, bok := b.(Num)
	switch {
	case aok && bok:
		return Num{V: ka.V - kb.V}
	case isNum(b, 0):
		return a
	case isNum(a, 0):
		return neg(b)
	}
	return Binary{Op: '-', L: a, R: b}
}

func mul(a, b Node) Node {
	ka, aok := a.(Num)
	kb, bok := b.(Num)
	switch {
	case aok && bok:
		return Num{V: ka.V * kb.V}
	case isNum(a, 0) || isNum(b, 0):
		return Num{V: 0}
	case isNum(a, 1):
		return b
	case isNum(b, 1):
		return a
	}
	return Binary{Op: '*', L: a, R: b}
}

func div(a, b Node) Node {
	switch {
	case isNum(a, 0):
		return Num{V: 0}
	case isNum(b, 1):
		return a
	}
	return Binary{Op: '/', L: a, R: b}
}

func pow(a, b Node) Node {
	switch {
	case isNum(b, 0):
		return Num{V: 1}
	case isNum(b, 1):
		return a
	}
	return Binary{Op: '^', L: a, R: b}
}

func neg(a Node) Node {
	switch t := a.(type) {
	case Num:
		return Num{V: -t.V}
	case Neg:
		return t.X
	}
	return Neg{X: a}
}

func call(fn string, arg Node) Node { return Call{Fn: fn, Arg: arg} }

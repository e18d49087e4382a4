// SPDX-License-Identifier: MIT

package expr

import (
	"math"
	"strconv"
)

// Node is an immutable expression tree in the variable x.
type Node interface {
	// Eval returns the value at x. Domain violations yield NaN or ±Inf;
	// scalar.Func.Eval turns those into scalar.ErrDomain.
	Eval(x float64) float64
	// String renders the tree in parseable form.
	String() string
	node()
}

// Num is a numeric constant.
type Num struct{ V float64 }

// Var is the independent variable x.
type Var struct{}

// Neg is unary minus.
type Neg struct{ X Node }

// Binary is one of + - * / ^.
type Binary struct {
	Op   byte
	L, R Node
}

// Call applies a named function to one argument.
type Call struct {
	Fn  string
	Arg Node
}

func (Num) node()    {}
func (Var) node()    {}
func (Neg) node()    {}
func (Binary) node() {}
func (Call) node()   {}

func (n Num) Eval(float64) float64 { return n.V }
func (Var) Eval(x float64) float64 { return x }
func (n Neg) Eval(x float64) float64 {
	return -n.X.Eval(x)
}

func (b Binary) Eval(x float64) float64 {
	l, r := b.L.Eval(x), b.R.Eval(x)
	switch b.Op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	case '^':
		return math.Pow(l, r)
	}
	return math.NaN()
}

func (c Call) Eval(x float64) float64 {
	fn, ok := functions[c.Fn]
	if !ok {
		return math.NaN()
	}
	return fn(c.Arg.Eval(x))
}

func (n Num) String() string {
	if n.V < 0 {
		return "(" + strconv.FormatFloat(n.V, 'g', -1, 64) + ")"
	}
	return strconv.FormatFloat(n.V, 'g', -1, 64)
}

func (Var) String() string    { return "x" }
func (n Neg) String() string  { return "(-" + n.X.String() + ")" }
func (c Call) String() string { return c.Fn + "(" + c.Arg.String() + ")" }

func (b Binary) String() string {
	return "(" + b.L.String() + " " + string(b.Op) + " " + b.R.String() + ")"
}

// functions is the closed set of callable names.
var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"exp":  math.Exp,
	"log":  math.Log,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
	"sign": sign,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	case v == 0:
		return 0
	}
	return math.NaN()
}

// hasVar reports whether n depends on x.
func hasVar(n Node) bool {
	switch t := n.(type) {
	case Var:
		return true
	case Neg:
		return hasVar(t.X)
	case Binary:
		return hasVar(t.L) || hasVar(t.R)
	case Call:
		return hasVar(t.Arg)
	}
	return false
}

// Package expr parses small real-valued expressions of one variable and turns
// them into the callables consumed by numlab's solvers.
//
// Grammar (lowest to highest precedence):
//
//	expr    := term  { ("+" | "-") term }
//	term    := unary { ("*" | "/") unary }
//	unary   := ("-" | "+") unary | power
//	power   := primary [ ("^" | "**") unary ]      // right-associative
//	primary := number | "x" | "pi" | "e" | name "(" expr ")" | "(" expr ")"
//
// Functions: sin cos tan exp log ln sqrt abs sign. log is the natural log.
// A leading "np." or "math." on a name is accepted and ignored, so inputs
// written as "np.cos(x) - x" parse unchanged.
//
// Diff differentiates a tree by structural recursion (sum, product, quotient,
// power and chain rules) with light constant folding. Compile and
// CompileWithDerivative wrap every failure in scalar.ErrInvalidFunction, which
// is what roots.NewtonRaphson expects from its derivative provider.
//
//	pair, err := expr.CompileWithDerivative("x^2 - 2")
//	root, steps, err := roots.NewtonRaphson(pair, 1)
package expr

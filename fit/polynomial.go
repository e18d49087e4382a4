// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"strings"
)

// Polynomial holds coefficients in ascending power order:
// Coeffs[i] multiplies x^i.
type Polynomial struct {
	Coeffs []float64
}

// Degree returns len(Coeffs)−1, or −1 for the empty polynomial.
func (p Polynomial) Degree() int { return len(p.Coeffs) - 1 }

// Eval evaluates p at x by Horner's rule. The empty polynomial is 0.
func (p Polynomial) Eval(x float64) float64 {
	var v float64
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		v = v*x + p.Coeffs[i]
	}

	return v
}

// String renders p with 4 decimals in ascending order, terms joined by " + ":
//
//	1.0000 + 2.0000x + -0.5000x^2
//
// Negative coefficients keep their sign inside the term.
func (p Polynomial) String() string {
	if len(p.Coeffs) == 0 {
		return "0"
	}
	terms := make([]string, len(p.Coeffs))
	for i, c := range p.Coeffs {
		switch i {
		case 0:
			terms[i] = fmt.Sprintf("%.4f", c)
		case 1:
			terms[i] = fmt.Sprintf("%.4fx", c)
		default:
			terms[i] = fmt.Sprintf("%.4fx^%d", c, i)
		}
	}

	return strings.Join(terms, " + ")
}

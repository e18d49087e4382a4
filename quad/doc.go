// SPDX-License-Identifier: MIT

// Package quad implements composite Newton-Cotes quadrature over a uniform
// grid of n subintervals, h = (b − a)/n:
//
//	Trapezoid  h·(f(a)/2 + Σ_{i=1}^{n−1} f(x_i) + f(b)/2)        error O(h²)
//	Simpson13  h/3·(f(a) + 4Σ_odd f(x_i) + 2Σ_even f(x_i) + f(b))  error O(h⁴)
//
// Both make a single pass with n+1 evaluations; there is no adaptive
// refinement. b < a is allowed and flips the sign of the result.
//
// Errors: ErrBadSubintervals (n < 1), ErrOddSubintervals (Simpson13 with odd
// n), and evaluation failures of f (scalar.ErrDomain / ErrInvalidFunction)
// wrapped with the point.
package quad

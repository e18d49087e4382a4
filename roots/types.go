// SPDX-License-Identifier: MIT

package roots

// Bracket is an interval [A, B], A < B, over which f changes sign.
type Bracket struct {
	A, B float64
}

// Width returns B − A.
func (b Bracket) Width() float64 { return b.B - b.A }

// Record is one row of an iteration log.
//
// The set of implementations is closed (BracketStep, NewtonStep, SecantStep,
// FixedPointStep); Columns and Values always have equal length and the same
// order, so a presenter can tabulate any log without a type switch.
type Record interface {
	// Index is the 1-based iteration number.
	Index() int
	// Columns names the numeric fields in display order.
	Columns() []string
	// Values returns the numeric fields in Columns order.
	Values() []float64
	record()
}

// BracketStep is one bisection or false-position iteration.
type BracketStep struct {
	Iter  int     // 1-based iteration
	A, B  float64 // bracket before the update
	M     float64 // candidate point
	FM    float64 // f(M)
	Width float64 // |B − A| before the update
}

// NewtonStep is one Newton-Raphson iteration.
type NewtonStep struct {
	Iter  int
	X     float64 // x_i
	FX    float64 // f(x_i)
	DFX   float64 // f'(x_i)
	Next  float64 // x_{i+1}
	Delta float64 // |x_{i+1} − x_i|
}

// SecantStep is one secant iteration.
type SecantStep struct {
	Iter  int
	Prev  float64 // x_{i−1}
	X     float64 // x_i
	FX    float64 // f(x_i)
	Next  float64 // x_{i+1}
	Delta float64 // |x_{i+1} − x_i|
}

// FixedPointStep is one fixed-point iteration. Next always equals GX; both
// are kept so the table reads like the textbook one.
type FixedPointStep struct {
	Iter  int
	X     float64 // x_i
	GX    float64 // g(x_i)
	Next  float64 // x_{i+1}
	Delta float64 // |x_{i+1} − x_i|
}

var (
	bracketColumns    = []string{"a", "b", "m", "f(m)", "|b-a|"}
	newtonColumns     = []string{"x_i", "f(x_i)", "f'(x_i)", "x_i+1", "|x_i+1 - x_i|"}
	secantColumns     = []string{"x_i-1", "x_i", "f(x_i)", "x_i+1", "|x_i+1 - x_i|"}
	fixedPointColumns = []string{"x_i", "g(x_i)", "x_i+1", "|x_i+1 - x_i|"}
)

func (s BracketStep) Index() int        { return s.Iter }
func (s BracketStep) Columns() []string { return append([]string(nil), bracketColumns...) }
func (s BracketStep) Values() []float64 { return []float64{s.A, s.B, s.M, s.FM, s.Width} }
func (BracketStep) record()             {}

func (s NewtonStep) Index() int        { return s.Iter }
func (s NewtonStep) Columns() []string { return append([]string(nil), newtonColumns...) }
func (s NewtonStep) Values() []float64 { return []float64{s.X, s.FX, s.DFX, s.Next, s.Delta} }
func (NewtonStep) record()             {}

func (s SecantStep) Index() int        { return s.Iter }
func (s SecantStep) Columns() []string { return append([]string(nil), secantColumns...) }
func (s SecantStep) Values() []float64 { return []float64{s.Prev, s.X, s.FX, s.Next, s.Delta} }
func (SecantStep) record()             {}

func (s FixedPointStep) Index() int        { return s.Iter }
func (s FixedPointStep) Columns() []string { return append([]string(nil), fixedPointColumns...) }
func (s FixedPointStep) Values() []float64 { return []float64{s.X, s.GX, s.Next, s.Delta} }
func (FixedPointStep) record()             {}

// Records converts a typed log into []Record for presentation.
func Records[S Record](steps []S) []Record {
	out := make([]Record, len(steps))
	for i, s := range steps {
		out[i] = s
	}
	return out
}

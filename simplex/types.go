// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors returned by the simplex package.
var (
	// ErrUnbounded indicates that a column with negative reduced cost has no
	// positive entry in any constraint row: the objective grows without limit.
	ErrUnbounded = errors.New("simplex: problem is unbounded")

	// ErrDidNotConverge indicates that the iteration cap was reached before the
	// objective row became non-negative (typically cycling on degenerate pivots).
	ErrDidNotConverge = errors.New("simplex: iteration limit reached")

	// ErrNilTableau indicates that a nil *Tableau was passed to Solve.
	ErrNilTableau = errors.New("simplex: tableau is nil")

	// ErrDimensionMismatch indicates inconsistent coefficient, bound or
	// objective lengths when building a standard-form tableau.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

	// ErrNegativeRHS indicates a negative right-hand side: the all-slack start
	// would not be a basic feasible solution.
	ErrNegativeRHS = errors.New("simplex: right-hand side must be non-negative")

	// ErrOutOfRange indicates a row or column index outside the tableau.
	ErrOutOfRange = errors.New("simplex: index out of range")

	// ErrUnknownPivotRule indicates a pivot rule name ParsePivotRule does not know.
	ErrUnknownPivotRule = errors.New("simplex: unknown pivot rule")
)

// Panic messages used by option constructors on nonsensical arguments.
const (
	panicEpsilonInvalid = "simplex: epsilon must be finite and >= 0"
	panicMaxIterInvalid = "simplex: max iterations must be > 0"
)

const (
	// DefaultEpsilon is the tolerance under which objective-row entries are
	// treated as zero and pivot-column entries as non-positive.
	DefaultEpsilon = 1e-9

	// DefaultBasisTolerance is the tolerance Tableau.BasicRow callers use when
	// deciding whether a column is a unit vector.
	DefaultBasisTolerance = 1e-6

	// iterationFactor scales (rows + cols) into the default iteration cap.
	iterationFactor = 10
)

// PivotRule selects the entering variable.
type PivotRule int

const (
	// PivotDantzig picks the most negative objective-row entry; the lowest
	// column index wins on ties.
	PivotDantzig PivotRule = iota

	// PivotBland picks the lowest column index with a negative objective-row
	// entry. Combined with the lowest-row ratio tie-break it cannot cycle.
	PivotBland
)

// String returns the lower-case rule name.
func (r PivotRule) String() string {
	switch r {
	case PivotDantzig:
		return "dantzig"
	case PivotBland:
		return "bland"
	default:
		return "unknown"
	}
}

// ParsePivotRule maps "dantzig" or "bland" to a PivotRule.
func ParsePivotRule(s string) (PivotRule, error) {
	switch s {
	case "dantzig", "":
		return PivotDantzig, nil
	case "bland":
		return PivotBland, nil
	default:
		return PivotDantzig, fmt.Errorf("%w: %q", ErrUnknownPivotRule, s)
	}
}

// PivotEvent describes one completed pivot. It is delivered to the OnPivot hook.
type PivotEvent struct {
	Iteration int      // 1-based pivot counter
	Entering  int      // entering column
	Leaving   int      // pivot row
	Objective float64  // objective value after the pivot
	Tableau   *Tableau // snapshot after the pivot; owned by the hook
}

// Options configures Solve.
//
// Epsilon       – zero tolerance for pivot decisions (default 1e-9).
// MaxIterations – pivot cap; 0 means 10*(rows+cols).
// Rule          – entering-variable rule (default PivotDantzig).
// OnPivot       – optional hook called after each pivot.
// Logger        – structured logger; discards by default.
type Options struct {
	Epsilon       float64
	MaxIterations int
	Rule          PivotRule
	OnPivot       func(PivotEvent)
	Logger        *slog.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the options Solve starts from before applying
// user overrides.
//
// Defaults:
//   - Epsilon:       DefaultEpsilon.
//   - MaxIterations: 0 (derived from tableau shape).
//   - Rule:          PivotDantzig.
//   - OnPivot:       nil.
//   - Logger:        text handler writing to io.Discard.
func DefaultOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		Rule:    PivotDantzig,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithEpsilon sets the pivot tolerance. Panics when eps is negative or not finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations caps the number of pivots. Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithPivotRule selects the entering-variable rule.
func WithPivotRule(rule PivotRule) Option {
	return func(o *Options) { o.Rule = rule }
}

// WithOnPivot registers a hook invoked after every pivot with a tableau snapshot.
func WithOnPivot(fn func(PivotEvent)) Option {
	return func(o *Options) { o.OnPivot = fn }
}

// WithLogger routes pivot traces (Debug) and the termination summary (Info)
// to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Solution is the outcome of a successful Solve.
type Solution struct {
	// Values holds one entry per decision column, in column order.
	Values []float64

	// Objective is the optimal objective value (RHS of the objective row).
	Objective float64

	// Tableau is the final tableau. It belongs to this Solution alone and
	// must be treated as read-only.
	Tableau *Tableau

	// Iterations is the number of pivots performed.
	Iterations int
}

// Value returns the value of decision column j, or 0 when j is out of range.
func (s Solution) Value(j int) float64 {
	if j < 0 || j >= len(s.Values) {
		return 0
	}

	return s.Values[j]
}

// ReducedCost returns the objective-row coefficient of column j in the final
// tableau, or 0 when j is out of range or no tableau is attached.
func (s Solution) ReducedCost(j int) float64 {
	if s.Tableau == nil {
		return 0
	}
	v, err := s.Tableau.ReducedCost(j)
	if err != nil {
		return 0
	}

	return v
}

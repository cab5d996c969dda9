package analysis

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/toy-cell/pkg/params"
)

// Sweep evaluates one function parameter over a linear grid of one of its
// inputs, holding the others fixed. Results are stored under "X" and "Y".
type Sweep struct {
	BaseAnalysis
	key      string             // Parameter to evaluate
	variable string             // Swept input, e.g. "sto" or "T"
	start    float64            // First grid value
	stop     float64            // Last grid value
	points   int                // Number of grid values
	fixed    map[string]float64 // Values of the other inputs
	grid     []float64
	args     []float64
	index    int // Position of variable in args
}

func NewSweep(key, variable string, start, stop float64, points int, fixed map[string]float64) *Sweep {
	return &Sweep{
		BaseAnalysis: *NewBaseAnalysis(),
		key:          key,
		variable:     variable,
		start:        start,
		stop:         stop,
		points:       points,
		fixed:        fixed,
	}
}

func (s *Sweep) Setup(v *params.Values) error {
	s.Values = v

	if _, ok := v.Get(s.key); !ok {
		return fmt.Errorf("sweep %s: %q: %w", v.Name(), s.key, params.ErrNotFound)
	}

	names := v.KindOf(s.key).Args()
	s.index = slices.Index(names, s.variable)
	if s.index < 0 {
		return fmt.Errorf("sweep %q: no input %q (inputs: %v)", s.key, s.variable, names)
	}

	args, err := s.resolveInputs(s.key, s.fixed, s.variable)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	s.args = args

	switch {
	case s.points < 1:
		return fmt.Errorf("sweep %q: points must be positive, got %d", s.key, s.points)
	case s.points == 1:
		s.grid = []float64{s.start}
	default:
		s.grid = floats.Span(make([]float64, s.points), s.start, s.stop)
	}

	return nil
}

func (s *Sweep) Execute() error {
	if s.Values == nil {
		return fmt.Errorf("parameter set not set")
	}

	for _, x := range s.grid {
		s.args[s.index] = x
		y, err := s.Values.Evaluate(s.key, s.args...)
		if err != nil {
			return fmt.Errorf("evaluating %q at %s=%g: %w", s.key, s.variable, x, err)
		}
		s.StoreResult(x, map[string]float64{"Y": y})
	}

	return nil
}

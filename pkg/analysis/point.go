package analysis

import (
	"fmt"

	"github.com/edp1096/toy-cell/pkg/params"
)

// OperatingPoint evaluates every numeric parameter of a set at one state.
// Scalars are stored as they are; functions are called with the inputs they
// need. Functions whose inputs are not given are skipped and listed by Skipped.
type OperatingPoint struct {
	BaseAnalysis
	inputs  map[string]float64
	skipped []string
}

func NewOperatingPoint(inputs map[string]float64) *OperatingPoint {
	return &OperatingPoint{
		BaseAnalysis: *NewBaseAnalysis(),
		inputs:       inputs,
	}
}

func (op *OperatingPoint) Setup(v *params.Values) error {
	op.Values = v
	return nil
}

func (op *OperatingPoint) Execute() error {
	if op.Values == nil {
		return fmt.Errorf("parameter set not set")
	}

	solution := make(map[string]float64)
	for _, key := range op.Values.Keys() {
		kind := op.Values.KindOf(key)
		switch {
		case kind == params.KindScalar:
			solution[key] = op.Values.Float(key)
		case kind.IsFunction():
			args, err := op.resolveInputs(key, op.inputs, "")
			if err != nil {
				op.skipped = append(op.skipped, key)
				continue
			}
			y, err := op.Values.Evaluate(key, args...)
			if err != nil {
				return fmt.Errorf("operating point: %w", err)
			}
			solution[key] = y
		}
	}

	op.StoreResult(0, solution)
	return nil
}

// Skipped returns the function parameters that lacked inputs, in key order.
func (op *OperatingPoint) Skipped() []string {
	return op.skipped
}

package analysis

import (
	"fmt"

	"github.com/edp1096/toy-cell/pkg/params"
)

type Analysis interface {
	Setup(v *params.Values) error
	Execute() error
	GetResults() map[string][]float64
}

// Inputs fall back to these set parameters when not given explicitly.
var defaultInputs = map[string]string{
	"T":  "Reference temperature [K]",
	"ce": "Initial concentration in electrolyte [mol.m-3]",
}

type BaseAnalysis struct {
	Values  *params.Values
	results map[string][]float64 // key: parameter or input name, value: result per point
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

// resolveInputs returns the argument vector of a function parameter. The
// argument named skip is left at zero for the caller to fill.
func (a *BaseAnalysis) resolveInputs(key string, inputs map[string]float64, skip string) ([]float64, error) {
	kind := a.Values.KindOf(key)
	if !kind.IsFunction() {
		return nil, fmt.Errorf("%q is %s, not a function", key, kind)
	}

	names := kind.Args()
	args := make([]float64, len(names))
	for i, name := range names {
		if name == skip {
			continue
		}
		if x, ok := inputs[name]; ok {
			args[i] = x
			continue
		}
		if dflt, ok := defaultInputs[name]; ok {
			if x, err := a.Values.Scalar(dflt); err == nil {
				args[i] = x
				continue
			}
		}
		return nil, fmt.Errorf("%q needs input %s", key, name)
	}
	return args, nil
}

func (a *BaseAnalysis) StoreResult(x float64, solution map[string]float64) {
	if _, exists := a.results["X"]; !exists {
		a.results["X"] = make([]float64, 0)
	}
	a.results["X"] = append(a.results["X"], x)

	for name, value := range solution {
		if _, exists := a.results[name]; !exists {
			a.results[name] = make([]float64, 0)
		}
		a.results[name] = append(a.results[name], value)
	}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

// Package params assembles named parameter sets for lithium-ion cell models.
//
// A set maps parameter names, most of them carrying a bracketed SI unit, to a
// scalar, a text value, the citation list or a correlation function of one of
// the calling conventions below. Functions that depend on other parameters of
// the set (a rate constant, an initial thickness, the electrolyte
// conductivity) look them up from the owning Values each time they are
// evaluated, so Update is seen by every dependent function.
package params

import (
	"errors"
	"fmt"
	"math"
	"path"
	"reflect"
	"runtime"
	"sort"
	"strings"

	"github.com/edp1096/toy-cell/pkg/correlation"
)

// Calling conventions of the function-valued parameters.
type (
	DiffusivityFunc     = correlation.DiffusivityFunc
	ExchangeCurrentFunc = correlation.ExchangeCurrentFunc
	StoichiometryFunc   = correlation.StoichiometryFunc
	ElectrolyteFunc     = correlation.ElectrolyteFunc
	PlatingFunc         = correlation.PlatingFunc
	TemperatureFunc     = correlation.TemperatureFunc
	ThicknessFunc       = correlation.ThicknessFunc
)

const (
	KeyChemistry = "chemistry"
	KeyCitations = "citations"
)

var (
	ErrNotFound  = errors.New("parameter not found")
	ErrWrongKind = errors.New("parameter has the wrong kind")
	ErrArity     = errors.New("wrong number of arguments")
)

type Kind int

const (
	KindUnknown Kind = iota
	KindScalar
	KindText
	KindCitations
	KindDiffusivity
	KindExchangeCurrent
	KindStoichiometry
	KindElectrolyte
	KindPlating
	KindTemperature
	KindThickness
)

var kindInfo = map[Kind]struct {
	name string
	args []string
}{
	KindScalar:          {name: "scalar"},
	KindText:            {name: "text"},
	KindCitations:       {name: "citations"},
	KindDiffusivity:     {name: "diffusivity", args: []string{"sto", "T"}},
	KindExchangeCurrent: {name: "exchange-current", args: []string{"ce", "cs", "csmax", "T"}},
	KindStoichiometry:   {name: "stoichiometry", args: []string{"sto"}},
	KindElectrolyte:     {name: "electrolyte", args: []string{"ce", "T"}},
	KindPlating:         {name: "plating", args: []string{"ce", "cli", "T"}},
	KindTemperature:     {name: "temperature", args: []string{"T"}},
	KindThickness:       {name: "thickness", args: []string{"lsei"}},
}

func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return "unknown"
}

// Args returns the positional argument names of a function kind, in call order.
func (k Kind) Args() []string {
	return append([]string(nil), kindInfo[k].args...)
}

// IsFunction reports whether parameters of this kind are evaluated with arguments.
func (k Kind) IsFunction() bool {
	return k >= KindDiffusivity
}

type entry struct {
	kind  Kind
	value any
	// bind is set for functions that read other parameters of the set.
	bind func(v *Values) any
	// fn names the correlation behind a function-valued entry.
	fn string
}

// Values is one parameter set. Concurrent reads are safe; Update is not.
type Values struct {
	name    string
	entries map[string]entry
}

// binder is a function-valued parameter resolved against its owning set.
type binder struct {
	kind Kind
	fn   string
	bind func(v *Values) any
}

func newValues(name string, raw map[string]any) *Values {
	v := &Values{name: name, entries: make(map[string]entry, len(raw))}
	for key, value := range raw {
		e, err := toEntry(value, KindUnknown)
		if err != nil {
			panic(fmt.Sprintf("parameter set %s: %q: %v", name, key, err))
		}
		v.entries[key] = e
	}
	return v
}

// toEntry normalizes a parameter value. hint resolves untyped function
// signatures shared by several kinds.
func toEntry(value any, hint Kind) (entry, error) {
	switch x := value.(type) {
	case binder:
		return entry{kind: x.kind, bind: x.bind, fn: x.fn}, nil
	case float64:
		return entry{kind: KindScalar, value: x}, nil
	case int:
		return entry{kind: KindScalar, value: float64(x)}, nil
	case string:
		return entry{kind: KindText, value: x}, nil
	case []string:
		return entry{kind: KindCitations, value: append([]string(nil), x...)}, nil
	case DiffusivityFunc:
		return funcEntry(KindDiffusivity, x), nil
	case ExchangeCurrentFunc:
		return funcEntry(KindExchangeCurrent, x), nil
	case StoichiometryFunc:
		return funcEntry(KindStoichiometry, x), nil
	case ElectrolyteFunc:
		return funcEntry(KindElectrolyte, x), nil
	case PlatingFunc:
		return funcEntry(KindPlating, x), nil
	case TemperatureFunc:
		return funcEntry(KindTemperature, x), nil
	case ThicknessFunc:
		return funcEntry(KindThickness, x), nil
	case func(float64) float64:
		switch hint {
		case KindTemperature:
			return funcEntry(hint, TemperatureFunc(x)), nil
		case KindThickness:
			return funcEntry(hint, ThicknessFunc(x)), nil
		}
		return funcEntry(KindStoichiometry, StoichiometryFunc(x)), nil
	case func(float64, float64) float64:
		if hint == KindElectrolyte {
			return funcEntry(hint, ElectrolyteFunc(x)), nil
		}
		if hint == KindDiffusivity {
			return funcEntry(hint, DiffusivityFunc(x)), nil
		}
		return entry{}, fmt.Errorf("%w: ambiguous func(float64, float64) float64", ErrWrongKind)
	case func(float64, float64, float64) float64:
		return funcEntry(KindPlating, PlatingFunc(x)), nil
	case func(float64, float64, float64, float64) float64:
		return funcEntry(KindExchangeCurrent, ExchangeCurrentFunc(x)), nil
	}
	return entry{}, fmt.Errorf("%w: unsupported type %T", ErrWrongKind, value)
}

func funcEntry(kind Kind, fn any) entry {
	return entry{kind: kind, value: fn, fn: funcName(fn)}
}

// funcName returns the package-qualified name of fn, e.g. "correlation.NCOOCPEcker2015".
func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return ""
	}
	return path.Base(f.Name())
}

// Name returns the name of the set, e.g. "OKane2022".
func (v *Values) Name() string { return v.name }

func (v *Values) Len() int { return len(v.entries) }

// Keys returns every parameter name in sorted order.
func (v *Values) Keys() []string {
	keys := make([]string, 0, len(v.entries))
	for k := range v.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value stored under key. Function values are returned as
// their named calling-convention type.
func (v *Values) Get(key string) (any, bool) {
	e, ok := v.entries[key]
	if !ok {
		return nil, false
	}
	if e.bind != nil {
		return e.bind(v), true
	}
	return e.value, true
}

// KindOf returns the kind of the parameter, or KindUnknown if it is missing.
func (v *Values) KindOf(key string) Kind {
	return v.entries[key].kind
}

// FuncName returns the correlation name behind a function-valued parameter.
func (v *Values) FuncName(key string) string {
	return v.entries[key].fn
}

// Scalar returns a numeric parameter.
func (v *Values) Scalar(key string) (float64, error) {
	e, ok := v.entries[key]
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", v.name, key, ErrNotFound)
	}
	if e.kind != KindScalar {
		return 0, fmt.Errorf("%s: %q is %s: %w", v.name, key, e.kind, ErrWrongKind)
	}
	return e.value.(float64), nil
}

// Float is Scalar with NaN in place of an error.
func (v *Values) Float(key string) float64 {
	x, err := v.Scalar(key)
	if err != nil {
		return math.NaN()
	}
	return x
}

// Text returns a text parameter such as the chemistry.
func (v *Values) Text(key string) (string, error) {
	e, ok := v.entries[key]
	if !ok {
		return "", fmt.Errorf("%s: %q: %w", v.name, key, ErrNotFound)
	}
	if e.kind != KindText {
		return "", fmt.Errorf("%s: %q is %s: %w", v.name, key, e.kind, ErrWrongKind)
	}
	return e.value.(string), nil
}

// Citations returns a copy of the ordered citation keys.
func (v *Values) Citations() []string {
	e, ok := v.entries[KeyCitations]
	if !ok || e.kind != KindCitations {
		return nil
	}
	return append([]string(nil), e.value.([]string)...)
}

// lookup fetches a parameter for a typed accessor. A scalar is returned as
// is so the accessor can wrap it in a constant function.
func (v *Values) lookup(key string, want Kind) (any, error) {
	e, ok := v.entries[key]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", v.name, key, ErrNotFound)
	}
	if e.kind != want && e.kind != KindScalar {
		return nil, fmt.Errorf("%s: %q is %s, not %s: %w", v.name, key, e.kind, want, ErrWrongKind)
	}
	value, _ := v.Get(key)
	return value, nil
}

func (v *Values) Diffusivity(key string) (DiffusivityFunc, error) {
	value, err := v.lookup(key, KindDiffusivity)
	if err != nil {
		return nil, err
	}
	if c, ok := value.(float64); ok {
		return func(float64, float64) float64 { return c }, nil
	}
	return value.(DiffusivityFunc), nil
}

func (v *Values) ExchangeCurrent(key string) (ExchangeCurrentFunc, error) {
	value, err := v.lookup(key, KindExchangeCurrent)
	if err != nil {
		return nil, err
	}
	if c, ok := value.(float64); ok {
		return func(float64, float64, float64, float64) float64 { return c }, nil
	}
	return value.(ExchangeCurrentFunc), nil
}

func (v *Values) Stoichiometry(key string) (StoichiometryFunc, error) {
	value, err := v.lookup(key, KindStoichiometry)
	if err != nil {
		return nil, err
	}
	if c, ok := value.(float64); ok {
		return func(float64) float64 { return c }, nil
	}
	return value.(StoichiometryFunc), nil
}

func (v *Values) Electrolyte(key string) (ElectrolyteFunc, error) {
	value, err := v.lookup(key, KindElectrolyte)
	if err != nil {
		return nil, err
	}
	if c, ok := value.(float64); ok {
		return func(float64, float64) float64 { return c }, nil
	}
	return value.(ElectrolyteFunc), nil
}

func (v *Values) Plating(key string) (PlatingFunc, error) {
	value, err := v.lookup(key, KindPlating)
	if err != nil {
		return nil, err
	}
	if c, ok := value.(float64); ok {
		return func(float64, float64, float64) float64 { return c }, nil
	}
	return value.(PlatingFunc), nil
}

func (v *Values) Temperature(key string) (TemperatureFunc, error) {
	value, err := v.lookup(key, KindTemperature)
	if err != nil {
		return nil, err
	}
	if c, ok := value.(float64); ok {
		return func(float64) float64 { return c }, nil
	}
	return value.(TemperatureFunc), nil
}

func (v *Values) Thickness(key string) (ThicknessFunc, error) {
	value, err := v.lookup(key, KindThickness)
	if err != nil {
		return nil, err
	}
	if c, ok := value.(float64); ok {
		return func(float64) float64 { return c }, nil
	}
	return value.(ThicknessFunc), nil
}

// Evaluate calls a function-valued parameter with positional arguments in the
// order given by KindOf(key).Args(). A scalar evaluates to itself and takes
// no arguments.
func (v *Values) Evaluate(key string, args ...float64) (float64, error) {
	e, ok := v.entries[key]
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", v.name, key, ErrNotFound)
	}
	if want := len(kindInfo[e.kind].args); e.kind.IsFunction() && len(args) != want {
		return 0, fmt.Errorf("%s: %q takes %d arguments (%s), got %d: %w",
			v.name, key, want, strings.Join(e.kind.Args(), ", "), len(args), ErrArity)
	}

	value, _ := v.Get(key)
	switch f := value.(type) {
	case float64:
		if len(args) != 0 {
			return 0, fmt.Errorf("%s: %q is a scalar, got %d arguments: %w", v.name, key, len(args), ErrArity)
		}
		return f, nil
	case DiffusivityFunc:
		return f(args[0], args[1]), nil
	case ExchangeCurrentFunc:
		return f(args[0], args[1], args[2], args[3]), nil
	case StoichiometryFunc:
		return f(args[0]), nil
	case ElectrolyteFunc:
		return f(args[0], args[1]), nil
	case PlatingFunc:
		return f(args[0], args[1], args[2]), nil
	case TemperatureFunc:
		return f(args[0]), nil
	case ThicknessFunc:
		return f(args[0]), nil
	}
	return 0, fmt.Errorf("%s: %q is %s: %w", v.name, key, e.kind, ErrWrongKind)
}

// Update sets or replaces parameters. With checkAlreadyExists, every key must
// already be present. Nothing is changed if any value is rejected.
func (v *Values) Update(values map[string]any, checkAlreadyExists bool) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	staged := make(map[string]entry, len(values))
	for _, key := range keys {
		prev, exists := v.entries[key]
		if checkAlreadyExists && !exists {
			return fmt.Errorf("cannot update %s: %q: %w", v.name, key, ErrNotFound)
		}
		e, err := toEntry(values[key], prev.kind)
		if err != nil {
			return fmt.Errorf("cannot update %s: %q: %w", v.name, key, err)
		}
		staged[key] = e
	}

	for key, e := range staged {
		v.entries[key] = e
	}
	return nil
}

// Search returns the sorted keys containing substr, ignoring case.
func (v *Values) Search(substr string) []string {
	needle := strings.ToLower(substr)
	var found []string
	for _, k := range v.Keys() {
		if strings.Contains(strings.ToLower(k), needle) {
			found = append(found, k)
		}
	}
	return found
}

// Copy returns an independent set. Functions bound to other parameters
// resolve them from the copy.
func (v *Values) Copy() *Values {
	c := &Values{name: v.name, entries: make(map[string]entry, len(v.entries))}
	for k, e := range v.entries {
		if e.kind == KindCitations {
			e.value = append([]string(nil), e.value.([]string)...)
		}
		c.entries[k] = e
	}
	return c
}

// Export returns a snapshot suitable for YAML or JSON encoding. Functions
// are replaced by the name of their correlation.
func (v *Values) Export() map[string]any {
	out := make(map[string]any, len(v.entries))
	for k, e := range v.entries {
		switch e.kind {
		case KindScalar, KindText:
			out[k] = e.value
		case KindCitations:
			out[k] = append([]string(nil), e.value.([]string)...)
		default:
			out[k] = e.fn
		}
	}
	return out
}

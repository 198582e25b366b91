package study

import (
	"fmt"
	"sort"

	"github.com/san-kum/dualgrad/internal/diff"
	"github.com/san-kum/dualgrad/internal/root"
	"github.com/san-kum/dualgrad/internal/scalar"
)

// Method computes (value, derivative) of the degree-th root at x.
type Method func(x float64, degree, steps int) (diff.Result, error)

// finiteDiffStep balances truncation against cancellation for the
// central-difference column.
const finiteDiffStep = 1e-6

// Registry maps method and precision names to implementations.
type Registry struct {
	methods    map[string]Method
	precisions map[string]uint
}

func NewRegistry() *Registry {
	r := &Registry{
		methods:    make(map[string]Method),
		precisions: make(map[string]uint),
	}

	r.methods["dual"] = diff.NthRootAt
	r.methods["shadow"] = func(x float64, degree, steps int) (diff.Result, error) {
		if err := root.Validate(x, degree, steps); err != nil {
			return diff.Result{}, err
		}
		return diff.ShadowNthRoot(x, degree, steps), nil
	}
	r.methods["finite"] = func(x float64, degree, steps int) (diff.Result, error) {
		if err := root.Validate(x, degree, steps); err != nil {
			return diff.Result{}, err
		}
		value := root.NthRoot(scalar.Float64(x), degree, steps).Float64()
		deriv := diff.FiniteDifference(func(v float64) float64 {
			return root.NthRoot(scalar.Float64(v), degree, steps).Float64()
		}, x, finiteDiffStep)
		return diff.Result{Value: value, Derivative: deriv}, nil
	}

	r.precisions["single"] = 24
	r.precisions["double"] = 53
	r.precisions["quad"] = 113
	r.precisions["big256"] = 256
	r.precisions["big512"] = 512

	return r
}

func (r *Registry) GetMethod(name string) (Method, error) {
	m, ok := r.methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s", name)
	}
	return m, nil
}

func (r *Registry) MethodNames() []string {
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) GetPrecision(name string) (uint, error) {
	b, ok := r.precisions[name]
	if !ok {
		return 0, fmt.Errorf("unknown precision: %s", name)
	}
	return b, nil
}

func (r *Registry) PrecisionNames() []string {
	names := make([]string, 0, len(r.precisions))
	for name := range r.precisions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package study

import (
	"fmt"
	"time"

	"github.com/san-kum/dualgrad/internal/analysis"
	"github.com/san-kum/dualgrad/internal/diff"
	"github.com/san-kum/dualgrad/internal/root"
)

// Config describes one differentiation run.
type Config struct {
	X       float64
	Degree  int
	Steps   int
	Methods []string
}

// Result of a run: one (value, derivative) pair per method plus the
// per-step convergence trace from the dual iteration.
type Result struct {
	X       float64
	Degree  int
	Steps   int
	Methods map[string]diff.Result
	Trace   []analysis.ConvergencePoint
	Elapsed time.Duration
}

// Run executes every requested method against the same input and
// collects the dual-iteration trace.
func Run(reg *Registry, cfg Config) (*Result, error) {
	if cfg.Degree == 0 {
		cfg.Degree = root.DefaultDegree
	}
	if cfg.Steps == 0 {
		cfg.Steps = root.DefaultSteps
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = reg.MethodNames()
	}
	if err := root.Validate(cfg.X, cfg.Degree, cfg.Steps); err != nil {
		return nil, err
	}

	start := time.Now()
	result := &Result{
		X:       cfg.X,
		Degree:  cfg.Degree,
		Steps:   cfg.Steps,
		Methods: make(map[string]diff.Result, len(cfg.Methods)),
	}

	for _, name := range cfg.Methods {
		m, err := reg.GetMethod(name)
		if err != nil {
			return nil, err
		}
		res, err := m(cfg.X, cfg.Degree, cfg.Steps)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", name, err)
		}
		result.Methods[name] = res
	}

	trace, err := analysis.Convergence(cfg.X, cfg.Degree, cfg.Steps)
	if err != nil {
		return nil, err
	}
	result.Trace = trace
	result.Elapsed = time.Since(start)

	return result, nil
}

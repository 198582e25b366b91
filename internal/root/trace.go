package root

// Trace collects every intermediate estimate produced by an iteration.
type Trace[T any] struct {
	Estimates []T
}

// Observer returns a hook that appends each new estimate to the trace.
func (tr *Trace[T]) Observer() Observer[T] {
	return func(_ int, estimate T) {
		tr.Estimates = append(tr.Estimates, estimate)
	}
}

// Len returns the number of recorded steps.
func (tr *Trace[T]) Len() int { return len(tr.Estimates) }

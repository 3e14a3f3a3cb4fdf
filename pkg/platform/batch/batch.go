// Package batch holds per-item outcomes for background scans. A scan folds over
// its items and records one Result each, so one failing item never aborts the
// others.
package batch

// Result is the outcome of processing a single item.
type Result[T any] struct {
	Value T
	Err   error
}

// OK wraps a successful value.
func OK[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail records a failure for the given item.
func Fail[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

func (r Result[T]) Succeeded() bool {
	return r.Err == nil
}

// Count returns the number of successful and failed results.
func Count[T any](results []Result[T]) (ok, failed int) {
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		ok++
	}
	return ok, failed
}

package analytics

import "errors"

// Status tells the presentation layer how to read a Result.
type Status string

const (
	StatusOK     Status = "ok"
	StatusNoData Status = "no_data"
	StatusError  Status = "error"
)

// Result carries a computed value together with whether it is meaningful.
// A no_data result still holds a defined fallback Value (zero, or a sentinel
// such as NoneLabel) so callers never have to special-case a missing field.
type Result[T any] struct {
	Status Status `json:"status"`
	Value  T      `json:"value"`
	Error  string `json:"error,omitempty"`
}

// OK wraps a valid value.
func OK[T any](v T) Result[T] {
	return Result[T]{Status: StatusOK, Value: v}
}

// NoData marks an empty input; fallback is what Value holds.
func NoData[T any](fallback T) Result[T] {
	return Result[T]{Status: StatusNoData, Value: fallback}
}

// Failed marks a computation that could not produce a value.
func Failed[T any](err error) Result[T] {
	r := Result[T]{Status: StatusError}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Valid reports whether the result carries a real value.
func (r Result[T]) Valid() bool {
	return r.Status == StatusOK
}

// Err rebuilds the error of a failed result, nil otherwise.
func (r Result[T]) Err() error {
	if r.Status != StatusError {
		return nil
	}
	return errors.New(r.Error)
}

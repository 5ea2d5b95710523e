package binder

// Binder parses a single raw string into a typed value or fails with a
// descriptive error. Implementations are supplied per target type; the
// routing core depends only on this contract.
type Binder[T any] func(raw string) (T, error)

// ValuesBinder parses the raw value sequence of a query parameter into a
// typed value or fails with a descriptive error. Query parameters may
// repeat, so the contract receives every occurrence.
type ValuesBinder[T any] func(raw []string) (T, error)

// BoundParam is the result of resolving one named parameter in one
// namespace: either a value of type T or an error. The name is carried for
// diagnostics.
type BoundParam[T any] struct {
	Name  string
	Value T
	Err   error
}

// Ok returns a successfully bound parameter.
func Ok[T any](name string, value T) BoundParam[T] {
	return BoundParam[T]{Name: name, Value: value}
}

// Fail returns a failed binding carrying err.
func Fail[T any](name string, err error) BoundParam[T] {
	return BoundParam[T]{Name: name, Err: err}
}

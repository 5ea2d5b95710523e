// Package binder converts the raw string values a matched route extracts
// into typed parameters, via a pluggable per-type contract.
//
// # Contract
//
// A Binder[T] parses one string; a ValuesBinder[T] parses the repeated
// values of a query key. Both either produce a value or fail with a
// descriptive error, which the namespace entry points pass through
// unchanged:
//
//	id := binder.FromPath(params, "id", binder.Int)
//	page := binder.FromQueryOr(params, "page", 1, binder.First(binder.Int))
//
// An absent parameter with no default fails with an error identifying the
// namespace and name ("missing path parameter: id", ErrMissingParam via
// errors.Is). A supplied default covers only absence: a present value that
// fails to parse reports the binder's error, never the default.
//
// The results feed the dispatch package, which short-circuits on the first
// failed parameter.
package binder

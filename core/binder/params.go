package binder

import "github.com/dmitrymomot/junction/core/route"

// FromPath resolves a path parameter. A present value goes through bind
// unchanged; an absent value fails with a missing-parameter error wrapping
// ErrMissingParam.
func FromPath[T any](p *route.Params, name string, bind Binder[T]) BoundParam[T] {
	return fromSingle(p.Path, "path", name, bind)
}

// FromPathOr is FromPath with a default for the absent case. The default
// never masks a parse failure: a present but unparsable value still fails
// with the binder's error.
func FromPathOr[T any](p *route.Params, name string, def T, bind Binder[T]) BoundParam[T] {
	return fromSingleOr(p.Path, name, def, bind)
}

// FromHost resolves a parameter extracted by the route's host pattern.
func FromHost[T any](p *route.Params, name string, bind Binder[T]) BoundParam[T] {
	return fromSingle(p.Host, "host", name, bind)
}

// FromHostOr is FromHost with a default for the absent case.
func FromHostOr[T any](p *route.Params, name string, def T, bind Binder[T]) BoundParam[T] {
	return fromSingleOr(p.Host, name, def, bind)
}

// FromQuery resolves a query parameter. The binder receives every
// occurrence of the key, since query parameters may repeat.
func FromQuery[T any](p *route.Params, name string, bind ValuesBinder[T]) BoundParam[T] {
	raw, ok := p.Query[name]
	if !ok || len(raw) == 0 {
		return Fail[T](name, missingParamError{namespace: "query", name: name})
	}
	return run(name, raw, bind)
}

// FromQueryOr is FromQuery with a default for the absent case. A present
// but unparsable value fails with the binder's error, not the default.
func FromQueryOr[T any](p *route.Params, name string, def T, bind ValuesBinder[T]) BoundParam[T] {
	raw, ok := p.Query[name]
	if !ok || len(raw) == 0 {
		return Ok(name, def)
	}
	return run(name, raw, bind)
}

func fromSingle[T any](ns map[string]string, nsName, name string, bind Binder[T]) BoundParam[T] {
	raw, ok := ns[name]
	if !ok {
		return Fail[T](name, missingParamError{namespace: nsName, name: name})
	}
	return run(name, raw, bind)
}

func fromSingleOr[T any](ns map[string]string, name string, def T, bind Binder[T]) BoundParam[T] {
	raw, ok := ns[name]
	if !ok {
		return Ok(name, def)
	}
	return run(name, raw, bind)
}

func run[R any, T any](name string, raw R, bind func(R) (T, error)) BoundParam[T] {
	v, err := bind(raw)
	if err != nil {
		// The binder's own message passes through unchanged.
		return Fail[T](name, err)
	}
	return Ok(name, v)
}

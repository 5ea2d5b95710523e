// Package dispatch invokes strongly-typed handler generators with bound
// parameters, one generic Call function per arity from 0 through 21.
//
// Each CallN evaluates its bound parameters left to right. When every
// parameter bound successfully the generator runs with the unwrapped
// values:
//
//	h := dispatch.Call2(
//		binder.FromPath(params, "id", binder.Int),
//		binder.FromQueryOr(params, "page", 1, binder.First(binder.Int)),
//		func(id, page int) handler.Handler { ... },
//	)
//
// The first failed parameter short-circuits the call: the generator never
// runs and the bad-request hook produces the returned handler, carrying
// exactly that failure's message. Failures of later parameters are never
// evaluated or reported. Call0 is the identity over a handler thunk.
//
// call_gen.go is produced by gen.go; regenerate with go generate after
// editing the generator.
package dispatch

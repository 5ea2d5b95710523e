package handler

import (
	"context"
	"net/http"
)

// Handler is the canonical executable form of a matched route. Everything
// route resolution produces satisfies this interface.
type Handler interface {
	Serve(w http.ResponseWriter, r *http.Request) error
}

// Response is a function that renders HTTP responses. It sets headers,
// status code, and writes the response body. Rendering errors are handled
// by the caller's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// Serve makes Response satisfy Handler.
func (f Response) Serve(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

// Action is a directly-invocable request handler: it inspects the request
// and produces the Response to render. The request it receives carries any
// routing metadata attached by tagging.
type Action func(r *http.Request) Response

// Serve makes Action satisfy Handler.
func (f Action) Serve(w http.ResponseWriter, r *http.Request) error {
	resp := f(r)
	if resp == nil {
		return ErrNilResponse
	}
	return resp(w, r)
}

// Bridge adapts a foreign action system (reflective invocation, generated
// shims) to the canonical handler form while exposing the originating
// controller and method identifiers.
type Bridge interface {
	Handler
	Controller() string
	Method() string
}

// RouteInfo is the routing metadata attached to a request before its
// handler runs. It is descriptive only and never influences handler
// behavior.
type RouteInfo struct {
	Pattern    string
	Verb       string
	Controller string
	Action     string
	Comment    string
}

type routeInfoKey struct{}

// TagRequest returns a shallow copy of r whose context carries info.
// The original request is not modified.
func TagRequest(r *http.Request, info RouteInfo) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), routeInfoKey{}, info))
}

// RouteInfoFromContext reports the routing metadata attached to ctx, if any.
// Logging and introspection layers use this to identify the matched route.
func RouteInfoFromContext(ctx context.Context) (RouteInfo, bool) {
	info, ok := ctx.Value(routeInfoKey{}).(RouteInfo)
	return info, ok
}

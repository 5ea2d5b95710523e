// Package handler defines the canonical executable form of a matched route
// and the normalization step that attaches routing metadata to requests.
//
// # Core Types
//
// Handler is the single shape the rest of the system executes:
//
//	type Handler interface {
//		Serve(w http.ResponseWriter, r *http.Request) error
//	}
//
// A closed set of variants satisfies it:
//
//   - Response — a plain render function, the canonical func form
//   - Action — a directly-invocable request handler producing a Response
//   - *Socket — a streaming/duplex handler over a websocket connection
//   - Bridge — an adapter to a foreign action system, with controller and
//     method accessors
//
// # Normalization and Tagging
//
// InvokeAndTag wraps a dispatch result so that, immediately before the
// underlying logic runs, the request context carries the matched route's
// metadata:
//
//	h := handler.InvokeAndTag(result, handler.RouteInfo{
//		Pattern:    "/users/{id:[0-9]+}",
//		Verb:       "GET",
//		Controller: "Users",
//		Action:     "Show",
//	})
//
// Downstream logging and introspection read it back with
// RouteInfoFromContext. Tagging is purely descriptive: the wrapped
// handler's status, body, and streaming behavior are reproduced exactly.
//
// Unrecognized Handler implementations pass through InvokeAndTag
// unmodified; they are assumed to be fully formed already.
package handler

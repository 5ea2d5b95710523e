package route

import "github.com/dmitrymomot/junction/core/handler"

// Descriptor is the build-time metadata attached to one declared route.
// It is immutable and lives for the lifetime of the route table.
type Descriptor struct {
	// Ref is the originating reference object from the route declaration,
	// kept opaque for introspection tooling.
	Ref any
	// Controller and Action identify the target of the route.
	Controller string
	Action     string
	// ArgTypes names the declared parameter types, used by bridged
	// handlers that invoke foreign actions reflectively.
	ArgTypes []string
	// Verb is the declared HTTP method.
	Verb string
	// Comment is the human-readable doc comment from the route source.
	Comment string
	// PathPattern and HostPattern are display strings; when empty they are
	// filled from the compiled patterns at table construction.
	PathPattern string
	HostPattern string
	// RequireSecure mirrors the route's secure-transport gate.
	RequireSecure bool
}

// RouteInfo returns the subset of the descriptor attached to requests
// before handler execution.
func (d Descriptor) RouteInfo() handler.RouteInfo {
	return handler.RouteInfo{
		Pattern:    d.PathPattern,
		Verb:       d.Verb,
		Controller: d.Controller,
		Action:     d.Action,
		Comment:    d.Comment,
	}
}

package route

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/junction/core/handler"
)

var (
	ErrNilPathPattern = errors.New("route has no path pattern")
	ErrNilHandler     = errors.New("route has no handler")
	ErrInvalidMethod  = errors.New("invalid http method")
)

// Entry ties a route predicate to its descriptor and handler generator.
// The generator receives the extracted parameter bundle and produces the
// handler to execute, typically via the dispatch package.
type Entry struct {
	Route      Route
	Descriptor Descriptor
	Handle     func(*Params) handler.Handler
}

// Table is an ordered, immutable route table. Declaration order is
// significant: resolution selects the first entry whose conditions all
// hold. Built once at startup; safe for unbounded concurrent resolution.
type Table struct {
	entries []Entry
	logger  *slog.Logger
	secure  func(*http.Request) bool
	metrics *tableMetrics
}

// Option configures a Table during creation.
type Option func(*Table)

// WithLogger sets a logger for resolution events.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithSecureFunc overrides secure-transport detection. The default treats
// a request as secure when r.TLS is set; deployments terminating TLS at a
// proxy supply their own check.
func WithSecureFunc(fn func(*http.Request) bool) Option {
	return func(t *Table) {
		if fn != nil {
			t.secure = fn
		}
	}
}

// New builds a Table from entries in declaration order. Every entry is
// validated up front: a missing path pattern, a missing handler, or a
// non-canonical verb aborts construction. Configuration problems surface
// here, never per request.
func New(entries []Entry, opts ...Option) (*Table, error) {
	t := &Table{
		entries: make([]Entry, len(entries)),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
		secure:  func(r *http.Request) bool { return r.TLS != nil },
	}
	copy(t.entries, entries)

	for _, opt := range opts {
		opt(t)
	}

	for i := range t.entries {
		e := &t.entries[i]

		if e.Route.Path == nil {
			return nil, fmt.Errorf("%w: entry %d (%s.%s)", ErrNilPathPattern, i, e.Descriptor.Controller, e.Descriptor.Action)
		}
		if e.Handle == nil {
			return nil, fmt.Errorf("%w: entry %d (%s)", ErrNilHandler, i, e.Route.Path)
		}
		if e.Route.Method == "" || e.Route.Method != strings.ToUpper(e.Route.Method) {
			return nil, fmt.Errorf("%w: %q on entry %d", ErrInvalidMethod, e.Route.Method, i)
		}

		if e.Descriptor.PathPattern == "" {
			e.Descriptor.PathPattern = e.Route.Path.String()
		}
		if e.Descriptor.HostPattern == "" && e.Route.Host != nil {
			e.Descriptor.HostPattern = e.Route.Host.String()
		}
		if e.Descriptor.Verb == "" {
			e.Descriptor.Verb = e.Route.Method
		}
		e.Descriptor.RequireSecure = e.Route.RequireSecure
	}

	return t, nil
}

// Resolve tries entries in declaration order and returns the first match's
// handler, normalized and tagged with the entry's routing metadata. It
// returns nil, false when no route matches; the caller reports not-found.
func (t *Table) Resolve(r *http.Request) (handler.Handler, bool) {
	secure := t.secure(r)

	for i := range t.entries {
		e := &t.entries[i]

		params, ok := e.Route.tryMatch(r, secure)
		if !ok {
			continue
		}

		t.logger.Debug("route matched",
			"method", r.Method,
			"path", r.URL.Path,
			"pattern", e.Descriptor.PathPattern,
			"controller", e.Descriptor.Controller,
			"action", e.Descriptor.Action,
		)
		if t.metrics != nil {
			t.metrics.matches.WithLabelValues(e.Route.Method, e.Descriptor.PathPattern).Inc()
		}

		return handler.InvokeAndTag(e.Handle(params), e.Descriptor.RouteInfo()), true
	}

	t.logger.Debug("no route matched", "method", r.Method, "path", r.URL.Path)
	if t.metrics != nil {
		t.metrics.unmatched.WithLabelValues(r.Method).Inc()
	}

	return nil, false
}

// Routes returns the descriptors of all entries in declaration order, for
// debugging and introspection.
func (t *Table) Routes() []Descriptor {
	out := make([]Descriptor, len(t.entries))
	for i := range t.entries {
		out[i] = t.entries[i].Descriptor
	}
	return out
}

package dispatch

import (
	"net/http"

	"github.com/dmitrymomot/junction/core/handler"
)

//go:generate go run gen.go

// BadRequestHandler produces the fallback handler returned when a bound
// parameter fails. It receives the first failure's descriptive message.
type BadRequestHandler func(msg string) handler.Handler

// BadRequest is the process-wide bad-request hook. Replace it at startup to
// integrate with a framework's error rendering; individual call sites can
// override it with WithBadRequest.
var BadRequest BadRequestHandler = func(msg string) handler.Handler {
	return handler.Response(func(w http.ResponseWriter, r *http.Request) error {
		http.Error(w, msg, http.StatusBadRequest)
		return nil
	})
}

// Option configures a single dispatch call.
type Option func(*config)

type config struct {
	badRequest BadRequestHandler
}

// WithBadRequest overrides the bad-request hook for one call.
func WithBadRequest(h BadRequestHandler) Option {
	return func(c *config) {
		if h != nil {
			c.badRequest = h
		}
	}
}

// reject builds the fallback handler for the first failed parameter.
// Parameters after the first failure are never inspected; only this one
// error surfaces.
func reject(err error, opts []Option) handler.Handler {
	cfg := config{badRequest: BadRequest}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.badRequest(err.Error())
}

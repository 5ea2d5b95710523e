package route

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/junction/core/urlpattern"
)

// Params is the per-request bundle of values extracted by a successful
// route match. It is built fresh for each match and treated as read-only.
type Params struct {
	// Host holds values extracted by the host pattern.
	Host map[string]string
	// Path holds values extracted by the path pattern.
	Path map[string]string
	// Query holds the raw query-string mapping; keys may repeat.
	Query url.Values
}

// Get returns the value bound to name, with path values taking precedence
// over host values.
func (p *Params) Get(name string) (string, bool) {
	if v, ok := p.Path[name]; ok {
		return v, true
	}
	v, ok := p.Host[name]
	return v, ok
}

// Route is the matching predicate of one declared route: an HTTP method, a
// path pattern, an optional host pattern, and a secure-transport gate.
type Route struct {
	// Method is the declared verb, compared case-sensitively.
	Method string
	// Host restricts the route to matching hosts; nil accepts any host.
	Host *urlpattern.Pattern
	// Path is the path pattern; required.
	Path *urlpattern.Pattern
	// RequireSecure rejects requests not made over a secure transport.
	RequireSecure bool
}

// TryMatch evaluates the route against a request snapshot. It returns the
// extracted parameter bundle when the host pattern, method, secure gate,
// and path pattern all hold; otherwise nil, false. A miss is normal control
// flow, never an error. Secure transport is detected via r.TLS; use a
// Table with WithSecureFunc when the transport terminates TLS upstream.
func (rt *Route) TryMatch(r *http.Request) (*Params, bool) {
	return rt.tryMatch(r, r.TLS != nil)
}

func (rt *Route) tryMatch(r *http.Request, secure bool) (*Params, bool) {
	hostValues := map[string]string{}
	if rt.Host != nil {
		var ok bool
		if hostValues, ok = rt.Host.Match(requestHost(r)); !ok {
			return nil, false
		}
	}

	if r.Method != rt.Method {
		return nil, false
	}

	if rt.RequireSecure && !secure {
		return nil, false
	}

	pathValues, ok := rt.Path.Match(r.URL.Path)
	if !ok {
		return nil, false
	}

	return &Params{
		Host:  hostValues,
		Path:  pathValues,
		Query: r.URL.Query(),
	}, true
}

// requestHost returns the request host lower-cased with any port stripped.
func requestHost(r *http.Request) string {
	host := r.Host
	if host == "" && r.URL != nil {
		host = r.URL.Host
	}
	// Strip the port, leaving IPv6 literals intact.
	if i := strings.LastIndexByte(host, ':'); i >= 0 && strings.IndexByte(host[i:], ']') < 0 {
		host = host[:i]
	}
	return strings.ToLower(host)
}

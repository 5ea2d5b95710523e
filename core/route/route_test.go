package route_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/junction/core/route"
	"github.com/dmitrymomot/junction/core/urlpattern"
)

func usersPattern(t *testing.T) *urlpattern.Pattern {
	t.Helper()
	p, err := urlpattern.Compile(
		urlpattern.Static("/users/"),
		urlpattern.Dynamic{Name: "id", Constraint: "[0-9]+"},
	)
	require.NoError(t, err)
	return p
}

func tenantHostPattern(t *testing.T) *urlpattern.Pattern {
	t.Helper()
	p, err := urlpattern.Compile(
		urlpattern.Dynamic{Name: "tenant", Constraint: "[a-z]+"},
		urlpattern.Static(".example.com"),
	)
	require.NoError(t, err)
	return p
}

func TestTryMatch(t *testing.T) {
	t.Parallel()

	t.Run("all conditions hold", func(t *testing.T) {
		t.Parallel()

		rt := &route.Route{Method: http.MethodGet, Path: usersPattern(t)}
		req := httptest.NewRequest(http.MethodGet, "http://example.com/users/42?page=2&page=3", nil)

		params, ok := rt.TryMatch(req)
		require.True(t, ok)
		assert.Equal(t, "42", params.Path["id"])
		assert.Equal(t, []string{"2", "3"}, params.Query["page"])
		assert.Empty(t, params.Host)
	})

	t.Run("method compare is case-sensitive exact", func(t *testing.T) {
		t.Parallel()

		rt := &route.Route{Method: http.MethodGet, Path: usersPattern(t)}

		req := httptest.NewRequest(http.MethodPost, "http://example.com/users/42", nil)
		_, ok := rt.TryMatch(req)
		assert.False(t, ok)

		req = httptest.NewRequest(http.MethodGet, "http://example.com/users/42", nil)
		req.Method = "get"
		_, ok = rt.TryMatch(req)
		assert.False(t, ok)
	})

	t.Run("path mismatch", func(t *testing.T) {
		t.Parallel()

		rt := &route.Route{Method: http.MethodGet, Path: usersPattern(t)}
		req := httptest.NewRequest(http.MethodGet, "http://example.com/users/abc", nil)

		_, ok := rt.TryMatch(req)
		assert.False(t, ok)
	})

	t.Run("host pattern extracts values", func(t *testing.T) {
		t.Parallel()

		rt := &route.Route{
			Method: http.MethodGet,
			Host:   tenantHostPattern(t),
			Path:   usersPattern(t),
		}

		req := httptest.NewRequest(http.MethodGet, "http://acme.example.com/users/7", nil)
		params, ok := rt.TryMatch(req)
		require.True(t, ok)
		assert.Equal(t, "acme", params.Host["tenant"])
		assert.Equal(t, "7", params.Path["id"])
	})

	t.Run("host pattern rejects foreign vhost regardless of method", func(t *testing.T) {
		t.Parallel()

		rt := &route.Route{
			Method: http.MethodGet,
			Host:   tenantHostPattern(t),
			Path:   usersPattern(t),
		}

		// Wrong host and wrong method: still a plain no-match.
		req := httptest.NewRequest(http.MethodPost, "http://other.host.io/users/7", nil)
		_, ok := rt.TryMatch(req)
		assert.False(t, ok)
	})

	t.Run("host matching ignores port and case", func(t *testing.T) {
		t.Parallel()

		rt := &route.Route{
			Method: http.MethodGet,
			Host:   tenantHostPattern(t),
			Path:   usersPattern(t),
		}

		req := httptest.NewRequest(http.MethodGet, "http://ACME.example.com:8080/users/7", nil)
		params, ok := rt.TryMatch(req)
		require.True(t, ok)
		assert.Equal(t, "acme", params.Host["tenant"])
	})

	t.Run("secure gate rejects plain transport", func(t *testing.T) {
		t.Parallel()

		rt := &route.Route{
			Method:        http.MethodGet,
			Path:          usersPattern(t),
			RequireSecure: true,
		}

		plain := httptest.NewRequest(http.MethodGet, "http://example.com/users/42", nil)
		_, ok := rt.TryMatch(plain)
		assert.False(t, ok)

		// httptest sets r.TLS for https targets.
		tls := httptest.NewRequest(http.MethodGet, "https://example.com/users/42", nil)
		params, ok := rt.TryMatch(tls)
		require.True(t, ok)
		assert.Equal(t, "42", params.Path["id"])
	})
}

func TestParamsGet(t *testing.T) {
	t.Parallel()

	p := &route.Params{
		Host: map[string]string{"tenant": "acme", "shared": "from-host"},
		Path: map[string]string{"id": "42", "shared": "from-path"},
	}

	v, ok := p.Get("id")
	require.True(t, ok)
	assert.Equal(t, "42", v)

	v, ok = p.Get("tenant")
	require.True(t, ok)
	assert.Equal(t, "acme", v)

	// Path wins when the same name exists in both namespaces.
	v, ok = p.Get("shared")
	require.True(t, ok)
	assert.Equal(t, "from-path", v)

	_, ok = p.Get("absent")
	assert.False(t, ok)
}

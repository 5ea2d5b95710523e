package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/junction/core/handler"
)

func TestResponseServe(t *testing.T) {
	t.Parallel()

	t.Run("renders through serve", func(t *testing.T) {
		t.Parallel()

		h := handler.Response(func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusTeapot)
			_, err := w.Write([]byte("short and stout"))
			return err
		})

		req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
		w := httptest.NewRecorder()

		require.NoError(t, h.Serve(w, req))
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "short and stout", w.Body.String())
	})

	t.Run("propagates render error", func(t *testing.T) {
		t.Parallel()

		renderErr := errors.New("render failed")
		h := handler.Response(func(w http.ResponseWriter, r *http.Request) error {
			return renderErr
		})

		err := h.Serve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, renderErr)
	})
}

func TestActionServe(t *testing.T) {
	t.Parallel()

	t.Run("invokes action then response", func(t *testing.T) {
		t.Parallel()

		h := handler.Action(func(r *http.Request) handler.Response {
			name := r.URL.Query().Get("name")
			return func(w http.ResponseWriter, r *http.Request) error {
				_, err := w.Write([]byte("hello " + name))
				return err
			}
		})

		req := httptest.NewRequest(http.MethodGet, "/greet?name=ada", nil)
		w := httptest.NewRecorder()

		require.NoError(t, h.Serve(w, req))
		assert.Equal(t, "hello ada", w.Body.String())
	})

	t.Run("nil response is an error", func(t *testing.T) {
		t.Parallel()

		h := handler.Action(func(r *http.Request) handler.Response {
			return nil
		})

		err := h.Serve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, handler.ErrNilResponse)
	})
}

func TestTagRequest(t *testing.T) {
	t.Parallel()

	info := handler.RouteInfo{
		Pattern:    "/users/{id:[0-9]+}",
		Verb:       "GET",
		Controller: "Users",
		Action:     "Show",
		Comment:    "fetch a single user",
	}

	orig := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	tagged := handler.TagRequest(orig, info)

	got, ok := handler.RouteInfoFromContext(tagged.Context())
	require.True(t, ok)
	assert.Equal(t, info, got)

	// Original request untouched.
	_, ok = handler.RouteInfoFromContext(orig.Context())
	assert.False(t, ok)
}

func TestRouteInfoFromContext(t *testing.T) {
	t.Parallel()

	_, ok := handler.RouteInfoFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

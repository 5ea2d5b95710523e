package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/junction/core/handler"
)

var testInfo = handler.RouteInfo{
	Pattern:    "/users/{id:[0-9]+}",
	Verb:       "GET",
	Controller: "Users",
	Action:     "Show",
	Comment:    "fetch a single user",
}

func TestInvokeAndTagResponse(t *testing.T) {
	t.Parallel()

	t.Run("tags request before execution", func(t *testing.T) {
		t.Parallel()

		var seen handler.RouteInfo
		raw := handler.Response(func(w http.ResponseWriter, r *http.Request) error {
			seen, _ = handler.RouteInfoFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
			return nil
		})

		h := handler.InvokeAndTag(raw, testInfo)
		req := httptest.NewRequest(http.MethodGet, "/users/42", nil)

		require.NoError(t, h.Serve(httptest.NewRecorder(), req))
		assert.Equal(t, testInfo, seen)
	})

	t.Run("response bytes unchanged by tagging", func(t *testing.T) {
		t.Parallel()

		raw := handler.Response(func(w http.ResponseWriter, r *http.Request) error {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, err := w.Write([]byte(`{"id":42}`))
			return err
		})

		plain := httptest.NewRecorder()
		require.NoError(t, raw.Serve(plain, httptest.NewRequest(http.MethodGet, "/users/42", nil)))

		tagged := httptest.NewRecorder()
		h := handler.InvokeAndTag(raw, testInfo)
		require.NoError(t, h.Serve(tagged, httptest.NewRequest(http.MethodGet, "/users/42", nil)))

		assert.Equal(t, plain.Code, tagged.Code)
		assert.Equal(t, plain.Body.Bytes(), tagged.Body.Bytes())
		assert.Equal(t, plain.Header(), tagged.Header())
	})
}

func TestInvokeAndTagAction(t *testing.T) {
	t.Parallel()

	var actionSeen, renderSeen bool
	raw := handler.Action(func(r *http.Request) handler.Response {
		_, actionSeen = handler.RouteInfoFromContext(r.Context())
		return func(w http.ResponseWriter, r *http.Request) error {
			_, renderSeen = handler.RouteInfoFromContext(r.Context())
			_, err := w.Write([]byte("ok"))
			return err
		}
	})

	h := handler.InvokeAndTag(raw, testInfo)
	w := httptest.NewRecorder()

	require.NoError(t, h.Serve(w, httptest.NewRequest(http.MethodGet, "/users/42", nil)))
	assert.True(t, actionSeen, "action must see the tagged request")
	assert.True(t, renderSeen, "response must see the tagged request")
	assert.Equal(t, "ok", w.Body.String())
}

func TestInvokeAndTagSocket(t *testing.T) {
	t.Parallel()

	t.Run("acceptance check sees routing metadata", func(t *testing.T) {
		t.Parallel()

		var seen handler.RouteInfo
		sock := handler.NewSocket(
			func(ctx context.Context, conn *websocket.Conn) error { return nil },
			handler.WithAccept(func(r *http.Request) bool {
				seen, _ = handler.RouteInfoFromContext(r.Context())
				return false
			}),
		)

		h := handler.InvokeAndTag(sock, testInfo)
		w := httptest.NewRecorder()

		require.NoError(t, h.Serve(w, httptest.NewRequest(http.MethodGet, "/ws", nil)))
		assert.Equal(t, testInfo, seen)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("failed upgrade goes to error hook", func(t *testing.T) {
		t.Parallel()

		var hookErr error
		sock := handler.NewSocket(
			func(ctx context.Context, conn *websocket.Conn) error { return nil },
			handler.WithErrorHook(func(ctx context.Context, err error) { hookErr = err }),
		)

		h := handler.InvokeAndTag(sock, testInfo)

		// Not a websocket handshake: the upgrader must refuse it.
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		require.NoError(t, h.Serve(httptest.NewRecorder(), req))
		assert.Error(t, hookErr)
	})
}

type stubBridge struct {
	controller string
	method     string
	serve      func(w http.ResponseWriter, r *http.Request) error
}

func (b *stubBridge) Serve(w http.ResponseWriter, r *http.Request) error { return b.serve(w, r) }
func (b *stubBridge) Controller() string                                 { return b.controller }
func (b *stubBridge) Method() string                                     { return b.method }

func TestInvokeAndTagBridge(t *testing.T) {
	t.Parallel()

	var seen handler.RouteInfo
	raw := &stubBridge{
		controller: "Legacy",
		method:     "Handle",
		serve: func(w http.ResponseWriter, r *http.Request) error {
			seen, _ = handler.RouteInfoFromContext(r.Context())
			_, err := w.Write([]byte("bridged"))
			return err
		},
	}

	h := handler.InvokeAndTag(raw, testInfo)

	// Accessors must survive wrapping.
	bridge, ok := h.(handler.Bridge)
	require.True(t, ok)
	assert.Equal(t, "Legacy", bridge.Controller())
	assert.Equal(t, "Handle", bridge.Method())

	w := httptest.NewRecorder()
	require.NoError(t, h.Serve(w, httptest.NewRequest(http.MethodGet, "/legacy", nil)))
	assert.Equal(t, testInfo, seen)
	assert.Equal(t, "bridged", w.Body.String())
}

type opaqueHandler struct{}

func (opaqueHandler) Serve(w http.ResponseWriter, r *http.Request) error { return nil }

func TestInvokeAndTagPassThrough(t *testing.T) {
	t.Parallel()

	raw := opaqueHandler{}
	h := handler.InvokeAndTag(raw, testInfo)
	assert.Equal(t, raw, h, "unrecognized handler shapes pass through unmodified")
}

func TestInvokeAndTagNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, handler.InvokeAndTag(nil, testInfo))
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Socket is the streaming/duplex handler variant. It owns the upgrade
// decision and the connection lifecycle; the serve function processes
// messages until it returns.
type Socket struct {
	upgrader       *websocket.Upgrader
	responseHeader http.Header
	accept         func(r *http.Request) bool
	serve          func(ctx context.Context, conn *websocket.Conn) error
	onConnect      func(ctx context.Context, conn *websocket.Conn) error
	onDisconnect   func(ctx context.Context, conn *websocket.Conn)
	onError        func(ctx context.Context, err error)
}

// SocketOption configures a Socket.
type SocketOption func(*Socket)

// WithReadBuffer sets the websocket read buffer size.
func WithReadBuffer(size int) SocketOption {
	return func(s *Socket) {
		s.upgrader.ReadBufferSize = size
	}
}

// WithWriteBuffer sets the websocket write buffer size.
func WithWriteBuffer(size int) SocketOption {
	return func(s *Socket) {
		s.upgrader.WriteBufferSize = size
	}
}

// WithHandshakeTimeout sets the websocket handshake timeout.
func WithHandshakeTimeout(timeout time.Duration) SocketOption {
	return func(s *Socket) {
		s.upgrader.HandshakeTimeout = timeout
	}
}

// WithOriginCheck sets a custom origin check for the upgrade.
func WithOriginCheck(fn func(r *http.Request) bool) SocketOption {
	return func(s *Socket) {
		s.upgrader.CheckOrigin = fn
	}
}

// WithSubprotocols sets the supported websocket subprotocols.
func WithSubprotocols(protocols ...string) SocketOption {
	return func(s *Socket) {
		s.upgrader.Subprotocols = protocols
	}
}

// WithUpgradeHeaders sets additional response headers sent on upgrade.
func WithUpgradeHeaders(header http.Header) SocketOption {
	return func(s *Socket) {
		s.responseHeader = header
	}
}

// WithAccept sets the request-acceptance function. When it returns false
// the connection is refused with 403 and no upgrade is attempted.
func WithAccept(fn func(r *http.Request) bool) SocketOption {
	return func(s *Socket) {
		s.accept = fn
	}
}

// WithConnectHook sets a hook invoked right after a successful upgrade.
// A hook error closes the connection without invoking the serve function.
func WithConnectHook(fn func(ctx context.Context, conn *websocket.Conn) error) SocketOption {
	return func(s *Socket) {
		s.onConnect = fn
	}
}

// WithDisconnectHook sets a hook invoked after the connection closes.
func WithDisconnectHook(fn func(ctx context.Context, conn *websocket.Conn)) SocketOption {
	return func(s *Socket) {
		s.onDisconnect = fn
	}
}

// WithErrorHook sets a hook invoked with upgrade and serve errors.
func WithErrorHook(fn func(ctx context.Context, err error)) SocketOption {
	return func(s *Socket) {
		s.onError = fn
	}
}

// NewSocket creates a streaming handler that upgrades matching requests to
// a websocket connection and runs serve over it.
func NewSocket(serve func(ctx context.Context, conn *websocket.Conn) error, opts ...SocketOption) *Socket {
	s := &Socket{
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		serve: serve,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Serve implements Handler. It applies the acceptance check, upgrades the
// connection, and runs the serve loop. Upgrade and serve errors go to the
// error hook; they are not returned because the hijacked connection can no
// longer render an HTTP error response.
func (s *Socket) Serve(w http.ResponseWriter, r *http.Request) error {
	if s.accept != nil && !s.accept(r) {
		http.Error(w, "connection refused", http.StatusForbidden)
		return nil
	}

	conn, err := s.upgrader.Upgrade(w, r, s.responseHeader)
	if err != nil {
		if s.onError != nil {
			s.onError(r.Context(), err)
		}
		return nil
	}
	defer func() {
		_ = conn.Close()
		if s.onDisconnect != nil {
			s.onDisconnect(r.Context(), conn)
		}
	}()

	if s.onConnect != nil {
		if err := s.onConnect(r.Context(), conn); err != nil {
			if s.onError != nil {
				s.onError(r.Context(), err)
			}
			return nil
		}
	}

	if s.serve != nil {
		if err := s.serve(r.Context(), conn); err != nil {
			if s.onError != nil {
				s.onError(r.Context(), err)
			}
		}
	}

	return nil
}

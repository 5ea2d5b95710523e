package handler

import "net/http"

// InvokeAndTag normalizes a dispatch result into its canonical executable
// form, decorated so the request carries info immediately before the
// underlying logic runs. Tagging never alters the wrapped handler's
// observable behavior: status, body, and streaming semantics are untouched.
//
// Dispatch is over the closed variant set (Response, Action, *Socket,
// Bridge). Any other Handler implementation is assumed fully formed and
// passes through unmodified.
func InvokeAndTag(h Handler, info RouteInfo) Handler {
	switch v := h.(type) {
	case nil:
		return nil
	case Response:
		return Response(func(w http.ResponseWriter, r *http.Request) error {
			return v(w, TagRequest(r, info))
		})
	case Action:
		return Response(func(w http.ResponseWriter, r *http.Request) error {
			return v.Serve(w, TagRequest(r, info))
		})
	case *Socket:
		return &taggedSocket{socket: v, info: info}
	case Bridge:
		return &taggedBridge{bridge: v, info: info}
	default:
		return v
	}
}

// taggedSocket tags the request before the socket's acceptance check, so
// the upgrade decision already sees the routing metadata. The streaming
// contract is otherwise the socket's own.
type taggedSocket struct {
	socket *Socket
	info   RouteInfo
}

func (t *taggedSocket) Serve(w http.ResponseWriter, r *http.Request) error {
	return t.socket.Serve(w, TagRequest(r, t.info))
}

// taggedBridge preserves the bridge's controller and method accessors while
// adding the tagging hook.
type taggedBridge struct {
	bridge Bridge
	info   RouteInfo
}

func (t *taggedBridge) Serve(w http.ResponseWriter, r *http.Request) error {
	return t.bridge.Serve(w, TagRequest(r, t.info))
}

func (t *taggedBridge) Controller() string {
	return t.bridge.Controller()
}

func (t *taggedBridge) Method() string {
	return t.bridge.Method()
}

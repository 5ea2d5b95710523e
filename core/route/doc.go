// Package route matches request snapshots against declared routes and
// resolves the first match to an executable, metadata-tagged handler.
//
// A route is a four-way predicate: host pattern, HTTP method, secure
// transport gate, and path pattern. All four must hold for a match; a miss
// is normal control flow and the next declared route is tried. Declaration
// order is significant.
//
//	users := urlpattern.MustCompile(
//		urlpattern.Static("/users/"),
//		urlpattern.Dynamic{Name: "id", Constraint: "[0-9]+"},
//	)
//
//	table, err := route.New([]route.Entry{{
//		Route: route.Route{Method: http.MethodGet, Path: users},
//		Descriptor: route.Descriptor{
//			Controller: "Users",
//			Action:     "Show",
//			Comment:    "fetch a single user",
//		},
//		Handle: func(p *route.Params) handler.Handler {
//			return dispatch.Call1(
//				binder.FromPath(p, "id", binder.Int),
//				showUser,
//			)
//		},
//	}})
//	if err != nil {
//		// configuration error: fail startup
//	}
//
//	h, ok := table.Resolve(req)
//
// Tables are built once and are immutable: resolution is pure over the
// compiled patterns and the request snapshot and needs no synchronization.
// Optional slog logging and Prometheus counters observe resolution without
// affecting it.
package route

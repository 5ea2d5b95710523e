// Package urlpattern compiles ordered sequences of static and dynamic URL
// segments into single anchored regular expressions with per-parameter
// capture extraction.
//
// A pattern is built once from parts and is immutable afterwards:
//
//	p, err := urlpattern.Compile(
//		urlpattern.Static("/users/"),
//		urlpattern.Dynamic{Name: "id", Constraint: "[0-9]+"},
//	)
//	if err != nil {
//		// invalid constraint: fail route-table construction
//	}
//
//	values, ok := p.Match("/users/42") // map[id:42], true
//
// Dynamic part constraints are arbitrary regular expression fragments and
// may contain their own capturing groups; the compiler accounts for nested
// groups when assigning each parameter its capture index, so extraction
// stays correct for constraints like "(a|b)x".
//
// The same mechanism is used for host (domain) patterns and path patterns;
// see the route package.
package urlpattern

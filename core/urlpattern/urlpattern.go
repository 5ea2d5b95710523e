package urlpattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidConstraint = errors.New("invalid dynamic part constraint")
	ErrDuplicateParam    = errors.New("duplicate parameter name")
	ErrEmptyParamName    = errors.New("empty parameter name")
)

// Part is one segment of a URL pattern. The set of implementations is
// closed: Static and Dynamic.
type Part interface {
	// isPart prevents implementations outside this package.
	isPart()
}

// Static is a literal segment matched verbatim.
type Static string

func (Static) isPart() {}

// Dynamic is a named segment whose accepted values are described by a
// regular expression fragment. The fragment may contain its own capturing
// groups.
type Dynamic struct {
	Name       string
	Constraint string
}

func (Dynamic) isPart() {}

// Pattern is a compiled URL pattern. It is immutable after Compile and safe
// for concurrent use.
type Pattern struct {
	matcher    *regexp.Regexp
	groupIndex map[string]int
	display    string
}

// Compile builds a Pattern from an ordered part sequence.
//
// Each static part contributes its quoted literal text; each dynamic part
// contributes one capturing group wrapping its constraint. Because a
// constraint may itself contain capturing groups, the group index recorded
// for a dynamic part advances past the constraint's nested groups, which are
// counted by compiling the constraint in isolation. The resulting expression
// is anchored at both ends and compiled once.
//
// A constraint that does not compile on its own is a configuration error;
// callers are expected to fail route-table construction on it.
func Compile(parts ...Part) (*Pattern, error) {
	var (
		expr    strings.Builder
		display strings.Builder
		groups  = make(map[string]int)
		count   int
	)

	expr.WriteByte('^')

	for _, part := range parts {
		switch p := part.(type) {
		case Static:
			expr.WriteString(regexp.QuoteMeta(string(p)))
			display.WriteString(string(p))
		case Dynamic:
			if p.Name == "" {
				return nil, fmt.Errorf("%w in %q", ErrEmptyParamName, display.String())
			}
			if _, ok := groups[p.Name]; ok {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateParam, p.Name)
			}

			nested, err := regexp.Compile(p.Constraint)
			if err != nil {
				return nil, fmt.Errorf("%w: %q for parameter %q: %v", ErrInvalidConstraint, p.Constraint, p.Name, err)
			}

			expr.WriteString("(")
			expr.WriteString(p.Constraint)
			expr.WriteString(")")
			fmt.Fprintf(&display, "{%s:%s}", p.Name, p.Constraint)

			groups[p.Name] = count + 1
			count += 1 + nested.NumSubexp()
		default:
			return nil, fmt.Errorf("urlpattern: unknown part type %T", part)
		}
	}

	expr.WriteByte('$')

	matcher, err := regexp.Compile(expr.String())
	if err != nil {
		// Parts compiled in isolation but not concatenated; still a
		// configuration error.
		return nil, fmt.Errorf("%w: %v", ErrInvalidConstraint, err)
	}

	return &Pattern{
		matcher:    matcher,
		groupIndex: groups,
		display:    display.String(),
	}, nil
}

// MustCompile is like Compile but panics on error. Intended for patterns
// known valid at build time.
func MustCompile(parts ...Part) *Pattern {
	p, err := Compile(parts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Match applies the pattern to input anchored start-to-end. On success it
// returns the extracted value for every dynamic part; otherwise nil, false.
// Match is pure and safe for concurrent use.
func (p *Pattern) Match(input string) (map[string]string, bool) {
	m := p.matcher.FindStringSubmatch(input)
	if m == nil {
		return nil, false
	}

	values := make(map[string]string, len(p.groupIndex))
	for name, idx := range p.groupIndex {
		values[name] = m[idx]
	}
	return values, true
}

// MatchString reports whether input matches the pattern without extracting
// values.
func (p *Pattern) MatchString(input string) bool {
	return p.matcher.MatchString(input)
}

// HasParam reports whether the pattern declares a dynamic part with the
// given name. Used for build-time validation of route declarations.
func (p *Pattern) HasParam(name string) bool {
	_, ok := p.groupIndex[name]
	return ok
}

// ParamNames returns the declared dynamic part names in unspecified order.
func (p *Pattern) ParamNames() []string {
	names := make([]string, 0, len(p.groupIndex))
	for name := range p.groupIndex {
		names = append(names, name)
	}
	return names
}

// String returns the display form of the pattern, with dynamic parts
// rendered as {name:constraint}.
func (p *Pattern) String() string {
	return p.display
}

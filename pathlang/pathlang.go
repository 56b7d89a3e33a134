// Package pathlang parses and renders the predicate-path grammar consumed
// by the query compiler: a dotted attribute path with an optional guard,
// polymorphic cast, and sub-path, e.g. "identifier[OID].value".
package pathlang

import "regexp"

var pathRe = regexp.MustCompile(`^(\w*?)(\[(.*?)\])?(\@(\w*))?(\.(.*))?$`)

// PredicatePath is the four-part decomposition of an attribute path.
// HasGuard/HasCast/HasSubPath distinguish a present-but-empty component
// (e.g. the guard in "foo[]") from an absent one, so ToString can
// round-trip exactly what Parse saw.
type PredicatePath struct {
	Path    string
	Guard   string
	HasGuard bool
	Cast    string
	HasCast bool
	SubPath string
	HasSubPath bool
}

// Parse decomposes s into its path/guard/cast/sub-path components. It
// returns (nil, false) when s does not match the grammar (e.g. the path
// holds a non-word character such as "-") or when Path would be empty;
// per spec the grammar only binds a PredicatePath when Path != "".
func Parse(s string) (*PredicatePath, bool) {
	m := pathRe.FindStringSubmatchIndex(s)
	if m == nil {
		return nil, false
	}
	group := func(i int) (string, bool) {
		if m[2*i] < 0 {
			return "", false
		}
		return s[m[2*i]:m[2*i+1]], true
	}
	path, _ := group(1)
	if path == "" {
		return nil, false
	}
	guard, hasGuard := group(3)
	cast, hasCast := group(5)
	sub, hasSub := group(7)
	return &PredicatePath{
		Path: path,
		Guard: guard, HasGuard: hasGuard,
		Cast: cast, HasCast: hasCast,
		SubPath: sub, HasSubPath: hasSub,
	}, true
}

// Part selects which components ToString renders.
type Part int

const (
	PartPath Part = 1 << iota
	PartGuard
	PartCast
	PartSubPath
)

// Full renders every component the path carries.
const Full = PartPath | PartGuard | PartCast | PartSubPath

// ToString renders the requested subset of p's components with the
// grammar's separators ("[…]", "@…", ".…"). Passing Full reconstructs the
// exact string Parse would have consumed to produce p.
func ToString(p *PredicatePath, parts Part) string {
	if p == nil {
		return ""
	}
	var out string
	if parts&PartPath != 0 {
		out += p.Path
	}
	if parts&PartGuard != 0 && p.HasGuard {
		out += "[" + p.Guard + "]"
	}
	if parts&PartCast != 0 && p.HasCast {
		out += "@" + p.Cast
	}
	if parts&PartSubPath != 0 && p.HasSubPath {
		out += "." + p.SubPath
	}
	return out
}

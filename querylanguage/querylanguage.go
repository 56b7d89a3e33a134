// Package querylanguage is a typed predicate-tree builder: an alternative,
// statically-typed entry point into the compiler alongside the flat
// path/value pairs in package query. A tree built here lowers to the same
// []query.PathValue the compiler consumes (see lower.go).
package querylanguage

import "strings"

// P is one node of a predicate tree. Every node renders a readable
// expression string (Lower, not String, produces the compiler's input) and
// can negate itself without mutating the original tree.
type P interface {
	String() string
	Negate() P
}

// BinaryExpr is "L Op R", rendered with no surrounding parens.
type BinaryExpr struct {
	Op   string
	L, R P
}

func (e *BinaryExpr) String() string { return e.L.String() + " " + e.Op + " " + e.R.String() }
func (e *BinaryExpr) Negate() P      { return &UnaryExpr{X: e} }

// UnaryExpr is logical negation, always rendered "!(X)".
type UnaryExpr struct {
	X P
}

func (e *UnaryExpr) String() string { return "!(" + e.X.String() + ")" }
func (e *UnaryExpr) Negate() P      { return &UnaryExpr{X: e} }

// NaryExpr joins Operands with Op ("&&" or "||"). The join is wrapped in
// parens only once more than two operands are present — two operands read
// fine unparenthesized, three or more need the grouping to stay unambiguous
// once nested under another expression.
type NaryExpr struct {
	Op       string
	Operands []P
}

func (e *NaryExpr) String() string {
	parts := make([]string, len(e.Operands))
	for i, p := range e.Operands {
		parts[i] = p.String()
	}
	joined := strings.Join(parts, " "+e.Op+" ")
	if len(e.Operands) > 2 {
		return "(" + joined + ")"
	}
	return joined
}

func (e *NaryExpr) Negate() P { return &UnaryExpr{X: e} }

// CallExpr is a named function-style predicate: "name(args...)".
type CallExpr struct {
	Name string
	Args []P
}

func (e *CallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return e.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (e *CallExpr) Negate() P { return &UnaryExpr{X: e} }

// fieldExpr is a bare field-name reference, rendered verbatim.
type fieldExpr string

func (f fieldExpr) String() string { return string(f) }
func (f fieldExpr) Negate() P      { return &UnaryExpr{X: f} }

// F references a field by name.
func F(name string) P { return fieldExpr(name) }

// listLit renders a comma-separated (no-space) literal list, e.g. [1,2,3].
type listLit struct{ vs []any }

func (l *listLit) String() string {
	parts := make([]string, len(l.vs))
	for i, v := range l.vs {
		parts[i] = formatLit(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
func (l *listLit) Negate() P { return &UnaryExpr{X: l} }

// And combines predicates with "&&".
func And(ps ...P) P { return &NaryExpr{Op: "&&", Operands: ps} }

// Or combines predicates with "||".
func Or(ps ...P) P { return &NaryExpr{Op: "||", Operands: ps} }

// Not negates a predicate.
func Not(p P) P { return &UnaryExpr{X: p} }

// EQ, NEQ, GT, GTE, LT, LTE compare two predicate-tree leaves directly
// (typically two F(...) field references).
func EQ(a, b P) P  { return &BinaryExpr{Op: "==", L: a, R: b} }
func NEQ(a, b P) P { return &BinaryExpr{Op: "!=", L: a, R: b} }
func GT(a, b P) P  { return &BinaryExpr{Op: ">", L: a, R: b} }
func GTE(a, b P) P { return &BinaryExpr{Op: ">=", L: a, R: b} }
func LT(a, b P) P  { return &BinaryExpr{Op: "<", L: a, R: b} }
func LTE(a, b P) P { return &BinaryExpr{Op: "<=", L: a, R: b} }

// FieldEQ, FieldNEQ, FieldGT, FieldGTE, FieldLT, FieldLTE compare a named
// field against a literal value.
func FieldEQ(name string, v any) P  { return &BinaryExpr{Op: "==", L: F(name), R: &litExpr{v: v}} }
func FieldNEQ(name string, v any) P { return &BinaryExpr{Op: "!=", L: F(name), R: &litExpr{v: v}} }
func FieldGT(name string, v any) P  { return &BinaryExpr{Op: ">", L: F(name), R: &litExpr{v: v}} }
func FieldGTE(name string, v any) P { return &BinaryExpr{Op: ">=", L: F(name), R: &litExpr{v: v}} }
func FieldLT(name string, v any) P  { return &BinaryExpr{Op: "<", L: F(name), R: &litExpr{v: v}} }
func FieldLTE(name string, v any) P { return &BinaryExpr{Op: "<=", L: F(name), R: &litExpr{v: v}} }

// FieldIn and FieldNotIn test set membership against a literal list.
func FieldIn(name string, vs ...any) P {
	return &BinaryExpr{Op: "in", L: F(name), R: &listLit{vs: vs}}
}
func FieldNotIn(name string, vs ...any) P {
	return &BinaryExpr{Op: "not in", L: F(name), R: &listLit{vs: vs}}
}

// FieldContains, FieldContainsFold, FieldHasPrefix, FieldHasSuffix, and
// FieldEqualFold are the string-matching predicate family, each rendered as
// a named call over the field reference and the literal argument.
func FieldContains(name, v string) P {
	return &CallExpr{Name: "contains", Args: []P{F(name), &litExpr{v: v}}}
}
func FieldContainsFold(name, v string) P {
	return &CallExpr{Name: "contains_fold", Args: []P{F(name), &litExpr{v: v}}}
}
func FieldHasPrefix(name, v string) P {
	return &CallExpr{Name: "has_prefix", Args: []P{F(name), &litExpr{v: v}}}
}
func FieldHasSuffix(name, v string) P {
	return &CallExpr{Name: "has_suffix", Args: []P{F(name), &litExpr{v: v}}}
}
func FieldEqualFold(name, v string) P {
	return &CallExpr{Name: "equal_fold", Args: []P{F(name), &litExpr{v: v}}}
}

// FieldNil and FieldNotNil test a field against the nil literal.
func FieldNil(name string) P    { return &BinaryExpr{Op: "==", L: F(name), R: nilLit{}} }
func FieldNotNil(name string) P { return &BinaryExpr{Op: "!=", L: F(name), R: nilLit{}} }

// HasEdge tests that an edge exists; HasEdgeWith additionally requires the
// edge's target to satisfy a nested predicate.
func HasEdge(name string) P { return &CallExpr{Name: "has_edge", Args: []P{F(name)}} }
func HasEdgeWith(name string, p P) P {
	return &CallExpr{Name: "has_edge", Args: []P{F(name), p}}
}

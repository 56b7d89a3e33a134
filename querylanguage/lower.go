package querylanguage

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/ormpath/ormpath/query"
)

// Lower translates a predicate tree into the compiler's flat (path, value)
// input. Binary comparisons become a path and a value carrying the
// operator-prefix grammar the compiler parses (">v", "<=v", "!v", "!null",
// "null", bare equality); "&&" splits into independent entries; "||"
// accumulates values for matching paths into one list-valued entry (OR
// semantics); Contains/HasPrefix map onto the "~"/"^" prefixes.
//
// ContainsFold, HasSuffix, EqualFold, and HasEdge(With) have no
// operator-prefix encoding — they lower to no entries and must be driven
// through the compiler directly rather than through the flat grammar.
func Lower(p P) []query.PathValue {
	return lower(p)
}

func lower(p P) []query.PathValue {
	switch e := p.(type) {
	case *NaryExpr:
		groups := make([][]query.PathValue, len(e.Operands))
		for i, op := range e.Operands {
			groups[i] = lower(op)
		}
		if e.Op == "||" {
			return mergeOr(groups)
		}
		return concat(groups)
	case *UnaryExpr:
		return lowerNegated(e.X)
	case *BinaryExpr:
		return lowerBinary(e)
	case *CallExpr:
		return lowerCall(e)
	default:
		return nil
	}
}

func lowerNegated(x P) []query.PathValue {
	switch e := x.(type) {
	case *UnaryExpr:
		return lower(e.X) // double negation cancels
	case *BinaryExpr:
		return lowerBinary(negateBinary(e))
	case *NaryExpr:
		groups := make([][]query.PathValue, len(e.Operands))
		for i, op := range e.Operands {
			groups[i] = lowerNegated(op)
		}
		if e.Op == "&&" {
			return mergeOr(groups)
		}
		return concat(groups)
	default:
		return nil // no operator-prefix encoding for a negated call/field
	}
}

var flipOp = map[string]string{
	"==": "!=", "!=": "==",
	"<": ">=", ">=": "<",
	"<=": ">", ">": "<=",
	"in": "not in", "not in": "in",
}

func negateBinary(e *BinaryExpr) *BinaryExpr {
	op, ok := flipOp[e.Op]
	if !ok {
		op = e.Op
	}
	return &BinaryExpr{Op: op, L: e.L, R: e.R}
}

func concat(groups [][]query.PathValue) []query.PathValue {
	var out []query.PathValue
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// mergeOr merges same-path entries from multiple operand lowerings into a
// single list-valued entry each, the lowerer's representation of OR.
func mergeOr(groups [][]query.PathValue) []query.PathValue {
	byPath := map[string][]any{}
	var order []string
	for _, g := range groups {
		for _, pv := range g {
			if _, ok := byPath[pv.Path]; !ok {
				order = append(order, pv.Path)
			}
			byPath[pv.Path] = append(byPath[pv.Path], pv.Value)
		}
	}
	out := make([]query.PathValue, 0, len(order))
	for _, path := range order {
		vs := byPath[path]
		if len(vs) == 1 {
			out = append(out, query.PathValue{Path: path, Value: vs[0]})
			continue
		}
		out = append(out, query.PathValue{Path: path, Value: vs})
	}
	return out
}

func fieldName(p P) (string, bool) {
	f, ok := p.(fieldExpr)
	return string(f), ok
}

func rawValue(p P) (any, bool) {
	l, ok := p.(*litExpr)
	if !ok {
		return nil, false
	}
	return l.v, true
}

func isNilLit(p P) bool {
	_, ok := p.(nilLit)
	return ok
}

// rawString renders a value the operator-prefix grammar can embed after a
// prefix symbol: no quoting, since the compiler coerces this string back
// into the property's declared type later.
func rawString(v any) string {
	switch x := v.(type) {
	case []byte:
		return base64.StdEncoding.EncodeToString(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func lowerBinary(e *BinaryExpr) []query.PathValue {
	path, ok := fieldName(e.L)
	if !ok {
		return nil
	}
	switch e.Op {
	case "==":
		if isNilLit(e.R) {
			return []query.PathValue{{Path: path, Value: "null"}}
		}
		if v, ok := rawValue(e.R); ok {
			return []query.PathValue{{Path: path, Value: v}}
		}
	case "!=":
		if isNilLit(e.R) {
			return []query.PathValue{{Path: path, Value: "!null"}}
		}
		if v, ok := rawValue(e.R); ok {
			return []query.PathValue{{Path: path, Value: "!" + rawString(v)}}
		}
	case "<", "<=", ">", ">=":
		if v, ok := rawValue(e.R); ok {
			return []query.PathValue{{Path: path, Value: e.Op + rawString(v)}}
		}
	case "in":
		if l, ok := e.R.(*listLit); ok {
			return []query.PathValue{{Path: path, Value: l.vs}}
		}
	case "not in":
		if l, ok := e.R.(*listLit); ok {
			out := make([]query.PathValue, len(l.vs))
			for i, v := range l.vs {
				out[i] = query.PathValue{Path: path, Value: "!" + rawString(v)}
			}
			return out
		}
	}
	return nil
}

func lowerCall(e *CallExpr) []query.PathValue {
	if len(e.Args) < 2 {
		return nil
	}
	path, ok := fieldName(e.Args[0])
	if !ok {
		return nil
	}
	v, ok := rawValue(e.Args[1])
	if !ok {
		return nil
	}
	switch e.Name {
	case "contains":
		return []query.PathValue{{Path: path, Value: "~" + rawString(v)}}
	case "has_prefix":
		return []query.PathValue{{Path: path, Value: "^" + rawString(v)}}
	default:
		return nil
	}
}

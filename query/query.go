// Package query defines the flat query-request model shared by
// querylanguage and compile: a model type plus an ordered list of
// (path, value) pairs, the compiler's sole input shape once a typed
// predicate tree (or a caller's own flat pairs) has been lowered.
package query

import "reflect"

// PathValue is one compiled predicate path and its (possibly
// operator-prefixed, possibly list-valued) value.
type PathValue struct {
	Path  string
	Value any
}

// Request is a compiled query request: a model type, its ordered
// predicate pairs, and the compiler knobs that change how those pairs are
// interpreted. SkipJoins is a required field (see DESIGN.md's Open
// Question resolution) — there is deliberately no convenience constructor
// that defaults it to false.
type Request struct {
	Type       reflect.Type
	Pairs      []PathValue
	Columns    []string
	AliasPrefix string
	SkipJoins  bool
}

// NewRequest builds a Request for model value v (a zero value or pointer
// of the model type is sufficient; only its type is retained).
func NewRequest(v any, pairs []PathValue, skipJoins bool) Request {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return Request{Type: t, Pairs: pairs, SkipJoins: skipJoins}
}

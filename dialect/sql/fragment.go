package sql

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CaseMode controls case sensitivity for Fragment.EndsWith.
type CaseMode int

const (
	// CaseSensitive compares text as-is.
	CaseSensitive CaseMode = iota
	// CaseInsensitive folds both sides to upper-case before comparing.
	CaseInsensitive
)

// Fragment is an immutable node in a chain of SQL text fragments
// (spec.md §4.2). A chain of fragments forms one logical statement. Every
// method that would mutate a fragment instead returns a new chain; the
// receiver, and every fragment reachable from any other chain, is left
// untouched. Fragment is the single representation shared by the builder
// in this package and the query compiler: both only ever append to,
// inspect, or trim a chain, never write through a pointer they didn't just
// create.
type Fragment struct {
	text  string
	args  []any
	alias string
	next  *Fragment

	// isPrepared is true only for the single node produced by Prepare.
	isPrepared bool
}

// commentRe strips "-- line comments" from text during Prepare.
var commentRe = regexp.MustCompile(`--[^\n]*`)

// Frag constructs a single-node fragment chain from literal SQL text and
// its positional arguments.
func Frag(text string, args ...any) *Fragment {
	return &Fragment{text: text, args: args}
}

// clone returns a shallow, single-node copy of f with next severed.
func (f *Fragment) clone() *Fragment {
	if f == nil {
		return nil
	}
	args := make([]any, len(f.args))
	copy(args, f.args)
	return &Fragment{text: f.text, args: args, alias: f.alias}
}

// nodes returns a slice of cloned, detached copies of every node in the
// chain, in order.
func (f *Fragment) nodes() []*Fragment {
	var out []*Fragment
	for n := f; n != nil; n = n.next {
		out = append(out, n.clone())
	}
	return out
}

// relink wires a slice of detached nodes into a chain and returns its head.
func relink(nodes []*Fragment) *Fragment {
	if len(nodes) == 0 {
		return nil
	}
	for i := 0; i < len(nodes)-1; i++ {
		nodes[i].next = nodes[i+1]
	}
	nodes[len(nodes)-1].next = nil
	return nodes[0]
}

// Append returns a new chain with x linked after the receiver's last node.
// x is either a *Fragment (its own chain is spliced in, copied) or a string
// (a single new node is appended, with args as its argument list).
func (f *Fragment) Append(x any, args ...any) *Fragment {
	nodes := f.nodes()
	switch v := x.(type) {
	case *Fragment:
		nodes = append(nodes, v.nodes()...)
	case string:
		nodes = append(nodes, &Fragment{text: v, args: args})
	default:
		panic(fmt.Sprintf("sql: Fragment.Append: unsupported type %T", x))
	}
	return relink(nodes)
}

// IsEmpty reports whether the chain has no fragments, or every fragment in
// it has empty text and no alias.
func (f *Fragment) IsEmpty() bool {
	for n := f; n != nil; n = n.next {
		if n.text != "" || n.alias != "" {
			return false
		}
	}
	return true
}

// Last returns a detached, single-node copy of the chain's final fragment,
// or nil if the chain is empty.
func (f *Fragment) Last() *Fragment {
	if f == nil {
		return nil
	}
	n := f
	for n.next != nil {
		n = n.next
	}
	return n.clone()
}

// EndsWith reports whether the text of the chain's last fragment ends with
// s, per the given case mode.
func (f *Fragment) EndsWith(s string, mode CaseMode) bool {
	last := f.Last()
	if last == nil {
		return false
	}
	t, want := strings.TrimRight(last.text, " "), s
	if mode == CaseInsensitive {
		t, want = strings.ToUpper(t), strings.ToUpper(want)
	}
	return strings.HasSuffix(t, want)
}

// Contains reports whether any fragment's text in the chain contains s.
func (f *Fragment) Contains(s string) bool {
	for n := f; n != nil; n = n.next {
		if strings.Contains(n.text, s) {
			return true
		}
	}
	return false
}

// RemoveLast returns a new chain with the final fragment removed.
func (f *Fragment) RemoveLast() *Fragment {
	nodes := f.nodes()
	if len(nodes) == 0 {
		return nil
	}
	return relink(nodes[:len(nodes)-1])
}

// RemoveMatching returns a new chain with the first fragment whose text
// matches re excised, and the removed fragment (detached, or nil if no
// fragment matched).
func (f *Fragment) RemoveMatching(re *regexp.Regexp) (*Fragment, *Fragment) {
	nodes := f.nodes()
	for i, n := range nodes {
		if re.MatchString(n.text) {
			removed := n
			remaining := append(append([]*Fragment{}, nodes[:i]...), nodes[i+1:]...)
			return relink(remaining), removed
		}
	}
	return relink(nodes), nil
}

// Reduce returns a new chain with empty fragments (no text, no alias)
// dropped, preserving the order of the rest. Reduce is idempotent:
// Reduce(Reduce(s)) == Reduce(s).
func (f *Fragment) Reduce() *Fragment {
	var kept []*Fragment
	for _, n := range f.nodes() {
		if n.text == "" && n.alias == "" {
			continue
		}
		kept = append(kept, n)
	}
	return relink(kept)
}

// Prepare collapses the chain into a single node: comments are stripped,
// carriage returns folded to spaces, and text/args concatenated in order.
// It panics with an ArityError-shaped message if the number of "?"
// placeholders does not equal the number of bound arguments — an
// ArityError is a programmer error and must fail fast, not be swallowed.
func (f *Fragment) Prepare() *Fragment {
	var sb strings.Builder
	var args []any
	for n := f; n != nil; n = n.next {
		text := commentRe.ReplaceAllString(n.text, "")
		text = strings.ReplaceAll(text, "\r", " ")
		if sb.Len() > 0 && text != "" && !strings.HasSuffix(sb.String(), " ") && !strings.HasPrefix(text, " ") {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
		args = append(args, n.args...)
	}
	out := strings.TrimSpace(sb.String())
	placeholders := strings.Count(out, "?")
	if placeholders != len(args) {
		panic(&ArityError{Placeholders: placeholders, Args: len(args), Text: out})
	}
	return &Fragment{text: out, args: args, isPrepared: true}
}

// Text returns the raw SQL text of a single-node (typically prepared)
// fragment. For a multi-node chain it returns only the head's text; call
// Prepare first to get the full statement.
func (f *Fragment) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Args returns the argument list bound to a single-node (typically
// prepared) fragment.
func (f *Fragment) Args() []any {
	if f == nil {
		return nil
	}
	return f.args
}

// IsPrepared reports whether f is the output of Prepare.
func (f *Fragment) IsPrepared() bool { return f != nil && f.isPrepared }

// ArityError is raised when Prepare finds that the placeholder count and
// argument count of a flattened statement disagree (spec.md §7).
type ArityError struct {
	Placeholders int
	Args         int
	Text         string
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("sql: arity mismatch: %d placeholders, %d args in %q", e.Placeholders, e.Args, e.Text)
}

// ToLiteral renders the chain with every "?" substituted by its quoted
// argument value, for tracing only — never for execution.
func (f *Fragment) ToLiteral() string {
	p := f.Prepare()
	var sb strings.Builder
	argi := 0
	for i := 0; i < len(p.text); i++ {
		if p.text[i] == '?' && argi < len(p.args) {
			sb.WriteString(literal(p.args[argi]))
			argi++
			continue
		}
		sb.WriteByte(p.text[i])
	}
	return sb.String()
}

func literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case uuid.UUID:
		return "'" + x.String() + "'"
	case time.Time:
		return "'" + x.Format(time.RFC3339) + "'"
	case fmt.Stringer:
		return "'" + strings.ReplaceAll(x.String(), "'", "''") + "'"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case float32, float64:
		return fmt.Sprintf("%v", x)
	default:
		return "'" + strings.ReplaceAll(fmt.Sprintf("%v", x), "'", "''") + "'"
	}
}

package sql

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ormpath/ormpath"
)

// foldCaser applies Unicode case folding (not just ASCII lower-casing) to
// a comparison value before it is bound alongside a LOWER(...)-wrapped SQL
// comparison. Some dialects' own LOWER() is ASCII-only (sqlite's built-in
// one, notably); folding the bound value here catches what the SQL-side
// LOWER() alone would miss.
var foldCaser = cases.Fold()

// Querier is satisfied by anything that can render itself to SQL text and
// a matching argument list.
type Querier interface {
	Query() (string, []any)
}

// Predicate is a boolean SQL condition, backed by an immutable Fragment.
// Predicate values compose via And/Or/Not and are consumed by
// Selector.Where, UpdateBuilder.Where, and DeleteBuilder.Where.
type Predicate struct {
	frag *Fragment
}

func newPredicate(text string, args ...any) *Predicate {
	return &Predicate{frag: Frag(text, args...)}
}

// EQ returns a "col = ?" predicate.
func EQ(col string, v any) *Predicate { return newPredicate(col+" = ?", v) }

// NEQ returns a "col <> ?" predicate.
func NEQ(col string, v any) *Predicate { return newPredicate(col+" <> ?", v) }

// GT returns a "col > ?" predicate.
func GT(col string, v any) *Predicate { return newPredicate(col+" > ?", v) }

// GTE returns a "col >= ?" predicate.
func GTE(col string, v any) *Predicate { return newPredicate(col+" >= ?", v) }

// LT returns a "col < ?" predicate.
func LT(col string, v any) *Predicate { return newPredicate(col+" < ?", v) }

// LTE returns a "col <= ?" predicate.
func LTE(col string, v any) *Predicate { return newPredicate(col+" <= ?", v) }

// In returns a "col IN (?, ?, ...)" predicate. An empty vs renders a
// tautologically-false predicate ("1 = 0") rather than invalid SQL.
func In(col string, vs ...any) *Predicate {
	if len(vs) == 0 {
		return newPredicate("1 = 0")
	}
	ph := make([]string, len(vs))
	for i := range vs {
		ph[i] = "?"
	}
	return newPredicate(col+" IN ("+strings.Join(ph, ", ")+")", vs...)
}

// NotIn returns a "col NOT IN (?, ?, ...)" predicate.
func NotIn(col string, vs ...any) *Predicate {
	if len(vs) == 0 {
		return newPredicate("1 = 1")
	}
	ph := make([]string, len(vs))
	for i := range vs {
		ph[i] = "?"
	}
	return newPredicate(col+" NOT IN ("+strings.Join(ph, ", ")+")", vs...)
}

// Contains returns a "col LIKE '%v%'" predicate.
func Contains(col, v string) *Predicate { return newPredicate(col+" LIKE ?", "%"+v+"%") }

// ContainsFold is case-insensitive Contains.
func ContainsFold(col, v string) *Predicate {
	return newPredicate("LOWER("+col+") LIKE LOWER(?)", "%"+foldCaser.String(v)+"%")
}

// HasPrefix returns a "col LIKE 'v%'" predicate.
func HasPrefix(col, v string) *Predicate { return newPredicate(col+" LIKE ?", v+"%") }

// HasSuffix returns a "col LIKE '%v'" predicate.
func HasSuffix(col, v string) *Predicate { return newPredicate(col+" LIKE ?", "%"+v) }

// EqualFold returns a case-insensitive equality predicate.
func EqualFold(col, v string) *Predicate {
	return newPredicate("LOWER("+col+") = LOWER(?)", foldCaser.String(v))
}

// ColumnEQ returns a "left = right" predicate comparing two column
// references directly, with no bound parameter — used by correlated
// sub-queries to join an inner alias back to an outer one.
func ColumnEQ(left, right string) *Predicate { return newPredicate(left + " = " + right) }

// LikeFold returns a case-insensitive LIKE predicate using pattern as-is,
// with no wildcard wrapping — the caller supplies any "%"/"_" itself. Used
// where a caller's own wildcard placement must be preserved rather than
// always wrapped, unlike Contains/HasPrefix/HasSuffix.
func LikeFold(col, pattern string) *Predicate {
	return newPredicate("LOWER("+col+") LIKE LOWER(?)", foldCaser.String(pattern))
}

// IsNull returns a "col IS NULL" predicate.
func IsNull(col string) *Predicate { return newPredicate(col + " IS NULL") }

// NotNull returns a "col IS NOT NULL" predicate.
func NotNull(col string) *Predicate { return newPredicate(col + " IS NOT NULL") }

// joinPreds renders a list of predicates into one "(p1 OP p2 OP ...)" node.
func joinPreds(op string, preds ...*Predicate) *Predicate {
	var texts []string
	var args []any
	for _, p := range preds {
		if p == nil {
			continue
		}
		prep := p.frag.Prepare()
		texts = append(texts, prep.text)
		args = append(args, prep.args...)
	}
	switch len(texts) {
	case 0:
		return newPredicate("")
	case 1:
		return &Predicate{frag: Frag(texts[0], args...)}
	default:
		return &Predicate{frag: Frag("("+strings.Join(texts, " "+op+" ")+")", args...)}
	}
}

// And combines predicates with AND, parenthesized as a group.
func And(preds ...*Predicate) *Predicate { return joinPreds("AND", preds...) }

// Or combines predicates with OR, parenthesized as a group.
func Or(preds ...*Predicate) *Predicate { return joinPreds("OR", preds...) }

// Not negates a predicate.
func Not(p *Predicate) *Predicate {
	prep := p.frag.Prepare()
	return &Predicate{frag: Frag("NOT ("+prep.text+")", prep.args...)}
}

// Exists wraps sub as an "EXISTS (...)" predicate, inlining its rendered
// text and argument list. The inlined text keeps sub's placeholders in
// raw "?" form (RawQuery, not Query) so the enclosing statement's single
// finalize pass numbers every placeholder, inner and outer, in one
// left-to-right sequence.
func Exists(sub *Selector) *Predicate {
	text, args := sub.RawQuery()
	return newPredicate("EXISTS ("+text+")", args...)
}

// NotExists wraps sub as a "NOT EXISTS (...)" predicate.
func NotExists(sub *Selector) *Predicate {
	text, args := sub.RawQuery()
	return newPredicate("NOT EXISTS ("+text+")", args...)
}

// FieldEQ is the generic field-level equivalent of EQ, used by the
// per-type field wrappers in predicate.go (e.g. StringField.EQ).
func FieldEQ[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(EQ(s.C(name), any(v))) }
}

// FieldNEQ is the generic field-level equivalent of NEQ.
func FieldNEQ[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(NEQ(s.C(name), any(v))) }
}

// FieldGT is the generic field-level equivalent of GT.
func FieldGT[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(GT(s.C(name), any(v))) }
}

// FieldGTE is the generic field-level equivalent of GTE.
func FieldGTE[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(GTE(s.C(name), any(v))) }
}

// FieldLT is the generic field-level equivalent of LT.
func FieldLT[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(LT(s.C(name), any(v))) }
}

// FieldLTE is the generic field-level equivalent of LTE.
func FieldLTE[T any](name string, v T) func(*Selector) {
	return func(s *Selector) { s.Where(LTE(s.C(name), any(v))) }
}

// FieldIn is the generic field-level equivalent of In.
func FieldIn[T any](name string, vs ...T) func(*Selector) {
	return func(s *Selector) {
		anys := make([]any, len(vs))
		for i := range vs {
			anys[i] = vs[i]
		}
		s.Where(In(s.C(name), anys...))
	}
}

// FieldNotIn is the generic field-level equivalent of NotIn.
func FieldNotIn[T any](name string, vs ...T) func(*Selector) {
	return func(s *Selector) {
		anys := make([]any, len(vs))
		for i := range vs {
			anys[i] = vs[i]
		}
		s.Where(NotIn(s.C(name), anys...))
	}
}

// FieldContains is the field-level equivalent of Contains (string fields only).
func FieldContains(name, v string) func(*Selector) {
	return func(s *Selector) { s.Where(Contains(s.C(name), v)) }
}

// FieldContainsFold is the field-level equivalent of ContainsFold.
func FieldContainsFold(name, v string) func(*Selector) {
	return func(s *Selector) { s.Where(ContainsFold(s.C(name), v)) }
}

// FieldHasPrefix is the field-level equivalent of HasPrefix.
func FieldHasPrefix(name, v string) func(*Selector) {
	return func(s *Selector) { s.Where(HasPrefix(s.C(name), v)) }
}

// FieldHasSuffix is the field-level equivalent of HasSuffix.
func FieldHasSuffix(name, v string) func(*Selector) {
	return func(s *Selector) { s.Where(HasSuffix(s.C(name), v)) }
}

// FieldEqualFold is the field-level equivalent of EqualFold.
func FieldEqualFold(name, v string) func(*Selector) {
	return func(s *Selector) { s.Where(EqualFold(s.C(name), v)) }
}

// FieldIsNull is the field-level equivalent of IsNull.
func FieldIsNull(name string) func(*Selector) {
	return func(s *Selector) { s.Where(IsNull(s.C(name))) }
}

// FieldNotNull is the field-level equivalent of NotNull.
func FieldNotNull(name string) func(*Selector) {
	return func(s *Selector) { s.Where(NotNull(s.C(name))) }
}

// SelectTable is a table reference usable in FROM/JOIN clauses, optionally
// aliased.
type SelectTable struct {
	name  string
	alias string
}

// Table returns a reference to a base table.
func Table(name string) *SelectTable { return &SelectTable{name: name} }

// As returns a copy of t aliased to alias.
func (t *SelectTable) As(alias string) *SelectTable {
	return &SelectTable{name: t.name, alias: alias}
}

// Name returns the table's own name (ignoring any alias).
func (t *SelectTable) Name() string { return t.name }

// Ref returns the identifier a column qualifies against: the alias if set,
// else the table name.
func (t *SelectTable) Ref() string {
	if t.alias != "" {
		return t.alias
	}
	return t.name
}

// C qualifies a column name with this table's reference.
func (t *SelectTable) C(column string) string { return t.Ref() + "." + column }

func (t *SelectTable) from() string {
	if t.alias != "" {
		return t.name + " AS " + t.alias
	}
	return t.name
}

type joinClause struct {
	kind  string
	table *SelectTable
	on    *Predicate
}

// Selector builds a SELECT statement. It is a mutable fluent wrapper over
// an accumulating Fragment chain; Query/Prepare flatten it, per spec.md
// §4.2, into one immutable statement.
type Selector struct {
	dialectName string
	provider    providerFn
	cols        []string
	from        *SelectTable
	joins       []joinClause
	where       *Predicate
	order       []string
	limit       *int
	offset      *int
	distinct    bool
	subArgs     []any
}

// NewSelector returns an empty Selector for the named dialect.
func NewSelector(dialectName string) *Selector {
	return &Selector{dialectName: dialectName, provider: lookupProvider(dialectName)}
}

// C qualifies a bare column name with the selector's current table alias,
// if one is set, so field predicates built before From is called still
// resolve to an unqualified column name.
func (s *Selector) C(column string) string {
	if s.from != nil && s.from.alias != "" {
		return s.from.alias + "." + column
	}
	return column
}

// Select sets the projection columns, replacing any previous selection.
func (s *Selector) Select(cols ...string) *Selector {
	s.cols = cols
	return s
}

// Distinct marks the selection as SELECT DISTINCT.
func (s *Selector) Distinct() *Selector {
	s.distinct = true
	return s
}

// From sets the base table.
func (s *Selector) From(t *SelectTable) *Selector {
	s.from = t
	return s
}

// joinBuilder is returned by Join to capture the pending ON clause.
type joinBuilder struct {
	s     *Selector
	table *SelectTable
	kind  string
}

// Join adds an INNER JOIN against t; call On to supply the join condition.
func (s *Selector) Join(t *SelectTable) *joinBuilder { return &joinBuilder{s: s, table: t, kind: "INNER"} }

// LeftJoin adds a LEFT JOIN against t.
func (s *Selector) LeftJoin(t *SelectTable) *joinBuilder { return &joinBuilder{s: s, table: t, kind: "LEFT"} }

// On supplies the join condition "left = right", comparing two columns
// rather than binding right as a parameter.
func (jb *joinBuilder) On(left, right string) *Selector {
	jb.s.joins = append(jb.s.joins, joinClause{kind: jb.kind, table: jb.table, on: &Predicate{frag: Frag(left + " = " + right)}})
	return jb.s
}

// OnP supplies an arbitrary join predicate.
func (jb *joinBuilder) OnP(p *Predicate) *Selector {
	jb.s.joins = append(jb.s.joins, joinClause{kind: jb.kind, table: jb.table, on: p})
	return jb.s
}

// Where sets (or AND-combines with) the WHERE predicate. Calling Where
// again narrows the existing condition with AND, matching the "smart
// prefix" behavior spec.md §4.2 describes for the builder.
func (s *Selector) Where(p *Predicate) *Selector {
	if s.where == nil {
		s.where = p
		return s
	}
	s.where = And(s.where, p)
	return s
}

// CurrentWhere returns the predicate accumulated so far, or nil if Where
// has not been called yet. Exposed for rewrite hooks (spec.md §4.6), which
// may read it but must not mutate it.
func (s *Selector) CurrentWhere() *Predicate { return s.where }

// OrderBy appends ascending ORDER BY columns.
func (s *Selector) OrderBy(cols ...string) *Selector {
	s.order = append(s.order, cols...)
	return s
}

// OrderByDesc appends descending ORDER BY columns.
func (s *Selector) OrderByDesc(cols ...string) *Selector {
	for _, c := range cols {
		s.order = append(s.order, c+" DESC")
	}
	return s
}

// Limit sets the row limit. Rendering is dialect-aware at Query time.
func (s *Selector) Limit(n int) *Selector {
	s.limit = &n
	return s
}

// Offset sets the row offset. Rendering is dialect-aware at Query time.
func (s *Selector) Offset(n int) *Selector {
	s.offset = &n
	return s
}

// RemoveLimit clears and returns the previously set limit (0, false if unset).
func (s *Selector) RemoveLimit() (int, bool) {
	if s.limit == nil {
		return 0, false
	}
	n := *s.limit
	s.limit = nil
	return n, true
}

// RemoveOffset clears and returns the previously set offset (0, false if unset).
func (s *Selector) RemoveOffset() (int, bool) {
	if s.offset == nil {
		return 0, false
	}
	n := *s.offset
	s.offset = nil
	return n, true
}

// RemoveOrderBy clears and returns the previously set ORDER BY columns.
func (s *Selector) RemoveOrderBy() []string {
	cols := s.order
	s.order = nil
	return cols
}

// subAliasRe recognizes the SA0, SA1, ... aliases WrapAsSubQuery generates,
// independent of the predicate compiler's sqN aliasing (spec.md §4.5
// "Sub-query alias generation").
var subAliasRe = regexp.MustCompile(`^SA(\d+)$`)

// WrapAsSubQuery wraps the current statement as "SELECT cols FROM (...)
// AS SAn", where n is derived from the current from-alias (or 0).
func (s *Selector) WrapAsSubQuery(cols ...string) *Selector {
	inner := s.clone()
	n := 0
	if inner.from != nil {
		if m := subAliasRe.FindStringSubmatch(inner.from.alias); m != nil {
			v, _ := strconv.Atoi(m[1])
			n = v + 1
		}
	}
	alias := "SA" + strconv.Itoa(n)
	sub, args := inner.RawQuery()
	wrapped := &Selector{dialectName: s.dialectName, provider: s.provider}
	wrapped.cols = cols
	wrapped.from = &SelectTable{name: "(" + sub + ")", alias: alias}
	wrapped.subArgs = args
	return wrapped
}

func (s *Selector) clone() *Selector {
	c := *s
	return &c
}

// providerFn resolves feature flags for Limit/Offset rendering without
// introducing an import of the dialect package's Provider registry at
// construction time (kept as a function value to avoid a hard import
// cycle between dialect and dialect/sql).
type providerFn func() (limitOffset, fetchOffset bool)

var providerRegistry = map[string]providerFn{}

// RegisterDialectFeatures lets the dialect package (or a test) declare
// which Limit/Offset syntax a named dialect supports.
func RegisterDialectFeatures(name string, limitOffset, fetchOffset bool) {
	providerRegistry[name] = func() (bool, bool) { return limitOffset, fetchOffset }
}

func lookupProvider(name string) providerFn {
	if p, ok := providerRegistry[name]; ok {
		return p
	}
	return func() (bool, bool) { return true, false }
}

// Query renders the selector to SQL text and a flat argument list. Limit
// and Offset are rendered per the dialect's advertised feature: LIMIT/OFFSET
// if it has LimitOffset, FETCH FIRST/OFFSET if it has FetchOffset, and a
// panic carrying *ormpath.DialectUnsupportedError otherwise (recovered by
// the compiler boundary; spec.md's fail-fast ArityError/DialectUnsupported
// contract applies to the builder's assertions as well as the compiler's).
func (s *Selector) Query() (string, []any) {
	text, args := s.assemble()
	return finalize(s.dialectName, text, args)
}

// RawQuery renders the selector like Query but skips the dialect-specific
// placeholder pass, leaving "?" markers in place. Used when this selector
// is being inlined as a sub-fragment of a larger statement (Exists,
// NotExists) whose own Query call will finalize the whole composed text
// in one pass — finalizing twice would double-number Postgres's "$N"
// placeholders.
func (s *Selector) RawQuery() (string, []any) {
	return s.assemble()
}

func (s *Selector) assemble() (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString("SELECT ")
	if s.distinct {
		b.WriteString("DISTINCT ")
	}
	if len(s.cols) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(s.cols, ", "))
	}
	if s.from != nil {
		b.WriteString(" FROM ")
		b.WriteString(s.from.from())
		args = append(args, s.subArgs...)
	}
	for _, j := range s.joins {
		onPrep := j.on.frag.Prepare()
		b.WriteString(" " + j.kind + " JOIN " + j.table.from() + " ON (" + onPrep.text + ")")
		args = append(args, onPrep.args...)
	}
	if s.where != nil {
		prep := s.where.frag.Prepare()
		if prep.text != "" {
			b.WriteString(" WHERE " + prep.text)
			args = append(args, prep.args...)
		}
	}
	if len(s.order) > 0 {
		b.WriteString(" ORDER BY " + strings.Join(s.order, ", "))
	}
	limitOffset, fetchOffset := s.provider()
	var limitClause, offsetClause string
	switch {
	case s.limit != nil && limitOffset:
		limitClause = " LIMIT " + strconv.Itoa(*s.limit)
	case s.limit != nil && fetchOffset:
		limitClause = " FETCH FIRST " + strconv.Itoa(*s.limit) + " ROWS ONLY"
	case s.limit != nil:
		panic(ormpath.NewDialectUnsupportedError(s.dialectName, "LIMIT"))
	}
	switch {
	case s.offset != nil && limitOffset:
		offsetClause = " OFFSET " + strconv.Itoa(*s.offset)
	case s.offset != nil && fetchOffset:
		offsetClause = " OFFSET " + strconv.Itoa(*s.offset) + " ROW"
	case s.offset != nil:
		panic(ormpath.NewDialectUnsupportedError(s.dialectName, "OFFSET"))
	}
	if limitOffset {
		b.WriteString(limitClause + offsetClause)
	} else {
		b.WriteString(offsetClause + limitClause)
	}
	return b.String(), args
}

// finalize renders dialect-specific placeholder syntax: "$1, $2, ..." for
// Postgres, "?" for MySQL/SQLite.
func finalize(dialectName, text string, args []any) (string, []any) {
	if dialectName != "postgres" {
		return text, args
	}
	var b strings.Builder
	n := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String(), args
}

// InsertBuilder builds an INSERT statement.
type InsertBuilder struct {
	dialectName string
	table       string
	cols        []string
	values      [][]any
	returning   []string
	defaultRow  bool
}

// Insert starts an INSERT into table.
func Insert(dialectName, table string) *InsertBuilder {
	return &InsertBuilder{dialectName: dialectName, table: table}
}

// Columns sets the column list.
func (b *InsertBuilder) Columns(cols ...string) *InsertBuilder {
	b.cols = cols
	return b
}

// Values appends one row of values, positional to Columns.
func (b *InsertBuilder) Values(vs ...any) *InsertBuilder {
	b.values = append(b.values, vs)
	return b
}

// Default marks the statement as "INSERT INTO table DEFAULT VALUES".
func (b *InsertBuilder) Default() *InsertBuilder {
	b.defaultRow = true
	return b
}

// Returning sets a RETURNING column list. Query emits it for every
// dialect; the Provider.Features ReturningClause bit is not consulted.
func (b *InsertBuilder) Returning(cols ...string) *InsertBuilder {
	b.returning = cols
	return b
}

// Query renders the statement.
func (b *InsertBuilder) Query() (string, []any) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO " + b.table)
	var args []any
	switch {
	case b.defaultRow:
		sb.WriteString(" DEFAULT VALUES")
	case len(b.cols) > 0:
		sb.WriteString(" (" + strings.Join(b.cols, ", ") + ") VALUES ")
		rows := make([]string, len(b.values))
		for i, row := range b.values {
			ph := make([]string, len(row))
			for j := range row {
				ph[j] = "?"
			}
			rows[i] = "(" + strings.Join(ph, ", ") + ")"
			args = append(args, row...)
		}
		sb.WriteString(strings.Join(rows, ", "))
	}
	if len(b.returning) > 0 {
		sb.WriteString(" RETURNING " + strings.Join(b.returning, ", "))
	}
	return finalize(b.dialectName, sb.String(), args)
}

// UpdateBuilder builds an UPDATE statement.
type UpdateBuilder struct {
	dialectName string
	table       string
	sets        []string
	args        []any
	where       *Predicate
}

// Update starts an UPDATE of table.
func Update(dialectName, table string) *UpdateBuilder {
	return &UpdateBuilder{dialectName: dialectName, table: table}
}

// Set appends "col = ?" to the SET clause.
func (b *UpdateBuilder) Set(col string, v any) *UpdateBuilder {
	b.sets = append(b.sets, col+" = ?")
	b.args = append(b.args, v)
	return b
}

// Where sets the WHERE predicate.
func (b *UpdateBuilder) Where(p *Predicate) *UpdateBuilder {
	b.where = p
	return b
}

// Query renders the statement.
func (b *UpdateBuilder) Query() (string, []any) {
	var sb strings.Builder
	sb.WriteString("UPDATE " + b.table + " SET " + strings.Join(b.sets, ", "))
	args := append([]any{}, b.args...)
	if b.where != nil {
		prep := b.where.frag.Prepare()
		sb.WriteString(" WHERE " + prep.text)
		args = append(args, prep.args...)
	}
	return finalize(b.dialectName, sb.String(), args)
}

// DeleteBuilder builds a DELETE statement.
type DeleteBuilder struct {
	dialectName string
	table       string
	where       *Predicate
}

// Delete starts a DELETE from table.
func Delete(dialectName, table string) *DeleteBuilder {
	return &DeleteBuilder{dialectName: dialectName, table: table}
}

// Where sets the WHERE predicate.
func (b *DeleteBuilder) Where(p *Predicate) *DeleteBuilder {
	b.where = p
	return b
}

// Query renders the statement.
func (b *DeleteBuilder) Query() (string, []any) {
	var sb strings.Builder
	sb.WriteString("DELETE FROM " + b.table)
	var args []any
	if b.where != nil {
		prep := b.where.frag.Prepare()
		sb.WriteString(" WHERE " + prep.text)
		args = append(args, prep.args...)
	}
	return finalize(b.dialectName, sb.String(), args)
}

// DialectBuilder is the entry point returned by Dialect(name), mirroring
// the teacher's "Dialect(d).Select(...)/.Insert(...)/..." fluent style.
type DialectBuilder struct {
	name string
}

// Dialect returns a builder scoped to the named dialect.
func Dialect(name string) *DialectBuilder { return &DialectBuilder{name: name} }

// Select starts a SELECT statement.
func (d *DialectBuilder) Select(cols ...string) *Selector {
	return NewSelector(d.name).Select(cols...)
}

// Insert starts an INSERT statement.
func (d *DialectBuilder) Insert(table string) *InsertBuilder { return Insert(d.name, table) }

// Update starts an UPDATE statement.
func (d *DialectBuilder) Update(table string) *UpdateBuilder { return Update(d.name, table) }

// Delete starts a DELETE statement.
func (d *DialectBuilder) Delete(table string) *DeleteBuilder { return Delete(d.name, table) }

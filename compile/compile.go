// Package compile is the query compiler (spec.md §4.5): the core
// subsystem that turns a model type and a flat, ordered list of
// (path, value) pairs into a single dialect-specific SELECT statement,
// resolving hierarchy joins, existence sub-queries for collection and
// reference navigation, polymorphic casts, and rewrite-hook overrides
// along the way.
package compile

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/ormpath/ormpath"
	"github.com/ormpath/ormpath/catalog"
	"github.com/ormpath/ormpath/dialect"
	sqlb "github.com/ormpath/ormpath/dialect/sql"
	"github.com/ormpath/ormpath/hooks"
	"github.com/ormpath/ormpath/pathlang"
	"github.com/ormpath/ormpath/query"
)

// joinCacheKey identifies one hierarchy-join computation: a base type under
// a given alias prefix.
type joinCacheKey struct {
	aliasPrefix string
	table       reflect.Type
}

type joinStep struct {
	table   *catalog.TableDescriptor
	alias   string
	onLeft  string
	onRight string
	filter  *sqlb.Predicate
}

type joinCacheEntry struct {
	steps  []joinStep
	scoped []*catalog.TableDescriptor
}

// Compiler compiles query.Request values into dialect-specific SQL text
// and a flat argument list. One Compiler is shared process-wide; its join
// cache and schema catalog are safe for concurrent use.
type Compiler struct {
	Catalog   *catalog.Catalog
	Providers map[string]dialect.Provider
	Hooks     *hooks.Registry

	joinCache sync.Map // joinCacheKey -> *joinCacheEntry
}

// New returns a Compiler backed by cat, the named dialect providers, and
// registry (an empty registry is created if registry is nil).
func New(cat *catalog.Catalog, providers map[string]dialect.Provider, registry *hooks.Registry) *Compiler {
	if registry == nil {
		registry = hooks.NewRegistry()
	}
	return &Compiler{Catalog: cat, Providers: providers, Hooks: registry}
}

// Compile renders req against the named dialect. Panics raised by the
// builder for a fail-fast programmer error (fragment arity mismatch,
// unsupported dialect feature) are recovered here and converted to the
// matching error kind (spec.md §7) and returned as err; any other panic is
// re-raised.
func (c *Compiler) Compile(dialectName string, req query.Request) (text string, args []any, err error) {
	prov, ok := c.Providers[dialectName]
	if !ok {
		return "", nil, ormpath.NewDialectUnsupportedError(dialectName, "dialect not registered")
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *sqlb.ArityError:
			err = ormpath.NewArityError(e.Placeholders, e.Args)
		case *ormpath.DialectUnsupportedError:
			err = e
		default:
			panic(r)
		}
	}()

	sel, _, buildErr := c.build(dialectName, prov, req)
	if buildErr != nil {
		return "", nil, buildErr
	}
	text, args = sel.Query()
	return text, args, nil
}

// build runs the compiler's algorithm (spec.md §4.5 "Algorithm") for one
// request, returning the selector and the final scoped-tables set S.
func (c *Compiler) build(dialectName string, prov dialect.Provider, req query.Request) (*sqlb.Selector, []*catalog.TableDescriptor, error) {
	t0, err := c.Catalog.TableOf(req.Type)
	if err != nil {
		return nil, nil, err
	}

	pairs := req.Pairs
	skipJoins := req.SkipJoins
	if skipJoins {
		t0, pairs = retargetForSkipJoins(c.Catalog, t0, pairs)
	}

	sel := sqlb.NewSelector(dialectName)

	var steps []joinStep
	scoped := []*catalog.TableDescriptor{t0}
	if !skipJoins {
		steps, scoped, err = c.hierarchyJoins(req.AliasPrefix, t0)
		if err != nil {
			return nil, nil, err
		}
	}

	baseRef := tableRef(req.AliasPrefix, t0)
	if req.AliasPrefix == "" {
		sel.From(sqlb.Table(t0.Name))
	} else {
		sel.From(sqlb.Table(t0.Name).As(baseRef))
	}
	for _, step := range steps {
		jb := sel.Join(sqlb.Table(step.table.Name).As(step.alias))
		on := sqlb.ColumnEQ(step.onLeft, step.onRight)
		if step.filter != nil {
			on = sqlb.And(on, step.filter)
		}
		sel = jb.OnP(on)
	}

	cols := c.projection(prov, t0, req.AliasPrefix, scoped, req.Columns)
	if cols != nil {
		sel.Select(cols...)
	}

	groups := groupByPathCast(pairs)
	for _, g := range groups {
		if err := c.processGroup(dialectName, prov, sel, t0, req.AliasPrefix, scoped, g); err != nil {
			return nil, nil, err
		}
	}

	return sel, scoped, nil
}

// retargetForSkipJoins implements step 2 of the algorithm: when skipJoins
// is set and Q touches no column of t0 (ignoring an obsoletionTime
// sentinel), the compiler retargets to the first always-join foreign-key
// parent and drops the obsoletionTime entry, avoiding an unnecessary join.
// Per DESIGN.md's Open Question resolution, the retarget only applies to
// a type carrying the versioned trait — an unversioned type's
// obsoletionTime-less predicate set has no sentinel to special-case.
func retargetForSkipJoins(cat *catalog.Catalog, t0 *catalog.TableDescriptor, pairs []query.PathValue) (*catalog.TableDescriptor, []query.PathValue) {
	if !t0.Versioned {
		return t0, pairs
	}
	for _, pv := range pairs {
		pp, ok := pathlang.Parse(pv.Path)
		if !ok || pp.Path == "obsoletionTime" {
			continue
		}
		if _, ok := t0.ColumnForProperty(pp.Path); ok {
			return t0, pairs
		}
	}
	var target *catalog.TableDescriptor
	for _, col := range t0.Columns {
		if col.AlwaysJoin && col.ForeignKey != nil {
			if p, ok := cat.TableNamed(col.ForeignKey.TargetTable); ok {
				target = p
				break
			}
		}
	}
	if target == nil {
		return t0, pairs
	}
	filtered := make([]query.PathValue, 0, len(pairs))
	for _, pv := range pairs {
		if pp, ok := pathlang.Parse(pv.Path); ok && pp.Path == "obsoletionTime" {
			continue
		}
		filtered = append(filtered, pv)
	}
	return target, filtered
}

// hierarchyJoins returns the INNER JOIN chain that threads t0 up through
// every always-join foreign key it declares, consulting and populating the
// process-wide join cache keyed by (aliasPrefix, t0.Type).
func (c *Compiler) hierarchyJoins(aliasPrefix string, t0 *catalog.TableDescriptor) ([]joinStep, []*catalog.TableDescriptor, error) {
	key := joinCacheKey{aliasPrefix: aliasPrefix, table: t0.Type}
	if v, ok := c.joinCache.Load(key); ok {
		e := v.(*joinCacheEntry)
		return e.steps, e.scoped, nil
	}

	var steps []joinStep
	scoped := []*catalog.TableDescriptor{t0}
	seen := map[string]bool{t0.Name: true}

	var walk func(td *catalog.TableDescriptor, leftRef string) error
	walk = func(td *catalog.TableDescriptor, leftRef string) error {
		for _, col := range td.Columns {
			if !col.AlwaysJoin || col.ForeignKey == nil {
				continue
			}
			parent, ok := c.Catalog.TableNamed(col.ForeignKey.TargetTable)
			if !ok {
				return ormpath.NewSchemaError(td.Name, "always-join target "+col.ForeignKey.TargetTable+" is not in the catalog")
			}
			if seen[parent.Name] {
				continue
			}
			seen[parent.Name] = true
			alias := tableRef(aliasPrefix, parent)
			steps = append(steps, joinStep{
				table:   parent,
				alias:   alias,
				onLeft:  leftRef + "." + col.Name,
				onRight: alias + "." + col.ForeignKey.TargetColumn,
				filter:  joinFilterPredicate(parent, alias, col.JoinFilters),
			})
			scoped = append(scoped, parent)
			if err := walk(parent, alias); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t0, tableRef(aliasPrefix, t0)); err != nil {
		return nil, nil, err
	}

	c.joinCache.Store(key, &joinCacheEntry{steps: steps, scoped: scoped})
	return steps, scoped, nil
}

func joinFilterPredicate(target *catalog.TableDescriptor, alias string, filters []catalog.JoinFilter) *sqlb.Predicate {
	if len(filters) == 0 {
		return nil
	}
	var preds []*sqlb.Predicate
	for _, jf := range filters {
		col, ok := target.ColumnForProperty(jf.Property)
		if !ok {
			continue
		}
		preds = append(preds, sqlb.EQ(alias+"."+col.Name, jf.Value))
	}
	if len(preds) == 0 {
		return nil
	}
	return sqlb.Or(preds...)
}

func tableRef(aliasPrefix string, td *catalog.TableDescriptor) string {
	if aliasPrefix == "" {
		return td.Name
	}
	return aliasPrefix + td.Name
}

// projection implements step 4: explicit columns win; else, for dialects
// that require strict sub-query column names, the de-duplicated union of
// every scoped table's columns; else nil, meaning the builder emits "*".
func (c *Compiler) projection(prov dialect.Provider, t0 *catalog.TableDescriptor, aliasPrefix string, scoped []*catalog.TableDescriptor, reqCols []string) []string {
	if len(reqCols) > 0 {
		cols := make([]string, 0, len(reqCols))
		for _, name := range reqCols {
			col, ok := c.Catalog.ColumnOf(t0, name, true)
			if !ok {
				cols = append(cols, tableRef(aliasPrefix, t0)+"."+name)
				continue
			}
			cols = append(cols, tableRef(aliasPrefix, col.Table)+"."+col.Name)
		}
		return cols
	}
	if !prov.Features().Has(dialect.StrictSubQueryColumnNames) {
		return nil
	}
	seen := map[string]bool{}
	var cols []string
	for _, td := range scoped {
		ref := tableRef(aliasPrefix, td)
		for _, col := range td.Columns {
			if seen[col.Name] {
				continue
			}
			seen[col.Name] = true
			cols = append(cols, ref+"."+col.Name)
		}
	}
	return cols
}

// pathGroup is one (path, cast) bucket: siblings differing only by guard
// or sub-path collapse into the same predicate-path resolution but keep
// their own guard/sub-path/value for recursion.
type pathGroup struct {
	members []groupMember
}

type groupMember struct {
	parsed *pathlang.PredicatePath
	value  any
}

func groupByPathCast(pairs []query.PathValue) []pathGroup {
	order := make([]string, 0, len(pairs))
	byKey := map[string]*pathGroup{}
	for _, pv := range pairs {
		parsed, ok := pathlang.Parse(pv.Path)
		if !ok {
			parsed = &pathlang.PredicatePath{Path: pv.Path}
		}
		key := parsed.Path + "\x00" + parsed.Cast
		g, seen := byKey[key]
		if !seen {
			g = &pathGroup{}
			byKey[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, groupMember{parsed: parsed, value: pv.Value})
	}
	groups := make([]pathGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byKey[key])
	}
	return groups
}

// processGroup resolves and emits one (path, cast) group against sel,
// giving registered rewrite hooks first refusal.
func (c *Compiler) processGroup(dialectName string, prov dialect.Provider, sel *sqlb.Selector, t0 *catalog.TableDescriptor, aliasPrefix string, scoped []*catalog.TableDescriptor, g pathGroup) error {
	if len(g.members) == 0 {
		return nil
	}
	first := g.members[0].parsed
	var values []any
	for _, m := range g.members {
		values = append(values, m.value)
	}

	if c.Hooks != nil && c.Hooks.Len() > 0 {
		claimed, appended := c.Hooks.Dispatch(sel, sel, sel.CurrentWhere(), t0.Type, first.Path, aliasPrefix, first, values, scoped, nil)
		if claimed {
			if appended != nil {
				sel.Where(appended)
			}
			return nil
		}
	}

	col, ok := c.Catalog.ColumnOf(t0, first.Path, true)
	if !ok {
		return ormpath.NewPathError(t0.Type.Name(), first.Path)
	}

	if target, linkCol, outerTable, isRelation := c.relationTarget(col, scoped); isRelation {
		return c.emitRelation(dialectName, prov, sel, aliasPrefix, scoped, target, linkCol, outerTable, g)
	}

	targetType := goTypeName(col.FieldType)
	alias := tableRef(aliasPrefix, col.Table)
	pred, err := CreateSqlPredicate(prov, alias, col.Name, targetType, values)
	if err != nil {
		return err
	}
	sel.Where(pred)
	return nil
}

// relationTarget reports whether col denotes a to-many or to-one
// association rather than a plain scalar column, and if so, the related
// table plus the foreign-key column that links it back into scoped.
func (c *Compiler) relationTarget(col *catalog.ColumnDescriptor, scoped []*catalog.TableDescriptor) (target *catalog.TableDescriptor, linkCol *catalog.ColumnDescriptor, outerTable *catalog.TableDescriptor, ok bool) {
	if col.Collection {
		if col.ForeignKey != nil {
			if td, tok := c.Catalog.TableNamed(col.ForeignKey.TargetTable); tok {
				target = td
			}
		}
		if target == nil && col.ElemType != nil {
			elem := col.ElemType
			for elem.Kind() == reflect.Ptr {
				elem = elem.Elem()
			}
			if elem.Kind() == reflect.Struct && !isTimeType(elem) {
				if td, err := c.Catalog.TableOf(elem); err == nil {
					target = td
				}
			}
		}
		if target == nil {
			return nil, nil, nil, false
		}
	} else {
		t := col.FieldType
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct || isTimeType(t) {
			return nil, nil, nil, false
		}
		td, err := c.Catalog.TableOf(t)
		if err != nil {
			return nil, nil, nil, false
		}
		target = td
	}

	for _, tc := range target.Columns {
		if tc.ForeignKey == nil {
			continue
		}
		for _, s := range scoped {
			if tc.ForeignKey.TargetTable == s.Name {
				return target, tc, s, true
			}
		}
	}
	return target, nil, nil, true
}

func isTimeType(t reflect.Type) bool {
	return t.PkgPath() == "time" && t.Name() == "Time"
}

// emitRelation emits one EXISTS (or NOT EXISTS) sub-query per distinct
// guard value for a collection- or reference-valued property (spec.md
// §4.5 algorithm step 5's two relation branches).
func (c *Compiler) emitRelation(dialectName string, prov dialect.Provider, sel *sqlb.Selector, aliasPrefix string, scoped []*catalog.TableDescriptor, target *catalog.TableDescriptor, linkCol *catalog.ColumnDescriptor, outerTable *catalog.TableDescriptor, g pathGroup) error {
	if linkCol == nil {
		bridge, outer, ok := c.findAssociativeBridge(target, scoped)
		if !ok {
			return ormpath.NewSchemaError(target.Name, "no join route from "+target.Name+" back into the current scope")
		}
		return c.emitBridgedRelation(dialectName, prov, sel, aliasPrefix, target, bridge, outer, g)
	}

	for _, m := range g.members {
		if m.value == "null" && !m.parsed.HasSubPath {
			nextPrefix := nextAlias(aliasPrefix)
			sub, _, err := c.build(dialectName, prov, subRequest(target.Type, nil, nextPrefix))
			if err != nil {
				return err
			}
			sub.Select("1")
			sub.Where(sqlb.ColumnEQ(tableRef(nextPrefix, target)+"."+linkCol.Name, tableRef(aliasPrefix, outerTable)+"."+primaryKeyColumn(outerTable)))
			sel.Where(sqlb.NotExists(sub))
			continue
		}

		guardValues, hasGuard := guardsOf(m.parsed)
		if !hasGuard {
			guardValues = []string{""}
		}
		for _, guard := range guardValues {
			nextPrefix := nextAlias(aliasPrefix)
			subPairs := rewriteSubPathPairs(m.parsed, m.value)
			if hasGuard {
				classifierCol, ok := classifierColumn(target)
				if !ok {
					return ormpath.NewSchemaError(target.Name, "no classifier column declared for guarded collection")
				}
				subPairs = append(subPairs, query.PathValue{Path: classifierCol.Property, Value: guard})
				if target.Versioned {
					if seqCol, ok := target.ColumnForProperty("ObsoleteVersionSequence"); ok {
						subPairs = append(subPairs, query.PathValue{Path: seqCol.Property, Value: "null"})
					}
				}
			}
			sub, _, err := c.build(dialectName, prov, subRequest(target.Type, subPairs, nextPrefix))
			if err != nil {
				return err
			}
			sub.Select("1")
			sub.Where(sqlb.ColumnEQ(tableRef(nextPrefix, target)+"."+linkCol.Name, tableRef(aliasPrefix, outerTable)+"."+primaryKeyColumn(outerTable)))
			sel.Where(sqlb.Exists(sub))
		}
	}
	return nil
}

// emitBridgedRelation handles a many-to-many association reached through
// an associative table rather than a direct foreign key.
func (c *Compiler) emitBridgedRelation(dialectName string, prov dialect.Provider, sel *sqlb.Selector, aliasPrefix string, target *catalog.TableDescriptor, bridge *catalog.TableDescriptor, outerTable *catalog.TableDescriptor, g pathGroup) error {
	var outerLink, targetLink *catalog.ColumnDescriptor
	for _, bc := range bridge.Columns {
		if bc.ForeignKey == nil {
			continue
		}
		switch bc.ForeignKey.TargetTable {
		case outerTable.Name:
			outerLink = bc
		case target.Name:
			targetLink = bc
		}
	}
	if outerLink == nil || targetLink == nil {
		return ormpath.NewSchemaError(bridge.Name, "associative table "+bridge.Name+" is missing a foreign key back to "+target.Name+" or "+outerTable.Name)
	}

	bridgeAlias := nextAlias(aliasPrefix)
	var values []any
	for _, m := range g.members {
		values = append(values, m.value)
	}
	pred, err := CreateSqlPredicate(prov, bridgeAlias, targetLink.Name, goTypeName(targetLink.FieldType), values)
	if err != nil {
		return err
	}
	sub := sqlb.NewSelector(dialectName).Select("1").From(sqlb.Table(bridge.Name).As(bridgeAlias))
	sub.Where(sqlb.ColumnEQ(bridgeAlias+"."+outerLink.Name, tableRef(aliasPrefix, outerTable)+"."+primaryKeyColumn(outerTable)))
	sub.Where(pred)
	sel.Where(sqlb.Exists(sub))
	return nil
}

func (c *Compiler) findAssociativeBridge(target *catalog.TableDescriptor, scoped []*catalog.TableDescriptor) (bridge *catalog.TableDescriptor, outer *catalog.TableDescriptor, ok bool) {
	for _, s := range scoped {
		if b, found := c.Catalog.AssociationBetween(s, target); found {
			return b, s, true
		}
	}
	return nil, nil, false
}

func classifierColumn(td *catalog.TableDescriptor) (*catalog.ColumnDescriptor, bool) {
	for _, col := range td.Columns {
		if col.Classifier {
			return col, true
		}
	}
	return nil, false
}

func primaryKeyColumn(td *catalog.TableDescriptor) string {
	for _, col := range td.Columns {
		if col.PrimaryKey {
			return col.Name
		}
	}
	return "id"
}

// guardsOf splits a present guard on "|" (spec.md §4.5's pipe-separated
// multi-valued guard).
func guardsOf(p *pathlang.PredicatePath) ([]string, bool) {
	if !p.HasGuard || p.Guard == "" {
		return nil, false
	}
	return strings.Split(p.Guard, "|"), true
}

// rewriteSubPathPairs produces the inner (path, value) list a recursive
// compile call should see: the predicate's sub-path paired with its value,
// or nil when no sub-path is present.
func rewriteSubPathPairs(p *pathlang.PredicatePath, value any) []query.PathValue {
	if p.HasSubPath && p.SubPath != "" {
		return []query.PathValue{{Path: p.SubPath, Value: value}}
	}
	return nil
}

func subRequest(t reflect.Type, pairs []query.PathValue, aliasPrefix string) query.Request {
	return query.Request{Type: t, Pairs: pairs, AliasPrefix: aliasPrefix, SkipJoins: false}
}

// nextAlias generates the sub-query alias sequence (spec.md §4.5 "Sub-query
// alias generation"): empty -> sq0, sqN -> sq(N+1), otherwise -> sq0. Kept
// independent of the builder's own SAn wrapper aliasing.
var sqAliasRe = regexp.MustCompile(`^sq(\d+)$`)

func nextAlias(prefix string) string {
	if prefix == "" {
		return "sq0"
	}
	if m := sqAliasRe.FindStringSubmatch(prefix); m != nil {
		n, _ := strconv.Atoi(m[1])
		return "sq" + strconv.Itoa(n+1)
	}
	return "sq0"
}

// goTypeName renders t (after stripping pointer indirection) the same way
// dialect.Provider.CoerceValue's target-type switch expects: "int",
// "string", "time.Time", "uuid.UUID", and so on.
func goTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.String()
}

// clauseKind is the parsed shape of one operator-prefixed value.
type clauseKind int

const (
	clauseEQ clauseKind = iota
	clauseNEQ
	clauseLT
	clauseLTE
	clauseGT
	clauseGTE
	clauseIsNull
	clauseNotNull
	clauseContains
	clausePrefix
)

type parsedClause struct {
	kind     clauseKind
	raw      any
	combiner string // "AND" or "OR", per spec.md §4.5's operator-prefix table
}

// parseValue classifies one raw predicate value per the operator-prefix
// grammar (spec.md §4.5). Non-string values are always plain equality.
func parseValue(v any) parsedClause {
	s, isStr := v.(string)
	if !isStr {
		return parsedClause{kind: clauseEQ, raw: v, combiner: "OR"}
	}
	switch {
	case s == "null":
		return parsedClause{kind: clauseIsNull, combiner: "OR"}
	case s == "!null":
		return parsedClause{kind: clauseNotNull, combiner: "AND"}
	case strings.HasPrefix(s, "<="):
		return parsedClause{kind: clauseLTE, raw: s[2:], combiner: "AND"}
	case strings.HasPrefix(s, "<"):
		return parsedClause{kind: clauseLT, raw: s[1:], combiner: "AND"}
	case strings.HasPrefix(s, ">="):
		return parsedClause{kind: clauseGTE, raw: s[2:], combiner: "AND"}
	case strings.HasPrefix(s, ">"):
		return parsedClause{kind: clauseGT, raw: s[1:], combiner: "AND"}
	case strings.HasPrefix(s, "!"):
		return parsedClause{kind: clauseNEQ, raw: s[1:], combiner: "AND"}
	case strings.HasPrefix(s, "~"):
		return parsedClause{kind: clauseContains, raw: s[1:], combiner: "OR"}
	case strings.HasPrefix(s, "^"):
		return parsedClause{kind: clausePrefix, raw: s[1:], combiner: "OR"}
	default:
		return parsedClause{kind: clauseEQ, raw: s, combiner: "OR"}
	}
}

// CreateSqlPredicate renders the values for one resolved column into a
// single parenthesized predicate (spec.md §4.5 "Predicate emission"):
// AND-combiner clauses (exclusions) AND together, OR-combiner clauses
// (everything else) OR together as one group, and the two groups AND
// together. Scalar values are coerced to targetType via prov before
// binding.
func CreateSqlPredicate(prov dialect.Provider, alias, columnName, targetType string, values []any) (*sqlb.Predicate, error) {
	col := alias + "." + columnName
	var ands, ors []*sqlb.Predicate
	for _, v := range values {
		pc := parseValue(v)
		pred, err := renderClause(prov, col, targetType, pc)
		if err != nil {
			return nil, err
		}
		if pc.combiner == "AND" {
			ands = append(ands, pred)
		} else {
			ors = append(ors, pred)
		}
	}
	var groups []*sqlb.Predicate
	if len(ors) == 1 {
		groups = append(groups, ors[0])
	} else if len(ors) > 1 {
		groups = append(groups, sqlb.Or(ors...))
	}
	groups = append(groups, ands...)
	return sqlb.And(groups...), nil
}

func renderClause(prov dialect.Provider, col, targetType string, pc parsedClause) (*sqlb.Predicate, error) {
	switch pc.kind {
	case clauseIsNull:
		return sqlb.IsNull(col), nil
	case clauseNotNull:
		return sqlb.NotNull(col), nil
	case clauseContains:
		s, _ := pc.raw.(string)
		if strings.Contains(s, "%") {
			return sqlb.LikeFold(col, s), nil
		}
		return sqlb.LikeFold(col, "%"+s+"%"), nil
	case clausePrefix:
		s, _ := pc.raw.(string)
		return sqlb.LikeFold(col, s+"%"), nil
	}

	coerced, err := prov.CoerceValue(pc.raw, targetType)
	if err != nil {
		return nil, ormpath.NewTypeCoercionError(col, pc.raw, targetType, err)
	}
	switch pc.kind {
	case clauseEQ:
		return sqlb.EQ(col, coerced), nil
	case clauseNEQ:
		return sqlb.NEQ(col, coerced), nil
	case clauseLT:
		return sqlb.LT(col, coerced), nil
	case clauseLTE:
		return sqlb.LTE(col, coerced), nil
	case clauseGT:
		return sqlb.GT(col, coerced), nil
	case clauseGTE:
		return sqlb.GTE(col, coerced), nil
	}
	return sqlb.EQ(col, coerced), nil
}

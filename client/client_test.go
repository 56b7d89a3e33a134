package client_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ormpath/ormpath"
	"github.com/ormpath/ormpath/catalog"
	"github.com/ormpath/ormpath/client"
	"github.com/ormpath/ormpath/dialect"
	sqlb "github.com/ormpath/ormpath/dialect/sql"
	"github.com/ormpath/ormpath/query"
	"github.com/ormpath/ormpath/querylanguage"
)

// gadgetPredicate is the kind of per-entity predicate type an ent-style
// codegen layer would emit; it satisfies sqlb.PredicateFunc so
// sqlb.StringField[gadgetPredicate] can build typed field predicates.
type gadgetPredicate func(*sqlb.Selector)

var gadgetName = sqlb.StringField[gadgetPredicate]("name")

type Gadget struct {
	Base catalog.Meta `orm:"table=gadgets"`
	ID   string       `orm:"column=id,pk"`
	Name string       `orm:"column=name"`
}

func TestCompileWithoutOpen(t *testing.T) {
	c := client.New(nil)
	req := query.NewRequest(Gadget{}, []query.PathValue{{Path: "Name", Value: "widget"}}, false)
	text, args, err := c.Compile(dialect.Postgres, req)
	require.NoError(t, err)
	assert.Contains(t, text, "FROM gadgets")
	assert.Equal(t, []any{"widget"}, args)
}

func TestOpenAndQuerySQLite(t *testing.T) {
	c := client.New(nil)
	db, err := c.Open(dialect.SQLite, ":memory:")
	require.NoError(t, err)
	defer c.Close()

	_, err = db.Exec("CREATE TABLE gadgets (id TEXT, name TEXT)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO gadgets (id, name) VALUES (?, ?)", "g1", "widget")
	require.NoError(t, err)

	req := query.NewRequest(Gadget{}, []query.PathValue{{Path: "Name", Value: "widget"}}, false)
	rows, err := c.Query(context.Background(), dialect.SQLite, req)
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var id, name string
	require.NoError(t, rows.Scan(&id, &name))
	assert.Equal(t, "g1", id)
	assert.Equal(t, "widget", name)
}

func TestQueryWithoutOpenFails(t *testing.T) {
	c := client.New(nil)
	req := query.NewRequest(Gadget{}, nil, false)
	_, err := c.Query(context.Background(), dialect.MySQL, req)
	require.Error(t, err)
}

func TestSelectWhereUsesTypedFieldPredicate(t *testing.T) {
	c := client.New(nil)
	db, err := c.Open(dialect.SQLite, ":memory:")
	require.NoError(t, err)
	defer c.Close()

	_, err = db.Exec("CREATE TABLE gadgets (id TEXT, name TEXT)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO gadgets (id, name) VALUES (?, ?), (?, ?)", "g1", "widget", "g2", "gizmo")
	require.NoError(t, err)

	rows, err := c.SelectWhere(context.Background(), dialect.SQLite, "gadgets", gadgetName.EQ("widget"))
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var id, name string
	require.NoError(t, rows.Scan(&id, &name))
	assert.Equal(t, "g1", id)
	assert.Equal(t, "widget", name)
	require.False(t, rows.Next())
}

func TestQueryTypedLowersPredicateTreeBeforeCompiling(t *testing.T) {
	c := client.New(nil)
	db, err := c.Open(dialect.SQLite, ":memory:")
	require.NoError(t, err)
	defer c.Close()

	_, err = db.Exec("CREATE TABLE gadgets (id TEXT, name TEXT)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO gadgets (id, name) VALUES (?, ?), (?, ?)", "g1", "widget", "g2", "gizmo")
	require.NoError(t, err)

	pred := querylanguage.FieldEQ("Name", "widget")
	text, args, err := c.CompileTyped(dialect.SQLite, Gadget{}, pred, false)
	require.NoError(t, err)
	assert.Contains(t, text, "FROM gadgets")
	assert.Equal(t, []any{"widget"}, args)

	rows, err := c.QueryTyped(context.Background(), dialect.SQLite, Gadget{}, pred, false)
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var id, name string
	require.NoError(t, rows.Scan(&id, &name))
	assert.Equal(t, "g1", id)
	assert.Equal(t, "widget", name)
	require.False(t, rows.Next())
}

func TestStatsCountsQueriesAgainstAnOpenDialect(t *testing.T) {
	c := client.New(nil)
	db, err := c.Open(dialect.SQLite, ":memory:")
	require.NoError(t, err)
	defer c.Close()

	_, err = db.Exec("CREATE TABLE gadgets (id TEXT, name TEXT)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO gadgets (id, name) VALUES (?, ?)", "g1", "widget")
	require.NoError(t, err)

	before, err := c.Stats(dialect.SQLite)
	require.NoError(t, err)
	assert.Zero(t, before.TotalQueries)

	req := query.NewRequest(Gadget{}, []query.PathValue{{Path: "Name", Value: "widget"}}, false)
	rows, err := c.Query(context.Background(), dialect.SQLite, req)
	require.NoError(t, err)
	rows.Close()

	after, err := c.Stats(dialect.SQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), after.TotalQueries)

	_, err = c.Stats("no-such-dialect")
	require.Error(t, err)
}

func TestQueryCachedServesSecondCallFromCache(t *testing.T) {
	c := client.New(nil)
	c.Cache = ormpath.NewMemoryCache()
	db, err := c.Open(dialect.SQLite, ":memory:")
	require.NoError(t, err)
	defer c.Close()

	_, err = db.Exec("CREATE TABLE gadgets (id TEXT, name TEXT)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO gadgets (id, name) VALUES (?, ?)", "g1", "widget")
	require.NoError(t, err)

	req := query.NewRequest(Gadget{}, []query.PathValue{{Path: "Name", Value: "widget"}}, false)
	ctx := context.Background()

	rows, err := c.QueryCached(ctx, dialect.SQLite, req, time.Minute)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "widget", rows[0]["name"])

	_, err = db.Exec("DELETE FROM gadgets")
	require.NoError(t, err)

	cachedRows, err := c.QueryCached(ctx, dialect.SQLite, req, time.Minute)
	require.NoError(t, err)
	require.Len(t, cachedRows, 1, "second call should be served from cache, not the now-empty table")
	assert.Equal(t, "widget", cachedRows[0]["name"])
}

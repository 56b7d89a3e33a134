package compile_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ormpath/ormpath"
	"github.com/ormpath/ormpath/catalog"
	"github.com/ormpath/ormpath/compile"
	"github.com/ormpath/ormpath/dialect"
	sqlb "github.com/ormpath/ormpath/dialect/sql"
	"github.com/ormpath/ormpath/hooks"
	"github.com/ormpath/ormpath/pathlang"
	"github.com/ormpath/ormpath/query"
)

type Concept struct {
	Base     catalog.Meta `orm:"table=cd_tbl"`
	ID       string       `orm:"column=ent_id,pk"`
	Mnemonic string       `orm:"column=mnemonic"`
	Value    string       `orm:"column=value"`
}

type Identifier struct {
	Base                    catalog.Meta `orm:"table=pat_id_tbl,versioned"`
	ID                      string       `orm:"column=ent_id,pk"`
	PatientID               string       `orm:"column=patient_id,fk=patients.ent_id"`
	Value                   string       `orm:"column=id_val"`
	IDType                  string       `orm:"column=id_type,classifier"`
	ObsoleteVersionSequence *string      `orm:"column=obsolete_version_sequence"`
}

type Patient struct {
	Base           catalog.Meta `orm:"table=patients"`
	ID             string       `orm:"column=ent_id,pk"`
	ObsoletionTime *string      `orm:"column=obsoletion_time"`
	Identifiers    []Identifier `orm:"column=identifiers"`
}

func newCompiler(t *testing.T) *compile.Compiler {
	t.Helper()
	cat := catalog.New()
	providers := map[string]dialect.Provider{
		"postgres": dialect.NewPostgres(),
	}
	return compile.New(cat, providers, nil)
}

func compileConcept(t *testing.T, c *compile.Compiler, pairs []query.PathValue) (string, []any) {
	t.Helper()
	req := query.NewRequest(Concept{}, pairs, false)
	text, args, err := c.Compile("postgres", req)
	require.NoError(t, err)
	return text, args
}

func TestSimpleEquality(t *testing.T) {
	c := newCompiler(t)
	text, args := compileConcept(t, c, []query.PathValue{{Path: "Mnemonic", Value: "Active"}})
	assert.Contains(t, text, "FROM cd_tbl")
	assert.Contains(t, text, "cd_tbl.mnemonic = $1")
	assert.Equal(t, []any{"Active"}, args)
}

func TestMultiValueOR(t *testing.T) {
	c := newCompiler(t)
	text, args := compileConcept(t, c, []query.PathValue{
		{Path: "Mnemonic", Value: "A"},
		{Path: "Mnemonic", Value: "B"},
	})
	assert.Contains(t, text, "cd_tbl.mnemonic = $1 OR cd_tbl.mnemonic = $2")
	assert.Equal(t, []any{"A", "B"}, args)
}

func TestOperatorPrefixRange(t *testing.T) {
	c := newCompiler(t)
	text, args := compileConcept(t, c, []query.PathValue{
		{Path: "Value", Value: ">=5"},
		{Path: "Value", Value: "<10"},
	})
	assert.Contains(t, text, "cd_tbl.value >= $1 AND cd_tbl.value < $2")
	assert.Equal(t, []any{"5", "10"}, args)
}

func TestNullNotNull(t *testing.T) {
	c := newCompiler(t)
	text, args := compileConcept(t, c, []query.PathValue{{Path: "Value", Value: "null"}})
	assert.Contains(t, text, "cd_tbl.value IS NULL")
	assert.Empty(t, args)

	text, args = compileConcept(t, c, []query.PathValue{{Path: "Value", Value: "!null"}})
	assert.Contains(t, text, "cd_tbl.value IS NOT NULL")
	assert.Empty(t, args)
}

func TestCollectionExists(t *testing.T) {
	cat := catalog.New()
	providers := map[string]dialect.Provider{"postgres": dialect.NewPostgres()}
	c := compile.New(cat, providers, nil)

	req := query.NewRequest(Patient{}, []query.PathValue{{Path: "Identifiers.Value", Value: "123"}}, false)
	text, args, err := c.Compile("postgres", req)
	require.NoError(t, err)
	assert.Contains(t, text, "EXISTS (SELECT 1 FROM pat_id_tbl")
	assert.Contains(t, text, "pat_id_tbl.id_val = $1")
	assert.Contains(t, text, "pat_id_tbl.patient_id = patients.ent_id")
	assert.Equal(t, []any{"123"}, args)
}

func TestGuardedCollectionWithClassifier(t *testing.T) {
	cat := catalog.New()
	providers := map[string]dialect.Provider{"postgres": dialect.NewPostgres()}
	c := compile.New(cat, providers, nil)

	req := query.NewRequest(Patient{}, []query.PathValue{{Path: "Identifiers[OID].Value", Value: "1.2.3"}}, false)
	text, args, err := c.Compile("postgres", req)
	require.NoError(t, err)
	assert.Contains(t, text, "id_val = ")
	assert.Contains(t, text, "id_type = ")
	assert.Contains(t, text, "obsolete_version_sequence IS NULL")
	assert.Contains(t, args, "1.2.3")
	assert.Contains(t, args, "OID")
}

func TestUnregisteredDialectIsDialectUnsupported(t *testing.T) {
	c := newCompiler(t)
	req := query.NewRequest(Concept{}, nil, false)
	_, _, err := c.Compile("oracle", req)
	require.Error(t, err)
	assert.True(t, ormpath.IsDialectUnsupported(err))
}

func TestHookClaimSkipsDefaultEmission(t *testing.T) {
	cat := catalog.New()
	registry := hooks.NewRegistry()
	registry.Register(hooks.HookFunc(func(
		_ *sqlb.Selector, _ *sqlb.Selector, _ *sqlb.Predicate,
		_ reflect.Type, property string, _ string, _ *pathlang.PredicatePath,
		_ []any, _ []*catalog.TableDescriptor, _ map[string]any,
	) (bool, *sqlb.Predicate) {
		if property == "Mnemonic" {
			return true, sqlb.EQ("cd_tbl.mnemonic", "hacked")
		}
		return false, nil
	}))
	providers := map[string]dialect.Provider{"postgres": dialect.NewPostgres()}
	c := compile.New(cat, providers, registry)

	req := query.NewRequest(Concept{}, []query.PathValue{{Path: "Mnemonic", Value: "Active"}}, false)
	text, args, err := c.Compile("postgres", req)
	require.NoError(t, err)
	assert.Contains(t, text, "hacked")
	assert.NotContains(t, args, "Active")
}

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
	"github.com/ormpath/ormpath/query"
)

// Provider has no foreign key of its own; in these tests it is reached only
// through an associative bridge table declared with the owning type's
// "assoc" tag.
type Provider struct {
	Base catalog.Meta `orm:"table=providers"`
	ID   string       `orm:"column=ent_id,pk"`
	Name string       `orm:"column=name"`
}

// PatientProviderLink is the associative table for the many-to-many
// Patient<->Provider relationship: it carries a foreign key back to each
// side, with no direct foreign key declared on either Patient or Provider.
type PatientProviderLink struct {
	Base       catalog.Meta `orm:"table=patient_provider"`
	ID         string       `orm:"column=id,pk"`
	PatientID  string       `orm:"column=patient_id,fk=patients.ent_id"`
	ProviderID string       `orm:"column=provider_id,fk=providers.ent_id"`
}

type PatientWithProviders struct {
	Base      catalog.Meta `orm:"table=patients,assoc=providers:patient_provider"`
	ID        string       `orm:"column=ent_id,pk"`
	Providers []Provider   `orm:"column=providers"`
}

func TestBridgedManyToManyExists(t *testing.T) {
	cat := catalog.New()
	providers := map[string]dialect.Provider{"postgres": dialect.NewPostgres()}
	c := compile.New(cat, providers, nil)

	// The associative table is only addressable by name once something has
	// resolved it through the catalog; a real deployment would have done
	// this while registering the schema, so the test does it explicitly.
	_, err := cat.TableOf(reflect.TypeOf(PatientProviderLink{}))
	require.NoError(t, err)

	req := query.NewRequest(PatientWithProviders{}, []query.PathValue{{Path: "Providers", Value: "prov-1"}}, false)
	text, args, err := c.Compile("postgres", req)
	require.NoError(t, err)
	assert.Contains(t, text, "EXISTS (SELECT 1 FROM patient_provider")
	assert.Contains(t, text, "patient_id = patients.ent_id")
	assert.Contains(t, text, "provider_id = $1")
	assert.Equal(t, []any{"prov-1"}, args)
}

// Profile is reached as a singular, non-collection reference from User:
// Profile itself carries the foreign key back to the owner, so
// relationTarget's non-collection branch (rather than its Collection
// branch) resolves it, but emitRelation still renders it as a direct
// EXISTS sub-query, exactly like a to-many collection.
type Profile struct {
	Base   catalog.Meta `orm:"table=profiles"`
	ID     string       `orm:"column=ent_id,pk"`
	UserID string       `orm:"column=user_id,fk=users.ent_id"`
	Bio    string       `orm:"column=bio"`
}

type User struct {
	Base    catalog.Meta `orm:"table=users"`
	ID      string       `orm:"column=ent_id,pk"`
	Profile Profile      `orm:"column=profile"`
}

func TestReferenceValuedNonCollectionExists(t *testing.T) {
	cat := catalog.New()
	providers := map[string]dialect.Provider{"postgres": dialect.NewPostgres()}
	c := compile.New(cat, providers, nil)

	req := query.NewRequest(User{}, []query.PathValue{{Path: "Profile.Bio", Value: "hello"}}, false)
	text, args, err := c.Compile("postgres", req)
	require.NoError(t, err)
	assert.Contains(t, text, "EXISTS (SELECT 1 FROM profiles")
	assert.Contains(t, text, "bio = $1")
	assert.Contains(t, text, "user_id = users.ent_id")
	assert.Equal(t, []any{"hello"}, args)
}

func TestUnknownPathSurfacesAsPathError(t *testing.T) {
	c := newCompiler(t)
	req := query.NewRequest(Concept{}, []query.PathValue{{Path: "NoSuchProperty", Value: "x"}}, false)
	_, _, err := c.Compile("postgres", req)
	require.Error(t, err)
	assert.True(t, ormpath.IsPathError(err))
}

// OrphanJoin declares an always-join foreign key to a table the catalog
// has never resolved, surfacing compile.hierarchyJoins's SchemaError path.
type OrphanJoin struct {
	Base     catalog.Meta `orm:"table=orphan_tbl"`
	ID       string       `orm:"column=ent_id,pk"`
	ParentID string       `orm:"column=parent_id,alwaysjoin,fk=missing_parent.ent_id"`
}

func TestMissingAlwaysJoinTargetSurfacesAsSchemaError(t *testing.T) {
	cat := catalog.New()
	providers := map[string]dialect.Provider{"postgres": dialect.NewPostgres()}
	c := compile.New(cat, providers, nil)

	req := query.NewRequest(OrphanJoin{}, nil, false)
	_, _, err := c.Compile("postgres", req)
	require.Error(t, err)
	assert.True(t, ormpath.IsSchemaError(err))
}

package hooks_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ormpath/ormpath/catalog"
	"github.com/ormpath/ormpath/dialect/sql"
	"github.com/ormpath/ormpath/hooks"
	"github.com/ormpath/ormpath/pathlang"
)

type widget struct {
	ID string
}

func TestDispatchFallsThroughWhenNoHookClaims(t *testing.T) {
	r := hooks.NewRegistry()
	claimed, frag := r.Dispatch(nil, nil, nil, reflect.TypeOf(widget{}), "id", "", nil, nil, nil, nil)
	assert.False(t, claimed)
	assert.Nil(t, frag)
}

func TestDispatchConsultsInRegistrationOrder(t *testing.T) {
	r := hooks.NewRegistry()
	var order []string

	r.Register(hooks.HookFunc(func(
		_ *sql.Selector, _ *sql.Selector, _ *sql.Predicate,
		_ reflect.Type, _ string, _ string, _ *pathlang.PredicatePath,
		_ []any, _ []*catalog.TableDescriptor, _ map[string]any,
	) (bool, *sql.Predicate) {
		order = append(order, "first")
		return false, nil
	}))
	r.Register(hooks.HookFunc(func(
		_ *sql.Selector, _ *sql.Selector, _ *sql.Predicate,
		_ reflect.Type, _ string, _ string, _ *pathlang.PredicatePath,
		_ []any, _ []*catalog.TableDescriptor, _ map[string]any,
	) (bool, *sql.Predicate) {
		order = append(order, "second")
		return true, sql.EQ("id", "claimed")
	}))
	r.Register(hooks.HookFunc(func(
		_ *sql.Selector, _ *sql.Selector, _ *sql.Predicate,
		_ reflect.Type, _ string, _ string, _ *pathlang.PredicatePath,
		_ []any, _ []*catalog.TableDescriptor, _ map[string]any,
	) (bool, *sql.Predicate) {
		order = append(order, "third")
		return false, nil
	}))

	claimed, frag := r.Dispatch(nil, nil, nil, reflect.TypeOf(widget{}), "id", "", nil, nil, nil, nil)
	require.True(t, claimed)
	require.NotNil(t, frag)
	assert.Equal(t, []string{"first", "second"}, order, "a claiming hook stops dispatch; later hooks are never consulted")
}

func TestRegisterIsCountable(t *testing.T) {
	r := hooks.NewRegistry()
	assert.Equal(t, 0, r.Len())
	r.Register(hooks.HookFunc(func(
		_ *sql.Selector, _ *sql.Selector, _ *sql.Predicate,
		_ reflect.Type, _ string, _ string, _ *pathlang.PredicatePath,
		_ []any, _ []*catalog.TableDescriptor, _ map[string]any,
	) (bool, *sql.Predicate) {
		return false, nil
	}))
	assert.Equal(t, 1, r.Len())
}

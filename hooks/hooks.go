// Package hooks is the rewrite-hook registry (spec.md §4.6): an ordered
// list of extensions the query compiler consults before its own default
// predicate emission, so a caller can short-circuit compilation for a
// specific (type, property, predicate) tuple and splice in custom SQL.
package hooks

import (
	"reflect"
	"sync"

	"github.com/ormpath/ormpath/catalog"
	"github.com/ormpath/ormpath/dialect/sql"
	"github.com/ormpath/ormpath/pathlang"
)

// Hook exposes the single HackQuery capability. Returning claimed=true
// stops the compiler's default emission for that tuple; appended, if
// non-nil, is AND-folded into the WHERE clause. A hook may read
// currentSelect/currentWhere but never mutates them directly — appended
// is how it contributes, the same immutable-fragment discipline the
// builder itself uses.
type Hook interface {
	HackQuery(
		builder *sql.Selector,
		currentSelect *sql.Selector,
		currentWhere *sql.Predicate,
		modelType reflect.Type,
		property string,
		aliasPrefix string,
		predicate *pathlang.PredicatePath,
		values []any,
		scopedTables []*catalog.TableDescriptor,
		queryFilter map[string]any,
	) (claimed bool, appended *sql.Predicate)
}

// HookFunc adapts a plain function to Hook.
type HookFunc func(
	builder *sql.Selector,
	currentSelect *sql.Selector,
	currentWhere *sql.Predicate,
	modelType reflect.Type,
	property string,
	aliasPrefix string,
	predicate *pathlang.PredicatePath,
	values []any,
	scopedTables []*catalog.TableDescriptor,
	queryFilter map[string]any,
) (bool, *sql.Predicate)

// HackQuery calls f.
func (f HookFunc) HackQuery(
	builder *sql.Selector,
	currentSelect *sql.Selector,
	currentWhere *sql.Predicate,
	modelType reflect.Type,
	property string,
	aliasPrefix string,
	predicate *pathlang.PredicatePath,
	values []any,
	scopedTables []*catalog.TableDescriptor,
	queryFilter map[string]any,
) (bool, *sql.Predicate) {
	return f(builder, currentSelect, currentWhere, modelType, property, aliasPrefix, predicate, values, scopedTables, queryFilter)
}

// Registry is an ordered, concurrency-safe list of hooks. The compiler
// holds one Registry per construction and consults it for every
// predicate tuple it processes.
type Registry struct {
	mu    sync.RWMutex
	hooks []Hook
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends h to the end of the registration order.
func (r *Registry) Register(h Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, h)
}

// Len reports how many hooks are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks)
}

// Dispatch consults hooks in registration order, stopping at the first
// one that claims the tuple. claimed is false, appended is nil when no
// hook claims it — the caller falls through to default emission.
func (r *Registry) Dispatch(
	builder *sql.Selector,
	currentSelect *sql.Selector,
	currentWhere *sql.Predicate,
	modelType reflect.Type,
	property string,
	aliasPrefix string,
	predicate *pathlang.PredicatePath,
	values []any,
	scopedTables []*catalog.TableDescriptor,
	queryFilter map[string]any,
) (claimed bool, appended *sql.Predicate) {
	r.mu.RLock()
	snapshot := make([]Hook, len(r.hooks))
	copy(snapshot, r.hooks)
	r.mu.RUnlock()

	for _, h := range snapshot {
		if ok, frag := h.HackQuery(builder, currentSelect, currentWhere, modelType, property, aliasPrefix, predicate, values, scopedTables, queryFilter); ok {
			return true, frag
		}
	}
	return false, nil
}

// Package materialize is the composite-row materializer (spec.md §4.7):
// it parses a single result row into one or more typed objects, each
// scoped to its own column set obtained from the schema catalog.
package materialize

import (
	"fmt"
	"reflect"

	"github.com/ormpath/ormpath"
	"github.com/ormpath/ormpath/catalog"
	"github.com/ormpath/ormpath/dialect"
	sqlb "github.com/ormpath/ormpath/dialect/sql"
)

// Row is the minimal row-reading surface the materializer consumes: one
// already-advanced cursor position (the caller has called Next), exposing
// its column names and a Scan destination. dialect/sql's own ColumnScanner
// (database/sql's *sql.Rows shape) satisfies this directly.
type Row interface {
	Columns() ([]string, error)
	Scan(dest ...any) error
}

var _ Row = sqlb.ColumnScanner(nil)

// Materializer reads result rows into typed objects via the schema
// catalog's column descriptors and a dialect's value coercion.
type Materializer struct {
	Catalog  *catalog.Catalog
	Provider dialect.Provider
}

// New returns a Materializer backed by cat and prov.
func New(cat *catalog.Catalog, prov dialect.Provider) *Materializer {
	return &Materializer{Catalog: cat, Provider: prov}
}

// rowValues scans row once into a name-keyed map, consulting Columns for
// the positional name list Scan's destinations correspond to.
func rowValues(row Row) (map[string]any, error) {
	names, err := row.Columns()
	if err != nil {
		return nil, err
	}
	dest := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range dest {
		ptrs[i] = &dest[i]
	}
	if err := row.Scan(ptrs...); err != nil {
		return nil, err
	}
	values := make(map[string]any, len(names))
	for i, name := range names {
		values[name] = dest[i]
	}
	return values, nil
}

// populate constructs and fills a new *T (T = td.Type) from values, one
// struct field per column descriptor. A column with no matching entry in
// values raises *ormpath.MissingFieldError.
func (m *Materializer) populate(td *catalog.TableDescriptor, values map[string]any) (reflect.Value, error) {
	obj := reflect.New(td.Type)
	elem := obj.Elem()
	for _, col := range td.Columns {
		raw, ok := values[col.Name]
		if !ok {
			return reflect.Value{}, ormpath.NewMissingFieldError(td.Name, col.Name)
		}
		fv := elem.FieldByName(col.Property)
		if !fv.IsValid() || !fv.CanSet() {
			continue
		}
		if err := assign(m.Provider, fv, raw); err != nil {
			return reflect.Value{}, ormpath.NewMissingFieldError(td.Name, col.Name)
		}
	}
	return obj, nil
}

// assign coerces raw into fv's type via prov and sets it. A nil raw value
// (SQL NULL) leaves fv at its zero value — a nil pointer for optional
// columns, an empty scalar for a plain one.
func assign(prov dialect.Provider, fv reflect.Value, raw any) error {
	if raw == nil {
		return nil
	}
	target := fv.Type()
	ptr := target.Kind() == reflect.Ptr
	elemType := target
	if ptr {
		elemType = target.Elem()
	}
	coerced, err := prov.CoerceValue(raw, goTypeName(elemType))
	if err != nil {
		return err
	}
	cv := reflect.ValueOf(coerced)
	switch {
	case cv.Type().AssignableTo(elemType):
		// already the right type
	case cv.Type().ConvertibleTo(elemType):
		cv = cv.Convert(elemType)
	default:
		return fmt.Errorf("materialize: cannot assign %s into %s", cv.Type(), elemType)
	}
	if ptr {
		p := reflect.New(elemType)
		p.Elem().Set(cv)
		fv.Set(p)
	} else {
		fv.Set(cv)
	}
	return nil
}

// goTypeName renders t (after stripping pointer indirection) the same way
// dialect.Provider.CoerceValue's target-type switch expects — mirrors
// compile.goTypeName; kept as its own copy since the two packages share no
// internal helper package and the function is three lines long.
func goTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.String()
}

// ReadObject reads one row into a new *T. T must be registered with the
// catalog and constructible via reflect.New (default nullary construction,
// not a dynamic factory — DESIGN.md's Open Question resolution).
func ReadObject[T any](m *Materializer, row Row) (*T, error) {
	var zero T
	td, err := m.Catalog.TableOf(reflect.TypeOf(zero))
	if err != nil {
		return nil, err
	}
	values, err := rowValues(row)
	if err != nil {
		return nil, err
	}
	obj, err := m.populate(td, values)
	if err != nil {
		return nil, err
	}
	return obj.Interface().(*T), nil
}

func (m *Materializer) objectOf(values map[string]any, zero any) (any, error) {
	td, err := m.Catalog.TableOf(reflect.TypeOf(zero))
	if err != nil {
		return nil, err
	}
	obj, err := m.populate(td, values)
	if err != nil {
		return nil, err
	}
	return obj.Interface(), nil
}

// Composite2 is a row parsed into two typed objects, one per underlying
// table in the row's join (spec.md §4.7's polymorphic composite result
// replacing an inheritance chain with a single value parameterized over
// an ordered type tuple). Accessors are positional: Object1, Object2.
type Composite2[T1, T2 any] struct {
	obj1 *T1
	obj2 *T2
}

func (c *Composite2[T1, T2]) Object1() *T1 { return c.obj1 }
func (c *Composite2[T1, T2]) Object2() *T2 { return c.obj2 }

// ReadComposite2 reads one row into a Composite2[T1, T2].
func ReadComposite2[T1, T2 any](m *Materializer, row Row) (*Composite2[T1, T2], error) {
	values, err := rowValues(row)
	if err != nil {
		return nil, err
	}
	var z1 T1
	o1, err := m.objectOf(values, z1)
	if err != nil {
		return nil, err
	}
	var z2 T2
	o2, err := m.objectOf(values, z2)
	if err != nil {
		return nil, err
	}
	return &Composite2[T1, T2]{obj1: o1.(*T1), obj2: o2.(*T2)}, nil
}

// Composite3 is the three-type form of Composite2.
type Composite3[T1, T2, T3 any] struct {
	obj1 *T1
	obj2 *T2
	obj3 *T3
}

func (c *Composite3[T1, T2, T3]) Object1() *T1 { return c.obj1 }
func (c *Composite3[T1, T2, T3]) Object2() *T2 { return c.obj2 }
func (c *Composite3[T1, T2, T3]) Object3() *T3 { return c.obj3 }

// ReadComposite3 reads one row into a Composite3[T1, T2, T3].
func ReadComposite3[T1, T2, T3 any](m *Materializer, row Row) (*Composite3[T1, T2, T3], error) {
	values, err := rowValues(row)
	if err != nil {
		return nil, err
	}
	var z1 T1
	o1, err := m.objectOf(values, z1)
	if err != nil {
		return nil, err
	}
	var z2 T2
	o2, err := m.objectOf(values, z2)
	if err != nil {
		return nil, err
	}
	var z3 T3
	o3, err := m.objectOf(values, z3)
	if err != nil {
		return nil, err
	}
	return &Composite3[T1, T2, T3]{obj1: o1.(*T1), obj2: o2.(*T2), obj3: o3.(*T3)}, nil
}

// Composite4 is the four-type form of Composite2.
type Composite4[T1, T2, T3, T4 any] struct {
	obj1 *T1
	obj2 *T2
	obj3 *T3
	obj4 *T4
}

func (c *Composite4[T1, T2, T3, T4]) Object1() *T1 { return c.obj1 }
func (c *Composite4[T1, T2, T3, T4]) Object2() *T2 { return c.obj2 }
func (c *Composite4[T1, T2, T3, T4]) Object3() *T3 { return c.obj3 }
func (c *Composite4[T1, T2, T3, T4]) Object4() *T4 { return c.obj4 }

// ReadComposite4 reads one row into a Composite4[T1, T2, T3, T4].
func ReadComposite4[T1, T2, T3, T4 any](m *Materializer, row Row) (*Composite4[T1, T2, T3, T4], error) {
	values, err := rowValues(row)
	if err != nil {
		return nil, err
	}
	var z1 T1
	o1, err := m.objectOf(values, z1)
	if err != nil {
		return nil, err
	}
	var z2 T2
	o2, err := m.objectOf(values, z2)
	if err != nil {
		return nil, err
	}
	var z3 T3
	o3, err := m.objectOf(values, z3)
	if err != nil {
		return nil, err
	}
	var z4 T4
	o4, err := m.objectOf(values, z4)
	if err != nil {
		return nil, err
	}
	return &Composite4[T1, T2, T3, T4]{obj1: o1.(*T1), obj2: o2.(*T2), obj3: o3.(*T3), obj4: o4.(*T4)}, nil
}

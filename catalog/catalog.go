// Package catalog is the schema catalog (spec.md §4.1): reflective
// descriptors of model types built from `orm:"..."` struct tags, cached
// process-wide per reflect.Type.
package catalog

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/ormpath/ormpath"
)

// ForeignKey is a column's reference to another table's column.
type ForeignKey struct {
	TargetTable  string
	TargetColumn string
}

// JoinFilter is an extra equality clause attached to a hierarchy join,
// e.g. {Property: "kind", Value: "drug"}. Multiple filters on the same
// column OR-combine.
type JoinFilter struct {
	Property string
	Value    string
}

// ColumnDescriptor describes one mapped column.
type ColumnDescriptor struct {
	Name          string
	Property      string // Go struct field name
	Table         *TableDescriptor
	PrimaryKey    bool
	AutoGenerated bool
	Unique        bool
	NotNull       bool
	Secret        bool
	AlwaysJoin    bool
	Classifier    bool
	ForeignKey    *ForeignKey
	JoinFilters   []JoinFilter
	Default       string

	FieldType  reflect.Type // Go type of the struct field
	Collection bool         // true for a slice-valued (to-many) property
	ElemType   reflect.Type // element type, set when Collection is true
}

// ONE and STAR are sentinel column descriptors used for projection
// placeholders ("SELECT 1" existence checks, "SELECT *"). They are not
// bound to any table.
var (
	ONE  = &ColumnDescriptor{Name: "1"}
	STAR = &ColumnDescriptor{Name: "*"}
)

// AssocLink pairs a target table with the associative table that links it
// to the owning TableDescriptor.
type AssocLink struct {
	TargetTable string
	AssocTable  string
}

// TableDescriptor describes one mapped model type.
type TableDescriptor struct {
	Type      reflect.Type
	Name      string
	Columns   []*ColumnDescriptor
	Assocs    []AssocLink
	Versioned bool // type-level "versioned" tag; see compile's skipJoins retarget rule

	byName map[string]*ColumnDescriptor
}

// ColumnNamed looks up a column by its mapped SQL name.
func (t *TableDescriptor) ColumnNamed(name string) (*ColumnDescriptor, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// ColumnForProperty looks up a column by its source Go field name.
func (t *TableDescriptor) ColumnForProperty(property string) (*ColumnDescriptor, bool) {
	for _, c := range t.Columns {
		if c.Property == property {
			return c, true
		}
	}
	return nil, false
}

// Meta is embedded in a model struct to carry type-level orm tags (table
// name override, associative-table links), the same role
// uptrace/bun's BaseModel plays for its own tag family:
//
//	type Patient struct {
//	    Base catalog.Meta `orm:"table=patients,assoc=providers:patient_provider"`
//	    ID   uuid.UUID    `orm:"column=ent_id,pk"`
//	}
type Meta struct{}

var metaType = reflect.TypeOf(Meta{})

type catalogEntry struct {
	once sync.Once
	td   *TableDescriptor
	err  error
}

// Catalog is the process-wide, lazily-populated schema catalog. Reads
// against an already-populated entry never take a lock (sync.Map.Load).
type Catalog struct {
	byType sync.Map // reflect.Type -> *catalogEntry
	byName sync.Map // string -> *TableDescriptor
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{}
}

// TableOf returns the TableDescriptor for t (or *t), building and caching
// it on first reference. Returns a *ormpath.SchemaError if two columns on
// the type share a name.
func (c *Catalog) TableOf(t reflect.Type) (*TableDescriptor, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	v, _ := c.byType.LoadOrStore(t, &catalogEntry{})
	e := v.(*catalogEntry)
	e.once.Do(func() {
		e.td, e.err = buildTable(t)
		if e.err == nil {
			c.byName.Store(e.td.Name, e.td)
		}
	})
	return e.td, e.err
}

// TableNamed reverse-looks-up a table descriptor that has already been
// materialized by a prior TableOf call.
func (c *Catalog) TableNamed(name string) (*TableDescriptor, bool) {
	v, ok := c.byName.Load(name)
	if !ok {
		return nil, false
	}
	return v.(*TableDescriptor), true
}

// ColumnOf resolves property on table, optionally recursing into the base
// type's own TableDescriptor via an always-join edge when scanHierarchy is
// set and the property is not declared directly on table.
func (c *Catalog) ColumnOf(table *TableDescriptor, property string, scanHierarchy bool) (*ColumnDescriptor, bool) {
	if col, ok := table.ColumnForProperty(property); ok {
		return col, true
	}
	if !scanHierarchy {
		return nil, false
	}
	for _, col := range table.Columns {
		if !col.AlwaysJoin || col.ForeignKey == nil {
			continue
		}
		parent, ok := c.TableNamed(col.ForeignKey.TargetTable)
		if !ok {
			continue
		}
		if found, ok := c.ColumnOf(parent, property, true); ok {
			return found, true
		}
	}
	return nil, false
}

// AssociationBetween returns the associative table descriptor linking a
// and b, if either declares one. The associative table is looked up by
// name among descriptors already built by TableOf; one that has never been
// built is not found.
func (c *Catalog) AssociationBetween(a, b *TableDescriptor) (*TableDescriptor, bool) {
	for _, link := range a.Assocs {
		if link.TargetTable == b.Name {
			if td, ok := c.TableNamed(link.AssocTable); ok {
				return td, true
			}
		}
	}
	for _, link := range b.Assocs {
		if link.TargetTable == a.Name {
			if td, ok := c.TableNamed(link.AssocTable); ok {
				return td, true
			}
		}
	}
	return nil, false
}

// RedirectMapping returns a descriptor using original's columns
// intersected by name with shadow's, retargeted to shadow's table name —
// for a model type physically stored in more than one table.
func (c *Catalog) RedirectMapping(original, shadow *TableDescriptor) *TableDescriptor {
	shadowNames := make(map[string]bool, len(shadow.Columns))
	for _, col := range shadow.Columns {
		shadowNames[col.Name] = true
	}
	redirected := &TableDescriptor{
		Type:   original.Type,
		Name:   shadow.Name,
		byName: make(map[string]*ColumnDescriptor),
	}
	for _, col := range original.Columns {
		if !shadowNames[col.Name] {
			continue
		}
		clone := *col
		clone.Table = redirected
		redirected.Columns = append(redirected.Columns, &clone)
		redirected.byName[clone.Name] = &clone
	}
	return redirected
}

func buildTable(t reflect.Type) (*TableDescriptor, error) {
	td := &TableDescriptor{
		Type:   t,
		Name:   toSnakeCase(t.Name()),
		byName: make(map[string]*ColumnDescriptor),
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("orm")
		if !ok {
			continue
		}
		if f.Type == metaType {
			applyTypeTag(td, tag)
			continue
		}
		if !f.IsExported() {
			continue
		}
		col, err := buildColumn(td, f, tag)
		if err != nil {
			return nil, err
		}
		if _, dup := td.byName[col.Name]; dup {
			return nil, ormpath.NewSchemaError(td.Name, "duplicate column name "+strconv.Quote(col.Name))
		}
		td.Columns = append(td.Columns, col)
		td.byName[col.Name] = col
	}
	return td, nil
}

func applyTypeTag(td *TableDescriptor, tag string) {
	for _, part := range strings.Split(tag, ",") {
		key, val, _ := strings.Cut(part, "=")
		switch key {
		case "table":
			td.Name = val
		case "versioned":
			td.Versioned = true
		case "assoc":
			for _, pair := range strings.Split(val, ";") {
				target, assoc, ok := strings.Cut(pair, ":")
				if ok {
					td.Assocs = append(td.Assocs, AssocLink{TargetTable: target, AssocTable: assoc})
				}
			}
		}
	}
}

func buildColumn(td *TableDescriptor, f reflect.StructField, tag string) (*ColumnDescriptor, error) {
	col := &ColumnDescriptor{
		Property:  f.Name,
		Table:     td,
		FieldType: f.Type,
		Name:      toSnakeCase(f.Name),
	}
	if f.Type.Kind() == reflect.Slice {
		col.Collection = true
		col.ElemType = f.Type.Elem()
	}
	for _, part := range strings.Split(tag, ",") {
		key, val, hasVal := strings.Cut(part, "=")
		switch key {
		case "column":
			col.Name = val
		case "pk":
			col.PrimaryKey = true
		case "auto":
			col.AutoGenerated = true
		case "unique":
			col.Unique = true
		case "notnull":
			col.NotNull = true
		case "secret":
			col.Secret = true
		case "alwaysjoin":
			col.AlwaysJoin = true
		case "classifier":
			col.Classifier = true
		case "fk":
			table, column, ok := strings.Cut(val, ".")
			if ok {
				col.ForeignKey = &ForeignKey{TargetTable: table, TargetColumn: column}
			}
		case "joinfilter":
			for _, pair := range strings.Split(val, ";") {
				prop, v, ok := strings.Cut(pair, ":")
				if ok {
					col.JoinFilters = append(col.JoinFilters, JoinFilter{Property: prop, Value: v})
				}
			}
		case "default":
			if hasVal {
				col.Default = val
			}
		}
	}
	if col.Name == "" {
		return nil, ormpath.NewSchemaError(td.Name, "column name is empty for property "+f.Name)
	}
	if col.AlwaysJoin && col.ForeignKey == nil {
		return nil, ormpath.NewSchemaError(td.Name, "alwaysjoin column "+col.Name+" has no fk")
	}
	return col, nil
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

package querylanguage

import (
	"database/sql/driver"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

// Fielder is implemented by every typed, not-yet-bound predicate value
// (e.g. the result of StringEQ("x")): it still needs a field name before
// it becomes a concrete P.
type Fielder interface {
	Field(name string) P
}

// FieldP is a typed predicate awaiting a field name. Instantiating it per
// Go type (StringP = FieldP[string], IntP = FieldP[int], ...) gives every
// scalar kind the same EQ/NEQ/.../And/Or/Not vocabulary for one
// implementation, the same reduction predicate.go's StringField[P] generic
// gets from generics instead of per-type hand-written code.
type FieldP[T any] func(field string) P

// Field binds p to a concrete field name, producing a P.
func (p FieldP[T]) Field(name string) P { return p(name) }

func fieldEQ[T any](v T) FieldP[T] {
	return func(field string) P { return &BinaryExpr{Op: "==", L: F(field), R: &litExpr{v: v}} }
}

func fieldNEQ[T any](v T) FieldP[T] {
	return func(field string) P { return &BinaryExpr{Op: "!=", L: F(field), R: &litExpr{v: v}} }
}

func fieldLT[T any](v T) FieldP[T] {
	return func(field string) P { return &BinaryExpr{Op: "<", L: F(field), R: &litExpr{v: v}} }
}

func fieldLTE[T any](v T) FieldP[T] {
	return func(field string) P { return &BinaryExpr{Op: "<=", L: F(field), R: &litExpr{v: v}} }
}

func fieldGT[T any](v T) FieldP[T] {
	return func(field string) P { return &BinaryExpr{Op: ">", L: F(field), R: &litExpr{v: v}} }
}

func fieldGTE[T any](v T) FieldP[T] {
	return func(field string) P { return &BinaryExpr{Op: ">=", L: F(field), R: &litExpr{v: v}} }
}

func fieldNil[T any]() FieldP[T] {
	return func(field string) P { return &BinaryExpr{Op: "==", L: F(field), R: nilLit{}} }
}

func fieldNotNil[T any]() FieldP[T] {
	return func(field string) P { return &BinaryExpr{Op: "!=", L: F(field), R: nilLit{}} }
}

func fieldAnd[T any](ps ...FieldP[T]) FieldP[T] {
	return func(field string) P {
		bound := make([]P, len(ps))
		for i, p := range ps {
			bound[i] = p(field)
		}
		return &NaryExpr{Op: "&&", Operands: bound}
	}
}

func fieldOr[T any](ps ...FieldP[T]) FieldP[T] {
	return func(field string) P {
		bound := make([]P, len(ps))
		for i, p := range ps {
			bound[i] = p(field)
		}
		return &NaryExpr{Op: "||", Operands: bound}
	}
}

func fieldNot[T any](p FieldP[T]) FieldP[T] {
	return func(field string) P { return &UnaryExpr{X: p(field)} }
}

// litExpr renders a bound scalar literal per formatLit's rules.
type litExpr struct{ v any }

func (l *litExpr) String() string { return formatLit(l.v) }
func (l *litExpr) Negate() P      { return &UnaryExpr{X: l} }

// nilLit renders the literal "nil".
type nilLit struct{}

func (nilLit) String() string { return "nil" }
func (nilLit) Negate() P      { return &UnaryExpr{X: nilLit{}} }

// formatLit renders a Go value the way the predicate tree's String() form
// expects it: quoted for strings/bytes/times, bare for numbers and bools.
// Values of any other shape (a driver.Valuer, an arbitrary struct, ...) have
// no general literal form, so they render as the opaque placeholder "{}".
func formatLit(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case []byte:
		return strconv.Quote(base64.StdEncoding.EncodeToString(x))
	case time.Time:
		return strconv.Quote(x.Format(time.RFC3339))
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return "{}"
	}
}

// StringP is a string-valued predicate awaiting a field name.
type StringP = FieldP[string]

func StringEQ(v string) StringP          { return fieldEQ(v) }
func StringNEQ(v string) StringP         { return fieldNEQ(v) }
func StringLT(v string) StringP          { return fieldLT(v) }
func StringLTE(v string) StringP         { return fieldLTE(v) }
func StringGT(v string) StringP          { return fieldGT(v) }
func StringGTE(v string) StringP         { return fieldGTE(v) }
func StringNil() StringP                 { return fieldNil[string]() }
func StringNotNil() StringP              { return fieldNotNil[string]() }
func StringAnd(ps ...StringP) StringP    { return fieldAnd(ps...) }
func StringOr(ps ...StringP) StringP     { return fieldOr(ps...) }
func StringNot(p StringP) StringP        { return fieldNot(p) }

// IntP is an int-valued predicate awaiting a field name.
type IntP = FieldP[int]

func IntEQ(v int) IntP       { return fieldEQ(v) }
func IntNEQ(v int) IntP      { return fieldNEQ(v) }
func IntLT(v int) IntP       { return fieldLT(v) }
func IntLTE(v int) IntP      { return fieldLTE(v) }
func IntGT(v int) IntP       { return fieldGT(v) }
func IntGTE(v int) IntP      { return fieldGTE(v) }
func IntNil() IntP           { return fieldNil[int]() }
func IntNotNil() IntP        { return fieldNotNil[int]() }
func IntAnd(ps ...IntP) IntP { return fieldAnd(ps...) }
func IntOr(ps ...IntP) IntP  { return fieldOr(ps...) }
func IntNot(p IntP) IntP     { return fieldNot(p) }

// Int8P is an int8-valued predicate awaiting a field name.
type Int8P = FieldP[int8]

func Int8EQ(v int8) Int8P        { return fieldEQ(v) }
func Int8NEQ(v int8) Int8P       { return fieldNEQ(v) }
func Int8LT(v int8) Int8P        { return fieldLT(v) }
func Int8LTE(v int8) Int8P       { return fieldLTE(v) }
func Int8GT(v int8) Int8P        { return fieldGT(v) }
func Int8GTE(v int8) Int8P       { return fieldGTE(v) }
func Int8Nil() Int8P             { return fieldNil[int8]() }
func Int8NotNil() Int8P          { return fieldNotNil[int8]() }
func Int8And(ps ...Int8P) Int8P  { return fieldAnd(ps...) }
func Int8Or(ps ...Int8P) Int8P   { return fieldOr(ps...) }
func Int8Not(p Int8P) Int8P      { return fieldNot(p) }

// Int16P is an int16-valued predicate awaiting a field name.
type Int16P = FieldP[int16]

func Int16EQ(v int16) Int16P       { return fieldEQ(v) }
func Int16NEQ(v int16) Int16P      { return fieldNEQ(v) }
func Int16LT(v int16) Int16P       { return fieldLT(v) }
func Int16LTE(v int16) Int16P      { return fieldLTE(v) }
func Int16GT(v int16) Int16P       { return fieldGT(v) }
func Int16GTE(v int16) Int16P      { return fieldGTE(v) }
func Int16Nil() Int16P             { return fieldNil[int16]() }
func Int16NotNil() Int16P          { return fieldNotNil[int16]() }
func Int16And(ps ...Int16P) Int16P { return fieldAnd(ps...) }
func Int16Or(ps ...Int16P) Int16P  { return fieldOr(ps...) }
func Int16Not(p Int16P) Int16P     { return fieldNot(p) }

// Int32P is an int32-valued predicate awaiting a field name.
type Int32P = FieldP[int32]

func Int32EQ(v int32) Int32P       { return fieldEQ(v) }
func Int32NEQ(v int32) Int32P      { return fieldNEQ(v) }
func Int32LT(v int32) Int32P       { return fieldLT(v) }
func Int32LTE(v int32) Int32P      { return fieldLTE(v) }
func Int32GT(v int32) Int32P       { return fieldGT(v) }
func Int32GTE(v int32) Int32P      { return fieldGTE(v) }
func Int32Nil() Int32P             { return fieldNil[int32]() }
func Int32NotNil() Int32P          { return fieldNotNil[int32]() }
func Int32And(ps ...Int32P) Int32P { return fieldAnd(ps...) }
func Int32Or(ps ...Int32P) Int32P  { return fieldOr(ps...) }
func Int32Not(p Int32P) Int32P     { return fieldNot(p) }

// Int64P is an int64-valued predicate awaiting a field name.
type Int64P = FieldP[int64]

func Int64EQ(v int64) Int64P       { return fieldEQ(v) }
func Int64NEQ(v int64) Int64P      { return fieldNEQ(v) }
func Int64LT(v int64) Int64P       { return fieldLT(v) }
func Int64LTE(v int64) Int64P      { return fieldLTE(v) }
func Int64GT(v int64) Int64P       { return fieldGT(v) }
func Int64GTE(v int64) Int64P      { return fieldGTE(v) }
func Int64Nil() Int64P             { return fieldNil[int64]() }
func Int64NotNil() Int64P          { return fieldNotNil[int64]() }
func Int64And(ps ...Int64P) Int64P { return fieldAnd(ps...) }
func Int64Or(ps ...Int64P) Int64P  { return fieldOr(ps...) }
func Int64Not(p Int64P) Int64P     { return fieldNot(p) }

// UintP is a uint-valued predicate awaiting a field name.
type UintP = FieldP[uint]

func UintEQ(v uint) UintP       { return fieldEQ(v) }
func UintNEQ(v uint) UintP      { return fieldNEQ(v) }
func UintLT(v uint) UintP       { return fieldLT(v) }
func UintLTE(v uint) UintP      { return fieldLTE(v) }
func UintGT(v uint) UintP       { return fieldGT(v) }
func UintGTE(v uint) UintP      { return fieldGTE(v) }
func UintNil() UintP            { return fieldNil[uint]() }
func UintNotNil() UintP         { return fieldNotNil[uint]() }
func UintAnd(ps ...UintP) UintP { return fieldAnd(ps...) }
func UintOr(ps ...UintP) UintP  { return fieldOr(ps...) }
func UintNot(p UintP) UintP     { return fieldNot(p) }

// Uint8P is a uint8-valued predicate awaiting a field name.
type Uint8P = FieldP[uint8]

func Uint8EQ(v uint8) Uint8P        { return fieldEQ(v) }
func Uint8NEQ(v uint8) Uint8P       { return fieldNEQ(v) }
func Uint8LT(v uint8) Uint8P        { return fieldLT(v) }
func Uint8LTE(v uint8) Uint8P       { return fieldLTE(v) }
func Uint8GT(v uint8) Uint8P        { return fieldGT(v) }
func Uint8GTE(v uint8) Uint8P       { return fieldGTE(v) }
func Uint8Nil() Uint8P              { return fieldNil[uint8]() }
func Uint8NotNil() Uint8P           { return fieldNotNil[uint8]() }
func Uint8And(ps ...Uint8P) Uint8P  { return fieldAnd(ps...) }
func Uint8Or(ps ...Uint8P) Uint8P   { return fieldOr(ps...) }
func Uint8Not(p Uint8P) Uint8P      { return fieldNot(p) }

// Uint16P is a uint16-valued predicate awaiting a field name.
type Uint16P = FieldP[uint16]

func Uint16EQ(v uint16) Uint16P       { return fieldEQ(v) }
func Uint16NEQ(v uint16) Uint16P      { return fieldNEQ(v) }
func Uint16LT(v uint16) Uint16P       { return fieldLT(v) }
func Uint16LTE(v uint16) Uint16P      { return fieldLTE(v) }
func Uint16GT(v uint16) Uint16P       { return fieldGT(v) }
func Uint16GTE(v uint16) Uint16P      { return fieldGTE(v) }
func Uint16Nil() Uint16P              { return fieldNil[uint16]() }
func Uint16NotNil() Uint16P           { return fieldNotNil[uint16]() }
func Uint16And(ps ...Uint16P) Uint16P { return fieldAnd(ps...) }
func Uint16Or(ps ...Uint16P) Uint16P  { return fieldOr(ps...) }
func Uint16Not(p Uint16P) Uint16P     { return fieldNot(p) }

// Uint32P is a uint32-valued predicate awaiting a field name.
type Uint32P = FieldP[uint32]

func Uint32EQ(v uint32) Uint32P       { return fieldEQ(v) }
func Uint32NEQ(v uint32) Uint32P      { return fieldNEQ(v) }
func Uint32LT(v uint32) Uint32P       { return fieldLT(v) }
func Uint32LTE(v uint32) Uint32P      { return fieldLTE(v) }
func Uint32GT(v uint32) Uint32P       { return fieldGT(v) }
func Uint32GTE(v uint32) Uint32P      { return fieldGTE(v) }
func Uint32Nil() Uint32P              { return fieldNil[uint32]() }
func Uint32NotNil() Uint32P           { return fieldNotNil[uint32]() }
func Uint32And(ps ...Uint32P) Uint32P { return fieldAnd(ps...) }
func Uint32Or(ps ...Uint32P) Uint32P  { return fieldOr(ps...) }
func Uint32Not(p Uint32P) Uint32P     { return fieldNot(p) }

// Uint64P is a uint64-valued predicate awaiting a field name.
type Uint64P = FieldP[uint64]

func Uint64EQ(v uint64) Uint64P       { return fieldEQ(v) }
func Uint64NEQ(v uint64) Uint64P      { return fieldNEQ(v) }
func Uint64LT(v uint64) Uint64P       { return fieldLT(v) }
func Uint64LTE(v uint64) Uint64P      { return fieldLTE(v) }
func Uint64GT(v uint64) Uint64P       { return fieldGT(v) }
func Uint64GTE(v uint64) Uint64P      { return fieldGTE(v) }
func Uint64Nil() Uint64P              { return fieldNil[uint64]() }
func Uint64NotNil() Uint64P           { return fieldNotNil[uint64]() }
func Uint64And(ps ...Uint64P) Uint64P { return fieldAnd(ps...) }
func Uint64Or(ps ...Uint64P) Uint64P  { return fieldOr(ps...) }
func Uint64Not(p Uint64P) Uint64P     { return fieldNot(p) }

// Float32P is a float32-valued predicate awaiting a field name.
type Float32P = FieldP[float32]

func Float32EQ(v float32) Float32P        { return fieldEQ(v) }
func Float32NEQ(v float32) Float32P       { return fieldNEQ(v) }
func Float32LT(v float32) Float32P        { return fieldLT(v) }
func Float32LTE(v float32) Float32P       { return fieldLTE(v) }
func Float32GT(v float32) Float32P        { return fieldGT(v) }
func Float32GTE(v float32) Float32P       { return fieldGTE(v) }
func Float32Nil() Float32P                { return fieldNil[float32]() }
func Float32NotNil() Float32P             { return fieldNotNil[float32]() }
func Float32And(ps ...Float32P) Float32P  { return fieldAnd(ps...) }
func Float32Or(ps ...Float32P) Float32P   { return fieldOr(ps...) }
func Float32Not(p Float32P) Float32P      { return fieldNot(p) }

// Float64P is a float64-valued predicate awaiting a field name.
type Float64P = FieldP[float64]

func Float64EQ(v float64) Float64P        { return fieldEQ(v) }
func Float64NEQ(v float64) Float64P       { return fieldNEQ(v) }
func Float64LT(v float64) Float64P        { return fieldLT(v) }
func Float64LTE(v float64) Float64P       { return fieldLTE(v) }
func Float64GT(v float64) Float64P        { return fieldGT(v) }
func Float64GTE(v float64) Float64P       { return fieldGTE(v) }
func Float64Nil() Float64P                { return fieldNil[float64]() }
func Float64NotNil() Float64P             { return fieldNotNil[float64]() }
func Float64And(ps ...Float64P) Float64P  { return fieldAnd(ps...) }
func Float64Or(ps ...Float64P) Float64P   { return fieldOr(ps...) }
func Float64Not(p Float64P) Float64P      { return fieldNot(p) }

// BoolP is a bool-valued predicate awaiting a field name. Booleans have no
// natural ordering, so there is no LT/LTE/GT/GTE family.
type BoolP = FieldP[bool]

func BoolEQ(v bool) BoolP       { return fieldEQ(v) }
func BoolNEQ(v bool) BoolP      { return fieldNEQ(v) }
func BoolNil() BoolP            { return fieldNil[bool]() }
func BoolNotNil() BoolP         { return fieldNotNil[bool]() }
func BoolAnd(ps ...BoolP) BoolP { return fieldAnd(ps...) }
func BoolOr(ps ...BoolP) BoolP  { return fieldOr(ps...) }
func BoolNot(p BoolP) BoolP     { return fieldNot(p) }

// BytesP is a []byte-valued predicate awaiting a field name. Equality
// literals render the bytes base64-encoded; there is no ordering family.
type BytesP = FieldP[[]byte]

func BytesEQ(v []byte) BytesP     { return fieldEQ(v) }
func BytesNEQ(v []byte) BytesP    { return fieldNEQ(v) }
func BytesNil() BytesP            { return fieldNil[[]byte]() }
func BytesNotNil() BytesP         { return fieldNotNil[[]byte]() }
func BytesAnd(ps ...BytesP) BytesP { return fieldAnd(ps...) }
func BytesOr(ps ...BytesP) BytesP  { return fieldOr(ps...) }
func BytesNot(p BytesP) BytesP     { return fieldNot(p) }

// TimeP is a time.Time-valued predicate awaiting a field name. Equality and
// ordering literals render RFC3339.
type TimeP = FieldP[time.Time]

func TimeEQ(v time.Time) TimeP     { return fieldEQ(v) }
func TimeNEQ(v time.Time) TimeP    { return fieldNEQ(v) }
func TimeLT(v time.Time) TimeP     { return fieldLT(v) }
func TimeLTE(v time.Time) TimeP    { return fieldLTE(v) }
func TimeGT(v time.Time) TimeP     { return fieldGT(v) }
func TimeGTE(v time.Time) TimeP    { return fieldGTE(v) }
func TimeNil() TimeP               { return fieldNil[time.Time]() }
func TimeNotNil() TimeP            { return fieldNotNil[time.Time]() }
func TimeAnd(ps ...TimeP) TimeP    { return fieldAnd(ps...) }
func TimeOr(ps ...TimeP) TimeP     { return fieldOr(ps...) }
func TimeNot(p TimeP) TimeP        { return fieldNot(p) }

// ValueP is a predicate over a database/sql/driver.Valuer-typed field,
// awaiting a field name. No general literal form exists for an arbitrary
// Valuer, so equality renders as the opaque placeholder "{}" (see formatLit).
type ValueP = FieldP[driver.Valuer]

func ValueEQ(v driver.Valuer) ValueP     { return fieldEQ(v) }
func ValueNEQ(v driver.Valuer) ValueP    { return fieldNEQ(v) }
func ValueNil() ValueP                   { return fieldNil[driver.Valuer]() }
func ValueNotNil() ValueP                { return fieldNotNil[driver.Valuer]() }
func ValueAnd(ps ...ValueP) ValueP       { return fieldAnd(ps...) }
func ValueOr(ps ...ValueP) ValueP        { return fieldOr(ps...) }
func ValueNot(p ValueP) ValueP           { return fieldNot(p) }

// OtherP is a predicate over a field of some other, arbitrary Go type,
// awaiting a field name. A value of a kind formatLit knows (string, number,
// bool, []byte, time.Time) renders as that literal; any other value renders
// as the opaque placeholder "{}", as for ValueP.
type OtherP = FieldP[any]

func OtherEQ(v any) OtherP     { return fieldEQ(v) }
func OtherNEQ(v any) OtherP    { return fieldNEQ(v) }
func OtherNil() OtherP         { return fieldNil[any]() }
func OtherNotNil() OtherP      { return fieldNotNil[any]() }
func OtherAnd(ps ...OtherP) OtherP { return fieldAnd(ps...) }
func OtherOr(ps ...OtherP) OtherP  { return fieldOr(ps...) }
func OtherNot(p OtherP) OtherP     { return fieldNot(p) }

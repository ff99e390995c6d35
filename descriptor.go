package typehelper

import (
	"math/big"
	"reflect"
)

// Resolvable describes an expected type. Exactly one variant is active
// per descriptor:
//
//   - a Tag (or raw string) naming a primitive kind or a special
//     category;
//   - a reflect.Type, matched with instance-of semantics;
//   - an enumeration-like mapping: any map with a string-kinded key
//     type, matched by strict-equality membership over its values.
//
// A descriptor that is none of these matches no value.
type Resolvable any

// Tag names a primitive kind or a special category. The vocabulary is
// closed; adding or renaming a tag is a breaking change.
type Tag string

const (
	TypeString    Tag = "string"
	TypeNumber    Tag = "number"
	TypeBigInt    Tag = "bigint"
	TypeBoolean   Tag = "boolean"
	TypeSymbol    Tag = "symbol"
	TypeUndefined Tag = "undefined"
	TypeObject    Tag = "object"
	TypeFunction  Tag = "function"

	TypeNull     Tag = "null"
	TypeNullable Tag = "nullable"
	TypeArray    Tag = "array"
	TypeIterable Tag = "iterable"
)

// Valid reports whether t belongs to the tag vocabulary.
func (t Tag) Valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeBigInt, TypeBoolean, TypeSymbol,
		TypeUndefined, TypeObject, TypeFunction,
		TypeNull, TypeNullable, TypeArray, TypeIterable:
		return true
	}
	return false
}

// Symbol is an opaque token with identity equality. Every Symbol
// returned by NewSymbol is distinct from every other, even when the
// descriptions coincide. Symbols are the values classified by the
// "symbol" tag.
type Symbol struct {
	d *symbolData
}

type symbolData struct {
	description string
}

// NewSymbol returns a fresh Symbol carrying description.
func NewSymbol(description string) Symbol {
	return Symbol{d: &symbolData{description: description}}
}

// Description returns the description the Symbol was created with.
func (s Symbol) Description() string {
	if s.d == nil {
		return ""
	}
	return s.d.description
}

func (s Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}

// primitiveOf is the runtime primitive classification probe.
//
// A nil interface classifies as "undefined"; a typed nil (nil pointer,
// map, slice, channel, func, or unsafe pointer held by a non-nil
// interface) classifies as "null". Everything else classifies by kind:
// integer and float kinds are "number", non-nil *big.Int is "bigint",
// Symbol is "symbol", and whatever names no narrower class is
// "object". Because nils get their own classes, the "object" tag can
// never match them.
func primitiveOf(v any) Tag {
	if v == nil {
		return TypeUndefined
	}
	if _, ok := v.(Symbol); ok {
		return TypeSymbol
	}
	if b, ok := v.(*big.Int); ok {
		if b == nil {
			return TypeNull
		}
		return TypeBigInt
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return TypeNull
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		return TypeBoolean
	case reflect.String:
		return TypeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Func:
		return TypeFunction
	default:
		return TypeObject
	}
}

// isNull reports whether v is a typed nil.
func isNull(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// isArray reports whether v is a true array: a non-nil slice or an
// array value. Array-likes (anything that merely carries a length) do
// not count.
func isArray(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return !rv.IsNil()
	case reflect.Array:
		return true
	}
	return false
}

// isIterable reports whether v supports external iteration: anything
// range accepts (strings, arrays, non-nil slices, maps and channels,
// pointers to arrays) plus non-nil funcs shaped like iter.Seq or
// iter.Seq2. A nil sequence func is an iteration protocol member that
// is explicitly null, and is not iterable.
func isIterable(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Array:
		return true
	case reflect.Slice, reflect.Map, reflect.Chan:
		return !rv.IsNil()
	case reflect.Func:
		return !rv.IsNil() && isSeqFunc(rv.Type())
	case reflect.Ptr:
		return !rv.IsNil() && rv.Type().Elem().Kind() == reflect.Array
	}
	return false
}

// isSeqFunc reports whether t has the iter.Seq/iter.Seq2 shape:
// func(yield func(...) bool) with one or two yield arguments.
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.IsVariadic() {
		return false
	}
	if y.NumIn() != 1 && y.NumIn() != 2 {
		return false
	}
	return y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

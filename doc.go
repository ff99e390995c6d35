// Package typehelper provides runtime type checks for values of
// unknown static type, for guarding function boundaries.
//
// A check takes a value and a descriptor (Resolvable) of the expected
// shape: a Tag naming a primitive kind or special category, a
// reflect.Type matched with instance-of semantics, or an
// enumeration-like map matched by membership over its values.
// Predicates (IsType, IsAnyType, IsTypeArray, IsNullable) always
// return a boolean; the ErrIf family wraps them into assertions that
// return a single *Error kind, the type violation, on failure.
//
//	if err := typehelper.ErrIfNotType(v, typehelper.TypeIterable); err != nil {
//		return err
//	}
//
// All operations are pure functions of their arguments: no state, no
// caching, no coercion, and no structural validation of object shapes.
package typehelper

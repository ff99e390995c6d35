package typehelper

import "strings"

// ErrIf returns a type violation carrying message when cond is true,
// and nil otherwise. It is the generic guard the other assertions are
// built on.
func ErrIf(cond bool, message string) error {
	if cond {
		return &Error{Message: message}
	}
	return nil
}

// ErrIfNullable returns a type violation when value is null or
// undefined.
func ErrIfNullable(value any) error {
	return ErrIf(IsNullable(value), "value is null or undefined")
}

// ErrIfNotNullable returns a type violation when value is neither null
// nor undefined.
func ErrIfNotNullable(value any) error {
	return ErrIf(!IsNullable(value), "value is not null or undefined")
}

// ErrIfUndefined returns a type violation when value is exactly
// undefined. A typed nil is null, not undefined, and passes.
func ErrIfUndefined(value any) error {
	return ErrIf(primitiveOf(value) == TypeUndefined, "value is undefined")
}

// ErrIfType returns a type violation when value conforms to t.
func ErrIfType(value any, t Resolvable) error {
	return ErrIf(IsType(value, t), "value must not be of type "+describeType(t))
}

// ErrIfNotType returns a type violation when value does not conform
// to t.
func ErrIfNotType(value any, t Resolvable) error {
	return ErrIf(!IsType(value, t), "value is not of type "+describeType(t))
}

// ErrIfNotAnyType returns a type violation when value conforms to none
// of the descriptors. Nil descriptor slots are skipped, as in
// IsAnyType.
func ErrIfNotAnyType(value any, types ...Resolvable) error {
	if IsAnyType(value, types...) {
		return nil
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		if t == nil {
			continue
		}
		names = append(names, describeType(t))
	}
	return &Error{Message: "value is not of any of the types " + strings.Join(names, ", ")}
}

// ErrIfNotTypeArray returns a type violation when value is not a true
// array of elements conforming to t.
func ErrIfNotTypeArray(value any, t Resolvable) error {
	return ErrIf(!IsTypeArray(value, t), "value is not an array of "+describeType(t))
}

package typehelper

import "reflect"

// IsType reports whether value conforms to the descriptor t.
//
// Descriptor variants are tried in a fixed order: string-valued
// descriptors (Tag or raw string) first, then reflect.Type constructor
// references, then enumeration-like mappings. The order is part of the
// contract; no variant matches by falling through another branch, and
// a descriptor that fits no variant matches nothing. IsType never
// panics and never returns an error.
func IsType(value any, t Resolvable) bool {
	switch d := t.(type) {
	case Tag:
		return matchTag(value, d)
	case string:
		return matchTag(value, Tag(d))
	case reflect.Type:
		return matchInstance(value, d)
	default:
		return Includes(value, Values(t))
	}
}

// matchTag resolves a string-valued descriptor. The primitive
// classification is consulted first; only the composite special tags
// get their own probes afterwards. "null" needs no extra branch here
// because the classification probe already names typed nils "null",
// which also keeps them out of the "object" tag.
func matchTag(value any, tag Tag) bool {
	if primitiveOf(value) == tag {
		return true
	}
	switch tag {
	case TypeNullable:
		return IsNullable(value)
	case TypeIterable:
		return isIterable(value)
	case TypeArray:
		return isArray(value)
	}
	return false
}

// matchInstance resolves a reflect.Type descriptor with instance-of
// semantics: assignability covers identity and interface satisfaction,
// Go's two subtype relations. Embedding is not substitutability and is
// not traversed.
func matchInstance(value any, want reflect.Type) bool {
	if value == nil || want == nil {
		return false
	}
	return reflect.TypeOf(value).AssignableTo(want)
}

// IsAnyType reports whether value conforms to any of the descriptors,
// tried left to right with short-circuiting. Nil descriptor slots are
// skipped and never matched against.
func IsAnyType(value any, types ...Resolvable) bool {
	for _, t := range types {
		if t == nil {
			continue
		}
		if IsType(value, t) {
			return true
		}
	}
	return false
}

// IsTypeArray reports whether value is a true array whose every
// element conforms to t. An empty array conforms to every descriptor;
// the first non-conforming element stops the scan.
func IsTypeArray(value any, t Resolvable) bool {
	if !isArray(value) {
		return false
	}
	rv := reflect.ValueOf(value)
	for i := 0; i < rv.Len(); i++ {
		if !IsType(rv.Index(i).Interface(), t) {
			return false
		}
	}
	return true
}

// IsNullable reports whether value is null or undefined: a nil
// interface, or a typed nil held by a non-nil interface.
func IsNullable(value any) bool {
	return value == nil || isNull(value)
}

package typehelper

import (
	"iter"
	"reflect"
	"sort"
	"strconv"
)

// Values returns a lazy sequence over the values of an enumeration-like
// mapping. The sequence is restartable: each range over it starts from
// the first value again.
//
// Numeric-looking keys are visited first in ascending numeric order,
// then the remaining keys lexicographically, so the reverse entries of
// a reversible enumeration are visited before the forward ones. A
// descriptor that is not a map with string-kinded keys, or a nil map,
// yields an empty sequence.
func Values(mapping any) iter.Seq[any] {
	return func(yield func(any) bool) {
		rv := reflect.ValueOf(mapping)
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
			return
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return enumKeyLess(keys[i].String(), keys[j].String())
		})
		for _, k := range keys {
			mv := rv.MapIndex(k)
			if !mv.IsValid() {
				continue
			}
			if !yield(mv.Interface()) {
				return
			}
		}
	}
}

// enumKeyLess orders numeric-looking keys first, ascending; ties and
// non-numeric keys fall back to lexicographic order.
func enumKeyLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		if fa != fb {
			return fa < fb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// Includes reports whether seq yields an element strictly equal to v.
// It stops consuming seq at the first match, so lazily produced and
// even infinite sequences are safe whenever a match occurs early; a
// non-matching infinite sequence never returns, which is the caller's
// responsibility.
func Includes(v any, seq iter.Seq[any]) bool {
	for e := range seq {
		if strictEqual(v, e) {
			return true
		}
	}
	return false
}

// strictEqual is same-type, same-value equality with no coercion.
// Values of distinct dynamic types are never equal, and values of
// uncomparable dynamic types are never equal to anything.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

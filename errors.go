package typehelper

import (
	"reflect"
	"strconv"
)

// Error is the single error kind produced by the assertion layer: a
// type violation. The message is fixed per assertion and names the
// descriptor where one is involved; it never includes the offending
// value, so violations can be logged without leaking data.
//
// Callers match it with errors.As:
//
//	var verr *typehelper.Error
//	if errors.As(err, &verr) { ... }
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return "type violation: " + e.Message
}

// describeType names a descriptor for assertion messages.
func describeType(t Resolvable) string {
	switch d := t.(type) {
	case Tag:
		return strconv.Quote(string(d))
	case string:
		return strconv.Quote(d)
	case reflect.Type:
		return d.String()
	case nil:
		return "<nil descriptor>"
	}
	if rt := reflect.TypeOf(t); rt.Kind() == reflect.Map {
		return "enumeration " + rt.String()
	}
	return reflect.TypeOf(t).String()
}

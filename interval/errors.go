package interval

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNullArgument is returned when a required value is absent.
	ErrNullArgument = errors.New("required argument is absent")

	// ErrInvalidRange is returned when an end precedes its start or a duration is negative.
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnsupportedStep is returned when a step or quantum can not advance the point type.
	ErrUnsupportedStep = errors.New("unsupported step")
)

// absent reports whether v is nil, either as an interface or as a nil
// pointer-like value boxed inside one.
func absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func requirePresent(name string, v any) error {
	if absent(v) {
		return errors.Wrapf(ErrNullArgument, "%s", name)
	}
	return nil
}

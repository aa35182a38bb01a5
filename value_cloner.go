package pocketcache

import (
	"fmt"

	"github.com/goccy/go-reflect"
)

// ValueCloner is an interface for cloning values.
// Cache clones values when they are stored and when they are returned, so that
// callers never share a stored value beyond a single call.
// The CloneValue method should return a deep copy of the input value.
type ValueCloner[T ValueConstraint] interface {
	CloneValue(T) T
}

// ValueClonerFunc is a function type that implements the ValueCloner interface.
type ValueClonerFunc[T ValueConstraint] func(v T) T

// CloneValue calls the function.
func (f ValueClonerFunc[T]) CloneValue(v T) T {
	return f(v)
}

// NopValueCloner is a value cloner that does not clone values.
// It is used when values do not need to be cloned. (e.g. when the values are primitive types or immutable usage)
type NopValueCloner[T ValueConstraint] struct{}

// CloneValue returns the input value.
func (NopValueCloner[T]) CloneValue(v T) T {
	return v
}

// DefaultValueCloner returns the default cloner for the given value type.
// It uses the Clone or DeepCopy method of the value type if it has one,
// and NopValueCloner otherwise.
func DefaultValueCloner[T ValueConstraint]() ValueCloner[T] {
	var zero T
	if cloner, ok := methodValueCloner[T](zero); ok {
		return cloner
	}
	return NopValueCloner[T]{}
}

// StrictValueCloner is like DefaultValueCloner, but panics if the value type can
// share memory with the stored value and has neither Clone nor DeepCopy method.
// Only primitive types are accepted without such a method.
func StrictValueCloner[T ValueConstraint]() ValueCloner[T] {
	var zero T
	if cloner, ok := methodValueCloner[T](zero); ok {
		return cloner
	}

	typ := reflect.TypeOf(zero)
	if typ == nil {
		panic("pocketcache: interface value type does not have Clone or DeepCopy method")
	}
	switch typ.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return NopValueCloner[T]{}
	default:
		panic(fmt.Sprintf("pocketcache: value type %s does not have Clone or DeepCopy method", typ.String()))
	}
}

func methodValueCloner[T ValueConstraint](v any) (ValueCloner[T], bool) {
	type cloner interface {
		Clone() T
	}
	type deepCopier interface {
		DeepCopy() T
	}

	switch v.(type) {
	case cloner:
		return ValueClonerFunc[T](func(v T) T {
			var a any = v
			return a.(cloner).Clone()
		}), true

	case deepCopier:
		return ValueClonerFunc[T](func(v T) T {
			var a any = v
			return a.(deepCopier).DeepCopy()
		}), true

	default:
		return nil, false
	}
}

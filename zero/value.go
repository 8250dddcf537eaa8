// Package zero provides utilities for working with zero values of generic types.
package zero

import "reflect"

// Value returns the zero value for type T.
// This is how the ranged package instantiates its zero-size bound tags: a
// tag carries no state, so its zero value is the only value it has.
//
// Example:
//
//	var tag = zero.Value[ageBound]()  // usable immediately, no constructor
//	var n = zero.Value[int]()         // returns 0
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T.
// It uses reflect.DeepEqual, so it also works for struct and slice types.
//
// Example:
//
//	zero.IsZero(0)       // returns true
//	zero.IsZero("x")     // returns false
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}

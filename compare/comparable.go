// Package compare provides the comparison interfaces the module's value
// types implement.
package compare

// Comparable is a generic interface for types that can compare themselves
// for equality. Types implementing this interface must provide their own
// Equals method that determines whether two values are equal according to
// the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Ordered extends Comparable with an ordering. Range-constrained values
// implement it by comparing their underlying integers, which makes them
// usable as keys in sorted data structures.
type Ordered[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Less compares two values using the Ordered interface.
// It delegates to the LessThan method of the first argument.
func Less[T any](a Ordered[T], b T) bool {
	return a.LessThan(b)
}

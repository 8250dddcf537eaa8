// Package assert provides invariant assertions that can be compiled out
// with the assertions_disabled build tag. The ranged package uses them to
// guard the preconditions of its unchecked construction path.
package assert

import (
	"golang.org/x/exp/constraints"
)

// InRange asserts that low <= value <= high.
// If the assertion fails, it panics with a message.
// The optional args follow the same formatting rules as True.
func InRange[T constraints.Ordered](value, low, high T, args ...any) {
	True(value >= low && value <= high, args...)
}

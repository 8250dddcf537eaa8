package ranged

import (
	"golang.org/x/exp/constraints"

	"github.com/amp-labs/amp-ranged/zero"
)

// Bound is implemented by the zero-size tag types that attach a closed
// interval to a Value. The tag is part of the value's type identity, so
// two values with different bounds are different Go types.
//
// Implementations must be stateless and must always report the same
// interval:
//
//	type age struct{}
//
//	func (age) Range() (uint8, uint8) { return 0, 17 }
//
//	type Age = ranged.Value[uint8, age]
type Bound[T constraints.Integer] interface {
	// Range reports the closed interval [low, high] of legal values.
	Range() (low, high T)
}

// rangeOf reads the interval off the bound tag without judging it.
func rangeOf[T constraints.Integer, B Bound[T]]() (low, high T) {
	return zero.Value[B]().Range()
}

// boundsOf reads the interval off the bound tag and rejects a malformed
// one (low > high). Every entry point goes through this; Go cannot check
// the relationship at type-declaration time.
func boundsOf[T constraints.Integer, B Bound[T]]() (low, high T, err error) {
	low, high = rangeOf[T, B]()
	if low > high {
		err = &BoundError[T]{Low: low, High: high}
	}

	return low, high, err
}

// mustBounds is boundsOf for the entry points that treat a malformed
// bound as a definitional error rather than a runtime condition.
func mustBounds[T constraints.Integer, B Bound[T]]() (low, high T) {
	low, high, err := boundsOf[T, B]()
	if err != nil {
		panic(err)
	}

	return low, high
}

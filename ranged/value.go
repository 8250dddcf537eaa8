// Package ranged provides range-constrained integer types: wrappers that
// attach a closed interval [MIN, MAX] to an underlying integer and
// guarantee, by construction, that every value built through the package
// lies inside that interval.
//
// The interval is carried by a zero-size [Bound] tag type, making it part
// of the wrapper's type identity rather than per-instance state:
//
//	type percent struct{}
//
//	func (percent) Range() (uint8, uint8) { return 0, 100 }
//
//	type Percent = ranged.Value[uint8, percent]
//
//	p, err := ranged.New[uint8, percent](42)
//
// Values are plain value types: no pointers, no shared state, safe to
// copy and to use from any number of goroutines.
//
// One caveat Go imposes: the zero value of a Value holds the scalar zero,
// which is only legal when the interval contains zero. Treat a Value
// obtained without one of the constructors as unvalidated and run
// Validate on it if it could have been produced that way.
package ranged

import (
	"encoding/binary"
	"fmt"
	"hash"

	"golang.org/x/exp/constraints"

	"github.com/amp-labs/amp-ranged/assert"
)

// Value is an integer of type T constrained to the closed interval
// reported by the bound tag B. Every live Value built through this
// package satisfies low <= value <= high.
type Value[T constraints.Integer, B Bound[T]] struct {
	value T
}

// check validates membership of v in B's interval, recording the outcome
// in the package metrics. It is the single gate every fallible path goes
// through.
func check[T constraints.Integer, B Bound[T]](v T, op string) error {
	low, high, err := boundsOf[T, B]()
	if err != nil {
		observeCheck(op, outcomeInvalidBound)

		return err
	}

	if v < low {
		observeCheck(op, outcomeBelowMinimum)

		return &RangeError[T]{Value: v, Bound: low, Direction: BelowMinimum}
	}

	if v > high {
		observeCheck(op, outcomeAboveMaximum)

		return &RangeError[T]{Value: v, Bound: high, Direction: AboveMaximum}
	}

	observeCheck(op, outcomeOK)

	return nil
}

// New builds a Value from v, failing with a *RangeError if v lies outside
// the interval and with a *BoundError if the bound tag itself is
// malformed. This is the canonical construction path.
func New[T constraints.Integer, B Bound[T]](v T) (Value[T, B], error) {
	if err := check[T, B](v, opConstruct); err != nil {
		return Value[T, B]{}, err
	}

	return Value[T, B]{value: v}, nil
}

// MustNew is New for values known at the call site to be in range.
// It panics on any error.
func MustNew[T constraints.Integer, B Bound[T]](v T) Value[T, B] {
	value, err := New[T, B](v)
	if err != nil {
		panic(err)
	}

	return value
}

// Unchecked builds a Value without a range check. The caller must have
// already established low <= v <= high; passing anything else corrupts
// the invariant the rest of the package relies on. The precondition is
// asserted unless the build disables assertions.
func Unchecked[T constraints.Integer, B Bound[T]](v T) Value[T, B] {
	low, high := mustBounds[T, B]()
	assert.InRange(v, low, high, "ranged: unchecked value %v outside [%v, %v]", v, low, high)

	return Value[T, B]{value: v}
}

// Clamped builds a Value by saturating v into the interval: values below
// the minimum become the minimum, values above the maximum become the
// maximum. It panics if the bound tag is malformed.
func Clamped[T constraints.Integer, B Bound[T]](v T) Value[T, B] {
	low, high := mustBounds[T, B]()

	if v < low {
		v = low
	} else if v > high {
		v = high
	}

	return Value[T, B]{value: v}
}

// Wrapped builds a Value by reducing v into the interval modulo its
// width: the result is low + ((v - low) mod (high - low + 1)), with the
// reduction taken as a true euclidean remainder. It panics if the bound
// tag is malformed.
func Wrapped[T constraints.Integer, B Bound[T]](v T) Value[T, B] {
	low, high := mustBounds[T, B]()

	span, full := spanOf(low, high)
	if full {
		// The interval covers every representable value.
		return Value[T, B]{value: v}
	}

	if v >= low {
		return Value[T, B]{value: fromOffset(low, offsetOf(v, low)%span)}
	}

	// v sits below the interval; step up by whole spans.
	distance := (uint64(low) - uint64(v)) % span
	if distance == 0 {
		return Value[T, B]{value: low}
	}

	return Value[T, B]{value: fromOffset(low, span-distance)}
}

// Raw returns the underlying integer. This never fails: a Value must not
// trap a caller who simply wants the number back.
func (v Value[T, B]) Raw() T {
	return v.value
}

// Min returns the interval's lower endpoint.
func (v Value[T, B]) Min() T {
	low, _ := rangeOf[T, B]()

	return low
}

// Max returns the interval's upper endpoint.
func (v Value[T, B]) Max() T {
	_, high := rangeOf[T, B]()

	return high
}

// Validate re-checks the invariant. Constructed values always pass; this
// exists for values that may have been produced as Go zero values, where
// the interval might not contain zero.
func (v Value[T, B]) Validate() error {
	low, high, err := boundsOf[T, B]()
	if err != nil {
		return err
	}

	if v.value < low {
		return &RangeError[T]{Value: v.value, Bound: low, Direction: BelowMinimum}
	}

	if v.value > high {
		return &RangeError[T]{Value: v.value, Bound: high, Direction: AboveMaximum}
	}

	return nil
}

// Equals reports whether both values hold the same underlying integer.
func (v Value[T, B]) Equals(other Value[T, B]) bool {
	return v.value == other.value
}

// LessThan reports whether v's underlying integer is smaller than
// other's.
func (v Value[T, B]) LessThan(other Value[T, B]) bool {
	return v.value < other.value
}

// Compare returns -1, 0 or +1 ordering v against other by the underlying
// integers.
func (v Value[T, B]) Compare(other Value[T, B]) int {
	return v.CompareRaw(other.value)
}

// CompareRaw orders the underlying integer against a raw scalar.
func (v Value[T, B]) CompareRaw(n T) int {
	switch {
	case v.value < n:
		return -1
	case v.value > n:
		return 1
	default:
		return 0
	}
}

// String renders the underlying integer in decimal.
func (v Value[T, B]) String() string {
	return fmt.Sprintf("%d", v.value)
}

// UpdateHash feeds the underlying integer into h as eight big-endian
// bytes, satisfying hashing.Hashable.
func (v Value[T, B]) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(v.value))

	_, err := h.Write(buf[:])

	return err
}

package ranged

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Conversions come in two tiers. The lossless tier (Widen, WidenTo)
// requires the source interval to nest inside the destination; the
// relationship is checked once per call against the bound tags, never
// against the runtime value, so a well-bounded value can flow through a
// pipeline of widening contexts with no redundant checks. The fallible
// tier (Convert, ConvertTo) runs the same membership check as
// construction. A non-nesting pair handed to the lossless tier is a
// programming error and panics, exactly like a malformed bound.

// Convert re-bounds v under B2, failing with a *RangeError if the value
// does not lie inside B2's interval.
func Convert[B2 Bound[T], T constraints.Integer, B Bound[T]](v Value[T, B]) (Value[T, B2], error) {
	if err := check[T, B2](v.value, opConvert); err != nil {
		return Value[T, B2]{}, err
	}

	return Value[T, B2]{value: v.value}, nil
}

// Widen re-bounds v under B2 without a runtime value check. B's interval
// must nest inside B2's; Widen panics otherwise.
func Widen[B2 Bound[T], T constraints.Integer, B Bound[T]](v Value[T, B]) Value[T, B2] {
	low1, high1 := mustBounds[T, B]()
	low2, high2 := mustBounds[T, B2]()

	if low1 < low2 || high1 > high2 {
		panic(fmt.Sprintf("ranged: interval [%d, %d] does not nest inside [%d, %d]",
			low1, high1, low2, high2))
	}

	return Value[T, B2]{value: v.value}
}

// ConvertTo re-bounds v under B2 across integer widths, failing when the
// value does not lie inside B2's interval (including when it is not
// representable in T2 at all). The membership check is exact for every
// width combination.
func ConvertTo[T2 constraints.Integer, B2 Bound[T2], T constraints.Integer, B Bound[T]](
	v Value[T, B],
) (Value[T2, B2], error) {
	low2, high2, err := boundsOf[T2, B2]()
	if err != nil {
		observeCheck(opConvert, outcomeInvalidBound)

		return Value[T2, B2]{}, err
	}

	if compareCross(v.value, low2) < 0 {
		observeCheck(opConvert, outcomeBelowMinimum)

		return Value[T2, B2]{}, fmt.Errorf("%w: value %d is below the minimum %d",
			ErrBelowMinimum, v.value, low2)
	}

	if compareCross(v.value, high2) > 0 {
		observeCheck(opConvert, outcomeAboveMaximum)

		return Value[T2, B2]{}, fmt.Errorf("%w: value %d is above the maximum %d",
			ErrAboveMaximum, v.value, high2)
	}

	observeCheck(opConvert, outcomeOK)

	// Membership in [low2, high2] implies representability in T2, so the
	// truncating conversion is exact.
	return Value[T2, B2]{value: T2(v.value)}, nil
}

// WidenTo re-bounds v under B2 across integer widths without a runtime
// value check. Both of B's endpoints must be representable in T2 and
// nest inside B2's interval; WidenTo panics otherwise.
func WidenTo[T2 constraints.Integer, B2 Bound[T2], T constraints.Integer, B Bound[T]](
	v Value[T, B],
) Value[T2, B2] {
	low1, high1 := mustBounds[T, B]()
	low2, high2 := mustBounds[T2, B2]()

	if compareCross(low1, low2) < 0 || compareCross(high1, high2) > 0 {
		panic(fmt.Sprintf("ranged: interval [%d, %d] does not nest inside [%d, %d]",
			low1, high1, low2, high2))
	}

	// Endpoints nest, so every interior value is representable in T2 and
	// the conversion below is exact.
	return Value[T2, B2]{value: T2(v.value)}
}

// compareCross orders two integers of possibly different widths and
// signednesses exactly, with no lossy conversion in either direction:
// split on sign first, then compare within a common 64-bit type.
func compareCross[A, B constraints.Integer](a A, b B) int {
	aNeg, bNeg := a < 0, b < 0

	switch {
	case aNeg && !bNeg:
		return -1
	case !aNeg && bNeg:
		return 1
	case aNeg: // both negative; both fit in int64
		return compareOrdered(int64(a), int64(b))
	default: // both non-negative; both fit in uint64
		return compareOrdered(uint64(a), uint64(b))
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

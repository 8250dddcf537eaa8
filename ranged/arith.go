package ranged

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// The arithmetic below never trusts a result that may have wrapped in the
// underlying type: checked operations detect native overflow exactly and
// report it, saturating operations clamp toward the violated endpoint,
// and wrapping operations reduce the true mathematical result modulo the
// interval width using 128-bit intermediates. A wrapped intermediate can
// never slip through a range check.

// isSigned reports whether T is a signed integer type.
func isSigned[T constraints.Integer]() bool {
	var z T

	return z-1 < z
}

// minOf returns the smallest representable value of T without knowing
// its width up front. For unsigned types that is zero; for signed types
// the doubling loop lands on the sign-bit-only value and stops when the
// next doubling wraps.
func minOf[T constraints.Integer]() T {
	if !isSigned[T]() {
		return 0
	}

	v := T(0) - 1
	for next := v + v; next < v; next = v + v {
		v = next
	}

	return v
}

// magnitude returns |v| as a uint64. Exact for every value including the
// most negative one.
func magnitude[T constraints.Integer](v T) uint64 {
	if v < 0 {
		return -uint64(v)
	}

	return uint64(v)
}

// spanOf returns the number of values in [low, high]. full is set when
// the interval covers all 2^64 representable values of a 64-bit type, in
// which case span is meaningless and native wraparound is already the
// correct modular reduction.
func spanOf[T constraints.Integer](low, high T) (span uint64, full bool) {
	d := uint64(high) - uint64(low)
	if d == math.MaxUint64 {
		return 0, true
	}

	return d + 1, false
}

// offsetOf returns v - low as an exact non-negative offset.
// Requires low <= v.
func offsetOf[T constraints.Integer](v, low T) uint64 {
	return uint64(v) - uint64(low)
}

// fromOffset returns low + off. Requires that the sum lands inside the
// interval, so the truncating conversion back to T is exact.
func fromOffset[T constraints.Integer](low T, off uint64) T {
	return T(uint64(low) + off)
}

// emod reduces v to its euclidean residue in [0, span).
func emod[T constraints.Integer](v T, span uint64) uint64 {
	if v >= 0 {
		return uint64(v) % span
	}

	r := magnitude(v) % span
	if r == 0 {
		return 0
	}

	return span - r
}

// negResidue returns (-r) mod span for an already-reduced r.
func negResidue(r, span uint64) uint64 {
	if r == 0 {
		return 0
	}

	return span - r
}

// sumResidues reduces the exact sum of the residues modulo span. The
// 128-bit accumulator keeps the sum exact even when span approaches 2^64.
func sumResidues(span uint64, residues ...uint64) uint64 {
	var hi, lo uint64

	for _, r := range residues {
		var carry uint64

		lo, carry = bits.Add64(lo, r, 0)
		hi += carry
	}

	return bits.Rem64(hi, lo, span)
}

// mulResidue returns (a * b) mod span computed over the exact 128-bit
// product of the magnitudes.
func mulResidue[T constraints.Integer](a, b T, span uint64) uint64 {
	hi, lo := bits.Mul64(magnitude(a), magnitude(b))

	r := bits.Rem64(hi, lo, span)
	if (a < 0) != (b < 0) {
		r = negResidue(r, span)
	}

	return r
}

// addExact returns a + b, or the direction of the native overflow.
func addExact[T constraints.Integer](a, b T) (T, Direction, bool) {
	s := a + b

	if b > 0 && s < a {
		return 0, AboveMaximum, false
	}

	if b < 0 && s > a {
		return 0, BelowMinimum, false
	}

	return s, 0, true
}

// subExact returns a - b, or the direction of the native overflow.
func subExact[T constraints.Integer](a, b T) (T, Direction, bool) {
	s := a - b

	if b > 0 && s > a {
		return 0, BelowMinimum, false
	}

	if b < 0 && s < a {
		return 0, AboveMaximum, false
	}

	return s, 0, true
}

// mulExact returns a * b, or the direction of the native overflow.
func mulExact[T constraints.Integer](a, b T) (T, Direction, bool) {
	if a == 0 || b == 0 {
		return 0, 0, true
	}

	if isSigned[T]() {
		minusOne := T(0) - 1
		if (a == minusOne && b == minOf[T]()) || (b == minusOne && a == minOf[T]()) {
			return 0, AboveMaximum, false
		}
	}

	s := a * b
	if s/a != b {
		if (a < 0) != (b < 0) {
			return 0, BelowMinimum, false
		}

		return 0, AboveMaximum, false
	}

	return s, 0, true
}

// checkedResult folds the exact result of an operation into a Value,
// mapping native overflow to *OverflowError and a range miss to
// *RangeError.
func checkedResult[T constraints.Integer, B Bound[T]](op string, s T, _ Direction, ok bool) (Value[T, B], error) {
	if !ok {
		return Value[T, B]{}, &OverflowError{Op: op}
	}

	if err := check[T, B](s, opArithmetic); err != nil {
		return Value[T, B]{}, err
	}

	return Value[T, B]{value: s}, nil
}

// saturatedResult folds the result of an operation into a Value by
// clamping toward the violated endpoint, for both native overflow and a
// plain range miss.
func saturatedResult[T constraints.Integer, B Bound[T]](s T, dir Direction, ok bool) Value[T, B] {
	low, high := mustBounds[T, B]()

	if !ok {
		if dir == BelowMinimum {
			return Value[T, B]{value: low}
		}

		return Value[T, B]{value: high}
	}

	if s < low {
		return Value[T, B]{value: low}
	}

	if s > high {
		return Value[T, B]{value: high}
	}

	return Value[T, B]{value: s}
}

// Add returns v + other, failing if the sum overflows the underlying
// integer or leaves the interval.
func (v Value[T, B]) Add(other Value[T, B]) (Value[T, B], error) {
	return v.AddRaw(other.value)
}

// AddRaw returns v + n with the same policy as Add.
func (v Value[T, B]) AddRaw(n T) (Value[T, B], error) {
	s, dir, ok := addExact(v.value, n)

	return checkedResult[T, B]("add", s, dir, ok)
}

// Sub returns v - other, failing if the difference overflows the
// underlying integer or leaves the interval.
func (v Value[T, B]) Sub(other Value[T, B]) (Value[T, B], error) {
	return v.SubRaw(other.value)
}

// SubRaw returns v - n with the same policy as Sub.
func (v Value[T, B]) SubRaw(n T) (Value[T, B], error) {
	s, dir, ok := subExact(v.value, n)

	return checkedResult[T, B]("subtract", s, dir, ok)
}

// Mul returns v * other, failing if the product overflows the underlying
// integer or leaves the interval.
func (v Value[T, B]) Mul(other Value[T, B]) (Value[T, B], error) {
	return v.MulRaw(other.value)
}

// MulRaw returns v * n with the same policy as Mul.
func (v Value[T, B]) MulRaw(n T) (Value[T, B], error) {
	s, dir, ok := mulExact(v.value, n)

	return checkedResult[T, B]("multiply", s, dir, ok)
}

// Div returns v / other. A zero divisor fails with ErrDivisionByZero
// before any range check; the signed most-negative-value divided by -1
// fails with *OverflowError.
func (v Value[T, B]) Div(other Value[T, B]) (Value[T, B], error) {
	return v.DivRaw(other.value)
}

// DivRaw returns v / n with the same policy as Div.
func (v Value[T, B]) DivRaw(n T) (Value[T, B], error) {
	if n == 0 {
		return Value[T, B]{}, ErrDivisionByZero
	}

	if isSigned[T]() && n == T(0)-1 && v.value == minOf[T]() {
		return Value[T, B]{}, &OverflowError{Op: "divide"}
	}

	return checkedResult[T, B]("divide", v.value/n, 0, true)
}

// Mod returns v % other, with ErrDivisionByZero for a zero divisor.
func (v Value[T, B]) Mod(other Value[T, B]) (Value[T, B], error) {
	return v.ModRaw(other.value)
}

// ModRaw returns v % n with the same policy as Mod.
func (v Value[T, B]) ModRaw(n T) (Value[T, B], error) {
	if n == 0 {
		return Value[T, B]{}, ErrDivisionByZero
	}

	return checkedResult[T, B]("remainder", v.value%n, 0, true)
}

// AddSaturating returns v + other clamped into the interval.
func (v Value[T, B]) AddSaturating(other Value[T, B]) Value[T, B] {
	return v.AddRawSaturating(other.value)
}

// AddRawSaturating returns v + n clamped into the interval.
func (v Value[T, B]) AddRawSaturating(n T) Value[T, B] {
	s, dir, ok := addExact(v.value, n)

	return saturatedResult[T, B](s, dir, ok)
}

// SubSaturating returns v - other clamped into the interval.
func (v Value[T, B]) SubSaturating(other Value[T, B]) Value[T, B] {
	return v.SubRawSaturating(other.value)
}

// SubRawSaturating returns v - n clamped into the interval.
func (v Value[T, B]) SubRawSaturating(n T) Value[T, B] {
	s, dir, ok := subExact(v.value, n)

	return saturatedResult[T, B](s, dir, ok)
}

// MulSaturating returns v * other clamped into the interval.
func (v Value[T, B]) MulSaturating(other Value[T, B]) Value[T, B] {
	return v.MulRawSaturating(other.value)
}

// MulRawSaturating returns v * n clamped into the interval.
func (v Value[T, B]) MulRawSaturating(n T) Value[T, B] {
	s, dir, ok := mulExact(v.value, n)

	return saturatedResult[T, B](s, dir, ok)
}

// AddWrapping returns v + other reduced modulo the interval width and
// re-biased into the interval.
func (v Value[T, B]) AddWrapping(other Value[T, B]) Value[T, B] {
	return v.AddRawWrapping(other.value)
}

// AddRawWrapping returns v + n reduced modulo the interval width and
// re-biased into the interval: low + ((v + n - low) mod span).
func (v Value[T, B]) AddRawWrapping(n T) Value[T, B] {
	low, high := mustBounds[T, B]()

	span, full := spanOf(low, high)
	if full {
		return Value[T, B]{value: v.value + n}
	}

	off := sumResidues(span,
		emod(v.value, span),
		emod(n, span),
		negResidue(emod(low, span), span))

	return Value[T, B]{value: fromOffset(low, off)}
}

// SubWrapping returns v - other reduced modulo the interval width and
// re-biased into the interval.
func (v Value[T, B]) SubWrapping(other Value[T, B]) Value[T, B] {
	return v.SubRawWrapping(other.value)
}

// SubRawWrapping returns v - n reduced modulo the interval width and
// re-biased into the interval.
func (v Value[T, B]) SubRawWrapping(n T) Value[T, B] {
	low, high := mustBounds[T, B]()

	span, full := spanOf(low, high)
	if full {
		return Value[T, B]{value: v.value - n}
	}

	off := sumResidues(span,
		emod(v.value, span),
		negResidue(emod(n, span), span),
		negResidue(emod(low, span), span))

	return Value[T, B]{value: fromOffset(low, off)}
}

// MulWrapping returns v * other reduced modulo the interval width and
// re-biased into the interval.
func (v Value[T, B]) MulWrapping(other Value[T, B]) Value[T, B] {
	return v.MulRawWrapping(other.value)
}

// MulRawWrapping returns v * n reduced modulo the interval width and
// re-biased into the interval. The product is taken over an exact
// 128-bit intermediate, so no width of T can wrap it prematurely.
func (v Value[T, B]) MulRawWrapping(n T) Value[T, B] {
	low, high := mustBounds[T, B]()

	span, full := spanOf(low, high)
	if full {
		return Value[T, B]{value: v.value * n}
	}

	off := sumResidues(span,
		mulResidue(v.value, n, span),
		negResidue(emod(low, span), span))

	return Value[T, B]{value: fromOffset(low, off)}
}

package ranged

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrOutOfRange is the root of every range violation. Use errors.Is
	// with one of the direction sentinels below to learn which bound was
	// violated.
	ErrOutOfRange = errors.New("value out of range")

	// ErrBelowMinimum matches range violations where the value was
	// smaller than the lower bound.
	ErrBelowMinimum = fmt.Errorf("%w: below minimum", ErrOutOfRange)

	// ErrAboveMaximum matches range violations where the value was
	// larger than the upper bound.
	ErrAboveMaximum = fmt.Errorf("%w: above maximum", ErrOutOfRange)

	// ErrInvalidBound is returned when a bound tag reports a minimum
	// that exceeds its maximum. Such a type is malformed and no value
	// of it can ever be constructed.
	ErrInvalidBound = errors.New("invalid bound")

	// ErrOverflow is returned when the mathematical result of an
	// operation cannot be represented in the underlying integer at all,
	// before any range check applies.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrDivisionByZero is returned by Div and Mod for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

// Direction says which side of the interval a rejected value fell on.
type Direction int

const (
	BelowMinimum Direction = iota
	AboveMaximum
)

// String returns "below minimum" or "above maximum".
func (d Direction) String() string {
	if d == BelowMinimum {
		return "below minimum"
	}

	return "above maximum"
}

// sentinel returns the errors.Is target for the direction.
func (d Direction) sentinel() error {
	if d == BelowMinimum {
		return ErrBelowMinimum
	}

	return ErrAboveMaximum
}

// RangeError reports a value that fell outside its interval. Bound holds
// the violated endpoint (the minimum for BelowMinimum, the maximum for
// AboveMaximum).
type RangeError[T constraints.Integer] struct {
	Value     T
	Bound     T
	Direction Direction
}

func (e *RangeError[T]) Error() string {
	if e.Direction == BelowMinimum {
		return fmt.Sprintf("value %d is below the minimum %d", e.Value, e.Bound)
	}

	return fmt.Sprintf("value %d is above the maximum %d", e.Value, e.Bound)
}

// Unwrap returns the direction sentinel, so both
// errors.Is(err, ErrOutOfRange) and errors.Is(err, ErrBelowMinimum) /
// errors.Is(err, ErrAboveMaximum) hold.
func (e *RangeError[T]) Unwrap() error {
	return e.Direction.sentinel()
}

// BoundError reports a malformed bound tag whose minimum exceeds its
// maximum. Go cannot reject such a type at compile time, so it is caught
// on first use instead.
type BoundError[T constraints.Integer] struct {
	Low  T
	High T
}

func (e *BoundError[T]) Error() string {
	return fmt.Sprintf("minimum %d exceeds maximum %d", e.Low, e.High)
}

func (e *BoundError[T]) Unwrap() error {
	return ErrInvalidBound
}

// OverflowError reports that the named operation produced a result the
// underlying integer cannot represent.
type OverflowError struct {
	Op string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s overflows the underlying integer", e.Op)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

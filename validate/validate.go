// Package validate provides a unified validation entry point for types
// that can check themselves. Range-constrained values, the ready-made
// kinds, and any caller-defined type plug in through the same interface.
package validate

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/amp-labs/amp-ranged/errors"
)

// HasValidate defines the interface for types that can validate themselves.
// Types implementing this interface should return an error if validation
// fails, or nil if the value is valid. The method should be idempotent
// and safe to call multiple times.
type HasValidate interface {
	Validate() error
}

// logger is the destination for the unsupported-type warning. Swappable
// so tests can capture it.
var logger atomic.Pointer[slog.Logger] //nolint:gochecknoglobals

// SetLogger replaces the logger used by this package. A nil logger
// restores the default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func getLogger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}

	return slog.Default()
}

// Validate checks value if it implements HasValidate; values that don't
// implement the interface (including nil) pass trivially. Failures are
// wrapped with errors.ErrValidation so callers can match them with
// errors.Is regardless of the concrete validator.
func Validate(value any) error {
	if value == nil {
		observeValidation(false, false)

		return nil
	}

	validator, ok := value.(HasValidate)
	if !ok {
		getLogger().Warn("Validate called on unsupported type",
			"type", fmt.Sprintf("%T", value))

		observeValidation(false, false)

		return nil
	}

	err := validator.Validate()

	observeValidation(true, err != nil)

	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}

	return nil
}

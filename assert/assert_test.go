//go:build !assertions_disabled

package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { True(true) })
	assert.PanicsWithValue(t, "assertion failed", func() { True(false) })
	assert.PanicsWithValue(t, "got 7", func() { True(false, "got %d", 7) })
}

func TestFalse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { False(false) })
	assert.Panics(t, func() { False(true) })
}

func TestInRange(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { InRange(5, 0, 10) })
	assert.NotPanics(t, func() { InRange(0, 0, 10) })
	assert.NotPanics(t, func() { InRange(10, 0, 10) })
	assert.Panics(t, func() { InRange(11, 0, 10) })
	assert.Panics(t, func() { InRange(-1, 0, 10) })
}

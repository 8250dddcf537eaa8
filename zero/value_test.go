package zero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Value[int]())
	assert.Equal(t, "", Value[string]())
	assert.Nil(t, Value[[]byte]())

	type point struct{ x, y int }

	assert.Equal(t, point{}, Value[point]())
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, IsZero(0))
	assert.True(t, IsZero(""))
	assert.False(t, IsZero(42))
	assert.False(t, IsZero("x"))

	type point struct{ x, y int }

	assert.True(t, IsZero(point{}))
	assert.False(t, IsZero(point{x: 1}))
}

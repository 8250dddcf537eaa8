package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type score int

func (s score) Equals(other score) bool {
	return s == other
}

func (s score) LessThan(other score) bool {
	return s < other
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Equals[score](score(3), 3))
	assert.False(t, Equals[score](score(3), 4))
}

func TestLess(t *testing.T) {
	t.Parallel()

	assert.True(t, Less[score](score(3), 4))
	assert.False(t, Less[score](score(4), 3))
	assert.False(t, Less[score](score(3), 3))
}

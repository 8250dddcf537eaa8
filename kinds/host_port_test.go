package kinds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-ranged/compare"
	"github.com/amp-labs/amp-ranged/ranged"
	"github.com/amp-labs/amp-ranged/validate"
)

var _ compare.Ordered[HostPort] = HostPort{}

func TestNewHostPort(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		hp, err := NewHostPort("localhost", 8080)
		require.NoError(t, err)
		assert.Equal(t, "localhost", hp.Host)
		assert.Equal(t, uint16(8080), hp.Port.Raw())
	})

	t.Run("zero port", func(t *testing.T) {
		t.Parallel()

		_, err := NewHostPort("localhost", 0)
		require.ErrorIs(t, err, ranged.ErrOutOfRange)
	})

	t.Run("empty host", func(t *testing.T) {
		t.Parallel()

		_, err := NewHostPort("", 8080)
		require.Error(t, err)
	})
}

func TestHostPortComparisons(t *testing.T) {
	t.Parallel()

	a, err := NewHostPort("alpha.example.com", 80)
	require.NoError(t, err)

	b, err := NewHostPort("beta.example.com", 80)
	require.NoError(t, err)

	aHigh, err := NewHostPort("alpha.example.com", 443)
	require.NoError(t, err)

	t.Run("equals", func(t *testing.T) {
		t.Parallel()

		same, err := NewHostPort("alpha.example.com", 80)
		require.NoError(t, err)

		assert.True(t, a.Equals(same))
		assert.False(t, a.Equals(b))
		assert.False(t, a.Equals(aHigh))
	})

	t.Run("orders by host then port", func(t *testing.T) {
		t.Parallel()

		assert.True(t, a.LessThan(b))
		assert.False(t, b.LessThan(a))

		assert.True(t, a.LessThan(aHigh))
		assert.False(t, aHigh.LessThan(a))
		assert.False(t, a.LessThan(a))
	})
}

func TestHostPortString(t *testing.T) {
	t.Parallel()

	hp, err := NewHostPort("example.com", 443)
	require.NoError(t, err)
	assert.Equal(t, "example.com:443", hp.String())
}

func TestHostPortValidate(t *testing.T) {
	t.Parallel()

	t.Run("constructed value passes", func(t *testing.T) {
		t.Parallel()

		hp, err := NewHostPort("example.com", 443)
		require.NoError(t, err)
		require.NoError(t, validate.Validate(hp))
	})

	t.Run("zero value fails on both fields", func(t *testing.T) {
		t.Parallel()

		var hp HostPort

		err := hp.Validate()
		require.ErrorIs(t, err, ranged.ErrBelowMinimum)
		require.ErrorContains(t, err, "host must not be empty")
	})
}

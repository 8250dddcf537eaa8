package ranged

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	v := MustNew[uint8, ageBound](17)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "17", string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("inside range", func(t *testing.T) {
		t.Parallel()

		var v Value[uint8, ageBound]

		require.NoError(t, json.Unmarshal([]byte("17"), &v))
		assert.Equal(t, uint8(17), v.Raw())
	})

	t.Run("outside range", func(t *testing.T) {
		t.Parallel()

		var v Value[uint8, ageBound]

		err := json.Unmarshal([]byte("18"), &v)
		require.ErrorIs(t, err, ErrAboveMaximum)
	})

	t.Run("not a number", func(t *testing.T) {
		t.Parallel()

		var v Value[uint8, ageBound]

		require.Error(t, json.Unmarshal([]byte(`"seventeen"`), &v))
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		original := MustNew[int8, offsetBound](-5)

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded Value[int8, offsetBound]

		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, original.Equals(decoded))
	})
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()

	v := MustNew[uint8, shiftedBound](12)

	data, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "12\n", string(data))
}

func TestUnmarshalYAML(t *testing.T) {
	t.Parallel()

	t.Run("inside range", func(t *testing.T) {
		t.Parallel()

		var v Value[uint8, shiftedBound]

		require.NoError(t, yaml.Unmarshal([]byte("12"), &v))
		assert.Equal(t, uint8(12), v.Raw())
	})

	t.Run("outside range", func(t *testing.T) {
		t.Parallel()

		var v Value[uint8, shiftedBound]

		err := yaml.Unmarshal([]byte("42"), &v)
		require.ErrorIs(t, err, ErrAboveMaximum)
	})

	t.Run("document field", func(t *testing.T) {
		t.Parallel()

		type config struct {
			Threshold Value[uint8, ageBound] `yaml:"threshold"`
		}

		var cfg config

		require.NoError(t, yaml.Unmarshal([]byte("threshold: 9"), &cfg))
		assert.Equal(t, uint8(9), cfg.Threshold.Raw())

		err := yaml.Unmarshal([]byte("threshold: 99"), &cfg)
		require.ErrorIs(t, err, ErrAboveMaximum)
	})
}

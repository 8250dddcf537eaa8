package ranged

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Values serialize as the bare number. Decoding runs the checked
// construction path, so a document carrying an out-of-range number is
// rejected instead of producing a value that violates the invariant.

// MarshalJSON implements json.Marshaler.
func (v Value[T, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON implements json.Unmarshaler, validating the decoded
// number against the interval.
func (v *Value[T, B]) UnmarshalJSON(data []byte) error {
	var raw T
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	checked, err := New[T, B](raw)
	if err != nil {
		return err
	}

	*v = checked

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value[T, B]) MarshalYAML() (any, error) {
	return v.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating the decoded
// number against the interval.
func (v *Value[T, B]) UnmarshalYAML(node *yaml.Node) error {
	var raw T
	if err := node.Decode(&raw); err != nil {
		return err
	}

	checked, err := New[T, B](raw)
	if err != nil {
		return err
	}

	*v = checked

	return nil
}

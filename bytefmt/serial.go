package bytefmt

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the stored byte count.
func (b Byte) MarshalJSON() ([]byte, error) { return json.Marshal(b.n) }

// UnmarshalJSON decodes a byte count and re-renders.
func (b *Byte) UnmarshalJSON(data []byte) error {
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("bytefmt: Byte.UnmarshalJSON: %w", err)
	}
	*b = NewByte(n)
	return nil
}

// MarshalYAML encodes the stored byte count.
func (b Byte) MarshalYAML() (any, error) { return b.n, nil }

// UnmarshalYAML decodes a byte count and re-renders.
func (b *Byte) UnmarshalYAML(node *yaml.Node) error {
	var n uint64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("bytefmt: Byte.UnmarshalYAML: %w", err)
	}
	*b = NewByte(n)
	return nil
}

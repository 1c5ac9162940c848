package date

// Serialization hooks: a Date travels as its numeric components, never as
// its text.  Decoding re-runs the [New] validation and rendering, so an
// invalid document fails instead of producing a date whose text and
// components disagree.  The unknown placeholder encodes as all-zero
// components and decodes back to itself.

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// components is the wire form of a Date.
type components struct {
	Year  uint16 `json:"year" yaml:"year"`
	Month uint8  `json:"month,omitempty" yaml:"month,omitempty"`
	Day   uint8  `json:"day,omitempty" yaml:"day,omitempty"`
}

func (d Date) marshalComponents() components {
	return components{Year: d.y, Month: d.m, Day: d.d}
}

func fromComponents(c components) (Date, error) {
	if c == (components{}) {
		return DateUnknown(), nil
	}
	return New(c.Year, c.Month, c.Day)
}

// MarshalJSON encodes the stored components.
func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.marshalComponents()) }

// UnmarshalJSON decodes components, re-validates and re-renders.
func (d *Date) UnmarshalJSON(b []byte) error {
	var c components
	if err := json.Unmarshal(b, &c); err != nil {
		return fmt.Errorf("date: Date.UnmarshalJSON: %w", err)
	}
	nd, err := fromComponents(c)
	if err != nil {
		return fmt.Errorf("date: Date.UnmarshalJSON: %w", err)
	}
	*d = nd
	return nil
}

// MarshalYAML encodes the stored components.
func (d Date) MarshalYAML() (any, error) { return d.marshalComponents(), nil }

// UnmarshalYAML decodes components, re-validates and re-renders.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var c components
	if err := node.Decode(&c); err != nil {
		return fmt.Errorf("date: Date.UnmarshalYAML: %w", err)
	}
	nd, err := fromComponents(c)
	if err != nil {
		return fmt.Errorf("date: Date.UnmarshalYAML: %w", err)
	}
	*d = nd
	return nil
}

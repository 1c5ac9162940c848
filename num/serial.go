package num

// Serialization hooks.  Every wrapper serializes as exactly its stored
// primitive — never its rendered text — and decoding re-runs the rendering
// engine, so the primitive/text invariant holds after any round-trip.

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ── Unsigned ─────────────────────────────────────────────────────────────────

// MarshalJSON encodes the stored uint64.
func (u Unsigned) MarshalJSON() ([]byte, error) { return json.Marshal(u.n) }

// UnmarshalJSON decodes a uint64 and re-renders.
func (u *Unsigned) UnmarshalJSON(b []byte) error {
	var n uint64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("num: Unsigned.UnmarshalJSON: %w", err)
	}
	*u = NewUnsigned(n)
	return nil
}

// MarshalYAML encodes the stored uint64.
func (u Unsigned) MarshalYAML() (any, error) { return u.n, nil }

// UnmarshalYAML decodes a uint64 and re-renders.
func (u *Unsigned) UnmarshalYAML(node *yaml.Node) error {
	var n uint64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("num: Unsigned.UnmarshalYAML: %w", err)
	}
	*u = NewUnsigned(n)
	return nil
}

// ── Int ──────────────────────────────────────────────────────────────────────

// MarshalJSON encodes the stored int64.
func (i Int) MarshalJSON() ([]byte, error) { return json.Marshal(i.n) }

// UnmarshalJSON decodes an int64 and re-renders.
func (i *Int) UnmarshalJSON(b []byte) error {
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("num: Int.UnmarshalJSON: %w", err)
	}
	*i = NewInt(n)
	return nil
}

// MarshalYAML encodes the stored int64.
func (i Int) MarshalYAML() (any, error) { return i.n, nil }

// UnmarshalYAML decodes an int64 and re-renders.
func (i *Int) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("num: Int.UnmarshalYAML: %w", err)
	}
	*i = NewInt(n)
	return nil
}

// ── Float ────────────────────────────────────────────────────────────────────

// MarshalJSON encodes the stored float64.  Note that JSON cannot represent
// NaN or ±Inf; marshaling such a wrapper returns the encoding error from
// encoding/json.
func (f Float) MarshalJSON() ([]byte, error) { return json.Marshal(f.f) }

// UnmarshalJSON decodes a float64 and re-renders.
func (f *Float) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("num: Float.UnmarshalJSON: %w", err)
	}
	*f = NewFloat(v)
	return nil
}

// MarshalYAML encodes the stored float64.
func (f Float) MarshalYAML() (any, error) { return f.f, nil }

// UnmarshalYAML decodes a float64 and re-renders.
func (f *Float) UnmarshalYAML(node *yaml.Node) error {
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("num: Float.UnmarshalYAML: %w", err)
	}
	*f = NewFloat(v)
	return nil
}

// ── Percent ──────────────────────────────────────────────────────────────────

// MarshalJSON encodes the stored float64.
func (p Percent) MarshalJSON() ([]byte, error) { return json.Marshal(p.f) }

// UnmarshalJSON decodes a float64 and re-renders.
func (p *Percent) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("num: Percent.UnmarshalJSON: %w", err)
	}
	*p = NewPercent(v)
	return nil
}

// MarshalYAML encodes the stored float64.
func (p Percent) MarshalYAML() (any, error) { return p.f, nil }

// UnmarshalYAML decodes a float64 and re-renders.
func (p *Percent) UnmarshalYAML(node *yaml.Node) error {
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("num: Percent.UnmarshalYAML: %w", err)
	}
	*p = NewPercent(v)
	return nil
}

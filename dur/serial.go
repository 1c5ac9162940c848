package dur

// Serialization hooks: every family serializes as its stored primitive
// (whole seconds, or float seconds for RuntimeMilli) and re-renders on
// decode.  The sentinel renderings therefore never travel over the wire —
// a decoded wrapper re-derives them from the value.

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the stored whole seconds.
func (r Runtime) MarshalJSON() ([]byte, error) { return json.Marshal(r.secs) }

// UnmarshalJSON decodes seconds and re-renders.
func (r *Runtime) UnmarshalJSON(b []byte) error {
	var secs uint32
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("dur: Runtime.UnmarshalJSON: %w", err)
	}
	*r = NewRuntime(float64(secs))
	return nil
}

// MarshalYAML encodes the stored whole seconds.
func (r Runtime) MarshalYAML() (any, error) { return r.secs, nil }

// UnmarshalYAML decodes seconds and re-renders.
func (r *Runtime) UnmarshalYAML(node *yaml.Node) error {
	var secs uint32
	if err := node.Decode(&secs); err != nil {
		return fmt.Errorf("dur: Runtime.UnmarshalYAML: %w", err)
	}
	*r = NewRuntime(float64(secs))
	return nil
}

// MarshalJSON encodes the stored whole seconds.
func (r RuntimePad) MarshalJSON() ([]byte, error) { return json.Marshal(r.secs) }

// UnmarshalJSON decodes seconds and re-renders.
func (r *RuntimePad) UnmarshalJSON(b []byte) error {
	var secs uint32
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("dur: RuntimePad.UnmarshalJSON: %w", err)
	}
	*r = NewRuntimePad(float64(secs))
	return nil
}

// MarshalYAML encodes the stored whole seconds.
func (r RuntimePad) MarshalYAML() (any, error) { return r.secs, nil }

// UnmarshalYAML decodes seconds and re-renders.
func (r *RuntimePad) UnmarshalYAML(node *yaml.Node) error {
	var secs uint32
	if err := node.Decode(&secs); err != nil {
		return fmt.Errorf("dur: RuntimePad.UnmarshalYAML: %w", err)
	}
	*r = NewRuntimePad(float64(secs))
	return nil
}

// MarshalJSON encodes the stored float seconds.
func (r RuntimeMilli) MarshalJSON() ([]byte, error) { return json.Marshal(r.secs) }

// UnmarshalJSON decodes float seconds and re-renders.
func (r *RuntimeMilli) UnmarshalJSON(b []byte) error {
	var secs float64
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("dur: RuntimeMilli.UnmarshalJSON: %w", err)
	}
	*r = NewRuntimeMilli(secs)
	return nil
}

// MarshalYAML encodes the stored float seconds.
func (r RuntimeMilli) MarshalYAML() (any, error) { return r.secs, nil }

// UnmarshalYAML decodes float seconds and re-renders.
func (r *RuntimeMilli) UnmarshalYAML(node *yaml.Node) error {
	var secs float64
	if err := node.Decode(&secs); err != nil {
		return fmt.Errorf("dur: RuntimeMilli.UnmarshalYAML: %w", err)
	}
	*r = NewRuntimeMilli(secs)
	return nil
}

// MarshalJSON encodes the stored whole seconds.
func (u Uptime) MarshalJSON() ([]byte, error) { return json.Marshal(u.secs) }

// UnmarshalJSON decodes seconds and re-renders.
func (u *Uptime) UnmarshalJSON(b []byte) error {
	var secs uint32
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("dur: Uptime.UnmarshalJSON: %w", err)
	}
	*u = NewUptime(uint64(secs))
	return nil
}

// MarshalYAML encodes the stored whole seconds.
func (u Uptime) MarshalYAML() (any, error) { return u.secs, nil }

// UnmarshalYAML decodes seconds and re-renders.
func (u *Uptime) UnmarshalYAML(node *yaml.Node) error {
	var secs uint32
	if err := node.Decode(&secs); err != nil {
		return fmt.Errorf("dur: Uptime.UnmarshalYAML: %w", err)
	}
	*u = NewUptime(uint64(secs))
	return nil
}

// MarshalJSON encodes the stored whole seconds.
func (u UptimeFull) MarshalJSON() ([]byte, error) { return json.Marshal(u.secs) }

// UnmarshalJSON decodes seconds and re-renders.
func (u *UptimeFull) UnmarshalJSON(b []byte) error {
	var secs uint32
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("dur: UptimeFull.UnmarshalJSON: %w", err)
	}
	*u = NewUptimeFull(uint64(secs))
	return nil
}

// MarshalYAML encodes the stored whole seconds.
func (u UptimeFull) MarshalYAML() (any, error) { return u.secs, nil }

// UnmarshalYAML decodes seconds and re-renders.
func (u *UptimeFull) UnmarshalYAML(node *yaml.Node) error {
	var secs uint32
	if err := node.Decode(&secs); err != nil {
		return fmt.Errorf("dur: UptimeFull.UnmarshalYAML: %w", err)
	}
	*u = NewUptimeFull(uint64(secs))
	return nil
}

// MarshalJSON encodes the stored seconds since midnight.
func (t TimeOfDay) MarshalJSON() ([]byte, error) { return json.Marshal(t.secs) }

// UnmarshalJSON decodes seconds since midnight and re-renders.
func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var secs uint32
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("dur: TimeOfDay.UnmarshalJSON: %w", err)
	}
	*t = NewTimeOfDay(uint64(secs))
	return nil
}

// MarshalYAML encodes the stored seconds since midnight.
func (t TimeOfDay) MarshalYAML() (any, error) { return t.secs, nil }

// UnmarshalYAML decodes seconds since midnight and re-renders.
func (t *TimeOfDay) UnmarshalYAML(node *yaml.Node) error {
	var secs uint32
	if err := node.Decode(&secs); err != nil {
		return fmt.Errorf("dur: TimeOfDay.UnmarshalYAML: %w", err)
	}
	*t = NewTimeOfDay(uint64(secs))
	return nil
}

// MarshalJSON encodes the stored seconds since midnight.
func (t Military) MarshalJSON() ([]byte, error) { return json.Marshal(t.secs) }

// UnmarshalJSON decodes seconds since midnight and re-renders.
func (t *Military) UnmarshalJSON(b []byte) error {
	var secs uint32
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("dur: Military.UnmarshalJSON: %w", err)
	}
	*t = NewMilitary(uint64(secs))
	return nil
}

// MarshalYAML encodes the stored seconds since midnight.
func (t Military) MarshalYAML() (any, error) { return t.secs, nil }

// UnmarshalYAML decodes seconds since midnight and re-renders.
func (t *Military) UnmarshalYAML(node *yaml.Node) error {
	var secs uint32
	if err := node.Decode(&secs); err != nil {
		return fmt.Errorf("dur: Military.UnmarshalYAML: %w", err)
	}
	*t = NewMilitary(uint64(secs))
	return nil
}

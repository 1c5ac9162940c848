package dur

import (
	"time"

	"github.com/TsubasaBE/go-readable/strf"
)

// MaxRuntimeSeconds is the largest span the clock families represent:
// "99:59:59".  Anything above renders the unknown sentinel.
const MaxRuntimeSeconds = 359999

// Fixed renderings of the [Runtime] family.
const (
	UnknownRuntime = "?:??"
	ZeroRuntime    = "0:00"
	MaxRuntime     = "99:59:59"

	// MaxRuntimeLen fits "99:59:59".
	MaxRuntimeLen = 8
)

// Runtime is an audio/video-style clock span: "M:SS" below one hour,
// "H:MM:SS" from one hour up, hours unpadded.
//
//	dur.NewRuntime(11111).String() // "3:05:11"
//
// Fractional seconds always round down.  Negative input clamps to zero;
// spans above [MaxRuntimeSeconds] and non-finite input render
// [UnknownRuntime].
type Runtime struct {
	secs uint32
	s    strf.Str
}

// NewRuntime renders the span of the given seconds.
func NewRuntime(seconds float64) Runtime {
	if nonFinite(seconds) || seconds > MaxRuntimeSeconds {
		return RuntimeUnknown()
	}
	if seconds < 0 {
		seconds = 0
	}
	secs := uint32(seconds)
	return Runtime{secs: secs, s: renderClock(MaxRuntimeLen, secs, false)}
}

// NewRuntimeDuration renders d.  Negative durations clamp to "0:00".
func NewRuntimeDuration(d time.Duration) Runtime {
	return NewRuntime(d.Seconds())
}

// RuntimeZero returns the zero span, rendered "0:00".
func RuntimeZero() Runtime { return NewRuntime(0) }

// RuntimeUnknown returns the sentinel wrapper, rendered [UnknownRuntime].
func RuntimeUnknown() Runtime {
	return Runtime{secs: 0, s: strf.MustFromString(MaxRuntimeLen, UnknownRuntime)}
}

// RuntimeMax returns the largest representable span, rendered "99:59:59".
func RuntimeMax() Runtime { return NewRuntime(MaxRuntimeSeconds) }

// Inner returns the stored whole seconds.
func (r Runtime) Inner() uint32 { return r.secs }

// String returns the canonical clock rendering.
func (r Runtime) String() string { return r.s.String() }

// Str returns the backing buffer by value.
func (r Runtime) Str() strf.Str { return r.s }

// IsUnknown reports whether r is the [RuntimeUnknown] sentinel.
func (r Runtime) IsUnknown() bool { return r == RuntimeUnknown() }

// Add returns r + o.  A sum beyond [MaxRuntimeSeconds] lands on the
// unknown sentinel rather than failing — the family's overflow policy.
func (r Runtime) Add(o Runtime) Runtime {
	return NewRuntime(float64(r.secs) + float64(o.secs))
}

// Sub returns r - o, saturating at zero.
func (r Runtime) Sub(o Runtime) Runtime {
	return NewRuntime(float64(r.secs) - float64(o.secs))
}

// Mul returns r * o seconds.
func (r Runtime) Mul(o Runtime) Runtime {
	return NewRuntime(float64(r.secs) * float64(o.secs))
}

// Div returns r / o seconds.  Panics on a zero divisor.
func (r Runtime) Div(o Runtime) Runtime {
	if o.secs == 0 {
		panic("dur: Runtime.Div: division by zero")
	}
	return NewRuntime(float64(r.secs / o.secs))
}

// Mod returns r % o seconds.  Panics on a zero divisor.
func (r Runtime) Mod(o Runtime) Runtime {
	if o.secs == 0 {
		panic("dur: Runtime.Mod: division by zero")
	}
	return NewRuntime(float64(r.secs % o.secs))
}

// ── RuntimePad ───────────────────────────────────────────────────────────────

// Fixed renderings of the [RuntimePad] family.
const (
	UnknownRuntimePad = "??:??:??"
	ZeroRuntimePad    = "00:00:00"

	// MaxRuntimePadLen fits "99:59:59".
	MaxRuntimePadLen = 8
)

// RuntimePad is [Runtime] with every field zero-padded: always "HH:MM:SS".
type RuntimePad struct {
	secs uint32
	s    strf.Str
}

// NewRuntimePad renders the span of the given seconds.
func NewRuntimePad(seconds float64) RuntimePad {
	if nonFinite(seconds) || seconds > MaxRuntimeSeconds {
		return RuntimePadUnknown()
	}
	if seconds < 0 {
		seconds = 0
	}
	secs := uint32(seconds)
	return RuntimePad{secs: secs, s: renderClock(MaxRuntimePadLen, secs, true)}
}

// NewRuntimePadDuration renders d.
func NewRuntimePadDuration(d time.Duration) RuntimePad {
	return NewRuntimePad(d.Seconds())
}

// RuntimePadZero returns the zero span, rendered "00:00:00".
func RuntimePadZero() RuntimePad { return NewRuntimePad(0) }

// RuntimePadUnknown returns the sentinel wrapper, rendered
// [UnknownRuntimePad].
func RuntimePadUnknown() RuntimePad {
	return RuntimePad{secs: 0, s: strf.MustFromString(MaxRuntimePadLen, UnknownRuntimePad)}
}

// Inner returns the stored whole seconds.
func (r RuntimePad) Inner() uint32 { return r.secs }

// String returns the canonical clock rendering.
func (r RuntimePad) String() string { return r.s.String() }

// Str returns the backing buffer by value.
func (r RuntimePad) Str() strf.Str { return r.s }

// IsUnknown reports whether r is the [RuntimePadUnknown] sentinel.
func (r RuntimePad) IsUnknown() bool { return r == RuntimePadUnknown() }

// Add returns r + o; overflow lands on the unknown sentinel.
func (r RuntimePad) Add(o RuntimePad) RuntimePad {
	return NewRuntimePad(float64(r.secs) + float64(o.secs))
}

// Sub returns r - o, saturating at zero.
func (r RuntimePad) Sub(o RuntimePad) RuntimePad {
	return NewRuntimePad(float64(r.secs) - float64(o.secs))
}

// ── shared clock renderer ────────────────────────────────────────────────────

// renderClock renders secs as a clock string.  With pad set the result is
// always "HH:MM:SS"; otherwise hours are unpadded and omitted while zero,
// and minutes are only padded under an hours field.
func renderClock(capacity int, secs uint32, pad bool) strf.Str {
	h, m, s := clockParts(secs)
	var b [MaxRuntimeLen]byte
	n := 0
	switch {
	case pad:
		write2(b[:], 0, h)
		n = 2
	case h > 0:
		if h >= 10 {
			b[0] = byte(h/10) + '0'
			b[1] = byte(h%10) + '0'
			n = 2
		} else {
			b[0] = byte(h) + '0'
			n = 1
		}
	}
	if n > 0 {
		b[n] = ':'
		n++
		write2(b[:], n, m)
		n += 2
	} else {
		// No hours field: unpadded minutes lead.
		if m >= 10 {
			b[0] = byte(m/10) + '0'
			b[1] = byte(m%10) + '0'
			n = 2
		} else {
			b[0] = byte(m) + '0'
			n = 1
		}
	}
	b[n] = ':'
	n++
	write2(b[:], n, s)
	n += 2
	return strf.FromBytesUnchecked(capacity, b[:n])
}

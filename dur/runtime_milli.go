package dur

import (
	"time"

	"github.com/TsubasaBE/go-readable/strf"
)

// Fixed renderings of the [RuntimeMilli] family.
const (
	UnknownRuntimeMilli = "??:??:??.???"
	ZeroRuntimeMilli    = "00:00:00.000"

	// MaxRuntimeMilliLen fits "99:59:59.999".
	MaxRuntimeMilliLen = 12
)

// RuntimeMilli is [RuntimePad] with a milliseconds suffix:
// "HH:MM:SS.mmm".  It stores the seconds as a float64 so the sub-second
// component survives; milliseconds truncate (11.9999 s renders ".999").
type RuntimeMilli struct {
	secs float64
	s    strf.Str
}

// NewRuntimeMilli renders the span of the given seconds.
func NewRuntimeMilli(seconds float64) RuntimeMilli {
	if nonFinite(seconds) || seconds > MaxRuntimeSeconds {
		return RuntimeMilliUnknown()
	}
	if seconds < 0 {
		seconds = 0
	}
	whole := uint32(seconds)
	milli := uint32((seconds - float64(whole)) * 1000)
	h, m, s := clockParts(whole)

	var b [MaxRuntimeMilliLen]byte
	write2(b[:], 0, h)
	b[2] = ':'
	write2(b[:], 3, m)
	b[5] = ':'
	write2(b[:], 6, s)
	b[8] = '.'
	write3(b[:], 9, milli)
	return RuntimeMilli{secs: seconds, s: strf.FromBytesUnchecked(MaxRuntimeMilliLen, b[:])}
}

// NewRuntimeMilliDuration renders d.
func NewRuntimeMilliDuration(d time.Duration) RuntimeMilli {
	return NewRuntimeMilli(d.Seconds())
}

// RuntimeMilliZero returns the zero span, rendered "00:00:00.000".
func RuntimeMilliZero() RuntimeMilli { return NewRuntimeMilli(0) }

// RuntimeMilliUnknown returns the sentinel wrapper, rendered
// [UnknownRuntimeMilli].
func RuntimeMilliUnknown() RuntimeMilli {
	return RuntimeMilli{secs: 0, s: strf.MustFromString(MaxRuntimeMilliLen, UnknownRuntimeMilli)}
}

// Inner returns the stored seconds, fraction included.
func (r RuntimeMilli) Inner() float64 { return r.secs }

// String returns the canonical clock rendering.
func (r RuntimeMilli) String() string { return r.s.String() }

// Str returns the backing buffer by value.
func (r RuntimeMilli) Str() strf.Str { return r.s }

// IsUnknown reports whether r is the [RuntimeMilliUnknown] sentinel.
func (r RuntimeMilli) IsUnknown() bool { return r == RuntimeMilliUnknown() }

// Add returns r + o; overflow lands on the unknown sentinel.
func (r RuntimeMilli) Add(o RuntimeMilli) RuntimeMilli {
	return NewRuntimeMilli(r.secs + o.secs)
}

// Sub returns r - o, saturating at zero.
func (r RuntimeMilli) Sub(o RuntimeMilli) RuntimeMilli {
	return NewRuntimeMilli(r.secs - o.secs)
}

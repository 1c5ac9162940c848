package dur

import (
	"math"
	"time"

	"github.com/TsubasaBE/go-readable/strf"
)

// MaxUptimeSeconds is the largest span the word-form families represent
// (the uint32 range, about 136 years).  Anything above renders
// [UnknownUptime].
const MaxUptimeSeconds = math.MaxUint32

// UnknownUptime is the sentinel rendering shared by [Uptime] and
// [UptimeFull].
const UnknownUptime = "(unknown)"

// MaxUptimeLen fits "136y, 2m, 8d, 6h, 28m, 15s".
const MaxUptimeLen = 29

// Uptime is the compact word form: comma-joined single-letter units in
// descending order, zero-valued units omitted.
//
//	dur.NewUptime(93784).String() // "1d, 2h, 3m, 4s"
//
// Note the unit letters follow the htop convention: both
// months and minutes abbreviate to "m" (position disambiguates).
type Uptime struct {
	secs uint32
	s    strf.Str
}

// NewUptime renders the span of secs seconds.  Values above
// [MaxUptimeSeconds] render [UnknownUptime].
func NewUptime(secs uint64) Uptime {
	if secs > MaxUptimeSeconds {
		return UptimeUnknown()
	}
	u := uint32(secs)
	return Uptime{secs: u, s: renderUptime(u, false)}
}

// NewUptimeFloat renders a float span.  Negative or non-finite input
// renders [UnknownUptime]; fractional seconds round down.
func NewUptimeFloat(seconds float64) Uptime {
	if nonFinite(seconds) || seconds < 0 || seconds > MaxUptimeSeconds {
		return UptimeUnknown()
	}
	return NewUptime(uint64(seconds))
}

// NewUptimeDuration renders d.
func NewUptimeDuration(d time.Duration) Uptime {
	return NewUptimeFloat(d.Seconds())
}

// UptimeZero returns the zero span, rendered "0s".
func UptimeZero() Uptime { return NewUptime(0) }

// UptimeUnknown returns the sentinel wrapper, rendered [UnknownUptime].
func UptimeUnknown() Uptime {
	return Uptime{secs: 0, s: strf.MustFromString(MaxUptimeLen, UnknownUptime)}
}

// Inner returns the stored whole seconds.
func (u Uptime) Inner() uint32 { return u.secs }

// String returns the canonical word-form rendering.
func (u Uptime) String() string { return u.s.String() }

// Str returns the backing buffer by value.
func (u Uptime) Str() strf.Str { return u.s }

// IsUnknown reports whether u is the [UptimeUnknown] sentinel.
func (u Uptime) IsUnknown() bool { return u == UptimeUnknown() }

// Add returns u + o; overflow lands on the unknown sentinel.
func (u Uptime) Add(o Uptime) Uptime {
	return NewUptime(uint64(u.secs) + uint64(o.secs))
}

// Sub returns u - o, saturating at zero.
func (u Uptime) Sub(o Uptime) Uptime {
	if o.secs >= u.secs {
		return UptimeZero()
	}
	return NewUptime(uint64(u.secs - o.secs))
}

// ── UptimeFull ───────────────────────────────────────────────────────────────

// MaxUptimeFullLen fits
// "136 years, 2 months, 8 days, 6 hours, 28 minutes, 15 seconds".
const MaxUptimeFullLen = 63

// UptimeFull is the verbose word form: comma-joined "<n> <unit>[s]"
// segments in descending unit order, zero-valued units omitted,
// singular/plural chosen by count.
//
//	dur.NewUptimeFull(86399).String() // "23 hours, 59 minutes, 59 seconds"
//	dur.NewUptimeFull(0).String()     // "0 seconds"
type UptimeFull struct {
	secs uint32
	s    strf.Str
}

// NewUptimeFull renders the span of secs seconds.  Values above
// [MaxUptimeSeconds] render [UnknownUptime].
func NewUptimeFull(secs uint64) UptimeFull {
	if secs > MaxUptimeSeconds {
		return UptimeFullUnknown()
	}
	u := uint32(secs)
	return UptimeFull{secs: u, s: renderUptime(u, true)}
}

// NewUptimeFullFloat renders a float span.  Negative or non-finite input
// renders [UnknownUptime]; fractional seconds round down.
func NewUptimeFullFloat(seconds float64) UptimeFull {
	if nonFinite(seconds) || seconds < 0 || seconds > MaxUptimeSeconds {
		return UptimeFullUnknown()
	}
	return NewUptimeFull(uint64(seconds))
}

// NewUptimeFullDuration renders d.
func NewUptimeFullDuration(d time.Duration) UptimeFull {
	return NewUptimeFullFloat(d.Seconds())
}

// UptimeFullZero returns the zero span, rendered "0 seconds".
func UptimeFullZero() UptimeFull { return NewUptimeFull(0) }

// UptimeFullUnknown returns the sentinel wrapper, rendered
// [UnknownUptime].
func UptimeFullUnknown() UptimeFull {
	return UptimeFull{secs: 0, s: strf.MustFromString(MaxUptimeFullLen, UnknownUptime)}
}

// Inner returns the stored whole seconds.
func (u UptimeFull) Inner() uint32 { return u.secs }

// String returns the canonical word-form rendering.
func (u UptimeFull) String() string { return u.s.String() }

// Str returns the backing buffer by value.
func (u UptimeFull) Str() strf.Str { return u.s }

// IsUnknown reports whether u is the [UptimeFullUnknown] sentinel.
func (u UptimeFull) IsUnknown() bool { return u == UptimeFullUnknown() }

// Add returns u + o; overflow lands on the unknown sentinel.
func (u UptimeFull) Add(o UptimeFull) UptimeFull {
	return NewUptimeFull(uint64(u.secs) + uint64(o.secs))
}

// Sub returns u - o, saturating at zero.
func (u UptimeFull) Sub(o UptimeFull) UptimeFull {
	if o.secs >= u.secs {
		return UptimeFullZero()
	}
	return NewUptimeFull(uint64(u.secs - o.secs))
}

// ── shared word-form renderer ────────────────────────────────────────────────

// wordUnits are the verbose unit names, descending.
var wordUnits = [6]string{"year", "month", "day", "hour", "minute", "second"}

// compactUnits are the single-letter unit labels, descending.
var compactUnits = [6]string{"y", "m", "d", "h", "m", "s"}

// renderUptime renders secs in the word form.  full selects verbose
// "<n> <unit>[s]" segments over compact "<n><letter>" ones.
func renderUptime(secs uint32, full bool) strf.Str {
	capacity := MaxUptimeLen
	if full {
		capacity = MaxUptimeFullLen
	}
	if secs == 0 {
		if full {
			return strf.MustFromString(capacity, "0 seconds")
		}
		return strf.MustFromString(capacity, "0s")
	}

	years, months, days, hours, minutes, seconds := spanParts(secs)
	parts := [6]uint32{years, months, days, hours, minutes, seconds}

	out := strf.New(capacity)
	started := false
	var scratch [10]byte
	for i, v := range parts {
		if v == 0 {
			continue
		}
		if started {
			out.MustPushString(", ")
		}
		n := writeUint(scratch[:], v)
		out.MustPushString(string(scratch[:n]))
		if full {
			out.MustPushString(" ")
			out.MustPushString(wordUnits[i])
			if v > 1 {
				out.MustPushString("s")
			}
		} else {
			out.MustPushString(compactUnits[i])
		}
		started = true
	}
	return out
}

// writeUint writes the decimal digits of v into the front of b and returns
// the count.  v is at most 10 digits here (uint32 range).
func writeUint(b []byte, v uint32) int {
	i := len(b)
	for {
		i--
		b[i] = byte(v%10) + '0'
		v /= 10
		if v == 0 {
			break
		}
	}
	n := copy(b, b[i:])
	return n
}

package dur

import (
	"time"

	"github.com/TsubasaBE/go-readable/strf"
)

// Wall-clock-of-day families.  Input is seconds since midnight; anything
// larger wraps at 24 hours.  These are still pure div/mod renderings — no
// calendar or time zone is involved.

// Fixed renderings of the [TimeOfDay] family.
const (
	UnknownTimeOfDay = "??:??:??"
	ZeroTimeOfDay    = "12:00:00 AM"

	// MaxTimeOfDayLen fits "11:59:59 PM".
	MaxTimeOfDayLen = 11
)

// TimeOfDay renders seconds-of-day as a 12-hour clock with an AM/PM
// marker.
//
//	dur.NewTimeOfDay(86399).String() // "11:59:59 PM"
//	dur.NewTimeOfDay(86400).String() // "12:00:00 AM" (wraps)
type TimeOfDay struct {
	secs uint32 // seconds since midnight, [0, 86400)
	s    strf.Str
}

// NewTimeOfDay renders secs seconds since midnight, wrapping at 24 hours.
func NewTimeOfDay(secs uint64) TimeOfDay {
	u := uint32(secs % secsPerDay)
	h, m, s := clockParts(u)
	// 12-hour display: 0 → 12 AM, 12 → 12 PM.
	disp := h % 12
	if disp == 0 {
		disp = 12
	}
	var b [MaxTimeOfDayLen]byte
	write2(b[:], 0, disp)
	b[2] = ':'
	write2(b[:], 3, m)
	b[5] = ':'
	write2(b[:], 6, s)
	b[8] = ' '
	if h >= 12 {
		b[9] = 'P'
	} else {
		b[9] = 'A'
	}
	b[10] = 'M'
	return TimeOfDay{secs: u, s: strf.FromBytesUnchecked(MaxTimeOfDayLen, b[:])}
}

// NewTimeOfDayClock renders the given hours, minutes and seconds
// (hours wrap at 24, minutes/seconds at 60 via the total).
func NewTimeOfDayClock(hours, minutes, seconds uint32) TimeOfDay {
	return NewTimeOfDay(uint64(hours)*secsPerHour + uint64(minutes)*secsPerMinute + uint64(seconds))
}

// NewTimeOfDayDuration renders the time of day d past midnight.
// Negative or non-finite durations render [UnknownTimeOfDay].
func NewTimeOfDayDuration(d time.Duration) TimeOfDay {
	sec := d.Seconds()
	if nonFinite(sec) || sec < 0 {
		return TimeOfDayUnknown()
	}
	return NewTimeOfDay(uint64(sec))
}

// TimeOfDayUnknown returns the sentinel wrapper, rendered
// [UnknownTimeOfDay].
func TimeOfDayUnknown() TimeOfDay {
	return TimeOfDay{secs: 0, s: strf.MustFromString(MaxTimeOfDayLen, UnknownTimeOfDay)}
}

// Inner returns the stored seconds since midnight, [0, 86400).
func (t TimeOfDay) Inner() uint32 { return t.secs }

// String returns the canonical 12-hour rendering.
func (t TimeOfDay) String() string { return t.s.String() }

// Str returns the backing buffer by value.
func (t TimeOfDay) Str() strf.Str { return t.s }

// IsUnknown reports whether t is the [TimeOfDayUnknown] sentinel.
func (t TimeOfDay) IsUnknown() bool { return t == TimeOfDayUnknown() }

// ── Military ─────────────────────────────────────────────────────────────────

// Fixed renderings of the [Military] family.
const (
	UnknownMilitary = "??:??:??"
	ZeroMilitary    = "00:00:00"

	// MaxMilitaryLen fits "23:59:59".
	MaxMilitaryLen = 8
)

// Military renders seconds-of-day as a zero-padded 24-hour clock.
//
//	dur.NewMilitary(86399).String() // "23:59:59"
type Military struct {
	secs uint32 // seconds since midnight, [0, 86400)
	s    strf.Str
}

// NewMilitary renders secs seconds since midnight, wrapping at 24 hours.
func NewMilitary(secs uint64) Military {
	u := uint32(secs % secsPerDay)
	h, m, s := clockParts(u)
	var b [MaxMilitaryLen]byte
	write2(b[:], 0, h)
	b[2] = ':'
	write2(b[:], 3, m)
	b[5] = ':'
	write2(b[:], 6, s)
	return Military{secs: u, s: strf.FromBytesUnchecked(MaxMilitaryLen, b[:])}
}

// NewMilitaryClock renders the given hours, minutes and seconds.
func NewMilitaryClock(hours, minutes, seconds uint32) Military {
	return NewMilitary(uint64(hours)*secsPerHour + uint64(minutes)*secsPerMinute + uint64(seconds))
}

// MilitaryUnknown returns the sentinel wrapper, rendered
// [UnknownMilitary].
func MilitaryUnknown() Military {
	return Military{secs: 0, s: strf.MustFromString(MaxMilitaryLen, UnknownMilitary)}
}

// Inner returns the stored seconds since midnight, [0, 86400).
func (t Military) Inner() uint32 { return t.secs }

// String returns the canonical 24-hour rendering.
func (t Military) String() string { return t.s.String() }

// Str returns the backing buffer by value.
func (t Military) Str() strf.Str { return t.s }

// IsUnknown reports whether t is the [MilitaryUnknown] sentinel.
func (t Military) IsUnknown() bool { return t == MilitaryUnknown() }

// Package dur renders time spans as fixed-buffer, human-readable text.
//
// All rendering is pure integer division against fixed unit sizes (60, 60,
// 24, and for the word forms 31-day months and 365-day years) — no
// calendar, no leap seconds, no time zones.  Two shapes are provided:
//
// Clock forms:
//
//   - [Runtime]      — "3:05:11" (hours unpadded, omitted while zero)
//   - [RuntimePad]   — "03:05:11" (always HH:MM:SS)
//   - [RuntimeMilli] — "03:05:11.100" (HH:MM:SS.mmm)
//
// Word forms:
//
//   - [Uptime]     — "1h, 2m, 3s"
//   - [UptimeFull] — "1 hour, 2 minutes, 3 seconds"
//
// Wall-clock-of-day forms (seconds since midnight, wrapping at 24 h):
//
//   - [TimeOfDay] — "11:59:59 PM"
//   - [Military]  — "23:59:59"
//
// # The unknown sentinel
//
// A span beyond a family's maximum — and any negative or non-finite
// input — renders as that family's fixed unknown text ("?:??",
// "(unknown)", …) rather than failing.  This is policy, not an error:
// these types exist for always-renderable live values such as uptimes and
// track lengths, where display must never halt the caller.  Use IsUnknown
// to detect the sentinel when overflow matters.
package dur

import "math"

// Unit sizes shared by every family.
const (
	secsPerMinute = 60
	secsPerHour   = 3600
	secsPerDay    = 86400
	secsPerMonth  = 2_678_400  // 31 days
	secsPerYear   = 31_536_000 // 365 days
)

// clockParts decomposes secs into whole hours, minutes and seconds.
func clockParts(secs uint32) (h, m, s uint32) {
	return secs / secsPerHour, secs / secsPerMinute % 60, secs % 60
}

// spanParts decomposes secs into the word-form units, descending.
func spanParts(secs uint32) (years, months, days, hours, minutes, seconds uint32) {
	years = secs / secsPerYear
	ydays := secs % secsPerYear
	months = ydays / secsPerMonth
	mdays := ydays % secsPerMonth
	days = mdays / secsPerDay
	daySecs := mdays % secsPerDay
	hours = daySecs / secsPerHour
	minutes = daySecs % secsPerHour / secsPerMinute
	seconds = daySecs % secsPerMinute
	return
}

// nonFinite reports whether f is NaN or ±Inf.  The clock families clamp
// negative input to zero; the word families treat it as unknown.
func nonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// write2 writes v (0-99) zero-padded into b[i:i+2].
func write2(b []byte, i int, v uint32) {
	b[i] = byte(v/10) + '0'
	b[i+1] = byte(v%10) + '0'
}

// write3 writes v (0-999) zero-padded into b[i:i+3].
func write3(b []byte, i int, v uint32) {
	b[i] = byte(v/100) + '0'
	write2(b, i+1, v%100)
}

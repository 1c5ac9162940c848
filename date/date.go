// Package date renders Gregorian calendar dates as "YYYY", "YYYY-MM" or
// "YYYY-MM-DD".  Calendar validity (month ranges, month lengths, leap
// years) lives here; the rest of the module knows nothing about calendars
// and this package in turn builds only on the public strf surface.
package date

import (
	"errors"
	"fmt"

	"github.com/TsubasaBE/go-readable/strf"
)

// MaxDateLen fits "YYYY-MM-DD".
const MaxDateLen = 10

// UnknownDate is the sentinel rendering returned by [DateUnknown].
const UnknownDate = "????-??-??"

// Year bounds keep the rendering at exactly four digits.
const (
	MinYear = 1000
	MaxYear = 9999
)

// ErrInvalidDate reports a component outside the calendar: a year out of
// [MinYear, MaxYear], a month outside 1..12, a day the month does not
// have, or a day given without a month.
var ErrInvalidDate = errors.New("date: invalid calendar date")

// Date holds a year with optional month and day (0 = unset) plus the
// canonical rendering.  A set day requires a set month.
//
//	date.MustNew(2024, 2, 29).String() // "2024-02-29"
//	date.MustNew(2024, 7, 0).String()  // "2024-07"
//	date.MustNew(2024, 0, 0).String()  // "2024"
type Date struct {
	y uint16
	m uint8
	d uint8
	s strf.Str
}

// New validates the components and returns the rendered date.
func New(year uint16, month, day uint8) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("date: New: year %d: %w", year, ErrInvalidDate)
	}
	if month > 12 {
		return Date{}, fmt.Errorf("date: New: month %d: %w", month, ErrInvalidDate)
	}
	if day > 0 {
		if month == 0 {
			return Date{}, fmt.Errorf("date: New: day %d without month: %w", day, ErrInvalidDate)
		}
		if day > daysIn(year, month) {
			return Date{}, fmt.Errorf("date: New: day %d of month %d: %w", day, month, ErrInvalidDate)
		}
	}
	return Date{y: year, m: month, d: day, s: render(year, month, day)}, nil
}

// MustNew is New, panicking on invalid components.
func MustNew(year uint16, month, day uint8) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateUnknown returns the placeholder: all components zero, rendered
// [UnknownDate].
func DateUnknown() Date {
	return Date{s: strf.MustFromString(MaxDateLen, UnknownDate)}
}

// Year returns the year component.
func (d Date) Year() uint16 { return d.y }

// Month returns the month component, 0 when unset.
func (d Date) Month() uint8 { return d.m }

// Day returns the day component, 0 when unset.
func (d Date) Day() uint8 { return d.d }

// String returns the canonical rendering.
func (d Date) String() string { return d.s.String() }

// Str returns the backing buffer by value.
func (d Date) Str() strf.Str { return d.s }

// IsUnknown reports whether d is the [DateUnknown] placeholder.
func (d Date) IsUnknown() bool { return d == DateUnknown() }

// ── calendar ──────────────────────────────────────────────────────────────────

// monthDays holds the common-year month lengths, January first.
var monthDays = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// isLeap reports whether year is a Gregorian leap year.
func isLeap(year uint16) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysIn returns the length of month in year.  month must be 1..12.
func daysIn(year uint16, month uint8) uint8 {
	if month == 2 && isLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// ── rendering ─────────────────────────────────────────────────────────────────

// render writes the year and any set components, dash-separated and
// zero-padded, into a fresh buffer.
func render(year uint16, month, day uint8) strf.Str {
	var out [MaxDateLen]byte
	out[0] = byte(year/1000) + '0'
	out[1] = byte(year/100%10) + '0'
	out[2] = byte(year/10%10) + '0'
	out[3] = byte(year%10) + '0'
	w := 4
	if month > 0 {
		out[4] = '-'
		out[5] = byte(month/10) + '0'
		out[6] = byte(month%10) + '0'
		w = 7
	}
	if day > 0 {
		out[7] = '-'
		out[8] = byte(day/10) + '0'
		out[9] = byte(day%10) + '0'
		w = 10
	}
	return strf.FromBytesUnchecked(MaxDateLen, out[:w])
}

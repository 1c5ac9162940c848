package date

import (
	"fmt"

	"github.com/TsubasaBE/go-readable/strf"
)

// Parse reads a rendered date back: "YYYY", "YYYY-MM" or "YYYY-MM-DD",
// strictly zero-padded.  The result passes the same validation as [New].
func Parse(s string) (Date, error) {
	switch len(s) {
	case 4, 7, 10:
	default:
		return Date{}, fmt.Errorf("date: Parse: %q: %w", s, ErrInvalidDate)
	}
	year, ok := field(s[0:4])
	if !ok {
		return Date{}, fmt.Errorf("date: Parse: %q: %w", s, ErrInvalidDate)
	}
	var month, day uint16
	if len(s) >= 7 {
		if s[4] != '-' {
			return Date{}, fmt.Errorf("date: Parse: %q: %w", s, ErrInvalidDate)
		}
		if month, ok = field(s[5:7]); !ok {
			return Date{}, fmt.Errorf("date: Parse: %q: %w", s, ErrInvalidDate)
		}
	}
	if len(s) == 10 {
		if s[7] != '-' {
			return Date{}, fmt.Errorf("date: Parse: %q: %w", s, ErrInvalidDate)
		}
		if day, ok = field(s[8:10]); !ok {
			return Date{}, fmt.Errorf("date: Parse: %q: %w", s, ErrInvalidDate)
		}
	}
	return New(year, uint8(month), uint8(day))
}

// FromStr parses a date out of a rendered buffer.  Only the public buffer
// surface is consulted.
func FromStr(s strf.Str) (Date, error) {
	return Parse(s.String())
}

// field parses an all-digit, fixed-width decimal field.
func field(s string) (uint16, bool) {
	var v uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint16(c-'0')
	}
	return v, true
}

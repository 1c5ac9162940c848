// Package num renders integers and floats as human-readable, comma-grouped
// text backed by fixed [strf.Str] buffers.
//
// Four value-wrapper families live here:
//
//   - [Unsigned] — uint64 → "18,446,744,073,709,551,615"
//   - [Int]      — int64  → "-9,223,372,036,854,775,808"
//   - [Float]    — float64 at 3 decimal places → "1,000.123"
//   - [Percent]  — float64 at 2 decimal places → "1,000.12%"
//
// Every wrapper pairs the original primitive with its canonical rendering;
// the two never diverge — arithmetic and decoding always re-render, never
// patch text.  Wrappers are plain comparable values: == compares the
// primitive and the text together (which agree by construction), and
// copying duplicates the buffer.
//
// # Rounding
//
// Float and Percent round half away from zero at their fixed precision,
// applied exactly once after scaling by 10^precision.  A value that rounds
// up across an integer boundary carries into the grouped integer part:
// 999.9995 renders as "1,000.000".
//
// # Non-finite values
//
// NaN and ±Inf render as the [Nan] and [Inf] sentinels.  Building with the
// readable_nonan tag compiles the check out, making finite input a caller
// precondition in exchange for a slightly shorter fast path.
//
// # Accuracy
//
// This package favors fast, simple formatting over full float fidelity:
// fractional rendering converts through uint64, so inputs lose their
// fractional part above 2^53 and render as [UnknownFloat]/[UnknownPercent]
// beyond the uint64 range.
package num

import (
	"math"

	"github.com/TsubasaBE/go-readable/internal/digits"
	"github.com/TsubasaBE/go-readable/strf"
)

// Comma is the digit-group separator used by every family in this package.
const Comma = ','

// Sentinel strings.  These are real, valid renderings (unlike the strf
// invalid state): a wrapper holding one is displayable, it just carries no
// meaningful numeric text.
const (
	// Nan is rendered for not-a-number input.
	Nan = "NaN"
	// Inf is rendered for positive infinity; negative infinity renders
	// with a leading '-'.
	Inf = "∞"
	// UnknownNum is the placeholder rendering of UnsignedUnknown and
	// IntUnknown.
	UnknownNum = "???"
	// UnknownFloat is the placeholder rendering of FloatUnknown.
	UnknownFloat = "?.???"
	// UnknownPercent is the placeholder rendering of PercentUnknown.
	UnknownPercent = "?.??%"
)

// Buffer capacities per family.
const (
	// MaxUnsignedLen fits "18,446,744,073,709,551,615".
	MaxUnsignedLen = digits.MaxGroupedLen
	// MaxIntLen fits "-9,223,372,036,854,775,808".
	MaxIntLen = digits.MaxGroupedLen
	// MaxFloatLen fits a full grouped uint64 integer part, the decimal
	// point, and three fractional digits.
	MaxFloatLen = digits.MaxGroupedLen + 1 + 3
	// MaxPercentLen fits a full grouped integer part, the decimal point,
	// two fractional digits, and the trailing '%'.
	MaxPercentLen = digits.MaxGroupedLen + 1 + 2 + 1
)

// largest float64 strictly below 2^64; above this uint64 conversion is
// unrepresentable.
const maxUint64Float = 18446744073709549568.0

// renderGroupedUint builds the grouped rendering of u (with optional sign)
// in a Str of the given capacity.
func renderGroupedUint(capacity int, neg bool, u uint64) strf.Str {
	var out [digits.MaxGroupedLen]byte
	n := digits.AppendGroupedUint(out[:], neg, u, Comma)
	return strf.FromBytesUnchecked(capacity, out[:n])
}

// fixedParts splits |f| into integer and fractional components at the given
// precision, rounding half away from zero exactly once.  ok is false when
// |f| exceeds the uint64 range and no rendering is possible.
func fixedParts(f float64, pow uint64) (intPart, frac uint64, ok bool) {
	abs := math.Abs(f)
	switch {
	case abs < 1<<53:
		// The scale-and-round fits comfortably in uint64:
		// 2^53 * 1000 + 0.5 < 2^63.
		u := uint64(abs*float64(pow) + 0.5)
		return u / pow, u % pow, true
	case abs <= maxUint64Float:
		// No fractional part survives at this magnitude.
		return uint64(abs), 0, true
	default:
		return 0, 0, false
	}
}

// renderFixed builds the grouped fixed-precision rendering of f: integer
// part grouped, then '.', then exactly prec fractional digits, then the
// optional suffix ('%' for Percent, 0 for none).  unknown is the family's
// sentinel for unrepresentable magnitudes.
func renderFixed(capacity int, f float64, prec int, suffix byte, unknown string) strf.Str {
	pow := uint64(1)
	for i := 0; i < prec; i++ {
		pow *= 10
	}
	intPart, frac, ok := fixedParts(f, pow)
	if !ok {
		return strf.MustFromString(capacity, unknown)
	}
	// A result that rounds to exactly zero drops the sign: "-0.000" would
	// claim a magnitude the text does not show.
	neg := f < 0 && (intPart != 0 || frac != 0)

	var out [strf.MaxCapacity]byte
	n := digits.AppendGroupedUint(out[:], neg, intPart, Comma)
	out[n] = '.'
	n++
	// Fractional digits, zero-padded to exactly prec places.
	for i := prec - 1; i >= 0; i-- {
		out[n+i] = byte(frac%10) + '0'
		frac /= 10
	}
	n += prec
	if suffix != 0 {
		out[n] = suffix
		n++
	}
	return strf.FromBytesUnchecked(capacity, out[:n])
}

// nonFinite classifies f when the non-finite check is enabled, returning
// the sentinel rendering and true for NaN and ±Inf.
func nonFinite(capacity int, f float64, suffix byte) (strf.Str, bool) {
	if !checkNonFinite {
		return strf.Str{}, false
	}
	var text string
	switch {
	case math.IsNaN(f):
		text = Nan
	case math.IsInf(f, 1):
		text = Inf
	case math.IsInf(f, -1):
		text = "-" + Inf
	default:
		return strf.Str{}, false
	}
	if suffix != 0 {
		text += string(suffix)
	}
	return strf.MustFromString(capacity, text), true
}

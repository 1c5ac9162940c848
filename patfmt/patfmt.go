// Package patfmt renders float64 values through user-supplied
// number-format patterns such as "#,##0.00", "0.0%" or "0;(0)".
//
// Pattern parsing is delegated to [github.com/xuri/nfp]; this package only
// implements the rendering logic on top of the resulting token stream,
// reusing the module's grouping and rounding engines.  Unlike the core
// wrapper packages, rendering a pattern allocates while parsing; only the
// final text lands in a fixed [strf.Str] buffer, filled with saturating
// appends so an absurdly long pattern can truncate but never overflow.
//
// Calendar patterns are out of scope: anything carrying date, time or
// elapsed tokens is rejected with [ErrDatePattern].
package patfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/xuri/nfp"

	"github.com/TsubasaBE/go-readable/internal/digits"
	"github.com/TsubasaBE/go-readable/internal/patscan"
	"github.com/TsubasaBE/go-readable/strf"
)

// Errors returned by [Format].
var (
	// ErrEmptyPattern reports an empty pattern string.
	ErrEmptyPattern = errors.New("patfmt: empty pattern")
	// ErrDatePattern reports a pattern containing date/time or elapsed
	// tokens, which this package does not render.
	ErrDatePattern = errors.New("patfmt: date/time pattern not supported")
	// ErrNonFinite reports a NaN or infinite input value.
	ErrNonFinite = errors.New("patfmt: non-finite value")
	// ErrOutOfRange reports a magnitude beyond the uint64 range after
	// scaling, for which no fixed-precision rendering exists.
	ErrOutOfRange = errors.New("patfmt: value out of range")
)

// Largest float64 strictly below 2^64.
const maxUint64Float = 18446744073709549568.0

// meta is the section metadata collected in the first token pass.
type meta struct {
	hasPercent      bool
	hasThousands    bool
	hasDecimal      bool
	decZeros        int // '0' placeholders after the decimal point
	decHashes       int // '#' placeholders after the decimal point
	intZeros        int // '0' placeholders before the decimal point
	hasExplicitSign bool
}

// Format renders val through pattern and returns the resulting text in a
// full-capacity buffer.
//
//	patfmt.Format(1234.5, "#,##0.00") // "1,234.50"
//	patfmt.Format(0.125, "0.0%")      // "12.5%"
func Format(val float64, pattern string) (strf.Str, error) {
	if pattern == "" {
		return strf.Invalid(), ErrEmptyPattern
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return strf.Invalid(), fmt.Errorf("patfmt: Format: %v: %w", val, ErrNonFinite)
	}
	if patscan.HasDateTokens(pattern) {
		return strf.Invalid(), fmt.Errorf("patfmt: Format: %q: %w", pattern, ErrDatePattern)
	}

	ps := nfp.NumberFormatParser()
	sections := ps.Parse(pattern)
	if len(sections) == 0 {
		return strf.Invalid(), fmt.Errorf("patfmt: Format: %q: %w", pattern, ErrEmptyPattern)
	}
	sec := selectSection(sections, val)

	// ── pass 1: collect section metadata ─────────────────────────────────
	var m meta
	afterDecimal := false
	for _, tok := range sec.Items {
		switch tok.TType {
		case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
			return strf.Invalid(), fmt.Errorf("patfmt: Format: %q: %w", pattern, ErrDatePattern)
		case nfp.TokenTypePercent:
			m.hasPercent = true
		case nfp.TokenTypeThousandsSeparator:
			m.hasThousands = true
		case nfp.TokenTypeDecimalPoint:
			m.hasDecimal = true
			afterDecimal = true
		case nfp.TokenTypeZeroPlaceHolder:
			if afterDecimal {
				m.decZeros += len(tok.TValue)
			} else {
				m.intZeros += len(tok.TValue)
			}
		case nfp.TokenTypeHashPlaceHolder:
			if afterDecimal {
				m.decHashes += len(tok.TValue)
			}
		case nfp.TokenTypeLiteral:
			if tok.TValue == "+" || tok.TValue == "-" {
				m.hasExplicitSign = true
			}
		}
	}

	// ── scale and split ──────────────────────────────────────────────────
	abs := math.Abs(val)
	if m.hasPercent {
		abs *= 100
	}
	places := 0
	if m.hasDecimal {
		places = m.decZeros + m.decHashes
	}
	whole, fracStr, err := fixedSplit(abs, places)
	if err != nil {
		return strf.Invalid(), fmt.Errorf("patfmt: Format: %v: %w", val, err)
	}
	// '#' placeholders drop the trailing zeros that '0' placeholders would
	// keep.
	if m.decHashes > 0 {
		for len(fracStr) > m.decZeros && fracStr[len(fracStr)-1] == '0' {
			fracStr = fracStr[:len(fracStr)-1]
		}
	}
	intStr := renderInt(whole, m.intZeros, m.hasThousands)

	// When the value selects a dedicated negative section, that section
	// encodes the sign visually (parentheses, a literal '-', a colour) and
	// no minus is prepended.
	needsMinus := val < 0 && len(sections) < 2 && !m.hasExplicitSign && (whole != 0 || fracStr != "")

	// ── pass 2: assemble by walking the tokens ───────────────────────────
	out := strf.New(strf.MaxCapacity)
	if needsMinus {
		out.PushStringSaturating("-")
	}
	intConsumed := false
	fracConsumed := false
	afterDecimal = false
	for _, tok := range sec.Items {
		switch tok.TType {
		case nfp.TokenTypeLiteral:
			out.PushStringSaturating(tok.TValue)
		case nfp.TokenTypeDecimalPoint:
			if len(fracStr) > 0 {
				out.PushStringSaturating(".")
			}
			afterDecimal = true
		case nfp.TokenTypeZeroPlaceHolder, nfp.TokenTypeHashPlaceHolder:
			if afterDecimal {
				if !fracConsumed {
					out.PushStringSaturating(fracStr)
					fracConsumed = true
				}
			} else if !intConsumed {
				out.PushStringSaturating(intStr)
				intConsumed = true
			}
		case nfp.TokenTypePercent:
			out.PushStringSaturating("%")
		case nfp.TokenTypeThousandsSeparator:
			// Already applied to intStr.
		case nfp.TokenTypeColor, nfp.TokenTypeCondition,
			nfp.TokenTypeCurrencyLanguage, nfp.TokenTypeAlignment:
			// Formatting-only tokens.
		}
	}

	// A pattern without placeholder tokens still shows the integer value;
	// the input is never silently dropped.
	if !intConsumed && !afterDecimal {
		out.PushStringSaturating(intStr)
	}
	if out.IsEmpty() {
		out.PushStringSaturating(strconv.FormatFloat(val, 'f', -1, 64))
	}
	return out, nil
}

// selectSection picks the section the value's sign selects.
//
//	1 section  → applies to all values
//	2 sections → [0]=positive+zero  [1]=negative
//	3+ sections → [0]=positive  [1]=negative  [2]=zero
func selectSection(sections []nfp.Section, val float64) nfp.Section {
	switch {
	case len(sections) == 1:
		return sections[0]
	case len(sections) == 2:
		if val < 0 {
			return sections[1]
		}
		return sections[0]
	default:
		switch {
		case val > 0:
			return sections[0]
		case val < 0:
			return sections[1]
		default:
			return sections[2]
		}
	}
}

// fixedSplit splits abs (non-negative, finite) into a whole part and a
// zero-padded fractional digit string at the given precision, rounding
// half away from zero exactly once after scaling.
func fixedSplit(abs float64, places int) (uint64, string, error) {
	// 18 fractional digits is where 10^places stops fitting the scaling
	// math; nothing meaningful survives past float64 precision anyway.
	if places > 18 {
		places = 18
	}
	pow := uint64(1)
	for i := 0; i < places; i++ {
		pow *= 10
	}
	switch {
	case abs < maxUint64Float/float64(pow):
		u := uint64(abs*float64(pow) + 0.5)
		whole := u / pow
		frac := u % pow
		b := make([]byte, places)
		for i := places - 1; i >= 0; i-- {
			b[i] = byte(frac%10) + '0'
			frac /= 10
		}
		return whole, string(b), nil
	case abs <= maxUint64Float:
		// No fractional part survives at this magnitude.
		b := make([]byte, places)
		for i := range b {
			b[i] = '0'
		}
		return uint64(abs), string(b), nil
	default:
		return 0, "", ErrOutOfRange
	}
}

// renderInt renders whole with leading-zero padding to minWidth digits and
// optional comma grouping.
func renderInt(whole uint64, minWidth int, grouped bool) string {
	var scratch [digits.MaxUint64Digits]byte
	start := digits.Utoa(&scratch, whole)
	dig := scratch[start:]
	if n := len(dig); n < minWidth {
		pad := make([]byte, minWidth)
		for i := 0; i < minWidth-n; i++ {
			pad[i] = '0'
		}
		copy(pad[minWidth-n:], dig)
		dig = pad
	}
	if !grouped || len(dig) <= 3 {
		return string(dig)
	}
	out := make([]byte, digits.GroupedLen(len(dig), false))
	n := digits.Group(out, false, dig, ',')
	return string(out[:n])
}

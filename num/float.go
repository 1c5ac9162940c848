package num

import (
	"math"

	"github.com/TsubasaBE/go-readable/strf"
)

// FloatPrecision is the fixed number of fractional digits in a [Float]
// rendering.
const FloatPrecision = 3

// Float pairs a float64 with its grouped, 3-decimal rendering.
//
//	num.NewFloat(1000.123).String() // "1,000.123"
//
// Rounding is half away from zero at the third decimal place; see the
// package doc for the non-finite and accuracy rules.
type Float struct {
	f float64
	s strf.Str
}

// NewFloat renders f and returns the wrapper.
//
// NaN renders as [Nan] and ±Inf as [Inf] (with sign) unless the
// readable_nonan build tag disabled the check.  Magnitudes beyond the
// uint64 range render as [UnknownFloat].
func NewFloat(f float64) Float {
	if s, bad := nonFinite(MaxFloatLen, f, 0); bad {
		return Float{f: f, s: s}
	}
	return Float{f: f, s: renderFixed(MaxFloatLen, f, FloatPrecision, 0, UnknownFloat)}
}

// FloatZero returns the canonical zero value, rendered "0.000".
func FloatZero() Float { return NewFloat(0) }

// FloatUnknown returns the placeholder wrapper, rendered [UnknownFloat].
func FloatUnknown() Float {
	return Float{f: 0, s: strf.MustFromString(MaxFloatLen, UnknownFloat)}
}

// Inner returns the stored primitive.
func (f Float) Inner() float64 { return f.f }

// String returns the canonical rendering.
func (f Float) String() string { return f.s.String() }

// Str returns the backing buffer by value.
func (f Float) Str() strf.Str { return f.s }

// IsUnknown reports whether f carries the [UnknownFloat] placeholder text.
// It compares the rendering rather than the struct because NaN never
// compares equal to itself.
func (f Float) IsUnknown() bool { return f.s.String() == UnknownFloat }

// ── arithmetic ────────────────────────────────────────────────────────────────
//
// Float arithmetic follows IEEE 754: there is no overflow panic, and x/0
// yields ±Inf, which the constructor then renders as the [Inf] sentinel.

// Add returns f + o, re-rendered.
func (f Float) Add(o Float) Float { return NewFloat(f.f + o.f) }

// Sub returns f - o, re-rendered.
func (f Float) Sub(o Float) Float { return NewFloat(f.f - o.f) }

// Mul returns f * o, re-rendered.
func (f Float) Mul(o Float) Float { return NewFloat(f.f * o.f) }

// Div returns f / o, re-rendered.
func (f Float) Div(o Float) Float { return NewFloat(f.f / o.f) }

// Mod returns math.Mod(f, o), re-rendered.
func (f Float) Mod(o Float) Float { return NewFloat(math.Mod(f.f, o.f)) }

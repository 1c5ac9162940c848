package num

import (
	"math"

	"github.com/TsubasaBE/go-readable/strf"
)

// PercentPrecision is the fixed number of fractional digits in a [Percent]
// rendering.
const PercentPrecision = 2

// Percent pairs a float64 with its grouped, 2-decimal rendering and a
// trailing '%'.
//
//	num.NewPercent(1000.123).String() // "1,000.12%"
//
// The '%' is purely textual: the input is not scaled.  NewPercent(3)
// renders "3.00%", not "300.00%".
type Percent struct {
	f float64
	s strf.Str
}

// NewPercent renders f and returns the wrapper.  Non-finite handling
// matches [NewFloat]: the sentinel is the bare "NaN" or "∞", no suffix.
func NewPercent(f float64) Percent {
	if s, bad := nonFinite(MaxPercentLen, f, 0); bad {
		return Percent{f: f, s: s}
	}
	return Percent{f: f, s: renderFixed(MaxPercentLen, f, PercentPrecision, '%', UnknownPercent)}
}

// PercentZero returns the canonical zero value, rendered "0.00%".
func PercentZero() Percent { return NewPercent(0) }

// PercentUnknown returns the placeholder wrapper, rendered
// [UnknownPercent].
func PercentUnknown() Percent {
	return Percent{f: 0, s: strf.MustFromString(MaxPercentLen, UnknownPercent)}
}

// Inner returns the stored primitive.
func (p Percent) Inner() float64 { return p.f }

// String returns the canonical rendering.
func (p Percent) String() string { return p.s.String() }

// Str returns the backing buffer by value.
func (p Percent) Str() strf.Str { return p.s }

// IsUnknown reports whether p carries the [UnknownPercent] placeholder
// text.
func (p Percent) IsUnknown() bool { return p.s.String() == UnknownPercent }

// Add returns p + o, re-rendered.
func (p Percent) Add(o Percent) Percent { return NewPercent(p.f + o.f) }

// Sub returns p - o, re-rendered.
func (p Percent) Sub(o Percent) Percent { return NewPercent(p.f - o.f) }

// Mul returns p * o, re-rendered.
func (p Percent) Mul(o Percent) Percent { return NewPercent(p.f * o.f) }

// Div returns p / o, re-rendered.
func (p Percent) Div(o Percent) Percent { return NewPercent(p.f / o.f) }

// Mod returns math.Mod(p, o), re-rendered.
func (p Percent) Mod(o Percent) Percent { return NewPercent(math.Mod(p.f, o.f)) }

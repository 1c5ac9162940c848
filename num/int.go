package num

import (
	"fmt"
	"math"

	"github.com/TsubasaBE/go-readable/strf"
)

// Int pairs an int64 with its comma-grouped rendering.
//
//	num.NewInt(-1000).String() // "-1,000"
type Int struct {
	n int64
	s strf.Str
}

// NewInt renders i and returns the wrapper.  The sign is emitted only for
// negative values; zero renders as plain "0".
func NewInt(i int64) Int {
	// |math.MinInt64| does not fit in int64, so negate via uint64.
	neg := i < 0
	var mag uint64
	if neg {
		mag = -uint64(i)
	} else {
		mag = uint64(i)
	}
	return Int{n: i, s: renderGroupedUint(MaxIntLen, neg, mag)}
}

// IntZero returns the canonical zero value, rendered "0".
func IntZero() Int { return NewInt(0) }

// IntUnknown returns the placeholder wrapper, rendered [UnknownNum].
func IntUnknown() Int {
	return Int{n: 0, s: strf.MustFromString(MaxIntLen, UnknownNum)}
}

// Inner returns the stored primitive.
func (i Int) Inner() int64 { return i.n }

// String returns the canonical grouped rendering.
func (i Int) String() string { return i.s.String() }

// Str returns the backing buffer by value.
func (i Int) Str() strf.Str { return i.s }

// IsUnknown reports whether i is the [IntUnknown] placeholder.
func (i Int) IsUnknown() bool { return i == IntUnknown() }

// ── arithmetic ────────────────────────────────────────────────────────────────

// Add returns i + o.  Panics on int64 overflow.
func (i Int) Add(o Int) Int {
	sum := i.n + o.n
	if (o.n > 0 && sum < i.n) || (o.n < 0 && sum > i.n) {
		panic(fmt.Sprintf("num: Int.Add: %d + %d overflows int64", i.n, o.n))
	}
	return NewInt(sum)
}

// Sub returns i - o.  Panics on int64 overflow.
func (i Int) Sub(o Int) Int {
	diff := i.n - o.n
	if (o.n < 0 && diff < i.n) || (o.n > 0 && diff > i.n) {
		panic(fmt.Sprintf("num: Int.Sub: %d - %d overflows int64", i.n, o.n))
	}
	return NewInt(diff)
}

// Mul returns i * o.  Panics on int64 overflow.
func (i Int) Mul(o Int) Int {
	if i.n == 0 || o.n == 0 {
		return NewInt(0)
	}
	prod := i.n * o.n
	if prod/o.n != i.n || (i.n == math.MinInt64 && o.n == -1) {
		panic(fmt.Sprintf("num: Int.Mul: %d * %d overflows int64", i.n, o.n))
	}
	return NewInt(prod)
}

// Div returns i / o.  Panics on division by zero and on the one overflowing
// quotient (MinInt64 / -1).
func (i Int) Div(o Int) Int {
	if o.n == 0 {
		panic("num: Int.Div: division by zero")
	}
	if i.n == math.MinInt64 && o.n == -1 {
		panic(fmt.Sprintf("num: Int.Div: %d / -1 overflows int64", i.n))
	}
	return NewInt(i.n / o.n)
}

// Mod returns i % o.  Panics on division by zero.
func (i Int) Mod(o Int) Int {
	if o.n == 0 {
		panic("num: Int.Mod: division by zero")
	}
	if i.n == math.MinInt64 && o.n == -1 {
		return NewInt(0)
	}
	return NewInt(i.n % o.n)
}

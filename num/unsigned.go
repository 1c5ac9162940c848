package num

import (
	"fmt"

	"github.com/TsubasaBE/go-readable/strf"
)

// Unsigned pairs a uint64 with its comma-grouped rendering.
//
//	num.NewUnsigned(1000).String() // "1,000"
//
// The zero value is not meaningful; use [NewUnsigned] or
// [UnsignedUnknown].
type Unsigned struct {
	n uint64
	s strf.Str
}

// NewUnsigned renders u and returns the wrapper.
func NewUnsigned(u uint64) Unsigned {
	return Unsigned{n: u, s: renderGroupedUint(MaxUnsignedLen, false, u)}
}

// UnsignedZero returns the canonical zero value, rendered "0".
func UnsignedZero() Unsigned { return NewUnsigned(0) }

// UnsignedUnknown returns the placeholder wrapper: inner value 0, rendered
// [UnknownNum].  Use it as a default where no real value exists yet.
func UnsignedUnknown() Unsigned {
	return Unsigned{n: 0, s: strf.MustFromString(MaxUnsignedLen, UnknownNum)}
}

// Inner returns the stored primitive.
func (u Unsigned) Inner() uint64 { return u.n }

// String returns the canonical grouped rendering.
func (u Unsigned) String() string { return u.s.String() }

// Str returns the backing buffer by value.
func (u Unsigned) Str() strf.Str { return u.s }

// IsUnknown reports whether u is the [UnsignedUnknown] placeholder.
func (u Unsigned) IsUnknown() bool { return u == UnsignedUnknown() }

// ── arithmetic ────────────────────────────────────────────────────────────────
//
// Operators act on the stored primitive and re-render the result; the text
// of the operands is never consulted.  Overflow and division by zero are
// fatal conditions and panic.

// Add returns u + o.  Panics on uint64 overflow.
func (u Unsigned) Add(o Unsigned) Unsigned {
	sum := u.n + o.n
	if sum < u.n {
		panic(fmt.Sprintf("num: Unsigned.Add: %d + %d overflows uint64", u.n, o.n))
	}
	return NewUnsigned(sum)
}

// Sub returns u - o.  Panics on underflow.
func (u Unsigned) Sub(o Unsigned) Unsigned {
	if o.n > u.n {
		panic(fmt.Sprintf("num: Unsigned.Sub: %d - %d underflows uint64", u.n, o.n))
	}
	return NewUnsigned(u.n - o.n)
}

// Mul returns u * o.  Panics on overflow.
func (u Unsigned) Mul(o Unsigned) Unsigned {
	if u.n == 0 || o.n == 0 {
		return NewUnsigned(0)
	}
	prod := u.n * o.n
	if prod/u.n != o.n {
		panic(fmt.Sprintf("num: Unsigned.Mul: %d * %d overflows uint64", u.n, o.n))
	}
	return NewUnsigned(prod)
}

// Div returns u / o.  Panics on division by zero.
func (u Unsigned) Div(o Unsigned) Unsigned {
	if o.n == 0 {
		panic("num: Unsigned.Div: division by zero")
	}
	return NewUnsigned(u.n / o.n)
}

// Mod returns u % o.  Panics on division by zero.
func (u Unsigned) Mod(o Unsigned) Unsigned {
	if o.n == 0 {
		panic("num: Unsigned.Mod: division by zero")
	}
	return NewUnsigned(u.n % o.n)
}

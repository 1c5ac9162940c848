// Package bytefmt renders byte counts as human-readable sizes using SI
// units (base 1000): "0 B", "999 B", "1.234 KB", "18.446 EB".
//
// Unit selection picks the largest unit whose scaled value is at least 1;
// below one kilobyte the count renders as integer bytes.  Scaled values
// carry exactly three decimals, computed with integer math and truncated,
// never rounded, so "1.9999 KB" worth of bytes stays "1.999 KB".
package bytefmt

import (
	"math"

	"github.com/TsubasaBE/go-readable/internal/digits"
	"github.com/TsubasaBE/go-readable/strf"
)

// MaxByteLen fits the widest rendering, "999.999 KB".
const MaxByteLen = 10

// UnknownByte is the sentinel rendering for float constructors fed
// negative or non-finite input.
const UnknownByte = "???.??? B"

// unitSize is the SI step between units.
const unitSize = 1000

// units holds the SI unit labels in ascending order.  EB is the last unit
// a uint64 can reach (max ≈ 18.4 EB).
var units = [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// Largest float64 below 2^64; anything above cannot be a byte count.
const maxUint64Float = 18446744073709549568.0

// Byte pairs a uint64 byte count with its SI-unit rendering.
//
//	bytefmt.NewByte(1234).String() // "1.234 KB"
//
// The zero value is not meaningful; use [NewByte] or [ByteUnknown].
type Byte struct {
	n uint64
	s strf.Str
}

// NewByte renders n bytes and returns the wrapper.
func NewByte(n uint64) Byte {
	return Byte{n: n, s: renderByte(n)}
}

// NewByteFloat renders a float byte count, truncating the fraction.
// Negative, non-finite or out-of-range input renders [UnknownByte].
func NewByteFloat(f float64) Byte {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > maxUint64Float {
		return ByteUnknown()
	}
	return NewByte(uint64(f))
}

// ByteZero returns the zero count, rendered "0 B".
func ByteZero() Byte { return NewByte(0) }

// ByteMax returns the largest representable count, rendered "18.446 EB".
func ByteMax() Byte { return NewByte(math.MaxUint64) }

// ByteUnknown returns the placeholder wrapper: inner value 0, rendered
// [UnknownByte].
func ByteUnknown() Byte {
	return Byte{n: 0, s: strf.MustFromString(MaxByteLen, UnknownByte)}
}

// Inner returns the stored byte count.
func (b Byte) Inner() uint64 { return b.n }

// String returns the canonical SI-unit rendering.
func (b Byte) String() string { return b.s.String() }

// Str returns the backing buffer by value.
func (b Byte) Str() strf.Str { return b.s }

// IsUnknown reports whether b is the [ByteUnknown] placeholder.
func (b Byte) IsUnknown() bool { return b == ByteUnknown() }

// renderByte writes the SI-unit form of n bytes into a fresh buffer.
func renderByte(n uint64) strf.Str {
	var out [MaxByteLen]byte
	var scratch [digits.MaxUint64Digits]byte

	if n < unitSize {
		start := digits.Utoa(&scratch, n)
		w := copy(out[:], scratch[start:])
		out[w] = ' '
		out[w+1] = 'B'
		return strf.FromBytesUnchecked(MaxByteLen, out[:w+2])
	}

	div := uint64(unitSize)
	unit := 1
	for unit < len(units)-1 && n/div >= unitSize {
		div *= unitSize
		unit++
	}
	whole := n / div
	// div/1000 is exact, and dividing the remainder by it avoids the
	// overflow that (rem * 1000) would hit at the EB scale.
	frac := (n % div) / (div / unitSize)

	start := digits.Utoa(&scratch, whole)
	w := copy(out[:], scratch[start:])
	out[w] = '.'
	w++
	for i := 2; i >= 0; i-- {
		out[w+i] = byte(frac%10) + '0'
		frac /= 10
	}
	w += 3
	out[w] = ' '
	w++
	w += copy(out[w:], units[unit])
	return strf.FromBytesUnchecked(MaxByteLen, out[:w])
}

// ── arithmetic ────────────────────────────────────────────────────────────────
//
// Operators act on the stored count and re-render the result; the text of
// the operands is never consulted.  Overflow and division by zero are
// fatal conditions and panic, matching the num wrappers.

// Add returns b + o.  Panics on uint64 overflow.
func (b Byte) Add(o Byte) Byte {
	sum := b.n + o.n
	if sum < b.n {
		panic("bytefmt: Byte.Add: overflows uint64")
	}
	return NewByte(sum)
}

// Sub returns b - o.  Panics on underflow.
func (b Byte) Sub(o Byte) Byte {
	if o.n > b.n {
		panic("bytefmt: Byte.Sub: underflows uint64")
	}
	return NewByte(b.n - o.n)
}

// Mul returns b * o.  Panics on overflow.
func (b Byte) Mul(o Byte) Byte {
	if b.n == 0 || o.n == 0 {
		return NewByte(0)
	}
	prod := b.n * o.n
	if prod/b.n != o.n {
		panic("bytefmt: Byte.Mul: overflows uint64")
	}
	return NewByte(prod)
}

// Div returns b / o.  Panics on division by zero.
func (b Byte) Div(o Byte) Byte {
	if o.n == 0 {
		panic("bytefmt: Byte.Div: division by zero")
	}
	return NewByte(b.n / o.n)
}

// Mod returns b % o.  Panics on division by zero.
func (b Byte) Mod(o Byte) Byte {
	if o.n == 0 {
		panic("bytefmt: Byte.Mod: division by zero")
	}
	return NewByte(b.n % o.n)
}

// Package digits implements decimal digit generation and three-digit
// grouping over raw byte slices.  It is the engine behind the num, bytefmt
// and patfmt renderings; callers own the buffers, so nothing here allocates.
package digits

// MaxUint64Digits is the decimal digit count of the largest uint64
// (18446744073709551615).
const MaxUint64Digits = 20

// MaxGroupedLen is the longest grouped rendering either 64-bit integer type
// can produce: both "-9,223,372,036,854,775,808" and
// "18,446,744,073,709,551,615" are 26 bytes.
const MaxGroupedLen = 26

// Utoa writes the decimal digits of u into the tail of scratch and returns
// the index of the first digit.  Digits are generated least-significant
// first by repeated division, which fills back-to-front; the caller reads
// scratch[start:] forward.  Zero yields the single digit '0'.
func Utoa(scratch *[MaxUint64Digits]byte, u uint64) int {
	i := len(scratch)
	for {
		i--
		scratch[i] = byte(u%10) + '0'
		u /= 10
		if u == 0 {
			return i
		}
	}
}

// GroupedLen returns the exact byte length of grouping ndigits digits:
// one separator per full group of three beyond the first, plus an optional
// leading sign.
func GroupedLen(ndigits int, neg bool) int {
	n := ndigits + (ndigits-1)/3
	if neg {
		n++
	}
	return n
}

// Group writes an optional '-', then dig with sep inserted every three
// digits counted from the right, into dst.  dst must hold at least
// GroupedLen(len(dig), neg) bytes.  The number of bytes written is
// returned.
//
// dig must be ASCII decimal digits (as produced by Utoa); no validation is
// performed.
func Group(dst []byte, neg bool, dig []byte, sep byte) int {
	w := 0
	if neg {
		dst[w] = '-'
		w++
	}
	// Leading partial group: 1-3 digits so the remainder splits into
	// exact groups of three.
	lead := len(dig) % 3
	if lead == 0 {
		lead = 3
	}
	w += copy(dst[w:], dig[:lead])
	for i := lead; i < len(dig); i += 3 {
		dst[w] = sep
		w++
		w += copy(dst[w:], dig[i:i+3])
	}
	return w
}

// AppendGroupedUint renders u grouped by sep into dst (with a '-' first
// when neg) and returns the byte count written.  It is the one-call form of
// Utoa + Group used by every integer rendering in the module.
func AppendGroupedUint(dst []byte, neg bool, u uint64, sep byte) int {
	var scratch [MaxUint64Digits]byte
	start := Utoa(&scratch, u)
	return Group(dst, neg, scratch[start:], sep)
}

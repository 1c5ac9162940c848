package num

// The reverse direction: parsing rendered forms (and their plain
// un-grouped spellings) back into wrappers.  Group separators are stripped
// before the strconv parse; nothing else is repaired.

import (
	"fmt"
	"strconv"
	"strings"
)

// stripComma removes every group separator from s.  The fast path returns
// s unchanged when no separator is present.
func stripComma(s string) string {
	if !strings.ContainsRune(s, Comma) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != Comma {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// ParseUnsigned parses a rendered [Unsigned] ("18,446,744,073,709,551,615"
// or "1000") back into a wrapper.
func ParseUnsigned(s string) (Unsigned, error) {
	u, err := strconv.ParseUint(stripComma(s), 10, 64)
	if err != nil {
		return Unsigned{}, fmt.Errorf("num: ParseUnsigned: %w", err)
	}
	return NewUnsigned(u), nil
}

// ParseInt parses a rendered [Int] ("-1,000" or "-1000") back into a
// wrapper.
func ParseInt(s string) (Int, error) {
	i, err := strconv.ParseInt(stripComma(s), 10, 64)
	if err != nil {
		return Int{}, fmt.Errorf("num: ParseInt: %w", err)
	}
	return NewInt(i), nil
}

// ParseFloat parses a rendered [Float] ("1,000.123") back into a wrapper.
// The result re-renders, so round-tripping a rendering is the identity on
// the text.
func ParseFloat(s string) (Float, error) {
	f, err := strconv.ParseFloat(stripComma(s), 64)
	if err != nil {
		return Float{}, fmt.Errorf("num: ParseFloat: %w", err)
	}
	return NewFloat(f), nil
}

// ParsePercent parses a rendered [Percent] ("1,000.12%"); the trailing '%'
// is optional.
func ParsePercent(s string) (Percent, error) {
	trimmed := strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(stripComma(trimmed), 64)
	if err != nil {
		return Percent{}, fmt.Errorf("num: ParsePercent: %w", err)
	}
	return NewPercent(f), nil
}

// Package patscan provides calendar-token detection over raw format
// pattern strings, shared by the pattern renderer.  It has no public-API
// contract of its own; all callers are within the same module.
package patscan

// HasDateTokens scans the unquoted portion of a number-format pattern for
// date/time token characters and returns true if any are found.
//
// The following characters are treated as date/time tokens when they
// appear outside double-quoted literals and outside square-bracket
// sections:
//
//   - d, D — day
//   - m, M — month
//   - y, Y — year
//   - h, H — hour
//   - s, S — second
//   - e, E — only when not preceded by a digit placeholder (0, #, ?)
//     or '.', where it would instead mark a scientific-notation exponent
func HasDateTokens(pattern string) bool {
	inDoubleQuote := false
	inBracket := false
	var prev rune
	for _, ch := range pattern {
		switch {
		case inDoubleQuote:
			if ch == '"' {
				inDoubleQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inDoubleQuote = true
		case ch == '[':
			inBracket = true
		case ch == 'd' || ch == 'D' ||
			ch == 'm' || ch == 'M' ||
			ch == 'y' || ch == 'Y' ||
			ch == 'h' || ch == 'H' ||
			ch == 's' || ch == 'S':
			return true
		case ch == 'e' || ch == 'E':
			// After a digit placeholder or '.', E/e reads as the exponent
			// of a scientific-notation pattern, not a calendar token.
			if prev != '0' && prev != '#' && prev != '?' && prev != '.' {
				return true
			}
		}
		if !inDoubleQuote && !inBracket {
			prev = ch
		}
	}
	return false
}

package strf

import "unicode/utf8"

// Ellipsis truncation helpers.  These return a new Str with the same
// capacity as the receiver; the receiver is never modified.

// dots is the marker inserted where content was cut.
const dots = "..."

// Head returns the first n runes of s, followed by "..." if anything was
// cut.  If s has n runes or fewer it is returned unchanged.  n+3 bytes must
// fit in the capacity; Head panics otherwise (the caller picked n for a
// capacity it knows).
func (s Str) Head(n int) Str {
	runes := 0
	cut := -1
	for i := 0; i < int(s.n); runes++ {
		if runes == n {
			cut = i
			break
		}
		_, size := decodeAt(s, i)
		i += size
	}
	if cut < 0 {
		return s
	}
	out := New(int(s.cap))
	out.MustPushString(string(s.buf[:cut]))
	out.MustPushString(dots)
	return out
}

// Tail returns the last n runes of s, preceded by "..." if anything was
// cut.  If s has n runes or fewer it is returned unchanged.
func (s Str) Tail(n int) Str {
	total := s.runeCount()
	if total <= n {
		return s
	}
	skip := total - n
	i := 0
	for ; skip > 0; skip-- {
		_, size := decodeAt(s, i)
		i += size
	}
	out := New(int(s.cap))
	out.MustPushString(dots)
	out.MustPushString(string(s.buf[i:s.n]))
	return out
}

// HeadTail returns the first head runes, "...", and the last tail runes.
// If s has head+tail runes or fewer it is returned unchanged.
func (s Str) HeadTail(head, tail int) Str {
	total := s.runeCount()
	if total <= head+tail {
		return s
	}
	// Byte offset after `head` runes.
	i := 0
	for n := 0; n < head; n++ {
		_, size := decodeAt(s, i)
		i += size
	}
	// Byte offset of the final `tail` runes.
	j := i
	for n := 0; n < total-head-tail; n++ {
		_, size := decodeAt(s, j)
		j += size
	}
	out := New(int(s.cap))
	out.MustPushString(string(s.buf[:i]))
	out.MustPushString(dots)
	out.MustPushString(string(s.buf[j:s.n]))
	return out
}

func decodeAt(s Str, i int) (rune, int) {
	return utf8.DecodeRune(s.buf[i:s.n])
}

func (s Str) runeCount() int {
	runes := 0
	for i := 0; i < int(s.n); runes++ {
		_, size := decodeAt(s, i)
		i += size
	}
	return runes
}

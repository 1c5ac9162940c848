// Package strf provides Str, a fixed-capacity, stack-allocated text buffer.
//
// Str is the storage primitive behind every rendered value in go-readable:
// the [num], [dur], [bytefmt] and [date] packages all render into a Str and
// carry it by value.  A Str never allocates after construction — the backing
// array is part of the struct — so copying a Str copies its bytes and no two
// values ever share storage.
//
// # Capacity
//
// Every Str carries a capacity fixed at construction time.  Each formatting
// family declares its capacity as a compile-time constant (for example
// [github.com/TsubasaBE/go-readable/bytefmt] uses 10, the longest byte-size
// string) and all values of that family share it.  The backing array is
// [MaxCapacity] bytes, sized to the longest string any family produces.
//
// # The invalid state
//
// The zero value of Str is the distinguished invalid state: a placeholder
// that must never be treated as text.  Reading text from an invalid Str
// panics.  This is deliberately distinct from an empty-but-valid Str
// (len 0), which is a legitimate buffer awaiting content.
//
// # Append policies
//
// Three append variants exist per operation, with distinct contracts:
//
//   - MustPushString / MustPushRune panic if the content does not fit.
//     Overflow is a caller bug (CapacityExceeded, fatal).
//   - PushStringSaturating / PushRuneSaturating truncate the pushed content
//     at a rune boundary so the buffer exactly fills; they never fail.
//   - PushStringUnchecked performs no checks at all.  The caller asserts the
//     content fits in the remaining capacity and is valid UTF-8; violating
//     that corrupts the buffer's invariants.  It exists for render loops
//     whose output size was already computed exactly.
package strf

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxCapacity is the size of the backing array inside every Str, and
// therefore the largest capacity any formatting family may declare.
// It is sized to the longest string in the module: the maximum
// dur.UptimeFull rendering (63 bytes).
const MaxCapacity = 64

// ErrCapacityExceeded is returned when constructing a Str from content
// longer than its capacity.  Append operations never return it: the Must*
// variants panic instead, and the *Saturating variants truncate.
var ErrCapacityExceeded = errors.New("strf: capacity exceeded")

// ErrInvalidUTF8 is returned when constructing a Str from bytes that are
// not valid UTF-8.  Invalid input is never silently repaired.
var ErrInvalidUTF8 = errors.New("strf: invalid UTF-8")

// Str is a fixed-capacity text buffer holding valid UTF-8.
//
// The zero value is the invalid placeholder state; use [New] or one of the
// From* constructors to obtain a usable buffer.  See the package doc for the
// full contract.
type Str struct {
	buf [MaxCapacity]byte
	n   uint8 // current length; bytes [0,n) are valid UTF-8
	cap uint8 // capacity; n <= cap <= MaxCapacity
	ok  bool  // false = the invalid placeholder state
}

// New returns an empty, valid Str with the given capacity.
//
// capacity is a per-family compile-time constant; passing one outside
// [0, MaxCapacity] is a programming error and panics.
func New(capacity int) Str {
	if capacity < 0 || capacity > MaxCapacity {
		panic(fmt.Sprintf("strf: New: capacity %d outside [0, %d]", capacity, MaxCapacity))
	}
	return Str{cap: uint8(capacity), ok: true}
}

// Invalid returns the invalid placeholder Str.  It is identical to the zero
// value and compares equal to it.
func Invalid() Str {
	return Str{}
}

// FromBytes constructs a Str with the given capacity holding exactly b.
//
// It returns [ErrInvalidUTF8] if b is not valid UTF-8 text, or
// [ErrCapacityExceeded] if len(b) > capacity.
func FromBytes(capacity int, b []byte) (Str, error) {
	if !utf8.Valid(b) {
		return Str{}, fmt.Errorf("strf: FromBytes: %w", ErrInvalidUTF8)
	}
	if len(b) > capacity {
		return Str{}, fmt.Errorf("strf: FromBytes: %d bytes into capacity %d: %w", len(b), capacity, ErrCapacityExceeded)
	}
	s := New(capacity)
	copy(s.buf[:], b)
	s.n = uint8(len(b))
	return s, nil
}

// FromString constructs a Str with the given capacity holding exactly v.
// Errors match [FromBytes].  Note that Go strings are not guaranteed to be
// valid UTF-8, so v is validated like any other byte source.
func FromString(capacity int, v string) (Str, error) {
	if !utf8.ValidString(v) {
		return Str{}, fmt.Errorf("strf: FromString: %w", ErrInvalidUTF8)
	}
	if len(v) > capacity {
		return Str{}, fmt.Errorf("strf: FromString: %d bytes into capacity %d: %w", len(v), capacity, ErrCapacityExceeded)
	}
	s := New(capacity)
	copy(s.buf[:], v)
	s.n = uint8(len(v))
	return s, nil
}

// MustFromString is [FromString] but panics on error.  Intended for static
// sentinel strings whose validity is known at compile time.
func MustFromString(capacity int, v string) Str {
	s, err := FromString(capacity, v)
	if err != nil {
		panic(fmt.Sprintf("strf: MustFromString: %v", err))
	}
	return s
}

// FromBytesUnchecked constructs a Str from b without validating anything.
//
// The caller asserts that b is valid UTF-8 and len(b) <= capacity <=
// MaxCapacity.  Violating either precondition produces a Str whose
// invariants do not hold; there is no runtime check.  Rendering engines use
// this after computing their exact output, where re-validation would be
// wasted work.
func FromBytesUnchecked(capacity int, b []byte) Str {
	s := Str{cap: uint8(capacity), ok: true, n: uint8(len(b))}
	copy(s.buf[:], b)
	return s
}

// IsValid reports whether s is a real buffer rather than the invalid
// placeholder state.
func (s Str) IsValid() bool { return s.ok }

// Len returns the current length in bytes.
func (s Str) Len() int { return int(s.n) }

// Cap returns the capacity in bytes.
func (s Str) Cap() int { return int(s.cap) }

// Remaining returns how many more bytes fit.
func (s Str) Remaining() int { return int(s.cap) - int(s.n) }

// IsEmpty reports whether the length is zero.
func (s Str) IsEmpty() bool { return s.n == 0 }

// IsFull reports whether the length equals the capacity.
func (s Str) IsFull() bool { return s.n == s.cap }

// String returns the text [0, Len).  It panics if s is in the invalid
// placeholder state — an invalid Str must never be read as text.
func (s Str) String() string {
	if !s.ok {
		panic("strf: String: read of invalid Str")
	}
	return string(s.buf[:s.n])
}

// AppendTo appends the text to dst and returns the result.  Like [String]
// it panics on an invalid Str.  Use this on hot paths to avoid the string
// conversion.
func (s Str) AppendTo(dst []byte) []byte {
	if !s.ok {
		panic("strf: AppendTo: read of invalid Str")
	}
	return append(dst, s.buf[:s.n]...)
}

// Bytes returns a copy of the text as a byte slice.  Panics on an invalid
// Str.
func (s Str) Bytes() []byte {
	return s.AppendTo(nil)
}

// ── appends ──────────────────────────────────────────────────────────────────

// MustPushString appends v, panicking if it does not fit in the remaining
// capacity or is not valid UTF-8.  Overflow here is a contract violation by
// the caller, not a recoverable condition.
func (s *Str) MustPushString(v string) {
	if len(v) > s.Remaining() {
		panic(fmt.Sprintf("strf: MustPushString: %d bytes into %d remaining", len(v), s.Remaining()))
	}
	if !utf8.ValidString(v) {
		panic("strf: MustPushString: invalid UTF-8")
	}
	copy(s.buf[s.n:], v)
	s.n += uint8(len(v))
}

// MustPushRune appends r, panicking if its encoding does not fit or r is
// not a valid rune.
func (s *Str) MustPushRune(r rune) {
	if !utf8.ValidRune(r) {
		panic(fmt.Sprintf("strf: MustPushRune: invalid rune %#U", r))
	}
	if utf8.RuneLen(r) > s.Remaining() {
		panic(fmt.Sprintf("strf: MustPushRune: %d bytes into %d remaining", utf8.RuneLen(r), s.Remaining()))
	}
	s.n += uint8(utf8.EncodeRune(s.buf[s.n:], r))
}

// PushStringSaturating appends as much of v as fits, cutting at a rune
// boundary so the buffer stays valid UTF-8.  It never fails and never
// overflows.  The number of bytes actually appended is returned.
func (s *Str) PushStringSaturating(v string) int {
	rem := s.Remaining()
	if len(v) > rem {
		// Back up to the start of the rune straddling the cut.
		cut := rem
		for cut > 0 && !utf8.RuneStart(v[cut]) {
			cut--
		}
		v = v[:cut]
	}
	if !utf8.ValidString(v) {
		panic("strf: PushStringSaturating: invalid UTF-8")
	}
	copy(s.buf[s.n:], v)
	s.n += uint8(len(v))
	return len(v)
}

// PushRuneSaturating appends r if its encoding fits, reporting whether it
// was appended.  An encoding that does not fit is dropped whole — a rune is
// never split.
func (s *Str) PushRuneSaturating(r rune) bool {
	if !utf8.ValidRune(r) {
		panic(fmt.Sprintf("strf: PushRuneSaturating: invalid rune %#U", r))
	}
	if utf8.RuneLen(r) > s.Remaining() {
		return false
	}
	s.n += uint8(utf8.EncodeRune(s.buf[s.n:], r))
	return true
}

// PushStringUnchecked appends v with no validation.
//
// The caller asserts len(v) <= Remaining() and that v is valid UTF-8.
// Violating either corrupts the buffer; no check is performed.
func (s *Str) PushStringUnchecked(v string) {
	copy(s.buf[s.n:], v)
	s.n += uint8(len(v))
}

// ── edits ────────────────────────────────────────────────────────────────────

// Pop removes and returns the last rune.  It reports false on an empty
// buffer.
func (s *Str) Pop() (rune, bool) {
	if s.n == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(s.buf[:s.n])
	s.n -= uint8(size)
	return r, true
}

// Remove deletes the rune starting at byte index i and returns it.
// A non-boundary or out-of-range index is a contract violation and panics.
func (s *Str) Remove(i int) rune {
	if i < 0 || i >= int(s.n) || !utf8.RuneStart(s.buf[i]) {
		panic(fmt.Sprintf("strf: Remove: index %d is not a rune boundary in [0,%d)", i, s.n))
	}
	r, size := utf8.DecodeRune(s.buf[i:s.n])
	copy(s.buf[i:], s.buf[i+size:s.n])
	s.n -= uint8(size)
	return r
}

// Truncate shortens the buffer to n bytes.  n must lie on a rune boundary
// within [0, Len]; anything else panics.
func (s *Str) Truncate(n int) {
	if n < 0 || n > int(s.n) {
		panic(fmt.Sprintf("strf: Truncate: length %d outside [0,%d]", n, s.n))
	}
	if n < int(s.n) && !utf8.RuneStart(s.buf[n]) {
		panic(fmt.Sprintf("strf: Truncate: length %d is not a rune boundary", n))
	}
	s.n = uint8(n)
}

// Clear resets the length to zero.  The capacity and validity are kept.
func (s *Str) Clear() { s.n = 0 }

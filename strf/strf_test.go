package strf_test

// Unit tests for the fixed-capacity buffer.  The tests are intentionally
// self-contained: every fixture is a literal, no helpers build state.

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/TsubasaBE/go-readable/strf"
)

// ── construction ──────────────────────────────────────────────────────────────

func TestNewEmptyValid(t *testing.T) {
	s := strf.New(10)
	if !s.IsValid() {
		t.Fatal("New returned an invalid Str")
	}
	if !s.IsEmpty() || s.Len() != 0 || s.Cap() != 10 {
		t.Errorf("got len=%d cap=%d, want 0/10", s.Len(), s.Cap())
	}
	if s.String() != "" {
		t.Errorf("empty buffer renders %q, want \"\"", s.String())
	}
}

func TestNewCapacityOutOfRangePanics(t *testing.T) {
	for _, capacity := range []int{-1, strf.MaxCapacity + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", capacity)
				}
			}()
			strf.New(capacity)
		}()
	}
}

func TestZeroValueIsInvalid(t *testing.T) {
	var zero strf.Str
	if zero.IsValid() {
		t.Fatal("zero value reports valid")
	}
	if zero != strf.Invalid() {
		t.Error("zero value and Invalid() are not equal")
	}
	// An empty-but-valid buffer is a different thing entirely.
	if zero == strf.New(0) {
		t.Error("invalid state compares equal to an empty valid buffer")
	}
}

func TestStringOnInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("String on invalid Str did not panic")
		}
	}()
	_ = strf.Invalid().String()
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		input    string
		want     string
		wantErr  error
	}{
		{name: "fits exactly", capacity: 5, input: "hello", want: "hello"},
		{name: "fits with room", capacity: 10, input: "hi", want: "hi"},
		{name: "empty into zero capacity", capacity: 0, input: "", want: ""},
		{name: "multi-byte runes", capacity: 12, input: "héllo wörld", want: "héllo wörld"},
		{name: "too long", capacity: 4, input: "hello", wantErr: strf.ErrCapacityExceeded},
		{name: "invalid utf-8", capacity: 10, input: "a\xffb", wantErr: strf.ErrInvalidUTF8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := strf.FromString(tc.capacity, tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got err %v, want %v", err, tc.wantErr)
				}
				if s.IsValid() {
					t.Error("failed construction returned a valid Str")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.String() != tc.want {
				t.Errorf("got %q, want %q", s.String(), tc.want)
			}
		})
	}
}

func TestFromBytesRejectsInvalidUTF8(t *testing.T) {
	_, err := strf.FromBytes(10, []byte{0x80, 0x80})
	if !errors.Is(err, strf.ErrInvalidUTF8) {
		t.Errorf("got %v, want ErrInvalidUTF8", err)
	}
}

func TestValueSemantics(t *testing.T) {
	a := strf.MustFromString(10, "abc")
	b := a
	b.MustPushString("def")
	if a.String() != "abc" {
		t.Errorf("copy mutated the original: %q", a.String())
	}
	if b.String() != "abcdef" {
		t.Errorf("copy did not take the push: %q", b.String())
	}
	if a == b {
		t.Error("diverged copies compare equal")
	}
}

// ── appends ──────────────────────────────────────────────────────────────────

func TestMustPushStringOverflowPanics(t *testing.T) {
	s := strf.MustFromString(5, "abcd")
	defer func() {
		if recover() == nil {
			t.Error("overflowing MustPushString did not panic")
		}
	}()
	s.MustPushString("ef")
}

func TestMustPushRune(t *testing.T) {
	s := strf.New(4)
	s.MustPushRune('é') // 2 bytes
	s.MustPushRune('x')
	if s.String() != "éx" || s.Len() != 3 {
		t.Errorf("got %q len %d", s.String(), s.Len())
	}
}

func TestPushStringSaturating(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		seed      string
		push      string
		want      string
		wantWrote int
	}{
		{name: "fits whole", capacity: 10, seed: "", push: "hello", want: "hello", wantWrote: 5},
		{name: "cut at ascii", capacity: 3, seed: "", push: "hello", want: "hel", wantWrote: 3},
		{name: "full buffer takes nothing", capacity: 2, seed: "ab", push: "c", want: "ab", wantWrote: 0},
		// "héllo": cutting at byte 2 would split 'é'; the cut backs up.
		{name: "cut backs off split rune", capacity: 2, seed: "", push: "héllo", want: "h", wantWrote: 1},
		{name: "cut keeps whole rune", capacity: 3, seed: "", push: "héllo", want: "hé", wantWrote: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := strf.MustFromString(tc.capacity, tc.seed)
			wrote := s.PushStringSaturating(tc.push)
			if wrote != tc.wantWrote {
				t.Errorf("wrote %d bytes, want %d", wrote, tc.wantWrote)
			}
			if s.String() != tc.want {
				t.Errorf("got %q, want %q", s.String(), tc.want)
			}
			if !utf8.ValidString(s.String()) {
				t.Errorf("buffer no longer valid UTF-8: %q", s.String())
			}
		})
	}
}

func TestPushRuneSaturatingDropsWholeRune(t *testing.T) {
	s := strf.MustFromString(4, "abc")
	if s.PushRuneSaturating('é') {
		t.Error("2-byte rune pushed into 1 remaining byte")
	}
	if !s.PushRuneSaturating('d') {
		t.Error("1-byte rune refused with 1 remaining byte")
	}
	if s.String() != "abcd" {
		t.Errorf("got %q, want %q", s.String(), "abcd")
	}
}

// ── edits ────────────────────────────────────────────────────────────────────

func TestPop(t *testing.T) {
	s := strf.MustFromString(10, "ab√")
	r, ok := s.Pop()
	if !ok || r != '√' {
		t.Fatalf("Pop = %q, %v", r, ok)
	}
	if s.String() != "ab" {
		t.Errorf("after Pop: %q", s.String())
	}
	s.Pop()
	s.Pop()
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty buffer reported ok")
	}
}

func TestRemove(t *testing.T) {
	s := strf.MustFromString(10, "aéb")
	if r := s.Remove(1); r != 'é' {
		t.Errorf("Remove(1) = %q, want 'é'", r)
	}
	if s.String() != "ab" {
		t.Errorf("after Remove: %q", s.String())
	}
}

func TestRemoveMidRunePanics(t *testing.T) {
	s := strf.MustFromString(10, "aé")
	defer func() {
		if recover() == nil {
			t.Error("Remove inside a rune did not panic")
		}
	}()
	s.Remove(2) // continuation byte of 'é'
}

func TestTruncate(t *testing.T) {
	s := strf.MustFromString(10, "hello")
	s.Truncate(3)
	if s.String() != "hel" {
		t.Errorf("after Truncate(3): %q", s.String())
	}
	s.Truncate(3) // no-op at current length
	if s.Len() != 3 {
		t.Errorf("len = %d after no-op truncate", s.Len())
	}
}

func TestTruncateMidRunePanics(t *testing.T) {
	s := strf.MustFromString(10, "é")
	defer func() {
		if recover() == nil {
			t.Error("Truncate inside a rune did not panic")
		}
	}()
	s.Truncate(1)
}

func TestClearKeepsCapacity(t *testing.T) {
	s := strf.MustFromString(7, "abc")
	s.Clear()
	if !s.IsEmpty() || s.Cap() != 7 || !s.IsValid() {
		t.Errorf("after Clear: len=%d cap=%d valid=%v", s.Len(), s.Cap(), s.IsValid())
	}
}

// ── head / tail ──────────────────────────────────────────────────────────────

func TestHeadTail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		op   func(strf.Str) strf.Str
		want string
	}{
		{name: "head shorter", in: "hello world", op: func(s strf.Str) strf.Str { return s.Head(5) }, want: "hello..."},
		{name: "head longer than text", in: "hi", op: func(s strf.Str) strf.Str { return s.Head(5) }, want: "hi"},
		{name: "tail shorter", in: "hello world", op: func(s strf.Str) strf.Str { return s.Tail(5) }, want: "...world"},
		{name: "head-tail", in: "hello world", op: func(s strf.Str) strf.Str { return s.HeadTail(3, 3) }, want: "hel...rld"},
		{name: "head-tail covers all", in: "hello", op: func(s strf.Str) strf.Str { return s.HeadTail(3, 2) }, want: "hello"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.op(strf.MustFromString(strf.MaxCapacity, tc.in))
			if got.String() != tc.want {
				t.Errorf("got %q, want %q", got.String(), tc.want)
			}
		})
	}
}

// ── invariants under mixed edits ─────────────────────────────────────────────

func TestMixedEditSequenceKeepsInvariants(t *testing.T) {
	s := strf.New(12)
	s.MustPushString("a√b")
	s.PushStringSaturating("cdefghijklmn") // saturates
	if s.Len() != s.Cap() {
		t.Fatalf("buffer not full: len=%d cap=%d", s.Len(), s.Cap())
	}
	s.Pop()
	s.Remove(0)
	s.MustPushRune('ü')
	if s.Len() > s.Cap() {
		t.Errorf("length %d exceeds capacity %d", s.Len(), s.Cap())
	}
	if !utf8.ValidString(s.String()) {
		t.Errorf("buffer not valid UTF-8: %q", s.String())
	}
}

package readable_test

// End-to-end checks across the formatting families.  Each family has its
// own unit tests; these pin the package-level helpers and the behaviors
// that span packages.

import (
	"encoding/json"
	"testing"

	"github.com/TsubasaBE/go-readable"
	"github.com/TsubasaBE/go-readable/bytefmt"
	"github.com/TsubasaBE/go-readable/dur"
	"github.com/TsubasaBE/go-readable/num"
	"github.com/TsubasaBE/go-readable/strf"
)

func TestConvenienceHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "Comma", got: readable.Comma(-1000), want: "-1,000"},
		{name: "CommaUint", got: readable.CommaUint(1000), want: "1,000"},
		{name: "Float", got: readable.Float(1000.1234), want: "1,000.123"},
		{name: "Percent", got: readable.Percent(1000.1234), want: "1,000.12%"},
		{name: "Clock", got: readable.Clock(11111), want: "3:05:11"},
		{name: "Words", got: readable.Words(86399), want: "23 hours, 59 minutes, 59 seconds"},
		{name: "Bytes", got: readable.Bytes(1234), want: "1.234 KB"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

// Percent is Float at two decimal places plus the suffix; neither scales.
func TestPercentMatchesFloatAtTwoPlaces(t *testing.T) {
	for _, v := range []float64{0, 0.5, 18.123, 1000.12, -42.007} {
		p := num.NewPercent(v).String()
		f, err := num.ParseFloat(p[:len(p)-1])
		if err != nil {
			t.Fatalf("%q: %v", p, err)
		}
		back := num.NewPercent(f.Inner()).String()
		if back != p {
			t.Errorf("%v: %q reparses to %q", v, p, back)
		}
	}
}

// Every rendering fits its family's fixed capacity.
func TestRenderingsFitTheirBuffers(t *testing.T) {
	checks := []strf.Str{
		num.NewUnsigned(18446744073709551615).Str(),
		num.NewInt(-9223372036854775808).Str(),
		num.NewFloat(18446744073709549568).Str(),
		num.NewPercent(-9999999.99).Str(),
		dur.NewRuntime(359999).Str(),
		dur.NewRuntimeMilli(359999.999).Str(),
		dur.NewUptime(dur.MaxUptimeSeconds).Str(),
		dur.NewUptimeFull(dur.MaxUptimeSeconds).Str(),
		dur.NewTimeOfDay(86399).Str(),
		bytefmt.ByteMax().Str(),
	}
	for i, s := range checks {
		if !s.IsValid() {
			t.Errorf("check %d: invalid buffer", i)
			continue
		}
		if s.Len() > s.Cap() {
			t.Errorf("check %d: len %d exceeds cap %d (%q)", i, s.Len(), s.Cap(), s.String())
		}
	}
}

// Arithmetic operates on the primitive and re-renders; it never edits text.
func TestArithmeticReRenders(t *testing.T) {
	n := num.NewInt(999).Add(num.NewInt(1))
	if n.Inner() != 1000 || n.String() != "1,000" {
		t.Errorf("999+1 = %q/%d", n.String(), n.Inner())
	}
	b := bytefmt.NewByte(999).Add(bytefmt.NewByte(1))
	if b.String() != "1.000 KB" {
		t.Errorf("999B+1B = %q", b.String())
	}
	r := dur.NewRuntime(3599).Add(dur.NewRuntime(1))
	if r.String() != "1:00:00" {
		t.Errorf("59:59+0:01 = %q", r.String())
	}
}

// Wrappers serialize as their primitive, so mixed documents stay plain.
func TestMixedDocumentRoundTrip(t *testing.T) {
	type track struct {
		Plays  num.Unsigned `json:"plays"`
		Length dur.Runtime  `json:"length"`
		Size   bytefmt.Byte `json:"size"`
	}
	orig := track{
		Plays:  num.NewUnsigned(1000),
		Length: dur.NewRuntime(11111),
		Size:   bytefmt.NewByte(1234),
	}
	raw, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"plays":1000,"length":11111,"size":1234}` {
		t.Errorf("document = %s", raw)
	}
	var got track
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got != orig {
		t.Errorf("round trip diverged: %+v", got)
	}
	if got.Length.String() != "3:05:11" || got.Size.String() != "1.234 KB" {
		t.Errorf("decoded renderings: %q, %q", got.Length.String(), got.Size.String())
	}
}

func TestStrHelper(t *testing.T) {
	s, err := readable.Str("hello")
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "hello" || s.Cap() != strf.MaxCapacity {
		t.Errorf("got %q cap %d", s.String(), s.Cap())
	}
}

package bytefmt_test

import (
	"encoding/json"
	"math"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/TsubasaBE/go-readable/bytefmt"
)

func TestByteRendering(t *testing.T) {
	tests := []struct {
		name string
		in   uint64
		want string
	}{
		{name: "zero", in: 0, want: "0 B"},
		{name: "below one kilobyte", in: 999, want: "999 B"},
		{name: "first kilobyte", in: 1000, want: "1.000 KB"},
		{name: "kilobytes", in: 1234, want: "1.234 KB"},
		{name: "decimals truncate", in: 1999999, want: "1.999 MB"},
		{name: "largest kilobyte", in: 999999, want: "999.999 KB"},
		{name: "megabytes", in: 1500000, want: "1.500 MB"},
		{name: "gigabytes", in: 2000000000, want: "2.000 GB"},
		{name: "terabytes", in: 3200000000000, want: "3.200 TB"},
		{name: "petabytes", in: 1000000000000000, want: "1.000 PB"},
		{name: "exabytes", in: 1000000000000000000, want: "1.000 EB"},
		{name: "max uint64", in: math.MaxUint64, want: "18.446 EB"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := bytefmt.NewByte(tc.in)
			if got.String() != tc.want {
				t.Errorf("NewByte(%d) = %q, want %q", tc.in, got.String(), tc.want)
			}
			if got.Inner() != tc.in {
				t.Errorf("Inner() = %d, want %d", got.Inner(), tc.in)
			}
		})
	}
}

func TestByteFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "truncates fraction", in: 1234.9, want: "1.234 KB"},
		{name: "negative is unknown", in: -1, want: bytefmt.UnknownByte},
		{name: "nan is unknown", in: math.NaN(), want: bytefmt.UnknownByte},
		{name: "infinity is unknown", in: math.Inf(1), want: bytefmt.UnknownByte},
		{name: "beyond uint64 is unknown", in: 2e19, want: bytefmt.UnknownByte},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := bytefmt.NewByteFloat(tc.in)
			if got.String() != tc.want {
				t.Errorf("NewByteFloat(%v) = %q, want %q", tc.in, got.String(), tc.want)
			}
		})
	}
}

func TestByteUnknown(t *testing.T) {
	b := bytefmt.ByteUnknown()
	if !b.IsUnknown() {
		t.Error("IsUnknown() = false")
	}
	if bytefmt.ByteZero().IsUnknown() {
		t.Error("real zero reports unknown")
	}
}

func TestByteArithmetic(t *testing.T) {
	a, b := bytefmt.NewByte(1000), bytefmt.NewByte(234)
	if got := a.Add(b); got.String() != "1.234 KB" {
		t.Errorf("Add = %q", got.String())
	}
	if got := a.Sub(b); got.String() != "766 B" {
		t.Errorf("Sub = %q", got.String())
	}
	if got := a.Mul(b); got.Inner() != 234000 {
		t.Errorf("Mul = %d", got.Inner())
	}
	if got := a.Div(b); got.Inner() != 4 {
		t.Errorf("Div = %d", got.Inner())
	}
}

func TestByteOverflowPanics(t *testing.T) {
	tests := []struct {
		name string
		op   func()
	}{
		{name: "add overflow", op: func() { bytefmt.ByteMax().Add(bytefmt.NewByte(1)) }},
		{name: "sub underflow", op: func() { bytefmt.ByteZero().Sub(bytefmt.NewByte(1)) }},
		{name: "mul overflow", op: func() { bytefmt.ByteMax().Mul(bytefmt.NewByte(2)) }},
		{name: "div by zero", op: func() { bytefmt.NewByte(1).Div(bytefmt.ByteZero()) }},
		{name: "mod by zero", op: func() { bytefmt.NewByte(1).Mod(bytefmt.ByteZero()) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.op()
		})
	}
}

func TestByteJSONRoundTrip(t *testing.T) {
	orig := bytefmt.NewByte(1234)
	raw, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "1234" {
		t.Errorf("marshals as %s, want the bare count", raw)
	}
	var got bytefmt.Byte
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got != orig {
		t.Errorf("round trip: %q != %q", got.String(), orig.String())
	}
}

func TestByteYAMLRoundTrip(t *testing.T) {
	orig := bytefmt.ByteMax()
	raw, err := yaml.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	var got bytefmt.Byte
	if err := yaml.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got != orig {
		t.Errorf("round trip: %q != %q", got.String(), orig.String())
	}
}

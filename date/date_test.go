package date_test

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/TsubasaBE/go-readable/date"
	"github.com/TsubasaBE/go-readable/strf"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		y       uint16
		m, d    uint8
		want    string
		wantErr bool
	}{
		{name: "full date", y: 2024, m: 7, d: 15, want: "2024-07-15"},
		{name: "year and month", y: 2024, m: 7, want: "2024-07"},
		{name: "year only", y: 2024, want: "2024"},
		{name: "leap day on leap year", y: 2024, m: 2, d: 29, want: "2024-02-29"},
		{name: "century leap year", y: 2000, m: 2, d: 29, want: "2000-02-29"},
		{name: "min year", y: 1000, m: 1, d: 1, want: "1000-01-01"},
		{name: "max year", y: 9999, m: 12, d: 31, want: "9999-12-31"},
		{name: "leap day on common year", y: 2023, m: 2, d: 29, wantErr: true},
		{name: "century non-leap year", y: 1900, m: 2, d: 29, wantErr: true},
		{name: "month out of range", y: 2024, m: 13, wantErr: true},
		{name: "day out of range", y: 2024, m: 4, d: 31, wantErr: true},
		{name: "day without month", y: 2024, m: 0, d: 5, wantErr: true},
		{name: "year below range", y: 999, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := date.New(tc.y, tc.m, tc.d)
			if tc.wantErr {
				if !errors.Is(err, date.ErrInvalidDate) {
					t.Fatalf("got err %v, want ErrInvalidDate", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("got %q, want %q", got.String(), tc.want)
			}
		})
	}
}

func TestComponents(t *testing.T) {
	d := date.MustNew(2024, 2, 29)
	if d.Year() != 2024 || d.Month() != 2 || d.Day() != 29 {
		t.Errorf("components = %d-%d-%d", d.Year(), d.Month(), d.Day())
	}
}

func TestUnknown(t *testing.T) {
	d := date.DateUnknown()
	if d.String() != date.UnknownDate {
		t.Errorf("got %q, want %q", d.String(), date.UnknownDate)
	}
	if !d.IsUnknown() {
		t.Error("IsUnknown() = false")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "full date", in: "2024-07-15", want: "2024-07-15"},
		{name: "year and month", in: "2024-07", want: "2024-07"},
		{name: "year only", in: "2024", want: "2024"},
		{name: "wrong separator", in: "2024/07/15", wantErr: true},
		{name: "unpadded month", in: "2024-7", wantErr: true},
		{name: "garbage", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "invalid day", in: "2023-02-29", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := date.Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded as %q", tc.in, got.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("got %q, want %q", got.String(), tc.want)
			}
		})
	}
}

func TestFromStrRoundTrip(t *testing.T) {
	orig := date.MustNew(2024, 12, 31)
	got, err := date.FromStr(orig.Str())
	if err != nil {
		t.Fatal(err)
	}
	if got != orig {
		t.Errorf("round trip: %q != %q", got.String(), orig.String())
	}
}

func TestFromStrRejectsForeignText(t *testing.T) {
	s := strf.MustFromString(strf.MaxCapacity, "not a date")
	if _, err := date.FromStr(s); err == nil {
		t.Error("FromStr accepted arbitrary text")
	}
}

// ── serialization ────────────────────────────────────────────────────────────

func TestDateJSONRoundTrip(t *testing.T) {
	orig := date.MustNew(2024, 7, 15)
	raw, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"year":2024,"month":7,"day":15}` {
		t.Errorf("marshals as %s, want the bare components", raw)
	}
	var got date.Date
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got != orig {
		t.Errorf("round trip: %q != %q", got.String(), orig.String())
	}
}

func TestDateJSONOmitsUnsetComponents(t *testing.T) {
	orig := date.MustNew(1999, 0, 0)
	raw, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"year":1999}` {
		t.Errorf("marshals as %s, want the year alone", raw)
	}
}

func TestDateJSONRejectsInvalidComponents(t *testing.T) {
	var got date.Date
	if err := json.Unmarshal([]byte(`{"year":2023,"month":2,"day":29}`), &got); !errors.Is(err, date.ErrInvalidDate) {
		t.Errorf("got %v, want ErrInvalidDate", err)
	}
}

func TestDateYAMLRoundTrip(t *testing.T) {
	orig := date.DateUnknown()
	raw, err := yaml.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	var got date.Date
	if err := yaml.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got != orig {
		t.Errorf("round trip: %q != %q", got.String(), orig.String())
	}
}

// Package readable turns numbers, durations and byte counts into
// human-readable text without allocating.  No cgo is required.
//
// # Quick start
//
//	readable.Comma(-1000)     // "-1,000"
//	readable.Float(1000.1234) // "1,000.123"
//	readable.Percent(18.123)  // "18.12%"
//	readable.Clock(11111)     // "3:05:11"
//	readable.Words(86399)     // "23 hours, 59 minutes, 59 seconds"
//	readable.Bytes(1234)      // "1.234 KB"
//
// # Value wrappers
//
// The convenience functions above return plain strings.  For repeated use,
// the subpackages expose value wrappers that pair the original primitive
// with its rendered text in a fixed inline buffer:
//
//   - [github.com/TsubasaBE/go-readable/num] — grouped integers, fixed-
//     precision floats and percentages
//   - [github.com/TsubasaBE/go-readable/dur] — clock-form and word-form
//     durations, times of day
//   - [github.com/TsubasaBE/go-readable/bytefmt] — SI byte sizes
//   - [github.com/TsubasaBE/go-readable/date] — calendar dates
//
// A wrapper's primitive and text never diverge: arithmetic and decoding
// re-render, they never patch text.  All wrappers marshal to JSON and YAML
// as their primitive and re-render on decode.
//
// # Buffers
//
// Every rendering lives in a [strf.Str], a fixed-capacity inline string
// sized per family at compile time.  The buffer is a plain comparable
// value: copying copies the bytes, == compares them, and the content is
// valid UTF-8 by construction.
//
// # Pattern-driven rendering
//
// [github.com/TsubasaBE/go-readable/patfmt] renders values through
// spreadsheet-style number-format patterns ("#,##0.00", "0.0%") when the
// fixed families above are not flexible enough.
package readable

import (
	"github.com/TsubasaBE/go-readable/bytefmt"
	"github.com/TsubasaBE/go-readable/dur"
	"github.com/TsubasaBE/go-readable/num"
	"github.com/TsubasaBE/go-readable/strf"
)

// Version is the current version of the go-readable library.
const Version = "1.0.0"

// Comma renders i with comma digit grouping: -1000 → "-1,000".
func Comma(i int64) string { return num.NewInt(i).String() }

// CommaUint renders u with comma digit grouping: 1000 → "1,000".
func CommaUint(u uint64) string { return num.NewUnsigned(u).String() }

// Float renders f grouped at three decimal places: 1000.1234 → "1,000.123".
func Float(f float64) string { return num.NewFloat(f).String() }

// Percent renders f grouped at two decimal places with a trailing '%':
// 18.123 → "18.12%".  The value is not scaled.
func Percent(f float64) string { return num.NewPercent(f).String() }

// Clock renders whole seconds in clock form: 11111 → "3:05:11".
func Clock(seconds float64) string { return dur.NewRuntime(seconds).String() }

// Words renders whole seconds in full word form:
// 86399 → "23 hours, 59 minutes, 59 seconds".
func Words(seconds uint64) string { return dur.NewUptimeFull(seconds).String() }

// Bytes renders a byte count with SI units: 1234 → "1.234 KB".
func Bytes(n uint64) string { return bytefmt.NewByte(n).String() }

// Str builds a fixed-capacity buffer holding v.  It is shorthand for
// [strf.FromString] with the maximum capacity.
func Str(v string) (strf.Str, error) { return strf.FromString(strf.MaxCapacity, v) }

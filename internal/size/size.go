// Package size converts human-readable size expressions to byte counts and back.
package size

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	// ErrMagnitude is returned when the numeric part of a size is below 1.
	ErrMagnitude = errors.New("magnitude must be at least 1")
	// ErrUnknownUnit is returned when the unit suffix is missing or not recognized.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrOutOfRange is returned when the byte count does not fit a file size.
	ErrOutOfRange = errors.New("size out of range")
)

// maxBytes is the largest byte count a file can hold (int64 offsets).
const maxBytes = math.MaxInt64

// Unit is a size suffix with its byte multiplier.
type Unit struct {
	Suffix     string
	Multiplier uint64
}

// Supported units. Decimal units are powers of 1000, binary units powers of 1024.
var (
	B   = Unit{"b", 1}
	KB  = Unit{"kb", 1000}
	KiB = Unit{"kib", 1 << 10}
	MB  = Unit{"mb", 1000 * 1000}
	MiB = Unit{"mib", 1 << 20}
	GB  = Unit{"gb", 1000 * 1000 * 1000}
	GiB = Unit{"gib", 1 << 30}
)

// Units lists every supported unit, smallest first.
var Units = []Unit{B, KB, KiB, MB, MiB, GB, GiB}

// LookupUnit finds a unit by suffix, ignoring case.
func LookupUnit(suffix string) (Unit, bool) {
	suffix = strings.ToLower(suffix)
	for _, u := range Units {
		if u.Suffix == suffix {
			return u, true
		}
	}
	return Unit{}, false
}

// Parse converts a size expression such as "10MiB" or "2.5gb" into bytes.
//
// The unit is made of all letters in s and the magnitude of all digits and dots,
// so "10 MiB" and "10-MiB" parse the same as "10MiB". Fractional results are
// rounded half away from zero.
func Parse(s string) (uint64, error) {
	suffix, digits := split(s)

	magnitude := leadingNumber(digits)
	if magnitude < 1 {
		return 0, ErrMagnitude
	}

	unit, ok := LookupUnit(suffix)
	if !ok {
		if suffix == "" {
			return 0, fmt.Errorf("%w: missing suffix", ErrUnknownUnit)
		}
		return 0, fmt.Errorf("%w %q", ErrUnknownUnit, suffix)
	}

	bytes := math.Round(magnitude * float64(unit.Multiplier))
	if bytes >= maxBytes {
		return 0, ErrOutOfRange
	}
	return uint64(bytes), nil
}

// Spec renders a magnitude and unit as a string accepted by Parse.
func Spec(magnitude float64, unit Unit) string {
	return strconv.FormatFloat(magnitude, 'f', -1, 64) + unit.Suffix
}

// Format renders a byte count as "<N> bytes" with thousands separators.
func Format(n uint64) string {
	if n > maxBytes {
		return humanize.BigComma(new(big.Int).SetUint64(n)) + " bytes"
	}
	return humanize.Comma(int64(n)) + " bytes"
}

// FormatFloat is Format for non-integral counts: whole values get no decimals,
// anything else at most two with trailing zeros stripped.
func FormatFloat(n float64) string {
	if n == math.Trunc(n) {
		return humanize.CommafWithDigits(n, 0) + " bytes"
	}
	// CommafWithDigits truncates, so round to cents first.
	return humanize.CommafWithDigits(math.Round(n*100)/100, 2) + " bytes"
}

// Human gives an approximate IEC rendering such as "10 MiB".
func Human(n uint64) string {
	return humanize.IBytes(n)
}

// split separates the letters of s (lowercased) from its digits and dots.
func split(s string) (suffix, digits string) {
	var letters, numbers strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letters.WriteRune(r)
		case r >= '0' && r <= '9', r == '.':
			numbers.WriteRune(r)
		}
	}
	return strings.ToLower(letters.String()), numbers.String()
}

// leadingNumber parses the longest "digits[.digits]" prefix of s, or 0 if there is none.
func leadingNumber(s string) float64 {
	end := 0
	seenDot := false
	for end < len(s) {
		if s[end] == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		end++
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

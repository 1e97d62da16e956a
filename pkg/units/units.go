// Package units converts between free-form metric length strings and
// canonical meter values.
//
// Parsing never fails hard: an unparseable numeric portion yields NaN and
// callers test for it with math.IsNaN. Formatting picks the largest unit
// that keeps the value at or above 1 and renders a fixed number of decimal
// digits using fmt's round-half-to-even policy.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// DefaultDecimals is the number of decimal digits used by display formatting
const DefaultDecimals = 3

// factors maps metric unit symbols to meters per unit
var factors = map[string]float64{
	"km":  1000,
	"hm":  100,
	"dam": 10,
	"m":   1,
	"dm":  0.1,
	"cm":  0.01,
	"mm":  0.001,
	"µm":  1e-6,
}

// displayUnits are the candidate output units in ascending order of magnitude
var displayUnits = []struct {
	symbol string
	factor float64
}{
	{"mm", 1e-3},
	{"cm", 1e-2},
	{"m", 1},
	{"km", 1e3},
}

// ParseLength parses a length string like "140.2 cm", "3km" or "1.402" and
// returns the value in meters. A missing or unrecognized unit means the
// value is already in meters. If the leading numeric portion is not a
// number, NaN is returned.
func ParseLength(input string) float64 {
	value := leadingFloat(input)
	if math.IsNaN(value) {
		return math.NaN()
	}
	if factor, ok := unitFactor(input); ok {
		return value * factor
	}
	return value
}

// unitFactor scans for the first maximal run of non-digit, non-space
// characters that ends in 'm' at a token boundary and names a known unit.
func unitFactor(input string) (float64, bool) {
	runes := []rune(input)
	for i := 0; i < len(runes); {
		if unicode.IsDigit(runes[i]) || unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && !unicode.IsDigit(runes[i]) && !unicode.IsSpace(runes[i]) {
			i++
		}
		token := string(runes[start:i])
		atBoundary := i == len(runes) || unicode.IsSpace(runes[i])
		if atBoundary && strings.HasSuffix(token, "m") {
			if factor, ok := factors[token]; ok {
				return factor, true
			}
		}
	}
	return 0, false
}

// leadingFloat parses the longest numeric prefix of the string, returning
// NaN when no prefix is a valid number.
func leadingFloat(input string) float64 {
	s := strings.TrimLeftFunc(input, unicode.IsSpace)
	for i := len(s); i > 0; i-- {
		if value, err := strconv.ParseFloat(strings.TrimRightFunc(s[:i], unicode.IsSpace), 64); err == nil {
			return value
		}
	}
	return math.NaN()
}

// FormatMeters formats a meter value using the largest display unit that
// keeps the scaled value at or above 1, falling back to millimeters for
// anything smaller, e.g. FormatMeters(0.8, 3) == "80.000 cm".
func FormatMeters(meters float64, decimals int) string {
	chosen := displayUnits[0]
	for _, unit := range displayUnits {
		if meters/unit.factor >= 1 {
			chosen = unit
		}
	}
	return fmt.Sprintf("%.*f %s", decimals, meters/chosen.factor, chosen.symbol)
}

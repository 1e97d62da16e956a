package units

import (
	"math"
	"testing"
)

func TestParseLengthWithUnit(t *testing.T) {
	got := ParseLength("140.2 cm")
	if math.Abs(got-1.402) > 1e-10 {
		t.Errorf("ParseLength failed: expected 1.402, got %v", got)
	}
}

func TestParseLengthAttachedUnit(t *testing.T) {
	got := ParseLength("3km")
	if math.Abs(got-3000) > 1e-10 {
		t.Errorf("ParseLength failed: expected 3000, got %v", got)
	}
}

func TestParseLengthMicrometers(t *testing.T) {
	got := ParseLength("250 µm")
	if math.Abs(got-0.00025) > 1e-15 {
		t.Errorf("ParseLength failed: expected 0.00025, got %v", got)
	}
}

func TestParseLengthNoUnitDefaultsToMeters(t *testing.T) {
	got := ParseLength("1.402")
	if math.Abs(got-1.402) > 1e-10 {
		t.Errorf("ParseLength failed: expected 1.402, got %v", got)
	}
}

func TestParseLengthUnknownUnitDefaultsToMeters(t *testing.T) {
	// "xm" ends in m but is not a metric unit
	got := ParseLength("5 xm")
	if math.Abs(got-5.0) > 1e-10 {
		t.Errorf("ParseLength failed: expected 5.0, got %v", got)
	}
}

func TestParseLengthFirstUnitWins(t *testing.T) {
	got := ParseLength("3 mm km")
	if math.Abs(got-0.003) > 1e-10 {
		t.Errorf("ParseLength failed: expected 0.003, got %v", got)
	}
}

func TestParseLengthUnitNotAtBoundaryIgnored(t *testing.T) {
	// "m" followed by a digit is not a token boundary
	got := ParseLength("5m3")
	if math.Abs(got-5.0) > 1e-10 {
		t.Errorf("ParseLength failed: expected 5.0, got %v", got)
	}
}

func TestParseLengthInvalid(t *testing.T) {
	if !math.IsNaN(ParseLength("abc")) {
		t.Errorf("ParseLength failed: expected NaN for %q", "abc")
	}
	if !math.IsNaN(ParseLength("")) {
		t.Errorf("ParseLength failed: expected NaN for empty string")
	}
	if !math.IsNaN(ParseLength("   ")) {
		t.Errorf("ParseLength failed: expected NaN for whitespace")
	}
}

func TestFormatMeters(t *testing.T) {
	tests := []struct {
		meters   float64
		expected string
	}{
		{0.8, "80.000 cm"},
		{0.5, "50.000 cm"},
		{0.0008, "0.800 mm"},
		{1500, "1.500 km"},
		{2, "2.000 m"},
		{0.0000001, "0.000 mm"}, // below a millimeter falls back to the smallest unit
	}

	for _, tt := range tests {
		got := FormatMeters(tt.meters, DefaultDecimals)
		if got != tt.expected {
			t.Errorf("FormatMeters(%v) failed: expected %q, got %q", tt.meters, tt.expected, got)
		}
	}
}

func TestFormatMetersRounding(t *testing.T) {
	got := FormatMeters(0.123456, DefaultDecimals)
	if got != "12.346 cm" {
		t.Errorf("FormatMeters failed: expected %q, got %q", "12.346 cm", got)
	}
}

func TestFormatMetersDecimals(t *testing.T) {
	got := FormatMeters(0.08, 1)
	if got != "8.0 cm" {
		t.Errorf("FormatMeters failed: expected %q, got %q", "8.0 cm", got)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	values := []float64{0.0008, 0.004, 0.08, 0.5, 1, 2.5, 47, 1234.5}

	for _, v := range values {
		formatted := FormatMeters(v, DefaultDecimals)
		parsed := ParseLength(formatted)
		if math.IsNaN(parsed) {
			t.Errorf("round trip of %v produced unparseable %q", v, formatted)
			continue
		}
		// Three decimal digits in the chosen unit bound the relative error
		if math.Abs(parsed-v)/v > 1e-3 {
			t.Errorf("round trip of %v failed: formatted %q, parsed %v", v, formatted, parsed)
		}
	}
}

package numconv

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func approx(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		base int
		want float64
	}{
		{"11", 10, 11},
		{"-1e-1", 10, -0.1},
		{"1E+2", 10, 100},
		{"+5", 10, 5},
		{"-0.123456789e-99", 10, -0.123456789e-99},
		{"1.201", 10, 1.201},
		{"FF", 16, 255},
		{"1E", 16, 30},
		{"1E2", 14, 196},
		{"101.1", 2, 5.5},
		{"1F.8", 16, 31.5},
		{"Z", 36, 35},
		{"1e400", 10, math.Inf(1)},
		{"1e-400", 10, 0},
		{"0e1000", 10, 0},
		{"-0e-1000", 10, 0},
		{"0e999999999999999999999999999999999999", 10, 0},
		{"1e999999999999999999999999999999999999", 10, math.Inf(1)},
		{"1" + strings.Repeat("0", 400), 10, math.Inf(1)},
		{strings.Repeat("0", 400) + "1", 10, 1},
	}
	for _, tc := range tests {
		got, err := ParseFloat(tc.in, tc.base)
		if err != nil {
			t.Errorf("ParseFloat(%q, %d): %v", tc.in, tc.base, err)
			continue
		}
		if !approx(got, tc.want) {
			t.Errorf("ParseFloat(%q, %d) = %v, want %v", tc.in, tc.base, got, tc.want)
		}
	}
}

func TestParseFloatErrors(t *testing.T) {
	tests := []struct {
		in   string
		base int
		msg  string
	}{
		{"", 10, "number cannot have length zero"},
		{"-", 10, "number must have at least one digit after the optional sign"},
		{"ff", 16, "number must have at least one digit after the optional sign"},
		{"1.", 10, "there must be at least one digit after the decimal point"},
		{"1.x", 10, "there must be at least one digit after the decimal point"},
		{"1x", 10, "expected decimal point or exponent symbol"},
		{"1e2", 16, "expected decimal point or exponent symbol"},
		{"1.5x", 10, "expected exponent symbol"},
		{"1.5e", 10, "there must be at least one digit after the exponent symbol"},
		{"1e-", 10, "there must be at least one digit after the exponent symbol"},
		{"1e5x", 10, "there cannot be any characters past the exponent"},
	}
	for _, tc := range tests {
		_, err := ParseFloat(tc.in, tc.base)
		if err == nil {
			t.Errorf("ParseFloat(%q, %d): expected error", tc.in, tc.base)
			continue
		}
		nfe := &NumberFormatError{}
		if !errors.As(err, &nfe) {
			t.Errorf("ParseFloat(%q, %d): %v is not a NumberFormatError", tc.in, tc.base, err)
			continue
		}
		if nfe.Msg != tc.msg {
			t.Errorf("ParseFloat(%q, %d): got %q want %q", tc.in, tc.base, nfe.Msg, tc.msg)
		}
		if !errors.Is(err, ErrNumberFormat) {
			t.Errorf("ParseFloat(%q, %d): not ErrNumberFormat", tc.in, tc.base)
		}
	}
}

func TestBaseRange(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 37, 100} {
		if _, err := ParseFloat("1", base); !errors.Is(err, ErrBaseRange) {
			t.Errorf("ParseFloat base %d: got %v", base, err)
		}
		if _, err := FormatFloat(1, base); !errors.Is(err, ErrBaseRange) {
			t.Errorf("FormatFloat base %d: got %v", base, err)
		}
	}
}

func TestMaxDigits(t *testing.T) {
	for base, want := range map[int]int{2: 49, 10: 14, 16: 12, 36: 9} {
		if got := MaxDigits(base); got != want {
			t.Errorf("MaxDigits(%d) = %d, want %d", base, got, want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		base int
		want string
	}{
		{0, 10, "0"},
		{100, 10, "100"},
		{1.2, 10, "1.2"},
		{0.1, 10, "0.1"},
		{-2.5, 10, "-2.5"},
		{0.001, 10, "0.001"},
		{1.201, 10, "1.201"},
		{9.99999999999999, 10, "10"},
		{1e20, 10, "100000000000000000000"},
		{255, 16, "FF"},
		{5.5, 2, "101.1"},
		{31.5, 2, "11111.1"},
		{35, 36, "Z"},
	}
	for _, tc := range tests {
		got, err := FormatFloat(tc.in, tc.base)
		if err != nil {
			t.Errorf("FormatFloat(%v, %d): %v", tc.in, tc.base, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FormatFloat(%v, %d) = %q, want %q", tc.in, tc.base, got, tc.want)
		}
	}
}

func TestFormatFloatNotFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := FormatFloat(v, 10); !errors.Is(err, ErrNotFinite) {
			t.Errorf("FormatFloat(%v): got %v", v, err)
		}
	}
}

func TestFormatScientific(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0e0"},
		{1e15, "1e15"},
		{1234.5, "1.2345e3"},
		{-2.5e-20, "-2.5e-20"},
		{1.5e300, "1.5e300"},
		{1e-310, "1e-310"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, tc := range tests {
		if got := FormatScientific(tc.in); got != tc.want {
			t.Errorf("FormatScientific(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatScientificSubnormal(t *testing.T) {
	for _, v := range []float64{5e-324, 1e-310, 2.2250738585072e-308, -3e-320} {
		s := FormatScientific(v)
		mant, exp, ok := strings.Cut(s, "e")
		if !ok {
			t.Errorf("%v: %q has no exponent", v, s)
			continue
		}
		m, err := ParseFloat(mant, 10)
		if err != nil {
			t.Errorf("%v: %q: %v", v, s, err)
			continue
		}
		if a := math.Abs(m); a < 1 || a >= 10 {
			t.Errorf("%v: mantissa of %q not in [1, 10)", v, s)
		}
		e, err := ParseFloat(exp, 10)
		if err != nil {
			t.Errorf("%v: %q: %v", v, s, err)
			continue
		}
		if want := math.Floor(math.Log10(math.Abs(v))); e != want {
			t.Errorf("%v: exponent of %q, want %v", v, s, want)
		}
	}
	if s := FormatScientific(5e-324); !strings.HasPrefix(s, "4.94065645841") || !strings.HasSuffix(s, "e-324") {
		t.Errorf("5e-324: got %q", s)
	}
}

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{-7, "-7"},
		{1e15, "1e15"},
		{-1e16, "-1e16"},
		{1e-15, "1e-15"},
		{1e-14, "0.00000000000001"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
	}
	for _, tc := range tests {
		if got := FormatJSON(tc.in); got != tc.want {
			t.Errorf("FormatJSON(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	vals := []float64{1.2, 0.1, 100, -3.75, 12345.678, 1e-7, 6.02214076e23, -1.5e-300}
	for _, v := range vals {
		s := FormatJSON(v)
		got, err := ParseFloat(s, 10)
		if err != nil {
			t.Errorf("%v -> %q: %v", v, s, err)
			continue
		}
		if math.Abs(got-v) > 1e-12*math.Abs(v) {
			t.Errorf("%v -> %q -> %v", v, s, got)
		}
	}
	for base := MinBase; base <= MaxBase; base++ {
		s, err := FormatFloat(1234, base)
		if err != nil {
			t.Fatal(err)
		}
		got, err := ParseFloat(s, base)
		if err != nil {
			t.Errorf("base %d %q: %v", base, s, err)
			continue
		}
		if got != 1234 {
			t.Errorf("base %d: %q -> %v", base, s, got)
		}
	}
}

func TestValidateJSON(t *testing.T) {
	valid := []string{"11", "-1e-1", "-0.123456789e-99", "1E1", "-0.1E23", "1E+2", "0", "-0", "0.5", "10e010"}
	for _, s := range valid {
		if err := ValidateJSON(s); err != nil {
			t.Errorf("ValidateJSON(%q): %v", s, err)
		}
	}
	invalid := []string{"1.1-e1", "01", "-", "+1", ".5", "1.", "1e", "1e+", "--1", "1.5.5", "1e5.5", "-a"}
	for _, s := range invalid {
		if err := ValidateJSON(s); err == nil {
			t.Errorf("ValidateJSON(%q): expected error", s)
		}
	}
}

func TestIsJSONNumberChar(t *testing.T) {
	for _, c := range []byte("0123456789.-+eE") {
		if !IsJSONNumberChar(c) {
			t.Errorf("%q should be a number char", c)
		}
	}
	for _, c := range []byte("aAxX ,]}") {
		if IsJSONNumberChar(c) {
			t.Errorf("%q should not be a number char", c)
		}
	}
}

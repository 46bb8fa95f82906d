package numconv

import (
	"math"
	"strings"
)

const (
	sciUpper = 1e15
	sciLower = 1e-15
)

// FormatFloat renders v in base with at most MaxDigits(base) significant
// digits.
func FormatFloat(v float64, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrNotFinite
	}
	return formatFloat(v, base), nil
}

func formatFloat(v float64, base int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	maxDigits := MaxDigits(base)
	pos := firstDigitPosition(v, base)
	scaled := math.Round(scale(v, base, maxDigits-pos-1))
	if scaled >= math.Pow(float64(base), float64(maxDigits)) {
		// rounding carried into a new leading digit
		pos++
		scaled = math.Round(scale(v, base, maxDigits-pos-1))
	}

	b := &strings.Builder{}
	if neg {
		b.WriteByte('-')
	}
	point := false
	if pos < 0 {
		b.WriteString("0.")
		for range -pos - 1 {
			b.WriteByte('0')
		}
		point = true
	}
	for i := range maxDigits {
		p := math.Pow(float64(base), float64(maxDigits-i-1))
		d := int(math.Floor(scaled / p))
		if d >= base {
			d = base - 1
		} else if d < 0 {
			d = 0
		}
		if !point && pos-i+1 == 0 {
			if scaled != 0 {
				b.WriteByte('.')
			}
			point = true
		}
		if scaled != 0 || !point {
			b.WriteByte(DigitChar(d))
		}
		scaled -= float64(d) * p
	}
	for range pos - maxDigits + 1 {
		b.WriteByte('0')
	}
	return b.String()
}

// FormatScientific renders v as a base 10 mantissa in [1, 10), the
// letter 'e' and a base 10 exponent. Non-finite values are written
// "NaN", "Inf" and "-Inf".
func FormatScientific(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	exp := 0
	if v != 0 {
		exp = firstDigitPosition(v, 10)
		v = scale(v, 10, -exp)
		if v >= 10 {
			v /= 10
			exp++
		} else if v < 1 {
			v *= 10
			exp--
		}
	}
	mantissa := formatFloat(v, 10)
	if mantissa == "10" {
		mantissa = "1"
		exp++
	}
	b := &strings.Builder{}
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(mantissa)
	b.WriteByte('e')
	b.WriteString(formatFloat(float64(exp), 10))
	return b.String()
}

// UseScientific reports whether v is rendered in scientific notation by
// FormatJSON.
func UseScientific(v float64) bool {
	if v == 0 {
		return false
	}
	a := math.Abs(v)
	return a >= sciUpper || a <= sciLower
}

// FormatJSON renders v as a JSON numeral. NaN and infinities have no
// numeral and are written as null.
func FormatJSON(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "null"
	}
	if UseScientific(v) {
		return FormatScientific(v)
	}
	return formatFloat(v, 10)
}

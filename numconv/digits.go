package numconv

import "math"

const digitTable = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	MinBase = 2
	MaxBase = 36

	// numerals are limited to the digits that fit below this magnitude
	representableCeiling = 1e15
)

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return ErrBaseRange
	}
	return nil
}

// Digit returns the value of c as a digit in base.  Only the upper case
// letters of the digit table are digits.
func Digit(c byte, base int) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'A' && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}

// DigitChar returns the character for digit value d, which must be in
// [0, 36).
func DigitChar(d int) byte {
	return digitTable[d]
}

// digitRun returns the length of the maximal prefix of s made of digits
// valid in base.
func digitRun(s string, base int) int {
	i := 0
	for i < len(s) {
		if _, ok := Digit(s[i], base); !ok {
			break
		}
		i++
	}
	return i
}

// MaxDigits returns the number of significant digits in base that fit
// below the representable ceiling.
func MaxDigits(base int) int {
	return int(math.Floor(math.Log(representableCeiling) / math.Log(float64(base))))
}

// scale returns v * base^e, splitting the power so that neither half
// overflows or underflows on its own.
func scale(v float64, base, e int) float64 {
	b := float64(base)
	h := e / 2
	return v * math.Pow(b, float64(h)) * math.Pow(b, float64(e-h))
}

// firstDigitPosition returns p such that v * base^-p is in [1, base).
// v must be positive and finite.
func firstDigitPosition(v float64, base int) int {
	p := int(math.Ceil(math.Log(v) / math.Log(float64(base))))
	t := scale(v, base, -p)
	for t >= float64(base) {
		p++
		t = scale(v, base, -p)
	}
	for t < 1 {
		p--
		t = scale(v, base, -p)
	}
	return p
}

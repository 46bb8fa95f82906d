package numconv

import "math"

// parts holds the decomposition of a numeral; digit slices hold digit
// values, not characters.
type parts struct {
	neg     bool
	intPart []int
	frac    []int
	exp     []int
	expNeg  bool
	hasExp  bool
}

// ParseFloat converts s, written in base, to a float64.
//
// The accepted form is an optional sign, a run of base digits, an
// optional '.' followed by a run of base digits and, for bases up to 14,
// an optional 'e' or 'E' exponent with its own optional sign.  Larger
// bases have 'E' as a digit so no exponent is recognized there.
func ParseFloat(s string, base int) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	p, err := split(s, base)
	if err != nil {
		return 0, err
	}
	return p.value(base), nil
}

func allowsExponent(base int) bool {
	return base <= 14
}

func isExp(c byte) bool {
	return c == 'e' || c == 'E'
}

func split(s string, base int) (*parts, error) {
	p := &parts{}
	if len(s) == 0 {
		return nil, formatErr("number cannot have length zero", 0)
	}
	i := 0
	switch s[0] {
	case '-':
		p.neg = true
		i++
	case '+':
		i++
	}
	n := digitRun(s[i:], base)
	if n == 0 {
		return nil, formatErr("number must have at least one digit after the optional sign", i)
	}
	p.intPart = digitValues(s[i:i+n], base)
	i += n
	if i == len(s) {
		return p, nil
	}
	switch {
	case s[i] == '.':
		i++
		n = digitRun(s[i:], base)
		if n == 0 {
			return nil, formatErr("there must be at least one digit after the decimal point", i)
		}
		p.frac = digitValues(s[i:i+n], base)
		i += n
		if i == len(s) {
			return p, nil
		}
		if !allowsExponent(base) || !isExp(s[i]) {
			return nil, formatErr("expected exponent symbol", i)
		}
	case allowsExponent(base) && isExp(s[i]):
	default:
		return nil, formatErr("expected decimal point or exponent symbol", i)
	}
	if err := p.splitExp(s, i, base); err != nil {
		return nil, err
	}
	return p, nil
}

// splitExp decodes the exponent starting at the symbol at s[i].
func (p *parts) splitExp(s string, i, base int) error {
	i++
	if i == len(s) {
		return formatErr("there must be at least one digit after the exponent symbol", i)
	}
	switch s[i] {
	case '-':
		p.expNeg = true
		i++
	case '+':
		i++
	}
	n := digitRun(s[i:], base)
	if n == 0 {
		return formatErr("there must be at least one digit after the exponent symbol", i)
	}
	p.exp = digitValues(s[i:i+n], base)
	p.hasExp = true
	i += n
	if i != len(s) {
		return formatErr("there cannot be any characters past the exponent", i)
	}
	return nil
}

func digitValues(s string, base int) []int {
	res := make([]int, len(s))
	for i := range len(s) {
		res[i], _ = Digit(s[i], base)
	}
	return res
}

func (p *parts) value(base int) float64 {
	b := float64(base)
	n := 0.0
	for _, d := range p.intPart {
		n = n*b + float64(d)
	}
	for i, d := range p.frac {
		n += float64(d) * math.Pow(b, -float64(i+1))
	}
	if p.hasExp && n != 0 && !math.IsInf(n, 0) {
		e := 0.0
		for _, d := range p.exp {
			e = e*b + float64(d)
		}
		// any exponent past this saturates to 0 or Inf
		e = math.Min(e, maxExp)
		if p.expNeg {
			e = -e
		}
		n = scaleF(n, b, e)
	}
	if p.neg {
		n = -n
	}
	return n
}

const maxExp = 1e6

// scaleF is scale for exponents that may exceed int range.
func scaleF(v, b, e float64) float64 {
	h := math.Trunc(e / 2)
	return v * math.Pow(b, h) * math.Pow(b, e-h)
}

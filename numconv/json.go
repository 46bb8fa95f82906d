package numconv

// IsJSONNumberChar reports whether c may appear in a JSON numeral.
func IsJSONNumberChar(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.', '-', '+', 'e', 'E':
		return true
	default:
		return false
	}
}

func isDecimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func decimalRun(s string) int {
	i := 0
	for i < len(s) && isDecimal(s[i]) {
		i++
	}
	return i
}

// ValidateJSON checks that s is exactly one JSON numeral:
//
//	-? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE] [+-]? [0-9]+)?
//
// It checks the grammar only and does not compute a value.
func ValidateJSON(s string) error {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i == len(s) {
		return formatErr("number must contain at least one digit", i)
	}
	if !isDecimal(s[i]) {
		return formatErr("a number must start with 0-9 (after the optional sign)", i)
	}
	if s[i] == '0' {
		i++
	} else {
		i += decimalRun(s[i:])
	}
	if i == len(s) {
		return nil
	}
	if s[i] == '.' {
		i++
		n := decimalRun(s[i:])
		if n == 0 {
			return formatErr("there must be numbers after the decimal point", i)
		}
		i += n
		if i == len(s) {
			return nil
		}
	}
	if !isExp(s[i]) {
		if s[i] == '.' || isDecimal(s[i]) {
			return formatErr("expected decimal point or e or E", i)
		}
		return formatErr("expected e or E", i)
	}
	i++
	if i == len(s) {
		return formatErr("there must be a sign or a digit following e or E", i)
	}
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	n := decimalRun(s[i:])
	if n == 0 {
		return formatErr("there must be a digit following the optional exponent sign", i)
	}
	i += n
	if i != len(s) {
		return formatErr("there were characters following the exponent", i)
	}
	return nil
}

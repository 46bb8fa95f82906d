// Package numconv converts between float64 values and their textual
// representation in any base from 2 to 36.
//
// # Usage
//
//	v, err := numconv.ParseFloat("1F.8", 16)  // 31.5
//	s, err := numconv.FormatFloat(31.5, 2)    // "11111.1"
//	s = numconv.FormatScientific(1234.5)      // "1.2345e3"
//	s = numconv.FormatJSON(1e21)              // "1e21"
//
// Digits are drawn from the table 0-9A-Z; letters are upper case only.
// Formatting keeps at most [MaxDigits] significant digits, the number of
// base digits that fit below 1e15 (14 in base 10).
//
// [ValidateJSON] checks the JSON numeral grammar without computing a
// value; the tokenizer uses it to delimit number tokens.
//
// # Related Packages
//
//   - github.com/signadot/jcodec/token - tokenizer
//   - github.com/signadot/jcodec/encode - writer
package numconv

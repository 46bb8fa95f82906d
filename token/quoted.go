package token

import (
	"encoding/hex"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// scanQuoted checks the quoted string starting at d[i] == '"' and
// returns the offset just past the closing quote. On error it also
// returns the offset of the offending byte.
func scanQuoted(d []byte, i int) (int, int, error) {
	start := i
	i++
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, 0, nil
		case c == '\\':
			if i+1 >= len(d) {
				return 0, start, ErrUnterminated
			}
			switch d[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > len(d) || !allHex(d[i+2:i+6]) {
					return 0, i, ErrBadUnicode
				}
				i += 6
			default:
				return 0, i, ErrBadEscape
			}
		case c < 0x20:
			return 0, i, ErrUnicodeControl
		case c < utf8.RuneSelf:
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return 0, i, ErrBadUTF8
			}
			i += sz
		}
	}
	return 0, start, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// ValidString reports whether s is exactly one JSON string, quotes
// included.
func ValidString(s string) error {
	d := []byte(s)
	doc := NewPosDoc(d)
	if len(d) == 0 || d[0] != '"' {
		if len(d) == 0 {
			return NewTokenizeErr(ErrUnterminated, doc.end())
		}
		return invalidCharErr(d[0], doc.Pos(0))
	}
	end, at, err := scanQuoted(d, 0)
	if err != nil {
		return NewTokenizeErr(err, doc.Pos(at))
	}
	if end != len(d) {
		return invalidCharErr(d[end], doc.Pos(end))
	}
	return nil
}

// Unquote checks and unescapes a JSON string.
func Unquote(s string) (string, error) {
	if err := ValidString(s); err != nil {
		return "", err
	}
	return QuotedToString([]byte(s)), nil
}

// QuotedToString unescapes a quoted string that has already been
// checked by the tokenizer.
func QuotedToString(d []byte) string {
	body := d[1 : len(d)-1]
	if strings.IndexByte(string(body), '\\') < 0 {
		return string(body)
	}
	b := &strings.Builder{}
	b.Grow(len(body))
	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		switch body[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'u':
			r := hexRune(body[i+1 : i+5])
			i += 4
			if utf16.IsSurrogate(r) {
				r, i = surrogate(body, r, i)
			}
			b.WriteRune(r)
		default:
			b.WriteByte(body[i])
		}
		i++
	}
	return b.String()
}

// surrogate combines the high surrogate r with a following \u low
// surrogate. i is the offset of the last hex digit of r.
func surrogate(body []byte, r rune, i int) (rune, int) {
	j := i + 1
	if r >= 0xDC00 || j+6 > len(body) || body[j] != '\\' || body[j+1] != 'u' {
		return utf8.RuneError, i
	}
	lo := hexRune(body[j+2 : j+6])
	dec := utf16.DecodeRune(r, lo)
	if dec == utf8.RuneError {
		return utf8.RuneError, i
	}
	return dec, j + 5
}

func hexRune(d []byte) rune {
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d); err != nil {
		return utf8.RuneError
	}
	return rune(dst[0])<<8 | rune(dst[1])
}

// runeWidth is the number of bytes r occupies once escaped.
func runeWidth(r rune) int {
	switch r {
	case '"', '\\', '/', '\b', '\f', '\n', '\r', '\t':
		return 2
	}
	switch {
	case r < 0x20:
		return 6
	case r >= 0x10000:
		return 12
	default:
		return utf8.RuneLen(r)
	}
}

// QuotedLen is len(Quote(v)).
func QuotedLen(v string) int {
	n := 2
	for _, r := range v {
		n += runeWidth(r)
	}
	return n
}

func appendU(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[r>>12&0xF], hexDigits[r>>8&0xF],
		hexDigits[r>>4&0xF], hexDigits[r&0xF])
}

// AppendQuote appends the quoted and escaped form of v to dst.
// Invalid UTF-8 in v is written as U+FFFD.
func AppendQuote(dst []byte, v string) []byte {
	dst = append(dst, '"')
	for _, r := range v {
		switch r {
		case '"', '\\', '/':
			dst = append(dst, '\\', byte(r))
			continue
		case '\b':
			dst = append(dst, '\\', 'b')
			continue
		case '\f':
			dst = append(dst, '\\', 'f')
			continue
		case '\n':
			dst = append(dst, '\\', 'n')
			continue
		case '\r':
			dst = append(dst, '\\', 'r')
			continue
		case '\t':
			dst = append(dst, '\\', 't')
			continue
		}
		switch {
		case r < 0x20:
			dst = appendU(dst, r)
		case r >= 0x10000:
			r1, r2 := utf16.EncodeRune(r)
			dst = appendU(dst, r1)
			dst = appendU(dst, r2)
		default:
			dst = utf8.AppendRune(dst, r)
		}
	}
	return append(dst, '"')
}

func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, QuotedLen(v)), v))
}

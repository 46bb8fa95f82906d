package token

import (
	"strings"
	"testing"
)

func TestValidString(t *testing.T) {
	valid := []string{
		`""`,
		`"\"\u1234\n\r\f\b\t\""`,
		`"\/\\"`,
		`"héllo wörld"`,
		`"\uD83D\uDE00"`,
		`"\uabcd\uABCD"`,
	}
	for _, s := range valid {
		if err := ValidString(s); err != nil {
			t.Errorf("ValidString(%s): %v", s, err)
		}
	}
	invalid := []string{
		``,
		`"`,
		`abc`,
		`"\uAAAG"`,
		`"\a"`,
		"\"\x01\"",
		`"abc"x`,
		`"abc\"`,
	}
	for _, s := range invalid {
		if err := ValidString(s); err == nil {
			t.Errorf("ValidString(%q): expected error", s)
		}
	}
}

func TestQuotedToString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		{`"a\/b"`, "a/b"},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{`"\u0041\u00e9"`, "Aé"},
		{`"\u00E9"`, "é"},
		{`"\u1234"`, "\u1234"},
		{`"\uD83D\uDE00"`, "\U0001F600"},
		{`"\ud83d\ude00x"`, "\U0001F600x"},
		{`"\uD83Dx"`, "\uFFFDx"},
		{`"\uDE00"`, "\uFFFD"},
		{`"\uD83D\u0041"`, "\uFFFDA"},
	}
	for _, tc := range tests {
		if got := QuotedToString([]byte(tc.in)); got != tc.want {
			t.Errorf("QuotedToString(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"\t\n", `"\t\n"`},
		{`a"b\c/d`, `"a\"b\\c\/d"`},
		{"\b\f\r", `"\b\f\r"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{"\u00e9\u4e2d", `"é中"`},
		{"\U0001F600", `"\ud83d\ude00"`},
		{"\xff", "\"\uFFFD\""},
	}
	for _, tc := range tests {
		got := Quote(tc.in)
		if got != tc.want {
			t.Errorf("Quote(%q) = %s, want %s", tc.in, got, tc.want)
		}
		if n := QuotedLen(tc.in); n != len(got) {
			t.Errorf("QuotedLen(%q) = %d, len %d", tc.in, n, len(got))
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	in := []string{
		"",
		"hello",
		"\t\n\"\\/",
		"\x00\x01 \x7f",
		"mixed \u00e9 \u4e2d \U0001F600 \u2028",
		strings.Repeat("ab\n", 100),
	}
	for _, s := range in {
		q := Quote(s)
		if err := ValidString(q); err != nil {
			t.Errorf("Quote(%q) not valid: %v", s, err)
			continue
		}
		if got := QuotedToString([]byte(q)); got != s {
			t.Errorf("round trip %q -> %s -> %q", s, q, got)
		}
	}
}

func TestUnquote(t *testing.T) {
	got, err := Unquote(`"a\tb"`)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a\tb" {
		t.Errorf("got %q", got)
	}
	if _, err := Unquote(`"a`); err == nil {
		t.Error("expected error")
	}
}

func TestPosString(t *testing.T) {
	doc := NewPosDoc([]byte("{\n  \"a\": x\n}"))
	p := doc.Pos(9)
	l, c := p.LineCol()
	if l != 1 || c != 7 {
		t.Errorf("line %d col %d", l, c)
	}
	if s := p.String(); !strings.Contains(s, "offset 9") || !strings.Contains(s, "line=1") {
		t.Errorf("String() = %s", s)
	}
	if s := (Pos{I: 3}).String(); s != "offset 3" {
		t.Errorf("detached pos %s", s)
	}
}

package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/token"
)

const example = `{"a":"hi","b":[1.2, 0.1, 100],"x":{"x1":null,"x2":true,"x3":false}}`

func TestParseExample(t *testing.T) {
	node, err := Parse([]byte(example))
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Keys(); !cmp.Equal(got, []string{"a", "b", "x"}) {
		t.Errorf("keys %v", got)
	}
	want := map[string]any{
		"a": "hi",
		"b": []any{1.2, 0.1, 100.0},
		"x": map[string]any{"x1": nil, "x2": true, "x3": false},
	}
	if diff := cmp.Diff(want, ir.ToAny(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	b := ir.Get(node, "b")
	if cap(b.Values) != 3 {
		t.Errorf("array cap %d", cap(b.Values))
	}
	if cap(node.Fields) != 3 || cap(node.Values) != 3 {
		t.Errorf("object caps %d %d", cap(node.Fields), cap(node.Values))
	}
	if b.Values[2].Parent != b || b.Values[2].ParentIndex != 2 {
		t.Error("parent links")
	}
}

func TestParseOK(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{`null`, nil},
		{`true`, true},
		{`false`, false},
		{`22`, 22.0},
		{`-1e-1`, -0.1},
		{`1E+2`, 100.0},
		{`"hello"`, "hello"},
		{`"a\nbA"`, "a\nbA"},
		{`[]`, []any{}},
		{`{}`, map[string]any{}},
		{`[[]]`, []any{[]any{}}},
		{`[1,[2,[3]]]`, []any{1.0, []any{2.0, []any{3.0}}}},
		{` { "k" : [ true , null ] } `, map[string]any{"k": []any{true, nil}}},
		{`{"ab":1}`, map[string]any{"ab": 1.0}},
		{`{"":""}`, map[string]any{"": ""}},
	}
	for _, tc := range tests {
		node, err := Parse([]byte(tc.in))
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		got := ir.ToAny(node)
		if diff := cmp.Diff(tc.want, got, cmp.Comparer(func(a, b float64) bool {
			return ir.NumberEqual(a, b, 1e-12)
		})); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		in  string
		msg string
		off int
	}{
		{``, "unexpected end of input at start of value", 0},
		{`{{}}]`, "expected string as key in object, got '{'", 1},
		{`]`, "unexpected ']' at start of value", 0},
		{`[1,]`, "unexpected ']' at start of value", 3},
		{`[1 2]`, "expected ']' at end of array, got number", 3},
		{`[1`, "expected ']' at end of array, got end of input", 2},
		{`{"a" 1}`, "expected ':' after key in object, got number", 5},
		{`{"a":1,}`, "expected string as key in object, got '}'", 7},
		{`{1:1}`, "expected string as key in object, got number", 1},
		{`{"a":1 "b":2}`, "expected '}' at end of object, got string", 7},
		{`{"a":}`, "unexpected '}' at start of value", 5},
		{`1 2`, "unexpected number after top-level value", 2},
		{`{} []`, "unexpected '[' after top-level value", 3},
		{`[1,2]]`, "unexpected ']' after top-level value", 5},
		{`{"a":1,"a":2}`, `duplicate key "a" in object`, 7},
		{`{"a":{"b":1,"\u0062":2}}`, `duplicate key "b" in object`, 12},
		{`:`, "unexpected ':' at start of value", 0},
	}
	for _, tc := range tests {
		_, err := Parse([]byte(tc.in))
		if err == nil {
			t.Errorf("%q: expected error", tc.in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v is not ErrParse", tc.in, err)
		}
		se := &SyntaxError{}
		if !errors.As(err, &se) {
			t.Errorf("%q: %T is not a SyntaxError", tc.in, err)
			continue
		}
		if se.Msg != tc.msg {
			t.Errorf("%q: got %q want %q", tc.in, se.Msg, tc.msg)
		}
		if se.Pos.I != tc.off {
			t.Errorf("%q: offset %d want %d", tc.in, se.Pos.I, tc.off)
		}
		if verr := Validate([]byte(tc.in)); verr == nil || verr.Error() != err.Error() {
			t.Errorf("%q: Validate %v, Parse %v", tc.in, verr, err)
		}
	}
}

func TestParseTokenErrors(t *testing.T) {
	for _, in := range []string{`"`, `[tru]`, `[1.1-e1]`, `{"a":'b'}`} {
		_, err := Parse([]byte(in))
		te := &token.TokenizeErr{}
		if !errors.As(err, &te) {
			t.Errorf("%q: expected TokenizeErr, got %v", in, err)
		}
	}
}

func TestCheckCounts(t *testing.T) {
	toks, err := token.Tokenize([]byte(example))
	if err != nil {
		t.Fatal(err)
	}
	counts, err := check(toks)
	if err != nil {
		t.Fatal(err)
	}
	got := map[int]int{}
	for i, c := range counts {
		if c != 0 {
			got[i] = c
		}
	}
	// { at 0, [ at 7, inner { at 17
	want := map[int]int{0: 3, 7: 3, 17: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := Check(toks); err != nil {
		t.Error(err)
	}
	if err := Check(nil); !errors.Is(err, errInternal) {
		t.Errorf("Check(nil): %v", err)
	}
}

func TestParseTokens(t *testing.T) {
	toks, err := token.Tokenize([]byte(`[1,{"a":[]}]`))
	if err != nil {
		t.Fatal(err)
	}
	node, err := ParseTokens(toks)
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Values) != 2 || node.Values[1].Type != ir.ObjectType {
		t.Errorf("got %v", ir.ToAny(node))
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[*ir.Node]token.Pos{}
	node, err := Parse([]byte("{\n \"a\": [1,\n  true]\n}"), ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	tr, err := node.GetPath("$.a[1]")
	if err != nil {
		t.Fatal(err)
	}
	p, ok := pos[tr]
	if !ok {
		t.Fatal("no position for true")
	}
	if l, c := p.LineCol(); l != 2 || c != 2 {
		t.Errorf("true at line %d col %d", l, c)
	}
	if p, ok := pos[node.Fields[0]]; !ok || p.I != 3 {
		t.Errorf("key position %v %v", p, ok)
	}
	if p := pos[node]; p.I != 0 {
		t.Errorf("root at %d", p.I)
	}
}

func TestParseYAML(t *testing.T) {
	node, err := Parse([]byte("b: [1.5, x, true]\na: null\nc:\n  d: -3\n"), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Keys(); !cmp.Equal(got, []string{"b", "a", "c"}) {
		t.Errorf("yaml keys not in order: %v", got)
	}
	want := map[string]any{
		"b": []any{1.5, "x", true},
		"a": nil,
		"c": map[string]any{"d": -3.0},
	}
	if diff := cmp.Diff(want, ir.ToAny(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := Parse([]byte("a: [1,"), ParseYAML()); !errors.Is(err, ErrParse) {
		t.Errorf("bad yaml: %v", err)
	}
}

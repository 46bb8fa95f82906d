package ir

import (
	"errors"
	"testing"
)

func sample() *Node {
	return obj(
		"a", FromString("hi"),
		"b", arr(FromFloat(1.2), FromFloat(0.1), FromInt(100)),
		"x", obj("x1", Null(), "x2", FromBool(true), "x3", FromBool(false)),
		"odd.key", obj("it's", FromInt(1)),
	)
}

func TestGetPath(t *testing.T) {
	doc := sample()
	tests := []struct {
		path string
		want *Node
	}{
		{"$", doc},
		{"$.a", FromString("hi")},
		{"$.b[2]", FromInt(100)},
		{"$.x.x2", FromBool(true)},
		{"$.x.x1", Null()},
		{`$.'odd.key'.'it\'s'`, FromInt(1)},
		{"$.missing", nil},
		{"$.x.missing.deeper", nil},
	}
	for _, tc := range tests {
		got, err := doc.GetPath(tc.path)
		if err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		if tc.want == nil {
			if got != nil {
				t.Errorf("%s: expected nil", tc.path)
			}
			continue
		}
		if !Equal(got, tc.want, 0) {
			t.Errorf("%s: got %+v", tc.path, got)
		}
	}
}

func TestGetPathErrors(t *testing.T) {
	doc := sample()
	for _, p := range []string{"", "a", "$.", "$[", "$.b[9]", "$.a[0]", "$.b.c", "$.b[*]", "$[x]", "$.'unterminated"} {
		if _, err := doc.GetPath(p); err == nil {
			t.Errorf("%q: expected error", p)
		}
	}
	if _, err := doc.GetPath("nope"); !errors.Is(err, ErrPath) {
		t.Errorf("expected ErrPath, got %v", err)
	}
}

func TestPathRoundTrip(t *testing.T) {
	doc := sample()
	err := doc.Visit(func(n *Node) error {
		p := n.Path()
		got, err := doc.GetPath(p)
		if err != nil {
			return err
		}
		if got != n {
			t.Errorf("%s resolves to a different node", p)
		}
		pp, err := ParsePath(p)
		if err != nil {
			return err
		}
		if pp.String() != p {
			t.Errorf("ParsePath(%s).String() = %s", p, pp.String())
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestPathField(t *testing.T) {
	tests := map[string]string{
		"abc":    "abc",
		"":       "''",
		"a.b":    "'a.b'",
		"it's":   `'it\'s'`,
		`back\s`: `'back\\s'`,
	}
	for in, want := range tests {
		if got := PathField(in); got != want {
			t.Errorf("PathField(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestListPath(t *testing.T) {
	doc := sample()
	got, err := doc.ListPath(nil, "$.b[*]")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[2].Float64 != 100 {
		t.Errorf("got %v", got)
	}
	got, err = doc.ListPath(nil, "$.x[*]")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[1].Type != BoolType {
		t.Errorf("got %v", got)
	}
	if _, err := doc.ListPath(nil, "$.a[*]"); err == nil {
		t.Error("expected error on string")
	}
}

package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/parse"
)

const example = `{"a":"hi","b":[1.2, 0.1, 100],"x":{"x1":null,"x2":true,"x3":false}}`

func TestEval(t *testing.T) {
	doc, err := parse.Parse([]byte(example))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		src  string
		want any
	}{
		{`doc.a`, "hi"},
		{`doc.b[2] + 1`, 101.0},
		{`len(doc.b)`, 3.0},
		{`getpath("$.x.x2")`, true},
		{`getpath("$.missing")`, nil},
		{`keys(doc.x)`, []any{"x1", "x2", "x3"}},
		{`listpath("$.b[*]")`, []any{1.2, 0.1, 100.0}},
		{`tojson(doc.x.x1)`, "null"},
		{`doc.a + "!"`, "hi!"},
		{`{"k": doc.x.x3}`, map[string]any{"k": false}},
		{`filter(doc.b, # > 1)`, []any{1.2, 100.0}},
	}
	for _, tc := range tests {
		got, err := Eval(doc, tc.src)
		if err != nil {
			t.Errorf("%s: %v", tc.src, err)
			continue
		}
		if diff := cmp.Diff(tc.want, ir.ToAny(got)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.src, diff)
		}
	}
}

func TestEvalEnv(t *testing.T) {
	doc := ir.FromInt(2)
	got, err := EvalEnv(doc, `doc * factor`, Env{"factor": 21})
	if err != nil {
		t.Fatal(err)
	}
	if got.Float64 != 42 {
		t.Errorf("got %v", ir.ToAny(got))
	}
}

func TestEvalErrors(t *testing.T) {
	doc := ir.FromString("s")
	for _, src := range []string{`doc +`, `getpath("nope")`, `keys(doc)`, `undefined_var.x`} {
		if _, err := Eval(doc, src); !errors.Is(err, ErrEval) {
			t.Errorf("%s: expected ErrEval, got %v", src, err)
		}
	}
}

func TestFromResult(t *testing.T) {
	n := ir.FromString("x")
	got, err := FromResult([]*ir.Node{n, ir.Null()})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Values) != 2 || got.Values[0] == n || got.Values[0].String != "x" {
		t.Errorf("got %v", ir.ToAny(got))
	}
	var nilNode *ir.Node
	got, err = FromResult(nilNode)
	if err != nil || got.Type != ir.NullType {
		t.Errorf("nil node: %v %v", got, err)
	}
}

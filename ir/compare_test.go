package ir

import (
	"math"
	"testing"
)

func obj(kvs ...any) *Node {
	res := &Node{Type: ObjectType}
	for i := 0; i < len(kvs); i += 2 {
		res.Put(kvs[i].(string), kvs[i+1].(*Node))
	}
	return res
}

func arr(vs ...*Node) *Node {
	return FromSlice(vs)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		eps  float64
		want bool
	}{
		{"null", Null(), Null(), 0, true},
		{"null vs false", Null(), FromBool(false), 0, false},
		{"bool", FromBool(true), FromBool(true), 0, true},
		{"bool differs", FromBool(true), FromBool(false), 0, false},
		{"string", FromString("a"), FromString("a"), 0, true},
		{"string differs", FromString("a"), FromString("b"), 0, false},
		{"string vs number", FromString("1"), FromInt(1), 1, false},
		{"number exact eps 0", FromFloat(1.5), FromFloat(1.5), 0, true},
		{"number within eps", FromFloat(1.201), FromFloat(1.2), 0.1, true},
		{"number outside eps", FromFloat(1.201), FromFloat(1.2), 0.0001, false},
		{"number at eps", FromFloat(1), FromFloat(2), 1, false},
		{"nan", FromFloat(math.NaN()), FromFloat(math.NaN()), 1, false},
		{"empty arrays", arr(), arr(), 0, true},
		{"array order", arr(FromInt(1), FromInt(2)), arr(FromInt(2), FromInt(1)), 0, false},
		{"array length", arr(FromInt(1)), arr(FromInt(1), FromInt(1)), 0, false},
		{"empty objects", obj(), obj(), 0, true},
		{"object order ignored",
			obj("a", FromInt(1), "b", FromString("x")),
			obj("b", FromString("x"), "a", FromInt(1)), 0, true},
		{"object missing key",
			obj("a", FromInt(1), "b", FromInt(2)),
			obj("a", FromInt(1), "c", FromInt(2)), 0, false},
		{"object key count",
			obj("a", FromInt(1)),
			obj("a", FromInt(1), "b", FromInt(2)), 0, false},
		{"nested",
			obj("x", obj("x1", Null(), "x2", FromBool(true)), "b", arr(FromFloat(1.2), FromFloat(0.1))),
			obj("b", arr(FromFloat(1.2), FromFloat(0.1)), "x", obj("x2", FromBool(true), "x1", Null())),
			1e-9, true},
		{"nil", nil, Null(), 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b, tc.eps); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
			if got := Equal(tc.b, tc.a, tc.eps); got != tc.want {
				t.Errorf("Equal (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		node *Node
		want bool
	}{
		{nil, false},
		{Null(), false},
		{FromBool(true), true},
		{FromInt(0), false},
		{FromFloat(0.5), true},
		{FromString(""), false},
		{FromString("x"), true},
		{arr(), false},
		{arr(Null()), true},
		{obj(), false},
		{obj("a", Null()), true},
	}
	for i, tc := range tests {
		if got := Truth(tc.node); got != tc.want {
			t.Errorf("%d: Truth = %v, want %v", i, got, tc.want)
		}
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s -> %s", typ, back)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Comment")); err == nil {
		t.Error("expected error")
	}
}

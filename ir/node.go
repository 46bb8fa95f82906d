package ir

import (
	"maps"
	"slices"
)

// Node is an element of a JSON document.
//
// Objects hold their keys in Fields, as StringType nodes, and the
// corresponding values in Values, in source order. Arrays hold their
// elements in Values.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: f}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Float64: float64(v)}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// NewObject returns an object with room for exactly n fields, to be
// filled with SetField.
func NewObject(n int) *Node {
	return &Node{
		Type:   ObjectType,
		Fields: make([]*Node, n),
		Values: make([]*Node, n),
	}
}

// NewArray returns an array with room for exactly n elements, to be
// filled with SetIndex.
func NewArray(n int) *Node {
	return &Node{
		Type:   ArrayType,
		Values: make([]*Node, n),
	}
}

func (y *Node) SetField(i int, key string, val *Node) {
	y.Fields[i] = &Node{
		Type:        StringType,
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
		String:      key,
	}
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = key
	y.Values[i] = val
}

func (y *Node) SetIndex(i int, val *Node) {
	val.Parent = y
	val.ParentIndex = i
	y.Values[i] = val
}

// Put sets key to val in object y, replacing the value of an existing
// key or appending a new field.
func (y *Node) Put(key string, val *Node) {
	for i, f := range y.Fields {
		if f.String == key {
			y.SetField(i, key, val)
			return
		}
	}
	y.Fields = append(y.Fields, nil)
	y.Values = append(y.Values, nil)
	y.SetField(len(y.Fields)-1, key, val)
}

// Append adds val at the end of array y.
func (y *Node) Append(val *Node) {
	y.Values = append(y.Values, nil)
	y.SetIndex(len(y.Values)-1, val)
}

func FromSlice(vs []*Node) *Node {
	res := NewArray(len(vs))
	for i, v := range vs {
		res.SetIndex(i, v)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object in the order of kvs. Later duplicates
// replace earlier values.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for _, kv := range kvs {
		res.Put(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object with the keys of m in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := NewObject(len(m))
	for i, key := range slices.Sorted(maps.Keys(m)) {
		res.SetField(i, key, m[key])
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f.String] = node.Values[i]
	}
	return res
}

// Get returns the value for key in object node, or nil.
func Get(node *Node, key string) *Node {
	if node == nil || node.Type != ObjectType {
		return nil
	}
	for i, f := range node.Fields {
		if f.String == key {
			return node.Values[i]
		}
	}
	return nil
}

func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Float64 = y.Float64
	dst.Fields = nil
	dst.Values = nil
	switch y.Type {
	case ObjectType:
		dst.Fields = make([]*Node, len(y.Fields))
		dst.Values = make([]*Node, len(y.Values))
		for i, yf := range y.Fields {
			dst.SetField(i, yf.String, y.Values[i].Clone())
		}
	case ArrayType:
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.SetIndex(i, yv.Clone())
		}
	}
	return dst
}

// Release detaches and clears y and everything below it. y keeps its
// Type but is otherwise zeroed.
func (y *Node) Release() {
	for _, f := range y.Fields {
		f.Release()
	}
	for _, v := range y.Values {
		v.Release()
	}
	clear(y.Fields)
	clear(y.Values)
	*y = Node{Type: y.Type}
}

// Visit calls f on y and then on each value below it, depth first in
// document order. Object keys are not visited. If f returns an error the
// walk stops and returns it.
func (y *Node) Visit(f func(*Node) error) error {
	if err := f(y); err != nil {
		return err
	}
	for _, v := range y.Values {
		if err := v.Visit(f); err != nil {
			return err
		}
	}
	return nil
}

func (y *Node) Root() *Node {
	for y.Parent != nil {
		y = y.Parent
	}
	return y
}

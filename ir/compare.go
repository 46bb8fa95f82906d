package ir

import "math"

// Equal reports whether a and b are structurally equal.
//
// Types must match. Numbers are equal when identical or when their
// absolute difference is below epsilon. Arrays are compared pairwise in
// order. Objects must have the same number of keys, and each key of a
// must be present in b with an equal value; key order is ignored.
func Equal(a, b *Node, epsilon float64) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return NumberEqual(a.Float64, b.Float64, epsilon)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i], epsilon) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			bv := Get(b, f.String)
			if bv == nil {
				return false
			}
			if !Equal(a.Values[i], bv, epsilon) {
				return false
			}
		}
		return true
	}
	return false
}

func NumberEqual(a, b, epsilon float64) bool {
	return a == b || math.Abs(a-b) < epsilon
}

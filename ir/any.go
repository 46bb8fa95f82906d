package ir

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// ToAny converts node to nil, bool, float64, string, []any or
// map[string]any.
func ToAny(node *Node) any {
	switch node.Type {
	case BoolType:
		return node.Bool
	case NumberType:
		return node.Float64
	case StringType:
		return node.String
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = ToAny(node.Values[i])
		}
		return res
	default:
		return nil
	}
}

// FromAny converts Go values to a tree. Maps must have string keys and
// their fields are sorted.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case float64:
		return FromFloat(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case []any:
		res := NewArray(len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.SetIndex(i, n)
		}
		return res, nil
	case map[string]any:
		res := NewObject(len(x))
		for i, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.SetField(i, k, n)
		}
		return res, nil
	}
	return fromValue(reflect.ValueOf(v))
}

func fromValue(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromFloat(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		res := NewArray(rv.Len())
		for i := range rv.Len() {
			n, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.SetIndex(i, n)
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrUnsupported, rv.Type().Key())
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		res := NewObject(len(keys))
		for i, k := range keys {
			n, err := FromAny(rv.MapIndex(k).Interface())
			if err != nil {
				return nil, err
			}
			res.SetField(i, k.String(), n)
		}
		return res, nil
	}
	if !rv.IsValid() {
		return Null(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}

package encode

import (
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/signadot/jcodec/ir"
)

// ToYAMLValue converts node to values github.com/goccy/go-yaml marshals
// with object key order kept.
func ToYAMLValue(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: ToYAMLValue(node.Values[i])}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToYAMLValue(v)
		}
		return res
	case ir.NumberType:
		f := node.Float64
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	default:
		return ir.ToAny(node)
	}
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(ToYAMLValue(node))
	if err != nil {
		return fmt.Errorf("%w: yaml: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

package parse

import (
	"fmt"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/signadot/jcodec/ir"
)

// fromYAML decodes a YAML document, keeping mapping order.
func fromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrParse, err)
	}
	return yamlNode(v)
}

func yamlNode(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.NewObject(len(x))
		seen := make(map[string]struct{}, len(x))
		for i, item := range x {
			k := fmt.Sprint(item.Key)
			if _, dup := seen[k]; dup {
				return nil, fmt.Errorf("%w: yaml: duplicate key %q", ErrParse, k)
			}
			seen[k] = struct{}{}
			val, err := yamlNode(item.Value)
			if err != nil {
				return nil, err
			}
			res.SetField(i, k, val)
		}
		return res, nil
	case []any:
		res := ir.NewArray(len(x))
		for i, e := range x {
			val, err := yamlNode(e)
			if err != nil {
				return nil, err
			}
			res.SetIndex(i, val)
		}
		return res, nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	default:
		n, err := ir.FromAny(x)
		if err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrParse, err)
		}
		return n, nil
	}
}

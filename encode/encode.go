package encode

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/signadot/jcodec/debug"
	"github.com/signadot/jcodec/format"
	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/numconv"
)

type EncState struct {
	depth, indent int

	format format.Format
	Color  func(ir.Type, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Length returns the number of bytes Marshal produces for node.
func Length(node *ir.Node, opts ...EncodeOption) int {
	c := &counter{}
	walk(node, c, newState(opts))
	return c.n
}

// Marshal writes node as JSON into a buffer allocated once with the size
// computed by Length. Colors and formats other than JSON are ignored.
func Marshal(node *ir.Node, opts ...EncodeOption) []byte {
	es := newState(opts)
	c := &counter{}
	walk(node, c, es)
	b := &buffer{b: make([]byte, 0, c.n)}
	walk(node, b, es)
	if len(b.b) != c.n {
		panic(fmt.Sprintf("%v: computed length %d, wrote %d", errInternal, c.n, len(b.b)))
	}
	if debug.Encode() {
		debug.Logf("encode: %d bytes", c.n)
	}
	return b.b
}

// MustString returns the compact JSON text of node.
func MustString(node *ir.Node) string {
	return string(Marshal(node))
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if es.format == format.YAMLFormat {
		return encodeYAML(node, w)
	}
	var d []byte
	if es.Color == nil {
		d = Marshal(node, opts...)
	} else {
		cb := &colorBuffer{color: es.Color}
		walk(node, cb, es)
		d = cb.b
	}
	d = append(d, '\n')
	_, err := w.Write(d)
	return err
}

func newline(s sink, es *EncState) {
	if es.indent == 0 {
		return
	}
	s.space("\n" + strings.Repeat(" ", es.indent*es.depth))
}

func walk(node *ir.Node, s sink, es *EncState) {
	switch node.Type {
	case ir.NullType:
		s.put(ir.NullType, ValueColor, "null")
	case ir.BoolType:
		if node.Bool {
			s.put(ir.BoolType, ValueColor, "true")
		} else {
			s.put(ir.BoolType, ValueColor, "false")
		}
	case ir.NumberType:
		f := node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			s.put(ir.NullType, ValueColor, "null")
			return
		}
		s.put(ir.NumberType, ValueColor, numconv.FormatJSON(f))
	case ir.StringType:
		s.quote(ir.StringType, ValueColor, node.String)
	case ir.ArrayType:
		s.put(ir.ArrayType, SepColor, "[")
		if len(node.Values) == 0 {
			s.put(ir.ArrayType, SepColor, "]")
			return
		}
		es.depth++
		for i, v := range node.Values {
			if i > 0 {
				s.put(ir.ArrayType, SepColor, ",")
			}
			newline(s, es)
			walk(v, s, es)
		}
		es.depth--
		newline(s, es)
		s.put(ir.ArrayType, SepColor, "]")
	case ir.ObjectType:
		s.put(ir.ObjectType, SepColor, "{")
		if len(node.Fields) == 0 {
			s.put(ir.ObjectType, SepColor, "}")
			return
		}
		es.depth++
		for i, f := range node.Fields {
			if i > 0 {
				s.put(ir.ObjectType, SepColor, ",")
			}
			newline(s, es)
			s.quote(ir.ObjectType, FieldColor, f.String)
			s.put(ir.ObjectType, SepColor, ":")
			if es.indent > 0 {
				s.space(" ")
			}
			walk(node.Values[i], s, es)
		}
		es.depth--
		newline(s, es)
		s.put(ir.ObjectType, SepColor, "}")
	default:
		panic(fmt.Sprintf("%v: node type %s", errInternal, node.Type))
	}
}

package libdiff

import (
	"fmt"
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jcodec/debug"
	"github.com/signadot/jcodec/encode"
	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/numconv"
)

// Difference is one place where two documents disagree. Path locates it
// in the documents. From is nil for Extra and To is nil for Missing.
type Difference struct {
	Path string
	Kind Kind
	From *ir.Node
	To   *ir.Node
}

func (d Difference) String() string {
	switch d.Kind {
	case Missing:
		return fmt.Sprintf("%s: %s, was %s", d.Path, d.Kind, encode.MustString(d.From))
	case Extra:
		return fmt.Sprintf("%s: %s %s", d.Path, d.Kind, encode.MustString(d.To))
	case TypeMismatch:
		return fmt.Sprintf("%s: %s, %s != %s", d.Path, d.Kind, d.From.Type, d.To.Type)
	case LengthMismatch:
		return fmt.Sprintf("%s: %s, %d != %d", d.Path, d.Kind, len(d.From.Values), len(d.To.Values))
	default:
		return fmt.Sprintf("%s: %s, %s != %s", d.Path, d.Kind, encode.MustString(d.From), encode.MustString(d.To))
	}
}

// Diff lists the differences between from and to, using the rules of
// ir.Equal: Diff returns nothing exactly when ir.Equal reports true.
//
// Object keys are matched by name. Arrays of equal length are compared
// element by element; otherwise the elements are aligned by a sequence
// diff and unmatched elements are reported as Missing or Extra.
func Diff(from, to *ir.Node, epsilon float64) []Difference {
	d := &differ{eps: epsilon}
	d.diff("$", from, to)
	if debug.Diff() {
		debug.Logf("diff: %d differences", len(d.res))
	}
	return d.res
}

type differ struct {
	eps float64
	res []Difference
}

func (d *differ) add(path string, k Kind, from, to *ir.Node) {
	d.res = append(d.res, Difference{Path: path, Kind: k, From: from, To: to})
}

func (d *differ) diff(path string, from, to *ir.Node) {
	switch {
	case from == nil && to == nil:
		return
	case from == nil:
		d.add(path, Extra, nil, to)
		return
	case to == nil:
		d.add(path, Missing, from, nil)
		return
	case from.Type != to.Type:
		d.add(path, TypeMismatch, from, to)
		return
	}
	switch from.Type {
	case ir.ObjectType:
		d.object(path, from, to)
	case ir.ArrayType:
		d.array(path, from, to)
	default:
		if !ir.Equal(from, to, d.eps) {
			d.add(path, ValueMismatch, from, to)
		}
	}
}

func (d *differ) object(path string, from, to *ir.Node) {
	for i, f := range from.Fields {
		fp := path + "." + ir.PathField(f.String)
		tv := ir.Get(to, f.String)
		if tv == nil {
			d.add(fp, Missing, from.Values[i], nil)
			continue
		}
		d.diff(fp, from.Values[i], tv)
	}
	for i, f := range to.Fields {
		if ir.Get(from, f.String) == nil {
			d.add(path+"."+ir.PathField(f.String), Extra, nil, to.Values[i])
		}
	}
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func (d *differ) array(path string, from, to *ir.Node) {
	if len(from.Values) == len(to.Values) {
		for i := range from.Values {
			d.diff(index(path, i), from.Values[i], to.Values[i])
		}
		return
	}
	d.add(path, LengthMismatch, from, to)
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				d.add(index(path, fi), Missing, from.Values[fi], nil)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(index(path, ti), Extra, nil, to.Values[ti])
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				d.diff(index(path, fi), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		}
	}
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			// skip the surrogate range, the diff works on text
			r = rune(len(m)) + 1
			if r >= 0xD800 {
				r += 0x800
			}
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryStr fingerprints a node for array alignment. Containers match
// any container of the same type and are then compared recursively.
func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		return node.Type.String() + "-" + numconv.FormatJSON(node.Float64)
	default:
		return node.Type.String()
	}
}

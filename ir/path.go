package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the location of y in its tree, as accepted by
// ParsePath.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + PathField(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// PathField quotes f for use as a path field when needed.
func PathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	return "'" + pathQuoter.Replace(f) + "'"
}

var pathQuoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			buf.WriteString("." + PathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// ParsePath parses paths of the form $.field[3].'quoted.field'[*].
func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at yPath below y, or nil if a field along the
// way is absent.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	if yp.Field == nil && yp.Index == nil && !yp.IndexAll {
		yp = yp.Next
	}
	for ; yp != nil; yp = yp.Next {
		if yp.IndexAll {
			return nil, fmt.Errorf("%w: [*] in get, use ListPath", ErrPath)
		}
		res, err = step(res, yp)
		if err != nil || res == nil {
			return nil, err
		}
	}
	return res, nil
}

func step(y *Node, yp *Path) (*Node, error) {
	if yp.Index != nil {
		if y.Type != ArrayType {
			return nil, fmt.Errorf("expected array at %s, got %s", y.Path(), y.Type)
		}
		index := *yp.Index
		if index >= len(y.Values) {
			return nil, fmt.Errorf("index out of bounds %d (len %d) at %s", index, len(y.Values), y.Path())
		}
		return y.Values[index], nil
	}
	if y.Type != ObjectType {
		return nil, fmt.Errorf("expected object at %s, got %s", y.Path(), y.Type)
	}
	return Get(y, *yp.Field), nil
}

// ListPath appends to dst every node matching yPath, which may contain
// [*] to select all elements of an array or all values of an object.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	if yp.Field == nil && yp.Index == nil && !yp.IndexAll {
		yp = yp.Next
	}
	return y.listPath(dst, yp)
}

func (y *Node) listPath(dst []*Node, yp *Path) ([]*Node, error) {
	if yp == nil {
		return append(dst, y), nil
	}
	if !yp.IndexAll {
		next, err := step(y, yp)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return dst, nil
		}
		return next.listPath(dst, yp.Next)
	}
	if y.Type != ArrayType && y.Type != ObjectType {
		return nil, fmt.Errorf("expected container at %s, got %s", y.Path(), y.Type)
	}
	var err error
	for _, v := range y.Values {
		dst, err = v.listPath(dst, yp.Next)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

package gomap

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/parse"
)

var ErrMapping = errors.New("mapping error")

// IRToer is implemented by types that encode themselves as a tree.
type IRToer interface {
	ToIR() (*ir.Node, error)
}

// ToIR converts v to a tree. Struct fields are named by their json tags
// and keep their declaration order; map keys are sorted.
func ToIR(v any) (*ir.Node, error) {
	if x, ok := v.(IRToer); ok {
		return x.ToIR()
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMapping, err)
	}
	return parse.Parse(d)
}

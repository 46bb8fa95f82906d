package parse

import (
	"github.com/signadot/jcodec/format"
	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/token"
)

type parseOpts struct {
	format    format.Format
	positions map[*ir.Node]token.Pos
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParsePositions records the source position of each parsed value in m.
// Positions are only available for JSON input.
func ParsePositions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

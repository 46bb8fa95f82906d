// Package gomap maps trees to Go values and back.
package gomap

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jcodec/encode"
	"github.com/signadot/jcodec/format"
	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/parse"
)

type fromOpts struct {
	format   format.Format
	disallow bool
}

func (do *fromOpts) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(do.format)}
}

type FromOption func(*fromOpts)

func LoadFormat(f format.Format) FromOption { return func(o *fromOpts) { o.format = f } }

// DisallowUnknownFields makes object fields without a matching struct
// field an error.
func DisallowUnknownFields(v bool) FromOption { return func(o *fromOpts) { o.disallow = v } }

// IRFromer is implemented by types that decode themselves from a tree.
type IRFromer interface {
	FromIR(*ir.Node, ...FromOption) error
}

// Load parses d and stores the result in the value pointed to by p.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	node, err := parse.Parse(d, do.parseOpts()...)
	if err != nil {
		return err
	}
	defer node.Release()
	return fromIR(node, p, do, opts)
}

// FromIR stores node in the value pointed to by p. Struct fields are
// matched by their json tags.
func FromIR(node *ir.Node, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	return fromIR(node, p, do, opts)
}

func fromIR(node *ir.Node, p any, do *fromOpts, opts []FromOption) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node, opts...)
	}
	dec := json.NewDecoder(bytes.NewReader(encode.Marshal(node)))
	if do.disallow {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("%w: %w", ErrMapping, err)
	}
	return nil
}

package jcodec

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/jcodec/encode"
	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/parse"
)

// Patch applies an RFC 6902 JSON patch to doc.
func Patch(doc, patch []byte) (*ir.Node, error) {
	d, err := normalize(doc)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return parse.Parse(out)
}

// MergePatch applies an RFC 7386 merge patch to doc.
func MergePatch(doc, patch []byte) (*ir.Node, error) {
	d, err := normalize(doc)
	if err != nil {
		return nil, err
	}
	p, err := normalize(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	return parse.Parse(out)
}

// CreateMergePatch returns the RFC 7386 merge patch turning from into
// to.
func CreateMergePatch(from, to *ir.Node) (*ir.Node, error) {
	out, err := jsonpatch.CreateMergePatch(encode.Marshal(from), encode.Marshal(to))
	if err != nil {
		return nil, fmt.Errorf("creating merge patch: %w", err)
	}
	return parse.Parse(out)
}

// normalize checks text with this package's parser and rewrites it
// compactly.
func normalize(text []byte) ([]byte, error) {
	node, err := parse.Parse(text)
	if err != nil {
		return nil, err
	}
	defer node.Release()
	return encode.Marshal(node), nil
}

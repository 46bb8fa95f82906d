// Package jcodec reads, writes, validates and compares JSON documents.
//
// The codec is built from its own parts: [token] splits text into
// tokens, [parse] builds an [ir.Node] tree in two passes, [encode]
// writes trees back out with an exact length pre-computation and
// [numconv] converts numbers in any base from 2 to 36.
//
// # Usage
//
//	node, err := jcodec.Read([]byte(`{"a":[1,2]}`))
//	text := jcodec.Write(node)
//
//	ok, msgs := jcodec.IsValid([]byte(`{{}}]`))
//	eq, msgs := jcodec.Compare(a, b, 0.0001)
//
// Comparison ignores object key order and accepts numbers whose
// difference is below the given epsilon. [Differences] lists where two
// documents disagree.
//
// [Patch] and [MergePatch] apply RFC 6902 and RFC 7386 patches with
// github.com/evanphx/json-patch.
//
// # Related Packages
//
//   - github.com/signadot/jcodec/parse - Parse text to IR
//   - github.com/signadot/jcodec/encode - Encode IR to text
//   - github.com/signadot/jcodec/libdiff - differences between trees
//   - github.com/signadot/jcodec/eval - expressions over trees
//   - github.com/signadot/jcodec/gomap - trees to and from Go values
package jcodec

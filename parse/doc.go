// Package parse provides JSON parsing support.
//
// [Parse] tokenizes its input with [token.Tokenize] and then makes two
// passes over the tokens. The first pass checks the grammar and counts
// the children of every container, indexed by the position of the
// container's opening token. The second pass builds the [ir.Node] tree,
// allocating each container exactly once.
//
// [Check] and [Validate] run the first pass only.
//
// YAML input, selected with [ParseYAML], is decoded by
// github.com/goccy/go-yaml with mapping order preserved.
//
// # Related Packages
//
//   - github.com/signadot/jcodec/token - tokenizer
//   - github.com/signadot/jcodec/encode - Encode IR to text
package parse

// Package encode writes [ir.Node] trees as JSON or YAML.
//
// JSON output is produced by one traversal run twice: first against a
// counter to find the exact output length, then against a buffer of that
// size. [Length] exposes the first pass.
//
// Options select pretty printing ([Indent]), terminal colors
// ([EncodeColors], using github.com/fatih/color) and the output format
// ([EncodeFormat]). YAML is written with github.com/goccy/go-yaml.
//
// Numbers use [numconv.FormatJSON]. NaN and infinities have no JSON form
// and are written as null.
//
// # Related Packages
//
//   - github.com/signadot/jcodec/parse - Parse text to IR
//   - github.com/signadot/jcodec/token - string escaping
package encode

// Package format names the document formats read and written by jcodec.
//
// JSON is handled by this module's own tokenizer, parser and writer.
// YAML is bridged through github.com/goccy/go-yaml.
//
// # Related Packages
//
//   - github.com/signadot/jcodec/parse - Parse text to IR
//   - github.com/signadot/jcodec/encode - Encode IR to text
package format

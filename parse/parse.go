package parse

import (
	"fmt"

	"github.com/signadot/jcodec/debug"
	"github.com/signadot/jcodec/format"
	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/numconv"
	"github.com/signadot/jcodec/token"
)

// Parse parses a document. JSON is tokenized, checked in a first pass
// that counts the children of every container, and then built in a
// second pass that allocates each container once at its final size.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newOpts(opts)
	if pOpts.format == format.YAMLFormat {
		return fromYAML(d)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	return parseTokens(toks, pOpts)
}

// ParseTokens parses the output of token.Tokenize.
func ParseTokens(toks []token.Token, opts ...ParseOption) (*ir.Node, error) {
	return parseTokens(toks, newOpts(opts))
}

// Check reports whether toks form exactly one JSON value, without
// building it.
func Check(toks []token.Token) error {
	_, err := check(toks)
	return err
}

// Validate tokenizes d and checks its grammar.
func Validate(d []byte) error {
	toks, err := token.Tokenize(d)
	if err != nil {
		return err
	}
	return Check(toks)
}

func parseTokens(toks []token.Token, opts *parseOpts) (*ir.Node, error) {
	counts, err := check(toks)
	if err != nil {
		return nil, err
	}
	pi := 0
	res, err := build(toks, counts, &pi, opts)
	if err != nil {
		return nil, err
	}
	if pi != len(toks)-1 {
		return nil, fmt.Errorf("%w: stopped at token %d of %d", errInternal, pi, len(toks))
	}
	return res, nil
}

func check(toks []token.Token) ([]int, error) {
	if len(toks) == 0 || toks[len(toks)-1].Type != token.TEnd {
		return nil, fmt.Errorf("%w: token stream without end", errInternal)
	}
	counts := make([]int, len(toks))
	pi := 0
	if err := checkValue(toks, counts, &pi); err != nil {
		return nil, err
	}
	if tok := &toks[pi]; tok.Type != token.TEnd {
		return nil, syntaxErr(tok, "unexpected %s after top-level value", tok.Type)
	}
	if debug.Parse() {
		debug.Logf("parse: checked %d tokens", len(toks))
	}
	return counts, nil
}

func checkValue(toks []token.Token, counts []int, pi *int) error {
	tok := &toks[*pi]
	switch tok.Type {
	case token.TTrue, token.TFalse, token.TNull, token.TString, token.TNumber:
		*pi++
		return nil
	case token.TLCurl:
		return checkObject(toks, counts, pi)
	case token.TLSquare:
		return checkArray(toks, counts, pi)
	default:
		return syntaxErr(tok, "unexpected %s at start of value", tok.Type)
	}
}

func checkObject(toks []token.Token, counts []int, pi *int) error {
	open := *pi
	*pi++
	if toks[*pi].Type == token.TRCurl {
		*pi++
		return nil
	}
	seen := map[string]struct{}{}
	for {
		key := &toks[*pi]
		if key.Type != token.TString {
			return syntaxErr(key, "expected string as key in object, got %s", key.Type)
		}
		k := token.QuotedToString(key.Bytes)
		if _, dup := seen[k]; dup {
			return syntaxErr(key, "duplicate key %q in object", k)
		}
		seen[k] = struct{}{}
		*pi++
		if tok := &toks[*pi]; tok.Type != token.TColon {
			return syntaxErr(tok, "expected ':' after key in object, got %s", tok.Type)
		}
		*pi++
		if err := checkValue(toks, counts, pi); err != nil {
			return err
		}
		counts[open]++
		switch tok := &toks[*pi]; tok.Type {
		case token.TComma:
			*pi++
		case token.TRCurl:
			*pi++
			return nil
		default:
			return syntaxErr(tok, "expected '}' at end of object, got %s", tok.Type)
		}
	}
}

func checkArray(toks []token.Token, counts []int, pi *int) error {
	open := *pi
	*pi++
	if toks[*pi].Type == token.TRSquare {
		*pi++
		return nil
	}
	for {
		if err := checkValue(toks, counts, pi); err != nil {
			return err
		}
		counts[open]++
		switch tok := &toks[*pi]; tok.Type {
		case token.TComma:
			*pi++
		case token.TRSquare:
			*pi++
			return nil
		default:
			return syntaxErr(tok, "expected ']' at end of array, got %s", tok.Type)
		}
	}
}

// build assumes toks passed check.
func build(toks []token.Token, counts []int, pi *int, opts *parseOpts) (*ir.Node, error) {
	tok := &toks[*pi]
	var node *ir.Node
	switch tok.Type {
	case token.TTrue:
		node = ir.FromBool(true)
		*pi++
	case token.TFalse:
		node = ir.FromBool(false)
		*pi++
	case token.TNull:
		node = ir.Null()
		*pi++
	case token.TString:
		node = ir.FromString(token.QuotedToString(tok.Bytes))
		*pi++
	case token.TNumber:
		f, err := numconv.ParseFloat(string(tok.Bytes), 10)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errInternal, err)
		}
		node = ir.FromFloat(f)
		*pi++
	case token.TLCurl:
		n := counts[*pi]
		node = ir.NewObject(n)
		*pi++
		for i := range n {
			key := &toks[*pi]
			*pi += 2
			val, err := build(toks, counts, pi, opts)
			if err != nil {
				return nil, err
			}
			node.SetField(i, token.QuotedToString(key.Bytes), val)
			if opts.positions != nil {
				opts.positions[node.Fields[i]] = key.Pos
			}
			*pi++
		}
		if n == 0 {
			*pi++
		}
	case token.TLSquare:
		n := counts[*pi]
		node = ir.NewArray(n)
		*pi++
		for i := range n {
			val, err := build(toks, counts, pi, opts)
			if err != nil {
				return nil, err
			}
			node.SetIndex(i, val)
			*pi++
		}
		if n == 0 {
			*pi++
		}
	default:
		return nil, fmt.Errorf("%w: unexpected %s", errInternal, tok.Type)
	}
	if opts.positions != nil {
		opts.positions[node] = tok.Pos
	}
	return node, nil
}

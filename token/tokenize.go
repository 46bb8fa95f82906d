package token

import (
	"fmt"

	"github.com/signadot/jcodec/debug"
	"github.com/signadot/jcodec/numconv"
)

type lexer struct {
	d   []byte
	doc *PosDoc
	i   int
}

func newLexer(src []byte) *lexer {
	return &lexer{d: src, doc: NewPosDoc(src)}
}

func (l *lexer) skipSpace() {
	for l.i < len(l.d) {
		switch l.d[l.i] {
		case ' ', '\t', '\n', '\r':
			l.i++
		default:
			return
		}
	}
}

// next scans one token. After the last token it returns TEnd.
func (l *lexer) next() (Token, error) {
	l.skipSpace()
	d := l.d
	if l.i == len(d) {
		return Token{Type: TEnd, Pos: l.doc.end()}, nil
	}
	start := l.i
	var (
		tt  Type
		err error
	)
	switch c := d[start]; c {
	case '{':
		tt = TLCurl
		l.i++
	case '}':
		tt = TRCurl
		l.i++
	case '[':
		tt = TLSquare
		l.i++
	case ']':
		tt = TRSquare
		l.i++
	case ':':
		tt = TColon
		l.i++
	case ',':
		tt = TComma
		l.i++
	case 't':
		tt = TTrue
		err = l.literal("true")
	case 'f':
		tt = TFalse
		err = l.literal("false")
	case 'n':
		tt = TNull
		err = l.literal("null")
	case '"':
		tt = TString
		err = l.quoted()
	default:
		if !numconv.IsJSONNumberChar(c) {
			return Token{}, invalidCharErr(c, l.doc.Pos(start))
		}
		tt = TNumber
		err = l.number()
	}
	if err != nil {
		return Token{}, err
	}
	return Token{Type: tt, Pos: l.doc.Pos(start), Bytes: d[start:l.i]}, nil
}

func (l *lexer) literal(lit string) error {
	for k := range len(lit) {
		j := l.i + k
		if j == len(l.d) {
			return NewTokenizeErr(fmt.Errorf("%w: expected %q, got end of input", ErrLiteral, lit), l.doc.Pos(j))
		}
		if l.d[j] != lit[k] {
			return literalErr(lit, l.d[j], l.doc.Pos(j))
		}
	}
	l.i += len(lit)
	return nil
}

func (l *lexer) quoted() error {
	end, at, err := scanQuoted(l.d, l.i)
	if err != nil {
		return NewTokenizeErr(err, l.doc.Pos(at))
	}
	l.i = end
	return nil
}

func (l *lexer) number() error {
	start := l.i
	for l.i < len(l.d) && numconv.IsJSONNumberChar(l.d[l.i]) {
		l.i++
	}
	text := string(l.d[start:l.i])
	if err := numconv.ValidateJSON(text); err != nil {
		return NewTokenizeErr(fmt.Errorf("%w %q: %w", ErrNumber, text, err), l.doc.Pos(start))
	}
	return nil
}

// Count returns the number of tokens in src, including the trailing
// TEnd.
func Count(src []byte) (int, error) {
	l := newLexer(src)
	n := 0
	for {
		tok, err := l.next()
		if err != nil {
			return 0, err
		}
		n++
		if tok.Type == TEnd {
			return n, nil
		}
	}
}

// Tokenize splits src into tokens, ending with a TEnd token. The result
// is allocated once, sized by a counting pass over src.
func Tokenize(src []byte) ([]Token, error) {
	n, err := Count(src)
	if err != nil {
		return nil, err
	}
	toks := make([]Token, 0, n)
	l := newLexer(src)
	for len(toks) < n {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	if debug.Tokens() {
		PrintTokens(toks, "tokenize")
	}
	return toks, nil
}

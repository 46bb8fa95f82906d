package token

import "fmt"

type Type int

const (
	TLCurl Type = iota
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TTrue
	TFalse
	TNull
	TString
	TNumber
	TEnd
)

func (t Type) String() string {
	switch t {
	case TLCurl:
		return "'{'"
	case TRCurl:
		return "'}'"
	case TLSquare:
		return "'['"
	case TRSquare:
		return "']'"
	case TColon:
		return "':'"
	case TComma:
		return "','"
	case TTrue:
		return "true"
	case TFalse:
		return "false"
	case TNull:
		return "null"
	case TString:
		return "string"
	case TNumber:
		return "number"
	case TEnd:
		return "end of input"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Token is one lexical unit. Bytes is the raw source span: strings keep
// their quotes and numbers the exact numeral.
type Token struct {
	Type  Type
	Pos   Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the unescaped value of string tokens and the raw bytes
// of all others.
func (t *Token) String() string {
	if t.Type == TString {
		return QuotedToString(t.Bytes)
	}
	return string(t.Bytes)
}

package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jcodec/token"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = errors.New("parse error")
)

// SyntaxError is a grammar violation found in a well tokenized input.
type SyntaxError struct {
	Msg string
	Pos token.Pos
}

func (e *SyntaxError) Unwrap() error {
	return ErrParse
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrParse.Error(), e.Msg, e.Pos.String())
}

func syntaxErr(tok *token.Token, format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: tok.Pos}
}

package token

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChar    = errors.New("invalid character")
	ErrUnterminated   = errors.New("unterminated string")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode escape")
	ErrUnicodeControl = errors.New("unescaped control character")
	ErrLiteral        = errors.New("bad literal")
	ErrNumber         = errors.New("bad number")
	ErrBadUTF8        = errors.New("bad utf8")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func literalErr(lit string, c byte, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: expected %q, got %q", ErrLiteral, lit, c), p)
}

func invalidCharErr(c byte, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %q", ErrInvalidChar, c), p)
}

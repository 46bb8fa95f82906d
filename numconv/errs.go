package numconv

import (
	"errors"
	"fmt"
)

var (
	ErrNumberFormat = errors.New("number format")
	ErrBaseRange    = errors.New("base must be from 2 to 36")
	ErrNotFinite    = errors.New("not a finite number")
)

// NumberFormatError reports why a numeral was rejected and the byte
// offset in the numeral where the problem was detected.
type NumberFormatError struct {
	Msg    string
	Offset int
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("%s: %s (offset %d)", ErrNumberFormat, e.Msg, e.Offset)
}

func (e *NumberFormatError) Unwrap() error {
	return ErrNumberFormat
}

func formatErr(msg string, off int) error {
	return &NumberFormatError{Msg: msg, Offset: off}
}

package jcodec

import (
	"errors"
	"fmt"
)

var ErrComparisonInput = errors.New("comparison input")

// InputError is a failure to read one of the operands of a comparison.
type InputError struct {
	Operand string
	Err     error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrComparisonInput, e.Operand, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func (e *InputError) Is(target error) bool {
	return target == ErrComparisonInput
}

// Messages flattens err, which may join several errors, into a list of
// messages in order. It returns nil for a nil error.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var res []string
		for _, e := range j.Unwrap() {
			res = append(res, Messages(e)...)
		}
		return res
	}
	return []string{err.Error()}
}

package jcodec

import (
	"errors"

	"github.com/signadot/jcodec/encode"
	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/libdiff"
	"github.com/signadot/jcodec/parse"
)

// Read parses JSON text into a tree.
func Read(text []byte) (*ir.Node, error) {
	return parse.Parse(text)
}

// Write returns the compact JSON text of node.
func Write(node *ir.Node) string {
	return encode.MustString(node)
}

// IsValid reports whether text is exactly one JSON value. No tree is
// built. On failure the messages describe the first error found.
func IsValid(text []byte) (bool, []string) {
	if err := parse.Validate(text); err != nil {
		return false, Messages(err)
	}
	return true, nil
}

// Compare parses a and b and reports whether they are equal under
// ir.Equal. If either fails to parse the result is false and the
// messages describe each failure, a before b.
func Compare(a, b []byte, epsilon float64) (bool, []string) {
	na, nb, err := readPair(a, b)
	if err != nil {
		return false, Messages(err)
	}
	defer na.Release()
	defer nb.Release()
	return ir.Equal(na, nb, epsilon), nil
}

// Differences parses a and b and lists where they differ.
func Differences(a, b []byte, epsilon float64) ([]libdiff.Difference, error) {
	na, nb, err := readPair(a, b)
	if err != nil {
		return nil, err
	}
	return libdiff.Diff(na, nb, epsilon), nil
}

func readPair(a, b []byte) (*ir.Node, *ir.Node, error) {
	na, errA := parse.Parse(a)
	if errA != nil {
		errA = &InputError{Operand: "a", Err: errA}
	}
	nb, errB := parse.Parse(b)
	if errB != nil {
		errB = &InputError{Operand: "b", Err: errB}
	}
	if err := errors.Join(errA, errB); err != nil {
		if na != nil {
			na.Release()
		}
		if nb != nil {
			nb.Release()
		}
		return nil, nil, err
	}
	return na, nb, nil
}

package encode

import "errors"

var (
	errInternal = errors.New("internal encode error")
	ErrEncoding = errors.New("encoding error")
)

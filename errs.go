package keypath

import "errors"

var (
	// ErrType reports input that is not path-like where a Path had to
	// be constructed from it.
	ErrType = errors.New("not a path-like value")
	// ErrRange reports an out-of-domain numeric argument.
	ErrRange = errors.New("out of range")
)

package parse

import "errors"

var (
	ErrParse = errors.New("path parse error")

	ErrUnclosedBracket = errors.New("unclosed bracket")
	ErrQuote           = errors.New("mismatched or unterminated quote")
	ErrWildcardInProp  = errors.New("wildcard in property position")
	ErrPointer         = errors.New("bad JSON pointer")
)

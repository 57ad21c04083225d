package segment

import "errors"

var (
	ErrSegmentType   = errors.New("bad segment type")
	ErrWildcardValue = errors.New("bad wildcard value")
)

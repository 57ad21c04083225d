package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/keypath-format/keypath/segment"
)

// Pointer parses RFC 6901 JSON Pointer text into segments. "" is the
// empty path; otherwise the pointer must start with '/'. Reference
// tokens are unescaped (~1 then ~0) and canonical integers become
// Index segments, matching bracket-notation content handling.
func Pointer(s string) ([]segment.Segment, error) {
	if s == "" {
		return nil, nil
	}
	if s[0] != '/' {
		return nil, fmt.Errorf("%w: %q does not start with '/'", ErrPointer, s)
	}
	parts := strings.Split(s[1:], "/")
	segs := make([]segment.Segment, 0, len(parts))
	for _, part := range parts {
		if strings.IndexByte(part, '~') != -1 {
			part = strings.ReplaceAll(part, "~1", "/")
			part = strings.ReplaceAll(part, "~0", "~")
		}
		if segment.IsCanonicalInt(part) {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrPointer, part, err)
			}
			segs = append(segs, segment.Index(n))
			continue
		}
		segs = append(segs, segment.Property(part))
	}
	return segs, nil
}

// Package parse turns property-path text into segment sequences.
//
// [Path] accepts the shared grammar behind the mixed, dot and bracket
// notations; [Pointer] accepts RFC 6901 JSON Pointer text as an
// alternate ingest grammar.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/keypath-format/keypath/segment"
)

// Path parses a path string into segments. Dot-separated bare text
// becomes Property segments; bracketed content becomes an Index when it
// is the canonical decimal form of an integer, a Property otherwise.
// Bracket content may be wrapped in a matching pair of single or double
// quotes, which forces a Property. Empty bare runs between dots are
// dropped; only a bracket-quoted empty string produces an empty-text
// Property.
//
// String members of wild may not appear as bare dot-notation segments;
// that position is ambiguous with an ordinary property name.
func Path(s string, wild segment.Wildcards) ([]segment.Segment, error) {
	if s == "" {
		return nil, nil
	}
	var segs []segment.Segment
	runStart := 0
	escaped := false

	flush := func(end int) error {
		if runStart >= end {
			return nil
		}
		text := s[runStart:end]
		if escaped {
			text = unescape(text)
		}
		if wild.ContainsString(text) {
			return fmt.Errorf("%w: index wildcard %q cannot appear in property position",
				ErrWildcardInProp, text)
		}
		segs = append(segs, segment.Property(text))
		return nil
	}

	i := 0
	for i < len(s) {
		switch s[i] {
		case '\\':
			escaped = true
			i += 2
		case '.':
			if err := flush(i); err != nil {
				return nil, err
			}
			i++
			runStart = i
			escaped = false
		case '[':
			if err := flush(i); err != nil {
				return nil, err
			}
			escaped = false
			end := strings.IndexByte(s[i+1:], ']')
			if end == -1 {
				rest := s[i+1:]
				if rest != "" && (rest[0] == '"' || rest[0] == '\'') {
					return nil, fmt.Errorf("%w at offset %d", ErrQuote, i+1)
				}
				return nil, fmt.Errorf("%w at offset %d", ErrUnclosedBracket, i)
			}
			seg, err := bracketSegment(s[i+1 : i+1+end])
			if err != nil {
				return nil, fmt.Errorf("%w at offset %d", err, i+1)
			}
			segs = append(segs, seg)
			i += end + 2
			// a dot after ']' is notation sugar, not a segment
			if i < len(s) && s[i] == '.' {
				i++
			}
			runStart = i
		default:
			i++
		}
	}
	if err := flush(len(s)); err != nil {
		return nil, err
	}
	return segs, nil
}

func bracketSegment(content string) (segment.Segment, error) {
	if content != "" && (content[0] == '"' || content[0] == '\'') {
		q := content[0]
		if len(content) < 2 || content[len(content)-1] != q {
			return segment.Segment{}, ErrQuote
		}
		inner := content[1 : len(content)-1]
		if strings.IndexByte(inner, '\\') != -1 {
			inner = unescape(inner)
		}
		return segment.Property(inner), nil
	}
	if segment.IsCanonicalInt(content) {
		n, err := strconv.Atoi(content)
		if err != nil {
			return segment.Segment{}, fmt.Errorf("%w: %q: %w", ErrParse, content, err)
		}
		return segment.Index(n), nil
	}
	return segment.Property(content), nil
}

// unescape drops each backslash, keeping the character it escapes. A
// trailing lone backslash is kept. Callers skip this entirely when the
// run contains no backslash, which is the overwhelmingly common case.
func unescape(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

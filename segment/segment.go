// Package segment provides the atomic value of a property path: a
// tagged Property-or-Index segment, and the Wildcards set consulted
// wherever segments are compared.
package segment

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	PropertyKind Kind = iota
	IndexKind
)

func (k Kind) String() string {
	switch k {
	case PropertyKind:
		return "Property"
	case IndexKind:
		return "Index"
	}
	return "<unknown kind>"
}

// Segment is one step of a property path. It is strictly two-variant:
// a Property holds text, an Index holds an integer, and the two never
// compare equal even when the text is the decimal form of the integer.
type Segment struct {
	kind  Kind
	prop  string
	index int
}

func Property(name string) Segment {
	return Segment{kind: PropertyKind, prop: name}
}

func Index(i int) Segment {
	return Segment{kind: IndexKind, index: i}
}

func (s Segment) Kind() Kind { return s.kind }

// Property returns the text of a Property segment, "" otherwise.
func (s Segment) Property() string { return s.prop }

// Index returns the value of an Index segment, 0 otherwise.
func (s Segment) Index() int { return s.index }

func (s Segment) IsIndex() bool    { return s.kind == IndexKind }
func (s Segment) IsProperty() bool { return s.kind == PropertyKind }

func (s Segment) Equal(o Segment) bool {
	if s.kind != o.kind {
		return false
	}
	if s.kind == IndexKind {
		return s.index == o.index
	}
	return s.prop == o.prop
}

// Text returns the textual form of the segment, stringifying Index
// values. It is the dot-notation rendering and is lossy.
func (s Segment) Text() string {
	if s.kind == IndexKind {
		return strconv.Itoa(s.index)
	}
	return s.prop
}

func (s Segment) String() string {
	if s.kind == IndexKind {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return strconv.Quote(s.prop)
}

// Native returns the segment as a plain Go value, string for Property
// and int for Index.
func (s Segment) Native() any {
	if s.kind == IndexKind {
		return s.index
	}
	return s.prop
}

// FromNative converts a plain value into a Segment. Strings become
// Properties; all integer kinds, and floats with an integral value,
// become Indexes. Anything else is an ErrSegmentType naming the
// offending type.
func FromNative(v any) (Segment, error) {
	switch x := v.(type) {
	case string:
		return Property(x), nil
	case int:
		return Index(x), nil
	case int8:
		return Index(int(x)), nil
	case int16:
		return Index(int(x)), nil
	case int32:
		return Index(int(x)), nil
	case int64:
		return Index(int(x)), nil
	case uint:
		return Index(int(x)), nil
	case uint8:
		return Index(int(x)), nil
	case uint16:
		return Index(int(x)), nil
	case uint32:
		return Index(int(x)), nil
	case uint64:
		return Index(int(x)), nil
	case float64:
		// JSON and YAML decoders hand indexes over as floats.
		if x == float64(int(x)) {
			return Index(int(x)), nil
		}
		return Segment{}, fmt.Errorf("%w: non-integral number %v", ErrSegmentType, x)
	case float32:
		if float64(x) == float64(int(x)) {
			return Index(int(x)), nil
		}
		return Segment{}, fmt.Errorf("%w: non-integral number %v", ErrSegmentType, x)
	case Segment:
		return x, nil
	default:
		return Segment{}, fmt.Errorf("%w: %T", ErrSegmentType, v)
	}
}

// FromNatives converts a native element list, failing on the first
// element that is neither text nor an integer.
func FromNatives(vs []any) ([]Segment, error) {
	res := make([]Segment, len(vs))
	for i, v := range vs {
		s, err := FromNative(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res[i] = s
	}
	return res, nil
}

package keypath

import (
	"github.com/keypath-format/keypath/debug"
	"github.com/keypath-format/keypath/segment"
)

// segmentsMatch reports whether two segments match under the
// receiver's configuration: exact equality, Ignore-mode index
// equivalence, or a wildcard value against an Index segment. A
// wildcard never matches a Property segment.
func (p *Path) segmentsMatch(a, b segment.Segment) bool {
	if p.segmentsMatchExact(a, b) {
		return true
	}
	return p.cfg.Indexes == IgnoreIndexes && a.IsIndex() && b.IsIndex()
}

// segmentsMatchExact is segmentsMatch without the Ignore-mode
// relaxation; merging always compares this way.
func (p *Path) segmentsMatchExact(a, b segment.Segment) bool {
	if a.Equal(b) {
		return true
	}
	w := p.cfg.Wildcards
	if w.Contains(a) && b.IsIndex() {
		return true
	}
	if w.Contains(b) && a.IsIndex() {
		return true
	}
	return false
}

// pattern resolves a query argument. Malformed or untyped input is
// reported as not-ok, never as an error: predicates stay usable in
// guard conditions.
func (p *Path) pattern(input any) ([]segment.Segment, bool) {
	segs, err := resolve(input, p.cfg)
	if err != nil {
		if debug.Match() {
			debug.Logf("pattern %v rejected: %v\n", input, err)
		}
		return nil, false
	}
	return segs, true
}

// Equal reports whether the path and pattern have the same length and
// match pairwise.
func (p *Path) Equal(input any) bool {
	pat, ok := p.pattern(input)
	if !ok || len(pat) != len(p.segs) {
		return false
	}
	return p.matchAt(pat, 0)
}

// StartsWith reports whether the first pattern-length segments match
// the pattern. An empty pattern is vacuously true.
func (p *Path) StartsWith(input any) bool {
	pat, ok := p.pattern(input)
	if !ok || len(pat) > len(p.segs) {
		return false
	}
	return p.matchAt(pat, 0)
}

// EndsWith reports whether the last pattern-length segments match the
// pattern. An empty pattern is vacuously true.
func (p *Path) EndsWith(input any) bool {
	pat, ok := p.pattern(input)
	if !ok || len(pat) > len(p.segs) {
		return false
	}
	return p.matchAt(pat, len(p.segs)-len(pat))
}

// Includes reports whether the pattern matches anywhere in the path.
func (p *Path) Includes(input any) bool {
	return p.PositionOf(input) >= 0
}

// PositionOf returns the smallest offset where the pattern matches, or
// -1. An empty pattern matches at 0.
func (p *Path) PositionOf(input any) int {
	pat, ok := p.pattern(input)
	if !ok || len(pat) > len(p.segs) {
		return -1
	}
	for off := 0; off <= len(p.segs)-len(pat); off++ {
		if p.matchAt(pat, off) {
			return off
		}
	}
	return -1
}

// LastPositionOf returns the largest offset where the pattern matches,
// or -1. An empty pattern matches at Len().
func (p *Path) LastPositionOf(input any) int {
	pat, ok := p.pattern(input)
	if !ok || len(pat) > len(p.segs) {
		return -1
	}
	for off := len(p.segs) - len(pat); off >= 0; off-- {
		if p.matchAt(pat, off) {
			return off
		}
	}
	return -1
}

// Match returns the first matched subsequence, taken from the subject,
// or nil. The subject's concrete segments come back, not the pattern's
// wildcard placeholders.
func (p *Path) Match(input any) *Path {
	pat, ok := p.pattern(input)
	if !ok || len(pat) > len(p.segs) {
		return nil
	}
	for off := 0; off <= len(p.segs)-len(pat); off++ {
		if p.matchAt(pat, off) {
			return p.Slice(off, off+len(pat))
		}
	}
	return nil
}

// MatchStart returns the leading subsequence matching the pattern,
// taken from the subject, or nil.
func (p *Path) MatchStart(input any) *Path {
	pat, ok := p.pattern(input)
	if !ok || len(pat) > len(p.segs) {
		return nil
	}
	if !p.matchAt(pat, 0) {
		return nil
	}
	return p.Slice(0, len(pat))
}

// MatchEnd returns the trailing subsequence matching the pattern,
// taken from the subject, or nil.
func (p *Path) MatchEnd(input any) *Path {
	pat, ok := p.pattern(input)
	if !ok || len(pat) > len(p.segs) {
		return nil
	}
	off := len(p.segs) - len(pat)
	if !p.matchAt(pat, off) {
		return nil
	}
	return p.Slice(off, len(p.segs))
}

func (p *Path) matchAt(pat []segment.Segment, off int) bool {
	for i, s := range pat {
		if !p.segmentsMatch(p.segs[off+i], s) {
			return false
		}
	}
	return true
}

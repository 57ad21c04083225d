package keypath

import (
	"github.com/keypath-format/keypath/debug"
	"github.com/keypath-format/keypath/segment"
)

// Merge combines the receiver with other at their longest overlap: the
// greatest k such that the last k segments of the receiver match the
// first k of other, compared exactly-or-wildcard (the Ignore index
// relaxation does not apply). Within the overlap a concrete value wins
// over a wildcard; when both are wildcards the receiver's value is
// kept. No overlap degenerates to concatenation; an empty side yields
// the other, mapped through the receiver's configuration.
//
// Malformed or untyped input is a fatal error, unlike the query
// methods: a silent no-op here would hide a programming mistake.
func (p *Path) Merge(input any) (*Path, error) {
	other, err := resolve(input, p.cfg)
	if err != nil {
		return nil, err
	}
	a, b := p.segs, other
	if len(a) == 0 {
		cp := make([]segment.Segment, len(b))
		copy(cp, b)
		return p.derive(cp), nil
	}
	if len(b) == 0 {
		return p.derive(p.Segments()), nil
	}

	k := 0
	for n := min(len(a), len(b)); n >= 1; n-- {
		if p.overlapMatches(a[len(a)-n:], b[:n]) {
			k = n
			break
		}
	}
	if debug.Merge() {
		debug.Logf("merge %v + %v overlap %d\n", a, b, k)
	}

	segs := make([]segment.Segment, 0, len(a)+len(b)-k)
	segs = append(segs, a[:len(a)-k]...)
	w := p.cfg.Wildcards
	for i := 0; i < k; i++ {
		sa, sb := a[len(a)-k+i], b[i]
		if w.Contains(sa) && !w.Contains(sb) {
			segs = append(segs, sb)
			continue
		}
		segs = append(segs, sa)
	}
	segs = append(segs, b[k:]...)
	return p.derive(segs), nil
}

func (p *Path) overlapMatches(tail, head []segment.Segment) bool {
	for i := range tail {
		if !p.segmentsMatchExact(tail[i], head[i]) {
			return false
		}
	}
	return true
}

package keypath

import (
	"fmt"
	"iter"
)

// Tree navigation treats a path as "tree address, then field path".
// The tree address is the maximal contiguous run, from the start of
// the path, of an optional leading Index followed by (child-container
// Property, Index) pairs. A child-container property appearing after
// the run breaks is never part of the address.

// nodeUnits returns the end offset of each consumed unit, in order.
func (p *Path) nodeUnits() []int {
	var units []int
	i := 0
	if len(p.segs) > 0 && p.segs[0].IsIndex() {
		i = 1
		units = append(units, 1)
	}
	for i+2 <= len(p.segs) {
		s := p.segs[i]
		if !s.IsProperty() {
			break
		}
		if _, ok := p.cfg.ChildContainers[s.Property()]; !ok {
			break
		}
		if !p.segs[i+1].IsIndex() {
			break
		}
		i += 2
		units = append(units, i)
	}
	return units
}

// LastNodePath returns the full tree-address prefix.
func (p *Path) LastNodePath() *Path {
	units := p.nodeUnits()
	if len(units) == 0 {
		return p.derive(nil)
	}
	return p.Slice(0, units[len(units)-1])
}

// FirstNodePath returns the prefix consisting of only the first
// consumed unit.
func (p *Path) FirstNodePath() *Path {
	units := p.nodeUnits()
	if len(units) == 0 {
		return p.derive(nil)
	}
	return p.Slice(0, units[0])
}

// AfterNodePath returns the field-relative suffix after the tree
// address.
func (p *Path) AfterNodePath() *Path {
	units := p.nodeUnits()
	if len(units) == 0 {
		return p.derive(p.Segments())
	}
	return p.Slice(units[len(units)-1], len(p.segs))
}

// NodeIndexes returns the node's coordinate vector: the Index values
// consumed by the tree-address scan, in order.
func (p *Path) NodeIndexes() []int {
	units := p.nodeUnits()
	res := make([]int, len(units))
	for i, end := range units {
		res[i] = p.segs[end-1].Index()
	}
	return res
}

// StepBack returns the tree-address prefix with its last n units
// removed, clamped at the root. Negative n is a fatal error.
func (p *Path) StepBack(n int) (*Path, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative depth %d", ErrRange, n)
	}
	units := p.nodeUnits()
	keep := len(units) - n
	if keep <= 0 {
		return p.derive(nil), nil
	}
	return p.Slice(0, units[keep-1]), nil
}

// NodePaths yields the tree address at the root and after each
// consumed unit, in order. The root is always yielded first, even when
// it is empty; the sequence is finite and can be ranged over more than
// once.
func (p *Path) NodePaths() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		if !yield(p.derive(nil)) {
			return
		}
		for _, end := range p.nodeUnits() {
			if !yield(p.Slice(0, end)) {
				return
			}
		}
	}
}

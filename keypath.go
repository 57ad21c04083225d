// Package keypath models property paths: the sequences of keys and
// indexes that address a value inside a nested object/array graph,
// e.g. users[0].profile.name.
//
// A [Path] is an immutable segment sequence. Paths are built by [New]
// from path text, a native element list, or existing segments, and
// support serialization in several notations, wildcard-aware matching,
// overlap-aware merging, and tree-node navigation. Comparison behavior
// is a pure function of each path's [Config]; there is no process-wide
// mutable state.
package keypath

import (
	"fmt"
	"sync"

	"github.com/keypath-format/keypath/parse"
	"github.com/keypath-format/keypath/segment"
)

// Notation selects a serialization style.
type Notation int

const (
	// Mixed renders properties in dot form and indexes in brackets.
	Mixed Notation = iota
	// Dot renders every segment in dot form; it does not distinguish
	// an Index from a numeric Property and is lossy.
	Dot
	// Bracket renders every segment in bracket form, quoting
	// non-wildcard properties.
	Bracket
)

func (n Notation) String() string {
	switch n {
	case Mixed:
		return "mixed"
	case Dot:
		return "dot"
	case Bracket:
		return "bracket"
	}
	return "<unknown notation>"
}

// IndexMode controls whether two Index segments with different values
// count as a match.
type IndexMode int

const (
	PreserveIndexes IndexMode = iota
	IgnoreIndexes
)

// Config carries all comparison and serialization behavior for a Path.
// It is fixed at construction; derived paths inherit it.
type Config struct {
	Notation        Notation
	Indexes         IndexMode
	Wildcards       segment.Wildcards
	ChildContainers map[string]struct{}
}

func DefaultConfig() Config {
	return Config{
		Notation:        Mixed,
		Indexes:         PreserveIndexes,
		Wildcards:       segment.DefaultWildcards(),
		ChildContainers: map[string]struct{}{"children": {}},
	}
}

type Option func(*Config)

func WithNotation(n Notation) Option {
	return func(c *Config) { c.Notation = n }
}

func WithIndexMode(m IndexMode) Option {
	return func(c *Config) { c.Indexes = m }
}

func WithWildcards(w segment.Wildcards) Option {
	return func(c *Config) { c.Wildcards = w }
}

func WithChildContainers(names ...string) Option {
	return func(c *Config) {
		c.ChildContainers = make(map[string]struct{}, len(names))
		for _, n := range names {
			c.ChildContainers[n] = struct{}{}
		}
	}
}

func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// Path is an immutable, ordered sequence of segments. Every transform
// (Slice, Concat, Merge, Match extraction) produces a new Path; a Path
// is safe to share across goroutines once constructed.
type Path struct {
	segs []segment.Segment
	cfg  Config

	mu     sync.Mutex
	cached [cacheSlots]*string
}

// New builds a Path from input, which may be path text, a native
// element list ([]any of strings and integers), []segment.Segment,
// []string, []int, or another *Path. Malformed text or a bad element
// type is a fatal, typed error.
func New(input any, opts ...Option) (*Path, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	segs, err := resolve(input, cfg)
	if err != nil {
		return nil, err
	}
	return &Path{segs: segs, cfg: cfg}, nil
}

// MustNew is New, panicking on error. For literals in tests and setup.
func MustNew(input any, opts ...Option) *Path {
	p, err := New(input, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// FromJSONPointer builds a Path from RFC 6901 JSON Pointer text.
func FromJSONPointer(s string, opts ...Option) (*Path, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	segs, err := parse.Pointer(s)
	if err != nil {
		return nil, err
	}
	return &Path{segs: segs, cfg: cfg}, nil
}

func resolve(input any, cfg Config) ([]segment.Segment, error) {
	switch x := input.(type) {
	case string:
		return parse.Path(x, cfg.Wildcards)
	case *Path:
		if x == nil {
			return nil, fmt.Errorf("%w: nil path", ErrType)
		}
		return x.segs, nil
	case []segment.Segment:
		segs := make([]segment.Segment, len(x))
		copy(segs, x)
		return segs, nil
	case []any:
		return segment.FromNatives(x)
	case []string:
		segs := make([]segment.Segment, len(x))
		for i, s := range x {
			segs[i] = segment.Property(s)
		}
		return segs, nil
	case []int:
		segs := make([]segment.Segment, len(x))
		for i, n := range x {
			segs[i] = segment.Index(n)
		}
		return segs, nil
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrType)
	default:
		return nil, fmt.Errorf("%w: %T", ErrType, input)
	}
}

// derive makes a new Path over segs with the receiver's configuration.
func (p *Path) derive(segs []segment.Segment) *Path {
	return &Path{segs: segs, cfg: p.cfg}
}

func (p *Path) Len() int { return len(p.segs) }

func (p *Path) IsEmpty() bool { return len(p.segs) == 0 }

// At returns the i-th segment; it panics when i is out of range, like
// a slice index.
func (p *Path) At(i int) segment.Segment { return p.segs[i] }

// Segments returns a copy of the underlying segments.
func (p *Path) Segments() []segment.Segment {
	segs := make([]segment.Segment, len(p.segs))
	copy(segs, p.segs)
	return segs
}

func (p *Path) Config() Config { return p.cfg }

// Native returns the path as a plain element list, string for each
// Property and int for each Index.
func (p *Path) Native() []any {
	res := make([]any, len(p.segs))
	for i, s := range p.segs {
		res[i] = s.Native()
	}
	return res
}

// Slice returns the segments in [from, to) as a new Path. Negative
// offsets count from the end; both ends are clamped.
func (p *Path) Slice(from, to int) *Path {
	n := len(p.segs)
	if from < 0 {
		from += n
	}
	if to < 0 {
		to += n
	}
	from = min(max(from, 0), n)
	to = min(max(to, 0), n)
	if from >= to {
		return p.derive(nil)
	}
	segs := make([]segment.Segment, to-from)
	copy(segs, p.segs[from:to])
	return p.derive(segs)
}

// Concat appends input, resolved through the receiver's configuration,
// producing a new Path. Untyped or malformed input is a fatal error.
func (p *Path) Concat(input any) (*Path, error) {
	other, err := resolve(input, p.cfg)
	if err != nil {
		return nil, err
	}
	segs := make([]segment.Segment, 0, len(p.segs)+len(other))
	segs = append(segs, p.segs...)
	segs = append(segs, other...)
	return p.derive(segs), nil
}

// PathTo resolves arbitrary path-like input through the receiver's
// configuration, yielding a Path that compares and serializes the way
// the receiver does.
func (p *Path) PathTo(input any) (*Path, error) {
	segs, err := resolve(input, p.cfg)
	if err != nil {
		return nil, err
	}
	cp := make([]segment.Segment, len(segs))
	copy(cp, segs)
	return p.derive(cp), nil
}

package keypath

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/keypath-format/keypath/segment"
)

// Serialized strings are cached per notation slot. Paths are immutable
// so a slot, once rendered, never changes.
const (
	mixedSlot = iota
	dotSlot
	bracketSlot
	jsonPathSlot
	pointerSlot
	cacheSlots
)

// String renders the path in its configured notation.
func (p *Path) String() string {
	return p.Format(p.cfg.Notation)
}

// Format renders the path in the given notation, caching the result.
func (p *Path) Format(n Notation) string {
	slot := mixedSlot
	switch n {
	case Dot:
		slot = dotSlot
	case Bracket:
		slot = bracketSlot
	}
	return p.cachedRender(slot, func() string { return p.render(n) })
}

// JSONPath renders the path as an RFC 9535 JSONPath query string.
// Wildcard values of either kind render as [*].
func (p *Path) JSONPath() string {
	return p.cachedRender(jsonPathSlot, p.renderJSONPath)
}

// JSONPointer renders the path as an RFC 6901 JSON Pointer. The empty
// path renders as "".
func (p *Path) JSONPointer() string {
	return p.cachedRender(pointerSlot, p.renderJSONPointer)
}

func (p *Path) cachedRender(slot int, render func() string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s := p.cached[slot]; s != nil {
		return *s
	}
	s := render()
	p.cached[slot] = &s
	return s
}

func (p *Path) render(n Notation) string {
	var buf strings.Builder
	switch n {
	case Dot:
		for i, s := range p.segs {
			if i > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(s.Text())
		}
	case Bracket:
		for _, s := range p.segs {
			p.renderBracket(&buf, s)
		}
	default:
		for i, s := range p.segs {
			if s.IsIndex() {
				buf.WriteByte('[')
				buf.WriteString(strconv.Itoa(s.Index()))
				buf.WriteByte(']')
				continue
			}
			name := s.Property()
			// wildcard strings and the empty name have no dot form
			// that parses back; use their bracket form
			if name == "" || p.cfg.Wildcards.ContainsString(name) {
				p.renderBracket(&buf, s)
				continue
			}
			if i > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(escapeBare(name))
		}
	}
	return buf.String()
}

func (p *Path) renderBracket(buf *strings.Builder, s segment.Segment) {
	buf.WriteByte('[')
	if s.IsIndex() {
		buf.WriteString(strconv.Itoa(s.Index()))
	} else if p.cfg.Wildcards.ContainsString(s.Property()) {
		// wildcard status, not segment kind, governs quoting
		buf.WriteString(s.Property())
	} else {
		buf.WriteByte('"')
		buf.WriteString(escapeQuoted(s.Property(), '"'))
		buf.WriteByte('"')
	}
	buf.WriteByte(']')
}

var jsonPathIdent = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func (p *Path) renderJSONPath() string {
	var buf strings.Builder
	buf.WriteByte('$')
	for _, s := range p.segs {
		if p.cfg.Wildcards.Contains(s) {
			buf.WriteString("[*]")
			continue
		}
		if s.IsIndex() {
			buf.WriteByte('[')
			buf.WriteString(strconv.Itoa(s.Index()))
			buf.WriteByte(']')
			continue
		}
		name := s.Property()
		if jsonPathIdent.MatchString(name) {
			buf.WriteByte('.')
			buf.WriteString(name)
			continue
		}
		buf.WriteString("['")
		buf.WriteString(escapeQuoted(name, '\''))
		buf.WriteString("']")
	}
	return buf.String()
}

func (p *Path) renderJSONPointer() string {
	if len(p.segs) == 0 {
		return ""
	}
	var buf strings.Builder
	for _, s := range p.segs {
		buf.WriteByte('/')
		if s.IsIndex() {
			buf.WriteString(strconv.Itoa(s.Index()))
			continue
		}
		name := s.Property()
		name = strings.ReplaceAll(name, "~", "~0")
		name = strings.ReplaceAll(name, "/", "~1")
		buf.WriteString(name)
	}
	return buf.String()
}

// escapeBare backslash-escapes the grammar characters in a bare
// dot-notation property name.
func escapeBare(s string) string {
	if strings.IndexAny(s, `.[]\`) == -1 {
		return s
	}
	var buf strings.Builder
	buf.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '[', ']', '\\':
			buf.WriteByte('\\')
		}
		buf.WriteByte(s[i])
	}
	return buf.String()
}

// escapeQuoted backslash-escapes the quote character and backslashes
// inside a quoted bracket segment.
func escapeQuoted(s string, q byte) string {
	if strings.IndexByte(s, q) == -1 && strings.IndexByte(s, '\\') == -1 {
		return s
	}
	var buf strings.Builder
	buf.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		if s[i] == q || s[i] == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(s[i])
	}
	return buf.String()
}

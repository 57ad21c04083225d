package main

import (
	"fmt"
	"strconv"

	"github.com/keypath-format/keypath/segment"

	"github.com/fatih/color"
)

type colors struct {
	path     func(string, ...any) string
	property func(string, ...any) string
	index    func(string, ...any) string
	wildcard func(string, ...any) string
	kindFn   func(string, ...any) string
}

func newColors(enabled bool) *colors {
	if !enabled {
		return &colors{
			path: fmt.Sprintf, property: fmt.Sprintf, index: fmt.Sprintf,
			wildcard: fmt.Sprintf, kindFn: fmt.Sprintf,
		}
	}
	return &colors{
		path:     color.New(color.Bold).SprintfFunc(),
		property: color.CyanString,
		index:    color.GreenString,
		wildcard: color.MagentaString,
		kindFn:   color.RGB(128, 128, 128).SprintfFunc(),
	}
}

func (c *colors) kind(s segment.Segment) string {
	return c.kindFn("%-8s", s.Kind().String())
}

func (c *colors) segment(wild segment.Wildcards, s segment.Segment) string {
	if wild.Contains(s) {
		return c.wildcard("%s", s.Text())
	}
	if s.IsIndex() {
		return c.index("%s", strconv.Itoa(s.Index()))
	}
	return c.property("%q", s.Property())
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/keypath-format/keypath"
	"github.com/keypath-format/keypath/segment"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// get resolves a path in YAML/JSON documents. The engine itself never
// reads object graphs; this command is the caller-side reduction over
// segments.
func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := pathArg(cfg.MainConfig, args[0], false)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[0], err)
	}
	var prg *vm.Program
	if cfg.Where != "" {
		prg, err = expr.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("error compiling -where: %w", err)
		}
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := getFile(cfg, cc, p, prg, arg); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, p, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, p *keypath.Path, prg *vm.Program, file string) error {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}
	vals := resolveValues(doc, p)
	for _, v := range vals {
		if prg != nil {
			out, err := expr.Run(prg, map[string]any{
				"value": v,
				"path":  p.String(),
			})
			if err != nil {
				return fmt.Errorf("error evaluating -where: %w", err)
			}
			keep, ok := out.(bool)
			if !ok {
				return fmt.Errorf("-where %q is not a boolean expression", cfg.Where)
			}
			if !keep {
				continue
			}
		}
		enc, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		if _, err := cc.Out.Write(enc); err != nil {
			return err
		}
	}
	return nil
}

// resolveValues reduces the path over the decoded document. Wildcard
// values fan out over every element of an array.
func resolveValues(doc any, p *keypath.Path) []any {
	wild := p.Config().Wildcards
	cur := []any{doc}
	for _, s := range p.Segments() {
		var next []any
		for _, v := range cur {
			next = step(next, v, s, wild)
		}
		cur = next
		if len(cur) == 0 {
			break
		}
	}
	return cur
}

func step(dst []any, v any, s segment.Segment, wild segment.Wildcards) []any {
	if wild.Contains(s) {
		arr, ok := v.([]any)
		if !ok {
			return dst
		}
		return append(dst, arr...)
	}
	if s.IsIndex() {
		arr, ok := v.([]any)
		if !ok {
			return dst
		}
		i := s.Index()
		if i < 0 || i >= len(arr) {
			return dst
		}
		return append(dst, arr[i])
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return dst
	}
	fv, ok := obj[s.Property()]
	if !ok {
		return dst
	}
	return append(dst, fv)
}

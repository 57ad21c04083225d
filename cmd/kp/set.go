package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

// set replaces the value at a path in a JSON document by building an
// RFC 6902 replace operation from the path's JSON pointer form.
func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Value == "" {
		return fmt.Errorf("%w: set requires -v", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires a path argument", cli.ErrUsage)
	}
	p, err := pathArg(cfg.MainConfig, args[0], false)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[0], err)
	}

	// the -v argument is a YAML scalar so plain words need no quoting
	var val any
	if err := yaml.Unmarshal([]byte(cfg.Value), &val); err != nil {
		return fmt.Errorf("error decoding -v: %w", err)
	}
	patch, err := replacePatch(p.JSONPointer(), val)
	if err != nil {
		return err
	}

	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
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
	doc, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	out, err := patch.Apply(doc)
	if err != nil {
		return fmt.Errorf("error applying %s: %w", p.JSONPointer(), err)
	}
	if _, err := cc.Out.Write(append(out, '\n')); err != nil {
		return err
	}
	return nil
}

func replacePatch(pointer string, val any) (jsonpatch.Patch, error) {
	d, err := json.Marshal([]map[string]any{{
		"op":    "replace",
		"path":  pointer,
		"value": val,
	}})
	if err != nil {
		return nil, fmt.Errorf("error building patch: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return patch, nil
}

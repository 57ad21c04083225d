package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two path arguments", cli.ErrUsage)
	}
	a, err := pathArg(cfg.MainConfig, args[0], false)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[0], err)
	}
	b, err := pathArg(cfg.MainConfig, args[1], false)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[1], err)
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a.String(), b.String(), false)
	if cfg.colorize(cc.Out) {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	var buf strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			buf.WriteString("{+")
			buf.WriteString(d.Text)
			buf.WriteString("+}")
		case diffpatch.DiffDelete:
			buf.WriteString("{-")
			buf.WriteString(d.Text)
			buf.WriteString("-}")
		default:
			buf.WriteString(d.Text)
		}
	}
	fmt.Fprintln(cc.Out, buf.String())
	return nil
}

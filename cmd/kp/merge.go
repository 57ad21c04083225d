package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least two path arguments", cli.ErrUsage)
	}
	p, err := pathArg(cfg.MainConfig, args[0], false)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[0], err)
	}
	for _, arg := range args[1:] {
		p, err = p.Merge(arg)
		if err != nil {
			return fmt.Errorf("error merging %q: %w", arg, err)
		}
	}
	fmt.Fprintln(cc.Out, p.String())
	return nil
}

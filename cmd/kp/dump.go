package main

import (
	"fmt"

	"github.com/keypath-format/keypath"
	"github.com/keypath-format/keypath/segment"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: dump requires at least one path argument", cli.ErrUsage)
	}
	colors := newColors(cfg.colorize(cc.Out))
	wild, err := cfg.wildcards()
	if err != nil {
		return err
	}
	for _, arg := range args {
		p, err := pathArg(cfg.MainConfig, arg, cfg.P)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", arg, err)
		}
		dumpPath(cc, colors, wild, p)
	}
	return nil
}

func dumpPath(cc *cli.Context, colors *colors, wild segment.Wildcards, p *keypath.Path) {
	fmt.Fprintf(cc.Out, "%s\n", colors.path("%s", p.String()))
	for i := 0; i < p.Len(); i++ {
		s := p.At(i)
		fmt.Fprintf(cc.Out, "\t%d: %s %s\n", i, colors.kind(s), colors.segment(wild, s))
	}
}

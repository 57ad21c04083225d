package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func conv(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		cfg.Conv.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: conv requires at least one path argument", cli.ErrUsage)
	}
	if cfg.J && cfg.Ptr {
		return fmt.Errorf("%w: only one of -j, -ptr may be specified", cli.ErrUsage)
	}
	for _, arg := range args {
		p, err := pathArg(cfg.MainConfig, arg, cfg.P)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", arg, err)
		}
		switch {
		case cfg.J:
			fmt.Fprintln(cc.Out, p.JSONPath())
		case cfg.Ptr:
			fmt.Fprintln(cc.Out, p.JSONPointer())
		default:
			fmt.Fprintln(cc.Out, p.String())
		}
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/keypath-format/keypath"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: match requires a pattern and at least one path", cli.ErrUsage)
	}
	pattern := args[0]
	missed := false
	for _, arg := range args[1:] {
		p, err := pathArg(cfg.MainConfig, arg, false)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", arg, err)
		}
		res := matchOne(cfg, p, pattern)
		if res == nil {
			missed = true
			fmt.Fprintf(cc.Out, "%s: no match\n", arg)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: %s\n", arg, res.String())
	}
	if missed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func matchOne(cfg *MatchConfig, p *keypath.Path, pattern string) *keypath.Path {
	switch {
	case cfg.Start:
		return p.MatchStart(pattern)
	case cfg.End:
		return p.MatchEnd(pattern)
	case cfg.Any:
		return p.Match(pattern)
	default:
		if p.Equal(pattern) {
			return p
		}
		return nil
	}
}

package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "w",
			Aliases:     []string{"wildcard"},
			Description: "wildcard value (repeatable, default -1 and *)",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.wildOpt), "(value)"),
		},
		{
			Name:        "C",
			Aliases:     []string{"container"},
			Description: "child container property (repeatable, default children)",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.containerOpt), "(name)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "kp").
		WithSynopsis("kp [opts] command [opts]").
		WithDescription("kp is a tool for working with property paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kpMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			ConvCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			MergeCommand(cfg),
			MatchCommand(cfg),
			DiffCommand(cfg))
}

func kpMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		cfg.Main.Usage(cc, nil)
		return nil
	}
	return cli.ErrUsage
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [-p] <path>...").
		WithDescription("parse paths and show their segments").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func ConvCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("conv").
		WithAliases("c").
		WithSynopsis("conv [-p] [-j|-ptr] <path>...").
		WithDescription("re-serialize paths between notations, JSONPath and JSON pointer").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return conv(cfg, cc, args)
		})
	cfg.Conv = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get [-where <expr>] <path> [files]").
		WithDescription("resolve a path in YAML/JSON documents").
		WithOpts(&cli.Opt{
			Name:        "where",
			Description: "keep only values for which the expression holds",
			Type: cli.NamedFuncOpt(cli.FuncOpt(
				func(_ *cli.Context, v string) (any, error) {
					cfg.Where = v
					return v, nil
				}), "(expr)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("set").
		WithSynopsis("set -v <value> <path> [file]").
		WithDescription("replace the value at a path in a JSON document").
		WithOpts(&cli.Opt{
			Name:        "v",
			Aliases:     []string{"value"},
			Description: "replacement value (YAML scalar)",
			Type: cli.NamedFuncOpt(cli.FuncOpt(
				func(_ *cli.Context, v string) (any, error) {
					cfg.Value = v
					return v, nil
				}), "(value)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge <path> <path>...").
		WithDescription("merge paths at their longest overlap").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("match").
		WithSynopsis("match [-start|-end|-any] <pattern> <path>...").
		WithDescription("match a pattern against paths; non-zero exit on miss").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
	cfg.Match = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff <path> <path>").
		WithDescription("show a character diff of two rendered paths").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/keypath-format/keypath"
	"github.com/keypath-format/keypath/segment"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	D     bool `cli:"name=d aliases=dot desc='render paths in dot notation'"`
	B     bool `cli:"name=b aliases=bracket desc='render paths in bracket notation'"`
	Color bool `cli:"name=color desc='force colored output'"`

	wilds      []any
	containers []string

	Main *cli.Command
}

// wildOpt collects -w values; numeric text becomes a number wildcard.
func (cfg *MainConfig) wildOpt(_ *cli.Context, v string) (any, error) {
	if segment.IsCanonicalInt(v) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		cfg.wilds = append(cfg.wilds, n)
		return n, nil
	}
	cfg.wilds = append(cfg.wilds, v)
	return v, nil
}

func (cfg *MainConfig) containerOpt(_ *cli.Context, v string) (any, error) {
	cfg.containers = append(cfg.containers, v)
	return v, nil
}

func (cfg *MainConfig) wildcards() (segment.Wildcards, error) {
	if len(cfg.wilds) == 0 {
		return segment.DefaultWildcards(), nil
	}
	w, err := segment.NewWildcards(cfg.wilds...)
	if err != nil {
		return segment.Wildcards{}, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return w, nil
}

func (cfg *MainConfig) pathOpts() ([]keypath.Option, error) {
	var res []keypath.Option
	switch {
	case cfg.D && cfg.B:
		return nil, fmt.Errorf("%w: only one of -d, -b may be specified", cli.ErrUsage)
	case cfg.D:
		res = append(res, keypath.WithNotation(keypath.Dot))
	case cfg.B:
		res = append(res, keypath.WithNotation(keypath.Bracket))
	}
	if len(cfg.wilds) > 0 {
		w, err := cfg.wildcards()
		if err != nil {
			return nil, err
		}
		res = append(res, keypath.WithWildcards(w))
	}
	if len(cfg.containers) > 0 {
		res = append(res, keypath.WithChildContainers(cfg.containers...))
	}
	return res, nil
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// pathArg builds a path from a command line argument, treating it as a
// JSON pointer when ptr is set.
func pathArg(cfg *MainConfig, arg string, ptr bool) (*keypath.Path, error) {
	opts, err := cfg.pathOpts()
	if err != nil {
		return nil, err
	}
	if ptr {
		return keypath.FromJSONPointer(arg, opts...)
	}
	return keypath.New(arg, opts...)
}

type DumpConfig struct {
	*MainConfig

	P bool `cli:"name=p aliases=pointer desc='arguments are JSON pointers'"`

	Dump *cli.Command
}

type ConvConfig struct {
	*MainConfig

	P   bool `cli:"name=p aliases=pointer desc='arguments are JSON pointers'"`
	J   bool `cli:"name=j aliases=jsonpath desc='output JSONPath'"`
	Ptr bool `cli:"name=ptr desc='output JSON pointer'"`

	Conv *cli.Command
}

type GetConfig struct {
	*MainConfig

	Where string

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Value string

	Set *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type MatchConfig struct {
	*MainConfig

	Start bool `cli:"name=start desc='match at the start of the path'"`
	End   bool `cli:"name=end desc='match at the end of the path'"`
	Any   bool `cli:"name=any desc='match anywhere in the path'"`

	Match *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

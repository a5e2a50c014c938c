package main

import (
	"context"
	"flag"
	"os"
	"path"
	"slices"

	"github.com/google/subcommands"
	"github.com/mrassano/veedor/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Shell completion. This returns immediately unless the shell is asking
	// for completions.
	completion().Complete("veedor")

	flag.Parse()

	// Unknown subcommands fall through to veedor-<name> binaries on PATH.
	if args := flag.Args(); len(args) > 0 && !slices.Contains(cmd.CommandNames(), args[0]) {
		if ran, code := cmd.RunExtension(args[0], args[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	slugged := &complete.Command{
		Flags: map[string]complete.Predictor{
			"s":    predict.Nothing,
			"mode": predict.Set{"nominal", "real", "usd"},
		},
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"legisladores": predict.Files("*.json"),
			"funcionarios": predict.Files("*.json"),
			"v":            predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"list": {Flags: map[string]complete.Predictor{
				"q":        predict.Nothing,
				"cargo":    predict.Nothing,
				"distrito": predict.Nothing,
				"partido":  predict.Nothing,
				"facets":   predict.Nothing,
			}},
			"show":       {},
			"series":     slugged,
			"milestones": {Flags: map[string]complete.Predictor{"s": predict.Nothing}},
			"export": {Flags: map[string]complete.Predictor{
				"s":    predict.Nothing,
				"mode": predict.Set{"nominal", "real", "usd"},
				"o":    predict.Files("*.json"),
			}},
			"share":  {Flags: map[string]complete.Predictor{"url": predict.Nothing}},
			"query":  {Flags: map[string]complete.Predictor{"src": predict.Set{"legisladores", "funcionarios"}}},
			"indec":  {Flags: map[string]complete.Predictor{"f": predict.Files("*.csv")}},
			"topic":  {Args: predict.Set{"readme", "dataset", "valuation", "selection"}},
			"assist": {},
		},
	}
}

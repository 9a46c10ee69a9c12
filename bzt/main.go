package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mattpdg/biztrack/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first and exits when invoked by the shell.
	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"sale":         {Flags: map[string]complete.Predictor{"day": predict.Nothing, "customer": predict.Nothing, "items": predict.Nothing, "total": predict.Nothing, "location": predict.Nothing, "time": predict.Set{"6AM-12PM", "12PM-6PM", "6PM-12AM", "12AM-6AM"}, "rel": predict.Set{"Hostile", "Unfriendly", "Neutral", "Friendly", "Loyal"}}},
			"add-product":  {Flags: map[string]complete.Predictor{"name": predict.Nothing, "materials": predict.Nothing, "timeframe": predict.Nothing, "yield": predict.Nothing, "price": predict.Nothing}},
			"set-product":  {Flags: map[string]complete.Predictor{"name": predict.Nothing, "rename": predict.Nothing, "materials": predict.Nothing, "timeframe": predict.Nothing, "yield": predict.Nothing, "price": predict.Nothing}},
			"rm-product":   {Flags: map[string]complete.Predictor{"name": predict.Nothing}},
			"add-customer": {Flags: map[string]complete.Predictor{"name": predict.Nothing, "region": predict.Set{"Northtown", "Westville", "Downtown", "Docks", "Suburbia", "Uptown"}}},
			"daily":        {},
			"customers":    {},
			"products":     {},
			"raw":          {Flags: map[string]complete.Predictor{"head": predict.Nothing, "tail": predict.Nothing}},
			"export":       {Flags: map[string]complete.Predictor{"o": predict.Files("*.xlsx")}},
			"fmt":          {},
		},
	}
}

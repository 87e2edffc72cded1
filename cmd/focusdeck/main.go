package main

import (
	"flag"
	"os"

	"github.com/idilsaglam/focusdeck/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand and the dashboard)
	groupPending := flag.Bool("group", false, "group ls output by pending/done")
	configFile := flag.String("config", "", "path to focusdeck.yaml")
	dataFile := flag.String("data", "", "state file path (overrides config)")
	theme := flag.String("theme", "", "ui theme: classic or mono (overrides config)")
	debug := flag.Bool("debug", false, "write debug logs to focusdeck.log")
	flag.Parse()

	// Hand the remaining args to the CLI runner; no args opens the
	// dashboard.
	code := cli.Run(flag.Args(), cli.Options{
		Group:      *groupPending,
		ConfigFile: *configFile,
		DataFile:   *dataFile,
		Theme:      *theme,
		Debug:      *debug,
	})
	os.Exit(code)
}

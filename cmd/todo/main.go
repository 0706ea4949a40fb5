package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/tasktracker/internal/cli"
	"github.com/idilsaglam/tasktracker/internal/config"
	"github.com/idilsaglam/tasktracker/internal/logger"
	"github.com/idilsaglam/tasktracker/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group output by pending/done")
	theme := flag.String("theme", cfg.Theme, "color theme: classic, neon or mono")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	noColor := flag.Bool("no-color", cfg.NoColor, "disable colors")
	flag.Parse()

	logger.Init(*logLevel)
	ui.SetTheme(*theme, *noColor)

	// No subcommand means the interactive shell.
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"shell"}
	}

	code := cli.Run(args, cli.Options{
		Group:  *groupPending,
		Config: cfg,
		Log:    log.Logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/config"
	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/errors"
	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/store"
	"github.com/julianstephens/routinely/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's routines."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show completion statistics."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show the monthly completion calendar."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run configuration diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track daily routines, streaks and monthly completion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug || cfg.Debug, LogDir: cfg.LogDir}); err != nil {
		errors.Fatalf("initializing logger in %s: %v", cfg.LogDir, err)
	}

	loc, err := cfg.Location()
	if err != nil {
		errors.Fatal(err)
	}

	// Doctor reports bad routines itself instead of refusing to start
	seeds, err := cfg.Seeds()
	if err != nil && ctx.Command() != "doctor" {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:      store.NewSeeded(utils.ClockIn(loc), seeds),
		Config:     cfg,
		ConfigPath: CLI.Config,
	}

	logger.Debug("Running command", "command", ctx.Command(), "config", CLI.Config, "timezone", loc.String())
	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

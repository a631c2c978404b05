package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"habitdash/internal/app"
	"habitdash/internal/cli"
	"habitdash/internal/config"
	"habitdash/internal/logger"
	"habitdash/internal/services"
)

var CLI struct {
	Version kong.VersionFlag
	Verbose bool `help:"Log debug output to stderr." short:"v"`

	Login    cli.LoginCmd    `cmd:"" help:"Sign in and store the session token."`
	Register cli.RegisterCmd `cmd:"" help:"Create an account and sign in."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Sign out and forget the session token."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the signed-in user."`
	Habits   cli.HabitsCmd   `cmd:"" help:"Manage habits."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show overall and per-habit statistics."`
	Progress cli.ProgressCmd `cmd:"" help:"Show daily progress against targets."`
	Rank     cli.RankCmd     `cmd:"" help:"Show the current rank."`
	Badges   cli.BadgesCmd   `cmd:"" help:"List earned and locked badges."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("habitctl"),
		kong.Description("Habit tracker client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Verbose {
		cfg.LogLevel = "debug"
	} else if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = "warn"
	}
	if _, err := logger.Init(logger.Config{Level: cfg.LogLevel, Dir: cfg.LogDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a, err := app.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := services.NewSessionService(a.Client, a.Store)
	appCtx := cli.NewContext(ctx, a.Client, &session, a.Engine, os.Stdout)

	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Describe(err))
		a.Close()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cryptodash/internal/app"
	"cryptodash/internal/config"
	"cryptodash/internal/logger"
)

var (
	verbose = flag.Bool("v", false, "Log informational messages to stderr")
	plain   = flag.Bool("plain", false, "Print raw Markdown instead of rendering it for the terminal")
)

// errLoginRequired is returned by commands that need a saved session.
var errLoginRequired = errors.New("you must be logged in: run `cryptodash login -email <email>` first")

// withApp opens the application, runs fn and reports its error on stderr.
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	log := logger.Get()
	if !*verbose {
		log = log.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))
	}

	a, err := app.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := fn(ctx, a); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// requireSession fails when no user is logged in.
func requireSession(a *app.App) error {
	if !a.Sessions.IsAuthenticated() {
		return errLoginRequired
	}
	return nil
}

// printMarkdown renders md for the terminal, falling back to the raw text.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// usageError prints msg and the command usage.
func usageError(f *flag.FlagSet, msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, msg)
	f.Usage()
	return subcommands.ExitUsageError
}

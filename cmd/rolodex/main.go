package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/command"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/repl"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Repl    ReplCmd          `cmd:"" default:"withargs" help:"Start the interactive assistant."`
}

// ReplCmd starts the interactive command session.
type ReplCmd struct {
	Plain bool `help:"Force plain text output even if stdout is a TTY." default:"false"`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the repl command.
func (r *ReplCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	// Apply CLI flag overrides.
	if r.Plain {
		cfg.UI.Plain = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	dispatcher := command.NewDispatcher(book.New(),
		command.WithFarewell(cfg.REPL.Farewell))
	session := repl.New(repl.Options{
		Output:     os.Stdout,
		ForcePlain: cfg.UI.Plain,
		Prompt:     cfg.REPL.Prompt,
		Greeting:   cfg.REPL.Greeting,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return r.run(ctx, session, dispatcher)
}

// run executes the session with the given dependencies, enabling testable wiring.
func (r *ReplCmd) run(ctx context.Context, session repl.Session, exec repl.Executor) error {
	return session.Run(ctx, exec)
}

// Exit codes.
const (
	exitSuccess = 0
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

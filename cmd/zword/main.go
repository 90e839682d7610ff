package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zword/internal/cli"
	"github.com/zarlcorp/zword/internal/config"
	"github.com/zarlcorp/zword/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zword"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		code := runCLI(cfg, os.Args[1], os.Args[2:])
		_ = app.Close()
		os.Exit(code)
	}

	if err := runTUI(ctx, cfg); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

// runCLI dispatches a subcommand and returns the process exit code.
func runCLI(cfg config.Config, cmd string, args []string) int {
	c := cli.New(cfg)

	var err error
	switch cmd {
	case "version":
		fmt.Printf("zword %s\n", version)
		return 0
	case "help", "-h", "--help":
		c.Usage()
		return 0
	case "human":
		err = c.Human(args)
	case "org":
		err = c.Organization(args)
	case "password":
		err = c.Password(args)
	case "strength":
		err = c.Strength(args)
	default:
		fmt.Fprintf(os.Stderr, "zword: unknown command %q\n", cmd)
		c.Usage()
		return 2
	}

	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
		return 0
	case errors.Is(err, cli.ErrUsage):
		fmt.Fprintf(os.Stderr, "zword: %v\n", err)
		return 2
	}
	fmt.Fprintf(os.Stderr, "zword: %v\n", err)
	return 1
}

func runTUI(ctx context.Context, cfg config.Config) error {
	m := tui.New(version, cfg)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// Package cli implements zword's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/zarlcorp/zword/internal/config"
	"github.com/zarlcorp/zword/internal/random"
)

// ErrUsage wraps flag and argument errors.
var ErrUsage = errors.New("usage")

// CLI runs subcommands against the given streams.
type CLI struct {
	cfg    config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
	src    random.Source
}

// New creates a CLI bound to the process streams.
func New(cfg config.Config) *CLI {
	return &CLI{
		cfg:    cfg,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		now:    time.Now,
	}
}

// Usage prints the command summary.
func (c *CLI) Usage() {
	fmt.Fprint(c.stderr, `usage: zword <command> [flags]

commands:
  human      wordlist from facts about a person
  org        wordlist from facts about an organization
  password   random passwords with strength scores
  strength   score a password and list feedback
  version    print the version

run without a command for the interactive interface
`)
}

// source returns the sampling source, seeded when seed is non-zero.
func (c *CLI) source(seed uint64) random.Source {
	if seed != 0 {
		return random.NewSeeded(seed)
	}
	if c.src != nil {
		return c.src
	}
	return random.New()
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return fs
}

// parse runs fs over args, mapping failures onto ErrUsage. Help requests
// print the flag defaults and return pflag.ErrHelp. At most maxArgs
// positional arguments are accepted.
func (c *CLI) parse(fs *pflag.FlagSet, args []string, maxArgs int) error {
	err := fs.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintf(c.stderr, "usage: zword %s [flags]\n\n%s", fs.Name(), fs.FlagUsages())
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	if fs.NArg() > maxArgs {
		return fmt.Errorf("%w: %s: unexpected argument %q", ErrUsage, fs.Name(), fs.Arg(maxArgs))
	}
	return nil
}

func (c *CLI) printJSON(v any) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

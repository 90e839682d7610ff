package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/zarlcorp/zword/internal/password"
	"golang.org/x/term"
)

// ReadPassword prompts on w and reads a password from the terminal without
// echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// Password prints one or more random passwords.
func (c *CLI) Password(args []string) error {
	fs := newFlagSet("password")
	opts := c.cfg.PasswordOptions()
	var (
		noUpper, noLower, noDigits, noSymbols bool
		count                                 int
		category                              string
		seed                                  uint64
		asJSON, suggest                       bool
	)
	fs.IntVarP(&opts.Length, "length", "l", opts.Length, "password length (4-128)")
	fs.BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	fs.BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	fs.BoolVar(&noDigits, "no-digits", false, "exclude digits")
	fs.BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	fs.IntVarP(&count, "count", "n", 1, "number of passwords")
	fs.StringVarP(&category, "category", "c", string(c.cfg.Category()), "personal, financial, work or other")
	fs.Uint64Var(&seed, "seed", 0, "seed for reproducible output")
	fs.BoolVar(&suggest, "suggest", false, "print variations of the options instead")
	fs.BoolVar(&asJSON, "json", false, "print JSON")

	if err := c.parse(fs, args, 0); err != nil {
		return err
	}

	cat, err := password.ParseCategory(category)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if count < 1 {
		return fmt.Errorf("%w: --count must be at least 1", ErrUsage)
	}

	opts.Upper = !noUpper
	opts.Lower = !noLower
	opts.Digits = !noDigits
	opts.Symbols = !noSymbols

	g := password.New(c.source(seed))
	var pws []string
	if suggest {
		pws = g.Suggest(opts)
	} else {
		pws = make([]string, count)
		for i := range pws {
			pws[i] = g.Generate(opts)
		}
	}

	entries := make([]password.Entry, len(pws))
	for i, pw := range pws {
		entries[i] = password.NewEntry(pw, cat, c.now())
	}

	if asJSON {
		return c.printJSON(entries)
	}

	for _, e := range entries {
		fmt.Fprintf(c.stdout, "%s  %3d %s\n", e.Password, e.Strength, password.Label(e.Strength))
	}
	return nil
}

// Strength scores a password given as an argument, typed at a prompt, or
// read from the first line of stdin, and prints the analysis feedback.
func (c *CLI) Strength(args []string) error {
	fs := newFlagSet("strength")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := c.parse(fs, args, 1); err != nil {
		return err
	}

	var pw string
	switch {
	case fs.NArg() == 1:
		pw = fs.Arg(0)
	case c.stdin == os.Stdin && term.IsTerminal(int(syscall.Stdin)):
		var err error
		pw, err = ReadPassword("password: ", c.stderr)
		if err != nil {
			return err
		}
	default:
		line, err := bufio.NewReader(c.stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read password: %w", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}

	score := password.Strength(pw)
	a := password.Analyze(pw)
	if *asJSON {
		return c.printJSON(struct {
			Strength int               `json:"strength"`
			Label    string            `json:"label"`
			Analysis password.Analysis `json:"analysis"`
		}{score, password.Label(score), a})
	}

	fmt.Fprintf(c.stdout, "%d %s\n", score, password.Label(score))
	fmt.Fprintf(c.stdout, "analysis: %d %s\n", a.Score, a.Label)
	for _, f := range a.Feedback {
		fmt.Fprintf(c.stdout, "  - %s\n", f)
	}
	return nil
}

// Package config loads zword settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/zarlcorp/zword/internal/password"
	"github.com/zarlcorp/zword/internal/wordlist"
)

// Config holds defaults for generation and export.
type Config struct {
	// OutputDir receives exported wordlists. Empty means DataDir.
	OutputDir string `env:"ZWORD_OUTPUT_DIR"`

	MinLength int  `env:"ZWORD_MIN_LENGTH"`
	MaxLength int  `env:"ZWORD_MAX_LENGTH"`
	Count     int  `env:"ZWORD_COUNT"`
	PINs      bool `env:"ZWORD_PINS"`

	PasswordLength   int    `env:"ZWORD_PASSWORD_LENGTH" envDefault:"16"`
	PasswordCategory string `env:"ZWORD_PASSWORD_CATEGORY" envDefault:"personal"`
	HistorySize      int    `env:"ZWORD_HISTORY_SIZE" envDefault:"10"`
}

// Load reads .env files (the default .env when none are given) and parses
// ZWORD_* variables. A missing default .env is not an error; missing
// explicit files are.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = DataDir()
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.MinLength < 0 || c.MaxLength < 0 {
		return errors.New("length bounds must not be negative")
	}
	if c.MaxLength > 0 && c.MinLength > c.MaxLength {
		return fmt.Errorf("min length %d exceeds max length %d", c.MinLength, c.MaxLength)
	}
	if c.Count < 0 {
		return errors.New("count must not be negative")
	}
	if _, err := password.ParseCategory(c.PasswordCategory); err != nil {
		return err
	}
	return nil
}

// Options returns the wordlist defaults.
func (c Config) Options() wordlist.Options {
	return wordlist.Options{
		MinLength: c.MinLength,
		MaxLength: c.MaxLength,
		Count:     c.Count,
		PINs:      c.PINs,
	}.Clamp()
}

// PasswordOptions returns the password defaults with every class enabled.
func (c Config) PasswordOptions() password.Options {
	opts := password.DefaultOptions()
	if c.PasswordLength > 0 {
		opts.Length = c.PasswordLength
	}
	return opts
}

// Category returns the configured default password category.
func (c Config) Category() password.Category {
	cat, err := password.ParseCategory(c.PasswordCategory)
	if err != nil {
		return password.CategoryPersonal
	}
	return cat
}

// DataDir returns the default data directory for zword.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zword"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zword"
	}
	return home + "/.local/share/zword"
}

// Package password generates random passwords, scores their strength and
// tracks a session's history and favorites in memory.
package password

import (
	"github.com/zarlcorp/zword/internal/random"
)

// password character classes
const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	DefaultLength = 16
	MinLength     = 4
	MaxLength     = 128
)

// Options selects the length and character classes of a password.
type Options struct {
	Length  int  `json:"length"`
	Upper   bool `json:"upper"`
	Lower   bool `json:"lower"`
	Digits  bool `json:"digits"`
	Symbols bool `json:"symbols"`
}

// DefaultOptions enables every class at the default length.
func DefaultOptions() Options {
	return Options{Length: DefaultLength, Upper: true, Lower: true, Digits: true, Symbols: true}
}

// Charset returns the characters a password may be drawn from. With no
// class selected it falls back to lowercase letters and digits.
func (o Options) Charset() string {
	var cs string
	if o.Upper {
		cs += upperChars
	}
	if o.Lower {
		cs += lowerChars
	}
	if o.Digits {
		cs += digitChars
	}
	if o.Symbols {
		cs += symbolChars
	}
	if cs == "" {
		cs = lowerChars + digitChars
	}
	return cs
}

// clampLength keeps the length within [MinLength, MaxLength].
func clampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// Generator produces passwords from a random source.
type Generator struct {
	src random.Source
}

// New creates a generator. A nil source uses random.New.
func New(src random.Source) *Generator {
	if src == nil {
		src = random.New()
	}
	return &Generator{src: src}
}

// Generate draws each character uniformly from the option's charset.
func (g *Generator) Generate(opts Options) string {
	cs := opts.Charset()
	n := clampLength(opts.Length)

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = cs[g.src.IntN(len(cs))]
	}
	return string(buf)
}

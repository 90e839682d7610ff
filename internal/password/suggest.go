package password

import "github.com/zarlcorp/zword/internal/random"

const (
	// SuggestionCount is how many alternatives Suggest returns.
	SuggestionCount = 4

	suggestionBaseLength = 12
	suggestionMinLength  = 8
	suggestionSpread     = 2
)

// Suggest returns SuggestionCount variations of opts. Each keeps both letter
// cases, includes digits four times in five and symbols half the time, and
// shifts the length by up to two in either direction, never below eight.
func Suggest(opts Options, src random.Source) []string {
	g := New(src)

	base := opts.Length
	if base <= 0 {
		base = suggestionBaseLength
	}

	out := make([]string, SuggestionCount)
	for i := range out {
		o := opts
		o.Upper = true
		o.Lower = true
		o.Digits = g.src.IntN(10) >= 2
		o.Symbols = g.src.IntN(2) == 1
		o.Length = max(suggestionMinLength, base+g.src.IntN(2*suggestionSpread+1)-suggestionSpread)
		out[i] = g.Generate(o)
	}
	return out
}

// Suggest returns variations of opts drawn from the generator's source.
func (g *Generator) Suggest(opts Options) []string {
	return Suggest(opts, g.src)
}

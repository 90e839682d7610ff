package wordlist

import (
	"time"

	"github.com/zarlcorp/zword/internal/random"
)

// minOrganizationWord is the shortest word kept on the organization word path.
const minOrganizationWord = 3

// Generator turns targets into wordlists. It holds no state between calls
// and is safe for concurrent use when its source is.
type Generator struct {
	year int
	rand random.Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithYear fixes the year used for year suffixes and year PINs.
func WithYear(year int) Option {
	return func(g *Generator) { g.year = year }
}

// WithRand sets the source used when sampling down to a count.
func WithRand(r random.Source) Option {
	return func(g *Generator) { g.rand = r }
}

// New creates a generator using the current year and a PCG source unless
// overridden.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, o := range opts {
		o(g)
	}
	if g.year == 0 {
		g.year = time.Now().Year()
	}
	if g.rand == nil {
		g.rand = random.New()
	}
	return g
}

// Year returns the year the generator builds suffixes from.
func (g *Generator) Year() int {
	return g.year
}

// Generate dispatches on the target variant.
func (g *Generator) Generate(t Target, opts Options) []string {
	switch t := t.(type) {
	case HumanTarget:
		return g.Human(t, opts)
	case *HumanTarget:
		return g.Human(*t, opts)
	case OrganizationTarget:
		return g.Organization(t, opts)
	case *OrganizationTarget:
		return g.Organization(*t, opts)
	}
	return nil
}

// Human builds the wordlist for a person. In PIN mode the output is only
// PINs; length and count filters apply in both modes.
func (g *Generator) Human(t HumanTarget, opts Options) []string {
	opts = opts.Clamp()

	var words []string
	if opts.PINs {
		words = humanPINs(t, g.year)
	} else {
		words = augment(flatten(extract(t, humanRules)), g.year)
	}

	words = withinLength(words, opts.MinLength, opts.MaxLength)
	words = sample(words, opts.Count, g.rand)
	return unique(words)
}

// Organization builds the wordlist for an organization. PIN mode returns
// the PINs unfiltered. The word path drops words under three characters.
func (g *Generator) Organization(t OrganizationTarget, opts Options) []string {
	opts = opts.Clamp()

	if opts.PINs {
		return organizationPINs(t)
	}

	words := unique(flatten(extract(t, organizationRules)), crossProducts(t))
	words = withinLength(words, opts.MinLength, opts.MaxLength)
	// short words go before sampling so a count is met exactly
	words = dropShort(words, minOrganizationWord)
	words = sample(words, opts.Count, g.rand)
	return unique(words)
}

// Explain returns the tokens each populated field contributes, before any
// augmentation or filtering.
func (g *Generator) Explain(t Target) []Group {
	switch t := t.(type) {
	case HumanTarget:
		return extract(t, humanRules)
	case *HumanTarget:
		return extract(*t, humanRules)
	case OrganizationTarget:
		return extract(t, organizationRules)
	case *OrganizationTarget:
		return extract(*t, organizationRules)
	}
	return nil
}

// GenerateHuman is Human on a default generator.
func GenerateHuman(t HumanTarget, opts Options) []string {
	return New().Human(t, opts)
}

// GenerateOrganization is Organization on a default generator.
func GenerateOrganization(t OrganizationTarget, opts Options) []string {
	return New().Organization(t, opts)
}

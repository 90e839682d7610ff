package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/zarlcorp/zword/internal/export"
	"github.com/zarlcorp/zword/internal/wordlist"
)

// genFlags are shared by the human and org commands.
type genFlags struct {
	opts    wordlist.Options
	from    string
	year    int
	seed    uint64
	asJSON  bool
	explain bool
	save    bool
	outDir  string
}

func (c *CLI) bindGenFlags(fs *pflag.FlagSet) *genFlags {
	f := &genFlags{opts: c.cfg.Options()}
	fs.StringVar(&f.from, "from", "", "read the target from a JSON file")
	fs.IntVar(&f.opts.MinLength, "min", f.opts.MinLength, "minimum word length")
	fs.IntVar(&f.opts.MaxLength, "max", f.opts.MaxLength, "maximum word length")
	fs.IntVarP(&f.opts.Count, "count", "n", f.opts.Count, "random sample size (max 99999)")
	fs.BoolVar(&f.opts.PINs, "pins", f.opts.PINs, "generate 4 digit PINs instead of words")
	fs.IntVar(&f.year, "year", 0, "year for suffixes and PINs (default current)")
	fs.Uint64Var(&f.seed, "seed", 0, "seed for reproducible sampling")
	fs.BoolVar(&f.asJSON, "json", false, "print JSON")
	fs.BoolVar(&f.explain, "explain", false, "print the tokens each field contributes")
	fs.BoolVar(&f.save, "save", false, "write the wordlist to a file")
	fs.StringVarP(&f.outDir, "out", "o", c.cfg.OutputDir, "directory for --save")
	return f
}

// readTarget decodes a JSON target file into v.
func readTarget(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read target: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode target %s: %w", path, err)
	}
	return nil
}

// Human generates a wordlist for a person.
func (c *CLI) Human(args []string) error {
	fs := newFlagSet("human")
	var t wordlist.HumanTarget
	fs.StringVar(&t.FullName, "full-name", "", "full name")
	fs.StringVar(&t.Nickname, "nickname", "", "nickname")
	fs.StringVar(&t.BirthDate, "birth-date", "", "birth date, MM/DD/YYYY")
	fs.StringVar(&t.MobileNumber, "mobile", "", "mobile number")
	fs.StringVar(&t.PetName, "pet", "", "pet name")
	fs.StringVar(&t.SpouseName, "spouse", "", "spouse name")
	fs.StringVar(&t.ChildrenNames, "children", "", "children names, comma separated")
	fs.StringVar(&t.FavoriteTeam, "team", "", "favorite team")
	fs.StringVar(&t.FavoriteColor, "color", "", "favorite color")
	fs.StringVar(&t.Hometown, "hometown", "", "hometown")
	fs.StringVar(&t.FavoriteHobby, "hobby", "", "favorite hobby")
	fs.StringVar(&t.FavoriteMovie, "movie", "", "favorite movie")
	fs.StringVar(&t.AdditionalKeywords, "keywords", "", "additional keywords, comma separated")
	f := c.bindGenFlags(fs)

	if err := c.parse(fs, args, 0); err != nil {
		return err
	}

	if f.from != "" {
		var fromFile wordlist.HumanTarget
		if err := readTarget(f.from, &fromFile); err != nil {
			return err
		}
		t = mergeHuman(fromFile, t)
	}

	return c.run(t, f)
}

// Organization generates a wordlist for an organization.
func (c *CLI) Organization(args []string) error {
	fs := newFlagSet("org")
	var t wordlist.OrganizationTarget
	fs.StringVar(&t.Name, "name", "", "organization name")
	fs.StringVar(&t.Abbreviation, "abbr", "", "abbreviation")
	fs.StringVar(&t.FoundingYear, "founded", "", "founding year, YYYY")
	fs.StringVar(&t.Domain, "domain", "", "domain, e.g. acme.com")
	fs.StringVar(&t.Location, "location", "", "locations, comma separated")
	fs.StringVar(&t.Industry, "industry", "", "industry")
	fs.StringVar(&t.Products, "products", "", "products, comma separated")
	fs.StringVar(&t.Slogan, "slogan", "", "slogan")
	fs.StringVar(&t.CEOName, "ceo", "", "CEO name")
	f := c.bindGenFlags(fs)

	if err := c.parse(fs, args, 0); err != nil {
		return err
	}

	if f.from != "" {
		var fromFile wordlist.OrganizationTarget
		if err := readTarget(f.from, &fromFile); err != nil {
			return err
		}
		t = mergeOrganization(fromFile, t)
	}

	return c.run(t, f)
}

func (c *CLI) run(t wordlist.Target, f *genFlags) error {
	if f.opts.MaxLength > 0 && f.opts.MinLength > f.opts.MaxLength {
		return fmt.Errorf("%w: --min %d exceeds --max %d", ErrUsage, f.opts.MinLength, f.opts.MaxLength)
	}
	if f.year < 0 {
		return fmt.Errorf("%w: --year %d is negative", ErrUsage, f.year)
	}

	opts := []wordlist.Option{wordlist.WithRand(c.source(f.seed))}
	if f.year != 0 {
		opts = append(opts, wordlist.WithYear(f.year))
	}
	g := wordlist.New(opts...)

	if f.explain {
		groups := g.Explain(t)
		if f.asJSON {
			return c.printJSON(groups)
		}
		for _, grp := range groups {
			fmt.Fprintf(c.stdout, "  %-20s %v\n", grp.Field, grp.Tokens)
		}
		return nil
	}

	words := g.Generate(t, f.opts)

	if f.save {
		w, err := export.NewDirWriter(f.outDir)
		if err != nil {
			return err
		}
		name, err := w.Write(t.Kind(), words, c.now())
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stderr, "saved %d words to %s/%s\n", len(words), f.outDir, name)
		return nil
	}

	if f.asJSON {
		if words == nil {
			words = []string{}
		}
		return c.printJSON(words)
	}

	for _, w := range words {
		fmt.Fprintln(c.stdout, w)
	}
	return nil
}

// mergeHuman fills empty fields of flags from file; flags win.
func mergeHuman(file, flags wordlist.HumanTarget) wordlist.HumanTarget {
	pick := func(a, b string) string {
		if b != "" {
			return b
		}
		return a
	}
	return wordlist.HumanTarget{
		FullName:           pick(file.FullName, flags.FullName),
		Nickname:           pick(file.Nickname, flags.Nickname),
		BirthDate:          pick(file.BirthDate, flags.BirthDate),
		MobileNumber:       pick(file.MobileNumber, flags.MobileNumber),
		PetName:            pick(file.PetName, flags.PetName),
		SpouseName:         pick(file.SpouseName, flags.SpouseName),
		ChildrenNames:      pick(file.ChildrenNames, flags.ChildrenNames),
		FavoriteTeam:       pick(file.FavoriteTeam, flags.FavoriteTeam),
		FavoriteColor:      pick(file.FavoriteColor, flags.FavoriteColor),
		Hometown:           pick(file.Hometown, flags.Hometown),
		FavoriteHobby:      pick(file.FavoriteHobby, flags.FavoriteHobby),
		FavoriteMovie:      pick(file.FavoriteMovie, flags.FavoriteMovie),
		AdditionalKeywords: pick(file.AdditionalKeywords, flags.AdditionalKeywords),
	}
}

// mergeOrganization fills empty fields of flags from file; flags win.
func mergeOrganization(file, flags wordlist.OrganizationTarget) wordlist.OrganizationTarget {
	pick := func(a, b string) string {
		if b != "" {
			return b
		}
		return a
	}
	return wordlist.OrganizationTarget{
		Name:         pick(file.Name, flags.Name),
		Abbreviation: pick(file.Abbreviation, flags.Abbreviation),
		FoundingYear: pick(file.FoundingYear, flags.FoundingYear),
		Domain:       pick(file.Domain, flags.Domain),
		Location:     pick(file.Location, flags.Location),
		Industry:     pick(file.Industry, flags.Industry),
		Products:     pick(file.Products, flags.Products),
		Slogan:       pick(file.Slogan, flags.Slogan),
		CEOName:      pick(file.CEOName, flags.CEOName),
	}
}

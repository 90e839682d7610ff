package wordlist

import (
	"slices"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/zarlcorp/zword/internal/random"
)

// zeroRand always picks index 0, making shuffles deterministic.
type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

func testGenerator() *Generator {
	return New(WithYear(2026), WithRand(zeroRand{}))
}

func assertContains(t *testing.T, words []string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !slices.Contains(words, w) {
			t.Errorf("missing %q in %v", w, words)
		}
	}
}

func assertMissing(t *testing.T, words []string, unwanted ...string) {
	t.Helper()
	for _, w := range unwanted {
		if slices.Contains(words, w) {
			t.Errorf("unexpected %q in %v", w, words)
		}
	}
}

func assertUnique(t *testing.T, words []string) {
	t.Helper()
	seen := make(map[string]bool)
	for _, w := range words {
		if w == "" {
			t.Error("empty word in output")
		}
		if seen[w] {
			t.Errorf("duplicate %q", w)
		}
		seen[w] = true
	}
}

func richHuman() HumanTarget {
	return HumanTarget{
		FullName:           "John Michael Doe",
		Nickname:           "Johnny",
		BirthDate:          "01/15/1990",
		MobileNumber:       "555-123-4567",
		PetName:            "Rex",
		SpouseName:         "Mary Smith",
		ChildrenNames:      "Alice, Bob, Al",
		FavoriteTeam:       "Lakers",
		FavoriteColor:      "blue",
		Hometown:           "Springfield",
		FavoriteHobby:      "chess",
		FavoriteMovie:      "The Matrix",
		AdditionalKeywords: "rocket, ",
	}
}

func richOrganization() OrganizationTarget {
	return OrganizationTarget{
		Name:         "Acme Corp",
		Abbreviation: "AC",
		FoundingYear: "1995",
		Domain:       "acme-widgets.com",
		Location:     "Berlin, Paris",
		Industry:     "Manufacturing",
		Products:     "Rocket, Anvil",
		Slogan:       "We make the best things",
		CEOName:      "Wile E Coyote",
	}
}

func TestHumanFullName(t *testing.T) {
	words := testGenerator().Human(HumanTarget{FullName: "John Doe"}, Options{})

	assertContains(t, words, "john", "John", "doe", "Doe", "johndoe", "john.doe", "jdoe", "doej", "johnd")
	assertUnique(t, words)
}

func TestHumanSingleNameHasNoCombinations(t *testing.T) {
	words := testGenerator().Human(HumanTarget{FullName: "Madonna"}, Options{})

	assertContains(t, words, "madonna", "Madonna")
	for _, w := range words {
		if strings.Contains(w, ".") {
			t.Errorf("single name should not produce combinations, got %q", w)
		}
	}
}

func TestHumanShortNamePartsSkipped(t *testing.T) {
	words := testGenerator().Human(HumanTarget{FullName: "Al Gore"}, Options{})

	assertMissing(t, words, "al", "Al")
	assertContains(t, words, "gore", "Gore", "algore", "al.gore", "agore", "gorea", "alg")
}

func TestHumanGatesOnTrimmedValue(t *testing.T) {
	// the two character rule applies after trimming, so padding does not
	// let a short value through
	if words := testGenerator().Human(HumanTarget{Nickname: " ab"}, Options{}); len(words) != 0 {
		t.Errorf("padded two letter nickname gave %v", words)
	}

	words := testGenerator().Human(HumanTarget{Nickname: " abc "}, Options{})
	assertContains(t, words, "abc", "Abc")
	assertMissing(t, words, " abc ", " abc")
}

func TestHumanBirthDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want []string
	}{
		{"slashes", "01/15/1990", []string{"1990", "0115", "1501", "01151990", "15011990", "19900115"}},
		{"dashes", "01-15-1990", []string{"1990", "0115", "1501", "01151990", "15011990", "19900115"}},
		{"unpadded", "1/5/1990", []string{"1990", "0105", "0501", "01051990", "05011990", "19900105"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := testGenerator().Human(HumanTarget{BirthDate: tt.date}, Options{})
			assertContains(t, words, tt.want...)
		})
	}
}

func TestHumanMalformedDateContributesNothing(t *testing.T) {
	for _, date := range []string{"1990", "01/15", "01//15/1990", "not a date"} {
		t.Run(date, func(t *testing.T) {
			words := testGenerator().Human(HumanTarget{BirthDate: date}, Options{})
			if len(words) != 0 {
				t.Errorf("malformed date %q should contribute nothing, got %v", date, words)
			}
		})
	}
}

func TestHumanMobileNumber(t *testing.T) {
	words := testGenerator().Human(HumanTarget{MobileNumber: "+1 (555) 123-4567"}, Options{})
	assertContains(t, words, "15551234567", "4567")

	short := testGenerator().Human(HumanTarget{MobileNumber: "12-345"}, Options{})
	if len(short) != 0 {
		t.Errorf("fewer than six digits should contribute nothing, got %v", short)
	}
}

func TestHumanSpouseFirstNameOnly(t *testing.T) {
	words := testGenerator().Human(HumanTarget{SpouseName: "Mary Jane Smith"}, Options{})
	assertContains(t, words, "mary", "Mary")
	assertMissing(t, words, "smith", "jane")

	// no length gate for spouse names
	short := testGenerator().Human(HumanTarget{SpouseName: "Jo"}, Options{})
	assertContains(t, short, "jo", "Jo")
}

func TestHumanLists(t *testing.T) {
	words := testGenerator().Human(HumanTarget{
		ChildrenNames:      " alice ,BOB, Al",
		AdditionalKeywords: "rocket,,ok",
	}, Options{})

	assertContains(t, words, "alice", "Alice", "bob", "Bob", "rocket", "Rocket")
	assertMissing(t, words, "al", "Al", "ok", "Ok")
}

func TestHumanFavoriteMovie(t *testing.T) {
	words := testGenerator().Human(HumanTarget{FavoriteMovie: "The  Matrix"}, Options{})
	assertContains(t, words, "the  matrix", "thematrix")
	assertMissing(t, words, "The  Matrix")
}

func TestHumanSingleWordFields(t *testing.T) {
	words := testGenerator().Human(HumanTarget{
		Nickname:      "jOHNNY",
		PetName:       "Rex",
		FavoriteTeam:  "Lakers",
		FavoriteColor: "red",
		Hometown:      "Springfield",
		FavoriteHobby: "go",
	}, Options{})

	assertContains(t, words, "johnny", "Johnny", "rex", "Rex", "lakers", "Lakers", "red", "Red", "springfield", "Springfield")
	assertMissing(t, words, "go", "Go")
}

func TestHumanAugmentation(t *testing.T) {
	words := testGenerator().Human(HumanTarget{Nickname: "johnny", PetName: "rex"}, Options{})

	assertContains(t, words,
		"johnny1", "johnny123", "johnny!", "johnny@", "johnny#", "johnny2026", "johnny2025",
		"Johnny1", "Johnny2025",
	)
	// three characters is too short to augment
	assertMissing(t, words, "rex1", "rex123", "Rex!")
}

func TestHumanUnfilteredCount(t *testing.T) {
	words := testGenerator().Human(HumanTarget{Nickname: "johnny"}, Options{})
	// two casings, each with seven variants
	if len(words) != 16 {
		t.Errorf("got %d words, want 16: %v", len(words), words)
	}
}

func TestHumanLengthFilter(t *testing.T) {
	opts := Options{MinLength: 5, MaxLength: 8}
	words := testGenerator().Human(richHuman(), opts)

	if len(words) == 0 {
		t.Fatal("expected some words")
	}
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		if n < 5 || n > 8 {
			t.Errorf("%q has length %d, outside [5, 8]", w, n)
		}
	}
}

func TestHumanMinOnlyFilter(t *testing.T) {
	words := testGenerator().Human(richHuman(), Options{MinLength: 12})
	for _, w := range words {
		if utf8.RuneCountInString(w) < 12 {
			t.Errorf("%q shorter than 12", w)
		}
	}
}

func TestHumanCount(t *testing.T) {
	g := testGenerator()
	all := g.Human(richHuman(), Options{})

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"smaller than total", 10, 10},
		{"one", 1, 1},
		{"equal to total", len(all), len(all)},
		{"larger than total", len(all) + 50, len(all)},
		{"unset", 0, len(all)},
		{"negative is unset", -5, len(all)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := g.Human(richHuman(), Options{Count: tt.count})
			if len(words) != tt.want {
				t.Errorf("got %d words, want %d", len(words), tt.want)
			}
			assertUnique(t, words)
			for _, w := range words {
				if !slices.Contains(all, w) {
					t.Errorf("sampled %q not in unsampled set", w)
				}
			}
		})
	}
}

func TestHumanSamplingIsReproducibleWithSeed(t *testing.T) {
	a := New(WithYear(2026), WithRand(random.NewSeeded(42))).Human(richHuman(), Options{Count: 20})
	b := New(WithYear(2026), WithRand(random.NewSeeded(42))).Human(richHuman(), Options{Count: 20})

	if !slices.Equal(a, b) {
		t.Errorf("same seed should give the same sample\n%v\n%v", a, b)
	}
}

func TestHumanIdempotent(t *testing.T) {
	g := New(WithYear(2026))
	a := g.Human(richHuman(), Options{})
	b := g.Human(richHuman(), Options{})

	if !slices.Equal(a, b) {
		t.Error("unsampled runs should be identical")
	}
}

func TestHumanDoesNotMutateInput(t *testing.T) {
	target := richHuman()
	before := target
	testGenerator().Human(target, Options{Count: 5})
	if target != before {
		t.Error("target was modified")
	}
}

func TestHumanPINs(t *testing.T) {
	words := testGenerator().Human(HumanTarget{MobileNumber: "555-123-4567"}, Options{PINs: true})

	assertContains(t, words, CommonPINs...)
	assertContains(t, words, "4567", "2345")
	assertContains(t, words, "2600", "2612", "2634", "2656", "2678", "2699")
	assertUnique(t, words)
	for _, w := range words {
		if len(w) != 4 || digits(w) != w {
			t.Errorf("PIN %q is not four digits", w)
		}
	}
}

func TestHumanPINsEarlyYears(t *testing.T) {
	tests := []struct {
		year int
		want []string
	}{
		{5, []string{"0500", "0512", "0534", "0556", "0578", "0599"}},
		{-5, []string{"0500", "0512", "0534", "0556", "0578", "0599"}},
		{100, []string{"0000", "0012", "0034", "0056", "0078", "0099"}},
		{1909, []string{"0900", "0912", "0934", "0956", "0978", "0999"}},
	}

	for _, tt := range tests {
		g := New(WithYear(tt.year), WithRand(zeroRand{}))
		words := g.Human(HumanTarget{}, Options{PINs: true})
		assertContains(t, words, tt.want...)
		for _, w := range words {
			if len(w) != 4 || digits(w) != w {
				t.Errorf("year %d: PIN %q is not four digits", tt.year, w)
			}
		}
	}
}

func TestHumanPINsFromBirthDate(t *testing.T) {
	words := testGenerator().Human(HumanTarget{BirthDate: "01/15/1990"}, Options{PINs: true})
	assertContains(t, words, "1990", "0115", "1501")

	// eight digit sources split into two PINs
	eight := testGenerator().Human(HumanTarget{BirthDate: "123/45678/1"}, Options{PINs: true})
	assertContains(t, eight, "1234", "5678", "4567", "8123")
}

func TestHumanPINsReplaceWords(t *testing.T) {
	words := testGenerator().Human(richHuman(), Options{PINs: true})
	assertMissing(t, words, "john", "johnny", "rex")
}

func TestHumanPINsStillFiltered(t *testing.T) {
	none := testGenerator().Human(HumanTarget{}, Options{PINs: true, MinLength: 5})
	if len(none) != 0 {
		t.Errorf("length filter should apply to human PINs, got %v", none)
	}

	few := testGenerator().Human(HumanTarget{}, Options{PINs: true, Count: 3})
	if len(few) != 3 {
		t.Errorf("count should apply to human PINs, got %d", len(few))
	}
}

func TestEmptyHumanTarget(t *testing.T) {
	words := testGenerator().Human(HumanTarget{}, Options{})
	if len(words) != 0 {
		t.Errorf("empty target should give no words, got %v", words)
	}
}

func TestOrganizationTokens(t *testing.T) {
	words := testGenerator().Organization(richOrganization(), Options{})

	assertContains(t, words,
		"Acme", "Corp", "acme", "corp", "AcmeCorp", "acmecorp",
		"1995",
		"widgets",
		"Berlin", "berlin", "Paris", "paris",
		"Manufacturing", "manufacturing",
		"make", "best", "things",
		"Wile", "wile", "Coyote", "coyote",
		"Rocket", "rocket", "Anvil", "anvil",
	)
	// slogan words of three characters or fewer are skipped
	assertMissing(t, words, "the", "We", "we")
	// final filter drops words under three characters
	assertMissing(t, words, "AC", "ac", "E", "e")
	assertUnique(t, words)
}

func TestOrganizationCrossProducts(t *testing.T) {
	words := testGenerator().Organization(richOrganization(), Options{})

	assertContains(t, words,
		"acme1995", "acme_1995", "acmeberlin", "acme_berlin", "acmeparis", "acme_paris",
		"ac1995", "ac_1995", "acberlin", "ac_paris",
		"rocket1995", "rocket_berlin", "anvil_paris", "anvilparis",
	)
}

func TestOrganizationNoAugmentation(t *testing.T) {
	words := testGenerator().Organization(OrganizationTarget{Name: "Acme"}, Options{})
	assertMissing(t, words, "acme1", "acme123", "acme2026")
}

func TestOrganizationDomain(t *testing.T) {
	words := testGenerator().Organization(OrganizationTarget{Domain: "Big-Shop.co.uk"}, Options{})
	assertContains(t, words, "Big", "big", "Shop", "shop")
	assertMissing(t, words, "co", "uk")
}

func TestOrganizationPINs(t *testing.T) {
	target := OrganizationTarget{Name: "Acme Corp", FoundingYear: "1995"}
	// count and length are ignored on this path
	words := testGenerator().Organization(target, Options{PINs: true, Count: 2, MinLength: 10})

	want := []string{"1234", "0000", "1111", "2222", "9999", "1212", "1004", "1995", "9500", "9599"}
	if !slices.Equal(words, want) {
		t.Errorf("got %v, want %v", words, want)
	}
}

func TestOrganizationPINsBadYear(t *testing.T) {
	for _, year := range []string{"95", "19x5", "19955"} {
		t.Run(year, func(t *testing.T) {
			words := testGenerator().Organization(OrganizationTarget{FoundingYear: year}, Options{PINs: true})
			if !slices.Equal(words, CommonPINs) {
				t.Errorf("got %v, want only common PINs", words)
			}
		})
	}
}

func TestOrganizationCount(t *testing.T) {
	words := testGenerator().Organization(richOrganization(), Options{Count: 7})
	if len(words) != 7 {
		t.Errorf("got %d words, want 7", len(words))
	}
	for _, w := range words {
		if utf8.RuneCountInString(w) < 3 {
			t.Errorf("short word %q survived", w)
		}
	}
}

func TestOrganizationLengthFilter(t *testing.T) {
	words := testGenerator().Organization(richOrganization(), Options{MinLength: 4, MaxLength: 6})
	if len(words) == 0 {
		t.Fatal("expected some words")
	}
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n < 4 || n > 6 {
			t.Errorf("%q has length %d", w, n)
		}
	}
}

func TestGenerateDispatch(t *testing.T) {
	g := testGenerator()
	h := HumanTarget{FullName: "John Doe"}
	o := OrganizationTarget{Name: "Acme Corp"}

	tests := []struct {
		name   string
		target Target
		want   []string
	}{
		{"human value", h, g.Human(h, Options{})},
		{"human pointer", &h, g.Human(h, Options{})},
		{"organization value", o, g.Organization(o, Options{})},
		{"organization pointer", &o, g.Organization(o, Options{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Generate(tt.target, Options{})
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExplain(t *testing.T) {
	groups := testGenerator().Explain(HumanTarget{FullName: "John Doe", PetName: "ab", Hometown: "Boston"})

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2: %+v", len(groups), groups)
	}
	if groups[0].Field != "full name" {
		t.Errorf("first group = %q, want full name", groups[0].Field)
	}
	if groups[1].Field != "hometown" {
		t.Errorf("second group = %q, want hometown", groups[1].Field)
	}
	if !slices.Equal(groups[1].Tokens, []string{"boston", "Boston"}) {
		t.Errorf("hometown tokens = %v", groups[1].Tokens)
	}
}

func TestNewDefaultsToCurrentYear(t *testing.T) {
	g := New()
	if g.Year() < 2024 {
		t.Errorf("year = %d, want current year", g.Year())
	}
}

func TestTargetKind(t *testing.T) {
	if (HumanTarget{}).Kind() != KindHuman {
		t.Error("human kind")
	}
	if (OrganizationTarget{}).Kind() != KindOrganization {
		t.Error("organization kind")
	}
}

func sorted(words []string) []string {
	out := slices.Clone(words)
	slices.Sort(out)
	return out
}

func TestGenerateHelpers(t *testing.T) {
	human := richHuman()
	if got, want := sorted(GenerateHuman(human, Options{})), sorted(New().Human(human, Options{})); !slices.Equal(got, want) {
		t.Errorf("GenerateHuman = %v, want %v", got, want)
	}

	org := richOrganization()
	if got, want := sorted(GenerateOrganization(org, Options{})), sorted(New().Organization(org, Options{})); !slices.Equal(got, want) {
		t.Errorf("GenerateOrganization = %v, want %v", got, want)
	}

	pins := GenerateHuman(HumanTarget{}, Options{PINs: true})
	assertContains(t, pins, CommonPINs...)
}

func TestGeneratorConcurrentUse(t *testing.T) {
	g := New(WithYear(2026), WithRand(random.NewSeeded(11)))
	human := richHuman()
	org := richOrganization()
	opts := Options{Count: 10}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 20 {
				if n := len(g.Human(human, opts)); n != 10 {
					t.Errorf("Human returned %d words, want 10", n)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for range 20 {
				if n := len(g.Organization(org, opts)); n != 10 {
					t.Errorf("Organization returned %d words, want 10", n)
				}
			}
		}()
	}
	wg.Wait()
}

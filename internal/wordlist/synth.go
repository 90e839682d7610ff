package wordlist

import (
	"strconv"
	"strings"
)

// suffixes appended to every token longer than three characters.
var fixedSuffixes = []string{"1", "123", "!", "@", "#"}

// augment returns the tokens followed by their suffixed variants.
func augment(tokens []string, year int) []string {
	base := unique(tokens)
	suffixes := append(append([]string{}, fixedSuffixes...),
		strconv.Itoa(year),
		strconv.Itoa(year-1),
	)

	out := append([]string{}, base...)
	for _, w := range base {
		if runeLen(w) <= 3 {
			continue
		}
		for _, s := range suffixes {
			out = append(out, w+s)
		}
	}
	return unique(out)
}

// crossProducts pairs organization stems with years and places:
// stem+suffix and stem_suffix for every combination.
func crossProducts(t OrganizationTarget) []string {
	var bases []string
	if words := strings.Fields(t.Name); len(words) > 0 {
		bases = append(bases, strings.ToLower(words[0]))
	}
	if a := strings.TrimSpace(t.Abbreviation); a != "" {
		bases = append(bases, strings.ToLower(a))
	}
	bases = append(bases, lowerAll(splitList(t.Products))...)

	var suffixes []string
	if y := strings.TrimSpace(t.FoundingYear); y != "" {
		suffixes = append(suffixes, y)
	}
	suffixes = append(suffixes, lowerAll(splitList(t.Location))...)

	var out []string
	for _, b := range bases {
		for _, s := range suffixes {
			out = append(out, b+s, b+"_"+s)
		}
	}
	return out
}

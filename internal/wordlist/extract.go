package wordlist

import (
	"strings"
)

// rule maps one field of a target to the tokens it contributes.
type rule[T Target] struct {
	field   string
	value   func(T) string
	extract func(string) []string
}

// Group is the set of tokens one field contributed.
type Group struct {
	Field  string   `json:"field"`
	Tokens []string `json:"tokens"`
}

// extract applies each rule to its populated field, in table order.
func extract[T Target](t T, rules []rule[T]) []Group {
	var groups []Group
	for _, r := range rules {
		v := strings.TrimSpace(r.value(t))
		if v == "" {
			continue
		}
		tokens := r.extract(v)
		if len(tokens) == 0 {
			continue
		}
		groups = append(groups, Group{Field: r.field, Tokens: tokens})
	}
	return groups
}

func flatten(groups []Group) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g.Tokens...)
	}
	return out
}

var humanRules = []rule[HumanTarget]{
	{"full name", func(t HumanTarget) string { return t.FullName }, fullNameTokens},
	{"nickname", func(t HumanTarget) string { return t.Nickname }, wordTokens},
	{"birth date", func(t HumanTarget) string { return t.BirthDate }, birthDateTokens},
	{"mobile number", func(t HumanTarget) string { return t.MobileNumber }, mobileTokens},
	{"pet name", func(t HumanTarget) string { return t.PetName }, wordTokens},
	{"spouse name", func(t HumanTarget) string { return t.SpouseName }, spouseTokens},
	{"children names", func(t HumanTarget) string { return t.ChildrenNames }, listWordTokens},
	{"favorite team", func(t HumanTarget) string { return t.FavoriteTeam }, wordTokens},
	{"favorite color", func(t HumanTarget) string { return t.FavoriteColor }, wordTokens},
	{"hometown", func(t HumanTarget) string { return t.Hometown }, wordTokens},
	{"favorite hobby", func(t HumanTarget) string { return t.FavoriteHobby }, wordTokens},
	{"favorite movie", func(t HumanTarget) string { return t.FavoriteMovie }, movieTokens},
	{"additional keywords", func(t HumanTarget) string { return t.AdditionalKeywords }, listWordTokens},
}

var organizationRules = []rule[OrganizationTarget]{
	{"name", func(t OrganizationTarget) string { return t.Name }, orgNameTokens},
	{"abbreviation", func(t OrganizationTarget) string { return t.Abbreviation }, pairTokens},
	{"founding year", func(t OrganizationTarget) string { return t.FoundingYear }, rawTokens},
	{"domain", func(t OrganizationTarget) string { return t.Domain }, domainTokens},
	{"location", func(t OrganizationTarget) string { return t.Location }, listPairTokens},
	{"industry", func(t OrganizationTarget) string { return t.Industry }, pairTokens},
	{"slogan", func(t OrganizationTarget) string { return t.Slogan }, sloganTokens},
	{"ceo name", func(t OrganizationTarget) string { return t.CEOName }, ceoTokens},
	{"products", func(t OrganizationTarget) string { return t.Products }, listPairTokens},
}

// human rules

func fullNameTokens(v string) []string {
	parts := strings.Fields(v)
	var out []string
	for _, p := range parts {
		if runeLen(p) > 2 {
			out = append(out, casings(p)...)
		}
	}

	if len(parts) < 2 {
		return out
	}

	first := strings.ToLower(parts[0])
	last := strings.ToLower(parts[len(parts)-1])
	return append(out,
		first+last,
		first+"."+last,
		firstLower(first)+last,
		last+firstLower(first),
		first+firstLower(last),
	)
}

// wordTokens gates a single free-text value on length.
func wordTokens(v string) []string {
	if runeLen(v) <= 2 {
		return nil
	}
	return casings(v)
}

func listWordTokens(v string) []string {
	var out []string
	for _, item := range splitList(v) {
		out = append(out, wordTokens(item)...)
	}
	return out
}

// birthDateTokens reads the value as month, day, year.
func birthDateTokens(v string) []string {
	parts := splitDate(v)
	if len(parts) != 3 {
		return nil
	}

	month, day, year := pad2(parts[0]), pad2(parts[1]), parts[2]
	return []string{
		year,
		month + day,
		day + month,
		month + day + year,
		day + month + year,
		year + month + day,
	}
}

func mobileTokens(v string) []string {
	d := digits(v)
	if len(d) < 6 {
		return nil
	}
	return []string{d, tail(d, 4)}
}

// spouseTokens keeps only the first name and skips the length gate.
func spouseTokens(v string) []string {
	parts := strings.Fields(v)
	if len(parts) == 0 {
		return nil
	}
	return casings(parts[0])
}

func movieTokens(v string) []string {
	if runeLen(v) <= 2 {
		return nil
	}
	lower := strings.ToLower(v)
	return []string{lower, spaceRe.ReplaceAllString(lower, "")}
}

// organization rules

func orgNameTokens(v string) []string {
	words := strings.Fields(v)
	joined := strings.Join(words, "")

	out := append([]string{}, words...)
	out = append(out, lowerAll(words)...)
	return append(out, joined, strings.ToLower(joined))
}

// pairTokens emits the value as given and in lowercase.
func pairTokens(v string) []string {
	return []string{v, strings.ToLower(v)}
}

func rawTokens(v string) []string {
	return []string{v}
}

func domainTokens(v string) []string {
	label, _, _ := strings.Cut(v, ".")
	var parts []string
	for _, p := range strings.Split(label, "-") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return append(parts, lowerAll(parts)...)
}

func listPairTokens(v string) []string {
	items := splitList(v)
	return append(items, lowerAll(items)...)
}

func sloganTokens(v string) []string {
	var out []string
	for _, w := range strings.Fields(v) {
		if runeLen(w) > 3 {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}

func ceoTokens(v string) []string {
	parts := strings.Fields(v)
	return append(parts, lowerAll(parts)...)
}

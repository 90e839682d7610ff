package wordlist

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	dateSepRe = regexp.MustCompile(`[-/]`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// runeLen is the character length used by every length gate and filter.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// capitalize upper-cases the first character and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return strings.ToLower(s)
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// casings returns the lowercase and capitalized forms of s.
func casings(s string) []string {
	return []string{strings.ToLower(s), capitalize(s)}
}

// firstLower returns the first character of s in lowercase.
func firstLower(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return strings.ToLower(string(r))
}

// splitList splits a comma separated list and trims each item. Empty items
// are dropped.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitDate splits on '-' or '/' keeping empty parts, so "01//1990" is four
// parts and contributes nothing.
func splitDate(s string) []string {
	return dateSepRe.Split(s, -1)
}

// digits strips everything that is not an ASCII digit.
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pad2 left-pads s with zeros to two characters.
func pad2(s string) string {
	for runeLen(s) < 2 {
		s = "0" + s
	}
	return s
}

// head returns the first n characters of s.
func head(s string, n int) string {
	r := []rune(s)
	if n > len(r) {
		n = len(r)
	}
	return string(r[:n])
}

// tail returns the last n characters of s.
func tail(s string, n int) string {
	r := []rune(s)
	if n > len(r) {
		n = len(r)
	}
	return string(r[len(r)-n:])
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}

// unique returns the distinct non-empty strings of ss in first-seen order.
func unique(ss ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, group := range ss {
		for _, s := range group {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

package password

import (
	"regexp"
	"unicode/utf8"
)

var (
	upperRe         = regexp.MustCompile(`[A-Z]`)
	lowerRe         = regexp.MustCompile(`[a-z]`)
	digitRe         = regexp.MustCompile(`[0-9]`)
	otherRe         = regexp.MustCompile(`[^A-Za-z0-9]`)
	lettersDigitsRe = regexp.MustCompile(`^[A-Za-z]+\d+$`)
	wordDigitsRe    = regexp.MustCompile(`^[A-Z][a-z]+\d+$`)
)

// Strength scores a password from 0 to 100.
func Strength(pw string) int {
	if pw == "" {
		return 0
	}

	score := min(30, utf8.RuneCountInString(pw)*2)

	for _, re := range []*regexp.Regexp{upperRe, lowerRe, digitRe, otherRe} {
		if re.MatchString(pw) {
			score += 15
		}
	}

	if hasRun(pw, 3) {
		score -= 15
	}
	if lettersDigitsRe.MatchString(pw) {
		score -= 10
	}
	if wordDigitsRe.MatchString(pw) {
		score -= 10
	}

	return max(0, min(100, score))
}

// hasRun reports whether pw repeats one character n or more times in a row.
// RE2 has no backreferences, so this is done by hand.
func hasRun(pw string, n int) bool {
	var prev rune
	count := 0
	for i, r := range []rune(pw) {
		if i > 0 && r == prev {
			count++
		} else {
			count = 1
		}
		if count >= n {
			return true
		}
		prev = r
	}
	return false
}

// Level buckets a strength score.
type Level int

const (
	VeryWeak Level = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

var levelLabels = [...]string{"Very Weak", "Weak", "Moderate", "Strong", "Very Strong"}

func (l Level) String() string {
	if l < VeryWeak || l > VeryStrong {
		return "Unknown"
	}
	return levelLabels[l]
}

// LevelOf maps a 0-100 score to its level.
func LevelOf(score int) Level {
	switch {
	case score < 30:
		return VeryWeak
	case score < 50:
		return Weak
	case score < 70:
		return Moderate
	case score < 90:
		return Strong
	default:
		return VeryStrong
	}
}

// Label returns the display label for a score.
func Label(score int) string {
	return LevelOf(score).String()
}

package password

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// specialRe matches the punctuation counted as a special character.
var specialRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)

// commonPatterns are substrings that mark a password as guessable.
var commonPatterns = []string{"123", "abc", "qwerty", "password", "admin", "987"}

// analysis feedback
const (
	feedbackEmpty    = "Please enter a password to analyze"
	feedbackShort    = "Password is too short (minimum 6 characters)"
	feedbackLength   = "Good password length"
	feedbackOneType  = "Password uses only one character type"
	feedbackTwoTypes = "Password uses two character types"
	feedbackVariety  = "Good variety of character types"
	feedbackAllTypes = "Excellent variety of character types"
	feedbackCommon   = "Contains common password patterns"
	feedbackRepeated = "Contains repeated character sequences"
	feedbackStrong   = "Strong password with good complexity"
	feedbackDecent   = "Decent password but could be improved"
	feedbackWeak     = "Consider using a more complex password"
)

// Analysis is a scored breakdown of a password with human readable hints.
type Analysis struct {
	Score    int      `json:"score"`
	Label    string   `json:"label"`
	Feedback []string `json:"feedback"`
}

// Analyze scores pw on its own scale and explains the score. It is
// independent of Strength, which rates generated passwords.
func Analyze(pw string) Analysis {
	if pw == "" {
		return Analysis{Score: 0, Label: "No Password", Feedback: []string{feedbackEmpty}}
	}

	var (
		score    int
		feedback []string
	)

	n := utf8.RuneCountInString(pw)
	switch {
	case n < 6:
		feedback = append(feedback, feedbackShort)
	case n >= 12:
		score += 25
		feedback = append(feedback, feedbackLength)
	default:
		score += min(20, n*2)
	}

	classes := 0
	for _, c := range []struct {
		re     *regexp.Regexp
		points int
	}{
		{lowerRe, 10},
		{upperRe, 15},
		{digitRe, 10},
		{specialRe, 15},
	} {
		if c.re.MatchString(pw) {
			score += c.points
			classes++
		}
	}

	switch classes {
	case 1:
		feedback = append(feedback, feedbackOneType)
	case 2:
		feedback = append(feedback, feedbackTwoTypes)
	case 3:
		feedback = append(feedback, feedbackVariety)
	case 4:
		feedback = append(feedback, feedbackAllTypes)
	}

	lower := strings.ToLower(pw)
	for _, p := range commonPatterns {
		if strings.Contains(lower, p) {
			score -= 20
			feedback = append(feedback, feedbackCommon)
			break
		}
	}

	if hasRun(pw, 3) {
		score -= 15
		feedback = append(feedback, feedbackRepeated)
	}

	score = max(0, min(100, score))

	if len(feedback) == 0 {
		switch {
		case score >= 80:
			feedback = append(feedback, feedbackStrong)
		case score >= 60:
			feedback = append(feedback, feedbackDecent)
		default:
			feedback = append(feedback, feedbackWeak)
		}
	}

	return Analysis{Score: score, Label: analysisLabel(score), Feedback: feedback}
}

func analysisLabel(score int) string {
	switch {
	case score < 20:
		return "Very Weak"
	case score < 40:
		return "Weak"
	case score < 60:
		return "Fair"
	case score < 80:
		return "Good"
	default:
		return "Excellent"
	}
}

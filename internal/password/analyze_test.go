package password

import (
	"slices"
	"testing"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		pw       string
		score    int
		label    string
		feedback []string
	}{
		{
			name:     "empty",
			pw:       "",
			score:    0,
			label:    "No Password",
			feedback: []string{feedbackEmpty},
		},
		{
			name:     "short common clamped to zero",
			pw:       "abc",
			score:    0,
			label:    "Very Weak",
			feedback: []string{feedbackShort, feedbackOneType, feedbackCommon},
		},
		{
			name:     "one type",
			pw:       "xyzwvu",
			score:    12 + 10,
			label:    "Weak",
			feedback: []string{feedbackOneType},
		},
		{
			name:     "two types with a repeated run",
			pw:       "Xzzzyw",
			score:    12 + 25 - 15,
			label:    "Weak",
			feedback: []string{feedbackTwoTypes, feedbackRepeated},
		},
		{
			name:     "three types with a common word",
			pw:       "Password123",
			score:    20 + 35 - 20,
			label:    "Weak",
			feedback: []string{feedbackVariety, feedbackCommon},
		},
		{
			name:     "common pattern matched case insensitively",
			pw:       "QWERTYuiop",
			score:    20 + 25 - 20,
			label:    "Weak",
			feedback: []string{feedbackTwoTypes, feedbackCommon},
		},
		{
			name:     "long with every type",
			pw:       "aB3$eF6&hJ9*kL1!",
			score:    25 + 50,
			label:    "Good",
			feedback: []string{feedbackLength, feedbackAllTypes},
		},
		{
			name:     "no recognised types falls back to a hint",
			pw:       "éàüöñç",
			score:    12,
			label:    "Very Weak",
			feedback: []string{feedbackWeak},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.pw)
			if got.Score != tt.score {
				t.Errorf("score = %d, want %d", got.Score, tt.score)
			}
			if got.Label != tt.label {
				t.Errorf("label = %q, want %q", got.Label, tt.label)
			}
			if !slices.Equal(got.Feedback, tt.feedback) {
				t.Errorf("feedback = %q, want %q", got.Feedback, tt.feedback)
			}
		})
	}
}

func TestAnalyzeLengthPoints(t *testing.T) {
	// lowercase letters without patterns or runs: 10 for the class plus the
	// length points
	tests := []struct {
		pw   string
		want int
	}{
		{"xyzwv", 10},
		{"xyzwvu", 12 + 10},
		{"xyzwvutsrqp", 20 + 10},
		{"xyzwvutsrqpo", 25 + 10},
		{"xyzwvutsrqponmlkjihg", 25 + 10},
	}

	for _, tt := range tests {
		if got := Analyze(tt.pw).Score; got != tt.want {
			t.Errorf("Analyze(%q).Score = %d, want %d", tt.pw, got, tt.want)
		}
	}
}

func TestAnalysisLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Very Weak"},
		{19, "Very Weak"},
		{20, "Weak"},
		{39, "Weak"},
		{40, "Fair"},
		{59, "Fair"},
		{60, "Good"},
		{79, "Good"},
		{80, "Excellent"},
		{100, "Excellent"},
	}

	for _, tt := range tests {
		if got := analysisLabel(tt.score); got != tt.want {
			t.Errorf("analysisLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

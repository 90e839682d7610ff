package wordlist

import "github.com/zarlcorp/zword/internal/random"

// withinLength keeps words whose length lies in [min, max]. A zero bound is
// not applied.
func withinLength(words []string, min, max int) []string {
	if min <= 0 && max <= 0 {
		return words
	}

	out := words[:0:0]
	for _, w := range words {
		n := runeLen(w)
		if min > 0 && n < min {
			continue
		}
		if max > 0 && n > max {
			continue
		}
		out = append(out, w)
	}
	return out
}

// dropShort removes words shorter than n characters.
func dropShort(words []string, n int) []string {
	out := words[:0:0]
	for _, w := range words {
		if runeLen(w) >= n {
			out = append(out, w)
		}
	}
	return out
}

// sample shuffles words in place and truncates to count when count is
// positive and smaller than the word count.
func sample(words []string, count int, src random.Source) []string {
	if count > MaxCount {
		count = MaxCount
	}
	if count <= 0 || count >= len(words) {
		return words
	}

	random.Shuffle(src, words)
	return words[:count]
}

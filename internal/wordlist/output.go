package wordlist

import (
	"fmt"
	"strings"
	"time"
)

// Join renders words one per line, as shown and exported.
func Join(words []string) string {
	return strings.Join(words, "\n")
}

// Filename returns the export name wordlist-<kind>-<YYYY-MM-DD>.txt.
func Filename(kind Kind, now time.Time) string {
	return fmt.Sprintf("wordlist-%s-%s.txt", kind, now.UTC().Format("2006-01-02"))
}

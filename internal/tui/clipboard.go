package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests.
var writeClipboard = func(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard tool, install xclip or xsel")
	}
	return clipboard.WriteAll(text)
}

// copyToClipboard copies text to the system clipboard.
func copyToClipboard(text string) error {
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

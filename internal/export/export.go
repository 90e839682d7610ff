// Package export writes generated wordlists to a filesystem.
package export

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zword/internal/wordlist"
)

// ErrEmpty is returned when there is nothing to write.
var ErrEmpty = errors.New("wordlist is empty")

// Writer saves wordlists as newline separated text files.
type Writer struct {
	fs zfilesystem.ReadWriteFileFS
}

// NewWriter creates a writer rooted at fsys.
func NewWriter(fsys zfilesystem.ReadWriteFileFS) *Writer {
	return &Writer{fs: fsys}
}

// NewDirWriter creates a writer for a directory on disk, creating the
// directory if needed.
func NewDirWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return NewWriter(zfilesystem.NewOSFileSystem(dir)), nil
}

// Write stores words under wordlist-<kind>-<date>.txt and returns the
// file name. An existing file of the same name is replaced.
func (w *Writer) Write(kind wordlist.Kind, words []string, now time.Time) (string, error) {
	if len(words) == 0 {
		return "", ErrEmpty
	}

	name := wordlist.Filename(kind, now)
	data := []byte(wordlist.Join(words) + "\n")
	if err := w.fs.WriteFile(name, data, 0o600); err != nil {
		return "", fmt.Errorf("write wordlist %s: %w", name, err)
	}

	return name, nil
}

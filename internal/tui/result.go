package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zword/internal/wordlist"
)

// previewRows is how many words the result view shows at once.
const previewRows = 15

// saveWordlistMsg asks the root to write the wordlist to disk.
type saveWordlistMsg struct {
	kind  wordlist.Kind
	words []string
}

// wordlistSavedMsg reports the outcome of a save.
type wordlistSavedMsg struct {
	path string
	err  error
}

// regenerateMsg asks the root to rerun the last generation.
type regenerateMsg struct{}

// resultModel previews a generated wordlist.
type resultModel struct {
	kind     wordlist.Kind
	words    []string
	offset   int
	flash    string
	flashErr bool
}

func newResultModel(kind wordlist.Kind, words []string) resultModel {
	return resultModel{kind: kind, words: words}
}

func (m resultModel) Init() tea.Cmd {
	return nil
}

func (m resultModel) Update(msg tea.Msg) (resultModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case wordlistSavedMsg:
		if msg.err != nil {
			return m.setFlash("save: "+msg.err.Error(), true), clearFlashAfter()
		}
		return m.setFlash("saved to "+msg.path, false), clearFlashAfter()

	case flashMsg:
		m.flash = ""
		m.flashErr = false
		return m, nil
	}

	return m, nil
}

func (m resultModel) handleKey(msg tea.KeyMsg) (resultModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, navigate(formView(m.kind))
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.offset > 0 {
			m.offset--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.offset < m.maxOffset() {
			m.offset++
		}
		return m, nil
	}

	switch msg.String() {
	case "c":
		if len(m.words) == 0 {
			return m.setFlash("nothing to copy", true), clearFlashAfter()
		}
		if err := copyToClipboard(wordlist.Join(m.words)); err != nil {
			return m.setFlash("copy: "+err.Error(), true), clearFlashAfter()
		}
		return m.setFlash(fmt.Sprintf("copied %d words!", len(m.words)), false), clearFlashAfter()

	case "s":
		if len(m.words) == 0 {
			return m.setFlash("nothing to save", true), clearFlashAfter()
		}
		kind, words := m.kind, m.words
		return m, func() tea.Msg { return saveWordlistMsg{kind: kind, words: words} }

	case "r":
		return m, func() tea.Msg { return regenerateMsg{} }
	}

	return m, nil
}

func (m resultModel) maxOffset() int {
	return max(0, len(m.words)-previewRows)
}

func (m resultModel) setFlash(msg string, isErr bool) resultModel {
	m.flash = msg
	m.flashErr = isErr
	return m
}

func (m resultModel) View() string {
	s := "\n"

	if len(m.words) == 0 {
		s += "  " + zstyle.MutedText.Render("no words generated, fill in more fields") + "\n\n"
	} else {
		s += "  " + zstyle.Subtitle.Render(fmt.Sprintf("%d words", len(m.words))) + "\n\n"

		end := min(len(m.words), m.offset+previewRows)
		for _, w := range m.words[m.offset:end] {
			s += "    " + w + "\n"
		}

		if rest := len(m.words) - end; rest > 0 {
			s += "    " + zstyle.MutedText.Render(fmt.Sprintf("... %d more", rest)) + "\n"
		}
		s += "\n"
	}

	// always reserve a line for flash to prevent layout shift
	switch {
	case m.flash == "":
		s += "\n"
	case m.flashErr:
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	default:
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	}

	return s
}

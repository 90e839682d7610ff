package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zword/internal/password"
)

// entryListModel lists the session's history or its favorites.
type entryListModel struct {
	session   *password.Session
	favorites bool
	entries   []password.Entry
	now       func() time.Time
	cursor    int
	flash     string
	flashErr  bool
}

func newEntryListModel(session *password.Session, favorites bool, now func() time.Time) entryListModel {
	m := entryListModel{session: session, favorites: favorites, now: now}
	return m.reload()
}

// reload refreshes entries from the session, keeping the cursor in range.
func (m entryListModel) reload() entryListModel {
	if m.favorites {
		m.entries = m.session.Favorites()
	} else {
		m.entries = m.session.History()
	}
	if m.cursor >= len(m.entries) {
		m.cursor = max(0, len(m.entries)-1)
	}
	return m
}

func (m entryListModel) Init() tea.Cmd {
	return nil
}

func (m entryListModel) Update(msg tea.Msg) (entryListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		m.flashErr = false
		return m, nil
	}

	return m, nil
}

func (m entryListModel) handleKey(msg tea.KeyMsg) (entryListModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, navigate(viewMenu)
	}

	if !m.favorites && msg.String() == "x" {
		m.session.Clear()
		m = m.reload()
		m.flash = "history cleared"
		return m, clearFlashAfter()
	}

	if len(m.entries) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	}

	e := m.entries[m.cursor]

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.copy(e.Password, "copied!")
	}

	switch msg.String() {
	case "c":
		return m.copy(e.Password, "copied!")

	case "s":
		return m.copy(e.ShareText(), "share text copied!")

	case "f":
		on := m.session.ToggleFavorite(e)
		m = m.reload()
		if on {
			m.flash = "added to favorites"
		} else {
			m.flash = "removed from favorites"
		}
		return m, clearFlashAfter()
	}

	return m, nil
}

func (m entryListModel) copy(text, ok string) (entryListModel, tea.Cmd) {
	if err := copyToClipboard(text); err != nil {
		m.flash = "copy: " + err.Error()
		m.flashErr = true
		return m, clearFlashAfter()
	}
	m.flash = ok
	m.flashErr = false
	return m, clearFlashAfter()
}

func (m entryListModel) View() string {
	s := "\n"

	if len(m.entries) == 0 {
		empty := "no passwords generated yet"
		if m.favorites {
			empty = "no favorites"
		}
		s += "  " + zstyle.MutedText.Render(empty) + "\n\n"
		s += m.flashLine()
		return s
	}

	now := m.now()
	for i, e := range m.entries {
		star := " "
		if !m.favorites && m.session.IsFavorite(e.ID) {
			star = accentStyle.Render("★")
		}

		line := fmt.Sprintf("%s %-24s %-10s %s  %s",
			star,
			truncate(e.Password, 24),
			e.Category,
			renderStrength(e.Strength, fmt.Sprintf("%-11s", password.Label(e.Strength))),
			zstyle.MutedText.Render(password.Remaining(e.ExpiresAt, now)),
		)

		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"
	s += m.flashLine()
	return s
}

// flashLine always reserves a line to prevent layout shift.
func (m entryListModel) flashLine() string {
	switch {
	case m.flash == "":
		return "\n"
	case m.flashErr:
		return "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	}
	return "  " + zstyle.StatusOK.Render(m.flash) + "\n"
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zword/internal/password"
)

// passwordModel generates passwords and records them in the session.
type passwordModel struct {
	gen      *password.Generator
	session  *password.Session
	opts     password.Options
	category password.Category
	current  password.Entry
	// suggestions are variations of opts offered for picking with 1-4
	suggestions []string
	now         func() time.Time
	flash       string
	flashErr    bool
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newPasswordModel(gen *password.Generator, session *password.Session, opts password.Options, cat password.Category, now func() time.Time) passwordModel {
	m := passwordModel{
		gen:      gen,
		session:  session,
		opts:     opts,
		category: cat,
		now:      now,
	}
	return m.generate()
}

// generate draws a new password and records it in history.
func (m passwordModel) generate() passwordModel {
	return m.record(m.gen.Generate(m.opts))
}

// record makes pw the current entry and adds it to history.
func (m passwordModel) record(pw string) passwordModel {
	m.current = password.NewEntry(pw, m.category, m.now())
	m.session.Record(m.current)
	m.suggestions = nil
	return m
}

// pick records the suggestion at i, if there is one.
func (m passwordModel) pick(i int) (passwordModel, tea.Cmd) {
	if i >= len(m.suggestions) {
		return m, nil
	}
	m = m.record(m.suggestions[i])
	return m.setFlash("suggestion saved to history", false), clearFlashAfter()
}

func (m passwordModel) Init() tea.Cmd {
	return nil
}

func (m passwordModel) Update(msg tea.Msg) (passwordModel, tea.Cmd) {
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

func (m passwordModel) handleKey(msg tea.KeyMsg) (passwordModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, navigate(viewMenu)
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.copy(m.current.Password, "copied!")
	}

	switch msg.String() {
	case "n":
		return m.generate(), nil

	case "g":
		m.suggestions = m.gen.Suggest(m.opts)
		return m, nil

	case "1", "2", "3", "4":
		return m.pick(int(msg.Runes[0] - '1'))

	case "c":
		return m.copy(m.current.Password, "copied!")

	case "s":
		return m.copy(m.current.ShareText(), "share text copied!")

	case "f":
		if m.session.ToggleFavorite(m.current) {
			return m.setFlash("added to favorites", false), clearFlashAfter()
		}
		return m.setFlash("removed from favorites", false), clearFlashAfter()

	case "t":
		m.category = m.category.Next()
		m.current.Category = m.category
		return m, nil

	case "+", "=":
		if m.opts.Length < password.MaxLength {
			m.opts.Length++
		}
		return m.generate(), nil

	case "-":
		if m.opts.Length > password.MinLength {
			m.opts.Length--
		}
		return m.generate(), nil

	case "u":
		m.opts.Upper = !m.opts.Upper
		return m.generate(), nil

	case "l":
		m.opts.Lower = !m.opts.Lower
		return m.generate(), nil

	case "d":
		m.opts.Digits = !m.opts.Digits
		return m.generate(), nil

	case "y":
		m.opts.Symbols = !m.opts.Symbols
		return m.generate(), nil
	}

	return m, nil
}

func (m passwordModel) copy(text, ok string) (passwordModel, tea.Cmd) {
	if err := copyToClipboard(text); err != nil {
		return m.setFlash("copy: "+err.Error(), true), clearFlashAfter()
	}
	return m.setFlash(ok, false), clearFlashAfter()
}

func (m passwordModel) setFlash(msg string, isErr bool) passwordModel {
	m.flash = msg
	m.flashErr = isErr
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// renderStrength colors text by the level of score.
func renderStrength(score int, text string) string {
	switch password.LevelOf(score) {
	case password.VeryWeak, password.Weak:
		return zstyle.StatusErr.Render(text)
	case password.Moderate:
		return zstyle.StatusWarn.Render(text)
	}
	return zstyle.StatusOK.Render(text)
}

// strengthBar renders score as a bar of width cells.
func strengthBar(score, width int) string {
	filled := score * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m passwordModel) View() string {
	e := m.current
	label := func(s string) string {
		return zstyle.MutedText.Render(fmt.Sprintf("%-10s", s))
	}

	s := "\n"
	s += "  " + label("password") + " " + zstyle.Highlight.Render(e.Password) + "\n\n"

	s += "  " + label("strength") + " " + renderStrength(e.Strength, strengthBar(e.Strength, 20)) +
		" " + renderStrength(e.Strength, fmt.Sprintf("%d %s", e.Strength, password.Label(e.Strength))) + "\n"
	a := password.Analyze(e.Password)
	s += "  " + label("analysis") + " " + fmt.Sprintf("%d %s", a.Score, a.Label) + "\n"
	for _, f := range a.Feedback {
		s += "  " + label("") + " " + zstyle.MutedText.Render("- "+f) + "\n"
	}
	s += "  " + label("category") + " " + string(e.Category) + "\n"
	s += "  " + label("expires") + " " + password.Remaining(e.ExpiresAt, m.now()) + "\n"

	fav := "no"
	if m.session.IsFavorite(e.ID) {
		fav = accentStyle.Render("★ yes")
	}
	s += "  " + label("favorite") + " " + fav + "\n\n"

	s += fmt.Sprintf("  %s %d   %s upper  %s lower  %s digits  %s symbols\n",
		label("length"), m.opts.Length,
		checkbox(m.opts.Upper), checkbox(m.opts.Lower),
		checkbox(m.opts.Digits), checkbox(m.opts.Symbols))

	if len(m.suggestions) > 0 {
		s += "\n  " + zstyle.Subtitle.Render("suggestions") + "\n"
		for i, pw := range m.suggestions {
			score := password.Strength(pw)
			s += fmt.Sprintf("  %s %s  %s\n",
				accentStyle.Render(fmt.Sprintf("%d", i+1)), pw,
				renderStrength(score, password.Label(score)))
		}
	}

	s += "\n"

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

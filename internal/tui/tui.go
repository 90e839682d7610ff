// Package tui implements the root Bubble Tea model for zword.
package tui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zword/internal/config"
	"github.com/zarlcorp/zword/internal/export"
	"github.com/zarlcorp/zword/internal/password"
	"github.com/zarlcorp/zword/internal/random"
	"github.com/zarlcorp/zword/internal/wordlist"
)

type viewID int

const (
	viewMenu viewID = iota
	viewPassword
	viewHuman
	viewOrganization
	viewResult
	viewHistory
	viewFavorites
)

// accent is zword's brand color.
var accent = lipgloss.Color("#7AA2F7")

var accentStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)

// Model is the root TUI model.
type Model struct {
	version   string
	cfg       config.Config
	session   *password.Session
	passwords *password.Generator
	words     *wordlist.Generator
	now       func() time.Time

	active       viewID
	menu         menuModel
	password     passwordModel
	human        formModel
	organization formModel
	result       resultModel
	entries      entryListModel

	// last generation, for resampling from the result view
	lastTarget wordlist.Target
	lastOpts   wordlist.Options

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version string, cfg config.Config) Model {
	src := random.New()
	return Model{
		version:      version,
		cfg:          cfg,
		session:      password.NewSession(cfg.HistorySize),
		passwords:    password.New(src),
		words:        wordlist.New(wordlist.WithRand(src)),
		now:          time.Now,
		active:       viewMenu,
		menu:         newMenuModel(version),
		human:        newFormModel(wordlist.KindHuman, cfg.Options()),
		organization: newFormModel(wordlist.KindOrganization, cfg.Options()),
	}
}

// Session returns the in-memory password session.
func (m Model) Session() *password.Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return m.menu.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case generateWordlistMsg:
		return m.generate(msg.target, msg.opts)

	case regenerateMsg:
		if m.lastTarget == nil {
			return m, nil
		}
		return m.generate(m.lastTarget, m.lastOpts)

	case saveWordlistMsg:
		return m.handleSave(msg.kind, msg.words)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// the menu carries its own title
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewPassword:
		content = m.password.View()
	case viewHuman:
		content = m.human.View()
	case viewOrganization:
		content = m.organization.View()
	case viewResult:
		content = m.result.View()
	case viewHistory, viewFavorites:
		content = m.entries.View()
	}

	header := renderHeader(viewTitle(m.active))
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

func renderHeader(title string) string {
	return "  " + accentStyle.Render("zword") + zstyle.MutedText.Render(" / ") + zstyle.Title.Render(title)
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewPassword:
		return "Password"
	case viewHuman:
		return "Person"
	case viewOrganization:
		return "Organization"
	case viewResult:
		return "Wordlist"
	case viewHistory:
		return "History"
	case viewFavorites:
		return "Favorites"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewPassword:
		return []zstyle.HelpPair{
			{Key: "n", Desc: "new"},
			{Key: "g", Desc: "suggest"},
			{Key: "1-4", Desc: "pick"},
			{Key: "c", Desc: "copy"},
			{Key: "s", Desc: "share"},
			{Key: "f", Desc: "favorite"},
			{Key: "t", Desc: "category"},
			{Key: "+/-", Desc: "length"},
			{Key: "u/l/d/y", Desc: "classes"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewHuman, viewOrganization:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "space", Desc: "toggle pins"},
			{Key: "enter", Desc: "generate"},
			{Key: "esc", Desc: "back"},
		}
	case viewResult:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "scroll"},
			{Key: "c", Desc: "copy all"},
			{Key: "s", Desc: "save"},
			{Key: "r", Desc: "resample"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewHistory:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "copy"},
			{Key: "s", Desc: "share"},
			{Key: "f", Desc: "favorite"},
			{Key: "x", Desc: "clear"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewFavorites:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "copy"},
			{Key: "s", Desc: "share"},
			{Key: "f", Desc: "unfavorite"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

// formView maps a target kind to its form.
func formView(kind wordlist.Kind) viewID {
	if kind == wordlist.KindOrganization {
		return viewOrganization
	}
	return viewHuman
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewPassword:
		m.password, cmd = m.password.Update(msg)
	case viewHuman:
		m.human, cmd = m.human.Update(msg)
	case viewOrganization:
		m.organization, cmd = m.organization.Update(msg)
	case viewResult:
		m.result, cmd = m.result.Update(msg)
	case viewHistory, viewFavorites:
		m.entries, cmd = m.entries.Update(msg)
	}

	return m, cmd
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		mm := newMenuModel(m.version)
		mm.cursor = m.menu.cursor
		mm.history = len(m.session.History())
		mm.favorites = len(m.session.Favorites())
		m.menu = mm
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewPassword:
		m.password = newPasswordModel(m.passwords, m.session, m.cfg.PasswordOptions(), m.cfg.Category(), m.now)
		m.active = viewPassword
		return m, tea.ClearScreen

	case viewHuman:
		m.active = viewHuman
		return m, tea.Batch(m.human.Init(), tea.ClearScreen)

	case viewOrganization:
		m.active = viewOrganization
		return m, tea.Batch(m.organization.Init(), tea.ClearScreen)

	case viewHistory:
		m.entries = newEntryListModel(m.session, false, m.now)
		m.active = viewHistory
		return m, tea.ClearScreen

	case viewFavorites:
		m.entries = newEntryListModel(m.session, true, m.now)
		m.active = viewFavorites
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) generate(t wordlist.Target, opts wordlist.Options) (tea.Model, tea.Cmd) {
	m.lastTarget = t
	m.lastOpts = opts
	m.result = newResultModel(t.Kind(), m.words.Generate(t, opts))
	m.active = viewResult
	return m, tea.ClearScreen
}

func (m Model) handleSave(kind wordlist.Kind, words []string) (tea.Model, tea.Cmd) {
	var saved wordlistSavedMsg
	w, err := export.NewDirWriter(m.cfg.OutputDir)
	if err == nil {
		var name string
		name, err = w.Write(kind, words, m.now())
		saved.path = filepath.Join(m.cfg.OutputDir, name)
	}
	saved.err = err

	var cmd tea.Cmd
	m.result, cmd = m.result.Update(saved)
	return m, cmd
}

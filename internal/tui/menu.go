package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

type menuChoice int

const (
	menuPassword menuChoice = iota
	menuHuman
	menuOrganization
	menuHistory
	menuFavorites
	menuQuit
)

var menuItems = []string{
	"Generate password",
	"Wordlist for a person",
	"Wordlist for an organization",
	"Password history",
	"Favorites",
	"Quit",
}

// menuModel is the main menu view.
type menuModel struct {
	cursor    int
	version   string
	history   int
	favorites int
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

func newMenuModel(version string) menuModel {
	return menuModel{version: version}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m, m.selectItem()
		}
	}

	return m, nil
}

func (m menuModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuPassword:
		return navigate(viewPassword)
	case menuHuman:
		return navigate(viewHuman)
	case menuOrganization:
		return navigate(viewOrganization)
	case menuHistory:
		return navigate(viewHistory)
	case menuFavorites:
		return navigate(viewFavorites)
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func navigate(v viewID) tea.Cmd {
	return func() tea.Msg { return navigateMsg{view: v} }
}

func (m menuModel) View() string {
	title := accentStyle.Render("zword")
	ver := zstyle.MutedText.Render(m.version)

	s := fmt.Sprintf("\n  %s %s\n", title, ver)
	s += "  " + zstyle.Subtitle.Render("wordlists and passwords") + "\n\n"

	for i, item := range menuItems {
		switch menuChoice(i) {
		case menuHistory:
			item += zstyle.MutedText.Render(fmt.Sprintf(" (%d)", m.history))
		case menuFavorites:
			item += zstyle.MutedText.Render(fmt.Sprintf(" (%d)", m.favorites))
		}

		if m.cursor == i {
			s += zstyle.Highlight.Render("  > ") + item + "\n"
		} else {
			s += "    " + item + "\n"
		}
	}

	s += "\n  " + zstyle.MutedText.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}

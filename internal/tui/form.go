package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zword/internal/wordlist"
)

// formField is one labeled text input of a target form.
type formField struct {
	label       string
	placeholder string
}

var humanFields = []formField{
	{"full name", "John Michael Doe"},
	{"nickname", ""},
	{"birth date", "MM/DD/YYYY"},
	{"mobile", "555-123-4567"},
	{"pet name", ""},
	{"spouse name", ""},
	{"children", "comma separated"},
	{"team", ""},
	{"color", ""},
	{"hometown", ""},
	{"hobby", ""},
	{"movie", ""},
	{"keywords", "comma separated"},
}

var organizationFields = []formField{
	{"name", "Acme Corp"},
	{"abbreviation", ""},
	{"founded", "YYYY"},
	{"domain", "acme.com"},
	{"locations", "comma separated"},
	{"industry", ""},
	{"products", "comma separated"},
	{"slogan", ""},
	{"ceo name", ""},
}

// option inputs follow the target fields; the pins toggle comes last.
var optionFields = []formField{
	{"min length", "0"},
	{"max length", "0"},
	{"count", "all"},
}

// generateWordlistMsg asks the root to run the generator.
type generateWordlistMsg struct {
	target wordlist.Target
	opts   wordlist.Options
}

// formModel collects a target and generation options.
type formModel struct {
	kind   wordlist.Kind
	fields []formField
	inputs []textinput.Model
	pins   bool
	focus  int
	flash  string
}

func newFormModel(kind wordlist.Kind, opts wordlist.Options) formModel {
	fields := humanFields
	if kind == wordlist.KindOrganization {
		fields = organizationFields
	}
	fields = append(append([]formField{}, fields...), optionFields...)

	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 40
		ti.Prompt = ""
		ti.Placeholder = f.placeholder
		inputs[i] = ti
	}

	m := formModel{
		kind:   kind,
		fields: fields,
		inputs: inputs,
		pins:   opts.PINs,
	}

	first := len(fields) - len(optionFields)
	for i, v := range []int{opts.MinLength, opts.MaxLength, opts.Count} {
		m.inputs[first+i].CharLimit = 5
		if v > 0 {
			m.inputs[first+i].SetValue(strconv.Itoa(v))
		}
	}

	m.inputs[0].Focus()
	return m
}

// focusCount includes the pins toggle.
func (m formModel) focusCount() int {
	return len(m.inputs) + 1
}

func (m formModel) onPins() bool {
	return m.focus == len(m.inputs)
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, navigate(viewMenu)
	}

	switch msg.String() {
	case "tab", "down":
		return m.moveFocus(1), textinput.Blink

	case "shift+tab", "up":
		return m.moveFocus(-1), textinput.Blink

	case " ":
		if m.onPins() {
			m.pins = !m.pins
			return m, nil
		}
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	if m.onPins() {
		return m, nil
	}
	return m.updateInput(msg)
}

func (m formModel) moveFocus(delta int) formModel {
	if !m.onPins() {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + m.focusCount()) % m.focusCount()
	if !m.onPins() {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	if m.onPins() {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) submit() (formModel, tea.Cmd) {
	opts, err := m.options()
	if err != nil {
		m.flash = err.Error()
		return m, clearFlashAfter()
	}

	t := m.target()
	return m, func() tea.Msg {
		return generateWordlistMsg{target: t, opts: opts}
	}
}

// options parses the option inputs. Empty inputs leave a bound unset.
func (m formModel) options() (wordlist.Options, error) {
	first := len(m.fields) - len(optionFields)
	vals := make([]int, len(optionFields))
	for i, f := range optionFields {
		raw := strings.TrimSpace(m.inputs[first+i].Value())
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return wordlist.Options{}, fmt.Errorf("%s must be a whole number", f.label)
		}
		vals[i] = n
	}

	opts := wordlist.Options{MinLength: vals[0], MaxLength: vals[1], Count: vals[2], PINs: m.pins}
	if opts.MaxLength > 0 && opts.MinLength > opts.MaxLength {
		return wordlist.Options{}, fmt.Errorf("min length exceeds max length")
	}
	return opts.Clamp(), nil
}

func (m formModel) value(i int) string {
	return m.inputs[i].Value()
}

// target builds the target from the field inputs in declaration order.
func (m formModel) target() wordlist.Target {
	if m.kind == wordlist.KindOrganization {
		return wordlist.OrganizationTarget{
			Name:         m.value(0),
			Abbreviation: m.value(1),
			FoundingYear: m.value(2),
			Domain:       m.value(3),
			Location:     m.value(4),
			Industry:     m.value(5),
			Products:     m.value(6),
			Slogan:       m.value(7),
			CEOName:      m.value(8),
		}
	}
	return wordlist.HumanTarget{
		FullName:           m.value(0),
		Nickname:           m.value(1),
		BirthDate:          m.value(2),
		MobileNumber:       m.value(3),
		PetName:            m.value(4),
		SpouseName:         m.value(5),
		ChildrenNames:      m.value(6),
		FavoriteTeam:       m.value(7),
		FavoriteColor:      m.value(8),
		Hometown:           m.value(9),
		FavoriteHobby:      m.value(10),
		FavoriteMovie:      m.value(11),
		AdditionalKeywords: m.value(12),
	}
}

func (m formModel) View() string {
	s := "\n"

	first := len(m.fields) - len(optionFields)
	for i, f := range m.fields {
		if i == first {
			s += "\n"
		}
		label := zstyle.MutedText.Render(fmt.Sprintf("%-14s", f.label))
		if i == m.focus {
			s += "  " + accentStyle.Render(">") + " " + label + m.inputs[i].View() + "\n"
		} else {
			s += "    " + label + m.inputs[i].View() + "\n"
		}
	}

	label := zstyle.MutedText.Render(fmt.Sprintf("%-14s", "pins only"))
	if m.onPins() {
		s += "  " + accentStyle.Render(">") + " " + label + checkbox(m.pins) + "\n"
	} else {
		s += "    " + label + checkbox(m.pins) + "\n"
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

// Package tui implements the ledger dialogs as bubbletea forms, for
// terminals where a full-screen form beats line-by-line prompts.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D9C6A"))
	labelStyle = lipgloss.NewStyle().Width(14)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// field is one labeled input in a form, with an optional validator run when
// the user tries to submit.
type field struct {
	validate func(string) error
	label    string
	input    textinput.Model
}

func newField(label, placeholder string, validate func(string) error) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	return field{label: label, input: ti, validate: validate}
}

// formModel is a vertical stack of fields. Enter advances; enter on the last
// field validates and submits; esc cancels.
type formModel struct {
	err       string
	title     string
	fields    []field
	focus     int
	done      bool
	cancelled bool
}

func newForm(title string, fields []field) formModel {
	m := formModel{title: title, fields: fields}
	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch keyMsg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		if m.focus < len(m.fields)-1 {
			return m.setFocus(m.focus + 1)
		}
		if err := m.validateAll(); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		return m.setFocus((m.focus + 1) % len(m.fields))
	case tea.KeyShiftTab, tea.KeyUp:
		return m.setFocus((m.focus - 1 + len(m.fields)) % len(m.fields))
	default:
		return m.updateFocused(msg)
	}
}

func (m formModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m formModel) setFocus(i int) (tea.Model, tea.Cmd) {
	m.fields[m.focus].input.Blur()
	m.focus = i
	m.err = ""
	return m, m.fields[m.focus].input.Focus()
}

func (m formModel) validateAll() error {
	for _, f := range m.fields {
		if f.validate == nil {
			continue
		}
		if err := f.validate(strings.TrimSpace(f.input.Value())); err != nil {
			return fmt.Errorf("%s: %w", f.label, err)
		}
	}
	return nil
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n\n")
	for i, f := range m.fields {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		b.WriteString(cursor + labelStyle.Render(f.label) + f.input.View() + "\n")
	}
	if m.err != "" {
		b.WriteString("\n" + errStyle.Render(m.err) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter: next/submit • tab: move • esc: cancel") + "\n")
	return b.String()
}

// value returns the trimmed content of field i.
func (m formModel) value(i int) string {
	return strings.TrimSpace(m.fields[i].input.Value())
}

func validDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func nonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}

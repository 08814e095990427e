// SPDX-License-Identifier: MPL-2.0

// Package tui provides the interactive terminal components used by rustlab.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type (
	// ConfirmOptions configures the Confirm prompt.
	ConfirmOptions struct {
		// Title is the question to display.
		Title string
		// Affirmative is the text for the yes option (default: "Yes").
		Affirmative string
		// Negative is the text for the no option (default: "No").
		Negative string
		// Default preselects yes when true.
		Default bool
	}

	// confirmModel is the bubbletea model behind Confirm.
	confirmModel struct {
		title       string
		affirmative string
		negative    string
		selection   bool
		done        bool
		cancelled   bool
	}
)

var (
	confirmTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	confirmActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7C3AED")).Bold(true).Padding(0, 1)
	confirmInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Padding(0, 1)
	confirmHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func newConfirmModel(opts ConfirmOptions) *confirmModel {
	affirmative := opts.Affirmative
	if affirmative == "" {
		affirmative = "Yes"
	}
	negative := opts.Negative
	if negative == "" {
		negative = "No"
	}
	return &confirmModel{
		title:       opts.Title,
		affirmative: affirmative,
		negative:    negative,
		selection:   opts.Default,
	}
}

// Init implements tea.Model.
func (m *confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		case "y":
			m.selection = true
			m.done = true
			return m, tea.Quit
		case "n":
			m.selection = false
			m.done = true
			return m, tea.Quit
		case "left", "h":
			m.selection = true
		case "right", "l":
			m.selection = false
		case "up", "down", "tab", "shift+tab":
			m.selection = !m.selection
		case "enter", " ":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *confirmModel) View() string {
	if m.done {
		return ""
	}

	yesView := confirmInactiveStyle.Render(m.affirmative)
	noView := confirmInactiveStyle.Render(m.negative)
	if m.selection {
		yesView = confirmActiveStyle.Render(m.affirmative)
	} else {
		noView = confirmActiveStyle.Render(m.negative)
	}

	var b strings.Builder
	b.WriteString(confirmTitleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(yesView)
	b.WriteString("  ")
	b.WriteString(noView)
	b.WriteString("\n\n")
	b.WriteString(confirmHelpStyle.Render("←/→ select • enter confirm • y/n shortcut • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Confirm renders a yes/no prompt and blocks until the user answers.
// Cancelling (esc, ctrl+c) counts as a negative answer.
func Confirm(opts ConfirmOptions) (bool, error) {
	model := newConfirmModel(opts)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return false, fmt.Errorf("failed to run confirm prompt: %w", err)
	}
	if model.cancelled {
		return false, nil
	}
	return model.selection, nil
}

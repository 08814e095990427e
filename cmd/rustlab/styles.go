// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// The rustlab palette. One set of hex values keeps scaffold summaries, check
// reports, and rendered errors looking like the same tool.
const (
	// ColorPrimary marks titles and section headers (purple).
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted tones down hints and secondary lines (gray).
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess marks passed checks and completed steps (green).
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError marks failures (red).
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning marks advisory problems that do not stop the run (amber).
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight marks commands and filesystem paths (blue).
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Styles built on the palette, shared by every subcommand.
var (
	// TitleStyle renders section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle renders secondary lines under a title.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle renders completed steps.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle renders failures.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle renders advisory problems.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle renders shell commands the user can run next.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// PathStyle renders generated file and directory paths.
	PathStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// Status icons prefixed to per-step output lines.
var (
	successIcon = SuccessStyle.Render("✓")
	errorIcon   = ErrorStyle.Render("✗")
	warnIcon    = WarningStyle.Render("!")
	infoIcon    = SubtitleStyle.Render("•")
)

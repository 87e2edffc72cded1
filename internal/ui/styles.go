package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols. All renderers pull from Current().
type Theme struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Pending  lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style

	BoxChecked   string
	BoxUnchecked string
	SymDone      string
	SymPending   string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),

		BoxChecked:   "☑",
		BoxUnchecked: "☐",
		SymDone:      "✔",
		SymPending:   "•",
	}
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:    plain,
		Muted:    plain,
		Accent:   plain,
		Success:  plain,
		Error:    plain,
		Pending:  plain,
		Selected: plain.Reverse(true),
		Done:     plain.Strikethrough(true),
		Help:     plain,

		BoxChecked:   "[x]",
		BoxUnchecked: "[ ]",
		SymDone:      "x",
		SymPending:   "-",
	}
}

// SetTheme switches the active theme by name; unknown names mean classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

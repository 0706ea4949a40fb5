package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done                                          lipgloss.Style
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor
	BoxUnchecked, BoxChecked                      string
	SymDone, SymPending, SymFail                  string
}

var current = classic()

// SetTheme selects classic, neon or mono. noColor strips colors from
// whichever theme is chosen.
func SetTheme(name string, noColor bool) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Done:        lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymPending: "•", SymFail: "✖",
		}
	case "mono":
		current = mono()
		return
	default:
		current = classic()
	}
	if noColor {
		c := current
		plain := lipgloss.NewStyle()
		c.Title, c.Muted, c.Accent, c.Success, c.Error, c.Pending, c.Done = plain, plain, plain, plain, plain, plain, plain
		c.BorderColor = lipgloss.NoColor{}
		current = c
	}
}

func classic() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:        lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•", SymFail: "✖",
	}
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain, Done: plain,
		Border:       lipgloss.NormalBorder(),
		BorderColor:  lipgloss.NoColor{},
		BoxUnchecked: "[ ]", BoxChecked: "[X]",
		SymDone: "x", SymPending: "-", SymFail: "!",
	}
}

// Expose what renderers need
func Current() Theme { return current }

package theme

import "github.com/charmbracelet/lipgloss"

var (
	Text     = lipgloss.Color("#cdd6f4")
	Subtext  = lipgloss.Color("#a6adc8")
	Surface  = lipgloss.Color("#45475a")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Mauve    = lipgloss.Color("#cba6f7")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface).
		Foreground(Text).
		Padding(1)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext)
)

// SubjectStyle mirrors the dashboard's subject color coding.
func SubjectStyle(subject string) lipgloss.Style {
	switch subject {
	case "Maths":
		return lipgloss.NewStyle().Foreground(Peach)
	case "Physics":
		return lipgloss.NewStyle().Foreground(Mauve)
	case "Chemistry":
		return lipgloss.NewStyle().Foreground(Green)
	default:
		return lipgloss.NewStyle().Foreground(Text)
	}
}

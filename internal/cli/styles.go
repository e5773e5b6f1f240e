package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

// kvPair is one aligned key/value line inside a card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders pairs with aligned keys.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(cliMuted.Render(p.key + strings.Repeat(" ", width-len(p.key))))
		b.WriteString("  ")
		b.WriteString(p.value)
	}
	return b.String()
}

// renderSuccessCard renders a bordered card with a success title and
// optional detail blocks.
func renderSuccessCard(title string, details ...string) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}).
		Padding(0, 2)

	content := cliSuccess.Render("✓ " + title)
	for _, d := range details {
		if d == "" {
			continue
		}
		content += "\n" + d
	}
	return card.Render(content)
}

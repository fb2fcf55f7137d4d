package repl

import "github.com/charmbracelet/lipgloss"

// Adaptive styles render sensibly on both light and dark terminals.
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})

	echoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
)

// renderLine applies the style for the line's kind.
func renderLine(ln transcriptLine) string {
	switch ln.kind {
	case lineError:
		return errorStyle.Render(ln.text)
	case lineEcho:
		return echoStyle.Render(ln.text)
	default:
		return ln.text
	}
}

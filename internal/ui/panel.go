package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var panelBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1)

// Panel frames content in a rounded border.
func Panel(inner string) string { return panelBorder.Render(inner) }

// PrintPanel writes a framed block of lines to stdout.
func PrintPanel(lines []string) {
	fmt.Println(Panel(strings.Join(lines, "\n")))
}

// ProgressBar renders a Unicode progress bar with counts.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %d/%d",
		strings.Repeat("█", filled), strings.Repeat("░", width-filled), done, total)
}

func OK(msg string) {
	fmt.Println(Current().Success.Render(Current().SymDone + " " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, Current().Error.Render("✖ "+msg))
}

package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kitchen-companion/internal/llm"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

func (m *Menu) title(s string) {
	fmt.Fprintln(m.out, "\n"+titleStyle.Render(s))
}

func (m *Menu) ok(s string) {
	fmt.Fprintln(m.out, successStyle.Render("✔ "+s))
}

func (m *Menu) warn(s string) {
	fmt.Fprintln(m.out, warnStyle.Render("! "+s))
}

func (m *Menu) muted(s string) {
	fmt.Fprintln(m.out, mutedStyle.Render(s))
}

// fail prints an error without terminating the session. Model API errors
// carry a hint for the user.
func (m *Menu) fail(err error) {
	msg := err.Error()
	if apiErr, ok := llm.AsAPIError(err); ok {
		if hint := apiErr.Hint(); hint != "" {
			msg += "\n  " + hint
		}
	}
	fmt.Fprintln(m.out, errorStyle.Render("✖ "+msg))
}

func (m *Menu) panel(lines []string) {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	fmt.Fprintln(m.out, border.Render(strings.Join(lines, "\n")))
}

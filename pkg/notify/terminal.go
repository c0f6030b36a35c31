package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal renders toasts as bordered boxes on a writer, usually stderr.
type Terminal struct {
	w       io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	title   lipgloss.Style
}

func NewTerminal(w io.Writer) *Terminal {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Terminal{
		w:       w,
		success: box.BorderForeground(lipgloss.Color("#12B886")),
		failure: box.BorderForeground(lipgloss.Color("#FA5252")),
		title:   lipgloss.NewStyle().Bold(true),
	}
}

func (t *Terminal) Success(title, message string) {
	t.print(t.success, "✅", title, message)
}

func (t *Terminal) Failure(title, message string) {
	t.print(t.failure, "❌", title, message)
}

func (t *Terminal) print(style lipgloss.Style, icon, title, message string) {
	body := t.title.Render(icon+" "+title) + "\n" + message
	fmt.Fprintln(t.w, style.Render(body))
}

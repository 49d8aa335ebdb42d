package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors used for command output.
var (
	colorSuccess = lipgloss.Color("#00B894") // Green
	colorError   = lipgloss.Color("#D63031") // Red
	colorMuted   = lipgloss.Color("#636E72") // Gray
)

// presenter writes user-facing lines to a writer.
// Styles are bound to a renderer for that writer, so output to a pipe or
// buffer is plain text.
type presenter struct {
	w       io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	plain   bool
}

func newPresenter(w io.Writer, noColor bool) *presenter {
	r := lipgloss.NewRenderer(w)
	return &presenter{
		w:       w,
		success: r.NewStyle().Foreground(colorSuccess),
		failure: r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
		plain:   noColor,
	}
}

// Info prints lines without styling.
func (p *presenter) Info(lines ...string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(p.w, line)
	}
}

// Success prints a confirmation. The first line is highlighted.
func (p *presenter) Success(lines ...string) {
	for i, line := range lines {
		if i == 0 {
			p.styled(p.success, line)
			continue
		}
		_, _ = fmt.Fprintln(p.w, line)
	}
}

// Error prints a rejection message.
func (p *presenter) Error(msg string) {
	p.styled(p.failure, msg)
}

// Notice prints a secondary message.
func (p *presenter) Notice(msg string) {
	p.styled(p.muted, msg)
}

// Prompt prints text without a trailing newline.
func (p *presenter) Prompt(text string) {
	_, _ = fmt.Fprint(p.w, text)
}

// styled renders each line separately; lipgloss pads multi-line blocks.
func (p *presenter) styled(style lipgloss.Style, text string) {
	for _, line := range strings.Split(text, "\n") {
		if p.plain {
			_, _ = fmt.Fprintln(p.w, line)
			continue
		}
		_, _ = fmt.Fprintln(p.w, style.Render(line))
	}
}

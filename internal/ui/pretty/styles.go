// Package pretty renders lint output for terminals with lipgloss.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ANSI palette indexes.
const (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorGrey   = lipgloss.Color("8")
	colorLight  = lipgloss.Color("7")
	colorCyan   = lipgloss.Color("14")
)

// Styles groups the renderers used by the reporters. With color off
// every style renders its input unchanged.
type Styles struct {
	Error, Warning lipgloss.Style

	FilePath, Location, RuleName lipgloss.Style
	Message, SourceLine, Caret   lipgloss.Style

	Success, Failure, Dim, Bold lipgloss.Style

	DiffHeader, DiffHunk, DiffAdd, DiffRemove lipgloss.Style
}

// NewStyles returns colored styles when colorEnabled, plain ones otherwise.
func NewStyles(colorEnabled bool) *Styles {
	plain := lipgloss.NewStyle()
	if !colorEnabled {
		return &Styles{
			Error: plain, Warning: plain,
			FilePath: plain, Location: plain, RuleName: plain,
			Message: plain, SourceLine: plain, Caret: plain,
			Success: plain, Failure: plain, Dim: plain, Bold: plain,
			DiffHeader: plain, DiffHunk: plain, DiffAdd: plain, DiffRemove: plain,
		}
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return plain.Foreground(c) }
	bold := plain.Bold(true)
	return &Styles{
		Error:   fg(colorRed).Bold(true),
		Warning: fg(colorYellow).Bold(true),

		FilePath: bold,
		Location: fg(colorGrey),
		RuleName: fg(colorGrey),

		Message:    plain,
		SourceLine: fg(colorLight),
		Caret:      fg(colorRed),

		Success: fg(colorGreen).Bold(true),
		Failure: fg(colorRed).Bold(true),
		Dim:     fg(colorGrey),
		Bold:    bold,

		DiffHeader: bold,
		DiffHunk:   fg(colorCyan),
		DiffAdd:    fg(colorGreen),
		DiffRemove: fg(colorRed),
	}
}

// IsColorEnabled resolves a --color mode for writer. "always" and "never"
// are absolute. In "auto" mode NO_COLOR disables color, FORCE_COLOR enables
// it, and otherwise color follows whether writer is a terminal.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	f, ok := writer.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// TerminalWidth returns writer's column count, or 0 if it is not a terminal.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil {
		return width
	}
	return 0
}

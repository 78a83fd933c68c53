package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/lint"
	"github.com/yaklabco/lintcore/pkg/suppress"
)

// contextIndent aligns source context under the diagnostic line.
const contextIndent = "        "

// FormatDiagnostic formats a single diagnostic for terminal output.
// A non-empty sourceLine is printed below with a caret at the column.
// width truncates the source line when positive.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, sourceLine string, width int) string {
	var builder strings.Builder

	location := s.FilePath.Render(diag.FilePath) + s.Location.Render(fmt.Sprintf(":%d", diag.Line))
	if diag.Column > 0 {
		location += s.Location.Render(fmt.Sprintf(":%d", diag.Column))
	}

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		s.RuleName.Render("("+diag.RuleName+")"),
	)

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.Column, width))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column, width int) string {
	var builder strings.Builder

	if limit := width - len(contextIndent); width > 0 && limit > 0 && len(line) > limit {
		line = line[:limit]
	}
	line = strings.ReplaceAll(line, "\t", " ")

	builder.WriteString(contextIndent + s.SourceLine.Render(line) + "\n")
	if column > 0 && column <= len(line)+1 {
		builder.WriteString(contextIndent + strings.Repeat(" ", column-1) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatNeedless formats an unused disable comment.
func (s *Styles) FormatNeedless(path string, n suppress.NeedlessDisable) string {
	location := s.FilePath.Render(path) +
		s.Location.Render(fmt.Sprintf(":%d:%d", n.Directive.Line, n.Directive.Column))
	what := n.Rule
	if what == suppress.Wildcard {
		what = "all rules"
	}
	return fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Warning.Render("warning"),
		s.Message.Render("Needless "+n.Directive.Kind.String()+" comment for "+what),
		s.RuleName.Render("(needless-disable)"),
	)
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case issueCount == 1:
		header += s.Dim.Render(" (1 issue)")
	case issueCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}

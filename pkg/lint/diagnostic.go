package lint

import (
	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/document"
)

// Diagnostic represents a single reported problem.
type Diagnostic struct {
	// RuleName is the rule that produced this diagnostic.
	RuleName string `json:"rule"`

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity `json:"severity"`

	// Message is the human-readable description of the issue.
	Message string `json:"message"`

	// FilePath is the path to the document containing the issue.
	FilePath string `json:"file,omitempty"`

	// Line is the 1-based line number where the issue starts.
	Line int `json:"line"`

	// Column is the 1-based column where the issue starts (0 if unknown).
	Column int `json:"column,omitempty"`

	// EndLine is the 1-based line number where the issue ends (0 if unknown).
	EndLine int `json:"endLine,omitempty"`

	// EndColumn is the 1-based column where the issue ends (0 if unknown).
	EndColumn int `json:"endColumn,omitempty"`

	// Word is the offending token, if the rule supplied one.
	Word string `json:"word,omitempty"`
}

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnosticAt starts building a diagnostic at a line.
func NewDiagnosticAt(ruleName, filePath string, line int, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleName: ruleName,
			FilePath: filePath,
			Line:     line,
			Message:  message,
		},
	}
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithRange sets the start column and, when present, the end position.
func (b *DiagnosticBuilder) WithRange(r document.Range) *DiagnosticBuilder {
	b.diag.Column = r.Start.Column
	if r.HasEnd() {
		b.diag.EndLine = r.End.Line
		b.diag.EndColumn = r.End.Column
	}
	return b
}

// WithWord sets the offending token.
func (b *DiagnosticBuilder) WithWord(word string) *DiagnosticBuilder {
	b.diag.Word = word
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}

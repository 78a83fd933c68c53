package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/lint"
	"github.com/yaklabco/lintcore/pkg/severity"
)

// MaxLineLengthRule checks that lines do not exceed a maximum length.
type MaxLineLengthRule struct {
	lint.BaseRule
}

// NewMaxLineLengthRule creates a new max line length rule.
func NewMaxLineLengthRule() *MaxLineLengthRule {
	return &MaxLineLengthRule{
		BaseRule: lint.NewBaseRule(
			"LC004",
			"line-length",
			"Line length should not exceed the configured maximum",
			[]string{"line_length"},
			false,
		),
	}
}

// defaultMaxLineLength is the default maximum line length.
const defaultMaxLineLength = 120

// lengthSeverity is a warning for long lines and an error once a line is
// more than twice the maximum. Args are (length, max).
func lengthSeverity(args []any) (config.Severity, error) {
	if len(args) < 2 {
		return "", nil
	}
	length, ok1 := args[0].(int)
	maxLength, ok2 := args[1].(int)
	if !ok1 || !ok2 {
		return "", fmt.Errorf("line-length severity: unexpected args %v", args)
	}
	if length > 2*maxLength {
		return config.SeverityError, nil
	}
	return config.SeverityWarning, nil
}

// Apply checks that no line exceeds the maximum length.
func (r *MaxLineLengthRule) Apply(ctx *lint.RuleContext) error {
	doc := ctx.Document

	maxLength := ctx.OptionInt("max", defaultMaxLineLength)
	ignoreCodeBlocks := ctx.OptionBool("ignore_code_blocks", true)
	ignoreURLs := ctx.OptionBool("ignore_urls", true)

	// A configured severity wins over the computed one.
	var sev severity.Value
	if ctx.RuleConfig == nil || ctx.RuleConfig.Severity == nil {
		sev = severity.Computed(lengthSeverity)
	}

	var codeLines map[int]bool
	if ignoreCodeBlocks {
		codeLines = codeBlockLines(doc)
	}

	for lineNum := 1; lineNum <= lastLine(doc); lineNum++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if codeLines[lineNum] {
			continue
		}

		content := doc.LineText(lineNum)
		length := utf8.RuneCountInString(content)
		if length <= maxLength {
			continue
		}
		if ignoreURLs && containsURL(content) {
			continue
		}

		err := ctx.Report(lint.Problem{
			Message:     lint.Text("Line length %d exceeds maximum %d"),
			MessageArgs: []any{length, maxLength},
			Severity:    sev,
			Line:        lineNum,
			Position:    lineRange(lineNum, maxLength+1, length+1),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func containsURL(s string) bool {
	return strings.Contains(s, "http://") || strings.Contains(s, "https://")
}

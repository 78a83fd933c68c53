package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/lintcore/pkg/document"
	"github.com/yaklabco/lintcore/pkg/lint"
)

// TrailingWhitespaceRule checks for trailing whitespace on lines.
type TrailingWhitespaceRule struct {
	lint.BaseRule
}

// NewTrailingWhitespaceRule creates a new trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"LC001",
			"no-trailing-spaces",
			"Lines should not have trailing spaces",
			[]string{"whitespace"},
			true,
		),
	}
}

// Apply reports each line ending in spaces or tabs.
func (r *TrailingWhitespaceRule) Apply(ctx *lint.RuleContext) error {
	doc := ctx.Document
	ignoreCodeBlocks := ctx.OptionBool("ignore_code_blocks", false)
	keepHardBreaks := ctx.OptionBool("keep_hard_breaks", false)

	var codeLines map[int]bool
	if ignoreCodeBlocks {
		codeLines = codeBlockLines(doc)
	}

	// A line ending in two or more spaces is a hard break only when the
	// paragraph continues on the next line.
	var breakCandidate *document.Range

	for lineNum := 1; lineNum <= lastLine(doc); lineNum++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("rule cancelled: %w", err)
		}
		if breakCandidate != nil {
			if !codeLines[lineNum] && !isBlank(doc, lineNum) {
				ctx.MarkUnfixable(*breakCandidate)
			}
			breakCandidate = nil
		}
		if codeLines[lineNum] {
			continue
		}

		content := doc.LineText(lineNum)
		trimmed := strings.TrimRight(content, " \t")
		if len(trimmed) == len(content) {
			continue
		}

		rng := lineRange(lineNum, len(trimmed)+1, len(content)+1)
		err := ctx.Report(lint.Problem{
			Message:  lint.Text("Trailing whitespace"),
			Line:     lineNum,
			Position: rng,
			Fix: rewriteLine(doc, func(s string) string {
				return strings.TrimRight(s, " \t")
			}),
		})
		if err != nil {
			return err
		}

		trailing := content[len(trimmed):]
		if keepHardBreaks && trimmed != "" && len(trailing) >= 2 && strings.Trim(trailing, " ") == "" {
			breakCandidate = rng
		}
	}

	return nil
}

// HardTabsRule checks for hard tab characters in the document.
type HardTabsRule struct {
	lint.BaseRule
}

// NewHardTabsRule creates a new hard tabs rule.
func NewHardTabsRule() *HardTabsRule {
	return &HardTabsRule{
		BaseRule: lint.NewBaseRule(
			"LC002",
			"no-hard-tabs",
			"Hard tabs should not be used",
			[]string{"hard_tab", "whitespace"},
			true,
		),
	}
}

// Apply reports the first hard tab of each line. The fix replaces every
// tab on the line.
func (r *HardTabsRule) Apply(ctx *lint.RuleContext) error {
	doc := ctx.Document

	includeCodeBlocks := ctx.OptionBool("code_blocks", true)
	spacesPerTab := ctx.OptionInt("spaces_per_tab", 1)
	if spacesPerTab < 1 {
		spacesPerTab = 1
	}
	spaces := strings.Repeat(" ", spacesPerTab)

	var codeLines map[int]bool
	if !includeCodeBlocks {
		codeLines = codeBlockLines(doc)
	}

	for lineNum := 1; lineNum <= lastLine(doc); lineNum++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("rule cancelled: %w", err)
		}
		if codeLines[lineNum] {
			continue
		}

		content := doc.LineText(lineNum)
		col := strings.IndexByte(content, '\t')
		if col < 0 {
			continue
		}

		err := ctx.Report(lint.Problem{
			Message:     lint.Text("Hard tabs (column %d)"),
			MessageArgs: []any{col + 1},
			Line:        lineNum,
			Position:    lineRange(lineNum, col+1, col+2),
			Word:        "\t",
			Fix: rewriteLine(doc, func(s string) string {
				return strings.ReplaceAll(s, "\t", spaces)
			}),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// MultipleBlankLinesRule checks for consecutive blank lines.
type MultipleBlankLinesRule struct {
	lint.BaseRule
}

// NewMultipleBlankLinesRule creates a new multiple blank lines rule.
func NewMultipleBlankLinesRule() *MultipleBlankLinesRule {
	return &MultipleBlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"LC003",
			"no-multiple-blanks",
			"Multiple consecutive blank lines should be collapsed",
			[]string{"whitespace", "blank_lines"},
			true,
		),
	}
}

// Apply reports each streak of blank lines longer than max_consecutive.
// The fix deletes the excess lines.
func (r *MultipleBlankLinesRule) Apply(ctx *lint.RuleContext) error {
	doc := ctx.Document

	maxConsecutive := ctx.OptionInt("max_consecutive", 1)
	if maxConsecutive < 0 {
		maxConsecutive = 1
	}

	codeLines := codeBlockLines(doc)
	last := lastLine(doc)

	streakStart := 0
	streakCount := 0

	for lineNum := 1; lineNum <= last+1; lineNum++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("rule cancelled: %w", err)
		}

		if lineNum <= last && !codeLines[lineNum] && isBlank(doc, lineNum) {
			if streakCount == 0 {
				streakStart = lineNum
			}
			streakCount++
			continue
		}

		if streakCount > maxConsecutive {
			if err := r.report(ctx, streakStart, streakCount, maxConsecutive); err != nil {
				return err
			}
		}
		streakCount = 0
	}

	return nil
}

func (r *MultipleBlankLinesRule) report(ctx *lint.RuleContext, streakStart, streakCount, maxConsecutive int) error {
	doc := ctx.Document
	firstExcess := streakStart + maxConsecutive
	lastExcess := streakStart + streakCount - 1

	return ctx.Report(lint.Problem{
		Message:     lint.Text("Multiple consecutive blank lines (found %d, max %d)"),
		MessageArgs: []any{streakCount, maxConsecutive},
		Line:        firstExcess,
		Position: &document.Range{
			Start: document.Position{Line: firstExcess, Column: 1},
			End:   document.Position{Line: lastExcess, Column: 1},
		},
		Fix: func(current document.Range) (document.Position, error) {
			return doc.ReplaceLines(current.Start.Line, current.End.Line, nil)
		},
	})
}

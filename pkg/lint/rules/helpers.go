package rules

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/lintcore/pkg/document"
)

// lastLine returns the last real line of doc, skipping the empty line that
// follows a final terminator.
func lastLine(doc *document.Document) int {
	n := doc.LineCount()
	if n > 1 && doc.Lines[n-1].StartOffset == len(doc.Content) {
		n--
	}
	return n
}

// isBlank returns true if line holds only spaces and tabs.
func isBlank(doc *document.Document, line int) bool {
	return strings.TrimLeft(doc.LineText(line), " \t") == ""
}

// codeBlockLines returns the set of lines holding code block content.
func codeBlockLines(doc *document.Document) map[int]bool {
	lines := make(map[int]bool)
	root := goldmark.New().Parser().Parse(text.NewReader(doc.Content))

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			segs := n.Lines()
			for i := range segs.Len() {
				lines[doc.PositionAt(segs.At(i).Start).Line] = true
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return lines
}

// lineRange returns the range of columns [startCol, endCol) on line.
func lineRange(line, startCol, endCol int) *document.Range {
	return &document.Range{
		Start: document.Position{Line: line, Column: startCol},
		End:   document.Position{Line: line, Column: endCol},
	}
}

// rewriteLine returns a fix replacing the current line with edit(line text).
func rewriteLine(doc *document.Document, edit func(string) string) func(document.Range) (document.Position, error) {
	return func(current document.Range) (document.Position, error) {
		line := current.Start.Line
		return doc.ReplaceLines(line, line, []string{edit(doc.LineText(line))})
	}
}

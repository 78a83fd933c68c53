package document

import (
	"bytes"
	"sort"
)

// LineInfo locates one line in Document.Content.
//
//	StartOffset <= NewlineStart <= EndOffset
//
// Content[NewlineStart:EndOffset] is the terminator ("\n", "\r\n" or empty
// for a final unterminated line).
type LineInfo struct {
	StartOffset  int
	NewlineStart int
	EndOffset    int
}

// HasNewline reports whether the line has a terminator.
func (l LineInfo) HasNewline() bool { return l.NewlineStart < l.EndOffset }

// BuildLines splits content on LF, treating a preceding CR as part of the
// terminator. Non-empty content always yields a final entry after the last
// terminator, which is empty when content ends with a newline.
func BuildLines(content []byte) []LineInfo {
	lines := make([]LineInfo, 0, bytes.Count(content, []byte{'\n'})+1)
	if len(content) == 0 {
		return lines
	}

	start := 0
	for {
		i := bytes.IndexByte(content[start:], '\n')
		if i < 0 {
			break
		}
		nl := start + i
		term := nl
		if nl > start && content[nl-1] == '\r' {
			term = nl - 1
		}
		lines = append(lines, LineInfo{StartOffset: start, NewlineStart: term, EndOffset: nl + 1})
		start = nl + 1
	}
	return append(lines, LineInfo{StartOffset: start, NewlineStart: len(content), EndOffset: len(content)})
}

// LineCount is the number of entries in Lines.
func (d *Document) LineCount() int { return len(d.Lines) }

// LineAt maps a byte offset to a 1-based line and byte column. Offsets at or
// past the end land on the last line; negative offsets give (0, 0).
func (d *Document) LineAt(offset int) (line, col int) {
	n := len(d.Lines)
	if offset < 0 || n == 0 {
		return 0, 0
	}

	idx := n - 1
	if offset < len(d.Content) {
		idx = min(sort.Search(n, func(i int) bool { return d.Lines[i].EndOffset > offset }), n-1)
	}

	li := d.Lines[idx]
	if offset < li.StartOffset {
		return 0, 0
	}
	return idx + 1, offset - li.StartOffset + 1
}

// PositionAt is LineAt as a Position.
func (d *Document) PositionAt(offset int) Position {
	line, col := d.LineAt(offset)
	return Position{Line: line, Column: col}
}

// Offset maps a 1-based line and column to a byte offset. A column may point
// one past the terminator; anything further is out of range.
func (d *Document) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(d.Lines) || col < 1 {
		return 0, false
	}
	li := d.Lines[line-1]
	offset := li.StartOffset + col - 1
	if offset > li.EndOffset {
		return 0, false
	}
	return offset, true
}

// LineContent returns line's bytes without the terminator, or nil when line
// is out of range. The slice aliases Content.
func (d *Document) LineContent(line int) []byte {
	if line < 1 || line > len(d.Lines) {
		return nil
	}
	li := d.Lines[line-1]
	return d.Content[li.StartOffset:li.NewlineStart]
}

// LineText is LineContent as a string.
func (d *Document) LineText(line int) string {
	return string(d.LineContent(line))
}

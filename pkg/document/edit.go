package document

import (
	"bytes"
	"fmt"
	"strings"
)

// TextEdit represents a single text replacement in a document.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// ValidationError describes an invalid edit.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ValidateEdit checks that an edit has a valid range for the given content length.
func ValidateEdit(edit TextEdit, contentLen int) error {
	if edit.StartOffset < 0 {
		return &ValidationError{Edit: edit, Message: "start offset is negative"}
	}
	if edit.EndOffset < edit.StartOffset {
		return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
	}
	if edit.EndOffset > contentLen {
		return &ValidationError{
			Edit:    edit,
			Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
		}
	}
	return nil
}

// ApplyEdits applies a sorted, non-overlapping slice of edits to content.
// Returns the modified content.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	// Estimate result size.
	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range edits {
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes()
}

// Apply performs a single edit in place and rebuilds the line table.
// It returns the position just past the inserted text.
func (d *Document) Apply(edit TextEdit) (Position, error) {
	if err := ValidateEdit(edit, len(d.Content)); err != nil {
		return Position{}, err
	}

	d.Content = ApplyEdits(d.Content, []TextEdit{edit})
	d.Lines = BuildLines(d.Content)

	return d.PositionAt(edit.StartOffset + len(edit.NewText)), nil
}

// Replace replaces the text covered by r with text.
// An open range is treated as an insertion at its start.
func (d *Document) Replace(r Range, text string) (Position, error) {
	start, ok := d.Offset(r.Start.Line, r.Start.Column)
	if !ok {
		return Position{}, fmt.Errorf("start position %s out of range", r.Start)
	}

	end := start
	if r.HasEnd() {
		end, ok = d.Offset(r.End.Line, r.End.Column)
		if !ok {
			return Position{}, fmt.Errorf("end position %s out of range", r.End)
		}
	}

	return d.Apply(TextEdit{StartOffset: start, EndOffset: end, NewText: text})
}

// ReplaceLines replaces lines [start, end] (1-based, inclusive) with lines.
// Line terminators are preserved; passing no lines deletes the range.
// It returns the end position of the replacement: the last inserted line,
// or the line before start when lines were only removed.
func (d *Document) ReplaceLines(start, end int, lines []string) (Position, error) {
	if start < 1 || end < start || end > len(d.Lines) {
		return Position{}, fmt.Errorf("line range %d-%d out of range (1-%d)", start, end, len(d.Lines))
	}

	newline := d.newline(end)
	first := d.Lines[start-1]
	last := d.Lines[end-1]

	edit := TextEdit{StartOffset: first.StartOffset, EndOffset: last.EndOffset}

	if len(lines) == 0 {
		// Removing a final unterminated line also drops the terminator before it.
		if !last.HasNewline() && start > 1 {
			edit.StartOffset = d.Lines[start-2].NewlineStart
		}
	} else {
		edit.NewText = strings.Join(lines, newline)
		if last.HasNewline() {
			edit.NewText += newline
		}
	}

	if _, err := d.Apply(edit); err != nil {
		return Position{}, err
	}

	endLine := start - 1 + len(lines)
	if endLine < 1 {
		return Position{Line: endLine, Column: 1}, nil
	}
	return Position{Line: endLine, Column: len(d.LineContent(endLine)) + 1}, nil
}

// newline returns the terminator used around line, defaulting to LF.
func (d *Document) newline(line int) string {
	for _, idx := range []int{line - 1, 0} {
		if idx < 0 || idx >= len(d.Lines) {
			continue
		}
		info := d.Lines[idx]
		if info.HasNewline() {
			return string(d.Content[info.NewlineStart:info.EndOffset])
		}
	}
	return "\n"
}

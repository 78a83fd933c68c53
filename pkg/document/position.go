// Package document holds the text of a single source document and maps
// between byte offsets and 1-based line/column positions.
package document

import "fmt"

// Position represents a 1-based line and column in a document.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// IsZero returns true if the position was never set.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Shift moves the position by delta lines when it lies after afterLine.
func (p Position) Shift(afterLine, delta int) Position {
	if p.Line > afterLine {
		p.Line += delta
	}
	return p
}

// Range represents a span of a document in line/column positions.
// A zero End means the range is open.
type Range struct {
	Start Position
	End   Position
}

// HasEnd returns true if the range carries an explicit end position.
func (r Range) HasEnd() bool {
	return !r.End.IsZero()
}

// IsValid returns true if both start and end positions are valid.
func (r Range) IsValid() bool {
	return r.Start.IsValid() && r.End.IsValid()
}

// IsSingleLine returns true if start and end are on the same line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Shift moves both ends of the range by delta lines when they lie after afterLine.
func (r Range) Shift(afterLine, delta int) Range {
	r.Start = r.Start.Shift(afterLine, delta)
	if r.HasEnd() {
		r.End = r.End.Shift(afterLine, delta)
	}
	return r
}

func (r Range) String() string {
	if !r.HasEnd() {
		return r.Start.String()
	}
	return r.Start.String() + "-" + r.End.String()
}

// IndexRange is a pair of byte offsets relative to the start of a Node.
type IndexRange struct {
	// Index is the offset where the range begins (inclusive).
	Index int

	// EndIndex is the offset where the range ends (exclusive).
	EndIndex int
}

// SourceRange represents a byte range in the document content.
type SourceRange struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// Contains returns true if the given offset is within this range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

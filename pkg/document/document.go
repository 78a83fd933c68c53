package document

// Document is the mutable text of one source file together with its line table.
//
// A Document is owned by a single analysis pass. Fix callbacks edit it in
// place through Apply, Replace and ReplaceLines, which keep Lines current.
type Document struct {
	// Path is the logical file path (for diagnostics only).
	Path string

	// Content is the current raw content.
	Content []byte

	// Lines holds line metadata for Content.
	Lines []LineInfo
}

// New creates a Document for the given path and content.
// The content is copied so later edits never alias the caller's buffer.
func New(path string, content []byte) *Document {
	buf := make([]byte, len(content))
	copy(buf, content)

	return &Document{
		Path:    path,
		Content: buf,
		Lines:   BuildLines(buf),
	}
}

// Text returns the current content as a string.
func (d *Document) Text() string {
	return string(d.Content)
}

// RangeOf converts an absolute byte range to a line/column Range.
func (d *Document) RangeOf(r SourceRange) Range {
	return Range{
		Start: d.PositionAt(r.StartOffset),
		End:   d.PositionAt(r.EndOffset),
	}
}

// Node is a located region of a Document, such as a syntax element found
// by a rule. It resolves offsets relative to its own start.
type Node struct {
	// Doc is the document the node belongs to.
	Doc *Document

	// Source is the absolute byte range of the node.
	Source SourceRange
}

// NewNode creates a Node covering bytes [start, end) of doc.
func NewNode(doc *Document, start, end int) *Node {
	return &Node{
		Doc:    doc,
		Source: SourceRange{StartOffset: start, EndOffset: end},
	}
}

// RangeBy resolves an IndexRange relative to the node into a Range.
// A nil IndexRange resolves to the whole node.
// Returns false if the node is detached or the offsets fall outside it.
func (n *Node) RangeBy(idx *IndexRange) (Range, bool) {
	if n == nil || n.Doc == nil {
		return Range{}, false
	}

	if idx == nil {
		return n.Doc.RangeOf(n.Source), true
	}

	if idx.Index < 0 || idx.EndIndex < idx.Index || idx.EndIndex > n.Source.Len() {
		return Range{}, false
	}

	return n.Doc.RangeOf(SourceRange{
		StartOffset: n.Source.StartOffset + idx.Index,
		EndOffset:   n.Source.StartOffset + idx.EndIndex,
	}), true
}

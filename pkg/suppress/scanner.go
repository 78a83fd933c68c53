package suppress

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/lintcore/pkg/document"
)

// DefaultPrefix is the directive prefix recognised in HTML comments,
// e.g. <!-- lintcore-disable no-hard-tabs -->.
const DefaultPrefix = "lintcore"

// DirectiveKind identifies what a directive comment does.
type DirectiveKind int

const (
	// KindDisable suppresses from its line until a matching enable.
	KindDisable DirectiveKind = iota
	// KindEnable closes ranges opened by KindDisable.
	KindEnable
	// KindDisableLine suppresses its own line.
	KindDisableLine
	// KindDisableNextLine suppresses the following line.
	KindDisableNextLine
)

func (k DirectiveKind) String() string {
	switch k {
	case KindDisable:
		return "disable"
	case KindEnable:
		return "enable"
	case KindDisableLine:
		return "disable-line"
	case KindDisableNextLine:
		return "disable-next-line"
	default:
		return fmt.Sprintf("DirectiveKind(%d)", int(k))
	}
}

// Directive is one disable or enable comment found in a document.
type Directive struct {
	// ID is unique within one scan, starting at 1.
	ID int

	// Kind is the directive type.
	Kind DirectiveKind

	// Line is the line the comment starts on.
	Line int

	// Column is the column the comment starts on.
	Column int

	// Rules lists the named rules; empty means every rule.
	Rules []string
}

// ScanOptions configures a Scanner.
type ScanOptions struct {
	// Prefix replaces DefaultPrefix when set.
	Prefix string

	// Normalize maps a rule id or alias written in a comment to the canonical
	// rule name. Nil keeps names as written.
	Normalize func(string) string

	// GFM enables GitHub Flavored Markdown parsing.
	GFM bool
}

// Scanner builds the initial RangeIndex of a document from its directive comments.
type Scanner struct {
	md        goldmark.Markdown
	pattern   *regexp.Regexp
	normalize func(string) string
}

// NewScanner creates a Scanner.
func NewScanner(opts ScanOptions) *Scanner {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	var mdOpts []goldmark.Option
	if opts.GFM {
		mdOpts = append(mdOpts, goldmark.WithExtensions(extension.GFM))
	}

	return &Scanner{
		md: goldmark.New(mdOpts...),
		pattern: regexp.MustCompile(`<!--\s*` + regexp.QuoteMeta(prefix) +
			`-(disable-next-line|disable-line|disable|enable)(\s[^>]*?)?\s*-->`),
		normalize: opts.Normalize,
	}
}

// Scan finds directive comments in doc and returns the resulting index and
// the directives in document order. Comments inside code are ignored.
func (s *Scanner) Scan(doc *document.Document) (*RangeIndex, []Directive) {
	directives := s.directives(doc)
	return buildIndex(directives), directives
}

// directives collects directive comments from HTML nodes of the Markdown AST.
func (s *Scanner) directives(doc *document.Document) []Directive {
	root := s.md.Parser().Parse(text.NewReader(doc.Content))

	type found struct {
		offset int
		kind   DirectiveKind
		rules  []string
	}
	var hits []found

	collect := func(seg text.Segment) {
		value := seg.Value(doc.Content)
		for _, m := range s.pattern.FindAllSubmatchIndex(value, -1) {
			hit := found{
				offset: seg.Start + m[0],
				kind:   parseKind(string(value[m[2]:m[3]])),
			}
			if m[4] >= 0 {
				for _, rule := range strings.Fields(string(value[m[4]:m[5]])) {
					rule = strings.TrimSuffix(rule, ",")
					if s.normalize != nil {
						rule = s.normalize(rule)
					}
					if rule != "" {
						hit.rules = append(hit.rules, rule)
					}
				}
			}
			hits = append(hits, hit)
		}
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.HTMLBlock:
			lines := node.Lines()
			for i := range lines.Len() {
				collect(lines.At(i))
			}
			if node.HasClosure() {
				collect(node.ClosureLine)
			}
		case *ast.RawHTML:
			for i := range node.Segments.Len() {
				collect(node.Segments.At(i))
			}
		}
		return ast.WalkContinue, nil
	})

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].offset < hits[j].offset
	})

	directives := make([]Directive, 0, len(hits))
	for i, hit := range hits {
		pos := doc.PositionAt(hit.offset)
		directives = append(directives, Directive{
			ID:     i + 1,
			Kind:   hit.kind,
			Line:   pos.Line,
			Column: pos.Column,
			Rules:  hit.rules,
		})
	}
	return directives
}

func parseKind(s string) DirectiveKind {
	switch s {
	case "enable":
		return KindEnable
	case "disable-line":
		return KindDisableLine
	case "disable-next-line":
		return KindDisableNextLine
	default:
		return KindDisable
	}
}

// keys returns the index keys a directive targets.
func (d Directive) keys() []string {
	if len(d.Rules) == 0 {
		return []string{Wildcard}
	}
	return d.Rules
}

func restrictTo(key string) []string {
	if key == Wildcard {
		return nil
	}
	return []string{key}
}

// buildIndex turns directives into disabled ranges. A disable stays open
// until an enable for the same key (a bare enable closes every open key).
func buildIndex(directives []Directive) *RangeIndex {
	type open struct {
		start int
		id    int
	}

	pending := make(map[string]open)
	byKey := make(map[string][]DisabledRange)

	closeKey := func(key string, end *int) {
		o, ok := pending[key]
		if !ok {
			return
		}
		delete(pending, key)
		byKey[key] = append(byKey[key], DisabledRange{
			Start:       o.start,
			End:         end,
			Rules:       restrictTo(key),
			DirectiveID: o.id,
		})
	}

	for _, d := range directives {
		switch d.Kind {
		case KindDisable:
			for _, key := range d.keys() {
				if _, ok := pending[key]; !ok {
					pending[key] = open{start: d.Line, id: d.ID}
				}
			}
		case KindEnable:
			if len(d.Rules) == 0 {
				for key := range pending {
					closeKey(key, Through(d.Line))
				}
				continue
			}
			for _, key := range d.Rules {
				closeKey(key, Through(d.Line))
			}
		case KindDisableLine, KindDisableNextLine:
			line := d.Line
			if d.Kind == KindDisableNextLine {
				line++
			}
			for _, key := range d.keys() {
				byKey[key] = append(byKey[key], DisabledRange{
					Start:       line,
					End:         Through(line),
					Rules:       restrictTo(key),
					DirectiveID: d.ID,
				})
			}
		}
	}

	for key := range pending {
		closeKey(key, nil)
	}

	index := NewRangeIndex()
	for key, list := range byKey {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Start < list[j].Start
		})
		for _, r := range list {
			index.Add(key, r)
		}
	}
	return index
}

package lint

import (
	"fmt"
	"strings"

	"github.com/yaklabco/lintcore/pkg/document"
	"github.com/yaklabco/lintcore/pkg/fix"
	"github.com/yaklabco/lintcore/pkg/severity"
)

// Node is a located syntax element able to resolve offsets inside it.
// document.Node is the standard implementation.
type Node interface {
	RangeBy(idx *document.IndexRange) (document.Range, bool)
}

// Problem is a single rule-detected issue awaiting severity resolution and
// the suppression check.
//
// The report line comes from Line, else Position, else Node resolved
// through IndexRange; one of them is required.
type Problem struct {
	// RuleName names the reporting rule. RuleContext.Report fills it in.
	RuleName string

	// Message is the diagnostic text or a formatter producing it.
	Message Message

	// MessageArgs are the placeholder values for Message.
	MessageArgs []any

	// Severity overrides the rule severity when set.
	Severity severity.Value

	// Line is an explicit 1-based report line.
	Line int

	// Position is an explicit range. A fix needs its End to be set.
	Position *document.Range

	// Node locates the problem when Line and Position are absent.
	Node Node

	// IndexRange narrows Node to offsets relative to its start.
	IndexRange *document.IndexRange

	// Fix edits the document to resolve the problem.
	Fix fix.Func

	// Unfixable registers the fix but never runs it.
	Unfixable bool

	// Word is the offending token, for highlighting.
	Word string
}

// Message is either literal text with %s/%d placeholders or a formatter
// function. The zero Message is unset.
type Message struct {
	text   string
	format func(args ...any) string
}

// Text returns a literal message.
func Text(s string) Message {
	return Message{text: s}
}

// Formatter returns a message produced by fn from the message args.
func Formatter(fn func(args ...any) string) Message {
	return Message{format: fn}
}

// IsSet returns true if the message carries text or a formatter.
func (m Message) IsSet() bool {
	return m.format != nil || m.text != ""
}

// Render produces the final message text.
func (m Message) Render(args []any) string {
	if m.format != nil {
		return m.format(args...)
	}
	return FormatMessage(m.text, args)
}

// FormatMessage replaces %s and %d placeholders left to right with args.
// Placeholders beyond the supplied args stay literal, extra args are
// dropped, and %% yields a single percent sign.
func FormatMessage(template string, args []any) string {
	if !strings.Contains(template, "%") {
		return template
	}

	var out strings.Builder
	out.Grow(len(template))

	next := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 >= len(template) {
			out.WriteByte(c)
			continue
		}

		switch verb := template[i+1]; verb {
		case 's', 'd':
			if next >= len(args) {
				out.WriteByte(c)
				continue
			}
			out.WriteString(formatArg(verb, args[next]))
			next++
			i++
		case '%':
			out.WriteByte('%')
			i++
		default:
			out.WriteByte(c)
		}
	}

	return out.String()
}

func formatArg(verb byte, arg any) string {
	if verb == 'd' {
		switch v := arg.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return fmt.Sprintf("%d", v)
		case float32:
			return fmt.Sprintf("%d", int64(v))
		case float64:
			return fmt.Sprintf("%d", int64(v))
		}
	}
	return fmt.Sprint(arg)
}

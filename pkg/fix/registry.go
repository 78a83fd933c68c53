// Package fix collects deferred fixes per rule and applies them to a document
// while keeping the suppression index aligned with the edited text.
package fix

import "github.com/yaklabco/lintcore/pkg/document"

// Func edits the document for one problem. It receives the problem's range
// in current document coordinates and returns the end position of the
// edited text, from which the applier derives the line delta.
type Func func(current document.Range) (document.Position, error)

// Entry is one deferred fix.
type Entry struct {
	// RuleName is the rule that reported the problem.
	RuleName string

	// Range is the problem's range. The applier keeps it in current
	// document coordinates as earlier fixes add or remove lines.
	Range document.Range

	// Callback performs the edit.
	Callback Func

	// Args are the problem's message arguments.
	Args []any

	// Unfixable marks an entry that must never run.
	Unfixable bool
}

// Attempt records whether one entry was applied.
type Attempt struct {
	Range document.Range
	Fixed bool
}

// Registry holds deferred fixes grouped by rule, in report order.
type Registry struct {
	order   []string
	entries map[string][]*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string][]*Entry)}
}

// Register appends entry to its rule's list.
func (r *Registry) Register(entry Entry) {
	if _, ok := r.entries[entry.RuleName]; !ok {
		r.order = append(r.order, entry.RuleName)
	}
	e := entry
	r.entries[entry.RuleName] = append(r.entries[entry.RuleName], &e)
}

// MarkUnfixable flags every entry of rule whose range equals rng.
// It returns true if any entry was flagged.
func (r *Registry) MarkUnfixable(rule string, rng document.Range) bool {
	marked := false
	for _, e := range r.entries[rule] {
		if e.Range == rng {
			e.Unfixable = true
			marked = true
		}
	}
	return marked
}

// Rules returns rule names in the order their first fix was registered.
func (r *Registry) Rules() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Entries returns a copy of the entries registered for rule.
func (r *Registry) Entries(rule string) []Entry {
	list := r.entries[rule]
	out := make([]Entry, len(list))
	for i, e := range list {
		out[i] = *e
	}
	return out
}

// Len returns the total number of registered entries.
func (r *Registry) Len() int {
	n := 0
	for _, list := range r.entries {
		n += len(list)
	}
	return n
}

// shift moves every entry boundary after afterLine by delta lines. When
// lines were removed, entries lying wholly inside the removed lines no
// longer address any text and become unfixable. applied is the entry whose
// fix caused the shift.
func (r *Registry) shift(applied *Entry, afterLine, delta int) {
	removedFrom := afterLine + delta + 1
	for _, list := range r.entries {
		for _, e := range list {
			if e == applied {
				continue
			}
			if delta < 0 && !e.Unfixable && within(e.Range, removedFrom, afterLine) {
				e.Unfixable = true
			}
			e.Range = e.Range.Shift(afterLine, delta)
		}
	}
}

func within(rng document.Range, first, last int) bool {
	end := rng.Start.Line
	if rng.HasEnd() {
		end = rng.End.Line
	}
	return rng.Start.Line >= first && end <= last
}

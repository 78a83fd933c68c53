package fix

import (
	"context"
	"fmt"

	"github.com/yaklabco/lintcore/internal/logging"
	"github.com/yaklabco/lintcore/pkg/document"
	"github.com/yaklabco/lintcore/pkg/suppress"
)

// Error reports a fix callback failure.
type Error struct {
	Rule  string
	Range document.Range
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fix for rule %q at %s: %v", e.Rule, e.Range, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Summary describes one fix pass.
type Summary struct {
	// Attempts lists every entry per rule with whether it was applied.
	Attempts map[string][]Attempt

	// Applied counts executed fixes.
	Applied int

	// Skipped counts suppressed or unfixable entries.
	Skipped int
}

func (s *Summary) record(rule string, rng document.Range, fixed bool) {
	s.Attempts[rule] = append(s.Attempts[rule], Attempt{Range: rng, Fixed: fixed})
	if fixed {
		s.Applied++
	} else {
		s.Skipped++
	}
}

// Applier runs the fixes of a Registry against a document.
type Applier struct {
	// Log receives suppression matches found while re-checking entries.
	Log *suppress.Log

	// IgnoreDisables runs fixes inside disabled ranges and leaves the
	// index untouched.
	IgnoreDisables bool
}

// ApplyAll drains reg rule by rule in registration order, each rule's
// entries in report order. Every entry is re-checked against the current
// state of index, since earlier fixes may have shifted its ranges. After a
// fix that changes the line count, later ranges in index and later entries
// in reg are shifted by the same delta. Entries left inside lines a fix
// removed are skipped.
//
// A failing callback stops the pass. Edits and offsets already applied stay
// in place and the partial summary is returned with the error.
func (a *Applier) ApplyAll(ctx context.Context, reg *Registry, index *suppress.RangeIndex) (*Summary, error) {
	logger := logging.FromContext(ctx)
	checker := suppress.NewChecker(index, a.Log, a.IgnoreDisables)

	summary := &Summary{Attempts: make(map[string][]Attempt)}

	for _, rule := range reg.order {
		for _, entry := range reg.entries[rule] {
			current := entry.Range

			suppressed := checker.Check(rule, current.Start.Line)
			if suppressed || entry.Unfixable {
				summary.record(rule, current, false)
				logger.Debug("fix skipped",
					logging.FieldRule, rule,
					logging.FieldLine, current.Start.Line,
					logging.FieldSuppressed, suppressed)
				continue
			}

			newEnd, err := entry.Callback(current)
			if err != nil {
				summary.record(rule, current, false)
				return summary, &Error{Rule: rule, Range: current, Err: err}
			}
			summary.record(rule, current, true)

			delta := newEnd.Line - current.End.Line
			logger.Debug("fix applied",
				logging.FieldRule, rule,
				logging.FieldLine, current.Start.Line,
				logging.FieldDelta, delta)

			if delta == 0 {
				continue
			}
			if !a.IgnoreDisables {
				index.ApplyOffset(current.End.Line, delta)
			}
			reg.shift(entry, current.End.Line, delta)
		}
	}

	return summary, nil
}

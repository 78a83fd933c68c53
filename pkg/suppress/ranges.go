// Package suppress tracks in-source disable directives as line ranges and
// decides whether a rule report falls inside one.
package suppress

import (
	"slices"
	"sort"
)

// Wildcard is the index key for ranges that apply to every rule.
const Wildcard = "all"

// DisabledRange is a line interval within which reports are suppressed.
type DisabledRange struct {
	// Start is the first suppressed line (1-based).
	Start int

	// End is the last suppressed line, or nil for "through end of document".
	End *int

	// Rules restricts the range to the named rules. Nil applies to every rule.
	Rules []string

	// DirectiveID identifies the directive that produced the range (0 if none).
	DirectiveID int
}

// Through returns a pointer to line, for building closed ranges.
func Through(line int) *int {
	return &line
}

// Covers returns true if line falls inside the range.
func (r DisabledRange) Covers(line int) bool {
	return r.Start <= line && (r.End == nil || *r.End >= line)
}

// AppliesTo returns true if the range is not restricted or names rule.
func (r DisabledRange) AppliesTo(rule string) bool {
	return r.Rules == nil || slices.Contains(r.Rules, rule)
}

// clone copies the range so that End and Rules are not shared.
func (r DisabledRange) clone() DisabledRange {
	out := DisabledRange{Start: r.Start, DirectiveID: r.DirectiveID}
	if r.End != nil {
		out.End = Through(*r.End)
	}
	if r.Rules != nil {
		out.Rules = slices.Clone(r.Rules)
	}
	return out
}

// RangeIndex maps a rule id, or Wildcard, to its ordered disabled ranges.
//
// A RangeIndex belongs to one document pass. The fix applier is its only
// writer; everything else reads it through a View.
type RangeIndex struct {
	ranges map[string][]DisabledRange
}

// NewRangeIndex creates an empty index.
func NewRangeIndex() *RangeIndex {
	return &RangeIndex{ranges: make(map[string][]DisabledRange)}
}

// Add appends a copy of r to the list stored under key.
func (x *RangeIndex) Add(key string, r DisabledRange) {
	x.ranges[key] = append(x.ranges[key], r.clone())
}

// Keys returns the index keys in sorted order.
func (x *RangeIndex) Keys() []string {
	keys := make([]string, 0, len(x.ranges))
	for k := range x.ranges {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Ranges returns a copy of the ranges stored under key only.
func (x *RangeIndex) Ranges(key string) []DisabledRange {
	list := x.ranges[key]
	out := make([]DisabledRange, len(list))
	for i, r := range list {
		out[i] = r.clone()
	}
	return out
}

// RangesFor returns the rule-specific ranges followed by the wildcard ranges.
// Both lists apply; a rule can be suppressed by either.
func (x *RangeIndex) RangesFor(rule string) []DisabledRange {
	out := x.Ranges(rule)
	if rule != Wildcard {
		out = append(out, x.Ranges(Wildcard)...)
	}
	return out
}

// Contains returns true if any range for rule covers line.
func (x *RangeIndex) Contains(rule string, line int) bool {
	for _, r := range x.RangesFor(rule) {
		if r.Covers(line) && r.AppliesTo(rule) {
			return true
		}
	}
	return false
}

// ApplyOffset shifts every range boundary that lies strictly after afterLine
// by delta lines. Ranges that overlap afterLine keep their start.
func (x *RangeIndex) ApplyOffset(afterLine, delta int) {
	if delta == 0 {
		return
	}
	for _, list := range x.ranges {
		for i := range list {
			if list[i].Start > afterLine {
				list[i].Start += delta
			}
			if list[i].End != nil && *list[i].End > afterLine {
				*list[i].End += delta
			}
		}
	}
}

// Clone returns a deep copy of the index.
func (x *RangeIndex) Clone() *RangeIndex {
	out := NewRangeIndex()
	for key := range x.ranges {
		out.ranges[key] = x.Ranges(key)
	}
	return out
}

// Snapshot returns a deep copy of the index contents keyed like the index.
func (x *RangeIndex) Snapshot() map[string][]DisabledRange {
	out := make(map[string][]DisabledRange, len(x.ranges))
	for key := range x.ranges {
		out[key] = x.Ranges(key)
	}
	return out
}

// Len returns the total number of ranges across all keys.
func (x *RangeIndex) Len() int {
	n := 0
	for _, list := range x.ranges {
		n += len(list)
	}
	return n
}

// View returns a read-only view of the index.
func (x *RangeIndex) View() View {
	return View{index: x}
}

// Lookup is the read side of a RangeIndex.
type Lookup interface {
	RangesFor(rule string) []DisabledRange
}

// View is a read-only handle on a RangeIndex. It sees later offset updates
// but cannot make them.
type View struct {
	index *RangeIndex
}

// RangesFor returns the rule-specific ranges followed by the wildcard ranges.
func (v View) RangesFor(rule string) []DisabledRange {
	if v.index == nil {
		return nil
	}
	return v.index.RangesFor(rule)
}

// Contains returns true if any range for rule covers line.
func (v View) Contains(rule string, line int) bool {
	if v.index == nil {
		return false
	}
	return v.index.Contains(rule, line)
}

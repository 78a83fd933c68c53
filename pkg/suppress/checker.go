package suppress

// LogEntry records a report that fell inside a disabled range.
type LogEntry struct {
	// Rule is the rule that reported.
	Rule string

	// Line is the line the report was checked at.
	Line int

	// DirectiveID is the directive that produced the matching range (0 if none).
	DirectiveID int
}

// Log is an append-only list of suppression matches for one document.
type Log struct {
	entries []LogEntry
}

// Append records a match.
func (l *Log) Append(entry LogEntry) {
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of the recorded matches in order.
func (l *Log) Entries() []LogEntry {
	if l == nil {
		return nil
	}
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded matches.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Checker decides whether a report is suppressed and logs every match.
type Checker struct {
	lookup         Lookup
	log            *Log
	ignoreDisables bool
}

// NewChecker creates a Checker reading ranges from lookup and writing to log.
// With ignoreDisables, matches are still logged but never suppress.
func NewChecker(lookup Lookup, log *Log, ignoreDisables bool) *Checker {
	if log == nil {
		log = &Log{}
	}
	return &Checker{
		lookup:         lookup,
		log:            log,
		ignoreDisables: ignoreDisables,
	}
}

// Log returns the log the checker writes to.
func (c *Checker) Log() *Log {
	return c.log
}

// Check reports whether a report for rule at line is suppressed.
// The first matching range wins unless disables are ignored, in which case
// every matching range is logged.
func (c *Checker) Check(rule string, line int) bool {
	for _, r := range c.lookup.RangesFor(rule) {
		if !r.Covers(line) || !r.AppliesTo(rule) {
			continue
		}

		c.log.Append(LogEntry{Rule: rule, Line: line, DirectiveID: r.DirectiveID})

		if !c.ignoreDisables {
			return true
		}
	}
	return false
}

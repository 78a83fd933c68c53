package suppress

// NeedlessDisable is a disable directive, or one rule named by it, that
// matched no report.
type NeedlessDisable struct {
	// Directive is the unused comment.
	Directive Directive

	// Rule is the unused rule name, or Wildcard for a directive without rules.
	Rule string
}

// Needless returns the disable directives that never matched a report in log.
// A directive naming several rules is reported once per unused rule.
// Enable directives are never needless.
func Needless(directives []Directive, log *Log) []NeedlessDisable {
	type use struct {
		id   int
		rule string
	}

	usedByID := make(map[int]bool)
	usedByRule := make(map[use]bool)
	for _, entry := range log.Entries() {
		if entry.DirectiveID == 0 {
			continue
		}
		usedByID[entry.DirectiveID] = true
		usedByRule[use{id: entry.DirectiveID, rule: entry.Rule}] = true
	}

	var out []NeedlessDisable
	for _, d := range directives {
		if d.Kind == KindEnable {
			continue
		}
		if len(d.Rules) == 0 {
			if !usedByID[d.ID] {
				out = append(out, NeedlessDisable{Directive: d, Rule: Wildcard})
			}
			continue
		}
		for _, rule := range d.Rules {
			if !usedByRule[use{id: d.ID, rule: rule}] {
				out = append(out, NeedlessDisable{Directive: d, Rule: rule})
			}
		}
	}
	return out
}

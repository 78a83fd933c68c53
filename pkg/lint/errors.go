package lint

import (
	"errors"
	"fmt"
)

// Caller-contract violations raised by Report. Both point at a defect in
// the reporting rule, not in the document.
var (
	// ErrMissingLine indicates a problem without line, position or node.
	ErrMissingLine = errors.New("missing line or node")

	// ErrFixRequiresPosition indicates a fix without an exact range.
	ErrFixRequiresPosition = errors.New("fix requires position data")
)

// RuleError identifies the rule responsible for a fatal reporting error.
type RuleError struct {
	Rule string
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %q: %v", e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

func ruleError(rule string, err error) error {
	return &RuleError{Rule: rule, Err: err}
}

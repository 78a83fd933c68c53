// Package lint provides the rule engine, problem reporting and diagnostics for lintcore.
package lint

import "github.com/yaklabco/lintcore/pkg/config"

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "LC001").
	ID() string

	// Name returns the rule name used in reports, config and directives
	// (e.g., "no-hard-tabs").
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	// An empty severity defers to the configured default.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule.
	Tags() []string

	// CanFix returns whether this rule can auto-fix problems.
	CanFix() bool

	// Apply executes the rule against the given context.
	//
	// Rules must:
	//   - Report each problem through ctx.Report.
	//   - Return the error from ctx.Report unchanged.
	//   - Return other errors only for internal failures, not problems.
	Apply(ctx *RuleContext) error
}

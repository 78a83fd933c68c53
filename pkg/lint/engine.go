package lint

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/lintcore/internal/logging"
	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/document"
	"github.com/yaklabco/lintcore/pkg/fix"
	"github.com/yaklabco/lintcore/pkg/suppress"
)

// DocumentResult contains the results of linting a single document.
type DocumentResult struct {
	// Document is the analyzed document, including any applied fixes.
	Document *document.Document

	// Diagnostics contains all emitted issues in report order.
	Diagnostics []Diagnostic

	// HasError is true if any error diagnostic was emitted.
	HasError bool

	// HasWarning is true if any warning diagnostic was emitted.
	HasWarning bool

	// Directives are the directive comments found in the document.
	Directives []suppress.Directive

	// Suppressed records every report that matched a disabled range,
	// from both the report and fix passes.
	Suppressed []suppress.LogEntry

	// Needless lists unused disable directives. Only filled when
	// ReportNeedlessDisables is set.
	Needless []suppress.NeedlessDisable

	// Fixes summarizes the fix pass (nil when fixing is off).
	Fixes *fix.Summary

	// Modified is true if at least one fix was applied.
	Modified bool

	// Ranges is the final state of the disabled range index.
	Ranges map[string][]suppress.DisabledRange

	// RuleErrors contains internal rule failures keyed by rule name.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (dr *DocumentResult) HasIssues() bool {
	return len(dr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (dr *DocumentResult) IssueCount() int {
	return len(dr.Diagnostics)
}

// Engine coordinates directive scanning, rule execution and fixing.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// Lint runs every enabled rule against doc.
//
// Fixes are applied to doc in place when cfg.Fix is set. A *RuleError
// (a reporting contract violation or a failing severity function) and a
// failing fix abort the document; any other rule error is recorded in
// RuleErrors and the remaining rules still run.
func (e *Engine) Lint(ctx context.Context, doc *document.Document, cfg *config.Config) (*DocumentResult, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	logger := logging.FromContext(ctx)

	scanner := suppress.NewScanner(suppress.ScanOptions{
		Prefix:    cfg.DirectivePrefix,
		Normalize: e.Registry.Canonical,
		GFM:       cfg.Flavor == config.FlavorGFM,
	})
	index, directives := scanner.Scan(doc)

	resolved := ResolveRules(e.Registry, cfg)
	settings := NewSettings(cfg, resolved)
	session := NewSession(doc, index.View(), settings)

	result := &DocumentResult{
		Document:   doc,
		Directives: directives,
		RuleErrors: make(map[string]error),
	}

	logger.Debug("linting document",
		logging.FieldDirectives, len(directives),
		logging.FieldRanges, index.Len(),
		logging.FieldRangeKeys, index.Keys())

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, rr.Rule, session, cfg, rr.Config)
		if err := rr.Rule.Apply(ruleCtx); err != nil {
			var ruleErr *RuleError
			if errors.As(err, &ruleErr) {
				return nil, err
			}
			result.RuleErrors[rr.Rule.Name()] = err
			logger.Warn("rule failed",
				logging.FieldRule, rr.Rule.Name(),
				logging.FieldError, err)
		}
	}

	if settings.Fix {
		applier := &fix.Applier{
			Log:            session.Suppressed,
			IgnoreDisables: settings.IgnoreDisables,
		}
		summary, err := applier.ApplyAll(ctx, session.Fixes, index)
		result.Fixes = summary
		if err != nil {
			return nil, err
		}
		result.Modified = summary.Applied > 0

		logger.Debug("fix pass complete",
			logging.FieldFixes, summary.Applied,
			logging.FieldFixRules, session.Fixes.Rules())
	}

	result.Diagnostics = session.Diagnostics
	result.HasError = session.HasError
	result.HasWarning = session.HasWarning
	result.Suppressed = session.Suppressed.Entries()
	result.Ranges = index.Snapshot()

	if cfg.ReportNeedlessDisables {
		result.Needless = suppress.Needless(directives, session.Suppressed)
	}

	return result, nil
}

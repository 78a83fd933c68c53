package lint

import (
	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/document"
	"github.com/yaklabco/lintcore/pkg/fix"
	"github.com/yaklabco/lintcore/pkg/severity"
	"github.com/yaklabco/lintcore/pkg/suppress"
)

// Session is the reporting state of one document pass. It is not safe for
// concurrent use; independent documents use independent sessions.
type Session struct {
	// Settings controls severity, quiet mode, disables and fixing.
	Settings Settings

	// Document is the document being analyzed.
	Document *document.Document

	// Diagnostics are the emitted diagnostics in report order.
	Diagnostics []Diagnostic

	// HasError is set once an error diagnostic is emitted.
	HasError bool

	// HasWarning is set once a warning diagnostic is emitted.
	HasWarning bool

	// Suppressed records every report that matched a disabled range.
	Suppressed *suppress.Log

	// Fixes collects deferred fixes when fixing is enabled.
	Fixes *fix.Registry

	checker *suppress.Checker
}

// NewSession creates a Session reading disabled ranges through view.
func NewSession(doc *document.Document, view suppress.View, settings Settings) *Session {
	log := &suppress.Log{}
	return &Session{
		Settings:   settings,
		Document:   doc,
		Suppressed: log,
		Fixes:      fix.NewRegistry(),
		checker:    suppress.NewChecker(view, log, settings.IgnoreDisables),
	}
}

// Report processes one problem: it either defers the problem's fix, drops
// it (quiet mode or suppression) or emits a diagnostic.
//
// Problems without a line, and fixes without an exact range, are caller
// errors and return a *RuleError.
func (s *Session) Report(p Problem) error {
	line, rng := locate(p)
	if line < 1 {
		return ruleError(p.RuleName, ErrMissingLine)
	}

	if p.Fix != nil {
		fixRange, ok := fixRangeOf(p)
		if !ok {
			return ruleError(p.RuleName, ErrFixRequiresPosition)
		}
		if s.Settings.fixing(p.RuleName) {
			s.Fixes.Register(fix.Entry{
				RuleName:  p.RuleName,
				Range:     fixRange,
				Callback:  p.Fix,
				Args:      p.MessageArgs,
				Unfixable: p.Unfixable,
			})
			return nil
		}
	}

	sev, err := severity.Resolve(
		p.Severity,
		s.Settings.RuleSeverities[p.RuleName],
		s.Settings.DefaultSeverity,
		p.MessageArgs,
	)
	if err != nil {
		return ruleError(p.RuleName, err)
	}

	if s.Settings.Quiet && sev != config.SeverityError {
		return nil
	}

	if s.checker.Check(p.RuleName, line) {
		return nil
	}

	switch sev {
	case config.SeverityError:
		s.HasError = true
	case config.SeverityWarning:
		s.HasWarning = true
	}

	message := p.Message
	if custom, ok := s.Settings.CustomMessages[p.RuleName]; ok && custom.IsSet() {
		message = custom
	}

	var path string
	if s.Document != nil {
		path = s.Document.Path
	}

	builder := NewDiagnosticAt(p.RuleName, path, line, message.Render(p.MessageArgs)).
		WithSeverity(sev).
		WithWord(p.Word)
	if rng != nil {
		builder.WithRange(*rng)
	}

	s.Diagnostics = append(s.Diagnostics, builder.Build())
	return nil
}

// locate returns the report line and, when known, the problem's range.
// The line comes from Line, then Position, then Node.
func locate(p Problem) (int, *document.Range) {
	var rng *document.Range
	switch {
	case p.Position != nil:
		r := *p.Position
		rng = &r
	case p.Node != nil:
		if r, ok := p.Node.RangeBy(p.IndexRange); ok {
			rng = &r
		}
	}

	if p.Line > 0 {
		return p.Line, rng
	}
	if rng != nil {
		return rng.Start.Line, rng
	}
	return 0, nil
}

// fixRangeOf returns the exact range a fix needs: an explicit start and end,
// or a node with an index pair.
func fixRangeOf(p Problem) (document.Range, bool) {
	if p.Position != nil && p.Position.Start.IsValid() && p.Position.End.IsValid() {
		return *p.Position, true
	}
	if p.Node != nil && p.IndexRange != nil {
		r, ok := p.Node.RangeBy(p.IndexRange)
		if ok && r.IsValid() {
			return r, true
		}
	}
	return document.Range{}, false
}

package lint

import (
	"context"

	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/document"
)

// RuleContext is handed to one Rule.Apply call. It exposes the document
// read-only and routes problems into the document's Session under the
// rule's name.
type RuleContext struct {
	Ctx        context.Context
	Document   *document.Document
	Config     *config.Config
	RuleConfig *config.RuleConfig // nil when the rule is not configured

	rule    Rule
	session *Session
}

// NewRuleContext binds rule to session for a single Apply call.
func NewRuleContext(
	ctx context.Context,
	rule Rule,
	session *Session,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	return &RuleContext{
		Ctx:        ctx,
		Document:   session.Document,
		Config:     cfg,
		RuleConfig: ruleCfg,
		rule:       rule,
		session:    session,
	}
}

// Report stamps p with the rule name and files it with the session.
// Rules must return a non-nil error from Report unchanged.
func (rc *RuleContext) Report(p Problem) error {
	p.RuleName = rc.rule.Name()
	return rc.session.Report(p)
}

// MarkUnfixable flags the fix this rule already reported at rng so it is
// never applied. It returns false if no such fix was deferred.
func (rc *RuleContext) MarkUnfixable(rng document.Range) bool {
	return rc.session.Fixes.MarkUnfixable(rc.rule.Name(), rng)
}

// Err returns the context error once the run is cancelled.
func (rc *RuleContext) Err() error {
	return rc.Ctx.Err()
}

// Option returns options[key] from the rule config, or def.
func (rc *RuleContext) Option(key string, def any) any {
	if rc.RuleConfig == nil {
		return def
	}
	v, ok := rc.RuleConfig.Options[key]
	if !ok {
		return def
	}
	return v
}

// OptionInt reads an integer option. YAML yields int, TOML int64 and JSON
// float64; other types fall back to def.
func (rc *RuleContext) OptionInt(key string, def int) int {
	switch v := rc.Option(key, def).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// OptionBool reads a boolean option, falling back to def.
func (rc *RuleContext) OptionBool(key string, def bool) bool {
	return optionAs(rc, key, def)
}

// OptionString reads a string option, falling back to def.
func (rc *RuleContext) OptionString(key, def string) string {
	return optionAs(rc, key, def)
}

func optionAs[T any](rc *RuleContext, key string, def T) T {
	if v, ok := rc.Option(key, def).(T); ok {
		return v
	}
	return def
}

package lint

import "github.com/yaklabco/lintcore/pkg/config"

// BaseRule carries the static metadata every rule exposes. Rules embed it
// and supply their own Apply; the remaining Rule methods come from here.
type BaseRule struct {
	id, name, desc string
	tags           []string
	fixable        bool
}

// NewBaseRule returns metadata for a rule. The tags slice is retained.
func NewBaseRule(id, name, desc string, tags []string, fixable bool) BaseRule {
	return BaseRule{id: id, name: name, desc: desc, tags: tags, fixable: fixable}
}

func (r *BaseRule) ID() string          { return r.id }
func (r *BaseRule) Name() string        { return r.name }
func (r *BaseRule) Description() string { return r.desc }
func (r *BaseRule) Tags() []string      { return r.tags }
func (r *BaseRule) CanFix() bool        { return r.fixable }

// DefaultEnabled reports true. Rules that ship disabled override it.
func (r *BaseRule) DefaultEnabled() bool { return true }

// DefaultSeverity is empty, deferring to the configured default severity.
func (r *BaseRule) DefaultSeverity() config.Severity { return "" }

// Apply reports nothing.
func (r *BaseRule) Apply(*RuleContext) error { return nil }

// String identifies the rule as "ID/name".
func (r *BaseRule) String() string { return r.id + "/" + r.name }

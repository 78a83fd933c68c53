package lint

import (
	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/severity"
)

// Settings is the reporting configuration of one document pass.
type Settings struct {
	// DefaultSeverity applies when neither problem nor rule sets one.
	DefaultSeverity config.Severity

	// RuleSeverities holds per-rule severities keyed by rule name.
	RuleSeverities map[string]severity.Value

	// Quiet drops every diagnostic below error severity.
	Quiet bool

	// IgnoreDisables emits diagnostics inside disabled ranges.
	IgnoreDisables bool

	// Fix defers fixable problems to the fix pass instead of reporting them.
	Fix bool

	// FixDisabled lists rules whose fixes stay off while Fix is set.
	FixDisabled map[string]bool

	// CustomMessages replaces the message of a rule's diagnostics.
	CustomMessages map[string]Message
}

// NewSettings derives Settings from cfg and the resolved rules.
func NewSettings(cfg *config.Config, resolved []ResolvedRule) Settings {
	settings := Settings{
		DefaultSeverity: cfg.DefaultSeverity(),
		RuleSeverities:  make(map[string]severity.Value),
		FixDisabled:     make(map[string]bool),
		CustomMessages:  make(map[string]Message),
	}

	if cfg != nil {
		settings.Quiet = cfg.Quiet
		settings.IgnoreDisables = cfg.IgnoreDisables
		settings.Fix = cfg.Fix
	}

	for _, rr := range resolved {
		name := rr.Rule.Name()
		if rr.Severity != "" {
			settings.RuleSeverities[name] = severity.Literal(rr.Severity)
		}
		if !rr.AutoFix {
			settings.FixDisabled[name] = true
		}
		if rr.Config != nil && rr.Config.Message != nil && *rr.Config.Message != "" {
			settings.CustomMessages[name] = Text(*rr.Config.Message)
		}
	}

	return settings
}

// fixing reports whether fixes of rule are deferred to the fix pass.
func (s Settings) fixing(rule string) bool {
	return s.Fix && !s.FixDisabled[rule]
}

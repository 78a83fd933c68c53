package lint

import (
	"slices"

	"github.com/yaklabco/lintcore/pkg/config"
)

// ResolvedRule is a registered rule together with the settings that apply
// to it in one run.
type ResolvedRule struct {
	Rule    Rule
	Enabled bool

	// Severity is empty when the configured default applies.
	Severity config.Severity

	// AutoFix is true only when fixing is on and neither the rule nor its
	// config opts out.
	AutoFix bool

	// Config is nil when no rules entry names the rule.
	Config *config.RuleConfig
}

// ResolveRules returns the enabled rules of registry in ID order.
//
// Enablement is decided in layers: the rule's default, then the
// enable and disable selections (disable wins), then an explicit
// rules.<name>.enabled setting.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	all := registry.Rules()
	out := make([]ResolvedRule, 0, len(all))
	for _, rule := range all {
		if rr := resolveRule(rule, cfg); rr.Enabled {
			out = append(out, rr)
		}
	}
	return out
}

func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
	}
	if cfg == nil {
		return rr
	}

	names := func(key string) bool { return key == rule.ID() || key == rule.Name() }
	switch {
	case slices.ContainsFunc(cfg.DisableRules, names):
		rr.Enabled = false
	case slices.ContainsFunc(cfg.EnableRules, names):
		rr.Enabled = true
	}

	rr.AutoFix = cfg.Fix && rule.CanFix()

	rc, ok := cfg.Rules[rule.Name()]
	if !ok {
		rc, ok = cfg.Rules[rule.ID()]
	}
	if !ok {
		return rr
	}

	rr.Config = &rc
	if rc.Enabled != nil {
		rr.Enabled = *rc.Enabled
	}
	if rc.Severity != nil {
		rr.Severity = config.Severity(*rc.Severity)
	}
	if rc.AutoFix != nil && !*rc.AutoFix {
		rr.AutoFix = false
	}
	return rr
}

package config

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of the configuration. Option values are copied
// one level deep.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Ignore = slices.Clone(c.Ignore)
	clone.EnableRules = slices.Clone(c.EnableRules)
	clone.DisableRules = slices.Clone(c.DisableRules)

	if c.Rules != nil {
		clone.Rules = make(map[string]RuleConfig, len(c.Rules))
		for name, rc := range c.Rules {
			clone.Rules[name] = rc.Clone()
		}
	}
	return &clone
}

// Clone returns a copy of rc that shares no pointers with it.
func (rc RuleConfig) Clone() RuleConfig {
	return RuleConfig{
		Enabled:  clonePtr(rc.Enabled),
		Severity: clonePtr(rc.Severity),
		AutoFix:  clonePtr(rc.AutoFix),
		Message:  clonePtr(rc.Message),
		Options:  maps.Clone(rc.Options),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

package configloader

import (
	"maps"

	"github.com/yaklabco/lintcore/pkg/config"
)

// merge layers override on top of base and returns a new Config; neither
// input is modified. Non-zero scalars and non-nil slices in override win.
// Booleans can only be switched on. Rules merge per field and options
// merge per key.
func merge(base, override *config.Config) *config.Config {
	switch {
	case base == nil:
		return override
	case override == nil:
		return base
	}

	out := base.Clone()

	setIfNonZero(&out.Flavor, override.Flavor)
	setIfNonZero(&out.SeverityDefault, override.SeverityDefault)
	setIfNonZero(&out.DirectivePrefix, override.DirectivePrefix)
	setIfNonZero(&out.Format, override.Format)
	setIfNonZero(&out.Jobs, override.Jobs)

	for dst, src := range map[*bool]bool{
		&out.Fix:                    override.Fix,
		&out.DryRun:                 override.DryRun,
		&out.Quiet:                  override.Quiet,
		&out.IgnoreDisables:         override.IgnoreDisables,
		&out.ReportNeedlessDisables: override.ReportNeedlessDisables,
	} {
		*dst = *dst || src
	}

	setIfNonNil(&out.Ignore, override.Ignore)
	setIfNonNil(&out.EnableRules, override.EnableRules)
	setIfNonNil(&out.DisableRules, override.DisableRules)

	for key, rc := range override.Rules {
		if out.Rules == nil {
			out.Rules = make(map[string]config.RuleConfig)
		}
		if existing, ok := out.Rules[key]; ok {
			out.Rules[key] = mergeRuleConfig(existing, rc)
		} else {
			out.Rules[key] = rc.Clone()
		}
	}

	return out
}

func setIfNonZero[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

func setIfNonNil[T any](dst *[]T, v []T) {
	if v != nil {
		*dst = v
	}
}

func setIfSet[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}

func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	out := base

	setIfSet(&out.Enabled, override.Enabled)
	setIfSet(&out.Severity, override.Severity)
	setIfSet(&out.AutoFix, override.AutoFix)
	setIfSet(&out.Message, override.Message)

	if override.Options != nil {
		out.Options = make(map[string]any, len(base.Options)+len(override.Options))
		maps.Copy(out.Options, base.Options)
		maps.Copy(out.Options, override.Options)
	}
	return out
}

// MergeAll folds configs left to right; later entries take precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	var out *config.Config
	for i, cfg := range configs {
		if i == 0 {
			out = cfg
			continue
		}
		out = merge(out, cfg)
	}
	return out
}

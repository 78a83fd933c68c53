package configloader

import (
	"fmt"
	"slices"

	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/lint"
)

// normalizeRuleKeys rewrites rule keys to canonical rule names so that IDs,
// names and aliases all address the same entry. Unknown keys are kept for
// validation to warn about. When two keys name the same rule, the ID entry
// is the base and the other is merged over it.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if len(cfg.Rules) == 0 {
		return
	}

	keys := make([]string, 0, len(cfg.Rules))
	for key := range cfg.Rules {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	seen := make(map[string]string)

	for _, key := range keys {
		ruleCfg := cfg.Rules[key]
		_, rule, ok := registry.Resolve(key)
		if !ok {
			normalized[key] = ruleCfg
			continue
		}

		name := rule.Name()
		if first, dup := seen[name]; dup {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s; merging", first, key, name))
			normalized[name] = mergeRuleConfig(normalized[name], ruleCfg)
			continue
		}
		seen[name] = key
		normalized[name] = ruleCfg
	}

	cfg.Rules = normalized
}

// ExpandRuleKeys maps each key to canonical rule names. A key may be a rule
// ID, name or alias, or a tag selecting every rule carrying it. Unknown keys
// are returned in unknown.
func ExpandRuleKeys(registry *lint.Registry, keys []string) (names, unknown []string) {
	for _, key := range keys {
		if _, rule, ok := registry.Resolve(key); ok {
			names = appendUnique(names, rule.Name())
			continue
		}

		tagged := registry.Tagged(key)
		if len(tagged) == 0 {
			unknown = append(unknown, key)
		}
		for _, rule := range tagged {
			names = appendUnique(names, rule.Name())
		}
	}
	return names, unknown
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}

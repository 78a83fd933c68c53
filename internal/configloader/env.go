package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/lintcore/pkg/config"
)

const envVarPrefix = "LINTCORE_"

// envSetter applies one raw environment value to cfg.
type envSetter func(cfg *config.Config, raw string) error

type envVarSpec struct {
	help string
	set  envSetter
}

func envString(set func(*config.Config, string)) envSetter {
	return func(cfg *config.Config, raw string) error {
		set(cfg, raw)
		return nil
	}
}

func envBool(dst func(*config.Config) *bool) envSetter {
	return func(cfg *config.Config, raw string) error {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", raw)
		}
		*dst(cfg) = b
		return nil
	}
}

// envVars is keyed by the variable name without LINTCORE_.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVarSpec{
	"FLAVOR": {
		help: "Markdown flavor: commonmark or gfm",
		set:  envString(func(c *config.Config, v string) { c.Flavor = config.Flavor(v) }),
	},
	"SEVERITY_DEFAULT": {
		help: "Default severity: error or warning",
		set:  envString(func(c *config.Config, v string) { c.SeverityDefault = v }),
	},
	"FORMAT": {
		help: "Output format: text or json",
		set:  envString(func(c *config.Config, v string) { c.Format = config.OutputFormat(v) }),
	},
	"DIRECTIVE_PREFIX": {
		help: "Prefix of disable comments (default lintcore)",
		set:  envString(func(c *config.Config, v string) { c.DirectivePrefix = v }),
	},
	"IGNORE": {
		help: "Comma-separated list of ignore patterns",
		set:  envString(func(c *config.Config, v string) { c.Ignore = parseSliceValue(v) }),
	},
	"FIX": {
		help: "Enable auto-fix: true or false",
		set:  envBool(func(c *config.Config) *bool { return &c.Fix }),
	},
	"DRY_RUN": {
		help: "Dry-run mode: true or false",
		set:  envBool(func(c *config.Config) *bool { return &c.DryRun }),
	},
	"QUIET": {
		help: "Report errors only: true or false",
		set:  envBool(func(c *config.Config) *bool { return &c.Quiet }),
	},
	"IGNORE_DISABLES": {
		help: "Ignore disable comments: true or false",
		set:  envBool(func(c *config.Config) *bool { return &c.IgnoreDisables }),
	},
	"REPORT_NEEDLESS_DISABLES": {
		help: "Report unused disable comments: true or false",
		set:  envBool(func(c *config.Config) *bool { return &c.ReportNeedlessDisables }),
	},
	"JOBS": {
		help: "Number of parallel workers (0 = auto)",
		set: func(c *config.Config, raw string) error {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid integer %q", raw)
			}
			c.Jobs = n
			return nil
		},
	},
}

// LoadFromEnv overlays every non-empty LINTCORE_* variable onto cfg.
// Variables are applied in name order so the first bad one is reported
// deterministically.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, v := range ListEnvVars() {
		raw := os.Getenv(v.Name)
		if raw == "" {
			continue
		}
		spec := envVars[strings.TrimPrefix(v.Name, envVarPrefix)]
		if err := spec.set(cfg, raw); err != nil {
			return fmt.Errorf("%s: %w", v.Name, err)
		}
	}
	return nil
}

// parseSliceValue splits a comma-separated list, dropping empty items.
func parseSliceValue(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// EnvVar describes a supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns the supported variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envVars))
	for suffix, spec := range envVars {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: spec.help})
	}
	slices.SortFunc(vars, func(a, b EnvVar) int { return strings.Compare(a.Name, b.Name) })
	return vars
}

package configloader

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/lint"
)

// ValidationError reports one invalid configuration value.
type ValidationError struct {
	// Field is a dotted path such as "rules.line-length.severity".
	Field    string
	Value    any
	Message  string
	FilePath string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	for _, part := range []string{e.FilePath, e.Field} {
		if part != "" {
			b.WriteString(part)
			b.WriteString(": ")
		}
	}
	b.WriteString(e.Message)
	return b.String()
}

// ValidationResult collects fatal errors and warnings, each in a stable order.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether no errors were found.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err joins all errors, or returns nil when the config is valid.
func (r *ValidationResult) Err() error {
	errs := make([]error, len(r.Errors))
	for i := range r.Errors {
		errs[i] = &r.Errors[i]
	}
	return errors.Join(errs...)
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks cfg for values lintcore cannot run with. Rule keys the
// registry does not know are warnings; a nil registry skips that check.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	r := &ValidationResult{}
	if cfg == nil {
		return r
	}

	switch cfg.Flavor {
	case "", config.FlavorCommonMark, config.FlavorGFM:
	default:
		r.fail("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}
	if cfg.SeverityDefault != "" && !IsValidSeverity(cfg.SeverityDefault) {
		r.fail("severity_default", cfg.SeverityDefault,
			"invalid severity %q; must be one of: error, warning", cfg.SeverityDefault)
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		r.fail("format", cfg.Format, "invalid format %q; must be one of: text, json, diff", cfg.Format)
	}
	if cfg.Jobs < 0 {
		r.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if strings.IndexFunc(cfg.DirectivePrefix, notPrefixRune) >= 0 {
		r.fail("directive_prefix", cfg.DirectivePrefix,
			"invalid directive prefix %q; use letters, digits, '-' or '_'", cfg.DirectivePrefix)
	}

	for _, key := range slices.Sorted(maps.Keys(cfg.Rules)) {
		rc := cfg.Rules[key]
		if registry != nil {
			if _, _, ok := registry.Resolve(key); !ok {
				r.warn("rules."+key, key, "unknown rule %q; it will be ignored", key)
			}
		}
		if rc.Severity != nil && !IsValidSeverity(*rc.Severity) {
			r.fail("rules."+key+".severity", *rc.Severity,
				"invalid severity %q; must be one of: error, warning", *rc.Severity)
		}
	}

	for i, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			r.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern %q", pattern)
		}
	}

	return r
}

// IsValidSeverity reports whether s names a severity.
func IsValidSeverity(s string) bool {
	return config.Severity(s).IsValid()
}

func notPrefixRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return r != '-' && r != '_'
}

// Package config defines core configuration types for lintcore.
// These types are pure data structures with no dependency on the config loader.
package config

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IsValid returns true if the severity is a known level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Severity *string        `yaml:"severity,omitempty" toml:"severity,omitempty"`
	AutoFix  *bool          `yaml:"auto_fix,omitempty" toml:"auto_fix,omitempty"`
	Message  *string        `yaml:"message,omitempty" toml:"message,omitempty"`
	Options  map[string]any `yaml:"options,omitempty" toml:"options,omitempty"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// IsValid returns true if the format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// Flavor specifies the Markdown flavor used to find directive comments.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Config is the root configuration structure for lintcore.
type Config struct {
	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor" toml:"flavor"`

	// SeverityDefault is the severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default" toml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule name.
	Rules map[string]RuleConfig `yaml:"rules,omitempty" toml:"rules,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Quiet drops every diagnostic below error severity.
	Quiet bool `yaml:"quiet,omitempty" toml:"quiet,omitempty"`

	// IgnoreDisables reports problems even inside disabled ranges.
	IgnoreDisables bool `yaml:"ignore_disables,omitempty" toml:"ignore_disables,omitempty"`

	// ReportNeedlessDisables reports disable comments that matched nothing.
	ReportNeedlessDisables bool `yaml:"report_needless_disables,omitempty" toml:"report_needless_disables,omitempty"`

	// DirectivePrefix replaces the default "lintcore" comment prefix.
	DirectivePrefix string `yaml:"directive_prefix,omitempty" toml:"directive_prefix,omitempty"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of problems.
	Fix bool `yaml:"-" toml:"-"`

	// DryRun computes fixes without writing files.
	DryRun bool `yaml:"-" toml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// Jobs specifies the number of documents processed in parallel.
	Jobs int `yaml:"-" toml:"-"`

	// EnableRules contains rule names to explicitly enable.
	EnableRules []string `yaml:"-" toml:"-"`

	// DisableRules contains rule names to explicitly disable.
	DisableRules []string `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Flavor:          FlavorCommonMark,
		SeverityDefault: string(SeverityError),
		Rules:           make(map[string]RuleConfig),
		Format:          FormatText,
		Jobs:            0, // 0 means use GOMAXPROCS
	}
}

// DefaultSeverity returns SeverityDefault as a Severity, falling back to error.
func (c *Config) DefaultSeverity() Severity {
	if c == nil || c.SeverityDefault == "" {
		return SeverityError
	}
	return Severity(c.SeverityDefault)
}

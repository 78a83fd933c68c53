package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/lint"
	"github.com/yaklabco/lintcore/pkg/lint/rules"
)

func testRegistry() *lint.Registry {
	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	rules.RegisterAliases(registry)
	return registry
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolated returns options that only look at dir and the given overrides.
func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
		Registry:           testRegistry(),
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(t.TempDir()))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.FlavorCommonMark, result.Config.Flavor)
	assert.Equal(t, config.SeverityError, result.Config.DefaultSeverity())
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfigYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, ".lintcore.yml", `
flavor: gfm
report_needless_disables: true
rules:
  LC004:
    options:
      max: 80
`)

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)

	assert.Equal(t, config.FlavorGFM, result.Config.Flavor)
	assert.True(t, result.Config.ReportNeedlessDisables)
	assert.Len(t, result.LoadedFrom, 1)

	lineLength, ok := result.Config.Rules["line-length"]
	require.True(t, ok, "rule keys are normalized to names")
	assert.Equal(t, 80, lineLength.Options["max"])
}

func TestLoad_ProjectConfigTOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, ".lintcore.toml", `
severity_default = "warning"
directive_prefix = "docs"

[rules.no-hard-tabs]
enabled = false
`)

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)

	assert.Equal(t, config.SeverityWarning, result.Config.DefaultSeverity())
	assert.Equal(t, "docs", result.Config.DirectivePrefix)
	require.NotNil(t, result.Config.Rules["no-hard-tabs"].Enabled)
	assert.False(t, *result.Config.Rules["no-hard-tabs"].Enabled)
}

func TestLoad_SearchesUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	writeConfig(t, root, ".lintcore.yaml", "quiet: true\n")

	nested := filepath.Join(root, "docs", "guide")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), isolated(nested))
	require.NoError(t, err)
	assert.True(t, result.Config.Quiet)
	assert.Equal(t, filepath.Join(root, ".lintcore.yaml"), result.Paths.Project)
}

func TestLoad_ExplicitConfigSkipsProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, ".lintcore.yml", "flavor: gfm\n")
	custom := writeConfig(t, dir, "custom.yml", "severity_default: warning\n")

	opts := isolated(dir)
	opts.ExplicitPath = custom

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.FlavorCommonMark, result.Config.Flavor)
	assert.Equal(t, config.SeverityWarning, result.Config.DefaultSeverity())
	assert.Equal(t, []string{custom}, result.LoadedFrom)
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, ".lintcore.yml", `
flavor: commonmark
rules:
  line-length:
    severity: warning
    options:
      max: 80
      ignore_urls: false
`)

	severity := "error"
	opts := isolated(dir)
	opts.CLIConfig = &config.Config{
		Flavor: config.FlavorGFM,
		Jobs:   8,
		Fix:    true,
		Rules: map[string]config.RuleConfig{
			"max-line-length": {Severity: &severity, Options: map[string]any{"max": 100}},
		},
	}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.FlavorGFM, result.Config.Flavor)
	assert.Equal(t, 8, result.Config.Jobs)
	assert.True(t, result.Config.Fix)

	rule := result.Config.Rules["line-length"]
	require.NotNil(t, rule.Severity)
	assert.Equal(t, "error", *rule.Severity)
	assert.Equal(t, map[string]any{"max": 100, "ignore_urls": false}, rule.Options)
	assert.NotEmpty(t, result.Warnings, "alias and name both configure line-length")
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("LINTCORE_IGNORE_DISABLES", "true")
	t.Setenv("LINTCORE_IGNORE", "vendor/**, CHANGELOG.md")

	opts := isolated(t.TempDir())
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, result.Config.IgnoreDisables)
	assert.Equal(t, []string{"vendor/**", "CHANGELOG.md"}, result.Config.Ignore)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv("LINTCORE_JOBS", "many")

	opts := isolated(t.TempDir())
	opts.IgnoreEnv = false

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LINTCORE_JOBS")
}

func TestLoad_ExpandsRuleSelections(t *testing.T) {
	t.Parallel()

	opts := isolated(t.TempDir())
	opts.CLIConfig = &config.Config{
		EnableRules:  []string{"LC004"},
		DisableRules: []string{"whitespace", "nope"},
	}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"line-length"}, result.Config.EnableRules)
	assert.ElementsMatch(t,
		[]string{"no-trailing-spaces", "no-hard-tabs", "no-multiple-blanks"},
		result.Config.DisableRules)
	assert.Contains(t, result.Warnings, `unknown rule or tag "nope"`)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "flavor", content: "flavor: invalid-flavor\n", field: "flavor"},
		{name: "severity", content: "severity_default: info\n", field: "severity_default"},
		{name: "rule severity", content: "rules:\n  no-hard-tabs:\n    severity: fatal\n", field: "rules.no-hard-tabs.severity"},
		{name: "ignore glob", content: "ignore:\n  - \"docs/[\"\n", field: "ignore[0]"},
		{name: "prefix", content: "directive_prefix: \"my lint\"\n", field: "directive_prefix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, ".lintcore.yml", tt.content)

			_, err := Load(context.Background(), isolated(dir))
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestLoad_UnknownRuleWarns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, ".lintcore.yml", "rules:\n  MD999:\n    enabled: false\n")

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)
	assert.Contains(t, result.Warnings, `rules.MD999: unknown rule "MD999"; it will be ignored`)
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolated(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestNormalizeRuleKeys_MergesDuplicates(t *testing.T) {
	t.Parallel()

	disabled, enabled := false, true
	severity := "warning"
	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleConfig{
		"LC001":              {Enabled: &disabled, Severity: &severity},
		"no-trailing-spaces": {Enabled: &enabled},
	}

	result := &LoadResult{}
	normalizeRuleKeys(cfg, testRegistry(), result)

	require.Len(t, cfg.Rules, 1)
	rule := cfg.Rules["no-trailing-spaces"]
	assert.True(t, *rule.Enabled)
	assert.Equal(t, "warning", *rule.Severity)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "duplicate")
}

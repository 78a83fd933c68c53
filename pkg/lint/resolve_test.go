package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/lint"
)

const (
	testRuleID1 = "LC901"
	testRuleID2 = "LC902"
)

// testRule is a simple rule implementation for testing.
type testRule struct {
	lint.BaseRule
}

func newTestRule(id string, canFix bool) *testRule {
	return &testRule{
		BaseRule: lint.NewBaseRule(id, id+"-name", "", nil, canFix),
	}
}

func TestResolveRules_DefaultEnabled(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1, false))
	registry.Register(newTestRule(testRuleID2, false))

	resolved := lint.ResolveRules(registry, config.NewConfig())
	assert.Len(t, resolved, 2)
}

func TestResolveRules_DisableViaConfig(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1, false))
	registry.Register(newTestRule(testRuleID2, false))

	tests := []struct {
		name string
		key  string
	}{
		{name: "by name", key: testRuleID1 + "-name"},
		{name: "by id", key: testRuleID1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			enabled := false
			cfg.Rules[tt.key] = config.RuleConfig{Enabled: &enabled}

			resolved := lint.ResolveRules(registry, cfg)
			require.Len(t, resolved, 1)
			assert.Equal(t, testRuleID2, resolved[0].Rule.ID())
		})
	}
}

func TestResolveRules_ConfigOverridesCLIDisable(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1, false))

	cfg := config.NewConfig()
	cfg.DisableRules = []string{testRuleID1}
	enabled := true
	cfg.Rules[testRuleID1] = config.RuleConfig{Enabled: &enabled}

	assert.Len(t, lint.ResolveRules(registry, cfg), 1)
}

func TestResolveRules_CLIDisable(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1, false))
	registry.Register(newTestRule(testRuleID2, false))

	cfg := config.NewConfig()
	cfg.DisableRules = []string{testRuleID1 + "-name"}

	resolved := lint.ResolveRules(registry, cfg)
	require.Len(t, resolved, 1)
	assert.Equal(t, testRuleID2, resolved[0].Rule.ID())
}

func TestResolveRules_DisableBeatsEnable(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1, false))

	cfg := config.NewConfig()
	cfg.EnableRules = []string{testRuleID1}
	cfg.DisableRules = []string{testRuleID1 + "-name"}

	assert.Empty(t, lint.ResolveRules(registry, cfg))
}

func TestBaseRule_String(t *testing.T) {
	t.Parallel()

	rule := newTestRule(testRuleID1, false)
	assert.Equal(t, "LC901/LC901-name", rule.String())
	assert.True(t, rule.DefaultEnabled())
	assert.NoError(t, rule.Apply(nil))
}

func TestResolveRules_SeverityOverride(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1, false))

	cfg := config.NewConfig()
	sev := string(config.SeverityWarning)
	cfg.Rules[testRuleID1] = config.RuleConfig{Severity: &sev}

	resolved := lint.ResolveRules(registry, cfg)
	require.Len(t, resolved, 1)
	assert.Equal(t, config.SeverityWarning, resolved[0].Severity)
}

func TestResolveRules_AutoFix(t *testing.T) {
	t.Parallel()

	autoFixOff := false

	tests := []struct {
		name    string
		fix     bool
		ruleCfg *config.RuleConfig
		want    bool
	}{
		{name: "disabled when fix flag not set", fix: false, want: false},
		{name: "enabled when fix flag set", fix: true, want: true},
		{
			name:    "disabled via config even with fix flag",
			fix:     true,
			ruleCfg: &config.RuleConfig{AutoFix: &autoFixOff},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := lint.NewRegistry()
			registry.Register(newTestRule(testRuleID1, true))

			cfg := config.NewConfig()
			cfg.Fix = tt.fix
			if tt.ruleCfg != nil {
				cfg.Rules[testRuleID1] = *tt.ruleCfg
			}

			resolved := lint.ResolveRules(registry, cfg)
			require.Len(t, resolved, 1)
			assert.Equal(t, tt.want, resolved[0].AutoFix)
		})
	}
}

func TestResolveRules_NilConfig(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1, true))

	resolved := lint.ResolveRules(registry, nil)
	require.Len(t, resolved, 1)
	assert.False(t, resolved[0].AutoFix)
	assert.Empty(t, resolved[0].Severity)
}

func TestResolvedRule_ConfigPresent(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1, false))

	cfg := config.NewConfig()
	cfg.Rules[testRuleID1+"-name"] = config.RuleConfig{
		Options: map[string]any{"max": 80},
	}

	resolved := lint.ResolveRules(registry, cfg)
	require.Len(t, resolved, 1)
	require.NotNil(t, resolved[0].Config)
	assert.Equal(t, 80, resolved[0].Config.Options["max"])
}

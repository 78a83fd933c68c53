package lint_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintcore/internal/logging"
	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/document"
	"github.com/yaklabco/lintcore/pkg/fix"
	"github.com/yaklabco/lintcore/pkg/lint"
	"github.com/yaklabco/lintcore/pkg/suppress"
)

// lineRule reports every line equal to match and, when fixable, rewrites it.
type lineRule struct {
	lint.BaseRule
	match string
}

func newLineRule(id, name, match string, fixable bool) *lineRule {
	return &lineRule{
		BaseRule: lint.NewBaseRule(id, name, "reports "+match, nil, fixable),
		match:    match,
	}
}

func (r *lineRule) Apply(rc *lint.RuleContext) error {
	doc := rc.Document
	for line := 1; line <= doc.LineCount(); line++ {
		text := doc.LineText(line)
		if text != r.match {
			continue
		}

		p := lint.Problem{
			Line:        line,
			Message:     lint.Text("found %s"),
			MessageArgs: []any{r.match},
		}
		if r.CanFix() {
			p.Position = &document.Range{
				Start: document.Position{Line: line, Column: 1},
				End:   document.Position{Line: line, Column: len(text) + 1},
			}
			p.Fix = func(current document.Range) (document.Position, error) {
				return doc.Replace(current, "good")
			}
		}
		if err := rc.Report(p); err != nil {
			return err
		}
	}
	return nil
}

// funcRule delegates Apply to a function.
type funcRule struct {
	lint.BaseRule
	apply func(rc *lint.RuleContext) error
}

func (r *funcRule) Apply(rc *lint.RuleContext) error {
	return r.apply(rc)
}

func newDoc(lines ...string) *document.Document {
	return document.New("doc.md", []byte(strings.Join(lines, "\n")+"\n"))
}

func TestEngine_Lint_SuppressesInsideDisabledRange(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newLineRule("LC901", "foo", "bad", false))

	doc := newDoc(
		"<!-- lintcore-disable -->",
		"",
		"bad",
		"",
		"<!-- lintcore-enable -->",
		"",
		"ok",
		"bad",
	)

	result, err := lint.NewEngine(registry).Lint(context.Background(), doc, config.NewConfig())
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 1)
	diag := result.Diagnostics[0]
	assert.Equal(t, 8, diag.Line)
	assert.Equal(t, "foo", diag.RuleName)
	assert.Equal(t, "found bad", diag.Message)
	assert.Equal(t, config.SeverityError, diag.Severity)
	assert.True(t, result.HasError)

	assert.Equal(t, []suppress.LogEntry{{Rule: "foo", Line: 3, DirectiveID: 1}}, result.Suppressed)
	assert.Nil(t, result.Fixes)
	assert.False(t, result.Modified)
}

func TestEngine_Lint_DirectiveByRuleID(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newLineRule("LC901", "foo", "bad", false))
	registry.Register(newLineRule("LC902", "bar", "bad", false))

	doc := newDoc(
		"<!-- lintcore-disable-next-line LC901 -->",
		"bad",
	)

	result, err := lint.NewEngine(registry).Lint(context.Background(), doc, config.NewConfig())
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "bar", result.Diagnostics[0].RuleName)
	assert.Equal(t, []string{"foo"}, result.Directives[0].Rules)
}

func TestEngine_Lint_AppliesFixesOutsideDisabledRanges(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newLineRule("LC901", "foo", "bad", true))

	doc := newDoc(
		"<!-- lintcore-disable -->",
		"",
		"bad",
		"",
		"<!-- lintcore-enable -->",
		"",
		"ok",
		"bad",
	)

	cfg := config.NewConfig()
	cfg.Fix = true

	result, err := lint.NewEngine(registry).Lint(context.Background(), doc, cfg)
	require.NoError(t, err)

	assert.Empty(t, result.Diagnostics)
	assert.True(t, result.Modified)
	assert.Equal(t, "bad", doc.LineText(3))
	assert.Equal(t, "good", doc.LineText(8))

	require.NotNil(t, result.Fixes)
	attempts := result.Fixes.Attempts["foo"]
	require.Len(t, attempts, 2)
	assert.False(t, attempts[0].Fixed)
	assert.True(t, attempts[1].Fixed)
	assert.Equal(t, []suppress.LogEntry{{Rule: "foo", Line: 3, DirectiveID: 1}}, result.Suppressed)
}

func TestEngine_Lint_AutoFixDisabledInConfig(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newLineRule("LC901", "foo", "bad", true))

	cfg := config.NewConfig()
	cfg.Fix = true
	autoFix := false
	cfg.Rules["foo"] = config.RuleConfig{AutoFix: &autoFix}

	doc := newDoc("bad")
	result, err := lint.NewEngine(registry).Lint(context.Background(), doc, cfg)
	require.NoError(t, err)

	assert.Len(t, result.Diagnostics, 1)
	assert.False(t, result.Modified)
	assert.Equal(t, "bad", doc.LineText(1))
}

func TestEngine_Lint_ConfiguredSeverityAndMessage(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newLineRule("LC901", "foo", "bad", false))

	cfg := config.NewConfig()
	sev := string(config.SeverityWarning)
	msg := "please avoid %s"
	cfg.Rules["LC901"] = config.RuleConfig{Severity: &sev, Message: &msg}

	result, err := lint.NewEngine(registry).Lint(context.Background(), newDoc("bad"), cfg)
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, config.SeverityWarning, result.Diagnostics[0].Severity)
	assert.Equal(t, "please avoid bad", result.Diagnostics[0].Message)
	assert.True(t, result.HasWarning)
	assert.False(t, result.HasError)
}

func TestEngine_Lint_Needless(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newLineRule("LC901", "foo", "bad", false))

	doc := newDoc(
		"<!-- lintcore-disable-next-line foo -->",
		"bad",
		"",
		"<!-- lintcore-disable-next-line foo -->",
		"fine",
	)

	cfg := config.NewConfig()
	cfg.ReportNeedlessDisables = true

	result, err := lint.NewEngine(registry).Lint(context.Background(), doc, cfg)
	require.NoError(t, err)

	assert.Empty(t, result.Diagnostics)
	require.Len(t, result.Needless, 1)
	assert.Equal(t, 4, result.Needless[0].Directive.Line)
	assert.Equal(t, "foo", result.Needless[0].Rule)
}

func TestEngine_Lint_ReportContractViolationIsFatal(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(&funcRule{
		BaseRule: lint.NewBaseRule("LC901", "broken", "", nil, false),
		apply: func(rc *lint.RuleContext) error {
			return rc.Report(lint.Problem{Message: lint.Text("no line")})
		},
	})

	_, err := lint.NewEngine(registry).Lint(context.Background(), newDoc("x"), config.NewConfig())
	require.ErrorIs(t, err, lint.ErrMissingLine)

	var ruleErr *lint.RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "broken", ruleErr.Rule)
	assert.Contains(t, err.Error(), `"broken"`)
}

func TestEngine_Lint_InternalRuleErrorIsCollected(t *testing.T) {
	t.Parallel()

	internal := errors.New("internal")

	registry := lint.NewRegistry()
	registry.Register(&funcRule{
		BaseRule: lint.NewBaseRule("LC900", "flaky", "", nil, false),
		apply:    func(*lint.RuleContext) error { return internal },
	})
	registry.Register(newLineRule("LC901", "foo", "bad", false))

	result, err := lint.NewEngine(registry).Lint(context.Background(), newDoc("bad"), config.NewConfig())
	require.NoError(t, err)

	assert.ErrorIs(t, result.RuleErrors["flaky"], internal)
	assert.Len(t, result.Diagnostics, 1)
}

func TestEngine_Lint_FixFailureIsFatal(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	registry := lint.NewRegistry()
	registry.Register(&funcRule{
		BaseRule: lint.NewBaseRule("LC901", "failing-fix", "", nil, true),
		apply: func(rc *lint.RuleContext) error {
			return rc.Report(lint.Problem{
				Line: 1,
				Position: &document.Range{
					Start: document.Position{Line: 1, Column: 1},
					End:   document.Position{Line: 1, Column: 2},
				},
				Fix: func(document.Range) (document.Position, error) { return document.Position{}, boom },
			})
		},
	})

	cfg := config.NewConfig()
	cfg.Fix = true

	_, err := lint.NewEngine(registry).Lint(context.Background(), newDoc("x"), cfg)
	require.ErrorIs(t, err, boom)

	var fixErr *fix.Error
	assert.ErrorAs(t, err, &fixErr)
}

func TestEngine_Lint_Cancelled(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newLineRule("LC901", "foo", "bad", false))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lint.NewEngine(registry).Lint(ctx, newDoc("bad"), config.NewConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRuleContext_Options(t *testing.T) {
	t.Parallel()

	var got struct {
		max    int
		strict bool
		def    int
		mode   string
	}

	registry := lint.NewRegistry()
	registry.Register(&funcRule{
		BaseRule: lint.NewBaseRule("LC901", "opts", "", nil, false),
		apply: func(rc *lint.RuleContext) error {
			got.max = rc.OptionInt("max", 0)
			got.strict = rc.OptionBool("strict", false)
			got.def = rc.OptionInt("missing", 7)
			got.mode = rc.OptionString("mode", "loose")
			return nil
		},
	})

	cfg := config.NewConfig()
	cfg.Rules["opts"] = config.RuleConfig{Options: map[string]any{"max": int64(120), "strict": true, "mode": 3}}

	_, err := lint.NewEngine(registry).Lint(context.Background(), newDoc("x"), cfg)
	require.NoError(t, err)

	assert.Equal(t, 120, got.max)
	assert.True(t, got.strict)
	assert.Equal(t, 7, got.def)
	assert.Equal(t, "loose", got.mode, "mistyped options fall back")
}

func TestRuleContext_MarkUnfixable(t *testing.T) {
	t.Parallel()

	first := document.Range{
		Start: document.Position{Line: 1, Column: 1},
		End:   document.Position{Line: 1, Column: 4},
	}
	var marked, missing bool

	doc := newDoc("bad", "bad")
	registry := lint.NewRegistry()
	registry.Register(&funcRule{
		BaseRule: lint.NewBaseRule("LC901", "foo", "", nil, true),
		apply: func(rc *lint.RuleContext) error {
			for line := 1; line <= 2; line++ {
				rng := document.Range{
					Start: document.Position{Line: line, Column: 1},
					End:   document.Position{Line: line, Column: 4},
				}
				err := rc.Report(lint.Problem{
					Line:     line,
					Message:  lint.Text("bad"),
					Position: &rng,
					Fix: func(current document.Range) (document.Position, error) {
						return doc.Replace(current, "good")
					},
				})
				if err != nil {
					return err
				}
			}
			marked = rc.MarkUnfixable(first)
			missing = rc.MarkUnfixable(document.Range{Start: document.Position{Line: 9, Column: 1}})
			return nil
		},
	})

	cfg := config.NewConfig()
	cfg.Fix = true

	result, err := lint.NewEngine(registry).Lint(context.Background(), doc, cfg)
	require.NoError(t, err)

	assert.True(t, marked)
	assert.False(t, missing)
	assert.Equal(t, "bad", doc.LineText(1))
	assert.Equal(t, "good", doc.LineText(2))
	assert.Equal(t, 1, result.Fixes.Applied)
	assert.Equal(t, 1, result.Fixes.Skipped)
}

func TestEngine_Lint_DebugLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewWriter(&buf, "debug"))

	registry := lint.NewRegistry()
	registry.Register(newLineRule("LC901", "foo", "bad", true))

	cfg := config.NewConfig()
	cfg.Fix = true

	doc := newDoc("<!-- lintcore-disable-next-line foo -->", "ok", "bad")
	_, err := lint.NewEngine(registry).Lint(ctx, doc, cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "ranges=1")
	assert.Contains(t, out, "range_keys=[foo]")
	assert.Contains(t, out, "fix_rules=[foo]")
}

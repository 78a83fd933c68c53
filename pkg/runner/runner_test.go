package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/document"
	"github.com/yaklabco/lintcore/pkg/lint"
	"github.com/yaklabco/lintcore/pkg/runner"
)

// trailingRule reports "x " lines and trims them when fixing.
type trailingRule struct {
	lint.BaseRule
	calls *atomic.Int64
}

func newTrailingRule() *trailingRule {
	return &trailingRule{
		BaseRule: lint.NewBaseRule("T001", "trailing", "test rule", nil, true),
		calls:    &atomic.Int64{},
	}
}

func (r *trailingRule) Apply(ctx *lint.RuleContext) error {
	r.calls.Add(1)
	doc := ctx.Document
	for line := 1; line <= doc.LineCount(); line++ {
		text := doc.LineText(line)
		if !strings.HasSuffix(text, " ") {
			continue
		}
		err := ctx.Report(lint.Problem{
			Message: lint.Text("trailing space"),
			Line:    line,
			Position: &document.Range{
				Start: document.Position{Line: line, Column: len(text)},
				End:   document.Position{Line: line, Column: len(text) + 1},
			},
			Fix: func(current document.Range) (document.Position, error) {
				l := current.Start.Line
				return doc.ReplaceLines(l, l, []string{strings.TrimRight(doc.LineText(l), " ")})
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func newRunner(rules ...lint.Rule) *runner.Runner {
	registry := lint.NewRegistry()
	for _, r := range rules {
		registry.Register(r)
	}
	return runner.New(lint.NewPipeline(lint.NewEngine(registry)))
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := newRunner(newTrailingRule()).Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasFailures())
}

func TestRunner_Run_AggregatesDiagnostics(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md":      "clean\n",
		"b.md":      "x \ny \n",
		"docs/c.md": "<!-- lintcore-disable-next-line trailing -->\nz \n",
	})

	cfg := config.NewConfig()
	cfg.ReportNeedlessDisables = true

	result, err := newRunner(newTrailingRule()).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Jobs:       2,
		Config:     cfg,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	assert.Equal(t, filepath.Join(dir, "a.md"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.md"), result.Files[1].Path)
	assert.Equal(t, filepath.Join(dir, "docs/c.md"), result.Files[2].Path)

	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 3, result.Stats.FilesProcessed)
	assert.Equal(t, 2, result.Stats.DiagnosticsTotal)
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.Equal(t, 2, result.Stats.DiagnosticsBySeverity[config.SeverityError])
	assert.Equal(t, 1, result.Stats.Suppressed)
	assert.Equal(t, 0, result.Stats.NeedlessDisables)
	assert.True(t, result.HasFailures())
}

func TestRunner_Run_SerialAndParallelAgree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := make(map[string]string)
	for i := range 12 {
		name := filepath.Join("docs", string(rune('a'+i))+".md")
		content := "ok\n"
		if i%3 == 0 {
			content = "bad \n"
		}
		files[name] = content
	}
	writeFiles(t, dir, files)

	run := func(jobs int) *runner.Result {
		result, err := newRunner(newTrailingRule()).Run(context.Background(), runner.Options{
			WorkingDir: dir,
			Jobs:       jobs,
			Config:     config.NewConfig(),
		})
		require.NoError(t, err)
		return result
	}

	serial := run(1)
	parallel := run(8)

	assert.Equal(t, serial.Stats, parallel.Stats)
	require.Len(t, parallel.Files, len(serial.Files))
	for i := range serial.Files {
		assert.Equal(t, serial.Files[i].Path, parallel.Files[i].Path)
		assert.Equal(t, serial.Files[i].Result.Diagnostics, parallel.Files[i].Result.Diagnostics)
	}
	assert.Equal(t, 4, serial.Stats.DiagnosticsTotal)
}

func TestRunner_Run_EachFileLintedOnce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"1.md": "a\n", "2.md": "b\n", "3.md": "c\n"})

	rule := newTrailingRule()
	_, err := newRunner(rule).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Jobs:       3,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), rule.calls.Load())
}

func TestRunner_Run_WithFixes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"fix.md": "a \nb\n"})

	cfg := config.NewConfig()
	cfg.Fix = true

	result, err := newRunner(newTrailingRule()).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesModified)
	assert.Equal(t, 1, result.Stats.FixesApplied)
	assert.Equal(t, 0, result.Stats.DiagnosticsTotal)

	content, err := os.ReadFile(filepath.Join(dir, "fix.md"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))
}

func TestRunner_Run_DryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"fix.md": "a \n"})

	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.DryRun = true

	result, err := newRunner(newTrailingRule()).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stats.FilesModified)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "a\n", string(result.Files[0].Result.ModifiedContent))

	content, err := os.ReadFile(filepath.Join(dir, "fix.md"))
	require.NoError(t, err)
	assert.Equal(t, "a \n", string(content))
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "a\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner(newTrailingRule()).Run(ctx, runner.Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestResult_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		result       *runner.Result
		wantIssues   bool
		wantFailures bool
	}{
		{name: "nil", result: nil},
		{
			name: "warnings only",
			result: &runner.Result{Stats: runner.Stats{
				DiagnosticsTotal:      2,
				DiagnosticsBySeverity: map[config.Severity]int{config.SeverityWarning: 2},
			}},
			wantIssues: true,
		},
		{
			name: "errors",
			result: &runner.Result{Stats: runner.Stats{
				DiagnosticsTotal:      1,
				DiagnosticsBySeverity: map[config.Severity]int{config.SeverityError: 1},
			}},
			wantIssues:   true,
			wantFailures: true,
		},
		{
			name:         "file errors",
			result:       &runner.Result{Stats: runner.Stats{FilesErrored: 1}},
			wantFailures: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantIssues, tt.result.HasIssues())
			assert.Equal(t, tt.wantFailures, tt.result.HasFailures())
		})
	}
}

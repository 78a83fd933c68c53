package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintcore/internal/cli"
	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/runner"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	require.NotNil(t, cmd)
	assert.Equal(t, "lintcore", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"lint", "rules", "config", "env", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	for _, name := range []string{"config", "color", "log-level", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestLintCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	lintCmd, _, err := cmd.Find([]string{"lint"})
	require.NoError(t, err)

	for _, name := range []string{
		"fix", "dry-run", "format", "jobs", "ignore", "include", "ext",
		"enable", "disable", "quiet", "ignore-disables",
		"report-needless-disables", "directive-prefix", "flavor",
		"strict", "no-context", "compact", "follow-symlinks", "no-config",
	} {
		assert.NotNil(t, lintCmd.Flags().Lookup(name), name)
	}

	require.NoError(t, lintCmd.Args(lintCmd, []string{"a.md", "docs/"}))
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "abc123")
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	stats := func(errs, warns, failed int) *runner.Result {
		return &runner.Result{Stats: runner.Stats{
			FilesErrored: failed,
			DiagnosticsBySeverity: map[config.Severity]int{
				config.SeverityError:   errs,
				config.SeverityWarning: warns,
			},
		}}
	}

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{name: "nil", want: cli.ExitSuccess},
		{name: "clean", result: stats(0, 0, 0), want: cli.ExitSuccess},
		{name: "errors", result: stats(2, 1, 0), want: cli.ExitLintErrors},
		{name: "warnings", result: stats(0, 3, 0), want: cli.ExitSuccess},
		{name: "warnings strict", result: stats(0, 3, 0), strict: true, want: cli.ExitLintWarnings},
		{name: "file failures", result: stats(1, 0, 1), want: cli.ExitIOError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromResult(tt.result, tt.strict))
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(errors.New("unknown flag")))

	wrapped := &cli.ExitError{Code: cli.ExitConfigError, Err: errors.New("bad config")}
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(wrapped))
	assert.Equal(t, "bad config", wrapped.Error())
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"lint", "--help"})

	require.NoError(t, cmd.Execute())

	help := out.String()
	assert.Contains(t, help, "Usage:")
	assert.Contains(t, help, "lintcore lint [paths...]")
	assert.Contains(t, help, "Examples:")
	assert.Contains(t, help, "--report-needless-disables")
	assert.Contains(t, help, "Global Flags:")
	assert.Contains(t, help, "--config string")
}

package cli

import (
	"errors"
	"fmt"

	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/runner"
)

// Exit codes for lintcore.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found errors.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint found warnings in strict mode.
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates a file could not be read, linted or written.
	ExitIOError = 74
)

// ErrLintIssuesFound is returned when lint issues decide the exit code.
var ErrLintIssuesFound = errors.New("lint issues found")

// ExitError carries a process exit code along with its cause.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func exitError(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitInvalidUsage
}

// ExitCodeFromResult determines the exit code of a finished run.
// File failures outrank lint findings.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	switch {
	case result.Stats.FilesErrored > 0:
		return ExitIOError
	case result.Stats.DiagnosticsBySeverity[config.SeverityError] > 0:
		return ExitLintErrors
	case strict && result.Stats.DiagnosticsBySeverity[config.SeverityWarning] > 0:
		return ExitLintWarnings
	default:
		return ExitSuccess
	}
}

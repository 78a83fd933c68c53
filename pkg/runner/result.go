package runner

import (
	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/lint"
)

// FileOutcome is the pipeline result for one discovered file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result is nil when Error is set.
	Result *lint.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesSkipped    int
	FilesErrored    int
	FilesWithIssues int
	FilesModified   int

	// DiagnosticsTotal counts emitted diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsBySeverity maps severity names to counts.
	DiagnosticsBySeverity map[config.Severity]int

	// FixesApplied counts fixes applied across all files.
	FixesApplied int

	// Suppressed counts reports silenced by disable comments.
	Suppressed int

	// NeedlessDisables counts disable comments that silenced nothing.
	NeedlessDisables int

	// RuleErrors counts rules that failed internally.
	RuleErrors int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasFailures reports whether any error diagnostic or file error occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsBySeverity[config.SeverityError] > 0 || r.Stats.FilesErrored > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

func newStats() Stats {
	return Stats{DiagnosticsBySeverity: make(map[config.Severity]int)}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	pr := outcome.Result
	if pr == nil {
		return
	}

	r.Stats.FilesProcessed++
	if pr.Skipped {
		r.Stats.FilesSkipped++
	}
	if pr.Written {
		r.Stats.FilesModified++
	}

	dr := pr.DocumentResult
	if dr == nil {
		return
	}
	if dr.Fixes != nil {
		r.Stats.FixesApplied += dr.Fixes.Applied
	}
	r.Stats.Suppressed += len(dr.Suppressed)
	r.Stats.NeedlessDisables += len(dr.Needless)
	r.Stats.RuleErrors += len(dr.RuleErrors)

	r.Stats.DiagnosticsTotal += len(dr.Diagnostics)
	if len(dr.Diagnostics) > 0 {
		r.Stats.FilesWithIssues++
	}
	for _, d := range dr.Diagnostics {
		r.Stats.DiagnosticsBySeverity[d.Severity]++
	}
}

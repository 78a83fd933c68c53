package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/yaklabco/lintcore/pkg/lint"
	"github.com/yaklabco/lintcore/pkg/runner"
	"github.com/yaklabco/lintcore/pkg/suppress"
)

// jsonVersion is bumped when the JSON layout changes incompatibly.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path         string            `json:"path"`
	Diagnostics  []lint.Diagnostic `json:"diagnostics"`
	Needless     []JSONNeedless    `json:"needlessDisables,omitempty"`
	Suppressed   int               `json:"suppressed"`
	FixesApplied int               `json:"fixesApplied,omitempty"`
	Modified     bool              `json:"modified,omitempty"`
	RuleErrors   map[string]string `json:"ruleErrors,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// JSONNeedless is an unused disable comment.
type JSONNeedless struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Kind   string `json:"kind"`
	Rule   string `json:"rule"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked     int            `json:"filesChecked"`
	FilesWithIssues  int            `json:"filesWithIssues"`
	FilesModified    int            `json:"filesModified"`
	FilesErrored     int            `json:"filesErrored"`
	TotalIssues      int            `json:"totalIssues"`
	BySeverity       map[string]int `json:"bySeverity"`
	FixesApplied     int            `json:"fixesApplied"`
	Suppressed       int            `json:"suppressed"`
	NeedlessDisables int            `json:"needlessDisables"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{BySeverity: make(map[string]int)},
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)
		fr := JSONFileResult{
			Path:        path,
			Diagnostics: make([]lint.Diagnostic, 0),
		}

		if file.Error != nil {
			fr.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Result != nil && file.Result.DocumentResult != nil {
			dr := file.Result.DocumentResult
			fr.Modified = file.Result.Written
			fr.Suppressed = len(dr.Suppressed)
			if dr.Fixes != nil {
				fr.FixesApplied = dr.Fixes.Applied
			}

			for _, d := range dr.Diagnostics {
				d.FilePath = path
				fr.Diagnostics = append(fr.Diagnostics, d)
				output.Summary.BySeverity[string(d.Severity)]++
			}
			for _, n := range dr.Needless {
				fr.Needless = append(fr.Needless, needlessJSON(n))
			}
			if len(dr.RuleErrors) > 0 {
				fr.RuleErrors = make(map[string]string, len(dr.RuleErrors))
				for name, err := range dr.RuleErrors {
					fr.RuleErrors[name] = err.Error()
				}
			}
		}

		output.Summary.TotalIssues += len(fr.Diagnostics)
		output.Summary.FixesApplied += fr.FixesApplied
		output.Summary.Suppressed += fr.Suppressed
		output.Summary.NeedlessDisables += len(fr.Needless)
		if len(fr.Diagnostics) > 0 {
			output.Summary.FilesWithIssues++
		}
		if fr.Modified {
			output.Summary.FilesModified++
		}

		output.Files = append(output.Files, fr)
		output.Summary.FilesChecked++
	}

	sort.SliceStable(output.Files, func(i, j int) bool {
		return output.Files[i].Path < output.Files[j].Path
	})

	return output
}

func needlessJSON(n suppress.NeedlessDisable) JSONNeedless {
	return JSONNeedless{
		Line:   n.Directive.Line,
		Column: n.Directive.Column,
		Kind:   n.Directive.Kind.String(),
		Rule:   n.Rule,
	}
}

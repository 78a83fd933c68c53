package reporter

import (
	"bufio"
	"context"
	"fmt"
	"sort"

	"github.com/yaklabco/lintcore/internal/ui/pretty"
	"github.com/yaklabco/lintcore/pkg/runner"
)

// TextReporter formats results as styled terminal output grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		width:  pretty.TerminalWidth(opts.Writer),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		total += r.reportFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := r.opts.displayPath(file.Path)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return 0
	}
	if file.Result == nil || file.Result.DocumentResult == nil {
		return 0
	}

	if file.Result.Skipped {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Warning.Render("fixes not written: "+file.Result.SkipReason))
	}

	dr := file.Result.DocumentResult
	if len(dr.Diagnostics) == 0 && len(dr.Needless) == 0 && len(dr.RuleErrors) == 0 {
		return 0
	}

	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(dr.Diagnostics)))

	// Source context is only accurate while the document is unmodified.
	showContext := r.opts.ShowContext && !dr.Modified && dr.Document != nil

	for i := range dr.Diagnostics {
		diag := dr.Diagnostics[i]
		diag.FilePath = path

		var source string
		if showContext {
			source = dr.Document.LineText(diag.Line)
		}
		fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, source, r.width))
	}

	for _, n := range dr.Needless {
		fmt.Fprint(r.bw, r.styles.FormatNeedless(path, n))
	}

	names := make([]string, 0, len(dr.RuleErrors))
	for name := range dr.RuleErrors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(r.bw, "  %s  %s\n",
			r.styles.Failure.Render("rule "+name+" failed:"),
			dr.RuleErrors[name])
	}

	fmt.Fprintln(r.bw)
	return len(dr.Diagnostics)
}

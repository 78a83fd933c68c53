package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/lintcore/internal/ui/pretty"
	"github.com/yaklabco/lintcore/pkg/fix"
	"github.com/yaklabco/lintcore/pkg/runner"
)

// DiffReporter prints the changes a fix pass made, or would make under
// --dry-run, as git-style unified diffs.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. It prints no diagnostics, so the count is
// always zero.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var files, additions, deletions int
	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Result == nil || !file.Result.Diff.HasChanges() {
			continue
		}

		diff := file.Result.Diff
		files++
		additions += diff.Additions
		deletions += diff.Deletions
		r.writeDiff(path, diff)
	}

	if r.opts.ShowSummary {
		r.writeSummary(files, additions, deletions)
	}
	return 0, nil
}

func (r *DiffReporter) writeDiff(path string, diff *fix.Diff) {
	fmt.Fprintln(r.bw, r.styles.DiffHeader.Render(fmt.Sprintf("diff --git a/%s b/%s", path, path)))
	fmt.Fprintln(r.bw, r.styles.DiffRemove.Render("--- a/"+path))
	fmt.Fprintln(r.bw, r.styles.DiffAdd.Render("+++ b/"+path))

	for _, h := range diff.Hunks {
		fmt.Fprintln(r.bw, r.styles.DiffHunk.Render(h.Header()))
		for _, l := range h.Lines {
			switch l.Op {
			case fix.OpInsert:
				fmt.Fprintln(r.bw, r.styles.DiffAdd.Render(l.String()))
			case fix.OpDelete:
				fmt.Fprintln(r.bw, r.styles.DiffRemove.Render(l.String()))
			default:
				fmt.Fprintln(r.bw, l.String())
			}
		}
	}
	fmt.Fprintln(r.bw)
}

// writeSummary prints "N files changed, X insertions(+), Y deletions(-)".
func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	if files == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No changes."))
		return
	}

	parts := []string{fmt.Sprintf("%d %s changed", files, plural(files, "file", "files"))}
	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", additions, plural(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", deletions, plural(deletions, "deletion", "deletions"))))
	}
	fmt.Fprintln(r.bw, strings.Join(parts, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

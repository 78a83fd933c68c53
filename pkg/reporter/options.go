package reporter

import (
	"io"
	"os"
	"path/filepath"
)

const bufWriterSize = 64 << 10

// Options configures a Reporter.
type Options struct {
	Writer io.Writer
	Format Format

	// Color is "auto", "always" or "never".
	Color string

	// ShowContext prints the source line under each diagnostic.
	ShowContext bool
	ShowSummary bool

	// Compact writes JSON on a single line.
	Compact bool

	// WorkingDir, when set, makes absolute paths relative to it.
	WorkingDir string
}

// DefaultOptions is styled text on stdout with context and a summary.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
	}
}

func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" || !filepath.IsAbs(path) {
		return path
	}
	if rel, err := filepath.Rel(o.WorkingDir, path); err == nil {
		return rel
	}
	return path
}

// Package reporter formats lint results for terminals and machines.
package reporter

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/lintcore/pkg/runner"
)

// Reporter writes a run's results and returns how many diagnostics it printed.
type Reporter interface {
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// Format names an output layout.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatDiff Format = "diff"
)

var constructors = map[Format]func(Options) Reporter{
	FormatText: func(o Options) Reporter { return NewTextReporter(o) },
	FormatJSON: func(o Options) Reporter { return NewJSONReporter(o) },
	FormatDiff: func(o Options) Reporter { return NewDiffReporter(o) },
}

// ParseFormat maps a user-supplied name to a Format. Empty means text.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FormatText, nil
	}
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: text, json, diff", name)
	}
	return f, nil
}

func (f Format) String() string { return string(f) }

// IsValid reports whether a reporter exists for f.
func (f Format) IsValid() bool {
	_, ok := constructors[f]
	return ok
}

// New builds the reporter selected by opts.Format, writing to stdout when
// opts.Writer is nil.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}

	build, ok := constructors[opts.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
	return build(opts), nil
}

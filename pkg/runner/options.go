// Package runner lints many Markdown files concurrently.
package runner

import "github.com/yaklabco/lintcore/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are files or directories to process. Defaults to ".".
	Paths []string

	// WorkingDir resolves relative Paths and anchors glob patterns.
	// Empty means the process working directory.
	WorkingDir string

	// Extensions are the lowercase file extensions treated as Markdown.
	Extensions []string

	// IncludeGlobs restrict discovery to matching relative paths.
	IncludeGlobs []string

	// ExcludeGlobs skip matching files and directories. Patterns use
	// doublestar syntax, e.g. "vendor/**" or "**/CHANGELOG.md".
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks.
	FollowSymlinks bool

	// Jobs limits concurrent documents. 0 or negative means runtime.NumCPU().
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// excludes merges CLI exclusions with the config ignore list.
func (o Options) excludes() []string {
	if o.Config == nil || len(o.Config.Ignore) == 0 {
		return o.ExcludeGlobs
	}
	out := make([]string, 0, len(o.ExcludeGlobs)+len(o.Config.Ignore))
	out = append(out, o.ExcludeGlobs...)
	return append(out, o.Config.Ignore...)
}

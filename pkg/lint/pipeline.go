package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/document"
	"github.com/yaklabco/lintcore/pkg/fix"
	"github.com/yaklabco/lintcore/pkg/fsutil"
)

// Errors returned by Pipeline, matched with errors.Is.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrLintFailure      = errors.New("lint failure")
	ErrWriteFailure     = errors.New("write failure")
)

// PipelineResult is the outcome for one file.
type PipelineResult struct {
	*DocumentResult

	Path string

	// OriginalInfo is nil for in-memory content.
	OriginalInfo *fsutil.Snapshot

	// ModifiedContent holds the fixed bytes; nil when nothing changed.
	ModifiedContent []byte

	// Diff compares the original content with ModifiedContent; nil when
	// nothing changed.
	Diff *fix.Diff

	// Skipped is set when fixed content was withheld from disk.
	Skipped    bool
	SkipReason string

	Written bool
}

// Summary describes the file's outcome in a couple of words.
func (pr *PipelineResult) Summary() string {
	if pr.Skipped {
		return "skipped: " + pr.SkipReason
	}
	if pr.Written {
		return "fixed"
	}
	if pr.ModifiedContent != nil {
		return "changes pending"
	}
	if pr.DocumentResult != nil && pr.HasIssues() {
		return "issues found"
	}
	return "ok"
}

// PipelineOptions controls how fixed content reaches disk.
type PipelineOptions struct {
	DryRun bool

	// StrictRaceDetection re-hashes the file before writing. Otherwise
	// only size and mtime are compared.
	StrictRaceDetection bool
}

// PipelineOptionsFromConfig enables strict race detection and copies DryRun.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	return PipelineOptions{
		DryRun:              cfg != nil && cfg.DryRun,
		StrictRaceDetection: true,
	}
}

// Pipeline lints one file at a time and writes fixes back to it.
type Pipeline struct {
	Engine *Engine
}

// NewPipeline wraps engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile reads path, lints it and writes fixed content back atomically.
// The write is withheld in dry-run mode and when the file changed on disk
// after it was read.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	content, snap, err := fsutil.Read(ctx, path)
	if err != nil {
		return nil, classifyReadError(err)
	}

	result, err := p.ProcessContent(ctx, path, content, cfg)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = snap

	if result.ModifiedContent == nil || opts.DryRun {
		return result, nil
	}

	changed, err := snap.Changed(ctx, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if changed {
		result.Skipped, result.SkipReason = true, "file modified during processing"
		return result, nil
	}

	if err := fsutil.WriteAtomic(ctx, path, result.ModifiedContent, snap.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true
	return result, nil
}

// ProcessContent lints content as if it were read from path.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*PipelineResult, error) {
	doc := document.New(path, content)

	dr, err := p.Engine.Lint(ctx, doc, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLintFailure, err)
	}

	result := &PipelineResult{DocumentResult: dr, Path: path}
	if dr.Modified {
		result.ModifiedContent = doc.Content
		result.Diff = fix.NewDiff(path, content, doc.Content)
	}
	return result, nil
}

func classifyReadError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied), errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}

// IsPipelineError reports whether err carries one of the pipeline sentinels.
func IsPipelineError(err error) bool {
	for _, target := range []error{ErrFileNotFound, ErrPermissionDenied, ErrLintFailure, ErrWriteFailure} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

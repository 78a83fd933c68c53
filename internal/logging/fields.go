package logging

// Structured log keys. Every log call uses these instead of string literals.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"
	FieldConfigFile = "config_file"

	// Run settings.
	FieldFix    = "fix"
	FieldDryRun = "dry_run"
	FieldJobs   = "jobs"

	// Per-document pass.
	FieldRule       = "rule"
	FieldLine       = "line"
	FieldDelta      = "delta"
	FieldSuppressed = "suppressed"
	FieldDirectives = "directives"
	FieldFixes      = "fixes"
	FieldRanges     = "ranges"
	FieldRangeKeys  = "range_keys"
	FieldFixRules   = "fix_rules"

	// Run totals.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldFilesModified    = "files_modified"

	// Build info.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

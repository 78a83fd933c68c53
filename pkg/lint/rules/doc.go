// Package rules provides the built-in lint rules for lintcore.
//
// # Rules
//
//   - LC001: no-trailing-spaces - Lines should not have trailing spaces
//
//   - LC002: no-hard-tabs - Hard tabs should not be used
//
//   - LC003: no-multiple-blanks - Multiple consecutive blank lines
//
//   - LC004: line-length - Line length should not exceed the configured maximum
//
// Rules register themselves with lint.DefaultRegistry on import. Every rule
// reports through lint.RuleContext.Report so disable comments, severities and
// deferred fixes are handled uniformly by the session.
package rules

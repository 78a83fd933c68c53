// Package severity resolves the effective severity of a reported problem.
package severity

import (
	"fmt"

	"github.com/yaklabco/lintcore/pkg/config"
)

// Func computes a severity from a problem's message arguments.
// Returning an empty severity selects the configured default.
type Func func(args []any) (config.Severity, error)

// Value is either a literal severity or a function computing one.
// The zero Value is unset.
type Value struct {
	literal config.Severity
	fn      Func
}

// Literal returns a Value that always evaluates to s.
func Literal(s config.Severity) Value {
	return Value{literal: s}
}

// Computed returns a Value evaluated by fn.
func Computed(fn Func) Value {
	return Value{fn: fn}
}

// IsSet returns true if the value carries a literal or a function.
func (v Value) IsSet() bool {
	return v.fn != nil || v.literal != ""
}

// Eval evaluates the value with args. Nil args are passed as an empty slice.
func (v Value) Eval(args []any) (config.Severity, error) {
	if v.fn == nil {
		return v.literal, nil
	}
	if args == nil {
		args = []any{}
	}
	return v.fn(args)
}

// Resolve returns the severity for a problem: its own value when set,
// otherwise the rule's configured value, otherwise fallback. A value that
// evaluates to an empty severity also yields fallback, which itself
// defaults to error.
func Resolve(problem, rule Value, fallback config.Severity, args []any) (config.Severity, error) {
	if fallback == "" {
		fallback = config.SeverityError
	}

	chosen := problem
	if !chosen.IsSet() {
		chosen = rule
	}
	if !chosen.IsSet() {
		return fallback, nil
	}

	sev, err := chosen.Eval(args)
	if err != nil {
		return "", fmt.Errorf("evaluate severity: %w", err)
	}
	if sev == "" {
		return fallback, nil
	}
	return sev, nil
}

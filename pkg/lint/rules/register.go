package rules

import "github.com/yaklabco/lintcore/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewTrailingWhitespaceRule()) // LC001
	registry.Register(NewHardTabsRule())           // LC002
	registry.Register(NewMultipleBlankLinesRule()) // LC003
	registry.Register(NewMaxLineLengthRule())      // LC004
}

// RegisterAliases registers alternate names accepted in configuration and
// disable comments.
func RegisterAliases(registry *lint.Registry) {
	registry.RegisterAlias("no-multiple-blank-lines", "LC003")
	registry.RegisterAlias("max-line-length", "LC004")
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterAliases(lint.DefaultRegistry)
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintcore/internal/configloader"
	"github.com/yaklabco/lintcore/pkg/lint"
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity,omitempty"`
	Enabled     bool     `json:"enabled"`
	Fixable     bool     `json:"fixable"`
	Tags        []string `json:"tags"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, names, tags and
whether they support auto-fixing. Any of the ID, the name or a tag can be
used in config files, --enable/--disable and directive comments.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()
			if format == formatJSON {
				return writeRulesJSON(cmd.OutOrStdout(), rules)
			}
			return writeRulesTable(cmd.OutOrStdout(), rules)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func describeRule(rule lint.Rule) ruleInfo {
	tags := rule.Tags()
	if tags == nil {
		tags = []string{}
	}
	return ruleInfo{
		ID:          rule.ID(),
		Name:        rule.Name(),
		Description: rule.Description(),
		Severity:    string(rule.DefaultSeverity()),
		Enabled:     rule.DefaultEnabled(),
		Fixable:     rule.CanFix(),
		Tags:        tags,
	}
}

func writeRulesJSON(w io.Writer, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, describeRule(rule))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	return nil
}

func writeRulesTable(w io.Writer, rules []lint.Rule) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTAGS\tFIX\tDESCRIPTION")
	for _, rule := range rules {
		info := describeRule(rule)
		fixable := "-"
		if info.Fixable {
			fixable = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			info.ID, info.Name, strings.Join(info.Tags, ","), fixable, info.Description)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write rules: %w", err)
	}
	return nil
}

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List supported environment variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, v := range configloader.ListEnvVars() {
				fmt.Fprintf(tw, "%s\t%s\n", v.Name, v.Description)
			}
			if err := tw.Flush(); err != nil {
				return fmt.Errorf("write env vars: %w", err)
			}
			return nil
		},
	}
}

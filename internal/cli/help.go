package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/lintcore/internal/ui/pretty"
)

// helpTheme renders cobra help and usage text with lipgloss styles.
type helpTheme struct {
	heading lipgloss.Style
	command lipgloss.Style
	flag    lipgloss.Style
	dim     lipgloss.Style
}

func newHelpTheme(colorMode string, w io.Writer) helpTheme {
	if !pretty.IsColorEnabled(colorMode, w) {
		plain := lipgloss.NewStyle()
		return helpTheme{heading: plain, command: plain, flag: plain, dim: plain}
	}
	return helpTheme{
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

const usageTemplate = `{{heading "Usage:"}}{{if .Runnable}}
  {{command .UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{command .CommandPath}} [command]{{end}}{{if .HasExample}}

{{heading "Examples:"}}
{{dim .Example}}{{end}}{{if .HasAvailableSubCommands}}

{{heading "Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{command (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flags .LocalFlags}}{{end}}{{if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flags .InheritedFlags}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{command (print .CommandPath " [command] --help")}}" for more information about a command.{{end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{trimRight .}}

{{end}}` + usageTemplate

func (h helpTheme) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":   h.heading.Render,
		"command":   h.command.Render,
		"dim":       h.dim.Render,
		"flags":     h.flags,
		"rpad":      rpad,
		"trimRight": trimRightLines,
	}
}

// flags styles pflag usage output. The flag names on each line are colored
// and the type placeholder dimmed; column alignment is kept as pflag laid it out.
func (h helpTheme) flags(set interface{ FlagUsages() string }) string {
	lines := strings.Split(strings.TrimRight(set.FlagUsages(), "\n"), "\n")
	for i, line := range lines {
		body := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(body)]

		split := strings.Index(body, "  ")
		if split < 0 {
			continue
		}

		tokens := strings.Fields(body[:split])
		for j, tok := range tokens {
			if strings.HasPrefix(tok, "-") {
				name := strings.TrimSuffix(tok, ",")
				tokens[j] = h.flag.Render(name) + tok[len(name):]
			} else {
				tokens[j] = h.dim.Render(tok)
			}
		}
		lines[i] = indent + strings.Join(tokens, " ") + body[split:]
	}
	return strings.Join(lines, "\n")
}

// apply installs the themed help and usage output on cmd and its children.
func (h helpTheme) apply(cmd *cobra.Command) {
	usage := template.Must(template.New("usage").Funcs(h.funcs()).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(h.funcs()).Parse(helpTemplate))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		if err := usage.Execute(c.OutOrStderr(), c); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimRightLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

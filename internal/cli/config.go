package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintcore/internal/configloader"
	"github.com/yaklabco/lintcore/internal/logging"
	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/lint"
)

// loadConfig resolves the layered configuration and logs its warnings.
func loadConfig(
	ctx context.Context,
	workDir, explicitPath string,
	noDiscovery bool,
	cliCfg *config.Config,
) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        explicitPath,
		IgnoreSystemConfig:  noDiscovery,
		IgnoreUserConfig:    noDiscovery,
		IgnoreProjectConfig: noDiscovery,
		CLIConfig:           cliCfg,
		Registry:            lint.DefaultRegistry,
	})
	if err != nil {
		return nil, exitError(ExitConfigError, fmt.Errorf("load configuration: %w", err))
	}

	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}
	return loaded.Config, nil
}

func newConfigCommand(root *rootFlags) *cobra.Command {
	var (
		format   string
		noConfig bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration lintcore would use in the current directory,
after merging system, user, project and explicit config files with
LINTCORE_* environment variables. Rule keys are shown by rule name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return exitError(ExitInternalError, fmt.Errorf("get working directory: %w", err))
			}

			cfg, err := loadConfig(cmd.Context(), workDir, root.configPath, noConfig, &config.Config{})
			if err != nil {
				return err
			}

			var data []byte
			switch strings.ToLower(format) {
			case "yaml", "yml":
				data, err = cfg.ToYAML()
			case "toml":
				data, err = cfg.ToTOML()
			default:
				return exitError(ExitInvalidUsage, fmt.Errorf("unsupported config format %q (want yaml or toml)", format))
			}
			if err != nil {
				return exitError(ExitInternalError, err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml, toml")
	cmd.Flags().BoolVar(&noConfig, "no-config", false, "skip config file discovery; --config still applies")

	return cmd
}

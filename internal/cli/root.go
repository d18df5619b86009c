// Package cli implements the command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/maple/internal/config"
	"github.com/aidanlsb/maple/internal/ui"
)

var (
	// Global flags
	configPath   string
	logLevelFlag string

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "maple",
	Short: "maple - fuzzy filter and rank lines",
	Long: `maple fuzzy-matches a query against lines from a file, a command,
a list or standard input, ranks them by score, and shortens long
lines so the matched characters stay visible.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := configureLogging(logLevelFlag); err != nil {
			return err
		}

		// Config commands report their own load errors.
		switch cmd.Name() {
		case "completion", "help", "version", "config":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return fmt.Errorf("failed to load config: %w\n\nRun 'maple config show' to inspect it", err)
		}
		if accent := strings.TrimSpace(cfg.UI.Accent); accent != "" {
			ui.ConfigureTheme(accent)
		}
		cliLog.Debug("config_loaded", "path", resolvedConfigPath)
		return nil
	},
}

// Execute runs the CLI. An interrupt cancels the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "Diagnostic log level on stderr (debug|info|warn|error)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// commandContext returns the command's context, or Background when the
// command is invoked directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}

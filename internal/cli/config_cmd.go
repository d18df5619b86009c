package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/maple/internal/config"
	"github.com/aidanlsb/maple/internal/matcher"
	"github.com/aidanlsb/maple/internal/ui"
)

type globalConfigContext struct {
	cfg          *config.Config
	configPath   string
	configExists bool
}

var (
	configSetAlgo     string
	configSetWinWidth int
	configSetNumber   int
	configSetIcon     bool
	configSetUIAccent string

	configUnsetAlgo     bool
	configUnsetWinWidth bool
	configUnsetNumber   bool
	configUnsetIcon     bool
	configUnsetUIAccent bool
)

func loadGlobalConfigContextAllowMissing() (*globalConfigContext, error) {
	path := config.ResolveConfigPath(configPath)
	ctx := &globalConfigContext{cfg: &config.Config{}, configPath: path}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ctx, nil
		}
		return nil, err
	}

	loaded, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	ctx.cfg = loaded
	ctx.configExists = true
	return ctx, nil
}

func configData(ctx *globalConfigContext) map[string]interface{} {
	algo, _ := ctx.cfg.GetAlgo()
	return map[string]interface{}{
		"config_path": ctx.configPath,
		"exists":      ctx.configExists,
		"filter": map[string]interface{}{
			"algo":     algo.String(),
			"winwidth": ctx.cfg.Filter.WinWidth,
			"number":   ctx.cfg.Filter.Number,
			"icon":     ctx.cfg.Filter.Icon,
		},
		"ui": map[string]interface{}{
			"accent": strings.TrimSpace(ctx.cfg.UI.Accent),
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	ctx, err := loadGlobalConfigContextAllowMissing()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(configData(ctx), nil)
		return nil
	}

	if !ctx.configExists {
		fmt.Printf("Config file does not exist: %s\n", ctx.configPath)
		fmt.Println("Run 'maple config init' to create it.")
		return nil
	}

	algo, _ := ctx.cfg.GetAlgo()
	fmt.Printf("config: %s\n", ctx.configPath)
	fmt.Printf("filter.algo: %s\n", algo)
	if v := ctx.cfg.Filter.WinWidth; v > 0 {
		fmt.Printf("filter.winwidth: %d\n", v)
	}
	if v := ctx.cfg.Filter.Number; v > 0 {
		fmt.Printf("filter.number: %d\n", v)
	}
	fmt.Printf("filter.icon: %t\n", ctx.cfg.Filter.Icon)
	if v := strings.TrimSpace(ctx.cfg.UI.Accent); v != "" {
		fmt.Printf("ui.accent: %s\n", v)
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage maple config.toml settings",
	Long: `Manage maple config.toml settings.

Values in the config file are defaults; command-line flags override them.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ResolveConfigPath(configPath)
		if isJSONOutput() {
			_, statErr := os.Stat(path)
			outputSuccess(map[string]interface{}{
				"config_path": path,
				"exists":      statErr == nil,
			}, nil)
			return nil
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := config.ResolveConfigPath(configPath)
		created, err := config.CreateDefaultAt(targetPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": targetPath,
				"created":     created,
			}, nil)
			return nil
		}

		if created {
			fmt.Println(ui.Successf("Created config: %s", ui.FilePath(targetPath)))
		} else {
			fmt.Printf("Config already exists: %s\n", targetPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one or more config.toml fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		changed := make([]string, 0, 5)

		if cmd.Flags().Changed("algo") {
			algo, err := matcher.ParseAlgo(configSetAlgo)
			if err != nil {
				return handleError(ErrInvalidInput, err, "")
			}
			ctx.cfg.Filter.Algo = algo.String()
			changed = append(changed, "filter.algo")
		}

		if cmd.Flags().Changed("winwidth") {
			if configSetWinWidth <= 0 {
				return handleErrorMsg(ErrInvalidInput, "winwidth must be positive; use 'maple config unset --winwidth' to clear it", "")
			}
			ctx.cfg.Filter.WinWidth = configSetWinWidth
			changed = append(changed, "filter.winwidth")
		}

		if cmd.Flags().Changed("number") {
			if configSetNumber <= 0 {
				return handleErrorMsg(ErrInvalidInput, "number must be positive; use 'maple config unset --number' to clear it", "")
			}
			ctx.cfg.Filter.Number = configSetNumber
			changed = append(changed, "filter.number")
		}

		if cmd.Flags().Changed("icon") {
			ctx.cfg.Filter.Icon = configSetIcon
			changed = append(changed, "filter.icon")
		}

		if cmd.Flags().Changed("ui-accent") {
			value := strings.TrimSpace(configSetUIAccent)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "ui-accent cannot be empty; use 'maple config unset --ui-accent' to clear it", "")
			}
			ctx.cfg.UI.Accent = value
			changed = append(changed, "ui.accent")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields provided; set at least one --algo/--winwidth/--number/--icon/--ui-accent", "")
		}

		if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		ctx.configExists = true
		if isJSONOutput() {
			data := configData(ctx)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Println(ui.Successf("Updated config: %s", ui.FilePath(ctx.configPath)))
		fmt.Printf("changed: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Clear one or more config.toml fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if !ctx.configExists {
			return handleErrorMsg(ErrFileNotFound, fmt.Sprintf("config file not found: %s", ctx.configPath), "Run 'maple config init' first")
		}

		changed := make([]string, 0, 5)
		if configUnsetAlgo {
			ctx.cfg.Filter.Algo = ""
			changed = append(changed, "filter.algo")
		}
		if configUnsetWinWidth {
			ctx.cfg.Filter.WinWidth = 0
			changed = append(changed, "filter.winwidth")
		}
		if configUnsetNumber {
			ctx.cfg.Filter.Number = 0
			changed = append(changed, "filter.number")
		}
		if configUnsetIcon {
			ctx.cfg.Filter.Icon = false
			changed = append(changed, "filter.icon")
		}
		if configUnsetUIAccent {
			ctx.cfg.UI.Accent = ""
			changed = append(changed, "ui.accent")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields selected; pass one or more unset flags", "")
		}

		if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			data := configData(ctx)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Println(ui.Successf("Updated config: %s", ui.FilePath(ctx.configPath)))
		fmt.Printf("cleared: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current config.toml values",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	configSetCmd.Flags().StringVar(&configSetAlgo, "algo", "", "Set the default match algorithm (fzy|skim)")
	configSetCmd.Flags().IntVar(&configSetWinWidth, "winwidth", 0, "Set the default display width")
	configSetCmd.Flags().IntVar(&configSetNumber, "number", 0, "Set the default top-N limit")
	configSetCmd.Flags().BoolVar(&configSetIcon, "icon", false, "Set whether icons are shown")
	configSetCmd.Flags().StringVar(&configSetUIAccent, "ui-accent", "", "Set match highlight colour (ANSI 0-255 or #RRGGBB)")

	configUnsetCmd.Flags().BoolVar(&configUnsetAlgo, "algo", false, "Clear filter.algo")
	configUnsetCmd.Flags().BoolVar(&configUnsetWinWidth, "winwidth", false, "Clear filter.winwidth")
	configUnsetCmd.Flags().BoolVar(&configUnsetNumber, "number", false, "Clear filter.number")
	configUnsetCmd.Flags().BoolVar(&configUnsetIcon, "icon", false, "Clear filter.icon")
	configUnsetCmd.Flags().BoolVar(&configUnsetUIAccent, "ui-accent", false, "Clear ui.accent")

	rootCmd.AddCommand(configCmd)
}

package cmd

import (
	"fmt"

	"github.com/mj1618/dockyard/internal/config"
	"github.com/mj1618/dockyard/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit the configuration",
	Long: `Show or edit the dockyard config file: canvas size, tab bar height, drop
button size, splitter thickness, minimum region size, the default layout file
and the windows registered on startup.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return output.Print(cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), configPath(cmd))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one config key and save the file",
	Long: `Set one config key by its YAML name and save the file.

Examples:
  dockyard config set width 1920
  dockyard config set layout ~/layouts/editor.xml
  dockyard config set windows "[Scene, Console, Inspector]"`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd, configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path := configPath(cmd)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	logger.Info("config saved", "path", path, "key", args[0])
	return output.Print(cfg)
}

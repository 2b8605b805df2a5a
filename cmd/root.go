package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mj1618/dockyard/internal/config"
	"github.com/mj1618/dockyard/internal/output"
	"github.com/mj1618/dockyard/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "dockyard",
	Short:         "Inspect and edit dockable window layouts",
	Long:          "A CLI tool that loads a docking layout file, docks, undocks and drags windows in it, and saves the result.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// logger is configured from --log-level before any command runs.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("layout", "", "Layout file (default: the config's layout)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: "+config.Path()+")")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output (no-op for YAML)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		l, err := parseLevel(level)
		if err != nil {
			return err
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
		slog.SetDefault(logger)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unsupported log level: %s (use debug, info, warn, or error)", s)
	}
}

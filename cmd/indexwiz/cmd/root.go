// Package cmd provides the CLI commands for indexwiz.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/indexwiz/internal/config"
	"github.com/Aman-CERP/indexwiz/internal/logging"
	"github.com/Aman-CERP/indexwiz/internal/ui"
	"github.com/Aman-CERP/indexwiz/pkg/version"
)

// Persistent flags and the state derived from them.
var (
	configPath     string
	noColor        bool
	debugMode      bool
	appConfig      *config.Config
	loggingCleanup func()
)

// NewRootCmd creates the root command for the indexwiz CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indexwiz",
		Short: "Interactively define a schema and create a search index",
		Long: `indexwiz asks for the fields of a new full-text index, one question
at a time, then creates an empty bleve index with that schema.

Run 'indexwiz new -i <dir>' to get started.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("indexwiz version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/indexwiz/config.yaml)")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.indexwiz/logs/")

	cmd.PersistentPreRunE = setupConfigAndLogging
	cmd.PersistentPostRunE = stopLogging

	cmd.AddCommand(newNewCmd())
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newLogsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupConfigAndLogging loads the configuration and installs the default logger.
func setupConfigAndLogging(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if noColor {
		cfg.UI.NoColor = true
	}
	appConfig = cfg

	if !debugMode {
		slog.SetDefault(logging.NewConsoleLogger(cmd.ErrOrStderr(), cfg.Logging.Level))
		return nil
	}

	logCfg := logging.DebugConfig()
	if cfg.Logging.File != "" {
		logCfg.FilePath = cfg.Logging.File
	}
	logCfg.MaxSizeMB = cfg.Logging.MaxSizeMB
	logCfg.MaxFiles = cfg.Logging.MaxFiles

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup debug logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	slog.Debug("debug_logging_enabled",
		slog.String("log_file", logCfg.FilePath),
		slog.String("version", version.Version),
		slog.String("command", cmd.CommandPath()))
	return nil
}

func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// DebugEnabled reports whether --debug was given.
func DebugEnabled() bool {
	return debugMode
}

// currentConfig returns the loaded configuration, or defaults when a
// command runs without the root pre-run.
func currentConfig() *config.Config {
	if appConfig == nil {
		return config.NewConfig()
	}
	return appConfig
}

// stylesFor picks styles for w honoring --no-color, NO_COLOR and the terminal.
func stylesFor(cmd *cobra.Command) ui.Styles {
	return ui.StylesFor(cmd.OutOrStdout(), currentConfig().UI.NoColor)
}

// Execute runs the root command. An interrupt cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

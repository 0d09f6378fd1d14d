package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/indexwiz/configs"
	"github.com/Aman-CERP/indexwiz/internal/config"
	"github.com/Aman-CERP/indexwiz/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user configuration",
		Long: `Manage the user configuration file.

Configuration precedence (lowest to highest):
  1. Hardcoded defaults
  2. Config file (--config, or ~/.config/indexwiz/config.yaml)
  3. Environment variables (NO_COLOR, INDEXWIZ_*)`,
		Example: `  # Write a config file with the defaults
  indexwiz config init

  # Show effective configuration
  indexwiz config show

  # Print user config file path
  indexwiz config path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create user configuration file",
		Long: `Create the user configuration file from a commented template
(~/.config/indexwiz/config.yaml, or $XDG_CONFIG_HOME/indexwiz/config.yaml).

With --force an existing file is backed up and rewritten with the effective
configuration, so values it sets are kept.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Back up and rewrite an existing configuration")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print user config file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), userConfigTarget())
			return err
		},
	}
}

// userConfigTarget is the file config init writes: --config if given,
// otherwise the user config path.
func userConfigTarget() string {
	if configPath != "" {
		return configPath
	}
	return config.GetUserConfigPath()
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	out := output.New(cmd.OutOrStdout(), stylesFor(cmd))
	target := userConfigTarget()

	if !fileExists(target) {
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(target, []byte(configs.UserConfigTemplate), 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}
		out.Success("Created user configuration")
		out.Statusf("📁", "Location: %s", target)
		return nil
	}

	if !force {
		out.Warning("User configuration already exists")
		out.Statusf("📁", "Location: %s", target)
		out.Status("💡", "Use --force to rewrite it (a backup is kept)")
		return nil
	}

	backupPath, err := config.BackupFile(target)
	if err != nil {
		return fmt.Errorf("failed to backup config: %w", err)
	}
	if err := currentConfig().WriteYAML(target); err != nil {
		return err
	}

	out.Success("Rewrote user configuration")
	out.Statusf("📁", "Location: %s", target)
	out.Statusf("💾", "Backup: %s", backupPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, jsonOutput bool) error {
	cfg := currentConfig()

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

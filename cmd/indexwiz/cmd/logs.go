package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/indexwiz/internal/logging"
)

func newLogsCmd() *cobra.Command {
	var (
		lines   int
		level   string
		pattern string
		file    string
		follow  bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the debug log",
		Long: `Show the last entries of the debug log written by commands run with
--debug.`,
		Example: `  indexwiz logs
  indexwiz logs -n 100 --level info
  indexwiz logs --grep index_created
  indexwiz logs -f`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogs(cmd, lines, level, pattern, file, follow)
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show")
	cmd.Flags().StringVar(&level, "level", "", "Minimum level (debug, info, warn, error)")
	cmd.Flags().StringVar(&pattern, "grep", "", "Only show lines matching this regular expression")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new entries until interrupted")
	cmd.Flags().StringVar(&file, "file", "", "Log file (default from config or ~/.indexwiz/logs/indexwiz.log)")

	return cmd
}

func runLogs(cmd *cobra.Command, lines int, level, pattern, file string, follow bool) error {
	if file == "" {
		file = currentConfig().Logging.File
	}
	path, err := logging.FindLogFile(file)
	if err != nil {
		return err
	}

	viewerCfg := logging.ViewerConfig{
		Level:  level,
		Styles: stylesFor(cmd),
	}
	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid --grep pattern: %w", err)
		}
		viewerCfg.Pattern = re
	}

	viewer := logging.NewViewer(viewerCfg, cmd.OutOrStdout())
	entries, err := viewer.Tail(path, lines)
	if err != nil {
		return err
	}
	viewer.Print(entries)

	if follow {
		return viewer.Follow(cmd.Context(), path)
	}
	return nil
}

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/indexwiz/internal/output"
	"github.com/Aman-CERP/indexwiz/internal/prompt"
	"github.com/Aman-CERP/indexwiz/internal/store"
	"github.com/Aman-CERP/indexwiz/internal/wizard"
)

func newNewCmd() *cobra.Command {
	var indexDir string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new index, defining its schema interactively",
		Long: `Ask for each field of the schema, print the resulting schema as JSON
and create an empty index in the given directory.

For every field you choose a name, a type (text or unsigned integer) and
whether it is stored, indexed and, for text, how much of each term ends up
in the index. The directory is created if needed; it must not already hold
an index.`,
		Example: `  # Create an index in ./wiki-index
  indexwiz new -i ./wiki-index

  # Answers can be scripted
  printf 'title\nT\nY\nY\nY\nY\nY\nN\n' | indexwiz new -i ./idx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNew(cmd, indexDir)
		},
	}

	cmd.Flags().StringVarP(&indexDir, "index", "i", "", "Index directory")
	_ = cmd.MarkFlagRequired("index")

	return cmd
}

func runNew(cmd *cobra.Command, indexDir string) error {
	cfg := currentConfig()
	styles := stylesFor(cmd)

	dirMode, err := cfg.DirMode()
	if err != nil {
		return err
	}

	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(),
		prompt.WithStyles(styles),
		prompt.WithWidth(cfg.UI.PromptWidth))
	out := output.New(cmd.OutOrStdout(), styles)

	w := wizard.New(p, out, store.BleveCreator{},
		wizard.WithDirMode(dirMode),
		wizard.WithLogger(slog.Default()))

	return w.Run(cmd.Context(), indexDir)
}

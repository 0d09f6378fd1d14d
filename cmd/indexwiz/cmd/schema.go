package cmd

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/indexwiz/internal/output"
	"github.com/Aman-CERP/indexwiz/internal/store"
)

func newSchemaCmd() *cobra.Command {
	var indexDir string
	var showMapping bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the schema of an index created by 'new'",
		Example: `  indexwiz schema -i ./wiki-index
  indexwiz schema -i ./wiki-index --mapping`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchema(cmd, indexDir, showMapping)
		},
	}

	cmd.Flags().StringVarP(&indexDir, "index", "i", "", "Index directory")
	cmd.Flags().BoolVar(&showMapping, "mapping", false, "Print the bleve index mapping instead")
	_ = cmd.MarkFlagRequired("index")

	return cmd
}

func runSchema(cmd *cobra.Command, indexDir string, showMapping bool) error {
	info, err := store.Inspect(indexDir)
	if err != nil {
		return err
	}
	out := output.New(cmd.OutOrStdout(), stylesFor(cmd))

	if showMapping {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, info.Mapping, "", "  "); err != nil {
			return err
		}
		out.Code(pretty.String())
		return nil
	}

	text, err := info.Schema.ToPrettyJSON()
	if err != nil {
		return err
	}
	out.Code(text)
	out.Statusf("", "%d fields, %d documents", info.Schema.Len(), info.DocCount)
	return nil
}

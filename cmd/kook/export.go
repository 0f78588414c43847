package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/debug"
	"github.com/pvdberg/kookboek/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all recipes as a JSON file",
	Long: `Export the whole catalog to a JSON array, the same shape the store
uses on disk. Without -o the file is named <prefix>-<date>.json in the
current directory.

Examples:
  kook export
  kook export -o backup.json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		recipes, err := store.ListRecipes(rootCtx)
		if err != nil {
			FatalError("listing recipes: %v", err)
		}

		path := exportOutput
		if path == "" {
			path = export.Filename(exportPrefix(), time.Now())
		}

		if err := export.ToFile(path, recipes); err != nil {
			FatalError("exporting recipes: %v", err)
		}

		if jsonOutput {
			outputJSON(map[string]interface{}{"file": path, "count": len(recipes)})
			return
		}
		successf("Exported %d recipe(s) to %s", len(recipes), path)
		if len(recipes) == 0 {
			debug.PrintNormal("The catalog is empty; the export holds an empty array.\n")
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")

	rootCmd.AddCommand(exportCmd)
}

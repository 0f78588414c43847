package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pvdberg/kookboek/internal/importer"
)

var importInput string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import recipes from a JSON export",
	Long: `Import recipes from a JSON array, merging them into the catalog.
Imported recipes keep their ids; nothing is deduplicated.

Reads from -i, or from stdin when piped.

Examples:
  kook import -i recepten-2026-08-29.json
  cat backup.json | kook import`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readImportInput()
		if err != nil {
			FatalError("%v", err)
		}

		result, err := importer.ImportJSON(rootCtx, store, data)
		if err != nil {
			var ferr *importer.FormatError
			if errors.As(err, &ferr) {
				FatalErrorWithHint(
					fmt.Sprintf("invalid import file: %v", ferr),
					"Expected a JSON array of recipes, as written by 'kook export'")
			}
			FatalError("importing recipes: %v", err)
		}

		reportImport(result)
	},
}

// readImportInput reads the -i file, or stdin when it is a pipe. A TTY
// on stdin with no -i means the user forgot the flag.
func readImportInput() ([]byte, error) {
	if importInput != "" {
		return os.ReadFile(importInput)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("no input: pass -i <file> or pipe a JSON export to stdin")
	}
	return io.ReadAll(os.Stdin)
}

func reportImport(result *importer.Result) {
	if jsonOutput {
		outputJSON(result)
		return
	}
	successf("Imported %d recipe(s)", result.Imported)
	if result.Skipped > 0 {
		WarnError("skipped %d row(s) without a name", result.Skipped)
	}
}

func init() {
	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "JSON file to import")

	rootCmd.AddCommand(importCmd)
}

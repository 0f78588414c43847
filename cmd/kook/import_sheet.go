package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/importer"
)

var importSheetInput string

var importSheetCmd = &cobra.Command{
	Use:   "import-sheet",
	Short: "Import recipes from a spreadsheet",
	Long: `Import recipes from an .xlsx workbook or .csv file.

The first row is a header and is skipped. Columns: name, source,
ingredients, then up to two category columns. A source starting with
http(s):// or containing "www." is treated as a URL; anything else as
a book title. Rows without a name are dropped.

Examples:
  kook import-sheet -i recepten.xlsx
  kook import-sheet -i recepten.csv`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if importSheetInput == "" {
			FatalErrorWithHint("no input file", "Pass -i <file.xlsx> or -i <file.csv>")
		}

		f, err := os.Open(importSheetInput)
		if err != nil {
			FatalError("opening %s: %v", importSheetInput, err)
		}
		defer func() { _ = f.Close() }()

		var result *importer.Result
		if strings.EqualFold(filepath.Ext(importSheetInput), ".csv") {
			result, err = importer.ImportCSV(rootCtx, store, f)
		} else {
			result, err = importer.ImportWorkbook(rootCtx, store, f)
		}
		if err != nil {
			var ferr *importer.FormatError
			if errors.As(err, &ferr) {
				FatalErrorWithHint(
					fmt.Sprintf("invalid spreadsheet: %v", ferr),
					"Expected a header row followed by rows with the recipe name in the first column")
			}
			FatalError("importing spreadsheet: %v", err)
		}

		reportImport(result)
	},
}

func init() {
	importSheetCmd.Flags().StringVarP(&importSheetInput, "input", "i", "", "Spreadsheet file to import (.xlsx or .csv)")

	rootCmd.AddCommand(importSheetCmd)
}

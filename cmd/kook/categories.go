package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/categories"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List the category vocabulary",
	Long: `List the categories recipes can carry. The builtin set can be
recolored and extended through ` + categories.ConfigFileName + ` in the
catalog directory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		vocab := loadedVocab()

		if jsonOutput {
			outputJSON(vocab)
			return
		}
		for _, c := range vocab {
			marker := " "
			if categories.IsBuiltin(c.Name) {
				marker = "*"
			}
			fmt.Printf("%s %s %s\n", marker, categories.Render(vocab, c.Name), c.Color)
		}
		fmt.Println("\n* builtin")
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

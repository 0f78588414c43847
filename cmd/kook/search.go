package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/types"
)

var searchCategories []string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search recipes by name or ingredients",
	Long: `Search recipes. The query matches name and ingredients,
case-insensitively; multiple words are matched as one phrase.

Examples:
  kook search soep
  kook search "rode kool" -c Bijgerecht`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filter := types.Filter{
			Search:     strings.Join(args, " "),
			Categories: searchCategories,
		}
		recipes, err := store.SearchRecipes(rootCtx, filter)
		if err != nil {
			FatalError("searching recipes: %v", err)
		}

		if jsonOutput {
			if recipes == nil {
				recipes = []*types.Recipe{}
			}
			outputJSON(recipes)
			return
		}
		displayRecipeList(recipes, false)
	},
}

func init() {
	searchCmd.Flags().StringSliceVarP(&searchCategories, "category", "c", nil, "Restrict to recipes with any of these categories")

	rootCmd.AddCommand(searchCmd)
}

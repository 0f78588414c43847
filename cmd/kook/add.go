package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/form"
	"github.com/pvdberg/kookboek/internal/types"
)

var addCmd = &cobra.Command{
	Use:     "add [name]",
	Aliases: []string{"new"},
	Short:   "Add a recipe",
	Long: `Add a recipe from flags. For a guided form, use 'kook add-form'.

The source is a URL (--url) or a book citation (--book/--author/--page);
passing any book flag makes it a book recipe. A recipe without
categories lands in "Other".

Examples:
  kook add "Tomato Soup" -c Vegetarisch --url https://example.com/soep
  kook add "Erwtensoep" --book "Hollandse Pot" --author "J. de Vries" --page 42`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			FatalErrorWithHint("recipe name required", "kook add \"Tomato Soup\" — or use 'kook add-form'")
		}

		f := form.New(store)
		f.OpenNew()
		d := f.Draft()
		d.Name = args[0]
		d.Categories, _ = cmd.Flags().GetStringSlice("category")
		d.SourceURL, _ = cmd.Flags().GetString("url")
		d.BookTitle, _ = cmd.Flags().GetString("book")
		d.BookAuthor, _ = cmd.Flags().GetString("author")
		d.BookPage, _ = cmd.Flags().GetString("page")
		d.Ingredients, _ = cmd.Flags().GetString("ingredients")
		d.Instructions, _ = cmd.Flags().GetString("instructions")
		d.PrepTime, _ = cmd.Flags().GetString("prep")
		d.CookTime, _ = cmd.Flags().GetString("cook")
		d.Servings, _ = cmd.Flags().GetString("servings")
		d.Guests, _ = cmd.Flags().GetString("guests")
		d.Notes, _ = cmd.Flags().GetString("notes")

		if d.BookTitle != "" || d.BookAuthor != "" || d.BookPage != "" {
			if d.SourceURL != "" {
				FatalError("a recipe is either online (--url) or from a book (--book), not both")
			}
			d.SourceType = types.SourceBook
		} else {
			d.SourceType = types.SourceOnline
		}

		recipe, err := f.Submit(rootCtx)
		if err != nil {
			var verr *form.ValidationError
			if errors.As(err, &verr) {
				FatalError("%v", verr)
			}
			FatalError("%v", err)
		}

		if jsonOutput {
			outputJSON(recipe)
			return
		}
		printCommittedRecipe(recipe, false)
	},
}

func printCommittedRecipe(r *types.Recipe, edited bool) {
	verb := "Added"
	if edited {
		verb = "Updated"
	}
	successf("%s recipe %s", verb, r.ID)
	fmt.Printf("  Name:       %s\n", r.Name)
	fmt.Printf("  Categories: %s\n", renderCategories(r.Categories))
	if label := r.SourceLabel(); label != "" {
		fmt.Printf("  Source:     %s\n", label)
	}
}

func init() {
	addCmd.Flags().StringSliceP("category", "c", nil, "Category tags (repeatable; default: Other)")
	addCmd.Flags().String("url", "", "Source URL (online recipe)")
	addCmd.Flags().String("book", "", "Book title (book recipe)")
	addCmd.Flags().String("author", "", "Book author")
	addCmd.Flags().String("page", "", "Book page")
	addCmd.Flags().String("ingredients", "", "Ingredients, free text")
	addCmd.Flags().String("instructions", "", "Instructions, free text")
	addCmd.Flags().String("prep", "", "Preparation time")
	addCmd.Flags().String("cook", "", "Cooking time")
	addCmd.Flags().String("servings", "", "Servings")
	addCmd.Flags().String("guests", "", "Guest notes/count")
	addCmd.Flags().String("notes", "", "Free-form notes")

	rootCmd.AddCommand(addCmd)
}

package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/form"
	"github.com/pvdberg/kookboek/internal/storage"
	"github.com/pvdberg/kookboek/internal/types"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a recipe",
	Long: `Edit a recipe. Flags patch individual fields; without any field
flags an interactive form opens pre-filled with the current values.
The id and creation date never change.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		current, err := store.GetRecipe(rootCtx, args[0])
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				FatalError("recipe %s not found", args[0])
			}
			FatalError("%v", err)
		}

		f := form.New(store)
		f.BeginEdit(current)
		d := f.Draft()

		if !anyFieldFlagChanged(cmd) {
			if err := runRecipeForm(d, "Edit recipe"); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Println("Cancelled.")
					return
				}
				FatalError("form failed: %v", err)
			}
		} else {
			applyFieldFlags(cmd, d)
		}

		recipe, err := f.Submit(rootCtx)
		if err != nil {
			FatalError("%v", err)
		}

		if jsonOutput {
			outputJSON(recipe)
			return
		}
		printCommittedRecipe(recipe, true)
	},
}

func anyFieldFlagChanged(cmd *cobra.Command) bool {
	changed := false
	for _, name := range []string{
		"name", "category", "url", "book", "author", "page",
		"ingredients", "instructions", "prep", "cook",
		"servings", "guests", "notes",
	} {
		if cmd.Flags().Changed(name) {
			changed = true
		}
	}
	return changed
}

// applyFieldFlags patches only the flags that were passed; untouched
// fields keep their stored values.
func applyFieldFlags(cmd *cobra.Command, d *form.Draft) {
	set := func(flag string, dst *string) {
		if cmd.Flags().Changed(flag) {
			*dst, _ = cmd.Flags().GetString(flag)
		}
	}
	set("name", &d.Name)
	set("url", &d.SourceURL)
	set("book", &d.BookTitle)
	set("author", &d.BookAuthor)
	set("page", &d.BookPage)
	set("ingredients", &d.Ingredients)
	set("instructions", &d.Instructions)
	set("prep", &d.PrepTime)
	set("cook", &d.CookTime)
	set("servings", &d.Servings)
	set("guests", &d.Guests)
	set("notes", &d.Notes)

	if cmd.Flags().Changed("category") {
		d.Categories, _ = cmd.Flags().GetStringSlice("category")
	}

	if cmd.Flags().Changed("url") && d.SourceURL != "" {
		d.SourceType = types.SourceOnline
		d.BookTitle, d.BookAuthor, d.BookPage = "", "", ""
	} else if (cmd.Flags().Changed("book") && d.BookTitle != "") ||
		(cmd.Flags().Changed("author") && d.BookAuthor != "") ||
		(cmd.Flags().Changed("page") && d.BookPage != "") {
		d.SourceType = types.SourceBook
		d.SourceURL = ""
	}
}

func registerEditFlags() {
	editCmd.Flags().String("name", "", "New name")
	editCmd.Flags().StringSliceP("category", "c", nil, "Replace category tags")
	editCmd.Flags().String("url", "", "Source URL (switches to online)")
	editCmd.Flags().String("book", "", "Book title (switches to book)")
	editCmd.Flags().String("author", "", "Book author")
	editCmd.Flags().String("page", "", "Book page")
	editCmd.Flags().String("ingredients", "", "Ingredients, free text")
	editCmd.Flags().String("instructions", "", "Instructions, free text")
	editCmd.Flags().String("prep", "", "Preparation time")
	editCmd.Flags().String("cook", "", "Cooking time")
	editCmd.Flags().String("servings", "", "Servings")
	editCmd.Flags().String("guests", "", "Guest notes/count")
	editCmd.Flags().String("notes", "", "Free-form notes")
}

func init() {
	registerEditFlags()
	rootCmd.AddCommand(editCmd)
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/categories"
	"github.com/pvdberg/kookboek/internal/form"
	"github.com/pvdberg/kookboek/internal/types"
)

var addFormCmd = &cobra.Command{
	Use:     "add-form",
	Aliases: []string{"form"},
	Short:   "Add a recipe through an interactive form",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		f := form.New(store)
		f.OpenNew()

		if err := runRecipeForm(f.Draft(), "New recipe"); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Cancelled.")
				return
			}
			FatalError("form failed: %v", err)
		}

		recipe, err := f.Submit(rootCtx)
		if err != nil {
			FatalError("%v", err)
		}

		if jsonOutput {
			outputJSON(recipe)
			return
		}
		printCommittedRecipe(recipe, false)
	},
}

// runRecipeForm edits the draft in place. The name field is validated in
// the form itself so the controller's required-name check cannot trip
// afterwards.
func runRecipeForm(d *form.Draft, title string) error {
	vocab := loadedVocab()
	opts := huh.NewOptions(categories.Names(vocab)...)

	isBook := d.SourceType == types.SourceBook

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Recipe name").
				Value(&d.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("Categories").
				Options(opts...).
				Value(&d.Categories),
			huh.NewConfirm().
				Title("Source").
				Affirmative("Book").
				Negative("Online").
				Value(&isBook),
		),
		huh.NewGroup(
			huh.NewInput().Title("URL").Value(&d.SourceURL),
		).WithHideFunc(func() bool { return isBook }),
		huh.NewGroup(
			huh.NewInput().Title("Book title").Value(&d.BookTitle),
			huh.NewInput().Title("Author").Value(&d.BookAuthor),
			huh.NewInput().Title("Page").Value(&d.BookPage),
		).WithHideFunc(func() bool { return !isBook }),
		huh.NewGroup(
			huh.NewText().Title("Ingredients").Value(&d.Ingredients),
			huh.NewText().Title("Instructions").Value(&d.Instructions),
		),
		huh.NewGroup(
			huh.NewInput().Title("Prep time").Value(&d.PrepTime),
			huh.NewInput().Title("Cook time").Value(&d.CookTime),
			huh.NewInput().Title("Servings").Value(&d.Servings),
			huh.NewInput().Title("Guests").Value(&d.Guests),
			huh.NewText().Title("Notes").Value(&d.Notes),
		),
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		return err
	}

	if isBook {
		d.SourceType = types.SourceBook
		d.SourceURL = ""
	} else {
		d.SourceType = types.SourceOnline
		d.BookTitle = ""
		d.BookAuthor = ""
		d.BookPage = ""
	}
	return nil
}

func init() {
	rootCmd.AddCommand(addFormCmd)
}

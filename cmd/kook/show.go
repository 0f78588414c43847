package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/storage"
	"github.com/pvdberg/kookboek/internal/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recipe in full",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		recipe, err := store.GetRecipe(rootCtx, args[0])
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				FatalError("recipe %s not found", args[0])
			}
			FatalError("%v", err)
		}

		if jsonOutput {
			outputJSON(recipe)
			return
		}
		displayRecipe(recipe)
	},
}

func displayRecipe(r *types.Recipe) {
	fmt.Printf("%s  %s\n", r.Name, renderCategories(r.Categories))
	fmt.Printf("id: %s", r.ID)
	if t := r.CreatedTime(); !t.IsZero() {
		fmt.Printf("  added %s", t.Format(time.DateOnly))
	}
	fmt.Println()

	if label := r.SourceLabel(); label != "" {
		fmt.Printf("source: %s\n", label)
	}

	var timing []string
	if r.PrepTime != "" {
		timing = append(timing, "prep "+r.PrepTime)
	}
	if r.CookTime != "" {
		timing = append(timing, "cook "+r.CookTime)
	}
	if r.Servings != "" {
		timing = append(timing, "serves "+r.Servings)
	}
	if len(timing) > 0 {
		fmt.Println(strings.Join(timing, ", "))
	}

	section := func(title, body string) {
		if body == "" {
			return
		}
		fmt.Printf("\n%s:\n%s\n", title, body)
	}
	section("Ingredients", r.Ingredients)
	section("Instructions", r.Instructions)
	section("Guests", r.Guests)
	section("Notes", r.Notes)
}

func init() {
	rootCmd.AddCommand(showCmd)
}

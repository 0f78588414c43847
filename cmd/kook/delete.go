package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/storage"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a recipe",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		recipe, err := store.GetRecipe(rootCtx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				FatalError("recipe %s not found", id)
			}
			FatalError("%v", err)
		}

		if !deleteForce {
			confirmed := false
			prompt := huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q (%s)?", recipe.Name, recipe.ID)).
				Value(&confirmed)
			if err := prompt.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Println("Cancelled.")
					return
				}
				FatalError("%v", err)
			}
			if !confirmed {
				fmt.Println("Cancelled.")
				return
			}
		}

		if err := store.DeleteRecipe(rootCtx, id); err != nil {
			FatalError("deleting recipe: %v", err)
		}
		successf("Deleted recipe %s (%s)", recipe.ID, recipe.Name)
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(deleteCmd)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/storage/jsonfile"
	"github.com/pvdberg/kookboek/internal/types"
)

var (
	listSearch     string
	listCategories []string
	listLong       bool
	listWatch      bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recipes",
	Long: `List recipes, optionally filtered.

--search matches name and ingredients, case-insensitively. --category
keeps recipes carrying any of the given tags. Both together must match.

Examples:
  kook list
  kook list -s soep
  kook list -c Vlees -c Vis --long
  kook list --watch`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		filter := types.Filter{Search: listSearch, Categories: listCategories}

		if listWatch {
			watchRecipes(rootCtx, filter)
			return
		}

		recipes, err := store.SearchRecipes(rootCtx, filter)
		if err != nil {
			FatalError("listing recipes: %v", err)
		}

		if jsonOutput {
			if recipes == nil {
				recipes = []*types.Recipe{}
			}
			outputJSON(recipes)
			return
		}
		displayRecipeList(recipes, listLong)
	},
}

func displayRecipeList(recipes []*types.Recipe, long bool) {
	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return
	}
	for _, r := range recipes {
		fmt.Printf("%-8s %s  %s\n", r.ID, r.Name, renderCategories(r.Categories))
		if !long {
			continue
		}
		if label := r.SourceLabel(); label != "" {
			fmt.Printf("         %s\n", label)
		}
		if r.PrepTime != "" || r.CookTime != "" {
			fmt.Printf("         prep %s  cook %s\n", orDash(r.PrepTime), orDash(r.CookTime))
		}
	}
	fmt.Printf("\n%d recipe(s)\n", len(recipes))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// watchRecipes re-displays the filtered list whenever the store file
// changes on disk. Each refresh reopens the store so external writers
// (another kook process, a sync tool) are picked up.
func watchRecipes(ctx context.Context, filter types.Filter) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
		return
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(catalogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching directory: %v\n", err)
		return
	}

	storeFile := filepath.Base(meta.StorePath(catalogDir))

	refresh := func() {
		s, err := jsonfile.Open(meta.StorePath(catalogDir))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reloading recipes: %v\n", err)
			return
		}
		recipes, err := s.SearchRecipes(ctx, filter)
		_ = s.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing recipes: %v\n", err)
			return
		}
		displayRecipeList(recipes, listLong)
		fmt.Fprintf(os.Stderr, "\nWatching for changes... (Press Ctrl+C to exit)\n")
	}

	refresh()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var debounceTimer *time.Timer
	debounceDelay := 500 * time.Millisecond

	for {
		select {
		case <-sigChan:
			fmt.Fprintf(os.Stderr, "\nStopped watching.\n")
			return
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			// Atomic saves land as a rename, not a write.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if filepath.Base(event.Name) == storeFile {
					if debounceTimer != nil {
						debounceTimer.Stop()
					}
					debounceTimer = time.AfterFunc(debounceDelay, refresh)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		}
	}
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Match name or ingredients")
	listCmd.Flags().StringSliceVarP(&listCategories, "category", "c", nil, "Keep recipes with any of these categories")
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Show source and timing details")
	listCmd.Flags().BoolVarP(&listWatch, "watch", "w", false, "Re-display when the catalog changes")

	rootCmd.AddCommand(listCmd)
}

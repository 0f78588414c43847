package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/config"
	"github.com/pvdberg/kookboek/internal/configfile"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a recipe catalog in the current directory",
	Long: `Create a .kookboek directory holding the recipe collection and its
configuration. Run once per project; every other command discovers the
catalog by walking up from the working directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir := dirFlag
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				FatalError("%v", err)
			}
			dir = filepath.Join(cwd, config.CatalogDirName)
		}

		if existing, err := configfile.Load(dir); err == nil && existing != nil {
			FatalError("catalog already initialized at %s", dir)
		}

		if err := os.MkdirAll(dir, 0o750); err != nil {
			FatalError("creating catalog directory: %v", err)
		}

		cfg := configfile.DefaultConfig()
		if err := cfg.Save(dir); err != nil {
			FatalError("%v", err)
		}

		// Seed an empty collection so the catalog round-trips from the start
		storePath := cfg.StorePath(dir)
		if _, err := os.Stat(storePath); os.IsNotExist(err) {
			if err := os.WriteFile(storePath, []byte("[]\n"), 0o600); err != nil {
				FatalError("writing empty collection: %v", err)
			}
		}

		successf("Initialized recipe catalog at %s", dir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

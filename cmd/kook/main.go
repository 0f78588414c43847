package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pvdberg/kookboek/internal/config"
	"github.com/pvdberg/kookboek/internal/configfile"
	"github.com/pvdberg/kookboek/internal/debug"
	"github.com/pvdberg/kookboek/internal/storage/jsonfile"
)

// Version is stamped by the release build; "dev" otherwise.
var Version = "dev"

var (
	dirFlag     string // --dir: explicit catalog directory
	jsonOutput  bool
	verboseFlag bool
	quietFlag   bool

	catalogDir string
	meta       *configfile.Config
	store      *jsonfile.Store

	// export prefix from an explicit --dir catalog's config.yaml
	localExportPrefix string

	// Signal-aware context for graceful cancellation
	rootCtx    context.Context
	rootCancel context.CancelFunc
)

// noStoreCommands run without an existing catalog.
var noStoreCommands = map[string]bool{
	"init":       true,
	"version":    true,
	"help":       true,
	"completion": true,
}

func needsStore(cmd *cobra.Command) bool {
	// Bare "kook" prints help (or the version); no catalog needed.
	if cmd.Parent() == nil {
		return false
	}
	if noStoreCommands[cmd.Name()] {
		return false
	}
	// help/completion subcommands
	for c := cmd; c != nil; c = c.Parent() {
		if noStoreCommands[c.Name()] {
			return false
		}
	}
	return true
}

var rootCmd = &cobra.Command{
	Use:   "kook",
	Short: "kook - Local recipe catalog",
	Long: `A local-first recipe catalog. Recipes live in one JSON file under
.kookboek/ next to your notes; kook adds, edits, searches and filters
them, and moves collections in and out as JSON or spreadsheets.`,
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("kook version %s\n", Version)
			return
		}
		_ = cmd.Help() // Help() always returns nil for cobra commands
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetVerbose(verboseFlag)
		debug.SetQuiet(quietFlag)

		rootCtx, rootCancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

		if err := config.Initialize(); err != nil {
			WarnError("failed to initialize config: %v", err)
		}
		if !cmd.Flags().Changed("json") && config.GetBool("json") {
			jsonOutput = true
		}
		if !cmd.Flags().Changed("quiet") && config.GetBool("quiet") {
			quietFlag = true
			debug.SetQuiet(true)
		}

		if !needsStore(cmd) {
			return
		}
		openStore()
		if dirFlag != "" {
			applyLocalConfig(cmd)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			_ = store.Close()
		}
		if rootCancel != nil {
			rootCancel()
		}
	},
}

// openStore resolves the catalog directory, reads its metadata and
// loads the collection. Fatal when no catalog exists: every command
// except init needs one.
func openStore() {
	var err error
	if dirFlag != "" {
		info, statErr := os.Stat(dirFlag)
		if statErr != nil || !info.IsDir() {
			FatalError("catalog directory %s does not exist", dirFlag)
		}
		catalogDir = dirFlag
	} else {
		catalogDir, err = config.FindCatalogDir("")
		if err != nil {
			FatalErrorWithHint("no recipe catalog found", "Run 'kook init' to create one here")
		}
	}

	meta, err = configfile.Load(catalogDir)
	if err != nil {
		FatalError("%v", err)
	}
	if meta == nil {
		meta = configfile.DefaultConfig()
	}

	store, err = jsonfile.Open(meta.StorePath(catalogDir))
	if err != nil {
		FatalError("opening catalog: %v", err)
	}
	// storeLen clones the whole collection, so gate the debug line.
	if debug.Enabled() {
		debug.Logf("catalog: %s (%d recipes)\n", catalogDir, storeLen())
	}
}

// applyLocalConfig layers config.yaml from an explicitly passed catalog
// directory. Initialize only discovers config from the working
// directory, so an explicit --dir catalog is read again here; flags
// still win.
func applyLocalConfig(cmd *cobra.Command) {
	lc := config.LoadLocalConfig(catalogDir)
	if !cmd.Flags().Changed("json") && lc.JSON {
		jsonOutput = true
	}
	if !cmd.Flags().Changed("quiet") && lc.Quiet {
		quietFlag = true
		debug.SetQuiet(true)
	}
	if lc.ExportPrefix != "" {
		localExportPrefix = lc.ExportPrefix
	}
}

func storeLen() int {
	recipes, err := store.ListRecipes(rootCtx)
	if err != nil {
		return 0
	}
	return len(recipes)
}

// exportPrefix returns the filename prefix for exports: metadata.json
// wins, then the --dir catalog's config.yaml, then the discovered
// config.yaml / KOOK_EXPORT_PREFIX, then the default.
func exportPrefix() string {
	if meta != nil && meta.ExportPrefix != "" {
		return meta.ExportPrefix
	}
	if localExportPrefix != "" {
		return localExportPrefix
	}
	if p := config.GetString("export-prefix"); p != "" {
		return p
	}
	return "recepten"
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "Catalog directory (default: auto-discover .kookboek)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output (errors only)")

	rootCmd.Flags().BoolP("version", "V", false, "Print version information")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

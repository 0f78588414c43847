package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/pvdberg/kookboek/internal/categories"
	"github.com/pvdberg/kookboek/internal/debug"
)

// outputJSON outputs data as pretty-printed JSON to stdout.
func outputJSON(v interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

var (
	greenCheck = color.New(color.FgGreen).SprintFunc()
	yellowWarn = color.New(color.FgYellow).SprintFunc()
)

// successf prints a green-check notice unless quiet mode is on.
func successf(format string, args ...interface{}) {
	if debug.IsQuiet() {
		return
	}
	fmt.Printf("%s "+format+"\n", append([]interface{}{greenCheck("✓")}, args...)...)
}

var categoryVocab []categories.Category

// loadedVocab loads the category vocabulary once per invocation,
// falling back to the builtin set when the user file is broken.
func loadedVocab() []categories.Category {
	if categoryVocab == nil {
		vocab, err := categories.Load(catalogDir)
		if err != nil {
			debug.Logf("category settings: %v", err)
			vocab = categories.Builtin
		}
		categoryVocab = vocab
	}
	return categoryVocab
}

// renderCategories joins category tags as colored chips.
func renderCategories(names []string) string {
	vocab := loadedVocab()
	out := ""
	for i, name := range names {
		if i > 0 {
			out += " "
		}
		out += categories.Render(vocab, name)
	}
	return out
}

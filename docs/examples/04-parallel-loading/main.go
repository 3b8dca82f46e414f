package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beetlebugorg/gml/pkg/gml"
)

func main() {
	// Collect all documents in the current directory
	paths, err := filepath.Glob("*.gml")
	if err != nil || len(paths) == 0 {
		fmt.Println("no .gml documents found")
		return
	}

	decoder := gml.NewDecoder()

	collections, errs := gml.LoadFiles(paths, decoder, gml.LoadOptions{
		Parallel:   true,
		Workers:    8,
		SkipErrors: true,
		Progress: func(loaded, total int) {
			fmt.Printf("\rLoading: %d/%d", loaded, total)
		},
		ErrorLog: os.Stderr,
	})
	fmt.Println()

	if len(errs) > 0 {
		fmt.Printf("Skipped %d documents due to errors\n", len(errs))
	}

	total := 0
	for _, collection := range collections {
		total += collection.FeatureCount()
	}
	fmt.Printf("Loaded %d documents with %d features\n", len(collections), total)
}

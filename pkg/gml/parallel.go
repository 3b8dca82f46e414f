package gml

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
)

// LoadOptions controls parallel loading behavior and error handling.
type LoadOptions struct {
	// Parallel enables concurrent document loading.
	// When true, documents are loaded using multiple worker goroutines.
	Parallel bool

	// Workers specifies the number of parallel loader goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// SkipErrors causes loading to continue even when individual
	// documents fail. Failed documents are skipped and errors are
	// collected. When false, the first error stops loading and is
	// returned immediately.
	SkipErrors bool

	// Progress is an optional callback for tracking loading progress.
	// Called after each document is loaded (successfully or with error).
	// Parameters: (loaded, total) where loaded is count of documents
	// processed so far.
	Progress func(loaded, total int)

	// ErrorLog is an optional writer for detailed error reporting.
	// Each loading error is written here with the document path and
	// error details.
	ErrorLog io.Writer
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
		Progress:   nil,
		ErrorLog:   nil,
	}
}

// DecodeFile decodes a GML document from a file on disk.
func DecodeFile(path string, decoder Decoder) (*FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	return decoder.Decode(f)
}

// LoadFiles decodes multiple GML documents in parallel with progress
// reporting.
//
// This function uses a worker pool pattern to decode documents
// concurrently, reducing total load time for large document sets. The
// returned collections are in the same order as paths, with failed
// documents omitted.
//
// The function respects LoadOptions:
//   - Parallel: Enable/disable parallel loading
//   - Workers: Number of concurrent loaders (defaults to NumCPU)
//   - SkipErrors: Continue loading despite individual document failures
//   - Progress: Optional callback for progress updates
//   - ErrorLog: Optional writer for error details
//
// Example:
//
//	decoder := gml.NewDecoder()
//	paths := []string{"states.gml", "cities.gml", "roads.gml"}
//
//	collections, errs := gml.LoadFiles(paths, decoder, gml.LoadOptions{
//	    Parallel:   true,
//	    Workers:    8,
//	    SkipErrors: true,
//	    ErrorLog:   os.Stderr,
//	})
//
//	if len(errs) > 0 {
//	    fmt.Printf("skipped %d documents due to errors\n", len(errs))
//	}
func LoadFiles(paths []string, decoder Decoder, opts LoadOptions) ([]*FeatureCollection, []error) {
	if len(paths) == 0 {
		return []*FeatureCollection{}, nil
	}

	// If parallel loading disabled, fall back to serial
	if !opts.Parallel {
		return loadFilesSerial(paths, decoder, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	type loadResult struct {
		index      int
		collection *FeatureCollection
		err        error
	}

	jobs := make(chan int, len(paths))
	results := make(chan loadResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				collection, err := DecodeFile(paths[index], decoder)
				results <- loadResult{
					index:      index,
					collection: collection,
					err:        err,
				}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make(map[int]*FeatureCollection)
	var errors []error
	loaded := 0

	for result := range results {
		loaded++

		if opts.Progress != nil {
			opts.Progress(loaded, len(paths))
		}

		if result.err != nil {
			err := fmt.Errorf("%s: %w", paths[result.index], result.err)

			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error loading document: %v\n", err)
			}

			if opts.SkipErrors {
				errors = append(errors, err)
				continue
			}
			return nil, []error{err}
		}

		collected[result.index] = result.collection
	}

	// Rebuild input order
	collections := make([]*FeatureCollection, 0, len(collected))
	for i := 0; i < len(paths); i++ {
		if collection, ok := collected[i]; ok {
			collections = append(collections, collection)
		}
	}

	return collections, errors
}

// loadFilesSerial decodes documents one at a time (fallback when
// Parallel=false).
func loadFilesSerial(paths []string, decoder Decoder, opts LoadOptions) ([]*FeatureCollection, []error) {
	collections := make([]*FeatureCollection, 0, len(paths))
	var errors []error

	for i, path := range paths {
		if opts.Progress != nil {
			opts.Progress(i, len(paths))
		}

		collection, err := DecodeFile(path, decoder)
		if err != nil {
			err := fmt.Errorf("%s: %w", path, err)

			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error loading document: %v\n", err)
			}

			if opts.SkipErrors {
				errors = append(errors, err)
				continue
			}
			return nil, []error{err}
		}

		collections = append(collections, collection)
	}

	if opts.Progress != nil {
		opts.Progress(len(paths), len(paths))
	}

	return collections, errors
}

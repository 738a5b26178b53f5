package watcher

import "context"

// FileWatcher monitors stub files for changes with debouncing.
type FileWatcher interface {
	// Start begins watching, calling callback with debounced, sorted file batches.
	// The callback runs on the watch goroutine, so batches never overlap.
	Start(ctx context.Context, callback func(files []string)) error

	// Stop stops the file watcher and cleans up resources. It is idempotent.
	Stop() error
}

// Filter reports whether a changed file should be delivered to the callback.
type Filter func(path string) bool

// Package store provides file-based persistence for encrypted key
// containers.
//
// Containers are already sealed by the envelope format, so the store only
// handles placement and permissions: one JSON file per named container
// under the configured home directory, 0600 files inside a 0700 directory,
// written atomically via temp file and rename. All methods are
// concurrency-safe via internal locking.
package store

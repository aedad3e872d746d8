// Package store persists values and table collections to disk.
//
// Every saver overwrites an existing target without confirmation, and
// every loader reports a missing target as ErrNotFound rather than a
// hard failure. There are no retries and no partial-failure recovery: a
// save that dies halfway leaves whatever it managed to write.
//
// Formats: JSON text, gob (the Go-native binary codec; blobs are not
// portable to other languages), a single-file table store (ZIP
// container, one zstd-compressed gob entry per table), and
// one-CSV-per-table folders.
package store

// Package store provides file-based persistence for magmoment.
//
// It contains concrete implementations of the domain storage interfaces.
// All writes go through a temp file and an atomic rename. Methods are
// concurrency-safe via internal locking.
//
// The package includes:
//   - Constant tables in TOML or YAML (TableFileStore)
//   - Finished reports as JSON, keyed by run ID (ReportFileStore)
package store

// Package store persists canonical analysis entries in an abstract
// key-value store. The core logic only ever sees the KV interface, so it
// runs unchanged against the in-memory fake used in tests and the SQLite
// file store used by the CLI.
package store

// KV is the minimal persistence contract: get a value by key, set a value
// by key. Implementations are process-local and synchronous; concurrent
// writers race and the last writer wins, which matches the single-user
// contract of the tool.
type KV interface {
	// Get returns the stored value and whether the key exists. Read
	// failures are reported as absence.
	Get(key string) ([]byte, bool)

	// Set stores the value under key, replacing any previous value.
	Set(key string, value []byte) error
}

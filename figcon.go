// Package figcon provides a minimal, synchronous configuration store backed
// by a structured document persisted to a single file.
//
// A Store binds an in-memory document to a file path. The document is an
// ordered mapping of string keys to values; values may themselves be nested
// mappings, and every nested mapping can be addressed as a Node supporting
// the same get/set/has/remove operations as the root. Nothing reaches disk
// until Save is called explicitly.
//
// The store is single-threaded by design. Callers that share a Store across
// goroutines must add their own synchronization around it.
package figcon

import "errors"

// ErrNotMapping is returned when an operation requires a mapping value but
// the addressed entry holds a leaf. It signals caller misuse rather than a
// runtime condition: the entry is never coerced or overwritten.
var ErrNotMapping = errors.New("value is not a mapping")

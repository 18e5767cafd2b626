// Package format defines the codec interface used by figcon stores and
// shared helpers for implementations.
package format

import "github.com/iancoleman/orderedmap"

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	StripComments bool // Strip comments (for JSON/JSONC)
}

// SerializeOptions configures serialization behavior.
type SerializeOptions struct {
	Indent string // Indentation string (e.g., "  " or "\t")
}

// Handler translates between raw file bytes and a configuration document.
// The document's top level is always a mapping; Parse must reject anything
// else with an error.
type Handler interface {
	// Parse reads raw bytes and returns the document's root mapping.
	Parse(data []byte, opts ParseOptions) (*orderedmap.OrderedMap, error)

	// Serialize writes the document back to bytes in a human-readable,
	// indented form.
	Serialize(doc *orderedmap.OrderedMap, opts SerializeOptions) ([]byte, error)
}

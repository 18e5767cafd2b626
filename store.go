package figcon

import (
	"fmt"
	"os"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/figcon/format"
	"github.com/thirteen37/figcon/format/json"
)

// Store owns a configuration document and the file path it is bound to.
// The document lives entirely in memory; Load and Save are the only points
// where the file is touched.
type Store struct {
	path      string
	handler   format.Handler
	parseOpts format.ParseOptions
	indent    string
	root      *Node
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithHandler selects the codec used to read and write the backing file.
// The default is the JSON handler.
func WithHandler(h format.Handler) Option {
	return func(s *Store) { s.handler = h }
}

// WithStripComments strips // comments before parsing, allowing JSONC files.
func WithStripComments() Option {
	return func(s *Store) { s.parseOpts.StripComments = true }
}

// WithIndent sets the indentation string used when serializing.
func WithIndent(indent string) Option {
	return func(s *Store) { s.indent = indent }
}

// LoadOrDefault binds a Store to path and loads the document from it. A
// missing file, an unreadable file, or content that does not parse as a
// top-level mapping all degrade to an empty document; this constructor
// never fails. Nothing is written back until Save is called.
func LoadOrDefault(path string, opts ...Option) *Store {
	s := &Store{
		path:    path,
		handler: json.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.root = newNode(s.load())
	return s
}

// load reads and parses the bound file, returning an empty mapping on any
// failure.
func (s *Store) load() *orderedmap.OrderedMap {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return orderedmap.New()
	}
	doc, err := s.handler.Parse(data, s.parseOpts)
	if err != nil {
		return orderedmap.New()
	}
	return doc
}

// Reload replaces the in-memory document with the current contents of the
// bound file, degrading to empty on failure exactly like LoadOrDefault.
// Unsaved mutations are discarded.
func (s *Store) Reload() {
	s.root = newNode(s.load())
}

// Save serializes the document and writes it to the bound path, overwriting
// any existing file. Unlike load, save surfaces failure: the caller asked
// for persistence and must know if it did not happen.
func (s *Store) Save() error {
	data, err := s.handler.Serialize(s.root.backing, format.SerializeOptions{Indent: s.indent})
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Path returns the file path the Store is bound to.
func (s *Store) Path() string {
	return s.path
}

// SetPath rebinds the Store to a new path. The in-memory document is left
// untouched and nothing is written; call Save afterwards to persist to the
// new location.
func (s *Store) SetPath(path string) {
	s.path = path
}

// Root returns the document's top-level mapping as a Node view.
func (s *Store) Root() *Node {
	return s.root
}

// String returns the document serialized in its pretty-printed form. This
// walks the whole tree; avoid it on hot paths for large documents.
func (s *Store) String() string {
	data, err := s.handler.Serialize(s.root.backing, format.SerializeOptions{Indent: s.indent})
	if err != nil {
		return fmt.Sprintf("<unserializable config: %v>", err)
	}
	return string(data)
}

// The Store exposes the root Node's operations directly, so casual callers
// never need to touch Root.

// Get returns the top-level value stored under key.
func (s *Store) Get(key string) (any, bool) { return s.root.Get(key) }

// Set inserts or overwrites the top-level entry for key.
func (s *Store) Set(key string, value any) { s.root.Set(key, value) }

// SetString sets a top-level key to a string value.
func (s *Store) SetString(key, value string) { s.root.SetString(key, value) }

// Has reports whether the document contains a top-level key.
func (s *Store) Has(key string) bool { return s.root.Has(key) }

// Remove deletes a top-level entry and returns the removed value.
func (s *Store) Remove(key string) (any, bool) { return s.root.Remove(key) }

// Child returns a view over the mapping under a top-level key.
func (s *Store) Child(key string) (*Node, bool) { return s.root.Child(key) }

// EnsureChild returns a view over the mapping under a top-level key,
// creating it if absent.
func (s *Store) EnsureChild(key string) (*Node, error) { return s.root.EnsureChild(key) }

// Keys returns the document's top-level keys in order.
func (s *Store) Keys() []string { return s.root.Keys() }

// Len returns the number of top-level entries.
func (s *Store) Len() int { return s.root.Len() }

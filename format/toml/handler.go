// Package toml provides a TOML codec for figcon.
package toml

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/figcon/format"
)

// Handler implements format.Handler for TOML files.
type Handler struct{}

// New creates a new TOML handler.
func New() *Handler {
	return &Handler{}
}

// Parse reads TOML bytes into the document's root mapping.
// Key order from the original TOML document is preserved.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (*orderedmap.OrderedMap, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for TOML format")
	}

	// Decode into a generic map to get values
	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	// Convert to ordered map using metadata for key order
	doc := convertWithMeta(raw, meta, nil).(*orderedmap.OrderedMap)
	return doc, nil
}

// convertWithMeta recursively converts map[string]any to *orderedmap.OrderedMap
// using TOML metadata to preserve key order.
func convertWithMeta(v any, meta toml.MetaData, prefix []string) any {
	switch val := v.(type) {
	case map[string]any:
		result := orderedmap.New()
		for _, k := range keysInOrder(meta, prefix, val) {
			result.Set(k, convertWithMeta(val[k], meta, append(prefix, k)))
		}
		return result
	case []map[string]any:
		// Array of tables
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = convertWithMeta(item, meta, prefix)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = convertWithMeta(item, meta, prefix)
		}
		return result
	default:
		return val
	}
}

// keysInOrder returns map keys in document order using TOML metadata.
func keysInOrder(meta toml.MetaData, prefix []string, m map[string]any) []string {
	needed := make(map[string]bool)
	for k := range m {
		needed[k] = true
	}

	var ordered []string
	for _, key := range meta.Keys() {
		if len(key) == len(prefix)+1 && matchesPrefix(key, prefix) {
			k := key[len(prefix)]
			if needed[k] && !contains(ordered, k) {
				ordered = append(ordered, k)
			}
		}
	}

	// Add any keys not found in metadata (shouldn't happen, but be safe)
	for k := range needed {
		if !contains(ordered, k) {
			ordered = append(ordered, k)
		}
	}

	return ordered
}

// matchesPrefix checks if key starts with prefix.
func matchesPrefix(key toml.Key, prefix []string) bool {
	if len(key) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if key[i] != p {
			return false
		}
	}
	return true
}

// contains checks if slice contains string.
func contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}

// Serialize writes the document to TOML bytes.
// Note: BurntSushi's encoder sorts keys alphabetically, so document order is
// not preserved on the way out.
func (h *Handler) Serialize(doc *orderedmap.OrderedMap, opts format.SerializeOptions) ([]byte, error) {
	regular := toRegularMap(doc)

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if opts.Indent != "" {
		encoder.Indent = opts.Indent
	}
	if err := encoder.Encode(regular); err != nil {
		return nil, fmt.Errorf("failed to serialize TOML: %w", err)
	}

	return buf.Bytes(), nil
}

// toRegularMap recursively converts ordered maps back to map[string]any for
// the TOML encoder.
func toRegularMap(v any) any {
	if om := format.ToOrderedMapPtr(v); om != nil {
		result := make(map[string]any)
		for _, k := range om.Keys() {
			child, _ := om.Get(k)
			result[k] = toRegularMap(child)
		}
		return result
	}
	if val, ok := v.([]any); ok {
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = toRegularMap(item)
		}
		return result
	}
	return v
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)

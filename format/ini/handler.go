// Package ini provides an INI codec for figcon.
//
// INI documents are shallower than the generic document model: the top level
// holds sections and each section holds string values. Parse produces a
// two-level mapping {"section": {"key": "value"}}; Serialize refuses
// documents that do not fit that shape rather than dropping data.
package ini

import (
	"bytes"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/figcon/format"
	"gopkg.in/ini.v1"
)

// Handler implements format.Handler for INI files.
type Handler struct{}

// New creates a new INI handler.
func New() *Handler {
	return &Handler{}
}

// Parse reads INI bytes into the document's root mapping.
// Global keys (before any section) are stored under the empty string key "".
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (*orderedmap.OrderedMap, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for INI format")
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse INI: %w", err)
	}

	doc := orderedmap.New()

	for _, section := range cfg.Sections() {
		sectionName := section.Name()
		// ini.v1 uses "DEFAULT" for global section, we use ""
		if sectionName == "DEFAULT" {
			sectionName = ""
		}

		sectionMap := orderedmap.New()
		for _, key := range section.Keys() {
			sectionMap.Set(key.Name(), key.Value())
		}

		// Only add section if it has keys (or is explicitly named)
		if len(sectionMap.Keys()) > 0 || sectionName != "" {
			doc.Set(sectionName, sectionMap)
		}
	}

	return doc, nil
}

// Serialize writes the document to INI bytes. Every top-level entry must be
// a mapping of leaf values; anything deeper or non-mapping is an error.
func (h *Handler) Serialize(doc *orderedmap.OrderedMap, opts format.SerializeOptions) ([]byte, error) {
	cfg := ini.Empty()

	for _, sectionName := range doc.Keys() {
		sectionVal, _ := doc.Get(sectionName)
		sectionMap := format.ToOrderedMapPtr(sectionVal)
		if sectionMap == nil {
			return nil, fmt.Errorf("top-level entry %q is not a section mapping", sectionName)
		}

		// Get or create section
		var section *ini.Section
		if sectionName == "" {
			section = cfg.Section("DEFAULT")
		} else {
			var err error
			section, err = cfg.NewSection(sectionName)
			if err != nil {
				return nil, fmt.Errorf("failed to create section %q: %w", sectionName, err)
			}
		}

		for _, keyName := range sectionMap.Keys() {
			keyVal, _ := sectionMap.Get(keyName)
			if format.ToOrderedMapPtr(keyVal) != nil {
				return nil, fmt.Errorf("section %q key %q nests deeper than INI supports", sectionName, keyName)
			}
			if _, err := section.NewKey(keyName, toString(keyVal)); err != nil {
				return nil, fmt.Errorf("failed to create key %q: %w", keyName, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize INI: %w", err)
	}

	return buf.Bytes(), nil
}

// toString converts any value to its string representation.
// INI files only support string values.
func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)

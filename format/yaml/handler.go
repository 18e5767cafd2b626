// Package yaml provides a YAML codec for figcon.
package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/figcon/format"
)

// Handler implements format.Handler for YAML files.
type Handler struct{}

// New creates a new YAML handler.
func New() *Handler {
	return &Handler{}
}

// Parse reads YAML bytes into the document's root mapping. Decoding uses
// ordered maps so key order from the source document is preserved. A
// non-mapping top level is a parse error.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (*orderedmap.OrderedMap, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for YAML format")
	}

	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if raw == nil {
		return orderedmap.New(), nil
	}

	slice, ok := raw.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("top-level YAML value is not a mapping")
	}
	return fromMapSlice(slice), nil
}

// fromMapSlice recursively converts yaml.MapSlice values to ordered maps.
func fromMapSlice(slice yaml.MapSlice) *orderedmap.OrderedMap {
	result := orderedmap.New()
	for _, item := range slice {
		result.Set(fmt.Sprint(item.Key), fromYAMLValue(item.Value))
	}
	return result
}

func fromYAMLValue(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		return fromMapSlice(val)
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = fromYAMLValue(item)
		}
		return result
	default:
		return val
	}
}

// Serialize writes the document to YAML bytes in document order.
func (h *Handler) Serialize(doc *orderedmap.OrderedMap, opts format.SerializeOptions) ([]byte, error) {
	indent := 2
	if opts.Indent != "" {
		indent = len(opts.Indent)
	}

	data, err := yaml.MarshalWithOptions(toMapSlice(doc), yaml.Indent(indent))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize YAML: %w", err)
	}
	return data, nil
}

// toMapSlice recursively converts ordered maps back to yaml.MapSlice for the
// encoder, keeping document order.
func toMapSlice(v any) any {
	if om := format.ToOrderedMapPtr(v); om != nil {
		result := make(yaml.MapSlice, 0, len(om.Keys()))
		for _, k := range om.Keys() {
			child, _ := om.Get(k)
			result = append(result, yaml.MapItem{Key: k, Value: toMapSlice(child)})
		}
		return result
	}
	if val, ok := v.([]any); ok {
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = toMapSlice(item)
		}
		return result
	}
	return v
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)

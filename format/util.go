package format

import (
	"sort"

	"github.com/iancoleman/orderedmap"
)

// ToOrderedMapPtr converts both value and pointer types of OrderedMap to a pointer.
// Returns nil if the value is not an OrderedMap.
func ToOrderedMapPtr(v any) *orderedmap.OrderedMap {
	switch val := v.(type) {
	case *orderedmap.OrderedMap:
		return val
	case orderedmap.OrderedMap:
		return &val
	default:
		return nil
	}
}

// Normalize recursively rewrites a decoded tree so every nested mapping is a
// *orderedmap.OrderedMap. Decoders that produce value-typed OrderedMaps or
// plain map[string]any values go through this so node views obtained later
// alias the stored mapping rather than a copy.
func Normalize(v any) any {
	switch val := v.(type) {
	case *orderedmap.OrderedMap:
		for _, k := range val.Keys() {
			child, _ := val.Get(k)
			val.Set(k, Normalize(child))
		}
		return val
	case orderedmap.OrderedMap:
		return Normalize(&val)
	case map[string]any:
		// Plain maps carry no document order; sort for determinism.
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		result := orderedmap.New()
		for _, k := range keys {
			result.Set(k, Normalize(val[k]))
		}
		return result
	case []any:
		for i, item := range val {
			val[i] = Normalize(item)
		}
		return val
	default:
		return val
	}
}

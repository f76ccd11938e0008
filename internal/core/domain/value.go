// Package domain contains the pure types and functions shared by all layers.
package domain

// Value is the parsed contents of a dataset file: a mapping
// (map[string]any), a sequence ([]any) or a scalar. No schema is enforced
// at this layer; lookup modules interpret the shape.
type Value = any

// DeepMerge combines src into dst and returns the result. When both sides are
// mappings the merge recurses key by key; any other combination is resolved
// by taking src wholesale (sequences included, they are never concatenated).
func DeepMerge(dst, src Value) Value {
	dstMap, dstOK := dst.(map[string]any)
	srcMap, srcOK := src.(map[string]any)
	if !dstOK || !srcOK {
		return DeepCopy(src)
	}
	for key, value := range srcMap {
		if existing, ok := dstMap[key]; ok {
			dstMap[key] = DeepMerge(existing, value)
			continue
		}
		dstMap[key] = DeepCopy(value)
	}
	return dstMap
}

// DeepCopy returns a copy of v sharing no mutable state with the original.
// Scalars are returned as-is.
func DeepCopy(v Value) Value {
	switch typed := v.(type) {
	case map[string]any:
		copied := make(map[string]any, len(typed))
		for key, value := range typed {
			copied[key] = DeepCopy(value)
		}
		return copied
	case []any:
		copied := make([]any, len(typed))
		for i, value := range typed {
			copied[i] = DeepCopy(value)
		}
		return copied
	default:
		return v
	}
}

// AsMap returns v as a mapping, or an empty mapping when v has any other
// shape. Lookup modules use this so a malformed dataset degrades to "no
// entries" instead of a panic.
func AsMap(v Value) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

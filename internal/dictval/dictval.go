// Package dictval reads loosely typed values out of decoded JSON/YAML maps.
package dictval

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToFloat coerces any Go numeric, json.Number or numeric string. Booleans
// are rejected.
func ToFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", n)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("value is null")
	}
	return 0, fmt.Errorf("%v (%T) is not a number", v, v)
}

// Float reads a required numeric key.
func Float(m map[string]any, key string) (float64, error) {
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("missing required field %q", key)
	}
	f, err := ToFloat(v)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}
	return f, nil
}

// FloatOr reads an optional numeric key; absent or null yields def.
func FloatOr(m map[string]any, key string, def float64) (float64, error) {
	if v, ok := m[key]; !ok || v == nil {
		return def, nil
	}
	return Float(m, key)
}

// String reads an optional string key; absent or null yields "".
func String(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q: %v (%T) is not a string", key, v, v)
	}
	return s, nil
}

// Bool reads an optional boolean key.
func Bool(m map[string]any, key string, def bool) (bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, fmt.Errorf("field %q: %v (%T) is not a boolean", key, v, v)
	}
	return b, nil
}

// Map reads an optional nested object. YAML decodes nested maps with
// string keys into map[string]any, so both forms are accepted.
func Map(m map[string]any, key string) (map[string]any, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	return AsMap(v)
}

// AsMap converts a decoded object into map[string]any.
func AsMap(v any) (map[string]any, error) {
	switch mm := v.(type) {
	case map[string]any:
		return mm, nil
	case map[any]any:
		out := make(map[string]any, len(mm))
		for k, val := range mm {
			out[fmt.Sprint(k)] = val
		}
		return out, nil
	}
	return nil, fmt.Errorf("%v (%T) is not an object", v, v)
}

// Rows reads a nested numeric matrix.
func Rows(v any) ([][]float64, error) {
	switch r := v.(type) {
	case [][]float64:
		out := make([][]float64, len(r))
		for i, row := range r {
			out[i] = append([]float64(nil), row...)
		}
		return out, nil
	case []any:
		out := make([][]float64, len(r))
		for i, row := range r {
			cells, ok := row.([]any)
			if !ok {
				if fr, ok := row.([]float64); ok {
					out[i] = append([]float64(nil), fr...)
					continue
				}
				return nil, fmt.Errorf("row %d: %v (%T) is not a list", i, row, row)
			}
			out[i] = make([]float64, len(cells))
			for j, c := range cells {
				f, err := ToFloat(c)
				if err != nil {
					return nil, fmt.Errorf("row %d column %d: %w", i, j, err)
				}
				out[i][j] = f
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%v (%T) is not a matrix", v, v)
}

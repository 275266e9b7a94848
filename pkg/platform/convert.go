package platform

import "fmt"

// toInt64 converts the numeric types a codec may produce to int64.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// toFloat64 converts the numeric types a codec may produce to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

// toUint32 converts the numeric types a codec may produce to uint32.
func toUint32(v any) (uint32, bool) {
	switch n := v.(type) {
	case uint32:
		return n, true
	case int:
		return uint32(n), true
	case int64:
		return uint32(n), true
	case float64:
		return uint32(n), true
	default:
		return 0, false
	}
}

// floatField reads m[key] as a float64, defaulting to def.
func floatField(m map[string]any, key string, def float64) float64 {
	if v, ok := toFloat64(m[key]); ok {
		return v
	}
	return def
}

// parseString extracts a string from an any value.
func parseString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// parseMap extracts a map[string]any from an any value.
func parseMap(value any) map[string]any {
	if value == nil {
		return nil
	}
	if m, ok := value.(map[string]any); ok {
		return m
	}
	if m, ok := value.(map[any]any); ok {
		converted := make(map[string]any, len(m))
		for key, val := range m {
			if keyString, ok := key.(string); ok {
				converted[keyString] = val
			}
		}
		return converted
	}
	return nil
}

// parseOperation converts a wire operation name to a DataPackageOperation.
func parseOperation(value any) DataPackageOperation {
	switch parseString(value) {
	case "copy":
		return OperationCopy
	case "move":
		return OperationMove
	case "link":
		return OperationLink
	default:
		return OperationNone
	}
}

func (op DataPackageOperation) String() string {
	switch op {
	case OperationNone:
		return "none"
	case OperationCopy:
		return "copy"
	case OperationMove:
		return "move"
	case OperationLink:
		return "link"
	default:
		return "mixed"
	}
}

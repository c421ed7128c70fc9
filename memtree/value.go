package memtree

import (
	"fmt"
	"math"
	"reflect"
)

// NormalizeValue checks a value against the storable data model and returns a
// normalized copy of it.
//
// The model is a closed set: nil, bool, int64, float64, string, []any, and
// map[string]any, with container elements drawn recursively from the same
// set. Integer types widen to int64, and float64 values that are safe
// integers collapse to int64 so that values survive a JSON round-trip with
// their equality intact. Anything outside the model is rejected.
func NormalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return val, nil
	case int:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case uint:
		return normalizeUint(uint64(val))
	case uint32:
		return int64(val), nil
	case uint64:
		return normalizeUint(val)
	case float32:
		return normalizeFloat(float64(val)), nil
	case float64:
		return normalizeFloat(val), nil
	case string:
		return val, nil
	case []any:
		return normalizeArray(val)
	case map[string]any:
		return normalizeMap(val)
	case []string:
		arr := make([]any, len(val))
		for i, s := range val {
			arr[i] = s
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unstorable value type: %s", reflect.TypeOf(v))
	}
}

func normalizeUint(u uint64) (any, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("unstorable value: %d overflows int64", u)
	}
	return int64(u), nil
}

func normalizeFloat(f float64) any {
	if f == float64(int64(f)) {
		return int64(f)
	}
	return f
}

func normalizeArray(l []any) ([]any, error) {
	out := make([]any, len(l))
	for i, v := range l {
		nv, err := NormalizeValue(v)
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return out, nil
}

func normalizeMap(obj map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		nv, err := NormalizeValue(v)
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}

// valueEqual reports structural equality of two normalized values.
func valueEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

package configuration

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// TriangleConfigHookFunc returns a mapstructure decode hook that allows
// the shorthand list notation "cold: [0, 10, 20]" for TriangleConfig.
func TriangleConfigHookFunc() mapstructure.DecodeHookFuncType {
	triangleType := reflect.TypeOf(TriangleConfig{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != triangleType {
			return data, nil
		}
		values, ok, err := parseFloatList(data, 3)
		if !ok || err != nil {
			return data, err
		}
		return TriangleConfig{Left: values[0], Peak: values[1], Right: values[2]}, nil
	}
}

// FouConfigHookFunc returns a mapstructure decode hook that allows
// the shorthand list notation "cold: [0.2, 0.3]" for FouConfig.
func FouConfigHookFunc() mapstructure.DecodeHookFuncType {
	fouType := reflect.TypeOf(FouConfig{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != fouType {
			return data, nil
		}
		values, ok, err := parseFloatList(data, 2)
		if !ok || err != nil {
			return data, err
		}
		return FouConfig{Lower: values[0], Upper: values[1]}, nil
	}
}

// parseFloatList converts a list from YAML decoding into floats.
// ok is false if data is not a list at all.
func parseFloatList(data interface{}, expectedLength int) (result []float64, ok bool, err error) {
	var items []interface{}
	switch v := data.(type) {
	case []interface{}:
		items = v
	case []float64:
		return v, true, checkLength(len(v), expectedLength)
	case []int:
		for _, i := range v {
			items = append(items, i)
		}
	default:
		return nil, false, nil
	}

	if err := checkLength(len(items), expectedLength); err != nil {
		return nil, true, err
	}

	for _, item := range items {
		value, err := anyToFloat(item)
		if err != nil {
			return nil, true, err
		}
		result = append(result, value)
	}
	return result, true, nil
}

func checkLength(actual int, expected int) error {
	if actual != expected {
		return fmt.Errorf("expected a list of %d values, got %d", expected, actual)
	}
	return nil
}

// anyToFloat converts numeric and string values to float64.
func anyToFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case uint64:
		return float64(val), nil
	case string:
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as number: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to number", v)
	}
}

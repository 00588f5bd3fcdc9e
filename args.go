package shapecheck

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/reoring/shapecheck/internal/reflectx"
	"github.com/reoring/shapecheck/predicate"
)

// Argument decoding for dynamically called predicates. A decoder that cannot
// make sense of its input reports false and the predicate evaluates to false.

// listArg decodes args[i] as a list: any slice or array, but not a string.
func listArg(args []any, i int) ([]any, bool) {
	if i >= len(args) {
		return nil, false
	}
	rv := reflect.ValueOf(args[i])
	if !reflectx.IsArray(rv) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for j := range out {
		out[j] = rv.Index(j).Interface()
	}
	return out, true
}

// stringsArg decodes args[i] as a list of strings.
func stringsArg(args []any, i int) ([]string, bool) {
	if i < len(args) {
		if ss, ok := args[i].([]string); ok {
			return ss, true
		}
	}
	list, ok := listArg(args, i)
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	for j := range list {
		s, ok := stringArg(list, j)
		if !ok {
			return nil, false
		}
		out[j] = s
	}
	return out, true
}

// stringArg decodes args[i] as a string of any string kind.
func stringArg(args []any, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	rv, ok := reflectx.Indirect(args[i])
	if !ok || !reflectx.IsString(rv) {
		return "", false
	}
	return rv.String(), true
}

// intArg decodes args[i] as an int. Integer kinds, integral floats and
// integral json.Number values are accepted.
func intArg(args []any, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	switch n := args[i].(type) {
	case int:
		return n, true
	case json.Number:
		if v, err := n.Int64(); err == nil {
			return toInt(v)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	}
	rv := reflect.ValueOf(args[i])
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return toInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		return floatToInt(rv.Float())
	default:
		return 0, false
	}
}

func toInt(v int64) (int, bool) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// kindArg decodes args[i] as a predicate.Kind, either the value itself or its
// name. Unknown names decode to KindInvalid so HasValueType reports false.
func kindArg(args []any, i int) (predicate.Kind, bool) {
	if i >= len(args) {
		return predicate.KindInvalid, false
	}
	if k, ok := args[i].(predicate.Kind); ok {
		return k, true
	}
	if s, ok := stringArg(args, i); ok {
		k, _ := predicate.ParseKind(s)
		return k, true
	}
	return predicate.KindInvalid, false
}

package shapecheck

import (
	"reflect"

	"github.com/reoring/shapecheck/internal/reflectx"
)

// Category classifies a subject for group selection. Predicates do not use
// it; they carry their own guards.
type Category int

const (
	CategoryOther    Category = iota // Numbers, booleans, channels, and the rest.
	CategoryObject                   // Maps and structs.
	CategoryArray                    // Slices and arrays.
	CategoryString                   // Values of string kind.
	CategoryFunction                 // Non-nil funcs.
	CategoryNull                     // nil, nil pointers, nil funcs and chans.
)

func (c Category) String() string {
	switch c {
	case CategoryObject:
		return "object"
	case CategoryArray:
		return "array"
	case CategoryString:
		return "string"
	case CategoryFunction:
		return "function"
	case CategoryNull:
		return "null"
	default:
		return "other"
	}
}

// CategoryOf classifies v, following pointers and interfaces.
func CategoryOf(v any) Category {
	if reflectx.IsNull(v) {
		return CategoryNull
	}
	rv, _ := reflectx.Indirect(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return CategoryObject
	case reflect.Slice, reflect.Array:
		return CategoryArray
	case reflect.String:
		if reflectx.IsString(rv) {
			return CategoryString
		}
		return CategoryOther
	case reflect.Func:
		return CategoryFunction
	default:
		return CategoryOther
	}
}

// Package reflectx holds the reflection helpers shared by the predicates, the
// category classifier and the query layer.
package reflectx

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// maxIndirect bounds pointer chasing so self-referencing pointers terminate.
const maxIndirect = 64

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// external key.
// Priority: shapecheck:"name=..." > json tag name > field name; "-" hides the field.
func ResolveStructKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("shapecheck"); gt != "" {
		parts := strings.Split(gt, ",")
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
			if p == "-" {
				return "-"
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if jt[:i] != "" {
				return jt[:i]
			}
			return sf.Name
		}
		return jt
	}
	return sf.Name
}

// Indirect follows pointers and interfaces down to a concrete value. ok is
// false when a nil pointer or nil interface is met on the way.
func Indirect(v any) (reflect.Value, bool) {
	return IndirectValue(reflect.ValueOf(v))
}

// IndirectValue is Indirect for an already reflected value.
func IndirectValue(rv reflect.Value) (reflect.Value, bool) {
	for i := 0; i < maxIndirect && rv.IsValid(); i++ {
		if rv.Kind() != reflect.Pointer && rv.Kind() != reflect.Interface {
			return rv, true
		}
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

// IsNull reports whether v is a null reference: untyped nil, or a nil pointer,
// interface, func or chan (possibly reached through non-nil pointers).
// Nil maps and slices are empty containers, not null.
func IsNull(v any) bool {
	return IsNullValue(reflect.ValueOf(v))
}

// IsNullValue is IsNull for an already reflected value.
func IsNullValue(rv reflect.Value) bool {
	rv, ok := IndirectValue(rv)
	if !ok {
		return true
	}
	switch rv.Kind() {
	case reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// IsObject reports whether rv (already indirected) is object-like: a map, a
// struct, or a slice/array viewed as an index-keyed object.
func IsObject(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// IsArray reports whether rv (already indirected) is a slice or an array.
func IsArray(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

// IsNumber reports whether rv holds a number: any integer or float kind, or a
// json.Number.
func IsNumber(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	if rv.Type() == jsonNumberType {
		return true
	}
	return IsIntLike(rv.Kind()) || IsFloatLike(rv.Kind())
}

// IsString reports whether rv holds a string. json.Number is a number, not a string.
func IsString(rv reflect.Value) bool {
	return rv.IsValid() && rv.Kind() == reflect.String && rv.Type() != jsonNumberType
}

var jsonNumberType = reflect.TypeOf(json.Number(""))

// Fields lists the own keys and values of an object-like value. Structs expose
// their exported fields under the resolved key, maps render keys as strings,
// and slices/arrays use decimal indexes.
func Fields(rv reflect.Value) (keys []string, values []reflect.Value, ok bool) {
	switch rv.Kind() {
	case reflect.Map:
		keys = make([]string, 0, rv.Len())
		values = make([]reflect.Value, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			keys = append(keys, MapKeyString(it.Key()))
			values = append(values, it.Value())
		}
		return keys, values, true
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := ResolveStructKey(sf)
			if name == "-" {
				continue
			}
			keys = append(keys, name)
			values = append(values, rv.Field(i))
		}
		return keys, values, true
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		keys = make([]string, n)
		values = make([]reflect.Value, n)
		for i := 0; i < n; i++ {
			keys[i] = strconv.Itoa(i)
			values[i] = rv.Index(i)
		}
		return keys, values, true
	default:
		return nil, nil, false
	}
}

// Field returns the own property key of an object-like value.
func Field(rv reflect.Value, key string) (reflect.Value, bool) {
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() == reflect.String {
			mv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
			return mv, mv.IsValid()
		}
		it := rv.MapRange()
		for it.Next() {
			if MapKeyString(it.Key()) == key {
				return it.Value(), true
			}
		}
		return reflect.Value{}, false
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			if name := ResolveStructKey(sf); name != "-" && name == key {
				return rv.Field(i), true
			}
		}
		return reflect.Value{}, false
	case reflect.Slice, reflect.Array:
		idx, ok := TryParseIndex(key)
		if !ok || idx >= rv.Len() {
			return reflect.Value{}, false
		}
		return rv.Index(idx), true
	default:
		return reflect.Value{}, false
	}
}

// MapKeyString renders a map key the way object keys are compared.
func MapKeyString(k reflect.Value) string {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String()
	}
	if k.CanInterface() {
		return fmt.Sprint(k.Interface())
	}
	return k.String()
}

// TryParseIndex parses a canonical, non-negative decimal index ("0", "12").
// Leading zeros and signs are rejected so "01" never aliases "1".
func TryParseIndex(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n < 0 {
			return 0, false
		}
	}
	return n, true
}

func IsIntLike(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func IsFloatLike(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// Package predicate implements the primitive structural predicates.
//
// Every predicate takes the subject first and starts with a guard: when the
// subject is not of the category the predicate applies to, the result is
// false. Predicates never panic and never mutate the subject. Pointer subjects
// are dereferenced on every call so later writes through the pointer are
// observed.
package predicate

import (
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/reoring/shapecheck/internal/reflectx"
)

// object returns the subject as a non-null object-like value.
func object(subject any) (reflect.Value, bool) {
	rv, ok := reflectx.Indirect(subject)
	if !ok || !reflectx.IsObject(rv) {
		return reflect.Value{}, false
	}
	return rv, true
}

// ContainsKeys reports whether every key (duplicates ignored) is an own key of
// the subject. An empty key list holds for any object.
func ContainsKeys(subject any, keys []string) bool {
	rv, ok := object(subject)
	if !ok {
		return false
	}
	own, _, _ := reflectx.Fields(rv)
	return containsKeys(own, keys)
}

func containsKeys(own, keys []string) bool {
	set := make(map[string]struct{}, len(own))
	for _, k := range own {
		set[k] = struct{}{}
	}
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := set[k]; !ok {
			return false
		}
	}
	return true
}

// HasKeys reports whether the subject has exactly the given keys. The own-key
// count is compared against len(keys) as given, before duplicates are removed,
// so a repeated key makes HasKeys false while ContainsKeys may still hold.
func HasKeys(subject any, keys []string) bool {
	rv, ok := object(subject)
	if !ok {
		return false
	}
	own, _, _ := reflectx.Fields(rv)
	return len(own) == len(keys) && containsKeys(own, keys)
}

// ContainsValues reports whether every entry of values is among the subject's
// own values under SameValue. Order and duplicates are irrelevant.
func ContainsValues(subject any, values []any) bool {
	rv, ok := object(subject)
	if !ok {
		return false
	}
	_, own, _ := reflectx.Fields(rv)
	return containsValues(own, values)
}

func containsValues(own []reflect.Value, values []any) bool {
	for _, want := range values {
		wv := reflect.ValueOf(want)
		found := false
		for _, have := range own {
			if sameValue(have, wv) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// HasValues reports whether the subject's value count equals len(values) as
// given and ContainsValues holds. Duplicates count toward the length.
func HasValues(subject any, values []any) bool {
	rv, ok := object(subject)
	if !ok {
		return false
	}
	_, own, _ := reflectx.Fields(rv)
	return len(own) == len(values) && containsValues(own, values)
}

// HasValueType reports whether the subject has the own property key and its
// value is of the requested kind. Pointers to values are followed.
func HasValueType(subject any, key string, kind Kind) bool {
	rv, ok := object(subject)
	if !ok {
		return false
	}
	fv, ok := reflectx.Field(rv, key)
	if !ok {
		return false
	}
	fv, ok = reflectx.IndirectValue(fv)
	if !ok {
		return false
	}
	switch kind {
	case KindString:
		return reflectx.IsString(fv)
	case KindNumber:
		return reflectx.IsNumber(fv)
	case KindFunction:
		return fv.Kind() == reflect.Func && !fv.IsNil()
	case KindArray:
		return reflectx.IsArray(fv)
	default:
		return false
	}
}

// HasLength reports whether the subject is an array (element count) or a
// string (rune count) of length n.
func HasLength(subject any, n int) bool {
	rv, ok := reflectx.Indirect(subject)
	if !ok {
		return false
	}
	switch {
	case reflectx.IsString(rv):
		return utf8.RuneCountInString(rv.String()) == n
	case reflectx.IsArray(rv):
		return rv.Len() == n
	default:
		return false
	}
}

// HasWordsCount reports whether the string subject splits into n words.
// Words are separated by runs of spaces and newlines.
func HasWordsCount(subject any, n int) bool {
	rv, ok := reflectx.Indirect(subject)
	if !ok || !reflectx.IsString(rv) {
		return false
	}
	return len(Words(rv.String())) == n
}

// Words splits s on spaces and newlines, dropping empty tokens.
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '\n' })
}

// HasParamsCount reports whether the function subject declares n parameters
// before its variadic tail, if any.
func HasParamsCount(subject any, n int) bool {
	rv, ok := reflectx.Indirect(subject)
	if !ok || rv.Kind() != reflect.Func || rv.IsNil() {
		return false
	}
	return ParamsCount(rv.Type()) == n
}

// ParamsCount counts the parameters of a func type that precede a variadic
// parameter.
func ParamsCount(ft reflect.Type) int {
	n := ft.NumIn()
	if ft.IsVariadic() {
		n--
	}
	return n
}

// IsNull reports whether the subject is a null reference.
func IsNull(subject any) bool {
	return reflectx.IsNull(subject)
}

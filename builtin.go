package shapecheck

import "github.com/reoring/shapecheck/predicate"

// Built-in group identifiers.
const (
	GroupObject     = "object-methods"
	GroupArrayExtra = "array-extra-methods"
	GroupString     = "string-methods"
	GroupFunction   = "function-methods"
	GroupNull       = "null-methods"
)

// Built-in method names.
const (
	MethodContainsKeys   = "containsKeys"
	MethodHasKeys        = "hasKeys"
	MethodContainsValues = "containsValues"
	MethodHasValues      = "hasValues"
	MethodHasValueType   = "hasValueType"
	MethodHasLength      = "hasLength"
	MethodHasWordsCount  = "hasWordsCount"
	MethodHasParamsCount = "hasParamsCount"
	MethodIsNull         = "isNull"
)

// arity is the number of arguments each built-in method reads.
var arity = map[string]int{
	MethodContainsKeys:   1,
	MethodHasKeys:        1,
	MethodContainsValues: 1,
	MethodHasValues:      1,
	MethodHasValueType:   2,
	MethodHasLength:      1,
	MethodHasWordsCount:  1,
	MethodHasParamsCount: 1,
	MethodIsNull:         0,
}

// Arity reports how many arguments a built-in method reads. Extra arguments
// are ignored.
func Arity(method string) (int, bool) {
	n, ok := arity[method]
	return n, ok
}

// Dynamic forms of the primitive predicates.

func containsKeys(subject any, args ...any) bool {
	keys, ok := stringsArg(args, 0)
	return ok && predicate.ContainsKeys(subject, keys)
}

func hasKeys(subject any, args ...any) bool {
	keys, ok := stringsArg(args, 0)
	return ok && predicate.HasKeys(subject, keys)
}

func containsValues(subject any, args ...any) bool {
	values, ok := listArg(args, 0)
	return ok && predicate.ContainsValues(subject, values)
}

func hasValues(subject any, args ...any) bool {
	values, ok := listArg(args, 0)
	return ok && predicate.HasValues(subject, values)
}

func hasValueType(subject any, args ...any) bool {
	key, ok := stringArg(args, 0)
	if !ok {
		return false
	}
	kind, ok := kindArg(args, 1)
	return ok && predicate.HasValueType(subject, key, kind)
}

func hasLength(subject any, args ...any) bool {
	n, ok := intArg(args, 0)
	return ok && predicate.HasLength(subject, n)
}

func hasWordsCount(subject any, args ...any) bool {
	n, ok := intArg(args, 0)
	return ok && predicate.HasWordsCount(subject, n)
}

func hasParamsCount(subject any, args ...any) bool {
	n, ok := intArg(args, 0)
	return ok && predicate.HasParamsCount(subject, n)
}

func isNull(subject any, _ ...any) bool {
	return predicate.IsNull(subject)
}

// BuiltinGroups returns the five built-in groups.
func BuiltinGroups() []Group {
	return []Group{
		NewGroup(GroupObject,
			Entry{MethodContainsKeys, containsKeys},
			Entry{MethodHasKeys, hasKeys},
			Entry{MethodContainsValues, containsValues},
			Entry{MethodHasValues, hasValues},
			Entry{MethodHasValueType, hasValueType},
		),
		NewGroup(GroupArrayExtra,
			Entry{MethodHasLength, hasLength},
		),
		NewGroup(GroupString,
			Entry{MethodHasLength, hasLength},
			Entry{MethodHasWordsCount, hasWordsCount},
		),
		NewGroup(GroupFunction,
			Entry{MethodHasParamsCount, hasParamsCount},
		),
		NewGroup(GroupNull,
			Entry{MethodIsNull, isNull},
		),
	}
}

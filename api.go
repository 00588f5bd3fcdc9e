package shapecheck

import "github.com/reoring/shapecheck/predicate"

// wrapGroups is the union used by Wrap, for both the positive and the negated
// view.
var wrapGroups = []string{GroupObject, GroupString, GroupFunction, GroupArrayExtra, GroupNull}

// Wrap returns a checker exposing every built-in method for v. Methods that do
// not apply to v's category report false, and their negations true.
func Wrap(v any) *Checker {
	return defaultRegistry.MustBuild(v, wrapGroups, wrapGroups)
}

// GroupsFor returns the group names selected for a category:
//
//	object    object-methods
//	array     object-methods, array-extra-methods
//	string    string-methods
//	function  function-methods
//	null      null-methods
//	other     none
//
// The negative list mirrors the positive one.
func GroupsFor(c Category) (positive, negative []string) {
	var names []string
	switch c {
	case CategoryObject:
		names = []string{GroupObject}
	case CategoryArray:
		names = []string{GroupObject, GroupArrayExtra}
	case CategoryString:
		names = []string{GroupString}
	case CategoryFunction:
		names = []string{GroupFunction}
	case CategoryNull:
		names = []string{GroupNull}
	}
	return names, append([]string(nil), names...)
}

// For returns a checker scoped to the groups of v's category. A value of
// CategoryOther yields a checker without methods.
func For(v any) *Checker {
	return build(v, CategoryOf(v))
}

func build(v any, c Category) *Checker {
	pos, neg := GroupsFor(c)
	return defaultRegistry.MustBuild(v, pos, neg)
}

// ObjectMethods are the predicates of object-methods.
type ObjectMethods interface {
	ContainsKeys(keys ...string) bool
	HasKeys(keys ...string) bool
	ContainsValues(values ...any) bool
	HasValues(values ...any) bool
	HasValueType(key string, kind predicate.Kind) bool
}

// LengthMethods are the predicates shared by arrays and strings.
type LengthMethods interface {
	HasLength(n int) bool
}

// ArrayMethods are the predicates exposed for arrays.
type ArrayMethods interface {
	ObjectMethods
	LengthMethods
}

// StringMethods are the predicates of string-methods.
type StringMethods interface {
	LengthMethods
	HasWordsCount(n int) bool
}

// FunctionMethods are the predicates of function-methods.
type FunctionMethods interface {
	HasParamsCount(n int) bool
}

// ObjectChecker checks a map or struct.
type ObjectChecker interface {
	ObjectMethods
	Not() ObjectMethods
}

// ArrayChecker checks a slice or array.
type ArrayChecker interface {
	ArrayMethods
	Not() ArrayMethods
}

// StringChecker checks a string.
type StringChecker interface {
	StringMethods
	Not() StringMethods
}

// FunctionChecker checks a func.
type FunctionChecker interface {
	FunctionMethods
	Not() FunctionMethods
}

// Object returns a checker with the object methods bound to v. v is expected
// to be a map or a struct (or a pointer to one); anything else makes every
// method report false.
func Object(v any) ObjectChecker { return objectChecker{build(v, CategoryObject)} }

// Array returns a checker with the array methods bound to s. The slice header
// is captured as given: element writes are observed, appends are not. Pass a
// pointer to For to observe growth.
func Array[S ~[]E, E any](s S) ArrayChecker { return arrayChecker{build(s, CategoryArray)} }

// String returns a checker with the string methods bound to s.
func String[S ~string](s S) StringChecker { return stringChecker{build(s, CategoryString)} }

// Func returns a checker with the function methods bound to fn.
func Func(fn any) FunctionChecker { return functionChecker{build(fn, CategoryFunction)} }

type objectChecker struct{ *Checker }

func (c objectChecker) Not() ObjectMethods { return c.Checker.Not() }

type arrayChecker struct{ *Checker }

func (c arrayChecker) Not() ArrayMethods { return c.Checker.Not() }

type stringChecker struct{ *Checker }

func (c stringChecker) Not() StringMethods { return c.Checker.Not() }

type functionChecker struct{ *Checker }

func (c functionChecker) Not() FunctionMethods { return c.Checker.Not() }

package query

import (
	shapecheck "github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/internal/pointer"
	"github.com/reoring/shapecheck/internal/reflectx"
)

// absentValue stands in for a value a pointer did not resolve to. It is of
// CategoryOther, so every predicate reports false on it.
type absentValue uint8

const absent absentValue = 0

// Result is the outcome of one check.
type Result struct {
	Check    Check
	Index    int
	Found    bool // At resolved to a value.
	Category shapecheck.Category
	Passed   bool
}

// Report collects results in check order.
type Report struct {
	Results []Result
}

// OK reports whether every check passed.
func (r Report) OK() bool { return len(r.Failed()) == 0 }

// Failed returns the failing results.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// Run validates f and evaluates every check against doc. Each check wraps
// the resolved value with shapecheck.Wrap, so methods that do not apply to
// the value's category fail (or pass, when negated).
func Run(doc any, f File) (Report, error) {
	if err := Validate(f); err != nil {
		return Report{}, err
	}
	rep := Report{Results: make([]Result, 0, len(f.Checks))}
	for i, c := range f.Checks {
		v, found := Resolve(doc, c.At)
		var subject any = absent
		if found {
			subject = v
		}
		checker := shapecheck.Wrap(subject)
		var passed bool
		if c.Not {
			passed = checker.Not().Call(c.Method, c.Args...)
		} else {
			passed = checker.Call(c.Method, c.Args...)
		}
		rep.Results = append(rep.Results, Result{
			Check:    c,
			Index:    i,
			Found:    found,
			Category: shapecheck.CategoryOf(subject),
			Passed:   passed,
		})
	}
	return rep, nil
}

// Resolve navigates doc by JSON Pointer through maps, structs (by resolved
// key), slices, arrays, pointers and interfaces.
func Resolve(doc any, ptr string) (any, bool) {
	path, err := pointer.Parse(ptr)
	if err != nil {
		return nil, false
	}
	if len(path) == 0 {
		return doc, true
	}
	cur, ok := reflectx.Indirect(doc)
	if !ok {
		return nil, false
	}
	for i, tok := range path {
		next, ok := reflectx.Field(cur, tok)
		if !ok || !next.CanInterface() {
			return nil, false
		}
		if i == len(path)-1 {
			return next.Interface(), true
		}
		cur, ok = reflectx.IndirectValue(next)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

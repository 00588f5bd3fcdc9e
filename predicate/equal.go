package predicate

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	"github.com/reoring/shapecheck/internal/reflectx"
)

// SameValue reports whether a and b are the same value under strict equality:
//
//   - numbers compare by numeric value across Go numeric types and json.Number,
//     and NaN equals NaN;
//   - maps and slices compare by identity (same backing storage, same length);
//   - funcs compare by code pointer, so two closures of one literal are equal;
//   - everything else needs identical dynamic types and == equality.
//
// Values that cannot be compared are never equal. SameValue never panics.
func SameValue(a, b any) bool {
	return sameValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func sameValue(a, b reflect.Value) bool {
	a, b = unwrapInterface(a), unwrapInterface(b)
	if !a.IsValid() || !b.IsValid() {
		return !a.IsValid() && !b.IsValid()
	}
	if reflectx.IsNumber(a) && reflectx.IsNumber(b) {
		na, okA := numberOf(a)
		nb, okB := numberOf(b)
		if okA && okB {
			return na.equal(nb)
		}
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Map:
		return a.UnsafePointer() == b.UnsafePointer()
	case reflect.Slice:
		return a.UnsafePointer() == b.UnsafePointer() && a.Len() == b.Len()
	case reflect.Func:
		return a.Pointer() == b.Pointer()
	}
	if !a.Comparable() || !b.Comparable() {
		return false
	}
	return a.Equal(b)
}

func unwrapInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

type numKind int

const (
	numInt numKind = iota
	numUint
	numFloat
)

type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
}

func numberOf(v reflect.Value) (number, bool) {
	if v.Type() == reflect.TypeOf(json.Number("")) {
		s := v.String()
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return number{kind: numInt, i: i}, true
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return number{kind: numUint, u: u}, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return number{kind: numFloat, f: f}, true
		}
		return number{}, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: numInt, i: v.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: numUint, u: v.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: numFloat, f: v.Float()}, true
	}
	return number{}, false
}

func (n number) equal(o number) bool {
	if n.kind > o.kind {
		n, o = o, n
	}
	switch {
	case n.kind == numInt && o.kind == numInt:
		return n.i == o.i
	case n.kind == numUint && o.kind == numUint:
		return n.u == o.u
	case n.kind == numInt && o.kind == numUint:
		return n.i >= 0 && uint64(n.i) == o.u
	case n.kind == numFloat && o.kind == numFloat:
		if math.IsNaN(n.f) && math.IsNaN(o.f) {
			return true
		}
		return n.f == o.f
	case n.kind == numInt && o.kind == numFloat:
		return floatIsInt(o.f) && int64(o.f) == n.i
	case n.kind == numUint && o.kind == numFloat:
		return floatIsUint(o.f) && uint64(o.f) == n.u
	}
	return false
}

func floatIsInt(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}

func floatIsUint(f float64) bool {
	return f == math.Trunc(f) && f >= 0 && f < math.MaxUint64
}

package shapecheck_test

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	shapecheck "github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/predicate"
)

// subjects covers every category, including values where no predicate applies.
func subjects() []any {
	s := "pointed"
	return []any{
		nil,
		(*int)(nil),
		map[string]any{"a": 1, "b": 2},
		map[string]int{"a": 1},
		struct {
			Name string `json:"name"`
			Tags []string
		}{"x", nil},
		[]int{1, 2, 3},
		[]string{},
		"a  b c",
		"",
		&s,
		func(a, b int, rest ...int) {},
		func() {},
		42,
		math.NaN(),
		true,
	}
}

// argTuples lists argument tuples per method, well-formed and malformed.
var argTuples = map[string][][]any{
	shapecheck.MethodContainsKeys:   {{[]string{"a"}}, {[]string{"a", "a"}}, {[]string{}}, {[]any{"a", "b"}}, {42}, {}},
	shapecheck.MethodHasKeys:        {{[]string{"a", "b"}}, {[]string{"a", "a"}}, {[]string{"name", "Tags"}}, {"a"}, {}},
	shapecheck.MethodContainsValues: {{[]any{1}}, {[]any{1, 2}}, {[]int{1, 2}}, {nil}},
	shapecheck.MethodHasValues:      {{[]any{1, 2}}, {[]any{1}}, {[]any{1, 1}}, {1}},
	shapecheck.MethodHasValueType:   {{"a", predicate.KindNumber}, {"name", "string"}, {"Tags", predicate.KindArray}, {"a", "Boolean"}, {"a"}},
	shapecheck.MethodHasLength:      {{3}, {0}, {6}, {3.0}, {3.5}, {"3"}, {}},
	shapecheck.MethodHasWordsCount:  {{3}, {0}, {1}, {-1}},
	shapecheck.MethodHasParamsCount: {{2}, {0}, {3}},
	shapecheck.MethodIsNull:         {{}, {"ignored"}},
}

func TestWrap_ExactNegation(t *testing.T) {
	for _, s := range subjects() {
		c := shapecheck.Wrap(s)
		for _, m := range c.Methods() {
			for _, args := range argTuples[m] {
				if got, neg := c.Call(m, args...), c.Not().Call(m, args...); got == neg {
					t.Fatalf("%s%v on %#v: positive=%v negated=%v", m, args, s, got, neg)
				}
			}
		}
	}
}

func TestFor_ExactNegation(t *testing.T) {
	for _, s := range subjects() {
		c := shapecheck.For(s)
		if diff := cmp.Diff(c.Methods(), c.Not().Methods()); diff != "" {
			t.Fatalf("method sets differ for %#v (-pos +neg):\n%s", s, diff)
		}
		for _, m := range c.Methods() {
			for _, args := range argTuples[m] {
				if c.Call(m, args...) == c.Not().Call(m, args...) {
					t.Fatalf("%s%v on %#v is not negated exactly", m, args, s)
				}
			}
		}
	}
}

func TestWrap_MethodSet(t *testing.T) {
	want := []string{
		shapecheck.MethodContainsKeys,
		shapecheck.MethodHasKeys,
		shapecheck.MethodContainsValues,
		shapecheck.MethodHasValues,
		shapecheck.MethodHasValueType,
		shapecheck.MethodHasLength,
		shapecheck.MethodHasWordsCount,
		shapecheck.MethodHasParamsCount,
		shapecheck.MethodIsNull,
	}
	c := shapecheck.Wrap(nil)
	if diff := cmp.Diff(want, c.Methods()); diff != "" {
		t.Fatalf("unexpected methods (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, c.Not().Methods()); diff != "" {
		t.Fatalf("unexpected negated methods (-want +got):\n%s", diff)
	}
}

func TestWrap_NullIsolation(t *testing.T) {
	c := shapecheck.Wrap(nil)
	if !c.IsNull() {
		t.Fatalf("expected isNull")
	}
	if c.Not().IsNull() {
		t.Fatalf("expected not.isNull to be false")
	}
	for _, m := range c.Methods() {
		if m == shapecheck.MethodIsNull {
			continue
		}
		for _, args := range argTuples[m] {
			if c.Call(m, args...) {
				t.Fatalf("expected %s%v to be false on nil", m, args)
			}
			if !c.Not().Call(m, args...) {
				t.Fatalf("expected not.%s%v to be true on nil", m, args)
			}
		}
	}
}

func TestWrap_KeysAndValues(t *testing.T) {
	c := shapecheck.Wrap(map[string]any{"a": 1, "b": 2})
	if !c.HasKeys("a", "b") {
		t.Fatalf("expected hasKeys(a,b)")
	}
	if c.HasKeys("a") {
		t.Fatalf("expected hasKeys(a) to be false")
	}
	if !c.ContainsKeys("a") {
		t.Fatalf("expected containsKeys(a)")
	}
	if !c.HasValues(2, 1) || !c.ContainsValues(1) {
		t.Fatalf("expected value checks to hold")
	}
	if !c.HasValueType("a", predicate.KindNumber) || c.HasValueType("a", predicate.KindString) {
		t.Fatalf("unexpected hasValueType result")
	}

	one := shapecheck.Wrap(map[string]int{"a": 1})
	if one.HasKeys("a", "a") {
		t.Fatalf("expected hasKeys(a,a) to be false for {a:1}")
	}
	if !one.ContainsKeys("a", "a") {
		t.Fatalf("expected containsKeys(a,a) to be true for {a:1}")
	}
}

func TestWrap_StringsFunctionsLengths(t *testing.T) {
	if !shapecheck.Wrap("a  b c").HasWordsCount(3) {
		t.Fatalf("expected three words")
	}
	if !shapecheck.Wrap(func(a, b int, rest ...int) {}).HasParamsCount(2) {
		t.Fatalf("expected two declared parameters")
	}
	arr := shapecheck.Wrap([]int{1, 2, 3})
	if !arr.HasLength(3) || arr.Not().HasLength(3) {
		t.Fatalf("unexpected length duality on slice")
	}
	if !shapecheck.Wrap("abc").HasLength(3) {
		t.Fatalf("expected string length 3")
	}
	five := shapecheck.Wrap(5)
	if five.HasLength(3) || !five.Not().HasLength(3) {
		t.Fatalf("unexpected length duality on number")
	}
}

func TestWrap_NumberEverythingNegated(t *testing.T) {
	c := shapecheck.Wrap(42)
	for _, m := range c.Methods() {
		for _, args := range argTuples[m] {
			if c.Call(m, args...) || !c.Not().Call(m, args...) {
				t.Fatalf("%s%v: expected false/true on a number", m, args)
			}
		}
	}
}

func TestChecker_SubjectByReference(t *testing.T) {
	m := map[string]any{"a": 1}
	c := shapecheck.Wrap(m)
	if c.ContainsKeys("b") {
		t.Fatalf("unexpected key b")
	}
	m["b"] = 2
	if !c.ContainsKeys("b") || !c.HasKeys("a", "b") {
		t.Fatalf("expected mutation to be observed")
	}
	if c.Not().ContainsKeys("b") {
		t.Fatalf("expected negated view to observe mutation too")
	}

	s := "one"
	p := shapecheck.Wrap(&s)
	s = "one two"
	if !p.HasWordsCount(2) {
		t.Fatalf("expected pointer subject to observe reassignment")
	}

	xs := []int{1}
	g := shapecheck.For(&xs)
	xs = append(xs, 2)
	if !g.HasLength(2) {
		t.Fatalf("expected slice growth to be observed through the pointer")
	}
	if c.Subject() == nil {
		t.Fatalf("expected subject to be retained")
	}
}

func TestChecker_NotMemoized(t *testing.T) {
	c := shapecheck.Wrap("x")
	if c.Not() != c.Not() {
		t.Fatalf("expected negated view to be built once")
	}
}

func TestChecker_NotConcurrent(t *testing.T) {
	c := shapecheck.Wrap([]int{1, 2})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Not().HasLength(2) {
				t.Errorf("expected not.hasLength(2) to be false")
			}
		}()
	}
	wg.Wait()
}

func TestChecker_CallUnknownMethodPanics(t *testing.T) {
	c := shapecheck.For("abc")
	if c.Has(shapecheck.MethodHasKeys) {
		t.Fatalf("string checker must not expose hasKeys")
	}
	if _, ok := c.Lookup(shapecheck.MethodHasKeys); ok {
		t.Fatalf("expected lookup miss")
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, shapecheck.ErrUnknownMethod) {
			t.Fatalf("expected ErrUnknownMethod panic, got %v", r)
		}
	}()
	c.HasKeys("a")
}

func TestChecker_MalformedArgsAreFalse(t *testing.T) {
	c := shapecheck.Wrap(map[string]any{"a": "x"})
	cases := []struct {
		method string
		args   []any
	}{
		{shapecheck.MethodContainsKeys, []any{"a"}},
		{shapecheck.MethodContainsKeys, []any{[]any{"a", 1}}},
		{shapecheck.MethodHasValues, nil},
		{shapecheck.MethodHasValueType, []any{1, predicate.KindString}},
		{shapecheck.MethodHasLength, []any{math.Inf(1)}},
	}
	for _, tc := range cases {
		if c.Call(tc.method, tc.args...) {
			t.Fatalf("%s%v: expected false", tc.method, tc.args)
		}
		if !c.Not().Call(tc.method, tc.args...) {
			t.Fatalf("not.%s%v: expected true", tc.method, tc.args)
		}
	}
	if !c.Call(shapecheck.MethodHasValueType, "a", "string") {
		t.Fatalf("expected kind name to decode")
	}
}

func ExampleWrap() {
	c := shapecheck.Wrap(map[string]any{"a": 1, "b": 2})
	fmt.Println(c.HasKeys("a", "b"), c.HasKeys("a"), c.Not().HasKeys("a"))
	// Output: true false true
}

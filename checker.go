package shapecheck

import (
	"fmt"
	"sync"

	"github.com/reoring/shapecheck/predicate"
)

// View is a flat set of methods bound to one subject. A Checker exposes its
// positive view directly and its negated view through Not.
type View struct {
	names   []string
	methods map[string]Method
}

// Methods lists the method names in merge order.
func (v *View) Methods() []string { return append([]string(nil), v.names...) }

// Has reports whether the view exposes name.
func (v *View) Has(name string) bool {
	_, ok := v.methods[name]
	return ok
}

// Lookup returns the bound method for name.
func (v *View) Lookup(name string) (Method, bool) {
	m, ok := v.methods[name]
	return m, ok
}

// Call invokes the named method. Calling a method the view does not expose is
// a programming error and panics with an error wrapping ErrUnknownMethod.
func (v *View) Call(name string, args ...any) bool {
	m, ok := v.methods[name]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownMethod, name))
	}
	return m(args...)
}

func (v *View) ContainsKeys(keys ...string) bool { return v.Call(MethodContainsKeys, keys) }

func (v *View) HasKeys(keys ...string) bool { return v.Call(MethodHasKeys, keys) }

func (v *View) ContainsValues(values ...any) bool { return v.Call(MethodContainsValues, values) }

func (v *View) HasValues(values ...any) bool { return v.Call(MethodHasValues, values) }

func (v *View) HasValueType(key string, kind predicate.Kind) bool {
	return v.Call(MethodHasValueType, key, kind)
}

func (v *View) HasLength(n int) bool { return v.Call(MethodHasLength, n) }

func (v *View) HasWordsCount(n int) bool { return v.Call(MethodHasWordsCount, n) }

func (v *View) HasParamsCount(n int) bool { return v.Call(MethodHasParamsCount, n) }

func (v *View) IsNull() bool { return v.Call(MethodIsNull) }

// Checker binds a merged set of predicate groups to one subject. The subject
// is held by reference; the set of methods is fixed at construction.
type Checker struct {
	*View

	subject  any
	negative []Group

	notOnce sync.Once
	not     *View
}

func newChecker(subject any, positive, negative []Group) *Checker {
	return &Checker{
		View:     merge(subject, positive),
		subject:  subject,
		negative: negative,
	}
}

// Subject returns the value the checker is bound to.
func (c *Checker) Subject() any { return c.subject }

// Not returns the negated view: the merge of the checker's negative groups,
// each negated and bound to the same subject. It is built on first use.
func (c *Checker) Not() *View {
	c.notOnce.Do(func() {
		groups := make([]Group, len(c.negative))
		for i, g := range c.negative {
			groups[i] = Negate(g)
		}
		c.not = merge(c.subject, groups)
	})
	return c.not
}

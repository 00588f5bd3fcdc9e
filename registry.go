package shapecheck

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps group identifiers to groups and assembles checkers from them.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	groups map[string]Group
}

// NewRegistry returns a registry holding groups. A repeated group name fails
// with ErrGroupExists.
func NewRegistry(groups ...Group) (*Registry, error) {
	r := &Registry{groups: make(map[string]Group, len(groups))}
	for _, g := range groups {
		if err := r.Register(g); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds g. Groups cannot be replaced once registered.
func (r *Registry) Register(g Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[g.name]; ok {
		return fmt.Errorf("%w: %q", ErrGroupExists, g.name)
	}
	r.groups[g.name] = g
	return nil
}

// Lookup returns the group registered under name.
func (r *Registry) Lookup(name string) (Group, bool) {
	r.mu.RLock()
	g, ok := r.groups[name]
	r.mu.RUnlock()
	return g, ok
}

// Names lists the registered group identifiers in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.groups))
	for name := range r.groups {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Build binds the positive groups to subject and returns the checker. The
// negative groups back Checker.Not. Both lists merge in order, later groups
// winning on method-name clashes. All names are resolved here, so an unknown
// name fails construction with ErrUnknownGroup.
func (r *Registry) Build(subject any, positive, negative []string) (*Checker, error) {
	pos, err := r.resolve(positive)
	if err != nil {
		return nil, err
	}
	neg, err := r.resolve(negative)
	if err != nil {
		return nil, err
	}
	return newChecker(subject, pos, neg), nil
}

// MustBuild is Build for fixed group lists; it panics on unknown names.
func (r *Registry) MustBuild(subject any, positive, negative []string) *Checker {
	c, err := r.Build(subject, positive, negative)
	if err != nil {
		panic(err)
	}
	return c
}

func (r *Registry) resolve(names []string) ([]Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Group, 0, len(names))
	for _, name := range names {
		g, ok := r.groups[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
		}
		out = append(out, g)
	}
	return out, nil
}

var defaultRegistry = mustRegistry(BuiltinGroups()...)

func mustRegistry(groups ...Group) *Registry {
	r, err := NewRegistry(groups...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns the process-wide registry holding the built-in
// groups. Groups registered here become available to every caller of Build.
func DefaultRegistry() *Registry { return defaultRegistry }

package shapecheck

// Predicate is a named boolean test of a subject. Implementations return
// false when the subject or the arguments do not fit and never panic.
type Predicate func(subject any, args ...any) bool

// Method is a Predicate with its subject already bound.
type Method func(args ...any) bool

// Entry names one predicate inside a Group.
type Entry struct {
	Name string
	Pred Predicate
}

// Group is a named, ordered bundle of predicates scoped to a subject category.
// Groups are values; they carry no state beyond their entries.
type Group struct {
	name    string
	entries []Entry
}

// NewGroup builds a group. Entries keep their order; a repeated name replaces
// the earlier predicate in place.
func NewGroup(name string, entries ...Entry) Group {
	g := Group{name: name}
	pos := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.Name == "" || e.Pred == nil {
			continue
		}
		if i, ok := pos[e.Name]; ok {
			g.entries[i] = e
			continue
		}
		pos[e.Name] = len(g.entries)
		g.entries = append(g.entries, e)
	}
	return g
}

// Name returns the group identifier.
func (g Group) Name() string { return g.name }

// Methods lists the method names in declaration order.
func (g Group) Methods() []string {
	out := make([]string, len(g.entries))
	for i, e := range g.entries {
		out[i] = e.Name
	}
	return out
}

// Entries returns a copy of the group's entries.
func (g Group) Entries() []Entry {
	return append([]Entry(nil), g.entries...)
}

// Bind instantiates the group against subject.
func (g Group) Bind(subject any) *View {
	return merge(subject, []Group{g})
}

// Negate returns the same-named group whose predicates are the logical
// complement of g's. Every entry is inverted, including the branches that
// return false for a mismatched subject.
func Negate(g Group) Group {
	out := Group{name: g.name, entries: make([]Entry, len(g.entries))}
	for i, e := range g.entries {
		out.entries[i] = Entry{Name: e.Name, Pred: invert(e.Pred)}
	}
	return out
}

func invert(p Predicate) Predicate {
	return func(subject any, args ...any) bool { return !p(subject, args...) }
}

func bind(p Predicate, subject any) Method {
	return func(args ...any) bool { return p(subject, args...) }
}

// merge binds groups to subject and flattens them in order. On a name clash
// the later group's predicate wins and the method keeps its first position.
func merge(subject any, groups []Group) *View {
	v := &View{methods: make(map[string]Method)}
	for _, g := range groups {
		for _, e := range g.entries {
			if _, seen := v.methods[e.Name]; !seen {
				v.names = append(v.names, e.Name)
			}
			v.methods[e.Name] = bind(e.Pred, subject)
		}
	}
	return v
}

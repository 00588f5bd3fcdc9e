// Package shapecheck asks ad-hoc structural questions about arbitrary Go
// values without declaring a schema:
//
// - Primitive predicates (package predicate) that report false, never panic,
// when the subject is of the wrong category
// - Named predicate groups scoped to a subject category, kept in a Registry
// - Exact negation of any group, derived mechanically (Negate)
// - Checkers that merge groups for one subject and expose the negated merge
// through Not
//
// Design policy:
// - Keep only public APIs in the root package; put reflection helpers under internal/.
// - Place the query front end under query/, decoding under source/, and the CLI under cmd/shapecheck.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	shapecheck.Wrap(map[string]any{"a": 1, "b": 2}).HasKeys("a", "b") // true
//	shapecheck.Wrap("a  b c").HasWordsCount(3)                       // true
//	shapecheck.Wrap(5).Not().HasLength(3)                            // true
//	shapecheck.String("abc").HasLength(3)                            // true
//
// Subjects are held by reference. Wrap a pointer to observe later
// reassignment of the pointed-to value.
package shapecheck

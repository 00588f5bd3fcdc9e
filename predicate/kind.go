package predicate

import "strings"

// Kind names a runtime value type accepted by HasValueType.
type Kind int

const (
	KindInvalid  Kind = iota // Never matches.
	KindString               // Any string kind (json.Number excluded).
	KindNumber               // Integer and float kinds, and json.Number.
	KindFunction             // Non-nil func values.
	KindArray                // Slices and arrays.
)

var kindNames = map[Kind]string{
	KindString:   "String",
	KindNumber:   "Number",
	KindFunction: "Function",
	KindArray:    "Array",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Invalid"
}

// ParseKind resolves a kind name case-insensitively ("string", "Number", ...).
// Unknown names yield KindInvalid and false.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return k, true
		}
	}
	return KindInvalid, false
}

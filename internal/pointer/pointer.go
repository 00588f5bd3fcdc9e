// Package pointer builds and parses JSON Pointers (RFC 6901). As elsewhere in
// this repository, both "" and "/" denote the root.
package pointer

import (
	"errors"
	"strconv"
	"strings"
)

// ErrSyntax reports a malformed pointer.
var ErrSyntax = errors.New("pointer: invalid syntax")

// Path is an unescaped sequence of reference tokens.
type Path []string

// Field appends an object key.
func (p Path) Field(name string) Path {
	return append(append(Path{}, p...), name)
}

// Index appends an array index.
func (p Path) Index(i int) Path {
	return append(append(Path{}, p...), strconv.Itoa(i))
}

// String renders the pointer, escaping '~' -> '~0' and '/' -> '~1'.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, tok := range p {
		b.WriteByte('/')
		b.WriteString(Escape(tok))
	}
	return b.String()
}

// Escape escapes a single reference token.
func Escape(tok string) string {
	return strings.ReplaceAll(strings.ReplaceAll(tok, "~", "~0"), "/", "~1")
}

// Parse splits a pointer into unescaped tokens.
func Parse(s string) (Path, error) {
	if s == "" || s == "/" {
		return nil, nil
	}
	if s[0] != '/' {
		return nil, ErrSyntax
	}
	parts := strings.Split(s[1:], "/")
	out := make(Path, len(parts))
	for i, part := range parts {
		tok, err := unescape(part)
		if err != nil {
			return nil, err
		}
		out[i] = tok
	}
	return out, nil
}

func unescape(tok string) (string, error) {
	if !strings.Contains(tok, "~") {
		return tok, nil
	}
	b := &strings.Builder{}
	for i := 0; i < len(tok); i++ {
		if tok[i] != '~' {
			b.WriteByte(tok[i])
			continue
		}
		if i+1 >= len(tok) {
			return "", ErrSyntax
		}
		switch tok[i+1] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", ErrSyntax
		}
		i++
	}
	return b.String(), nil
}

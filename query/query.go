// Package query evaluates checks described as data against decoded
// documents. A query file lists checks; each names a JSON Pointer into the
// document, a checker method, its arguments, and whether to negate it:
//
//	checks:
//	  - name: has metadata
//	    at: /metadata
//	    method: containsKeys
//	    args: [[name, namespace]]
//	  - at: /spec/containers
//	    method: hasLength
//	    args: [0]
//	    not: true
package query

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	shapecheck "github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/i18n"
	"github.com/reoring/shapecheck/internal/pointer"
)

// Check is one predicate call against the value found at At.
type Check struct {
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	At     string `yaml:"at,omitempty" json:"at,omitempty"`
	Method string `yaml:"method" json:"method"`
	Args   []any  `yaml:"args,omitempty" json:"args,omitempty"`
	Not    bool   `yaml:"not,omitempty" json:"not,omitempty"`
}

// Label names the check for reports: its Name, or the call itself.
func (c Check) Label() string {
	if c.Name != "" {
		return c.Name
	}
	b := &strings.Builder{}
	if c.Not {
		b.WriteString("not.")
	}
	b.WriteString(c.Method)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(b, a)
	}
	b.WriteByte(')')
	return b.String()
}

// File is a list of checks.
type File struct {
	Checks []Check `yaml:"checks" json:"checks"`
}

// Load decodes a YAML (or JSON) query file and validates it. Syntax errors
// and invalid checks are reported as shapecheck.Issues.
func Load(r io.Reader) (File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("query: read: %w", err)
	}
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, shapecheck.Issues{{
			Path:    "/",
			Code:    shapecheck.CodeParseError,
			Message: i18n.T(shapecheck.CodeParseError, nil),
			Cause:   err,
		}}
	}
	if err := Validate(f); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks method names, argument counts and pointers. It returns
// shapecheck.Issues, or nil when every check is usable.
func Validate(f File) error {
	var iss shapecheck.Issues
	root := pointer.Path{"checks"}
	for i, c := range f.Checks {
		at := root.Index(i)
		if _, err := pointer.Parse(c.At); err != nil {
			iss = shapecheck.AppendIssues(iss, shapecheck.Issue{
				Path:    at.Field("at").String(),
				Code:    shapecheck.CodeInvalidPointer,
				Message: i18n.T(shapecheck.CodeInvalidPointer, nil),
				Cause:   err,
				Params:  map[string]any{"at": c.At},
			})
		}
		if c.Method == "" {
			iss = shapecheck.AppendIssues(iss, shapecheck.Issue{
				Path:    at.Field("method").String(),
				Code:    shapecheck.CodeRequired,
				Message: i18n.T(shapecheck.CodeRequired, nil),
			})
			continue
		}
		n, ok := shapecheck.Arity(c.Method)
		if !ok {
			iss = shapecheck.AppendIssues(iss, shapecheck.Issue{
				Path:    at.Field("method").String(),
				Code:    shapecheck.CodeUnknownMethod,
				Message: i18n.T(shapecheck.CodeUnknownMethod, map[string]string{"method": c.Method}),
				Hint:    "one of: " + strings.Join(shapecheck.Wrap(nil).Methods(), ", "),
				Params:  map[string]any{"method": c.Method},
			})
			continue
		}
		if len(c.Args) < n {
			iss = shapecheck.AppendIssues(iss, shapecheck.Issue{
				Path:    at.Field("args").String(),
				Code:    shapecheck.CodeInvalidArgs,
				Message: i18n.T(shapecheck.CodeInvalidArgs, map[string]string{"method": c.Method}),
				Params:  map[string]any{"want": n, "got": len(c.Args)},
			})
		}
	}
	if len(iss) == 0 {
		return nil
	}
	return iss
}

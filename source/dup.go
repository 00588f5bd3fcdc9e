package source

import (
	"bytes"
	"errors"
	"io"

	j "github.com/goccy/go-json"

	shapecheck "github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/i18n"
	"github.com/reoring/shapecheck/internal/pointer"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	path         pointer.Path
	keys         map[string]struct{}
	expectingKey bool
	next         int // next array index
}

// DetectDuplicateKeys scans a JSON document and reports every key repeated
// within the same object. Syntax errors are reported as a parse_error issue.
func DetectDuplicateKeys(b []byte) (shapecheck.Issues, error) {
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var (
		issues shapecheck.Issues
		stack  []dupFrame
		key    string
	)

	// childPath returns the path of the value about to be read.
	childPath := func() pointer.Path {
		if len(stack) == 0 {
			return nil
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArray {
			p := top.path.Index(top.next)
			top.next++
			return p
		}
		return top.path.Field(key)
	}
	// valueDone marks the end of a member value.
	valueDone := func() {
		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.kind == kindObject {
				top.expectingKey = true
			}
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			issues = shapecheck.AppendIssues(issues, shapecheck.Issue{
				Path:    "/",
				Code:    shapecheck.CodeParseError,
				Message: i18n.T(shapecheck.CodeParseError, nil),
				Cause:   err,
			})
			break
		}

		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{kind: kindObject, path: childPath(), keys: map[string]struct{}{}, expectingKey: true})
			case '[':
				stack = append(stack, dupFrame{kind: kindArray, path: childPath()})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObject && top.expectingKey {
					if _, dup := top.keys[v]; dup {
						issues = shapecheck.AppendIssues(issues, shapecheck.Issue{
							Path:    top.path.Field(v).String(),
							Code:    shapecheck.CodeDuplicateKey,
							Message: i18n.T(shapecheck.CodeDuplicateKey, map[string]string{"key": v}),
							Params:  map[string]any{"key": v},
						})
					}
					top.keys[v] = struct{}{}
					top.expectingKey = false
					key = v
					continue
				}
			}
			childPath()
			valueDone()
		default:
			childPath()
			valueDone()
		}
	}
	if len(issues) == 0 {
		return nil, nil
	}
	return issues, nil
}

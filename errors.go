package shapecheck

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration errors. Predicates never return errors; these only surface
// from registry and checker misuse.
var (
	// ErrUnknownGroup is returned when a group name is not registered.
	ErrUnknownGroup = errors.New("shapecheck: unknown group")
	// ErrGroupExists is returned when a group name is registered twice.
	ErrGroupExists = errors.New("shapecheck: group already registered")
	// ErrUnknownMethod is the panic value (wrapped) of Call for a method the
	// checker does not expose.
	ErrUnknownMethod = errors.New("shapecheck: unknown method")
)

// Issue codes used by the query and source layers.
const (
	CodeRequired       = "required"
	CodeUnknownMethod  = "unknown_method"
	CodeInvalidArgs    = "invalid_args"
	CodeInvalidPointer = "invalid_pointer"
	CodeParseError     = "parse_error"
	CodeDuplicateKey   = "duplicate_key"
)

// Issue describes a single problem found in a query definition or a
// decoded document.
type Issue struct {
	Path    string // JSON Pointer (for example: /checks/2/method).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"method":"hasKeyz"}).
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_method at /checks/0/method
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

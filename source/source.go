// Package source decodes JSON and YAML documents into plain Go values
// (map[string]any, []any, string, numbers, bool, nil) suitable as checker
// subjects.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmpty is returned for input without a document.
	ErrEmpty = errors.New("source: empty input")
	// ErrTooLarge is returned when the input exceeds Options.MaxBytes.
	ErrTooLarge = errors.New("source: input too large")
	// ErrTrailingData is returned when a JSON document is followed by more data.
	ErrTrailingData = errors.New("source: trailing data after document")
)

// NumberMode dictates how JSON numbers are represented.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default).
	NumberFloat64                      // Decode as float64 (with potential precision loss).
)

// Format selects the document syntax.
type Format int

const (
	FormatAuto Format = iota // JSON when the document starts with '{' or '[', YAML otherwise.
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormat resolves "auto", "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("source: unknown format %q", s)
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Options bundles decoding options.
type Options struct {
	NumberMode NumberMode
	// MaxBytes caps the input size; zero means unlimited.
	MaxBytes int64
	// RejectDuplicateKeys fails JSON input that repeats a key within one
	// object. Decoding otherwise keeps the last value.
	RejectDuplicateKeys bool
}

// Decode decodes b in the given format.
func Decode(b []byte, format Format, opt Options) (any, error) {
	if format == FormatAuto {
		format = detect(b)
	}
	if format == FormatJSON {
		return DecodeJSON(b, opt)
	}
	return DecodeYAML(b, opt)
}

// ReadAll reads r and decodes it. MaxBytes is enforced while reading.
func ReadAll(r io.Reader, format Format, opt Options) (any, error) {
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: read: %w", err)
	}
	return Decode(b, format, opt)
}

func detect(b []byte) Format {
	t := bytes.TrimLeft(b, " \t\r\n")
	if len(t) > 0 && (t[0] == '{' || t[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

func checkSize(b []byte, opt Options) error {
	if opt.MaxBytes > 0 && int64(len(b)) > opt.MaxBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(b), opt.MaxBytes)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return ErrEmpty
	}
	return nil
}

// DecodeJSON decodes a single JSON document with goccy/go-json.
func DecodeJSON(b []byte, opt Options) (any, error) {
	if err := checkSize(b, opt); err != nil {
		return nil, err
	}
	if opt.RejectDuplicateKeys {
		if iss, err := DetectDuplicateKeys(b); err != nil {
			return nil, err
		} else if len(iss) > 0 {
			return nil, iss
		}
	}
	dec := j.NewDecoder(bytes.NewReader(b))
	if opt.NumberMode == NumberJSONNumber {
		dec.UseNumber()
	}
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return normalizeJSON(v), nil
}

// normalizeJSON rewrites go-json numbers as encoding/json numbers so callers
// only deal with json.Number.
func normalizeJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			t[k] = normalizeJSON(vv)
		}
		return t
	case []any:
		for i := range t {
			t[i] = normalizeJSON(t[i])
		}
		return t
	case j.Number:
		return json.Number(string(t))
	default:
		return v
	}
}

// DecodeYAML decodes the first YAML document with gopkg.in/yaml.v3. Mappings
// become map[string]any; non-string keys are rendered with fmt.
func DecodeYAML(b []byte, opt Options) (any, error) {
	if err := checkSize(b, opt); err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("source: decode yaml: %w", err)
	}
	return yamlNormalizeValue(v), nil
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}

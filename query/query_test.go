package query_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	shapecheck "github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/query"
	"github.com/reoring/shapecheck/source"
)

const deployment = `{
  "kind": "Deployment",
  "metadata": {"name": "web", "namespace": "prod", "a/b": "slash"},
  "spec": {
    "replicas": 3,
    "containers": [
      {"name": "app", "image": "web:1.2", "args": ["--port", "80"]}
    ],
    "note": "rolling update  enabled"
  },
  "status": null
}`

const checks = `
checks:
  - name: metadata keys
    at: /metadata
    method: hasKeys
    args: [[name, namespace, a/b]]
  - at: /spec/containers
    method: hasLength
    args: [1]
  - at: /spec/containers/0/args
    method: containsValues
    args: [["80"]]
  - at: /spec/replicas
    method: hasLength
    args: [3]
    not: true
  - at: /spec
    method: hasValueType
    args: [replicas, number]
  - at: /spec/note
    method: hasWordsCount
    args: [3]
  - at: /status
    method: isNull
  - at: /metadata/a~1b
    method: hasLength
    args: [5]
  - name: missing path
    at: /spec/volumes
    method: containsKeys
    args: [[]]
`

func loadDoc(t *testing.T) any {
	t.Helper()
	doc, err := source.DecodeJSON([]byte(deployment), source.Options{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return doc
}

func TestRun(t *testing.T) {
	f, err := query.Load(strings.NewReader(checks))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rep, err := query.Run(loadDoc(t), f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var failed []string
	for _, r := range rep.Failed() {
		failed = append(failed, r.Check.Label())
	}
	if diff := cmp.Diff([]string{"missing path"}, failed); diff != "" {
		t.Fatalf("failed checks (-want +got):\n%s", diff)
	}
	if rep.OK() {
		t.Fatalf("expected report to fail")
	}
	last := rep.Results[len(rep.Results)-1]
	if last.Found || last.Category != shapecheck.CategoryOther {
		t.Fatalf("expected unresolved pointer to evaluate against an absent value, got %+v", last)
	}
	if rep.Results[0].Category != shapecheck.CategoryObject {
		t.Fatalf("expected metadata to be an object, got %v", rep.Results[0].Category)
	}
}

func TestRun_NegatedMissingPathPasses(t *testing.T) {
	f := query.File{Checks: []query.Check{{At: "/nope", Method: shapecheck.MethodContainsKeys, Args: []any{[]any{}}, Not: true}}}
	rep, err := query.Run(loadDoc(t), f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !rep.OK() {
		t.Fatalf("expected negated check on a missing path to pass")
	}
}

func TestLoad_Invalid(t *testing.T) {
	bad := `
checks:
  - method: hasKeyz
    args: [[a]]
  - at: nope
    method: hasLength
  - args: [1]
`
	_, err := query.Load(strings.NewReader(bad))
	iss, ok := shapecheck.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	var got []string
	for _, it := range iss {
		got = append(got, it.Code+" "+it.Path)
	}
	want := []string{
		"unknown_method /checks/0/method",
		"invalid_pointer /checks/1/at",
		"invalid_args /checks/1/args",
		"required /checks/2/method",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
	if iss[0].Hint == "" {
		t.Fatalf("expected a hint listing known methods")
	}
}

func TestLoad_SyntaxAndUnknownFields(t *testing.T) {
	for _, in := range []string{"checks: [", "checks:\n  - method: isNull\n    typo: 1\n"} {
		_, err := query.Load(strings.NewReader(in))
		iss, ok := shapecheck.AsIssues(err)
		if !ok || iss[0].Code != shapecheck.CodeParseError {
			t.Fatalf("expected parse_error for %q, got %v", in, err)
		}
	}
	f, err := query.Load(strings.NewReader(""))
	if err != nil || len(f.Checks) != 0 {
		t.Fatalf("expected empty file to load, got %v %v", f, err)
	}
}

func TestResolve(t *testing.T) {
	type container struct {
		Name  string `json:"name"`
		Ports []int  `json:"ports"`
		Env   *[]string
	}
	env := []string{"A=1"}
	doc := map[string]any{
		"containers": []container{{Name: "app", Ports: []int{80}, Env: &env}},
		"nil":        nil,
	}
	cases := []struct {
		ptr   string
		want  any
		found bool
	}{
		{"/containers/0/name", "app", true},
		{"/containers/0/ports/0", 80, true},
		{"/containers/0/Env/0", "A=1", true},
		{"/containers/1", nil, false},
		{"/containers/-1", nil, false},
		{"/nil", nil, true},
		{"/nil/x", nil, false},
		{"/missing", nil, false},
		{"bad", nil, false},
	}
	for _, tc := range cases {
		got, found := query.Resolve(doc, tc.ptr)
		if found != tc.found || (found && got != tc.want) {
			t.Fatalf("Resolve(%q)=%#v,%v want %#v,%v", tc.ptr, got, found, tc.want, tc.found)
		}
	}
	if root, ok := query.Resolve(doc, ""); !ok || root == nil {
		t.Fatalf("expected root to resolve")
	}
}

func TestCheckLabel(t *testing.T) {
	c := query.Check{Method: "hasLength", Args: []any{3}, Not: true}
	if got := c.Label(); got != "not.hasLength(3)" {
		t.Fatalf("unexpected label %q", got)
	}
	c.Name = "named"
	if c.Label() != "named" {
		t.Fatalf("expected name to win")
	}
}

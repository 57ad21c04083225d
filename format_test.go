package keypath

import (
	"encoding/json"
	"fmt"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/theory/jsonpath"
)

type formatTest struct {
	in       any
	mixed    string
	dot      string
	bracket  string
	jsonPath string
	pointer  string
}

var formatTests = []formatTest{
	{
		in:       "",
		jsonPath: "$",
	},
	{
		in:       "a.b.c",
		mixed:    "a.b.c",
		dot:      "a.b.c",
		bracket:  `["a"]["b"]["c"]`,
		jsonPath: "$.a.b.c",
		pointer:  "/a/b/c",
	},
	{
		in:       []any{"users", 0, "name"},
		mixed:    "users[0].name",
		dot:      "users.0.name",
		bracket:  `["users"][0]["name"]`,
		jsonPath: "$.users[0].name",
		pointer:  "/users/0/name",
	},
	{
		// wildcard values render unquoted in bracket form and as [*]
		// in JSONPath
		in:       []any{"foo", -1, "bar"},
		mixed:    "foo[-1].bar",
		dot:      "foo.-1.bar",
		bracket:  `["foo"][-1]["bar"]`,
		jsonPath: "$.foo[*].bar",
		pointer:  "/foo/-1/bar",
	},
	{
		in:       []any{"foo", "*", "bar"},
		mixed:    "foo[*].bar",
		dot:      "foo.*.bar",
		bracket:  `["foo"][*]["bar"]`,
		jsonPath: "$.foo[*].bar",
		pointer:  "/foo/*/bar",
	},
	{
		in:       []any{"a.b"},
		mixed:    `a\.b`,
		dot:      "a.b",
		bracket:  `["a.b"]`,
		jsonPath: "$['a.b']",
		pointer:  "/a.b",
	},
	{
		in:       []any{""},
		mixed:    `[""]`,
		dot:      "",
		bracket:  `[""]`,
		jsonPath: "$['']",
		pointer:  "/",
	},
	{
		in:       []any{"5"},
		mixed:    "5",
		dot:      "5",
		bracket:  `["5"]`,
		jsonPath: "$['5']",
		pointer:  "/5",
	},
	{
		in:       []any{"a/b", "c~d"},
		mixed:    "a/b.c~d",
		dot:      "a/b.c~d",
		bracket:  `["a/b"]["c~d"]`,
		jsonPath: "$['a/b']['c~d']",
		pointer:  "/a~1b/c~0d",
	},
	{
		in:       []any{"it's"},
		mixed:    "it's",
		dot:      "it's",
		bracket:  `["it's"]`,
		jsonPath: `$['it\'s']`,
		pointer:  "/it's",
	},
}

func TestFormats(t *testing.T) {
	for i := range formatTests {
		ft := &formatTests[i]
		p := MustNew(ft.in)
		if got := p.Format(Mixed); got != ft.mixed {
			t.Errorf("%v mixed: got %q want %q", ft.in, got, ft.mixed)
		}
		if got := p.Format(Dot); got != ft.dot {
			t.Errorf("%v dot: got %q want %q", ft.in, got, ft.dot)
		}
		if got := p.Format(Bracket); got != ft.bracket {
			t.Errorf("%v bracket: got %q want %q", ft.in, got, ft.bracket)
		}
		if got := p.JSONPath(); got != ft.jsonPath {
			t.Errorf("%v jsonpath: got %q want %q", ft.in, got, ft.jsonPath)
		}
		if got := p.JSONPointer(); got != ft.pointer {
			t.Errorf("%v pointer: got %q want %q", ft.in, got, ft.pointer)
		}
	}
}

func TestNotationConfig(t *testing.T) {
	p := MustNew("a[0].b", WithNotation(Bracket))
	if p.String() != `["a"][0]["b"]` {
		t.Errorf("got %q", p.String())
	}
	// Format results are stable across repeated calls
	if p.Format(Mixed) != p.Format(Mixed) {
		t.Error("cached render differs")
	}
}

func TestRoundTrip(t *testing.T) {
	// parse(serialize(S)) == S for Mixed and Bracket; Dot is lossy and
	// exempt
	seqs := [][]any{
		{},
		{"a", "b", "c"},
		{"users", 0, "name"},
		{"foo", -1, "bar"},
		{"*"},
		{""},
		{"5"},
		{"a.b", 7},
		{"x y", "-1"},
		{"a[0"},
	}
	for _, in := range seqs {
		p := MustNew(in)
		for _, n := range []Notation{Mixed, Bracket} {
			back, err := New(p.Format(n))
			if err != nil {
				t.Errorf("%v via %s: %v", in, n, err)
				continue
			}
			if !segsEq(p.Segments(), back.Segments()) {
				t.Errorf("%v via %s: got %v from %q", in, n, back.Segments(), p.Format(n))
			}
		}
	}
}

func TestRoundTripPointer(t *testing.T) {
	for _, in := range [][]any{{}, {"a", "b"}, {"a/b", "c~d"}, {"users", 3, "name"}} {
		p := MustNew(in)
		back, err := FromJSONPointer(p.JSONPointer())
		if err != nil {
			t.Errorf("%v: %v", in, err)
			continue
		}
		if !segsEq(p.Segments(), back.Segments()) {
			t.Errorf("%v: got %v from %q", in, back.Segments(), p.JSONPointer())
		}
	}
}

func TestJSONPathSelects(t *testing.T) {
	// the JSONPath output is accepted by an RFC 9535 implementation
	// and addresses the value the path describes
	doc := []byte(`{"users": [{"name": "ann"}, {"name": "bob"}], "a b": 1}`)
	var data any
	if err := json.Unmarshal(doc, &data); err != nil {
		t.Fatal(err)
	}

	p := MustNew("users[1].name")
	jp, err := jsonpath.Parse(p.JSONPath())
	if err != nil {
		t.Fatalf("%q: %v", p.JSONPath(), err)
	}
	res := jp.Select(data)
	if len(res) != 1 || res[0] != "bob" {
		t.Errorf("%q selected %v", p.JSONPath(), res)
	}

	// wildcard index becomes [*] and selects every element
	p = MustNew("users[-1].name")
	jp, err = jsonpath.Parse(p.JSONPath())
	if err != nil {
		t.Fatalf("%q: %v", p.JSONPath(), err)
	}
	if res := jp.Select(data); len(res) != 2 {
		t.Errorf("%q selected %v", p.JSONPath(), res)
	}

	// non-identifier properties render as quoted bracket literals
	p = MustNew([]any{"a b"})
	jp, err = jsonpath.Parse(p.JSONPath())
	if err != nil {
		t.Fatalf("%q: %v", p.JSONPath(), err)
	}
	if res := jp.Select(data); len(res) != 1 || res[0] != float64(1) {
		t.Errorf("%q selected %v", p.JSONPath(), res)
	}
}

func TestJSONPointerPatches(t *testing.T) {
	// the pointer output addresses the right spot in an RFC 6902 patch
	doc := []byte(`{"users": [{"name": "ann"}, {"name": "bob"}]}`)
	p := MustNew("users[1].name")

	op, err := json.Marshal(p.JSONPointer())
	if err != nil {
		t.Fatal(err)
	}
	patch, err := jsonpatch.DecodePatch([]byte(
		fmt.Sprintf(`[{"op": "replace", "path": %s, "value": "carol"}]`, op)))
	if err != nil {
		t.Fatal(err)
	}
	out, err := patch.Apply(doc)
	if err != nil {
		t.Fatalf("apply at %q: %v", p.JSONPointer(), err)
	}
	var res struct {
		Users []struct {
			Name string `json:"name"`
		} `json:"users"`
	}
	if err := json.Unmarshal(out, &res); err != nil {
		t.Fatal(err)
	}
	if res.Users[1].Name != "carol" {
		t.Errorf("patched doc: %s", out)
	}
}

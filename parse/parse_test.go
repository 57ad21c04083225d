package parse

import (
	"errors"
	"testing"

	"github.com/keypath-format/keypath/segment"
)

type pathTest struct {
	in   string
	segs []segment.Segment
	err  error
}

var pathTests = []pathTest{
	{
		in: "",
	},
	{
		in:   "a",
		segs: []segment.Segment{segment.Property("a")},
	},
	{
		in: "a.b.c",
		segs: []segment.Segment{
			segment.Property("a"), segment.Property("b"), segment.Property("c"),
		},
	},
	{
		in: "users[0].profile.name",
		segs: []segment.Segment{
			segment.Property("users"), segment.Index(0),
			segment.Property("profile"), segment.Property("name"),
		},
	},
	{
		in:   "[0]",
		segs: []segment.Segment{segment.Index(0)},
	},
	{
		in:   "[-1]",
		segs: []segment.Segment{segment.Index(-1)},
	},
	{
		// no quotes: still a property when not a canonical integer
		in:   "foo[bar]",
		segs: []segment.Segment{segment.Property("foo"), segment.Property("bar")},
	},
	{
		in:   `foo["bar"]`,
		segs: []segment.Segment{segment.Property("foo"), segment.Property("bar")},
	},
	{
		in:   "foo['bar']",
		segs: []segment.Segment{segment.Property("foo"), segment.Property("bar")},
	},
	{
		// quoting forces a property even for numeric text
		in:   `["5"]`,
		segs: []segment.Segment{segment.Property("5")},
	},
	{
		in:   "[05]",
		segs: []segment.Segment{segment.Property("05")},
	},
	{
		in:   "[5.0]",
		segs: []segment.Segment{segment.Property("5.0")},
	},
	{
		in:   "[-0]",
		segs: []segment.Segment{segment.Property("-0")},
	},
	{
		// empty dot runs are dropped
		in:   "a..b",
		segs: []segment.Segment{segment.Property("a"), segment.Property("b")},
	},
	{
		in:   ".a.",
		segs: []segment.Segment{segment.Property("a")},
	},
	{
		in:   `a\.b`,
		segs: []segment.Segment{segment.Property("a.b")},
	},
	{
		in:   `a\[0\]`,
		segs: []segment.Segment{segment.Property("a[0]")},
	},
	{
		in:   `foo[""]`,
		segs: []segment.Segment{segment.Property("foo"), segment.Property("")},
	},
	{
		// bracket position wildcards are always legal
		in:   "items[*].name",
		segs: []segment.Segment{segment.Property("items"), segment.Property("*"), segment.Property("name")},
	},
	{
		// dot notation never numerically types a segment
		in:   "-1.a",
		segs: []segment.Segment{segment.Property("-1"), segment.Property("a")},
	},
	{
		in:   `a['b\'c']`,
		segs: []segment.Segment{segment.Property("a"), segment.Property("b'c")},
	},
	{
		in:  "foo.*.bar",
		err: ErrWildcardInProp,
	},
	{
		in:  `foo["bar')`,
		err: ErrQuote,
	},
	{
		in:  `foo["bar']`,
		err: ErrQuote,
	},
	{
		in:  "foo['bar]",
		err: ErrQuote,
	},
	{
		in:  "foo[bar",
		err: ErrUnclosedBracket,
	},
}

func TestPath(t *testing.T) {
	wild := segment.DefaultWildcards()
	for i := range pathTests {
		pt := &pathTests[i]
		segs, err := Path(pt.in, wild)
		if pt.err != nil {
			if err == nil {
				t.Errorf("%q: got %v, want error %v", pt.in, segs, pt.err)
				continue
			}
			if !errors.Is(err, pt.err) {
				t.Errorf("%q: got error %v, want %v", pt.in, err, pt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if !segsEqual(segs, pt.segs) {
			t.Errorf("%q: got %v want %v", pt.in, segs, pt.segs)
		}
	}
}

func TestPathNoWildcards(t *testing.T) {
	// foo.*.bar is only an error when "*" is configured as a wildcard
	segs, err := Path("foo.*.bar", segment.NoWildcards())
	if err != nil {
		t.Fatal(err)
	}
	want := []segment.Segment{
		segment.Property("foo"), segment.Property("*"), segment.Property("bar"),
	}
	if !segsEqual(segs, want) {
		t.Errorf("got %v want %v", segs, want)
	}
}

type pointerTest struct {
	in   string
	segs []segment.Segment
	err  error
}

var pointerTests = []pointerTest{
	{
		in: "",
	},
	{
		in:   "/",
		segs: []segment.Segment{segment.Property("")},
	},
	{
		in:   "/a/b",
		segs: []segment.Segment{segment.Property("a"), segment.Property("b")},
	},
	{
		in:   "/a/0/b",
		segs: []segment.Segment{segment.Property("a"), segment.Index(0), segment.Property("b")},
	},
	{
		in:   "/a~1b/c~0d",
		segs: []segment.Segment{segment.Property("a/b"), segment.Property("c~d")},
	},
	{
		in:   "/05",
		segs: []segment.Segment{segment.Property("05")},
	},
	{
		in:  "a/b",
		err: ErrPointer,
	},
}

func TestPointer(t *testing.T) {
	for i := range pointerTests {
		pt := &pointerTests[i]
		segs, err := Pointer(pt.in)
		if pt.err != nil {
			if !errors.Is(err, pt.err) {
				t.Errorf("%q: got error %v, want %v", pt.in, err, pt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if !segsEqual(segs, pt.segs) {
			t.Errorf("%q: got %v want %v", pt.in, segs, pt.segs)
		}
	}
}

func segsEqual(a, b []segment.Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

package encode

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sebdah/goldie/v2"
	"github.com/signadot/yamprint/gomap"
	"github.com/signadot/yamprint/ir"
)

func buildNode(t *testing.T, rules gomap.Rules, v any) *ir.Node {
	t.Helper()
	node, err := gomap.NewBuilder(rules).Build(v)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return node
}

func encodeString(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := Encode(node, buf, opts...); err != nil {
		t.Fatalf("encode: %v\n%s", err, spew.Sdump(node))
	}
	return buf.String()
}

func TestEncodeInline(t *testing.T) {
	type empty struct{}
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"flat map", map[string]int{"a": 1, "b": 2}, "a = 1\nb = 2"},
		{"string", "hi", "'hi'"},
		{"null", (*int)(nil), "null"},
		{"undefined", nil, "undefined"},
		{"text block", "x\ny", "| x\n| y"},
		{"empty named", empty{}, "|encode.empty| {}"},
		{"empty map", map[string]int{}, "{}"},
		{"empty slice", []string{}, "[]"},
		{"anonymous", struct{ A int }{1}, "|~anonymous~|\nA = 1"},
		{"quoted key", map[string]bool{"a b": true}, "'a b' = true"},
		{"array of arrays", [][]int{{1, 2}, {3}}, "► ► 1\n  ► 2\n► ► 3"},
		{"bytes", map[string][]byte{"raw": []byte("abc")}, "raw = |Bytes byte[3]|"},
		{"error", errors.New("broken"), `|errors.errorString("broken")| {}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeString(t, buildNode(t, gomap.DefaultRules(), tt.in))
			if got != tt.want {
				t.Errorf("expected\n%s\ngot\n%s", tt.want, got)
			}
		})
	}
}

type address struct {
	Street string
	Zip    int
}

type user struct {
	Name  string
	Tags  []string
	Home  *address
	Notes string
	Meta  map[string]any
	Empty []int
	None  *address
}

func TestEncodeNested(t *testing.T) {
	in := user{
		Name:  "ann",
		Tags:  []string{"x", "y"},
		Home:  &address{Street: "Main St", Zip: 12345},
		Notes: "line one\nline two",
		Meta: map[string]any{
			"k":      true,
			"nested": []any{map[string]any{"a": 1, "b": 2}, 3},
		},
	}
	got := encodeString(t, buildNode(t, gomap.DefaultRules(), in))
	goldie.New(t).Assert(t, "nested", []byte(got))
}

type link struct {
	Name string
	Next *link
}

func TestEncodeReferences(t *testing.T) {
	a := &link{Name: "a"}
	b := &link{Name: "b", Next: a}
	a.Next = b
	got := encodeString(t, buildNode(t, gomap.DefaultRules(), a))
	goldie.New(t).Assert(t, "circular", []byte(got))

	shared := &address{Street: "Elm", Zip: 1}
	rules := gomap.DefaultRules()
	rules.SkipAdjacent = true
	got = encodeString(t, buildNode(t, rules, []*address{shared, shared}))
	goldie.New(t).Assert(t, "adjacent", []byte(got))
}

func TestEncodeLimits(t *testing.T) {
	in := map[string]any{
		"deep": map[string]any{"x": map[string]any{"y": 1}},
		"list": []int{1, 2, 3, 4},
		"zzz":  1,
	}
	rules := gomap.DefaultRules()
	rules.MaxDepth = 2
	rules.MaxObjectLength = 2
	got := encodeString(t, buildNode(t, rules, in))
	goldie.New(t).Assert(t, "limits", []byte(got))
}

func TestEncodeDepthBound(t *testing.T) {
	in := map[string]any{"a0": map[string]any{"a1": map[string]any{"a2": map[string]any{"a3": "nope"}}}}
	rules := gomap.DefaultRules()
	rules.MaxDepth = 3
	got := encodeString(t, buildNode(t, rules, in))
	if strings.Contains(got, "nope") || !strings.Contains(got, "a2 = {…}") {
		t.Errorf("depth not bounded:\n%s", got)
	}
}

func TestEncodeSparse(t *testing.T) {
	in := map[int]any{2: "two", 10: []string{"a"}, 0: nil}
	got := encodeString(t, buildNode(t, gomap.DefaultRules(), in))
	want := "(0) ► null\n(2) ► 'two'\n(10) ► ► 'a'"
	if got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

type widget struct{ ID int }

func (w widget) Label() string { return fmt.Sprintf("w%d", w.ID) }

func (w widget) Broken() (string, error) { return "", errors.New("no label") }

func TestEncodeAccessors(t *testing.T) {
	rules := gomap.DefaultRules()
	rules.Methods = true
	got := encodeString(t, buildNode(t, rules, widget{ID: 7}))
	goldie.New(t).Assert(t, "accessors", []byte(got))

	rules.SkipGetters = true
	got = encodeString(t, buildNode(t, rules, widget{ID: 7}))
	want := "|encode.widget|\nID = 7\nBroken = ~getter~\nLabel = ~getter~"
	if got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestEncodeTheme(t *testing.T) {
	theme := Theme{
		String:      strings.ToUpper,
		PropertyKey: func(s string) string { return "<" + s + ">" },
	}
	node := buildNode(t, gomap.DefaultRules(), map[string]string{"a": "x"})
	if got := encodeString(t, node, EncodeTheme(theme)); got != "<a = >'X'" {
		t.Errorf("unexpected themed output %q", got)
	}
	if got := encodeString(t, node); got != "a = 'x'" {
		t.Errorf("theme leaked into default output %q", got)
	}
}

func TestEncodeFormatter(t *testing.T) {
	f := DefaultFormatter()
	f.Indent = "    "
	f.ArrayPrefix = "- "
	node := buildNode(t, gomap.DefaultRules(), map[string][]int{"xs": {1, 2}})
	want := "xs =\n    - 1\n    - 2"
	if got := encodeString(t, node, EncodeFormatter(f)); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeWriteError(t *testing.T) {
	err := Encode(ir.FromInt(1), failWriter{})
	if !errors.Is(err, ErrEncoding) || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}

func TestMustString(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()})
	if got := MustString(node); got != "► true\n► null" {
		t.Errorf("unexpected %q", got)
	}
}

package gomap

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yamprint/ir"
)

type person struct {
	Name string
	Boss *person
}

func build(t *testing.T, rules Rules, v any) *ir.Node {
	t.Helper()
	node, err := NewBuilder(rules).Build(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return node
}

func TestBuildStruct(t *testing.T) {
	type point struct {
		X, Y   int
		hidden string
	}
	got := build(t, DefaultRules(), point{X: 1, Y: 2, hidden: "h"})
	want := ir.FromFields(ir.NamedCtor("gomap.point"),
		[]string{"X", "Y"},
		[]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildUnexportedFields(t *testing.T) {
	type secret struct {
		a int
		b []string
	}
	rules := DefaultRules()
	rules.PropertyFilter = func(PropertyInfo) bool { return true }
	got := build(t, rules, &secret{a: 1, b: []string{"x"}})
	want := ir.FromFields(ir.NamedCtor("gomap.secret"),
		[]string{"a", "b"},
		[]*ir.Node{ir.FromInt(1), ir.FromSlice([]*ir.Node{ir.FromString("x")})})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEmpty(t *testing.T) {
	type nothing struct{ hidden int }
	tests := []struct {
		name string
		in   any
		want *ir.Node
	}{
		{"nil slice", []int(nil), ir.EmptyArray()},
		{"empty slice", []int{}, ir.EmptyArray()},
		{"empty map", map[string]int{}, ir.EmptyObject(ir.PlainCtor("map[string]int"))},
		{"empty int map", map[int]string{}, ir.EmptyArray()},
		{"only unexported", nothing{}, ir.EmptyObject(ir.NamedCtor("gomap.nothing"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := build(t, DefaultRules(), tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildMapOrder(t *testing.T) {
	got := build(t, DefaultRules(), map[string]int{"b": 2, "a": 1, "c": 3})
	if diff := cmp.Diff([]string{"a", "b", "c"}, got.Fields); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	got = build(t, DefaultRules(), map[bool]int{true: 1, false: 0})
	if diff := cmp.Diff([]string{"false", "true"}, got.Fields); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSparse(t *testing.T) {
	got := build(t, DefaultRules(), map[uint32]string{5: "five", 1: "one", 3: "three"})
	want := ir.FromIndexes([]int64{1, 3, 5},
		[]*ir.Node{ir.FromString("one"), ir.FromString("three"), ir.FromString("five")})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildContiguousIntKeys(t *testing.T) {
	got := build(t, DefaultRules(), map[int]string{2: "c", 0: "a", 1: "b"})
	want := ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b"), ir.FromString("c")})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	rules := DefaultRules()
	rules.MaxObjectLength = 2
	got = build(t, rules, map[int8]bool{0: true, 1: false, 2: true})
	want = ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.FromBool(false), ir.LengthExceeded(1)})
	want.SizeExceeded = true
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got = build(t, DefaultRules(), map[int]string{1: "b", 2: "c"})
	if got.Type != ir.SparseArrayType {
		t.Errorf("keys not starting at 0 must stay sparse:\n%s", spew.Sdump(got))
	}
}

func TestCircularReference_Pointer(t *testing.T) {
	p := &person{Name: "Alice"}
	p.Boss = p

	node := build(t, DefaultRules(), p)
	if node.Ref != 1 {
		t.Fatalf("expected root ref 1, got %d:\n%s", node.Ref, spew.Sdump(node))
	}
	boss := node.Get("Boss")
	if boss == nil || boss.Type != ir.ReferenceType {
		t.Fatalf("expected reference for Boss, got:\n%s", spew.Sdump(boss))
	}
	if boss.Reason != ir.Circular || boss.Ref != 1 {
		t.Errorf("expected circular #1, got %s #%d", boss.Reason, boss.Ref)
	}
}

type selfPointer *selfPointer

func TestCircularReference_PointerChain(t *testing.T) {
	var x any
	x = &x
	var r selfPointer
	r = &r
	tests := []struct {
		name string
		in   any
	}{
		{"pointer to interface", x},
		{"self pointer type", r},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := build(t, DefaultRules(), tt.in)
			if node.Type != ir.ReferenceType || node.Reason != ir.Circular || node.Ref != 1 {
				t.Fatalf("expected circular #1, got:\n%s", spew.Sdump(node))
			}
		})
	}
}

func TestBoxedScalars(t *testing.T) {
	n := 3
	p := &n
	pp := &p
	var nilp *int
	var boxed any = "s"
	tests := []struct {
		name string
		in   any
		want *ir.Node
	}{
		{"pointer to pointer", &pp, ir.FromInt(3)},
		{"pointer to nil pointer", &nilp, ir.Null()},
		{"pointer to interface", &boxed, ir.FromString("s")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := build(t, DefaultRules(), tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCircularReference_SliceAndMap(t *testing.T) {
	s := []any{nil}
	s[0] = s
	node := build(t, DefaultRules(), s)
	if node.Type != ir.ArrayType || node.Values[0].Type != ir.ReferenceType {
		t.Fatalf("expected self referencing array:\n%s", spew.Sdump(node))
	}

	m := map[string]any{"name": "m"}
	m["self"] = m
	node = build(t, DefaultRules(), m)
	self := node.Get("self")
	if self.Type != ir.ReferenceType || self.Reason != ir.Circular {
		t.Fatalf("expected circular map reference:\n%s", spew.Sdump(node))
	}
	if node.Ref != self.Ref {
		t.Errorf("expected anchor %d to match reference %d", node.Ref, self.Ref)
	}
}

func TestReferenceCodesAreLazy(t *testing.T) {
	a := &person{Name: "a"}
	a.Boss = a
	b := &person{Name: "b"}
	b.Boss = b
	plain := &person{Name: "plain"}
	in := struct{ P, A, B *person }{plain, a, b}

	builder := NewBuilder(DefaultRules())
	for range 2 {
		node, err := builder.Build(in)
		if err != nil {
			t.Fatal(err)
		}
		got := []int{node.Get("P").Ref, node.Get("A").Ref, node.Get("B").Ref}
		if diff := cmp.Diff([]int{0, 1, 2}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestAdjacentReferences(t *testing.T) {
	shared := &person{Name: "shared"}
	in := struct{ A, B *person }{shared, shared}

	node := build(t, DefaultRules(), in)
	for _, f := range []string{"A", "B"} {
		if v := node.Get(f); v.Type != ir.ObjectType || v.Ref != 0 {
			t.Errorf("%s: expected full object without anchor:\n%s", f, spew.Sdump(v))
		}
	}

	rules := DefaultRules()
	rules.SkipAdjacent = true
	node = build(t, rules, in)
	a, b := node.Get("A"), node.Get("B")
	if a.Type != ir.ObjectType || a.Ref != 1 {
		t.Errorf("expected anchored object, got:\n%s", spew.Sdump(a))
	}
	if b.Type != ir.ReferenceType || b.Reason != ir.Adjacent || b.Ref != 1 {
		t.Errorf("expected adjacent #1, got:\n%s", spew.Sdump(b))
	}
}

func TestIdentityNotEquality(t *testing.T) {
	rules := DefaultRules()
	rules.SkipAdjacent = true

	ts := time.Unix(0, 0).UTC()
	backing := []int{1, 2, 3}
	in := struct {
		A, B   *person
		T1, T2 time.Time
		S1, S2 []int
	}{
		A: &person{Name: "x"}, B: &person{Name: "x"},
		T1: ts, T2: ts,
		S1: backing, S2: backing[:2],
	}
	node := build(t, rules, in)
	node.Walk(func(n *ir.Node) bool {
		if n.Type == ir.ReferenceType || n.Ref != 0 {
			t.Errorf("unexpected reference:\n%s", spew.Sdump(node))
			return false
		}
		return true
	})
}

func TestDepthLimit(t *testing.T) {
	in := map[string]any{"a0": map[string]any{"a1": map[string]any{"a2": map[string]any{"a3": "nope"}}}}
	rules := DefaultRules()
	rules.MaxDepth = 3
	node := build(t, rules, in)
	a2 := node.Get("a0").Get("a1").Get("a2")
	if a2 == nil || !a2.DepthExceeded || len(a2.Values) != 0 {
		t.Fatalf("expected depth exceeded at a2:\n%s", spew.Sdump(node))
	}
}

func TestDepthLimitDefault(t *testing.T) {
	p := &person{Name: "0"}
	cur := p
	for i := range 20 {
		cur.Boss = &person{Name: strings.Repeat("x", i)}
		cur = cur.Boss
	}
	node := build(t, Rules{}, p)
	depth := 0
	for n := node; n != nil && n.Type == ir.ObjectType; n = n.Get("Boss") {
		if n.DepthExceeded {
			break
		}
		depth++
	}
	if depth != DefaultMaxDepth {
		t.Errorf("expected %d levels, got %d", DefaultMaxDepth, depth)
	}
}

func TestSizeLimit(t *testing.T) {
	rules := DefaultRules()
	rules.MaxObjectLength = 3

	node := build(t, rules, map[string]int{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5})
	if diff := cmp.Diff([]string{"a", "b", "c", ""}, node.Fields); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !node.SizeExceeded || !node.Truncated() || node.Values[3].Rest != 2 {
		t.Errorf("expected 2 more:\n%s", spew.Sdump(node))
	}

	node = build(t, rules, []int{1, 2, 3, 4, 5})
	if len(node.Values) != 4 || node.Values[3].Rest != 2 {
		t.Errorf("expected 3 values and 2 more:\n%s", spew.Sdump(node))
	}

	type wide struct{ A, B, C, D int }
	node = build(t, rules, wide{})
	if !node.Truncated() || node.Values[3].Rest != -1 {
		t.Errorf("expected uncounted rest:\n%s", spew.Sdump(node))
	}
}

func TestSizeLimitIgnoresExcluded(t *testing.T) {
	rules := DefaultRules()
	rules.MaxObjectLength = 1
	rules.PropertyFilter = func(p PropertyInfo) bool { return !strings.HasPrefix(p.Name, "_") }
	node := build(t, rules, map[string]int{"_a": 1, "_b": 2, "c": 3})
	if node.SizeExceeded {
		t.Errorf("excluded properties counted towards the limit:\n%s", spew.Sdump(node))
	}
	if diff := cmp.Diff([]string{"c"}, node.Fields); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

type base struct {
	ID   int
	Name string
}

type derived struct {
	base
	Name  string
	Extra int
}

func TestEmbeddedLevels(t *testing.T) {
	var levels []int
	rules := DefaultRules()
	rules.PropertyFilter = func(p PropertyInfo) bool {
		if !p.Exported {
			return false
		}
		levels = append(levels, p.Level)
		return true
	}
	node := build(t, rules, derived{base: base{ID: 7, Name: "hidden"}, Name: "own", Extra: 1})
	if diff := cmp.Diff([]string{"Name", "Extra", "ID"}, node.Fields); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 0, 1}, levels); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
	if got := node.Get("Name").String; got != "own" {
		t.Errorf("expected own Name, got %q", got)
	}
}

func TestEmbeddedNotExplorable(t *testing.T) {
	type guarded struct {
		sync.Mutex
		N int
	}
	rules := DefaultRules()
	rules.Methods = true
	node := build(t, rules, &guarded{N: 1})
	if diff := cmp.Diff([]string{"Mutex", "N"}, node.Fields); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if m := node.Get("Mutex"); m.Type != ir.EmptyObjectType || m.Ctor.Name != "sync.Mutex" {
		t.Errorf("expected opaque mutex:\n%s", spew.Sdump(m))
	}
}

type specialError struct{ msg string }

func (e *specialError) Error() string { return e.msg }

type gadget struct {
	N     int
	calls *int
}

func (g gadget) Double() int {
	*g.calls++
	return g.N * 2
}

func (g gadget) Fail() (int, error) {
	*g.calls++
	return 0, &specialError{msg: "nope"}
}

func (g gadget) Boom() string {
	*g.calls++
	panic("kaboom")
}

func (g gadget) Wrap(n int) int { return n }

func TestAccessors(t *testing.T) {
	calls := 0
	rules := DefaultRules()
	rules.Methods = true
	node := build(t, rules, gadget{N: 2, calls: &calls})

	if diff := cmp.Diff([]string{"N", "Boom", "Double", "Fail"}, node.Fields); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if d := node.Get("Double"); d.Type != ir.NumberType || d.Number != int64(4) {
		t.Errorf("unexpected Double:\n%s", spew.Sdump(d))
	}
	fail := node.Get("Fail")
	if fail.Type != ir.ThrewType || fail.Target.Name != "gomap.specialError" || fail.Target.Message != "nope" {
		t.Errorf("unexpected Fail:\n%s", spew.Sdump(fail))
	}
	var se *specialError
	if !errors.As(fail.Err, &se) {
		t.Errorf("expected *specialError, got %T", fail.Err)
	}
	boom := node.Get("Boom")
	if boom.Type != ir.ThrewType || boom.Target.Name != "panic" || boom.Target.Message != "kaboom" {
		t.Errorf("unexpected Boom:\n%s", spew.Sdump(boom))
	}
	var pe *PanicError
	if !errors.As(boom.Err, &pe) || pe.Accessor != "Boom" {
		t.Errorf("expected *PanicError for Boom, got %v", boom.Err)
	}
}

func TestAccessorsUnresolved(t *testing.T) {
	calls := 0
	rules := DefaultRules()
	rules.Methods = true
	rules.SkipGetters = true
	node := build(t, rules, gadget{N: 2, calls: &calls})
	if calls != 0 {
		t.Errorf("accessors were invoked %d times", calls)
	}
	for _, f := range []string{"Boom", "Double", "Fail"} {
		if v := node.Get(f); v.Type != ir.UnresolvedGetterType {
			t.Errorf("%s: expected unresolved getter, got %s", f, v.Type)
		}
	}
}

func TestZeroRulesResolveAccessors(t *testing.T) {
	calls := 0
	node := build(t, Rules{Methods: true}, gadget{N: 3, calls: &calls})
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if d := node.Get("Double"); d.Type != ir.NumberType || d.Number != int64(6) {
		t.Errorf("unexpected Double:\n%s", spew.Sdump(d))
	}
}

func TestErrorValues(t *testing.T) {
	node := build(t, DefaultRules(), errors.New("broken"))
	if node.Type != ir.EmptyObjectType {
		t.Fatalf("expected empty object:\n%s", spew.Sdump(node))
	}
	if node.Ctor.Name != "errors.errorString" || node.Ctor.Message != "broken" || !node.Ctor.IsError() {
		t.Errorf("unexpected ctor: %+v", node.Ctor)
	}
}

type kv struct {
	K string
	V any
}

type kvs []kv

type kvSource struct{}

func (kvSource) Handles(t reflect.Type) bool { return t == reflect.TypeOf(kvs(nil)) }

func (kvSource) Properties(v reflect.Value, yield func(Property) bool) {
	for i := 0; i < v.Len(); i++ {
		e := v.Index(i)
		p := Property{
			Name:     e.Field(0).String(),
			Owner:    v.Type(),
			Type:     e.Field(1).Type(),
			Exported: true,
			Value:    e.Field(1),
		}
		if !yield(p) {
			return
		}
	}
}

func (kvSource) Ctor(reflect.Value) ir.Ctor { return ir.PlainCtor("kvs") }

func TestSource(t *testing.T) {
	rules := DefaultRules()
	rules.Sources = []Source{kvSource{}}
	node := build(t, rules, kvs{{"z", 1}, {"a", kvs{{"inner", true}}}})
	want := ir.FromFields(ir.PlainCtor("kvs"),
		[]string{"z", "a"},
		[]*ir.Node{
			ir.FromInt(1),
			ir.FromFields(ir.PlainCtor("kvs"), []string{"inner"}, []*ir.Node{ir.FromBool(true)}),
		})
	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

type panicSource struct{}

func (panicSource) Handles(t reflect.Type) bool { return t == reflect.TypeOf(kvs(nil)) }

func (panicSource) Properties(reflect.Value, func(Property) bool) { panic("bad source") }

func TestBuildError(t *testing.T) {
	rules := DefaultRules()
	rules.Sources = []Source{panicSource{}}
	b := NewBuilder(rules)
	_, err := b.Build(map[string]any{"list": kvs{{"a", 1}}})
	if !errors.Is(err, ErrBuild) {
		t.Fatalf("expected build error, got %v", err)
	}
	var be *BuildError
	if !errors.As(err, &be) || be.FieldPath != "list" {
		t.Errorf("expected field path list, got %v", err)
	}

	p := &person{Name: "again"}
	p.Boss = p
	node, err := b.Build(p)
	if err != nil {
		t.Fatalf("builder not reusable: %v", err)
	}
	if node.Ref != 1 {
		t.Errorf("expected fresh reference codes, got %d", node.Ref)
	}
}

func TestFieldTags(t *testing.T) {
	type inner struct{ Deep int }
	type tagged struct {
		ID     int    `yamprint:"id,omitempty"`
		Secret string `yamprint:"-"`
		inner  `yamprint:"-"`
		Plain  bool   `yamprint:""`
	}
	got := build(t, DefaultRules(), tagged{ID: 7, Secret: "s", inner: inner{Deep: 1}, Plain: true})
	want := ir.FromFields(ir.NamedCtor("gomap.tagged"),
		[]string{"id", "Plain"},
		[]*ir.Node{ir.FromInt(7), ir.FromBool(true)})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

package gomap

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/yamprint/debug"
	"github.com/signadot/yamprint/ir"
)

// Builder turns Go values into *ir.Node trees. A Builder keeps traversal
// state and must not be used by concurrent calls to Build.
type Builder struct {
	rules   Rules
	structs structSource
	refs    *refs
	path    []string
}

func NewBuilder(rules Rules) *Builder {
	rules = rules.withDefaults()
	return &Builder{
		rules: rules,
		structs: structSource{
			methods:    rules.Methods,
			explorable: rules.IsPrototypeExplorable,
		},
		refs: newRefs(),
	}
}

// Rules returns the rules in effect, defaults applied.
func (b *Builder) Rules() Rules {
	return b.rules
}

// Build returns the tree for v. Failing accessors are recorded in the tree;
// an error is returned only when the builder itself fails.
func (b *Builder) Build(v any) (node *ir.Node, err error) {
	return b.BuildValue(reflect.ValueOf(v))
}

func (b *Builder) BuildValue(v reflect.Value) (node *ir.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			node = nil
			err = &BuildError{FieldPath: b.fieldPath(), Panic: r}
			b.rules.Logger.Debug("build failed", "path", err.(*BuildError).FieldPath, "panic", r)
		}
		b.reset()
	}()
	return b.build(v, 0), nil
}

func (b *Builder) reset() {
	b.refs.reset()
	b.path = b.path[:0]
}

func (b *Builder) push(name string) {
	b.path = append(b.path, name)
}

func (b *Builder) pop() {
	b.path = b.path[:len(b.path)-1]
}

func (b *Builder) fieldPath() string {
	var sb strings.Builder
	for i, p := range b.path {
		if i > 0 && !strings.HasPrefix(p, "[") {
			sb.WriteByte('.')
		}
		sb.WriteString(p)
	}
	return sb.String()
}

func (b *Builder) source(t reflect.Type) Source {
	for _, s := range b.rules.Sources {
		if s.Handles(t) {
			return s
		}
	}
	return nil
}

func (b *Builder) build(v reflect.Value, depth int) *ir.Node {
	if !v.IsValid() {
		return ir.Undefined()
	}
	if a, ok := accessible(v); ok {
		v = a
	}
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	src := b.source(v.Type())
	if src == nil {
		if n, ok := classify(v, b.rules.NumericSlicesAsBinary); ok {
			return n
		}
	}
	if !v.CanInterface() {
		return ir.Reference(ir.Unevaluated, 0, ctorOf(v))
	}
	k, ok := identity(v)
	if !ok {
		return b.container(v, src, depth)
	}
	if ref := b.refs.enter(k, ctorOf(v), b.rules.SkipAdjacent); ref != nil {
		if debug.Build() {
			b.rules.Logger.Debug("reference", "path", b.fieldPath(), "reason", ref.Reason, "ref", ref.Ref)
		}
		return ref
	}
	node := b.container(v, src, depth)
	b.refs.leave(k, node)
	return node
}

func (b *Builder) container(v reflect.Value, src Source, depth int) *ir.Node {
	if debug.Build() {
		b.rules.Logger.Debug("container", "path", b.fieldPath(), "type", v.Type(), "depth", depth)
	}
	if src != nil {
		ctor := ctorOf(v)
		if cs, ok := src.(CtorSource); ok {
			ctor = cs.Ctor(v)
		}
		return b.object(ctor, depth, false, func(yield func(Property) bool) {
			src.Properties(v, yield)
		})
	}
	switch v.Kind() {
	case reflect.Pointer:
		node := b.build(v.Elem(), depth)
		if c := ctorOf(v); c.IsError() && (node.Type == ir.ObjectType || node.Type == ir.EmptyObjectType) {
			node.Ctor = c
		}
		return node
	case reflect.Map:
		return b.mapping(v, depth)
	case reflect.Slice, reflect.Array:
		return b.array(addressable(v), depth)
	case reflect.Struct:
		v = addressable(v)
		return b.object(ctorOf(v), depth, false, func(yield func(Property) bool) {
			b.structs.Properties(v, yield)
		})
	}
	return ir.Reference(ir.Unevaluated, 0, ctorOf(v))
}

// object registers the properties offered by each, honoring the filter and
// the length limit, then resolves them in order. With count set, the
// properties beyond the limit are counted.
func (b *Builder) object(ctor ir.Ctor, depth int, count bool, each func(func(Property) bool)) *ir.Node {
	if depth >= b.rules.MaxDepth {
		return &ir.Node{Type: ir.ObjectType, Ctor: ctor, DepthExceeded: true}
	}
	seen := map[string]bool{}
	var props []Property
	rest := 0
	each(func(p Property) bool {
		if seen[p.Name] {
			return true
		}
		seen[p.Name] = true
		if !b.rules.PropertyFilter(p.info(depth + 1)) {
			return true
		}
		if len(props) == b.rules.MaxObjectLength {
			rest++
			return count
		}
		props = append(props, p)
		return true
	})
	if len(props) == 0 {
		return ir.EmptyObject(ctor)
	}
	node := ir.FromFields(ctor, make([]string, 0, len(props)+1), make([]*ir.Node, 0, len(props)+1))
	for _, p := range props {
		b.push(p.Name)
		node.Fields = append(node.Fields, p.Name)
		node.Values = append(node.Values, b.property(p, depth+1))
		b.pop()
	}
	if rest > 0 {
		if !count {
			rest = -1
		}
		node.SizeExceeded = true
		node.Fields = append(node.Fields, "")
		node.Values = append(node.Values, ir.LengthExceeded(rest))
	}
	return node
}

func (b *Builder) property(p Property, depth int) *ir.Node {
	if !p.Accessor {
		return b.build(p.Value, depth)
	}
	if b.rules.SkipGetters {
		return ir.UnresolvedGetter()
	}
	v, err := call(p)
	if err != nil {
		if debug.Build() {
			b.rules.Logger.Debug("accessor failed", "path", b.fieldPath(), "err", err)
		}
		return ir.Threw(threwCtor(err))
	}
	return b.build(v, depth)
}

func call(p Property) (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Accessor: p.Name, Value: r}
		}
	}()
	return p.Get()
}

func threwCtor(err error) ir.Ctor {
	if pe, ok := err.(*PanicError); ok {
		if inner, ok := pe.Value.(error); ok {
			return threwCtor(inner)
		}
		return ir.Ctor{Name: "panic", Err: err, Message: fmt.Sprint(pe.Value)}
	}
	t := reflect.TypeOf(err)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return ir.Ctor{
		Name:    t.String(),
		Err:     err,
		Message: safeMessage(err),
	}
}

func (b *Builder) mapping(v reflect.Value, depth int) *ir.Node {
	t := v.Type()
	if isInteger(t.Key().Kind()) {
		return b.sparse(v, depth)
	}
	ctor := ctorOf(v)
	if v.Len() == 0 {
		return ir.EmptyObject(ctor)
	}
	type entry struct {
		name string
		key  reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k := iter.Key()
		name := ""
		if k.Kind() == reflect.String {
			name = k.String()
		} else {
			name = fmt.Sprint(k.Interface())
		}
		entries = append(entries, entry{name: name, key: k})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.name, b.name)
	})
	return b.object(ctor, depth, true, func(yield func(Property) bool) {
		for _, e := range entries {
			p := Property{
				Name:     e.name,
				Owner:    t,
				Type:     t.Elem(),
				Exported: true,
				Value:    v.MapIndex(e.key),
			}
			if !yield(p) {
				return
			}
		}
	})
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// sparse builds an integer keyed map as an array ordered by index. Keys
// 0..n-1 without a gap make a dense array. Otherwise the array is sparse
// and keys are filtered by their decimal name.
func (b *Builder) sparse(v reflect.Value, depth int) *ir.Node {
	if v.Len() == 0 {
		return ir.EmptyArray()
	}
	if depth >= b.rules.MaxDepth {
		return &ir.Node{Type: ir.SparseArrayType, DepthExceeded: true}
	}
	t := v.Type()
	type entry struct {
		index int64
		key   reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k := iter.Key()
		var i int64
		if k.CanInt() {
			i = k.Int()
		} else {
			i = int64(k.Uint())
		}
		entries = append(entries, entry{index: i, key: k})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.index, b.index)
	})
	if contiguous(len(entries), func(i int) int64 { return entries[i].index }) {
		return b.dense(len(entries), func(i int) reflect.Value {
			return v.MapIndex(entries[i].key)
		}, depth)
	}
	node := ir.FromIndexes(nil, nil)
	rest := 0
	for _, e := range entries {
		name := strconv.FormatInt(e.index, 10)
		info := PropertyInfo{Name: name, Owner: t, Depth: depth + 1, Type: t.Elem(), Exported: true}
		if !b.rules.PropertyFilter(info) {
			continue
		}
		if len(node.Values) == b.rules.MaxObjectLength {
			rest++
			continue
		}
		b.push("[" + name + "]")
		node.Indexes = append(node.Indexes, e.index)
		node.Values = append(node.Values, b.build(v.MapIndex(e.key), depth+1))
		b.pop()
	}
	if len(node.Values) == 0 {
		return ir.EmptyArray()
	}
	if rest > 0 {
		node.SizeExceeded = true
		node.Indexes = append(node.Indexes, -1)
		node.Values = append(node.Values, ir.LengthExceeded(rest))
	}
	return node
}

func (b *Builder) array(v reflect.Value, depth int) *ir.Node {
	n := v.Len()
	if n == 0 {
		return ir.EmptyArray()
	}
	if depth >= b.rules.MaxDepth {
		return &ir.Node{Type: ir.ArrayType, DepthExceeded: true}
	}
	return b.dense(n, v.Index, depth)
}

// dense builds the n elements returned by at, capped at MaxObjectLength.
func (b *Builder) dense(n int, at func(int) reflect.Value, depth int) *ir.Node {
	m := min(n, b.rules.MaxObjectLength)
	values := make([]*ir.Node, 0, m+1)
	for i := 0; i < m; i++ {
		b.push("[" + strconv.Itoa(i) + "]")
		values = append(values, b.build(at(i), depth+1))
		b.pop()
	}
	node := ir.FromSlice(values)
	if n > m {
		node.SizeExceeded = true
		node.Values = append(node.Values, ir.LengthExceeded(n-m))
	}
	return node
}

// contiguous reports whether the n sorted indexes are exactly 0..n-1.
func contiguous(n int, index func(int) int64) bool {
	for i := 0; i < n; i++ {
		if index(i) != int64(i) {
			return false
		}
	}
	return true
}

package gomap

import (
	"reflect"

	"github.com/signadot/yamprint/ir"
)

// refKey identifies a container by identity. Slices sharing a backing
// array are told apart by length.
type refKey struct {
	addr uintptr
	typ  reflect.Type
	n    int
}

type refEntry struct {
	code int
	node *ir.Node
	ctor ir.Ctor
}

// refs tracks the containers on the current path and those already built.
type refs struct {
	ancestors map[refKey]*refEntry
	adjacent  map[refKey]*refEntry
	next      int
}

func newRefs() *refs {
	return &refs{
		ancestors: map[refKey]*refEntry{},
		adjacent:  map[refKey]*refEntry{},
	}
}

// identity returns the key for v, or false for values without identity.
func identity(v reflect.Value) (refKey, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return refKey{}, false
		}
		return refKey{addr: v.Pointer(), typ: v.Type()}, true
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 {
			return refKey{}, false
		}
		return refKey{addr: v.Pointer(), typ: v.Type(), n: v.Len()}, true
	}
	return refKey{}, false
}

func (r *refs) code(e *refEntry) int {
	if e.code == 0 {
		r.next++
		e.code = r.next
	}
	return e.code
}

// enter returns a reference node when k is on the current path or, with
// skipAdjacent, was already built. Otherwise k is pushed and enter returns
// nil.
func (r *refs) enter(k refKey, ctor ir.Ctor, skipAdjacent bool) *ir.Node {
	if e, ok := r.ancestors[k]; ok {
		return ir.Reference(ir.Circular, r.code(e), e.ctor)
	}
	if skipAdjacent {
		if e, ok := r.adjacent[k]; ok {
			c := r.code(e)
			e.node.Ref = c
			return ir.Reference(ir.Adjacent, c, e.ctor)
		}
	}
	r.ancestors[k] = &refEntry{ctor: ctor}
	return nil
}

// leave pops k and records its finished node.
func (r *refs) leave(k refKey, node *ir.Node) {
	e, ok := r.ancestors[k]
	if !ok {
		return
	}
	delete(r.ancestors, k)
	e.node = node
	if e.code != 0 {
		node.Ref = e.code
	}
	if _, seen := r.adjacent[k]; !seen {
		r.adjacent[k] = e
	}
}

func (r *refs) reset() {
	clear(r.ancestors)
	clear(r.adjacent)
	r.next = 0
}

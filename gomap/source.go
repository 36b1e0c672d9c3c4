package gomap

import (
	"reflect"

	"github.com/signadot/yamprint/ir"
)

// Property is one named value offered by a Source. Exactly one of Value and
// Get is used: Get when Accessor is set.
type Property struct {
	Name  string
	Level int
	Owner reflect.Type
	Type  reflect.Type

	Exported bool
	Accessor bool

	Value reflect.Value
	Get   func() (reflect.Value, error)
}

func (p Property) info(depth int) PropertyInfo {
	return PropertyInfo{
		Name:     p.Name,
		Owner:    p.Owner,
		Level:    p.Level,
		Depth:    depth,
		Type:     p.Type,
		Exported: p.Exported,
		Accessor: p.Accessor,
	}
}

// Source enumerates the properties of the values it handles. Values
// handled by a Source always build as objects. Properties is called with
// a valid value of a handled type and must stop when yield returns false.
type Source interface {
	Handles(t reflect.Type) bool
	Properties(v reflect.Value, yield func(Property) bool)
}

// CtorSource is implemented by sources that name their objects.
type CtorSource interface {
	Ctor(v reflect.Value) ir.Ctor
}

// structSource walks struct fields, accessor methods and embedded structs.
type structSource struct {
	methods    bool
	explorable PrototypeFilter
}

func (s structSource) Handles(t reflect.Type) bool {
	return t.Kind() == reflect.Struct
}

// Properties yields the fields and accessors of v level by level: the
// struct's own fields, then its own accessors, then those of each
// explorable embedded struct, depth first.
func (s structSource) Properties(v reflect.Value, yield func(Property) bool) {
	s.walk(v, 0, map[uintptr]bool{}, yield)
}

func (s structSource) walk(v reflect.Value, level int, seen map[uintptr]bool, yield func(Property) bool) bool {
	t := v.Type()
	var embedded []reflect.Value
	var hidden []reflect.Type
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, show := fieldTag(f)
		if !show {
			if f.Anonymous {
				hidden = append(hidden, f.Type)
			}
			continue
		}
		fv := v.Field(i)
		if f.Anonymous {
			if e, ok := s.promoted(f.Type, fv); ok {
				embedded = append(embedded, e)
				continue
			}
			hidden = append(hidden, f.Type)
		}
		p := Property{
			Name:     name,
			Level:    level,
			Owner:    t,
			Type:     f.Type,
			Exported: f.IsExported(),
			Value:    fv,
		}
		if !yield(p) {
			return false
		}
	}
	if s.methods && !s.accessors(v, level, embedded, hidden, yield) {
		return false
	}
	for _, e := range embedded {
		if e.CanAddr() {
			addr := e.UnsafeAddr()
			if seen[addr] {
				continue
			}
			seen[addr] = true
		}
		if !s.walk(e, level+1, seen, yield) {
			return false
		}
	}
	return true
}

// promoted returns the struct value behind an embedded field whose fields
// are promoted into the embedding value.
func (s structSource) promoted(t reflect.Type, fv reflect.Value) (reflect.Value, bool) {
	st := t
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct || scalarStruct(st) || !s.explorable(t) {
		return reflect.Value{}, false
	}
	if t.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return reflect.Value{}, false
		}
		fv = fv.Elem()
	}
	e, ok := accessible(fv)
	if !ok {
		return reflect.Value{}, false
	}
	return addressable(e), true
}

func scalarStruct(t reflect.Type) bool {
	switch t {
	case timeType, regexpType, bufferType, bytesReaderType, stringsReaderType:
		return true
	}
	return false
}

// accessors yields the methods declared by v's own type that take no
// arguments and return a value, or a value and an error. Methods promoted
// from embedded fields are left to the embedded walk, or dropped when the
// embedded type is not explorable.
func (s structSource) accessors(v reflect.Value, level int, embedded []reflect.Value, hidden []reflect.Type, yield func(Property) bool) bool {
	recv := v
	if v.CanAddr() {
		recv = v.Addr()
	}
	if !recv.CanInterface() {
		return true
	}
	var inner []reflect.Type
	for _, e := range embedded {
		inner = append(inner, e.Type())
	}
	inner = append(inner, hidden...)
	rt := recv.Type()
	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		if !isAccessor(m.Type) || promotedMethod(m.Name, inner) {
			continue
		}
		mv := recv.Method(i)
		p := Property{
			Name:     m.Name,
			Level:    level,
			Owner:    v.Type(),
			Type:     m.Type.Out(0),
			Exported: true,
			Accessor: true,
			Get: func() (reflect.Value, error) {
				out := mv.Call(nil)
				if len(out) == 2 && !out[1].IsNil() {
					return out[0], out[1].Interface().(error)
				}
				return out[0], nil
			},
		}
		if !yield(p) {
			return false
		}
	}
	return true
}

// isAccessor reports whether a method type (receiver included) has the
// shape of a getter.
func isAccessor(mt reflect.Type) bool {
	if mt.NumIn() != 1 || mt.IsVariadic() {
		return false
	}
	switch mt.NumOut() {
	case 1:
		return mt.Out(0) != errorType
	case 2:
		return mt.Out(1) == errorType
	}
	return false
}

func promotedMethod(name string, inner []reflect.Type) bool {
	for _, t := range inner {
		if _, ok := t.MethodByName(name); ok {
			return true
		}
		if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
			if _, ok := reflect.PointerTo(t).MethodByName(name); ok {
				return true
			}
		}
	}
	return false
}

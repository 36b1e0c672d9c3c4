package gomap

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"time"
	"unsafe"

	"github.com/signadot/yamprint/ir"
)

var (
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf(regexp.Regexp{})
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
)

// classify returns the scalar node for v, or false when v is a container
// (struct, map, slice, array or a pointer to one of those).
func classify(v reflect.Value, numeric bool) (*ir.Node, bool) {
	if !v.IsValid() {
		return ir.Undefined(), true
	}
	if b, ok := binaryInfo(v, numeric); ok {
		return ir.FromBinary(b), true
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return ir.Null(), true
		}
		if v.Kind() == reflect.Pointer && v.Type().Elem() == regexpType {
			if !v.CanInterface() {
				return ir.Reference(ir.Unevaluated, 0, ctorOf(v)), true
			}
			return ir.FromPattern(v.Interface().(*regexp.Regexp).String()), true
		}
		// boxed scalars unwrap; pointers to containers keep their identity
		e, ok := unbox(v)
		if !ok {
			return nil, false
		}
		if e.Kind() == reflect.Pointer || e.Kind() == reflect.Interface {
			return ir.Null(), true
		}
		return classify(e, numeric)
	case reflect.Map:
		if v.IsNil() {
			return ir.Null(), true
		}
		return nil, false
	case reflect.Func:
		if v.IsNil() {
			return ir.Null(), true
		}
		name := ""
		if f := runtime.FuncForPC(v.Pointer()); f != nil {
			name = f.Name()
		}
		return ir.FromFunc(name, v.Type().String()), true
	case reflect.Chan:
		if v.IsNil() {
			return ir.Null(), true
		}
		return ir.FromSymbol(v.Type().String()), true
	case reflect.UnsafePointer:
		if v.IsNil() {
			return ir.Null(), true
		}
		return ir.FromSymbol(fmt.Sprintf("%s %#x", v.Type(), uintptr(v.UnsafePointer()))), true
	case reflect.Uintptr:
		return ir.FromSymbol(fmt.Sprintf("%s %#x", v.Type(), v.Uint())), true
	case reflect.Bool:
		return ir.FromBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromNumber(v.Uint()), true
	case reflect.Float32:
		return ir.FromNumber(float32(v.Float())), true
	case reflect.Float64:
		return ir.FromFloat(v.Float()), true
	case reflect.Complex64:
		return ir.FromNumber(complex64(v.Complex())), true
	case reflect.Complex128:
		return ir.FromNumber(v.Complex()), true
	case reflect.String:
		return ir.FromString(v.String()), true
	case reflect.Struct:
		switch v.Type() {
		case timeType:
			if !v.CanInterface() {
				return ir.Reference(ir.Unevaluated, 0, ctorOf(v)), true
			}
			return ir.FromTime(v.Interface().(time.Time)), true
		case regexpType:
			if !v.CanInterface() {
				return ir.Reference(ir.Unevaluated, 0, ctorOf(v)), true
			}
			re := v.Interface().(regexp.Regexp)
			return ir.FromPattern(re.String()), true
		}
	}
	return nil, false
}

// unbox follows the pointers and interfaces starting at v to the first
// value of another kind or to a nil. ok is false when the chain revisits
// a pointer.
func unbox(v reflect.Value) (e reflect.Value, ok bool) {
	seen := map[refKey]bool{}
	for (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && !v.IsNil() {
		if v.Kind() == reflect.Pointer {
			k := refKey{addr: v.Pointer(), typ: v.Type()}
			if seen[k] {
				return v, false
			}
			seen[k] = true
		}
		v = v.Elem()
	}
	return v, true
}

// accessible returns v in a form that can be passed to Interface, reading
// through unexported fields when v is addressable.
func accessible(v reflect.Value) (reflect.Value, bool) {
	if !v.IsValid() || v.CanInterface() {
		return v, true
	}
	if !v.CanAddr() {
		return v, false
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem(), true
}

// addressable copies struct and array values into fresh storage so their
// fields can be read through accessible.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() || !v.CanInterface() {
		return v
	}
	switch v.Kind() {
	case reflect.Struct, reflect.Array:
		c := reflect.New(v.Type()).Elem()
		c.Set(v)
		return c
	}
	return v
}

// ctorOf describes the type of a container value.
func ctorOf(v reflect.Value) ir.Ctor {
	t := v.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var c ir.Ctor
	switch {
	case t.Kind() == reflect.Map && t.Name() == "":
		c = ir.PlainCtor(t.String())
	case t.Kind() == reflect.Struct && t.Name() == "":
		c = ir.Ctor{Name: t.String(), Anonymous: true}
	default:
		c = ir.NamedCtor(t.String())
	}
	if v.Type().Implements(errorType) && v.CanInterface() {
		if err, ok := v.Interface().(error); ok {
			c.Err = err
			c.Message = safeMessage(err)
		}
	}
	return c
}

func safeMessage(err error) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprintf("<panic in Error: %v>", r)
		}
	}()
	return err.Error()
}

package gomap

import (
	"bytes"
	"reflect"
	"strings"

	"github.com/signadot/yamprint/ir"
)

var (
	bufferType        = reflect.TypeOf(bytes.Buffer{})
	bytesReaderType   = reflect.TypeOf(bytes.Reader{})
	stringsReaderType = reflect.TypeOf(strings.Reader{})
)

var numericElems = map[reflect.Kind]ir.ElemType{
	reflect.Int8:    ir.ElemInt8,
	reflect.Int16:   ir.ElemInt16,
	reflect.Int32:   ir.ElemInt32,
	reflect.Int64:   ir.ElemInt64,
	reflect.Uint16:  ir.ElemUint16,
	reflect.Uint32:  ir.ElemUint32,
	reflect.Uint64:  ir.ElemUint64,
	reflect.Float32: ir.ElemFloat32,
	reflect.Float64: ir.ElemFloat64,
}

// binaryInfo classifies buffer-like values. Nil pointers are not binary.
func binaryInfo(v reflect.Value, numeric bool) (ir.Binary, bool) {
	t := v.Type()
	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return ir.Binary{Kind: ir.BytesKind, Name: t.String(), Elem: ir.ElemByte, Length: v.Len()}, true
		}
		if !numeric {
			return ir.Binary{}, false
		}
		elem, ok := numericElems[t.Elem().Kind()]
		if !ok {
			return ir.Binary{}, false
		}
		return ir.Binary{Kind: ir.TypedSliceKind, Name: t.String(), Elem: elem, Length: v.Len()}, true
	case reflect.Array:
		if t.Elem().Kind() != reflect.Uint8 {
			return ir.Binary{}, false
		}
		return ir.Binary{Kind: ir.ByteArrayKind, Name: t.String(), Elem: ir.ElemByte, Length: v.Len()}, true
	case reflect.Pointer:
		if v.IsNil() {
			return ir.Binary{}, false
		}
		switch t.Elem() {
		case bufferType:
			if !v.CanInterface() {
				return ir.Binary{}, false
			}
			buf := v.Interface().(*bytes.Buffer)
			return ir.Binary{Kind: ir.BufferKind, Name: t.String(), Elem: ir.ElemByte, Length: buf.Len()}, true
		case bytesReaderType:
			if !v.CanInterface() {
				return ir.Binary{}, false
			}
			rd := v.Interface().(*bytes.Reader)
			return ir.Binary{Kind: ir.ReaderKind, Name: t.String(), Elem: ir.ElemByte, Length: int(rd.Size())}, true
		case stringsReaderType:
			if !v.CanInterface() {
				return ir.Binary{}, false
			}
			rd := v.Interface().(*strings.Reader)
			return ir.Binary{Kind: ir.ReaderKind, Name: t.String(), Elem: ir.ElemByte, Length: int(rd.Size())}, true
		}
	case reflect.Struct:
		if t != bufferType && t != bytesReaderType && t != stringsReaderType {
			return ir.Binary{}, false
		}
		if v.CanAddr() {
			return binaryInfo(v.Addr(), numeric)
		}
		if !v.CanInterface() {
			return ir.Binary{}, false
		}
		c := reflect.New(t)
		c.Elem().Set(v)
		return binaryInfo(c, numeric)
	}
	return ir.Binary{}, false
}

package ir

// BinaryKind is the closed set of buffer shapes reported as BinaryType.
type BinaryKind int

const (
	BytesKind BinaryKind = iota
	ByteArrayKind
	BufferKind
	ReaderKind
	TypedSliceKind
)

func (k BinaryKind) String() string {
	switch k {
	case BytesKind:
		return "Bytes"
	case ByteArrayKind:
		return "ByteArray"
	case BufferKind:
		return "Buffer"
	case ReaderKind:
		return "Reader"
	case TypedSliceKind:
		return "TypedSlice"
	default:
		return "Other"
	}
}

// ElemType tags the element type of a binary value.
type ElemType string

const (
	ElemByte    ElemType = "byte"
	ElemInt8    ElemType = "int8"
	ElemInt16   ElemType = "int16"
	ElemInt32   ElemType = "int32"
	ElemInt64   ElemType = "int64"
	ElemUint16  ElemType = "uint16"
	ElemUint32  ElemType = "uint32"
	ElemUint64  ElemType = "uint64"
	ElemFloat32 ElemType = "float32"
	ElemFloat64 ElemType = "float64"
)

// Binary describes a buffer-like value. Length counts elements, not bytes.
type Binary struct {
	Kind   BinaryKind
	Name   string
	Elem   ElemType
	Length int
}

package ir

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Node is one vertex of the rendered value graph. It is a tagged union:
// which fields are meaningful depends on Type.
type Node struct {
	Type Type

	// containers
	Ctor    Ctor
	Fields  []string
	Indexes []int64
	Values  []*Node
	Ref     int

	DepthExceeded bool
	SizeExceeded  bool

	// scalars
	Bool      bool
	Number    any
	String    string
	Signature string
	Lines     []string
	Size      int
	Time      time.Time
	Binary    Binary
	Reason    Reason
	Target    Ctor
	Err       error
	Rest      int
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Undefined() *Node {
	return &Node{Type: UndefinedType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// FromNumber wraps a Go numeric value. Callers pass int64, uint64, float32,
// float64, complex64 or complex128.
func FromNumber(v any) *Node {
	return &Node{Type: NumberType, Number: v}
}

func FromInt(v int64) *Node {
	return FromNumber(v)
}

func FromFloat(v float64) *Node {
	return FromNumber(v)
}

// FromString returns a String node, or a TextBlock node with the lines
// pre-split when v contains a line separator.
func FromString(v string) *Node {
	lines := SplitLines(v)
	if len(lines) == 1 {
		return &Node{Type: StringType, String: v}
	}
	return &Node{
		Type:  TextBlockType,
		Lines: lines,
		Size:  utf8.RuneCountInString(v),
	}
}

// SplitLines splits on \r\n, \r and \n.
func SplitLines(v string) []string {
	v = strings.ReplaceAll(v, "\r\n", "\n")
	v = strings.ReplaceAll(v, "\r", "\n")
	return strings.Split(v, "\n")
}

func FromTime(t time.Time) *Node {
	return &Node{Type: DateType, Time: t}
}

func FromPattern(src string) *Node {
	return &Node{Type: PatternType, String: src}
}

func FromSymbol(desc string) *Node {
	return &Node{Type: SymbolType, String: desc}
}

func FromFunc(name, signature string) *Node {
	return &Node{Type: FunctionType, String: name, Signature: signature}
}

func FromBinary(b Binary) *Node {
	return &Node{Type: BinaryType, Binary: b}
}

func Reference(reason Reason, ref int, target Ctor) *Node {
	return &Node{Type: ReferenceType, Reason: reason, Ref: ref, Target: target}
}

// Threw records a failed accessor. target describes the error: its type
// name, the error itself and its message.
func Threw(target Ctor) *Node {
	return &Node{Type: ThrewType, Err: target.Err, Target: target}
}

func UnresolvedGetter() *Node {
	return &Node{Type: UnresolvedGetterType}
}

// LengthExceeded marks a truncated child list. rest is the number of
// dropped children, or -1 when it was not counted.
func LengthExceeded(rest int) *Node {
	return &Node{Type: LengthExceededType, Rest: rest}
}

func EmptyObject(ctor Ctor) *Node {
	return &Node{Type: EmptyObjectType, Ctor: ctor}
}

func EmptyArray() *Node {
	return &Node{Type: EmptyArrayType}
}

func FromFields(ctor Ctor, fields []string, values []*Node) *Node {
	return &Node{
		Type:   ObjectType,
		Ctor:   ctor,
		Fields: fields,
		Values: values,
	}
}

func FromSlice(values []*Node) *Node {
	return &Node{Type: ArrayType, Values: values}
}

func FromIndexes(indexes []int64, values []*Node) *Node {
	return &Node{Type: SparseArrayType, Indexes: indexes, Values: values}
}

// Get returns the value of the first field named f of an object node.
func (y *Node) Get(f string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i, name := range y.Fields {
		if name == f {
			return y.Values[i]
		}
	}
	return nil
}

// Truncated reports whether the last child is a LengthExceeded sentinel.
func (y *Node) Truncated() bool {
	n := len(y.Values)
	return n > 0 && y.Values[n-1].Type == LengthExceededType
}

// Walk calls f for y and every descendant in depth first order, stopping
// a branch when f returns false.
func (y *Node) Walk(f func(*Node) bool) {
	if !f(y) {
		return
	}
	for _, v := range y.Values {
		v.Walk(f)
	}
}

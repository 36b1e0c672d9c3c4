package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	UndefinedType
	BoolType
	NumberType
	StringType
	TextBlockType
	DateType
	PatternType
	SymbolType
	FunctionType
	BinaryType
	ReferenceType
	ThrewType
	UnresolvedGetterType
	LengthExceededType
	EmptyObjectType
	EmptyArrayType
	ObjectType
	ArrayType
	SparseArrayType
)

var typeNames = map[Type]string{
	NullType:             "Null",
	UndefinedType:        "Undefined",
	BoolType:             "Bool",
	NumberType:           "Number",
	StringType:           "String",
	TextBlockType:        "TextBlock",
	DateType:             "Date",
	PatternType:          "Pattern",
	SymbolType:           "Symbol",
	FunctionType:         "Function",
	BinaryType:           "Binary",
	ReferenceType:        "Reference",
	ThrewType:            "Threw",
	UnresolvedGetterType: "UnresolvedGetter",
	LengthExceededType:   "LengthExceeded",
	EmptyObjectType:      "EmptyObject",
	EmptyArrayType:       "EmptyArray",
	ObjectType:           "Object",
	ArrayType:            "Array",
	SparseArrayType:      "SparseArray",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	res := make([]Type, 0, len(typeNames))
	for t := NullType; t <= SparseArrayType; t++ {
		res = append(res, t)
	}
	return res
}

// IsLeaf reports whether nodes of type t render inline, on a single
// logical line. Text blocks are leaves even though they span lines.
func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType, SparseArrayType:
		return false
	default:
		return true
	}
}

// IsContainer reports whether t is one of the container kinds, including
// the empty sentinels.
func (t Type) IsContainer() bool {
	switch t {
	case ObjectType, ArrayType, SparseArrayType, EmptyObjectType, EmptyArrayType:
		return true
	default:
		return false
	}
}

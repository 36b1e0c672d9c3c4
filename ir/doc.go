// Package ir defines the intermediate node tree produced by gomap and
// consumed by encode.
//
// # Overview
//
// A Go value graph may be cyclic or unbounded. The builder in gomap walks it
// under a set of limits and produces an ir.Node tree that is always finite
// and acyclic. Back edges and repeated containers become Reference nodes;
// limits become flags on the container plus a LengthExceeded sentinel.
//
// # Node Types
//
// The Type field indicates which fields of a Node are meaningful:
//
//   - NullType, UndefinedType: no payload
//   - BoolType: Bool
//   - NumberType: Number (int64, uint64, float64 or complex128)
//   - StringType: String
//   - TextBlockType: Lines, Size
//   - DateType: Time
//   - PatternType, SymbolType: String
//   - FunctionType: String (name), Signature
//   - BinaryType: Binary
//   - ReferenceType: Reason, Ref, Target
//   - ThrewType: Err
//   - UnresolvedGetterType: no payload
//   - LengthExceededType: Rest
//   - EmptyObjectType: Ctor, Ref
//   - EmptyArrayType: Ref
//   - ObjectType: Ctor, Fields, Values, Ref
//   - ArrayType: Values, Ref
//   - SparseArrayType: Indexes, Values, Ref
//
// Containers carry DepthExceeded and SizeExceeded. Ref is zero unless the
// container was referenced from elsewhere in the same tree.
//
// # Creating Nodes
//
//	obj := ir.FromFields(ir.PlainCtor("map[string]int"),
//	    []string{"a", "b"},
//	    []*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	arr := ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.Null()})
//
// # Related Packages
//
//   - github.com/signadot/yamprint/gomap - builds trees from Go values
//   - github.com/signadot/yamprint/encode - renders trees as text
package ir

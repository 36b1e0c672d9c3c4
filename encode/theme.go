package encode

import "github.com/signadot/yamprint/ir"

// Element names one entry of a Formatter.
type Element int

const (
	Indent Element = iota
	ArrayPrefix
	MultilineMargin
	Null
	Undefined
	EmptyArray
	UnresolvedGetter
	ArrayDepthExceeded
	PropertyKey
	String
	Number
	Bool
	Date
	Pattern
	Symbol
	Function
	Binary
	ConstructorTag
	EmptyObject
	Anchor
	Reference
	Threw
	SizeExceeded
	ObjectDepthExceeded
	SparseIndex
)

// Elements returns every Element.
func Elements() []Element {
	res := make([]Element, 0, SparseIndex+1)
	for e := Indent; e <= SparseIndex; e++ {
		res = append(res, e)
	}
	return res
}

// Theme maps formatter entries to a transform of their output.
type Theme map[Element]func(string) string

// Themed returns a formatter whose entries selected by theme produce
// transform(base output). f is left unchanged.
func (f *Formatter) Themed(theme Theme) *Formatter {
	g := *f
	for e, t := range theme {
		if t == nil {
			continue
		}
		switch e {
		case Indent:
			g.Indent = t(f.Indent)
		case ArrayPrefix:
			g.ArrayPrefix = t(f.ArrayPrefix)
		case MultilineMargin:
			g.MultilineMargin = t(f.MultilineMargin)
		case Null:
			g.Null = t(f.Null)
		case Undefined:
			g.Undefined = t(f.Undefined)
		case EmptyArray:
			g.EmptyArray = t(f.EmptyArray)
		case UnresolvedGetter:
			g.UnresolvedGetter = t(f.UnresolvedGetter)
		case ArrayDepthExceeded:
			g.ArrayDepthExceeded = t(f.ArrayDepthExceeded)
		case PropertyKey:
			g.PropertyKey = compose(t, f.PropertyKey)
		case String:
			g.String = compose(t, f.String)
		case Number:
			g.Number = compose(t, f.Number)
		case Bool:
			g.Bool = compose(t, f.Bool)
		case Date:
			g.Date = compose(t, f.Date)
		case Pattern:
			g.Pattern = compose(t, f.Pattern)
		case Symbol:
			g.Symbol = compose(t, f.Symbol)
		case Function:
			base := f.Function
			g.Function = func(name, sig string) string { return t(base(name, sig)) }
		case Binary:
			g.Binary = compose(t, f.Binary)
		case ConstructorTag:
			g.ConstructorTag = compose(t, f.ConstructorTag)
		case EmptyObject:
			g.EmptyObject = compose(t, f.EmptyObject)
		case Anchor:
			g.Anchor = compose(t, f.Anchor)
		case Reference:
			base := f.Reference
			g.Reference = func(r ir.Reason, ref int) string { return t(base(r, ref)) }
		case Threw:
			g.Threw = compose(t, f.Threw)
		case SizeExceeded:
			g.SizeExceeded = compose(t, f.SizeExceeded)
		case ObjectDepthExceeded:
			g.ObjectDepthExceeded = compose(t, f.ObjectDepthExceeded)
		case SparseIndex:
			g.SparseIndex = compose(t, f.SparseIndex)
		}
	}
	return &g
}

func compose[T any](t func(string) string, base func(T) string) func(T) string {
	return func(v T) string { return t(base(v)) }
}

package ast

import (
	"strings"

	"github.com/sigparse/sig/internal/source"
)

// Param is one function parameter: a type, and an optional name (empty
// string when unnamed).
type Param struct {
	Type Type
	Name string
}

// KeywordParam is one named entry of a function's keyword parameter
// lists. The lists themselves are ordered slices rather than maps (see
// SPEC_FULL's Go mapping note) so that "never also present in the other
// map" and iteration order are both simple slice properties.
type KeywordParam struct {
	Name string
	Type Type
}

// Function is a callable signature's parameter lists and return type
// (§3 "Function"). Seven parameter lists, exactly as enumerated there.
type Function struct {
	Required         []Param
	Optional         []Param
	Rest             *Param // single rest positional, nil if absent
	Trailing         []Param
	RequiredKeywords []KeywordParam
	OptionalKeywords []KeywordParam
	RestKeyword      *Param // single rest keyword, nil if absent
	Return           Type
}

// HasKeyword reports whether name already appears in either keyword list,
// used by the parser to enforce the §3 invariant that an optional keyword
// is never also present in the required map (and vice versa).
func (f *Function) HasKeyword(name string) bool {
	for _, kw := range f.RequiredKeywords {
		if kw.Name == name {
			return true
		}
	}
	for _, kw := range f.OptionalKeywords {
		if kw.Name == name {
			return true
		}
	}

	return false
}

// Block is the `{ (params) -> T }` clause of a function or method type,
// with Required false when a leading `?` marked it optional.
type Block struct {
	Func     *Function
	Required bool
}

// Variance is the declared-site variance of a class/interface type
// parameter (supplemented from original_source, see SPEC_FULL).
type Variance byte

const (
	Invariant Variance = iota
	Covariant           // `out`
	Contravariant       // `in`
)

// TypeParam is one symbol of a `[T, ...]` type-parameter list, carrying
// its declared variance and whether it was marked `unchecked`.
type TypeParam struct {
	Name      string
	Variance  Variance
	Unchecked bool
}

// MethodType is a full method signature: optional type parameters, a
// function, and an optional trailing block (§4.5).
type MethodType struct {
	baseNode
	TypeParams []TypeParam
	Func       *Function
	Block      *Block
}

func NewMethodType(loc *source.Location, typeParams []TypeParam, fn *Function, block *Block) *MethodType {
	return &MethodType{baseNode: newBase(loc), TypeParams: typeParams, Func: fn, Block: block}
}

func writeParams(b *strings.Builder, fn *Function) {
	b.WriteString("(")
	first := true
	writeParam := func(p Param) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		writeType(b, p.Type)
		if p.Name != "" {
			b.WriteString(" ")
			b.WriteString(p.Name)
		}
	}

	for _, p := range fn.Required {
		writeParam(p)
	}
	if fn.Rest != nil {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString("*")
		writeType(b, fn.Rest.Type)
		if fn.Rest.Name != "" {
			b.WriteString(" ")
			b.WriteString(fn.Rest.Name)
		}
	}
	for _, p := range fn.Trailing {
		writeParam(p)
	}
	for _, p := range fn.Optional {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString("?")
		writeType(b, p.Type)
		if p.Name != "" {
			b.WriteString(" ")
			b.WriteString(p.Name)
		}
	}
	for _, kw := range fn.RequiredKeywords {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(kw.Name)
		b.WriteString(": ")
		writeType(b, kw.Type)
	}
	for _, kw := range fn.OptionalKeywords {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString("?")
		b.WriteString(kw.Name)
		b.WriteString(": ")
		writeType(b, kw.Type)
	}
	if fn.RestKeyword != nil {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString("**")
		writeType(b, fn.RestKeyword.Type)
		if fn.RestKeyword.Name != "" {
			b.WriteString(" ")
			b.WriteString(fn.RestKeyword.Name)
		}
	}
	b.WriteString(")")
}

// writeFunction renders a bare `(params) -> T` signature with no block,
// the shape a block clause's own inner function always has.
func writeFunction(b *strings.Builder, fn *Function) {
	writeParams(b, fn)
	if fn.Return != nil {
		b.WriteString(" -> ")
		writeType(b, fn.Return)
	}
}

// writeFunctionAndBlock renders the full `(params) { block } -> T` shape
// shared by proc types and method types: params, then the optional block
// clause, then the mandatory return type, in that surface order.
func writeFunctionAndBlock(b *strings.Builder, fn *Function, block *Block) {
	writeParams(b, fn)

	if block != nil {
		b.WriteString(" ")
		if !block.Required {
			b.WriteString("?")
		}
		b.WriteString("{ ")
		writeFunction(b, block.Func)
		b.WriteString(" }")
	}

	if fn.Return != nil {
		b.WriteString(" -> ")
		writeType(b, fn.Return)
	}
}

// MethodTypeString renders mt's type parameters, function, and optional
// block in the same compact round-trippable form String uses for types.
func MethodTypeString(mt *MethodType) string {
	var b strings.Builder

	if len(mt.TypeParams) > 0 {
		b.WriteString("[")
		for i, tp := range mt.TypeParams {
			if i > 0 {
				b.WriteString(", ")
			}
			switch tp.Variance {
			case Covariant:
				b.WriteString("out ")
			case Contravariant:
				b.WriteString("in ")
			}
			if tp.Unchecked {
				b.WriteString("unchecked ")
			}
			b.WriteString(tp.Name)
		}
		b.WriteString("] ")
	}

	writeFunctionAndBlock(&b, mt.Func, mt.Block)

	return b.String()
}

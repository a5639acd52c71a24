package ast

import (
	"strings"
	"unicode"

	"github.com/sigparse/sig/internal/literal"
	"github.com/sigparse/sig/internal/source"
)

// Type is implemented by every type-expression variant (§3 "Types").
type Type interface {
	Node
	typeNode()
}

// BaseKind enumerates the closed set of base-type keywords. BaseAny is
// spelled `untyped` at the surface (RBS carries no separate `any`
// keyword — `untyped` is its historical spelling for the dynamic type);
// BaseKind.String still renders it as "any" to match the spec's internal
// tag name, while the package-level String prints `untyped`.
type BaseKind byte

const (
	BaseAny BaseKind = iota
	BaseBool
	BaseBottom
	BaseClass
	BaseInstance
	BaseNil
	BaseSelf
	BaseTop
	BaseVoid
)

func (k BaseKind) String() string {
	names := map[BaseKind]string{
		BaseAny: "any", BaseBool: "bool", BaseBottom: "bot", BaseClass: "class",
		BaseInstance: "instance", BaseNil: "nil", BaseSelf: "self", BaseTop: "top",
		BaseVoid: "void",
	}

	return names[k]
}

// BaseType is one of the reserved base-type keywords.
type BaseType struct {
	baseNode
	Kind BaseKind
}

func NewBaseType(loc *source.Location, kind BaseKind) *BaseType {
	return &BaseType{baseNode: newBase(loc), Kind: kind}
}

func (*BaseType) typeNode() {}

// ClassInstanceType is a class name applied to zero or more type
// arguments, e.g. `Array[Integer]`.
type ClassInstanceType struct {
	baseNode
	Name *TypeName
	Args []Type
}

func NewClassInstanceType(loc *source.Location, name *TypeName, args []Type) *ClassInstanceType {
	return &ClassInstanceType{baseNode: newBase(loc), Name: name, Args: args}
}

func (*ClassInstanceType) typeNode() {}

// ClassSingletonType is `singleton(C)`, the metaclass of C.
type ClassSingletonType struct {
	baseNode
	Name *TypeName
}

func NewClassSingletonType(loc *source.Location, name *TypeName) *ClassSingletonType {
	return &ClassSingletonType{baseNode: newBase(loc), Name: name}
}

func (*ClassSingletonType) typeNode() {}

// AliasType references a type alias by name.
type AliasType struct {
	baseNode
	Name *TypeName
	Args []Type
}

func NewAliasType(loc *source.Location, name *TypeName, args []Type) *AliasType {
	return &AliasType{baseNode: newBase(loc), Name: name, Args: args}
}

func (*AliasType) typeNode() {}

// InterfaceType references an interface by name and type arguments.
type InterfaceType struct {
	baseNode
	Name *TypeName
	Args []Type
}

func NewInterfaceType(loc *source.Location, name *TypeName, args []Type) *InterfaceType {
	return &InterfaceType{baseNode: newBase(loc), Name: name, Args: args}
}

func (*InterfaceType) typeNode() {}

// UnionType is a `|`-separated list of alternative types. A single-
// element union collapses to its inner type at construction time (no
// unary union node is ever produced), so len(Types) is always >= 2.
type UnionType struct {
	baseNode
	Types []Type
}

func (*UnionType) typeNode() {}

// IntersectionType is an `&`-separated list of types, with the same
// collapsing rule as UnionType.
type IntersectionType struct {
	baseNode
	Types []Type
}

func (*IntersectionType) typeNode() {}

func NewUnionType(loc *source.Location, types []Type) Type {
	if len(types) == 1 {
		return types[0]
	}

	return &UnionType{baseNode: newBase(loc), Types: types}
}

func NewIntersectionType(loc *source.Location, types []Type) Type {
	if len(types) == 1 {
		return types[0]
	}

	return &IntersectionType{baseNode: newBase(loc), Types: types}
}

// TupleType is a fixed-length `[T, ...]` list of element types.
type TupleType struct {
	baseNode
	Types []Type
}

func NewTupleType(loc *source.Location, types []Type) *TupleType {
	return &TupleType{baseNode: newBase(loc), Types: types}
}

func (*TupleType) typeNode() {}

// OptionalType wraps a type made optional by a trailing `?`.
type OptionalType struct {
	baseNode
	Type Type
}

func NewOptionalType(loc *source.Location, inner Type) *OptionalType {
	return &OptionalType{baseNode: newBase(loc), Type: inner}
}

func (*OptionalType) typeNode() {}

// LiteralType wraps a primitive literal value used directly as a type
// (`true`, `42`, `'ok'`, `:sym`).
type LiteralType struct {
	baseNode
	Value literal.Value
}

func NewLiteralType(loc *source.Location, v literal.Value) *LiteralType {
	return &LiteralType{baseNode: newBase(loc), Value: v}
}

func (*LiteralType) typeNode() {}

// RecordField is one `key: Type` or `key => Type` entry of a record type.
// Key is always a literal.Value: a bare identifier key is represented as
// a literal.Symbol carrying its text, matching the symbol the keyword
// shorthand desugars to (§4.4.2).
type RecordField struct {
	Key  literal.Value
	Type Type
}

// RecordType is a fixed-fields object type, §4.4.2.
type RecordType struct {
	baseNode
	Fields []RecordField
}

func NewRecordType(loc *source.Location, fields []RecordField) *RecordType {
	return &RecordType{baseNode: newBase(loc), Fields: fields}
}

func (*RecordType) typeNode() {}

// VariableType is a reference to an active type variable, distinguished
// from a class/interface/alias reference by scope membership at parse
// time (§4.4's tUIDENT production).
type VariableType struct {
	baseNode
	Name string
}

func NewVariableType(loc *source.Location, name string) *VariableType {
	return &VariableType{baseNode: newBase(loc), Name: name}
}

func (*VariableType) typeNode() {}

// ProcType is a `^function` type (§4.4's `^` production). Its function
// may carry a required or optional block clause, parsed the same way as a
// method type's; Block is nil when the proc type has none.
type ProcType struct {
	baseNode
	Func  *Function
	Block *Block
}

func NewProcType(loc *source.Location, fn *Function, block *Block) *ProcType {
	return &ProcType{baseNode: newBase(loc), Func: fn, Block: block}
}

func (*ProcType) typeNode() {}

// String renders a compact, parser-round-trippable form of t. It is used
// by tests asserting the §8 round-trip property and by the CLI's `type`
// and `method` commands.
func String(t Type) string {
	var b strings.Builder
	writeType(&b, t)

	return b.String()
}

func writeType(b *strings.Builder, t Type) {
	switch v := t.(type) {
	case *BaseType:
		if v.Kind == BaseAny {
			b.WriteString("untyped") // the surface keyword; "any" would reparse as an alias
		} else {
			b.WriteString(v.Kind.String())
		}
	case *ClassInstanceType:
		b.WriteString(v.Name.String())
		writeArgs(b, v.Args)
	case *ClassSingletonType:
		b.WriteString("singleton(")
		b.WriteString(v.Name.String())
		b.WriteString(")")
	case *AliasType:
		b.WriteString(v.Name.String())
		writeArgs(b, v.Args)
	case *InterfaceType:
		b.WriteString(v.Name.String())
		writeArgs(b, v.Args)
	case *UnionType:
		writeJoined(b, v.Types, " | ")
	case *IntersectionType:
		writeJoined(b, v.Types, " & ")
	case *TupleType:
		b.WriteString("[")
		writeJoined(b, v.Types, ", ")
		b.WriteString("]")
	case *OptionalType:
		writeType(b, v.Type)
		b.WriteString("?")
	case *LiteralType:
		b.WriteString(v.Value.String())
	case *RecordType:
		b.WriteString("{ ")
		for i, f := range v.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			if sym, ok := f.Key.(literal.Symbol); ok && isPlainIdent(string(sym)) {
				b.WriteString(string(sym))
				b.WriteString(": ")
			} else {
				b.WriteString(f.Key.String())
				b.WriteString(" => ")
			}
			writeType(b, f.Type)
		}
		b.WriteString(" }")
	case *VariableType:
		b.WriteString(v.Name)
	case *ProcType:
		b.WriteString("^")
		writeFunctionAndBlock(b, v.Func, v.Block)
	default:
		b.WriteString("<?>")
	}
}

// isPlainIdent reports whether a symbol key can be written in the
// keyword shape `key: Type`.
func isPlainIdent(s string) bool {
	for i, r := range s {
		if !(r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r))) {
			return false
		}
	}

	return s != ""
}

func writeArgs(b *strings.Builder, args []Type) {
	if len(args) == 0 {
		return
	}

	b.WriteString("[")
	writeJoined(b, args, ", ")
	b.WriteString("]")
}

func writeJoined(b *strings.Builder, types []Type, sep string) {
	for i, t := range types {
		if i > 0 {
			b.WriteString(sep)
		}
		writeType(b, t)
	}
}

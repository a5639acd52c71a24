package ast

import "github.com/sigparse/sig/internal/source"

// Decl is implemented by every top-level (or nested) declaration: the
// six variants of §3 "Declarations".
type Decl interface {
	Node
	declNode()
}

// Constant is a `CONST : Type` declaration.
type Constant struct {
	baseNode
	Name        *TypeName
	Type        Type
	Annotations []*Annotation
	Comment     *Comment
}

func NewConstant(loc *source.Location, name *TypeName, t Type) *Constant {
	return &Constant{baseNode: newBase(loc), Name: name, Type: t}
}

func (*Constant) declNode()   {}
func (*Constant) memberNode() {}

// Global is a `$global : Type` declaration.
type Global struct {
	baseNode
	Name        string
	Type        Type
	Annotations []*Annotation
	Comment     *Comment
}

func NewGlobal(loc *source.Location, name string, t Type) *Global {
	return &Global{baseNode: newBase(loc), Name: name, Type: t}
}

func (*Global) declNode() {}

// Alias is a `type name[T, ...] = Type` type-alias declaration.
type Alias struct {
	baseNode
	Name        *TypeName
	TypeParams  []TypeParam
	Type        Type
	Annotations []*Annotation
	Comment     *Comment
}

func NewAlias(loc *source.Location, name *TypeName, typeParams []TypeParam, t Type) *Alias {
	return &Alias{baseNode: newBase(loc), Name: name, TypeParams: typeParams, Type: t}
}

func (*Alias) declNode()   {}
func (*Alias) memberNode() {}

// Interface is an `interface _Name[T, ...] ... end` declaration.
type Interface struct {
	baseNode
	Name        *TypeName
	TypeParams  []TypeParam
	Members     []Member
	Annotations []*Annotation
	Comment     *Comment
}

func NewInterface(loc *source.Location, name *TypeName, typeParams []TypeParam, members []Member) *Interface {
	return &Interface{baseNode: newBase(loc), Name: name, TypeParams: typeParams, Members: members}
}

func (*Interface) declNode()   {}
func (*Interface) memberNode() {}

// Module is a `module Name[T, ...] : SelfType ... end` declaration.
// SelfTypes is the supplemented self-type constraint clause (see
// SPEC_FULL).
type Module struct {
	baseNode
	Name        *TypeName
	TypeParams  []TypeParam
	SelfTypes   []*ClassInstanceType
	Members     []Member
	Annotations []*Annotation
	Comment     *Comment
}

func NewModule(loc *source.Location, name *TypeName, typeParams []TypeParam, selfTypes []*ClassInstanceType, members []Member) *Module {
	return &Module{baseNode: newBase(loc), Name: name, TypeParams: typeParams, SelfTypes: selfTypes, Members: members}
}

func (*Module) declNode()   {}
func (*Module) memberNode() {}

// Class is a `class Name[T, ...] < Super ... end` declaration.
type Class struct {
	baseNode
	Name        *TypeName
	TypeParams  []TypeParam
	Super       *ClassInstanceType
	Members     []Member
	Annotations []*Annotation
	Comment     *Comment
}

func NewClass(loc *source.Location, name *TypeName, typeParams []TypeParam, super *ClassInstanceType, members []Member) *Class {
	return &Class{baseNode: newBase(loc), Name: name, TypeParams: typeParams, Super: super, Members: members}
}

func (*Class) declNode()   {}
func (*Class) memberNode() {}

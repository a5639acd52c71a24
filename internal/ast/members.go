package ast

import "github.com/sigparse/sig/internal/source"

// Member is implemented by everything that can appear in an interface,
// module or class body (§3 "Members").
type Member interface {
	Node
	memberNode()
}

// MethodKind distinguishes an instance method, a singleton (`self.`)
// method, or a method defined on both (`self?.`).
type MethodKind byte

const (
	MethodInstance MethodKind = iota
	MethodSingleton
	MethodSingletonInstance // `self?.`
)

// MethodDef is a method definition: one or more `|`-separated method
// types, an optional `...` overload marker (§4.6).
type MethodDef struct {
	baseNode
	Name        string
	Kind        MethodKind
	Types       []*MethodType
	Overload    bool
	Annotations []*Annotation
	Comment     *Comment
}

func NewMethodDef(loc *source.Location, name string, kind MethodKind, types []*MethodType, overload bool) *MethodDef {
	return &MethodDef{baseNode: newBase(loc), Name: name, Kind: kind, Types: types, Overload: overload}
}

func (*MethodDef) memberNode() {}

// VarKind distinguishes the three variable declaration shapes a module
// or class body accepts: `@ivar`, `@@cvar`, and `self.@ivar`.
type VarKind byte

const (
	VarInstance VarKind = iota
	VarClass
	VarClassInstance // `self.@ivar`
)

// Variable is an instance/class/class-instance variable declaration.
type Variable struct {
	baseNode
	Name string
	Kind VarKind
	Type Type
}

func NewVariable(loc *source.Location, name string, kind VarKind, t Type) *Variable {
	return &Variable{baseNode: newBase(loc), Name: name, Kind: kind, Type: t}
}

func (*Variable) memberNode() {}

// MixinKind distinguishes include/extend/prepend mixins.
type MixinKind byte

const (
	MixinInclude MixinKind = iota
	MixinExtend
	MixinPrepend
)

// Mixin is an include/extend/prepend member.
type Mixin struct {
	baseNode
	Kind        MixinKind
	Name        *TypeName
	Args        []Type
	Annotations []*Annotation
	Comment     *Comment
}

func NewMixin(loc *source.Location, kind MixinKind, name *TypeName, args []Type) *Mixin {
	return &Mixin{baseNode: newBase(loc), Kind: kind, Name: name, Args: args}
}

func (*Mixin) memberNode() {}

// AttrKind distinguishes attr_reader/attr_writer/attr_accessor.
type AttrKind byte

const (
	AttrReader AttrKind = iota
	AttrWriter
	AttrAccessor
)

// Attr is an attr_reader/writer/accessor declaration. IvarName is the
// explicit `(ivar_name)` clause's payload; IvarSkip records a bare `()`
// clause (meaning "no backing ivar"), distinct from neither clause being
// present at all (the zero value of both fields).
type Attr struct {
	baseNode
	Kind        AttrKind
	Singleton   bool
	Name        string
	IvarName    string
	IvarSkip    bool
	Type        Type
	Annotations []*Annotation
	Comment     *Comment
}

func NewAttr(loc *source.Location, kind AttrKind, singleton bool, name string, t Type) *Attr {
	return &Attr{baseNode: newBase(loc), Kind: kind, Singleton: singleton, Name: name, Type: t}
}

func (*Attr) memberNode() {}

// Visibility is a bare `public` or `private` marker member.
type Visibility struct {
	baseNode
	Public bool
}

func NewVisibility(loc *source.Location, public bool) *Visibility {
	return &Visibility{baseNode: newBase(loc), Public: public}
}

func (*Visibility) memberNode() {}

// MethodAlias is an `alias new_name old_name` member.
type MethodAlias struct {
	baseNode
	Singleton bool
	NewName   string
	OldName   string
}

func NewMethodAlias(loc *source.Location, singleton bool, newName, oldName string) *MethodAlias {
	return &MethodAlias{baseNode: newBase(loc), Singleton: singleton, NewName: newName, OldName: oldName}
}

func (*MethodAlias) memberNode() {}

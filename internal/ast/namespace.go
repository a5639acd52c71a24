package ast

import (
	"strings"
	"unicode"

	"github.com/sigparse/sig/internal/source"
)

// Namespace is the `::`-prefixed path of UIDENT segments preceding a
// name, e.g. the `::Foo::Bar` in `::Foo::Bar::baz`. Absolute records
// whether the path itself was introduced by a leading `::`.
type Namespace struct {
	Path     []string
	Absolute bool
}

// Kind classifies a TypeName by the syntactic case of its terminal
// identifier (§3 invariant): upper-initial names classes, underscore-
// upper names interfaces, lower-initial names aliases.
type Kind byte

const (
	KindClass Kind = iota
	KindInterface
	KindAlias
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindAlias:
		return "alias"
	default:
		return "unknown"
	}
}

// ClassifyName computes the Kind a bare identifier would carry if used as
// a type name's terminal segment, purely from its spelling. It is the
// single place that implements the §3 invariant "a TypeName's kind tag is
// determined solely by the case-class of its name" — callers never stamp
// a Kind by hand.
func ClassifyName(name string) Kind {
	if name == "" {
		return KindAlias
	}

	r := []rune(name)[0]
	switch {
	case r == '_' && len(name) > 1 && unicode.IsUpper([]rune(name)[1]):
		return KindInterface
	case unicode.IsUpper(r):
		return KindClass
	default:
		return KindAlias
	}
}

// TypeName is a namespace plus a simple terminal name, with its Kind
// stamped at construction time by ClassifyName.
type TypeName struct {
	baseNode
	Namespace Namespace
	Name      string
	Kind      Kind
}

// NewTypeName builds a TypeName, deriving its Kind from name's spelling.
func NewTypeName(loc *source.Location, ns Namespace, name string) *TypeName {
	return &TypeName{baseNode: newBase(loc), Namespace: ns, Name: name, Kind: ClassifyName(name)}
}

// String renders the fully-qualified name, e.g. "::Foo::Bar".
func (n *TypeName) String() string {
	var b strings.Builder
	if n.Namespace.Absolute {
		b.WriteString("::")
	}
	for _, seg := range n.Namespace.Path {
		b.WriteString(seg)
		b.WriteString("::")
	}
	b.WriteString(n.Name)

	return b.String()
}

// Package ast defines the closed set of AST node variants the parser
// constructs: types, functions, method types, declarations, members,
// annotations/comments and namespaces/type-names (§3). Each family is a
// small exported struct implementing a shared marker interface, built
// through ordinary Go constructor functions — the "thin factory
// interface" of §1 becomes these constructors, not a side-effecting
// object system.
package ast

import "github.com/sigparse/sig/internal/source"

// Node is implemented by every AST variant. Every node carries a
// Location whose range covers its full source span (§3 invariant).
type Node interface {
	Loc() *source.Location
}

// baseNode is embedded by every concrete node to provide Loc() and to
// keep the per-variant structs free of location bookkeeping.
type baseNode struct {
	loc *source.Location
}

// Loc returns the node's location.
func (n baseNode) Loc() *source.Location { return n.loc }

func newBase(loc *source.Location) baseNode { return baseNode{loc: loc} }

package ast

import "github.com/sigparse/sig/internal/source"

// Annotation is a source-level `%a{...}` marker attached to the
// following declaration.
type Annotation struct {
	baseNode
	String string
}

func NewAnnotation(loc *source.Location, s string) *Annotation {
	return &Annotation{baseNode: newBase(loc), String: s}
}

// Comment is a run of contiguous trailing line-comments attached to a
// declaration (§4.6's comment-attachment rule).
type Comment struct {
	baseNode
	String string
}

func NewComment(loc *source.Location, s string) *Comment {
	return &Comment{baseNode: newBase(loc), String: s}
}

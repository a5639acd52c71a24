package source

// Location attaches a primary Range to a Buffer plus two keyed sets of
// named sub-ranges: children that must be present (RequiredChildren) and
// children that may legitimately be absent (OptionalChildren, holding the
// null range in that case). Downstream tools use these to underline, say,
// the `name` versus the `args` of a parameterized type independently of
// the declaration's full span.
type Location struct {
	Buffer           *Buffer
	Range            Range
	RequiredChildren map[string]Range
	OptionalChildren map[string]Range
}

// NewLocation creates a Location with empty child maps.
func NewLocation(buf *Buffer, rng Range) *Location {
	return &Location{
		Buffer:           buf,
		Range:            rng,
		RequiredChildren: map[string]Range{},
		OptionalChildren: map[string]Range{},
	}
}

// WithRequired attaches a required sub-range under name and returns the
// receiver for chaining. It panics if rng is null: required children must
// always resolve to real source text (see SPEC_FULL §3 invariants).
func (l *Location) WithRequired(name string, rng Range) *Location {
	if rng.IsNull() {
		panic("source: required location child \"" + name + "\" must not be null")
	}

	l.RequiredChildren[name] = rng

	return l
}

// WithOptional attaches an optional sub-range under name, which may be
// the null range, and returns the receiver for chaining.
func (l *Location) WithOptional(name string, rng Range) *Location {
	l.OptionalChildren[name] = rng

	return l
}

// Required looks up a required sub-range by name. The second result is
// false if no child was ever attached under that name.
func (l *Location) Required(name string) (Range, bool) {
	r, ok := l.RequiredChildren[name]

	return r, ok
}

// Optional looks up an optional sub-range by name. A missing entry and an
// entry holding the null range both report the absence the same way to
// callers that only care "is this part of the source present".
func (l *Location) Optional(name string) (Range, bool) {
	r, ok := l.OptionalChildren[name]
	if !ok || r.IsNull() {
		return NullRange, false
	}

	return r, true
}

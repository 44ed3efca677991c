package types

import "strings"

// TypeName is an immutable, ordered tuple of identifier segments, e.g.
// ("UI", "Component", "Button") for a deeply nested enum variant, or just
// ("i32") for a primitive. Equality and hashing are structural: two
// TypeNames are equal iff their segment tuples are equal.
type TypeName struct {
	segments []string
}

// New builds a TypeName from one or more path segments.
func New(segments ...string) TypeName {
	cp := make([]string, len(segments))
	copy(cp, segments)
	return TypeName{segments: cp}
}

// Segments returns a copy of the path segments.
func (t TypeName) Segments() []string {
	out := make([]string, len(t.segments))
	copy(out, t.segments)
	return out
}

// Extend returns a new TypeName with segment appended.
func (t TypeName) Extend(segment string) TypeName {
	return New(append(append([]string{}, t.segments...), segment)...)
}

// Equal reports structural equality of the segment tuples.
func (t TypeName) Equal(other TypeName) bool {
	if len(t.segments) != len(other.segments) {
		return false
	}
	for i, s := range t.segments {
		if s != other.segments[i] {
			return false
		}
	}
	return true
}

// String joins the segments with "::", the display form used throughout
// diagnostics and the match-type dispatch.
func (t TypeName) String() string {
	return strings.Join(t.segments, "::")
}

// Key returns the canonical map key for this TypeName (equal TypeNames
// produce equal keys). Go slices aren't comparable, so registries keyed by
// TypeName use this string form rather than the struct itself.
func (t TypeName) Key() string { return t.String() }

// Primitive type names, the closed set every field/parameter type must
// ultimately resolve to or be a registered qualified type.
var (
	I32  = New("i32")
	F32  = New("f32")
	Bool = New("bool")
	Str  = New("str")
)

// IsPrimitive reports whether t names one of the four built-in primitives.
func IsPrimitive(t TypeName) bool {
	return t.Equal(I32) || t.Equal(F32) || t.Equal(Bool) || t.Equal(Str)
}

// ParsePath builds a TypeName from a type-expression path ["A","B","C"]
// as produced by walking an ast.TypeExpr chain.
func ParsePath(segments []string) TypeName {
	return New(segments...)
}

package ast

import "github.com/cwbudde/enumlang/token"

// NamedType is a single-segment type reference, e.g. "i32" or "Button".
type NamedType struct {
	Name *Identifier
	Loc  token.Location
}

func (t *NamedType) typeExprNode()          {}
func (t *NamedType) Location() token.Location { return t.Loc }
func (t *NamedType) String() string           { return t.Name.Name }

// QualifiedType is a left-associative "Parent::Name" type reference
// denoting a nested enum/struct path at a use site.
type QualifiedType struct {
	Parent TypeExpr
	Name   *Identifier
	Loc    token.Location
}

func (t *QualifiedType) typeExprNode()          {}
func (t *QualifiedType) Location() token.Location { return t.Loc }
func (t *QualifiedType) String() string {
	return t.Parent.String() + "::" + t.Name.Name
}

// TypeExprPath flattens a NamedType or QualifiedType chain into its
// ordered path segments, e.g. "A::B::C" -> ["A", "B", "C"]. Collectors,
// validators, and the evaluator all resolve a type-at-use-site the same
// way: flatten, then look the path up as a types.TypeName.
func TypeExprPath(t TypeExpr) []string {
	switch te := t.(type) {
	case *NamedType:
		return []string{te.Name.Name}
	case *QualifiedType:
		return append(TypeExprPath(te.Parent), te.Name.Name)
	default:
		return nil
	}
}

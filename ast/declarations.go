package ast

import (
	"strings"

	"github.com/cwbudde/enumlang/token"
)

// FieldDeclaration is one "name: Type;" member of a struct body.
type FieldDeclaration struct {
	Name         *Identifier
	DeclaredType TypeExpr
	Loc          token.Location
}

func (f *FieldDeclaration) Location() token.Location { return f.Loc }
func (f *FieldDeclaration) String() string {
	return f.Name.Name + ": " + f.DeclaredType.String() + ";"
}

// StructDeclaration declares a struct type, either at module top level or
// nested as an enum variant.
type StructDeclaration struct {
	Name   *Identifier
	Fields []*FieldDeclaration
	Loc    token.Location
}

func (s *StructDeclaration) variantNode()            {}
func (s *StructDeclaration) Location() token.Location { return s.Loc }
func (s *StructDeclaration) String() string {
	var sb strings.Builder
	sb.WriteString("struct ")
	sb.WriteString(s.Name.Name)
	sb.WriteString(" {")
	for _, f := range s.Fields {
		sb.WriteString(" ")
		sb.WriteString(f.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// EnumDeclaration declares an enum type: a named grouping of struct/enum
// variants, either at module top level or nested inside another enum.
type EnumDeclaration struct {
	Name     *Identifier
	Variants []Variant
	Loc      token.Location
}

func (e *EnumDeclaration) variantNode()            {}
func (e *EnumDeclaration) Location() token.Location { return e.Loc }
func (e *EnumDeclaration) String() string {
	var sb strings.Builder
	sb.WriteString("enum ")
	sb.WriteString(e.Name.Name)
	sb.WriteString(" { ")
	for _, v := range e.Variants {
		sb.WriteString(v.String())
		sb.WriteString("; ")
	}
	sb.WriteString("}")
	return sb.String()
}

// Parameter is one "mut? name: Type" entry in a function's parameter list.
type Parameter struct {
	Name         *Identifier
	Mutable      bool
	DeclaredType TypeExpr
	Loc          token.Location
}

func (p *Parameter) Location() token.Location { return p.Loc }
func (p *Parameter) String() string {
	prefix := ""
	if p.Mutable {
		prefix = "mut "
	}
	return prefix + p.Name.Name + ": " + p.DeclaredType.String()
}

// FunctionDeclaration declares a top-level function.
type FunctionDeclaration struct {
	Name       *Identifier
	Parameters []*Parameter
	Returns    TypeExpr // nil for a void function
	Body       *Block
	Loc        token.Location
}

func (f *FunctionDeclaration) Location() token.Location { return f.Loc }
func (f *FunctionDeclaration) String() string {
	var sb strings.Builder
	sb.WriteString("fn ")
	sb.WriteString(f.Name.Name)
	sb.WriteString("(")
	for i, p := range f.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	if f.Returns != nil {
		sb.WriteString(" -> ")
		sb.WriteString(f.Returns.String())
	}
	sb.WriteString(" ")
	sb.WriteString(f.Body.String())
	return sb.String()
}

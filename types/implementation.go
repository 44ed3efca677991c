package types

import "github.com/cwbudde/enumlang/token"

// TypeImplementation is the registered, resolved form of a declared type:
// either a StructImplementation or an EnumImplementation, a closed union.
type TypeImplementation interface {
	TypeName() TypeName
	// DeclaredAt returns the source position of the declaration's name,
	// so a redeclaration can be reported at the colliding declaration
	// itself, however deeply it is nested.
	DeclaredAt() token.Position
	implementationNode()
}

// StructImplementation is a resolved struct type: its qualified name and
// its fields in declaration order, each resolved to a registered TypeName.
type StructImplementation struct {
	Name         TypeName
	Fields       *OrderedMap[TypeName]
	DeclaringPos token.Position
}

func (s *StructImplementation) TypeName() TypeName         { return s.Name }
func (s *StructImplementation) DeclaredAt() token.Position { return s.DeclaringPos }
func (s *StructImplementation) implementationNode()        {}

// EnumImplementation is a resolved enum type: its qualified name and its
// variants (each itself a TypeImplementation) in declaration order.
type EnumImplementation struct {
	Name         TypeName
	Variants     *OrderedMap[TypeImplementation]
	DeclaringPos token.Position
}

func (e *EnumImplementation) TypeName() TypeName         { return e.Name }
func (e *EnumImplementation) DeclaredAt() token.Position { return e.DeclaringPos }
func (e *EnumImplementation) implementationNode()        {}

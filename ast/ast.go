// Package ast defines the abstract syntax tree produced by the parser.
//
// Every node is immutable once built and carries a token.Location spanning
// its first to last token. Node families are closed tagged unions
// expressed as Go interfaces with an unexported marker method, matched
// exhaustively by type switch in the collector, validator, and evaluator.
package ast

import "github.com/cwbudde/enumlang/token"

// Node is implemented by every AST node.
type Node interface {
	// Location returns the source range the node was parsed from.
	Location() token.Location
	// String renders the node for debugging/printing, not for re-parsing.
	String() string
}

// Expression is a Node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a Node that performs an action within a function body.
type Statement interface {
	Node
	statementNode()
}

// TypeExpr is a type reference at a use site: a single identifier (NamedType)
// or a left-associative '::' chain (QualifiedType). Kept distinct from the
// expression-level Name/Access nodes used to read values.
type TypeExpr interface {
	Node
	typeExprNode()
}

// Variant is implemented by StructDeclaration and EnumDeclaration: the two
// shapes an enum's variant body, or a module's top-level declaration, can
// take.
type Variant interface {
	Node
	variantNode()
}

// Identifier is a bare name token, shared by declarations, parameters, and
// both expression- and type-level name nodes.
type Identifier struct {
	Name string
	Tok  token.Token
}

func (id *Identifier) Location() token.Location {
	return token.Location{Begin: id.Tok.Pos, End: id.Tok.End()}
}
func (id *Identifier) String() string { return id.Name }

// Module is the root of the tree: every declaration in a translation unit.
//
// ID is never set by the parser; it is an opaque correlation token the
// CLI stamps onto a freshly parsed Module for its own diagnostics (run
// logs, trace output). Nothing in this package or the evaluator reads
// it.
type Module struct {
	Functions []*FunctionDeclaration
	Structs   []*StructDeclaration
	Enums     []*EnumDeclaration
	Loc       token.Location
	ID        string
}

func (m *Module) Location() token.Location { return m.Loc }
func (m *Module) String() string {
	s := ""
	for _, d := range m.Structs {
		s += d.String() + "\n"
	}
	for _, d := range m.Enums {
		s += d.String() + "\n"
	}
	for _, d := range m.Functions {
		s += d.String() + "\n"
	}
	return s
}

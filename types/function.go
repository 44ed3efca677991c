package types

import (
	"github.com/cwbudde/enumlang/token"
)

// Param is one resolved parameter of a FunctionImplementation.
type Param struct {
	Mutable bool
	Type    TypeName
}

// FunctionImplementation is the registered, resolved form of a function
// declaration: its parameter list (ordered, resolved types), optional
// return type, and body. The body is stored as an opaque node so this
// package has no dependency on ast; interp type-asserts it back.
type FunctionImplementation struct {
	Name         TypeName
	Parameters   *OrderedMap[Param]
	ReturnType   *TypeName // nil for a void function
	Body         any       // *ast.Block
	DeclaringPos token.Position
}

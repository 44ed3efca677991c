package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/enumlang/token"
)

// BinaryOp is the operator tag for a BinaryOperation ("+ - * /").
type BinaryOp string

const (
	Add BinaryOp = "+"
	Sub BinaryOp = "-"
	Mul BinaryOp = "*"
	Div BinaryOp = "/"
)

// BoolOp is the operator tag for a BoolOperation ("&& ||").
type BoolOp string

const (
	And BoolOp = "&&"
	Or  BoolOp = "||"
)

// CompareMode is the operator tag for a Compare expression ("== != < >").
type CompareMode string

const (
	CompareEq    CompareMode = "=="
	CompareNotEq CompareMode = "!="
	CompareLt    CompareMode = "<"
	CompareGt    CompareMode = ">"
)

// UnaryOp is the operator tag for a UnaryOperation ("- !").
type UnaryOp string

const (
	Neg UnaryOp = "-"
	Not UnaryOp = "!"
)

// Constant is a literal value lifted directly from a token: an int, float,
// bool, or string literal. TypeName is the literal's primitive kind,
// one of "i32", "f32", "bool", "str".
type Constant struct {
	Raw      string // literal text as scanned, for integers/floats
	Bool     bool
	TypeName string
	Loc      token.Location
}

func (c *Constant) expressionNode()        {}
func (c *Constant) Location() token.Location { return c.Loc }
func (c *Constant) String() string {
	if c.TypeName == "bool" {
		return fmt.Sprintf("%v", c.Bool)
	}
	return c.Raw
}

// Name reads a variable's current value from the frame chain.
type Name struct {
	Identifier *Identifier
	Loc        token.Location
}

func (n *Name) expressionNode()        {}
func (n *Name) Location() token.Location { return n.Loc }
func (n *Name) String() string           { return n.Identifier.Name }

// Access is a left-associative "parent.name" dot field read.
type Access struct {
	Parent Expression
	Name   *Identifier
	Loc    token.Location
}

func (a *Access) expressionNode()        {}
func (a *Access) Location() token.Location { return a.Loc }
func (a *Access) String() string           { return a.Parent.String() + "." + a.Name.Name }

// UnaryOperation is a prefix "-x" or "!x" expression.
type UnaryOperation struct {
	Op      UnaryOp
	Operand Expression
	Loc     token.Location
}

func (u *UnaryOperation) expressionNode()        {}
func (u *UnaryOperation) Location() token.Location { return u.Loc }
func (u *UnaryOperation) String() string {
	return string(u.Op) + u.Operand.String()
}

// BinaryOperation is a "left OP right" arithmetic expression ("+ - * /").
type BinaryOperation struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
	Loc   token.Location
}

func (b *BinaryOperation) expressionNode()        {}
func (b *BinaryOperation) Location() token.Location { return b.Loc }
func (b *BinaryOperation) String() string {
	return "(" + b.Left.String() + " " + string(b.Op) + " " + b.Right.String() + ")"
}

// BoolOperation is a "left && right" or "left || right" expression,
// evaluated strictly: no short-circuiting.
type BoolOperation struct {
	Op    BoolOp
	Left  Expression
	Right Expression
	Loc   token.Location
}

func (b *BoolOperation) expressionNode()        {}
func (b *BoolOperation) Location() token.Location { return b.Loc }
func (b *BoolOperation) String() string {
	return "(" + b.Left.String() + " " + string(b.Op) + " " + b.Right.String() + ")"
}

// Compare is a "left == right" / "!=" / "<" / ">" relational expression.
// The grammar allows at most one per chain.
type Compare struct {
	Mode  CompareMode
	Left  Expression
	Right Expression
	Loc   token.Location
}

func (c *Compare) expressionNode()        {}
func (c *Compare) Location() token.Location { return c.Loc }
func (c *Compare) String() string {
	return "(" + c.Left.String() + " " + string(c.Mode) + " " + c.Right.String() + ")"
}

// Cast is a "value as Type" expression.
type Cast struct {
	Value  Expression
	ToType TypeExpr
	Loc    token.Location
}

func (c *Cast) expressionNode()        {}
func (c *Cast) Location() token.Location { return c.Loc }
func (c *Cast) String() string            { return c.Value.String() + " as " + c.ToType.String() }

// IsCompare is a "value is Type" runtime type test.
type IsCompare struct {
	Value  Expression
	IsType TypeExpr
	Loc    token.Location
}

func (i *IsCompare) expressionNode()        {}
func (i *IsCompare) Location() token.Location { return i.Loc }
func (i *IsCompare) String() string           { return i.Value.String() + " is " + i.IsType.String() }

// FnCall is a "name(args...)" call, used both as an expression and (via
// ExpressionStatement) as a statement.
type FnCall struct {
	Name      *Identifier
	Arguments []Expression
	Loc       token.Location
}

func (f *FnCall) expressionNode()        {}
func (f *FnCall) Location() token.Location { return f.Loc }
func (f *FnCall) String() string {
	args := make([]string, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = a.String()
	}
	return f.Name.Name + "(" + strings.Join(args, ", ") + ")"
}

// FieldAssignment is one "name: value" entry of a NewStruct literal.
type FieldAssignment struct {
	Name  *Identifier
	Value Expression
	Loc   token.Location
}

func (f *FieldAssignment) Location() token.Location { return f.Loc }
func (f *FieldAssignment) String() string           { return f.Name.Name + ": " + f.Value.String() }

// NewStruct constructs a value of a named struct type from field
// assignments, used both as an expression and as a statement.
type NewStruct struct {
	Variant     TypeExpr
	Assignments []*FieldAssignment
	Loc         token.Location
}

func (n *NewStruct) expressionNode()        {}
func (n *NewStruct) Location() token.Location { return n.Loc }
func (n *NewStruct) String() string {
	parts := make([]string, len(n.Assignments))
	for i, a := range n.Assignments {
		parts[i] = a.String()
	}
	return n.Variant.String() + " { " + strings.Join(parts, ", ") + " }"
}

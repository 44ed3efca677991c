// Package errors defines the typed, location-bearing error taxonomy used
// by every stage of the interpreter (lex, parse, collect, validate, run),
// plus a source-context formatter for terminal diagnostics: a
// "file:line:col" header, the offending source line, and a caret
// pointing at the column.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/enumlang/token"
)

// Kind categorizes an Error for programmatic handling: syntactic,
// static-semantic, or runtime failures.
type Kind string

const (
	KindSyntax        Kind = "syntax"
	KindRedeclaration Kind = "redeclaration"
	KindUnknown       Kind = "unknown"
	KindArity         Kind = "arity"
	KindStructLiteral Kind = "struct_literal"
	KindReturn        Kind = "return"
	KindRuntime       Kind = "runtime"
)

// Error is a single typed, position-bearing failure. Every stage of the
// pipeline returns *Error (wrapped in the standard `error` interface) on
// failure rather than panicking: an error aborts the current top-level
// operation and surfaces to the embedder.
type Error struct {
	Kind    Kind
	Code    string // machine-readable, e.g. "E_TYPE_REDECLARATION"
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

func newErr(kind Kind, code string, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// --- Syntactic errors ---

func ExpectedToken(pos token.Position, want, got string) *Error {
	return newErr(KindSyntax, "E_EXPECTED_TOKEN", pos, "expected %s, found %s", want, got)
}

func ExpectedName(pos token.Position, got string) *Error {
	return newErr(KindSyntax, "E_EXPECTED_NAME", pos, "expected name, found %s", got)
}

func ExpectedType(pos token.Position, got string) *Error {
	return newErr(KindSyntax, "E_EXPECTED_TYPE", pos, "expected type, found %s", got)
}

func ExpectedBrace(pos token.Position, want, got string) *Error {
	return newErr(KindSyntax, "E_EXPECTED_BRACE", pos, "expected %q, found %s", want, got)
}

func ExpectedColon(pos token.Position, got string) *Error {
	return newErr(KindSyntax, "E_EXPECTED_COLON", pos, "expected ':', found %s", got)
}

func ExpectedSemicolon(pos token.Position, got string) *Error {
	return newErr(KindSyntax, "E_EXPECTED_SEMICOLON", pos, "expected ';', found %s", got)
}

func UnexpectedEOF(pos token.Position) *Error {
	return newErr(KindSyntax, "E_UNEXPECTED_EOF", pos, "unexpected end of input")
}

func ExpectedExpression(pos token.Position, got string) *Error {
	return newErr(KindSyntax, "E_EXPECTED_EXPRESSION", pos, "syntax error: expected expression, found %s", got)
}

func IllegalChainedComparison(pos token.Position) *Error {
	return newErr(KindSyntax, "E_CHAINED_COMPARISON", pos, "illegal chained comparison")
}

func TrailingComma(pos token.Position) *Error {
	return newErr(KindSyntax, "E_TRAILING_COMMA", pos, "trailing comma is not allowed")
}

// --- Static semantic errors ---

func TypeRedeclaration(pos token.Position, name string) *Error {
	return newErr(KindRedeclaration, "E_TYPE_REDECLARATION", pos, "type %q is already declared", name)
}

func FunctionRedeclaration(pos token.Position, name string) *Error {
	return newErr(KindRedeclaration, "E_FUNCTION_REDECLARATION", pos, "function %q is already declared", name)
}

func UnknownType(pos token.Position, name string) *Error {
	return newErr(KindUnknown, "E_UNKNOWN_TYPE", pos, "unknown type %q", name)
}

func UnknownFunction(pos token.Position, name string) *Error {
	return newErr(KindUnknown, "E_UNKNOWN_FUNCTION", pos, "unknown function %q", name)
}

func ArityMismatch(pos token.Position, name string, want, got int) *Error {
	return newErr(KindArity, "E_ARITY_MISMATCH", pos, "function %q expects %d argument(s), got %d", name, want, got)
}

func UnknownField(pos token.Position, structName, field string) *Error {
	return newErr(KindStructLiteral, "E_UNKNOWN_FIELD", pos, "%q is not a field of struct %q", field, structName)
}

func MissingField(pos token.Position, structName, field string) *Error {
	return newErr(KindStructLiteral, "E_MISSING_FIELD", pos, "missing field %q of struct %q", field, structName)
}

func RedundantField(pos token.Position, structName, field string) *Error {
	return newErr(KindStructLiteral, "E_REDUNDANT_FIELD", pos, "field %q of struct %q assigned more than once", field, structName)
}

func NotAStruct(pos token.Position, name string) *Error {
	return newErr(KindStructLiteral, "E_NOT_A_STRUCT", pos, "%q does not name a struct type", name)
}

func ReturnTypeMismatch(pos token.Position, want, got string) *Error {
	return newErr(KindReturn, "E_RETURN_TYPE_MISMATCH", pos, "expected return type %s, got %s", want, got)
}

func MissingReturn(pos token.Position, fn string) *Error {
	return newErr(KindReturn, "E_MISSING_RETURN", pos, "function %q must return a value on every path", fn)
}

func UnexpectedReturnValue(pos token.Position, fn string) *Error {
	return newErr(KindReturn, "E_UNEXPECTED_RETURN_VALUE", pos, "void function %q must not return a value", fn)
}

// --- Runtime semantic errors ---

func UnboundName(pos token.Position, name string) *Error {
	return newErr(KindRuntime, "E_UNBOUND_NAME", pos, "unbound name %q", name)
}

func ImmutableAssignment(pos token.Position, name string) *Error {
	return newErr(KindRuntime, "E_IMMUTABLE_ASSIGNMENT", pos, "cannot assign to immutable binding %q", name)
}

func TypeMismatch(pos token.Position, want, got string) *Error {
	return newErr(KindRuntime, "E_TYPE_MISMATCH", pos, "expected type %s, got %s", want, got)
}

func OperationUndefined(pos token.Position, op, left, right string) *Error {
	if right == "" {
		return newErr(KindRuntime, "E_OPERATION_UNDEFINED", pos, "operation %q is not defined for %s", op, left)
	}
	return newErr(KindRuntime, "E_OPERATION_UNDEFINED", pos, "operation %q is not defined for %s, %s", op, left, right)
}

func NonExhaustiveMatch(pos token.Position, subjectType string) *Error {
	return newErr(KindRuntime, "E_NON_EXHAUSTIVE_MATCH", pos, "match is not exhaustive for value of type %s", subjectType)
}

func DivisionByZero(pos token.Position) *Error {
	return newErr(KindRuntime, "E_DIVISION_BY_ZERO", pos, "division by zero")
}

func FieldNotFound(pos token.Position, field string) *Error {
	return newErr(KindRuntime, "E_FIELD_NOT_FOUND", pos, "no such field %q", field)
}

func VariableRedeclaration(pos token.Position, name string) *Error {
	return newErr(KindRuntime, "E_VARIABLE_REDECLARATION", pos, "%q is already declared in this scope", name)
}

func MissingTypeOrInitializer(pos token.Position, name string) *Error {
	return newErr(KindRuntime, "E_MISSING_TYPE_OR_INITIALIZER", pos, "variable %q needs a declared type or an initializer", name)
}

func NoDefaultForAggregate(pos token.Position, typeName string) *Error {
	return newErr(KindStructLiteral, "E_NO_DEFAULT_FOR_AGGREGATE", pos, "type %q has no default value; all its fields must be given explicitly", typeName)
}

// Format renders err with a source-line-and-caret diagnostic: a
// "file:line:col" header, the offending line of source, and a caret
// under the column.
func Format(err *Error, source, filename string) string {
	var sb strings.Builder

	if filename != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: %s\n", filename, err.Pos.Line, err.Pos.Column, err.Message)
	} else {
		fmt.Fprintf(&sb, "%d:%d: %s\n", err.Pos.Line, err.Pos.Column, err.Message)
	}

	lines := strings.Split(source, "\n")
	if err.Pos.Line >= 1 && err.Pos.Line <= len(lines) {
		line := lines[err.Pos.Line-1]
		gutter := fmt.Sprintf("%4d | ", err.Pos.Line)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := err.Pos.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(gutter)+col-1))
		sb.WriteString("^")
	}

	return sb.String()
}

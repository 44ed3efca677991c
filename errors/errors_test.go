package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/enumlang/token"
)

func TestConstructorsSetKindCodeAndMessage(t *testing.T) {
	pos := token.Position{Line: 3, Column: 7}

	tests := []struct {
		name     string
		err      *Error
		wantKind Kind
		wantCode string
	}{
		{"UnknownType", UnknownType(pos, "Foo"), KindUnknown, "E_UNKNOWN_TYPE"},
		{"ArityMismatch", ArityMismatch(pos, "f", 2, 1), KindArity, "E_ARITY_MISMATCH"},
		{"MissingReturn", MissingReturn(pos, "f"), KindReturn, "E_MISSING_RETURN"},
		{"NotAStruct", NotAStruct(pos, "Foo"), KindStructLiteral, "E_NOT_A_STRUCT"},
		{"DivisionByZero", DivisionByZero(pos), KindRuntime, "E_DIVISION_BY_ZERO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", tt.err.Kind, tt.wantKind)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", tt.err.Code, tt.wantCode)
			}
			if tt.err.Pos != pos {
				t.Errorf("Pos = %s, want %s", tt.err.Pos, pos)
			}
		})
	}
}

func TestOperationUndefinedOmitsRightWhenUnary(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1}
	binary := OperationUndefined(pos, "+", "i32", "str")
	if !strings.Contains(binary.Message, "i32, str") {
		t.Errorf("binary message missing both operands: %q", binary.Message)
	}
	unary := OperationUndefined(pos, "-", "bool", "")
	if strings.Contains(unary.Message, ",") {
		t.Errorf("unary message should not mention a second operand: %q", unary.Message)
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = UnboundName(token.Position{Line: 2, Column: 4}, "x")
	if !strings.Contains(err.Error(), "2:4") {
		t.Errorf("Error() = %q, want it to mention the position", err.Error())
	}
}

func TestFormatRendersSourceLineAndCaret(t *testing.T) {
	source := "let x = 1;\nlet y = x + true;\n"
	err := TypeMismatch(token.Position{Line: 2, Column: 9}, "i32", "bool")

	out := Format(err, source, "prog.enl")

	if !strings.Contains(out, "prog.enl:2:9:") {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, "let y = x + true;") {
		t.Errorf("missing source line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret: %q", out)
	}
}

func TestFormatWithoutFilenameOmitsItFromHeader(t *testing.T) {
	err := UnboundName(token.Position{Line: 1, Column: 1}, "x")
	out := Format(err, "x;", "")
	if strings.Contains(out, ".enl") {
		t.Errorf("unexpected filename in header: %q", out)
	}
	if !strings.HasPrefix(out, "1:1:") {
		t.Errorf("expected header to start with position, got %q", out)
	}
}

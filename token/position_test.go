package token

import "testing"

func TestPositionBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want bool
	}{
		{"earlier line", Position{1, 5}, Position{2, 1}, true},
		{"same line earlier column", Position{3, 1}, Position{3, 4}, true},
		{"equal", Position{2, 2}, Position{2, 2}, false},
		{"later line", Position{4, 1}, Position{3, 9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.want {
				t.Errorf("Before(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNewLocationRejectsInvalidRange(t *testing.T) {
	if _, err := NewLocation(Position{0, 1}, Position{1, 1}); err == nil {
		t.Error("expected error for invalid begin position")
	}
	if _, err := NewLocation(Position{2, 1}, Position{1, 1}); err == nil {
		t.Error("expected error for end before begin")
	}
	loc, err := NewLocation(Position{1, 1}, Position{1, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Begin != (Position{1, 1}) || loc.End != (Position{1, 5}) {
		t.Errorf("got %+v", loc)
	}
}

func TestSpanCoversBothLocations(t *testing.T) {
	a := Location{Begin: Position{1, 1}, End: Position{1, 3}}
	b := Location{Begin: Position{2, 1}, End: Position{2, 9}}
	got := Span(a, b)
	want := Location{Begin: Position{1, 1}, End: Position{2, 9}}
	if got != want {
		t.Errorf("Span(a, b) = %+v, want %+v", got, want)
	}
}

func TestKindLookupAndClassification(t *testing.T) {
	if LookupIdent("fn") != FN {
		t.Error("fn should lex as keyword FN")
	}
	if LookupIdent("circle") != IDENT {
		t.Error("circle should lex as IDENT")
	}
	if !I32.IsPrimitiveTypeName() {
		t.Error("I32 should be a primitive type name")
	}
	if IDENT.IsPrimitiveTypeName() {
		t.Error("IDENT should not be a primitive type name")
	}
	if !FN.IsKeyword() {
		t.Error("FN should be a keyword")
	}
	if !INT.IsLiteral() {
		t.Error("INT should be a literal kind")
	}
}

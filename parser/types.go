package parser

import (
	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/token"
)

// expectTypeName accepts an identifier or one of the four primitive
// type-name keywords (i32, f32, bool, str): they lex as their own Kind,
// not IDENT, but are valid names at a type use site.
// Declaration-name positions (structs, fields, bindings) keep using the
// stricter expectName, which does not accept these keywords.
func (p *Parser) expectTypeName() (*ast.Identifier, error) {
	if p.cur.Kind != token.IDENT && !p.cur.Kind.IsPrimitiveTypeName() {
		return nil, errors.ExpectedType(p.cur.Pos, p.describeCur())
	}
	tok := p.Consume()
	return &ast.Identifier{Name: tok.Literal, Tok: tok}, nil
}

// parseTypePath parses `NAME ('::' NAME)*`: a single identifier yields
// *ast.NamedType, more than one yields a left-associative
// *ast.QualifiedType chain.
func (p *Parser) parseTypePath() (ast.TypeExpr, error) {
	begin := p.cur.Pos
	first, err := p.expectTypeName()
	if err != nil {
		return nil, err
	}

	var expr ast.TypeExpr = &ast.NamedType{Name: first, Loc: span(begin, p.prevEnd)}

	for {
		if _, ok := p.ConsumeIf(token.COLONCOLON); !ok {
			break
		}
		name, err := p.expectTypeName()
		if err != nil {
			return nil, err
		}
		expr = &ast.QualifiedType{Parent: expr, Name: name, Loc: span(begin, p.prevEnd)}
	}

	return expr, nil
}

// span builds a Location from begin to end, falling back to a
// zero-width location at begin if end precedes it; the parser only
// calls this with monotonically advancing tokens.
func span(begin, end token.Position) token.Location {
	loc, err := token.NewLocation(begin, end)
	if err != nil {
		return token.Location{Begin: begin, End: begin}
	}
	return loc
}

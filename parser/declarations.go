package parser

import (
	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/token"
)

// parseFieldDeclaration parses `NAME ':' type ';'`.
func (p *Parser) parseFieldDeclaration() (*ast.FieldDeclaration, error) {
	begin := p.cur.Pos
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.COLON); err != nil {
		return nil, errors.ExpectedColon(p.cur.Pos, p.describeCur())
	}
	declaredType, err := p.parseTypePath()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.SEMICOLON); err != nil {
		return nil, errors.ExpectedSemicolon(p.cur.Pos, p.describeCur())
	}
	return &ast.FieldDeclaration{Name: name, DeclaredType: declaredType, Loc: span(begin, p.prevEnd)}, nil
}

// parseStructDeclaration parses `struct NAME { FieldDeclaration* }`.
func (p *Parser) parseStructDeclaration() (*ast.StructDeclaration, error) {
	begin := p.cur.Pos
	if _, err := p.Expect(token.STRUCT); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.LBRACE); err != nil {
		return nil, errors.ExpectedBrace(p.cur.Pos, "{", p.describeCur())
	}

	var fields []*ast.FieldDeclaration
	for p.cur.Kind != token.RBRACE {
		if p.cur.Kind == token.EOF {
			return nil, errors.UnexpectedEOF(p.cur.Pos)
		}
		f, err := p.parseFieldDeclaration()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if _, err := p.Expect(token.RBRACE); err != nil {
		return nil, errors.ExpectedBrace(p.cur.Pos, "}", p.describeCur())
	}

	return &ast.StructDeclaration{Name: name, Fields: fields, Loc: span(begin, p.prevEnd)}, nil
}

// parseEnumDeclaration parses
// `enum NAME { (StructDeclaration | EnumDeclaration) ';' ... }`.
// Variants are separated by ';'; the body may be empty. Nested
// enums/structs recurse through this same pair of methods.
func (p *Parser) parseEnumDeclaration() (*ast.EnumDeclaration, error) {
	begin := p.cur.Pos
	if _, err := p.Expect(token.ENUM); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.LBRACE); err != nil {
		return nil, errors.ExpectedBrace(p.cur.Pos, "{", p.describeCur())
	}

	var variants []ast.Variant
	for p.cur.Kind != token.RBRACE {
		var v ast.Variant
		switch p.cur.Kind {
		case token.STRUCT:
			v, err = p.parseStructDeclaration()
		case token.ENUM:
			v, err = p.parseEnumDeclaration()
		case token.EOF:
			return nil, errors.UnexpectedEOF(p.cur.Pos)
		default:
			return nil, errors.ExpectedToken(p.cur.Pos, "'struct' or 'enum'", p.describeCur())
		}
		if err != nil {
			return nil, err
		}
		if _, err := p.Expect(token.SEMICOLON); err != nil {
			return nil, errors.ExpectedSemicolon(p.cur.Pos, p.describeCur())
		}
		variants = append(variants, v)
	}
	if _, err := p.Expect(token.RBRACE); err != nil {
		return nil, errors.ExpectedBrace(p.cur.Pos, "}", p.describeCur())
	}

	return &ast.EnumDeclaration{Name: name, Variants: variants, Loc: span(begin, p.prevEnd)}, nil
}

// parseParameter parses `'mut'? NAME ':' type`.
func (p *Parser) parseParameter() (*ast.Parameter, error) {
	begin := p.cur.Pos
	_, mutable := p.ConsumeIf(token.MUT)
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.COLON); err != nil {
		return nil, errors.ExpectedColon(p.cur.Pos, p.describeCur())
	}
	declaredType, err := p.parseTypePath()
	if err != nil {
		return nil, err
	}
	return &ast.Parameter{Name: name, Mutable: mutable, DeclaredType: declaredType, Loc: span(begin, p.prevEnd)}, nil
}

// parseFunctionDeclaration parses
// `fn NAME '(' parameters? ')' ('->' type)? block`.
func (p *Parser) parseFunctionDeclaration() (*ast.FunctionDeclaration, error) {
	begin := p.cur.Pos
	if _, err := p.Expect(token.FN); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.LPAREN); err != nil {
		return nil, errors.ExpectedToken(p.cur.Pos, "'('", p.describeCur())
	}

	var params []*ast.Parameter
	if p.cur.Kind != token.RPAREN {
		for {
			param, err := p.parseParameter()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if _, ok := p.ConsumeIf(token.COMMA); !ok {
				break
			}
			// A comma must be followed by another parameter: trailing
			// commas are rejected.
			if p.cur.Kind == token.RPAREN {
				return nil, errors.TrailingComma(p.cur.Pos)
			}
		}
	}
	if _, err := p.Expect(token.RPAREN); err != nil {
		return nil, errors.ExpectedToken(p.cur.Pos, "')'", p.describeCur())
	}

	var returns ast.TypeExpr
	if _, ok := p.ConsumeIf(token.ARROW); ok {
		returns, err = p.parseTypePath()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDeclaration{
		Name:       name,
		Parameters: params,
		Returns:    returns,
		Body:       body,
		Loc:        span(begin, p.prevEnd),
	}, nil
}

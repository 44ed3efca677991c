package parser

import (
	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/token"
)

// parseExpression enters the precedence chain at its lowest level, OR.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseOr()
}

// parseOr: `and_expr ('||' and_expr)*`, left-associative.
func (p *Parser) parseOr() (ast.Expression, error) {
	begin := p.cur.Pos
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.ConsumeIf(token.OR_OR); !ok {
			return left, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BoolOperation{Op: ast.Or, Left: left, Right: right, Loc: span(begin, p.prevEnd)}
	}
}

// parseAnd: `rel ('&&' rel)*`.
func (p *Parser) parseAnd() (ast.Expression, error) {
	begin := p.cur.Pos
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.ConsumeIf(token.AND_AND); !ok {
			return left, nil
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = &ast.BoolOperation{Op: ast.And, Left: left, Right: right, Loc: span(begin, p.prevEnd)}
	}
}

var compareModes = map[token.Kind]ast.CompareMode{
	token.EQ:     ast.CompareEq,
	token.NOT_EQ: ast.CompareNotEq,
	token.LT:     ast.CompareLt,
	token.GT:     ast.CompareGt,
}

// parseRelational: `add ( ('==' | '!=' | '<' | '>') add )?`,
// non-associative: a second comparison operator in the same chain is a
// syntax error.
func (p *Parser) parseRelational() (ast.Expression, error) {
	begin := p.cur.Pos
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	mode, ok := compareModes[p.cur.Kind]
	if !ok {
		return left, nil
	}
	p.Consume()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	result := ast.Expression(&ast.Compare{Mode: mode, Left: left, Right: right, Loc: span(begin, p.prevEnd)})

	if _, chained := compareModes[p.cur.Kind]; chained {
		return nil, errors.IllegalChainedComparison(p.cur.Pos)
	}
	return result, nil
}

// parseAdditive: `mul ( ('+' | '-') mul )*`.
func (p *Parser) parseAdditive() (ast.Expression, error) {
	begin := p.cur.Pos
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur.Kind {
		case token.PLUS:
			op = ast.Add
		case token.MINUS:
			op = ast.Sub
		default:
			return left, nil
		}
		p.Consume()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOperation{Op: op, Left: left, Right: right, Loc: span(begin, p.prevEnd)}
	}
}

// parseMultiplicative: `unary ( ('*' | '/') unary )*`.
func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	begin := p.cur.Pos
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur.Kind {
		case token.ASTERISK:
			op = ast.Mul
		case token.SLASH:
			op = ast.Div
		default:
			return left, nil
		}
		p.Consume()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOperation{Op: op, Left: left, Right: right, Loc: span(begin, p.prevEnd)}
	}
}

// parseUnary: `('-' | '!')? cast`.
func (p *Parser) parseUnary() (ast.Expression, error) {
	begin := p.cur.Pos
	var op ast.UnaryOp
	switch p.cur.Kind {
	case token.MINUS:
		op = ast.Neg
	case token.BANG:
		op = ast.Not
	default:
		return p.parseCastOrIs()
	}
	p.Consume()
	operand, err := p.parseCastOrIs()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOperation{Op: op, Operand: operand, Loc: span(begin, p.prevEnd)}, nil
}

// parseCastOrIs: `term ('as' type | 'is' type)?`, postfix, at most one.
func (p *Parser) parseCastOrIs() (ast.Expression, error) {
	begin := p.cur.Pos
	value, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	switch p.cur.Kind {
	case token.AS:
		p.Consume()
		toType, err := p.parseTypePath()
		if err != nil {
			return nil, err
		}
		return &ast.Cast{Value: value, ToType: toType, Loc: span(begin, p.prevEnd)}, nil
	case token.IS:
		p.Consume()
		isType, err := p.parseTypePath()
		if err != nil {
			return nil, err
		}
		return &ast.IsCompare{Value: value, IsType: isType, Loc: span(begin, p.prevEnd)}, nil
	default:
		return value, nil
	}
}

// parseTerm: literal, '(' expression ')', fn_call, new_struct, or access.
func (p *Parser) parseTerm() (ast.Expression, error) {
	begin := p.cur.Pos
	switch p.cur.Kind {
	case token.INT:
		tok := p.Consume()
		return &ast.Constant{Raw: tok.Literal, TypeName: "i32", Loc: span(begin, p.prevEnd)}, nil
	case token.FLOAT:
		tok := p.Consume()
		return &ast.Constant{Raw: tok.Literal, TypeName: "f32", Loc: span(begin, p.prevEnd)}, nil
	case token.STRING:
		tok := p.Consume()
		return &ast.Constant{Raw: tok.Literal, TypeName: "str", Loc: span(begin, p.prevEnd)}, nil
	case token.TRUE:
		p.Consume()
		return &ast.Constant{Bool: true, TypeName: "bool", Loc: span(begin, p.prevEnd)}, nil
	case token.FALSE:
		p.Consume()
		return &ast.Constant{Bool: false, TypeName: "bool", Loc: span(begin, p.prevEnd)}, nil
	case token.LPAREN:
		p.Consume()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.Expect(token.RPAREN); err != nil {
			return nil, errors.ExpectedToken(p.cur.Pos, "')'", p.describeCur())
		}
		return inner, nil
	case token.IDENT:
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		return p.parseIdentifierLed(name)
	default:
		return nil, errors.ExpectedExpression(p.cur.Pos, p.describeCur())
	}
}

// parseIdentifierLed disambiguates the three identifier-headed forms that
// appear both as expression terms and (via parseSimpleStatement) as
// statements: a FnCall (`NAME '(' args? ')'`), a NewStruct literal
// (`type '{' assignments '}'`, where type may be a '::'-qualified path),
// and a plain dot-chain Access/Name read.
func (p *Parser) parseIdentifierLed(name *ast.Identifier) (ast.Expression, error) {
	begin := name.Tok.Pos

	if p.cur.Kind == token.LPAREN {
		return p.parseFnCallArgs(name, begin)
	}

	if p.cur.Kind == token.COLONCOLON || p.cur.Kind == token.LBRACE {
		var typeExpr ast.TypeExpr = &ast.NamedType{Name: name, Loc: span(begin, p.prevEnd)}
		for {
			if _, ok := p.ConsumeIf(token.COLONCOLON); !ok {
				break
			}
			segment, err := p.expectName()
			if err != nil {
				return nil, err
			}
			typeExpr = &ast.QualifiedType{Parent: typeExpr, Name: segment, Loc: span(begin, p.prevEnd)}
		}
		return p.parseNewStructBody(typeExpr, begin)
	}

	var expr ast.Expression = &ast.Name{Identifier: name, Loc: span(begin, p.prevEnd)}
	for {
		if _, ok := p.ConsumeIf(token.DOT); !ok {
			return expr, nil
		}
		field, err := p.expectName()
		if err != nil {
			return nil, err
		}
		expr = &ast.Access{Parent: expr, Name: field, Loc: span(begin, p.prevEnd)}
	}
}

func (p *Parser) parseFnCallArgs(name *ast.Identifier, begin token.Position) (ast.Expression, error) {
	if _, err := p.Expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if p.cur.Kind != token.RPAREN {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if _, ok := p.ConsumeIf(token.COMMA); !ok {
				break
			}
			if p.cur.Kind == token.RPAREN {
				return nil, errors.TrailingComma(p.cur.Pos)
			}
		}
	}
	if _, err := p.Expect(token.RPAREN); err != nil {
		return nil, errors.ExpectedToken(p.cur.Pos, "')'", p.describeCur())
	}
	return &ast.FnCall{Name: name, Arguments: args, Loc: span(begin, p.prevEnd)}, nil
}

func (p *Parser) parseNewStructBody(variant ast.TypeExpr, begin token.Position) (ast.Expression, error) {
	if _, err := p.Expect(token.LBRACE); err != nil {
		return nil, errors.ExpectedBrace(p.cur.Pos, "{", p.describeCur())
	}
	var assignments []*ast.FieldAssignment
	if p.cur.Kind != token.RBRACE {
		for {
			fieldBegin := p.cur.Pos
			fieldName, err := p.expectName()
			if err != nil {
				return nil, err
			}
			if _, err := p.Expect(token.COLON); err != nil {
				return nil, errors.ExpectedColon(p.cur.Pos, p.describeCur())
			}
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			assignments = append(assignments, &ast.FieldAssignment{
				Name: fieldName, Value: value, Loc: span(fieldBegin, p.prevEnd),
			})
			if _, ok := p.ConsumeIf(token.COMMA); !ok {
				break
			}
			if p.cur.Kind == token.RBRACE {
				return nil, errors.TrailingComma(p.cur.Pos)
			}
		}
	}
	if _, err := p.Expect(token.RBRACE); err != nil {
		return nil, errors.ExpectedBrace(p.cur.Pos, "}", p.describeCur())
	}
	return &ast.NewStruct{Variant: variant, Assignments: assignments, Loc: span(begin, p.prevEnd)}, nil
}

package parser

import (
	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/token"
)

// parseBlock parses `'{' statement* '}'`.
func (p *Parser) parseBlock() (*ast.Block, error) {
	begin := p.cur.Pos
	if _, err := p.Expect(token.LBRACE); err != nil {
		return nil, errors.ExpectedBrace(p.cur.Pos, "{", p.describeCur())
	}

	var body []ast.Statement
	for p.cur.Kind != token.RBRACE {
		if p.cur.Kind == token.EOF {
			return nil, errors.UnexpectedEOF(p.cur.Pos)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.Expect(token.RBRACE); err != nil {
		return nil, errors.ExpectedBrace(p.cur.Pos, "}", p.describeCur())
	}
	return &ast.Block{Body: body, Loc: span(begin, p.prevEnd)}, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.LET, token.MUT:
		return p.parseVariableDeclaration()
	case token.RETURN:
		return p.parseReturn()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.MATCH:
		return p.parseMatch()
	default:
		return p.parseSimpleStatement()
	}
}

// parseVariableDeclaration parses
// `'mut'? 'let' NAME (':' type)? ('=' expression)? ';'`.
func (p *Parser) parseVariableDeclaration() (*ast.VariableDeclaration, error) {
	begin := p.cur.Pos
	_, mutable := p.ConsumeIf(token.MUT)
	if _, err := p.Expect(token.LET); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}

	var declaredType ast.TypeExpr
	if _, ok := p.ConsumeIf(token.COLON); ok {
		declaredType, err = p.parseTypePath()
		if err != nil {
			return nil, err
		}
	}

	var value ast.Expression
	if _, ok := p.ConsumeIf(token.ASSIGN); ok {
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.Expect(token.SEMICOLON); err != nil {
		return nil, errors.ExpectedSemicolon(p.cur.Pos, p.describeCur())
	}

	return &ast.VariableDeclaration{
		Name:         name,
		Mutable:      mutable,
		DeclaredType: declaredType,
		Value:        value,
		Loc:          span(begin, p.prevEnd),
	}, nil
}

// parseReturn parses `'return' expression? ';'`.
func (p *Parser) parseReturn() (*ast.Return, error) {
	begin := p.cur.Pos
	if _, err := p.Expect(token.RETURN); err != nil {
		return nil, err
	}
	var value ast.Expression
	if p.cur.Kind != token.SEMICOLON {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	if _, err := p.Expect(token.SEMICOLON); err != nil {
		return nil, errors.ExpectedSemicolon(p.cur.Pos, p.describeCur())
	}
	return &ast.Return{Value: value, Loc: span(begin, p.prevEnd)}, nil
}

// parseIf parses `'if' '(' expression ')' block ('else' block)?`.
func (p *Parser) parseIf() (*ast.If, error) {
	begin := p.cur.Pos
	if _, err := p.Expect(token.IF); err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.LPAREN); err != nil {
		return nil, errors.ExpectedToken(p.cur.Pos, "'('", p.describeCur())
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.RPAREN); err != nil {
		return nil, errors.ExpectedToken(p.cur.Pos, "')'", p.describeCur())
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.Block
	if _, ok := p.ConsumeIf(token.ELSE); ok {
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Condition: cond, Then: then, Else: elseBlock, Loc: span(begin, p.prevEnd)}, nil
}

// parseWhile parses `'while' '(' expression ')' block`.
func (p *Parser) parseWhile() (*ast.While, error) {
	begin := p.cur.Pos
	if _, err := p.Expect(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.LPAREN); err != nil {
		return nil, errors.ExpectedToken(p.cur.Pos, "'('", p.describeCur())
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.RPAREN); err != nil {
		return nil, errors.ExpectedToken(p.cur.Pos, "')'", p.describeCur())
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Body: body, Loc: span(begin, p.prevEnd)}, nil
}

// parseMatch parses `'match' '(' expression ')' '{' matcher+ '}'`, where
// a matcher is `type NAME '=>' block ';'`.
func (p *Parser) parseMatch() (*ast.Match, error) {
	begin := p.cur.Pos
	if _, err := p.Expect(token.MATCH); err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.LPAREN); err != nil {
		return nil, errors.ExpectedToken(p.cur.Pos, "'('", p.describeCur())
	}
	subject, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(token.RPAREN); err != nil {
		return nil, errors.ExpectedToken(p.cur.Pos, "')'", p.describeCur())
	}
	if _, err := p.Expect(token.LBRACE); err != nil {
		return nil, errors.ExpectedBrace(p.cur.Pos, "{", p.describeCur())
	}

	var arms []*ast.MatchArm
	for p.cur.Kind != token.RBRACE {
		if p.cur.Kind == token.EOF {
			return nil, errors.UnexpectedEOF(p.cur.Pos)
		}
		armBegin := p.cur.Pos
		matchedType, err := p.parseTypePath()
		if err != nil {
			return nil, err
		}
		bindingName, err := p.expectName()
		if err != nil {
			return nil, err
		}
		if _, err := p.Expect(token.FATARROW); err != nil {
			return nil, errors.ExpectedToken(p.cur.Pos, "'=>'", p.describeCur())
		}
		armBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if _, err := p.Expect(token.SEMICOLON); err != nil {
			return nil, errors.ExpectedSemicolon(p.cur.Pos, p.describeCur())
		}
		arms = append(arms, &ast.MatchArm{
			DeclaredType: matchedType,
			BindingName:  bindingName,
			Body:         armBody,
			Loc:          span(armBegin, p.prevEnd),
		})
	}
	if _, err := p.Expect(token.RBRACE); err != nil {
		return nil, errors.ExpectedBrace(p.cur.Pos, "}", p.describeCur())
	}

	return &ast.Match{Subject: subject, Matchers: arms, Loc: span(begin, p.prevEnd)}, nil
}

// parseSimpleStatement handles the three statement forms that begin with
// an identifier: assignment (`access '=' expression ';'`), a FnCall
// expression statement, and a NewStruct expression statement. All three
// share a lookahead-driven front end with parseTerm's identifier case
// (parseIdentifierLed), so the branching logic lives there once.
func (p *Parser) parseSimpleStatement() (ast.Statement, error) {
	begin := p.cur.Pos
	name, err := p.expectName()
	if err != nil {
		return nil, errors.ExpectedToken(p.cur.Pos, "statement", p.describeCur())
	}

	expr, err := p.parseIdentifierLed(name)
	if err != nil {
		return nil, err
	}

	switch expr.(type) {
	case *ast.FnCall, *ast.NewStruct:
		if _, err := p.Expect(token.SEMICOLON); err != nil {
			return nil, errors.ExpectedSemicolon(p.cur.Pos, p.describeCur())
		}
		return &ast.ExpressionStatement{Expr: expr, Loc: span(begin, p.prevEnd)}, nil
	default:
		// Must be an assignment target (ast.Name or ast.Access).
		if _, err := p.Expect(token.ASSIGN); err != nil {
			return nil, errors.ExpectedToken(p.cur.Pos, "'=' or '('", p.describeCur())
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.Expect(token.SEMICOLON); err != nil {
			return nil, errors.ExpectedSemicolon(p.cur.Pos, p.describeCur())
		}
		return &ast.Assignment{Target: expr, Value: value, Loc: span(begin, p.prevEnd)}, nil
	}
}

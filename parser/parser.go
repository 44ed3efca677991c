// Package parser implements the recursive-descent parser: tokens from
// lexer.Lexer in, an *ast.Module out. A lookahead-1 Parser struct with
// consume/expect primitives feeds one parse method per grammar
// production.
package parser

import (
	"github.com/cwbudde/enumlang/ast"
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/lexer"
	"github.com/cwbudde/enumlang/token"
)

// Parser holds one token of lookahead beyond the current token and
// exposes the consume/expect primitives the parse methods build on.
type Parser struct {
	lex *lexer.Lexer

	cur     token.Token
	peek    token.Token
	prevEnd token.Position
}

// New constructs a Parser positioned before the first token of input.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

// Consume returns the current token and advances past it.
func (p *Parser) Consume() token.Token {
	t := p.cur
	p.prevEnd = t.End()
	p.advance()
	return t
}

// ConsumeIf advances and returns (token, true) when the current token has
// kind; otherwise leaves the parser in place and returns (zero, false).
func (p *Parser) ConsumeIf(kind token.Kind) (token.Token, bool) {
	if p.cur.Kind != kind {
		return token.Token{}, false
	}
	return p.Consume(), true
}

// ConsumeMatch is ConsumeIf over a set of acceptable kinds.
func (p *Parser) ConsumeMatch(kinds ...token.Kind) (token.Token, bool) {
	for _, k := range kinds {
		if p.cur.Kind == k {
			return p.Consume(), true
		}
	}
	return token.Token{}, false
}

// Expect requires the current token to have kind, consuming it on success
// or producing a typed *errors.Error naming what was expected.
func (p *Parser) Expect(kind token.Kind) (token.Token, error) {
	if p.cur.Kind != kind {
		return token.Token{}, errors.ExpectedToken(p.cur.Pos, kind.String(), p.describeCur())
	}
	return p.Consume(), nil
}

// ExpectConditional is Expect gated by required: when required is false
// and the token is absent, it returns (zero, nil) instead of an error,
// for optional trailing clauses like `-> type` or `: type`.
func (p *Parser) ExpectConditional(kind token.Kind, required bool) (token.Token, error) {
	if p.cur.Kind == kind {
		return p.Consume(), nil
	}
	if !required {
		return token.Token{}, nil
	}
	return token.Token{}, errors.ExpectedToken(p.cur.Pos, kind.String(), p.describeCur())
}

// ExpectMatch requires the current token to be one of kinds.
func (p *Parser) ExpectMatch(kinds ...token.Kind) (token.Token, error) {
	for _, k := range kinds {
		if p.cur.Kind == k {
			return p.Consume(), nil
		}
	}
	return token.Token{}, errors.ExpectedToken(p.cur.Pos, kindsLabel(kinds), p.describeCur())
}

func (p *Parser) describeCur() string {
	if p.cur.Kind == token.EOF {
		return "end of input"
	}
	return p.cur.Kind.String()
}

func kindsLabel(kinds []token.Kind) string {
	s := ""
	for i, k := range kinds {
		if i > 0 {
			s += " or "
		}
		s += k.String()
	}
	return s
}

func (p *Parser) expectName() (*ast.Identifier, error) {
	if p.cur.Kind != token.IDENT {
		return nil, errors.ExpectedName(p.cur.Pos, p.describeCur())
	}
	tok := p.Consume()
	return &ast.Identifier{Name: tok.Literal, Tok: tok}, nil
}

// ParseModule parses an entire translation unit: a sequence of struct,
// enum, and fn top-level items. Any other leading token is a syntax
// error.
func (p *Parser) ParseModule() (*ast.Module, error) {
	begin := p.cur.Pos
	mod := &ast.Module{}

	for p.cur.Kind != token.EOF {
		switch p.cur.Kind {
		case token.STRUCT:
			s, err := p.parseStructDeclaration()
			if err != nil {
				return nil, err
			}
			mod.Structs = append(mod.Structs, s)
		case token.ENUM:
			e, err := p.parseEnumDeclaration()
			if err != nil {
				return nil, err
			}
			mod.Enums = append(mod.Enums, e)
		case token.FN:
			f, err := p.parseFunctionDeclaration()
			if err != nil {
				return nil, err
			}
			mod.Functions = append(mod.Functions, f)
		default:
			return nil, errors.ExpectedToken(p.cur.Pos, "'struct', 'enum', or 'fn'", p.describeCur())
		}
	}

	end := p.prevEnd
	if !end.IsValid() {
		end = begin
	}
	loc, err := token.NewLocation(begin, end)
	if err != nil {
		loc = token.Location{Begin: begin, End: begin}
	}
	mod.Loc = loc
	return mod, nil
}

package parser

import (
	"github.com/NiDE-gg/sourcepawn/ast"
	"github.com/NiDE-gg/sourcepawn/token"
)

// This file is the statement grammar (component #4, spec.md §4.4):
// compound blocks, the control-flow forms, and the declaration-vs-
// expression disambiguation that decides what an ordinary statement
// actually is before committing to either grammar.

// parseStmt dispatches on the current token to the right statement
// production, falling back to the declaration/expression disambiguator
// for anything that isn't a dedicated keyword.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Kind {
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.DO:
		return p.parseDoWhile()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.SWITCH:
		return p.parseSwitch()
	case token.BREAK:
		return p.parseBreak()
	case token.CONTINUE:
		return p.parseContinue()
	case token.RETURN:
		return p.parseReturn()
	case token.ASSERT:
		return p.parseAssert()
	case token.DELETE:
		return p.parseDelete()
	case token.EXIT:
		return p.parseExit()
	case token.STATIC_ASSERT:
		return p.parseStaticAssertStmt()
	case token.SEMICOLON:
		pos := p.cur.Pos
		p.errorf(36, "empty statement")
		p.next()
		return ast.NewStmtList(pos, nil)
	case token.CASE, token.DEFAULT:
		pos := p.cur.Pos
		p.errorf(14, "case or default label not within a switch")
		p.next()
		return ast.NewStmtList(pos, nil)
	default:
		if p.isLocalDeclStart() {
			return p.parseLocalDeclStmt()
		}
		return p.parseExprStmt()
	}
}

// isLocalDeclStart mirrors parseDecl's own dispatch (decl.go) one level
// up: a statement starting with a type keyword, a LABEL, or an
// identifier immediately followed by another identifier or by `[]` is
// a local declaration, never an expression.
func (p *Parser) isLocalDeclStart() bool {
	switch p.cur.Kind {
	case token.INT, token.CHAR, token.VOID, token.OBJECT, token.DECL,
		token.STATIC, token.CONST, token.NEW, token.LABEL:
		return true
	case token.IDENT:
		return p.looksLikeNewStyleTypeName()
	default:
		return false
	}
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	pos := p.cur.Pos
	p.expect(token.LBRACE)
	var stmts []ast.Stmt
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		stmts = append(stmts, p.parseStmt())
	}
	p.expect(token.RBRACE)
	return ast.NewBlockStmt(pos, stmts)
}

func (p *Parser) parseExprStmt() ast.Stmt {
	pos := p.currentPos()
	x := p.parseExpr()
	p.term(SemicolonRequired, pos.Line)
	return ast.NewExprStmt(pos, x)
}

// parseVarDeclNoTerm parses one or more comma-separated declarators
// sharing a leading static/const/new prefix, without consuming the
// trailing terminator — callers in a position that owns the terminator
// themselves (for's init-clause) use this directly; parseLocalDeclStmt
// adds the terminator on top.
func (p *Parser) parseVarDeclNoTerm() ast.Stmt {
	pos := p.cur.Pos
	isStatic := p.match(token.STATIC)
	isConst := p.match(token.CONST)
	p.match(token.NEW) // optional local-declaration keyword, not the `new T[]` expression

	info, ok := p.parseDecl(DeclVariable)
	if !ok {
		p.recoverToTerminator()
		return ast.NewDeclStmt(pos, ast.NewErrorDecl(pos))
	}
	stmts := []ast.Stmt{p.finishVarDecl(pos, info, isConst, isStatic)}
	for p.match(token.COMMA) {
		dpos := p.currentPos()
		info2, ok2 := p.parseAdditionalDeclarator(info.Type, DeclVariable)
		if !ok2 {
			break
		}
		stmts = append(stmts, p.finishVarDecl(dpos, info2, isConst, isStatic))
	}
	if len(stmts) == 1 {
		return stmts[0]
	}
	return ast.NewStmtList(pos, stmts)
}

func (p *Parser) finishVarDecl(pos token.Position, info ast.DeclInfo, isConst, isStatic bool) ast.Stmt {
	var init ast.Expr
	if p.match(token.ASSIGN) {
		g := p.withAllowTags(true)
		init = p.hier14()
		g.release()
	}
	vd := ast.NewVarDecl(pos, info.Name, info.Type, init, isConst, false, isStatic, false)
	return ast.NewDeclStmt(pos, vd)
}

func (p *Parser) parseLocalDeclStmt() ast.Stmt {
	pos := p.currentPos()
	s := p.parseVarDeclNoTerm()
	p.term(SemicolonRequired, pos.Line)
	return s
}

func (p *Parser) parseIf() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	p.expect(token.LPAREN)
	tg := p.withInTest()
	cond := p.parseExpr()
	tg.release()
	p.expect(token.RPAREN)
	then := p.parseStmt()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.parseStmt()
	}
	return ast.NewIfStmt(pos, cond, then, els)
}

func (p *Parser) parseDoWhile() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	lg := p.withInLoop()
	body := p.parseStmt()
	lg.release()
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	tg := p.withInTest()
	cond := p.parseExpr()
	tg.release()
	p.expect(token.RPAREN)
	p.term(SemicolonRequired, pos.Line)
	return ast.NewDoWhileStmt(pos, cond, body, true)
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	p.expect(token.LPAREN)
	tg := p.withInTest()
	cond := p.parseExpr()
	tg.release()
	p.expect(token.RPAREN)
	lg := p.withInLoop()
	body := p.parseStmt()
	lg.release()
	return ast.NewDoWhileStmt(pos, cond, body, false)
}

func (p *Parser) parseFor() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	p.expect(token.LPAREN)

	var init ast.Stmt
	if p.cur.Kind != token.SEMICOLON {
		if p.isLocalDeclStart() {
			init = p.parseVarDeclNoTerm()
		} else {
			ipos := p.currentPos()
			init = ast.NewExprStmt(ipos, p.parseExpr())
		}
	}
	p.expect(token.SEMICOLON)

	var cond ast.Expr
	if p.cur.Kind != token.SEMICOLON {
		tg := p.withInTest()
		cond = p.parseExpr()
		tg.release()
	}
	p.expect(token.SEMICOLON)

	var adv ast.Expr
	if p.cur.Kind != token.RPAREN {
		adv = p.parseExpr()
	}
	p.expect(token.RPAREN)

	lg := p.withInLoop()
	body := p.parseStmt()
	lg.release()
	return ast.NewForStmt(pos, init, cond, adv, body)
}

func (p *Parser) parseSwitch() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	p.expect(token.LPAREN)
	tg := p.withInTest()
	cond := p.parseExpr()
	tg.release()
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)

	var cases []ast.SwitchCase
	var def ast.Stmt
	for p.cur.Kind == token.CASE || p.cur.Kind == token.DEFAULT {
		if p.cur.Kind == token.DEFAULT {
			p.next()
			p.expect(token.COLON)
			if def != nil {
				p.errorf(62, "switch has more than one 'default' clause")
			}
			def = p.parseCaseBody()
			continue
		}
		p.next()
		exprs := []ast.Expr{p.hier14()}
		for p.match(token.COMMA) {
			exprs = append(exprs, p.hier14())
		}
		p.expect(token.COLON)
		cases = append(cases, ast.SwitchCase{Exprs: exprs, Body: p.parseCaseBody()})
	}
	p.expect(token.RBRACE)
	return ast.NewSwitchStmt(pos, cond, cases, def)
}

// parseCaseBody accepts either a brace-enclosed block or a single
// statement as a case's body, matching ordinary statement rules.
func (p *Parser) parseCaseBody() ast.Stmt {
	if p.cur.Kind == token.LBRACE {
		return p.parseBlock()
	}
	return p.parseStmt()
}

func (p *Parser) parseBreak() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	if !p.flags.inLoop {
		p.errorf(24, "'break' used outside of a loop")
	}
	p.term(SemicolonRequired, pos.Line)
	return ast.NewLoopControlStmt(pos, ast.LoopBreak)
}

func (p *Parser) parseContinue() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	if !p.flags.inLoop {
		p.errorf(25, "'continue' used outside of a loop")
	}
	p.term(SemicolonRequired, pos.Line)
	return ast.NewLoopControlStmt(pos, ast.LoopContinue)
}

func (p *Parser) parseReturn() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	var x ast.Expr
	if p.cur.Kind != token.SEMICOLON {
		x = p.parseExpr()
	}
	p.term(SemicolonRequired, pos.Line)
	return ast.NewReturnStmt(pos, x)
}

func (p *Parser) parseAssert() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	tg := p.withInTest()
	cond := p.parseExpr()
	tg.release()
	p.term(SemicolonRequired, pos.Line)
	return ast.NewAssertStmt(pos, cond)
}

func (p *Parser) parseDelete() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	x := p.parseExpr()
	p.term(SemicolonRequired, pos.Line)
	return ast.NewDeleteStmt(pos, x)
}

// parseExit parses `exit [expr] ;`. The expression is optional; X is
// left nil when the terminator follows immediately.
func (p *Parser) parseExit() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	var x ast.Expr
	if p.cur.Kind != token.SEMICOLON {
		x = p.parseExpr()
	}
	p.term(SemicolonRequired, pos.Line)
	return ast.NewExitStmt(pos, x)
}

func (p *Parser) parseStaticAssertStmt() ast.Stmt {
	pos := p.cur.Pos
	p.next()
	p.expect(token.LPAREN)
	cond := p.hier14()
	var msg ast.Expr
	if p.match(token.COMMA) {
		msg = p.hier14()
	}
	p.expect(token.RPAREN)
	p.term(SemicolonRequired, pos.Line)
	return ast.NewDeclStmt(pos, ast.NewStaticAssertStmt(pos, cond, msg))
}

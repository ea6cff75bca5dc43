package parser

import (
	"github.com/NiDE-gg/sourcepawn/ast"
	"github.com/NiDE-gg/sourcepawn/atom"
	"github.com/NiDE-gg/sourcepawn/token"
)

// This file is the expression grammar (component #3): fourteen
// precedence levels, named hier14 (lowest) down to hier1 (postfix) and
// primary, exactly as spec.md §4.3 lays them out. Levels 3-12 share a
// single precedence-climb helper (plnge / plnge_rel) parameterized by
// an operator set and the next-tier function, instead of fourteen
// hand-copied loops the way the teacher's parse.go writes them out
// level by level — the climb itself is still the teacher's shape, only
// deduplicated across levels that are otherwise identical.

type nextFn func() ast.Expr

// plnge parses next(), then folds every following operator in opset
// left-associatively into a BinaryExpr, or a LogicalExpr for && / ||.
func (p *Parser) plnge(opset map[token.Kind]bool, next nextFn) ast.Expr {
	left := next()
	for opset[p.cur.Kind] {
		op := p.cur.Kind
		pos := p.cur.Pos
		p.next()
		right := next()
		if op == token.LAND || op == token.LOR {
			left = ast.NewLogicalExpr(pos, op, left, right)
		} else {
			left = ast.NewBinaryExpr(pos, op, left, right)
		}
	}
	return left
}

// plnge_rel folds an entire run of relational operators into one
// ChainedCompareExpr instead of nested binaries, so `a < b < c` keeps
// all its comparisons in a single node (spec.md §4.3, invariant 2).
func (p *Parser) plngeRel(opset map[token.Kind]bool, next nextFn) ast.Expr {
	first := next()
	var ops []ast.CompareOp
	for opset[p.cur.Kind] {
		op := p.cur.Kind
		p.next()
		ops = append(ops, ast.CompareOp{Op: op, RHS: next()})
	}
	if len(ops) == 0 {
		return first
	}
	return ast.NewChainedCompareExpr(first.Position(), first, ops)
}

var assignOps = map[token.Kind]bool{
	token.ASSIGN: true, token.ADD_ASSIGN: true, token.SUB_ASSIGN: true,
	token.MUL_ASSIGN: true, token.QUO_ASSIGN: true, token.REM_ASSIGN: true,
	token.OR_ASSIGN: true, token.XOR_ASSIGN: true, token.AND_ASSIGN: true,
	token.SHL_ASSIGN: true, token.SHR_ASSIGN: true, token.USHR_ASSIGN: true,
}

// parseExpr parses a full comma-expression: one or more hier14 terms
// separated by ','.
func (p *Parser) parseExpr() ast.Expr {
	first := p.hier14()
	if p.cur.Kind != token.COMMA {
		return first
	}
	pos := first.Position()
	elems := []ast.Expr{first}
	for p.match(token.COMMA) {
		elems = append(elems, p.hier14())
	}
	return ast.NewCommaExpr(pos, elems)
}

// hier14 is the lowest precedence level: assignment (right-associative)
// and the ternary's entry point.
func (p *Parser) hier14() ast.Expr {
	left := p.hier13()
	if p.cur.Kind == token.ASSIGN && p.flags.inTest && p.cfg.WarnAssignInTest {
		p.warnf(211, "possibly unintended assignment")
	}
	if assignOps[p.cur.Kind] {
		op := p.cur.Kind
		pos := p.cur.Pos
		p.next()
		right := p.hier14() // right-associative: recurse into ourselves
		return ast.NewBinaryExpr(pos, op, left, right)
	}
	return left
}

// hier13 is the ternary `?:`, right-associative; the then-branch has
// tagname-casts disabled because ':' is ambiguous there.
func (p *Parser) hier13() ast.Expr {
	cond := p.hier12()
	if !p.match(token.QUESTION) {
		return cond
	}
	g := p.withAllowTags(false)
	then := p.hier14()
	g.release()
	p.expect(token.COLON)
	els := p.hier13()
	return ast.NewTernaryExpr(cond.Position(), cond, then, els)
}

var lorSet = map[token.Kind]bool{token.LOR: true}
var landSet = map[token.Kind]bool{token.LAND: true}
var orSet = map[token.Kind]bool{token.OR: true}
var xorSet = map[token.Kind]bool{token.XOR: true}
var andSet = map[token.Kind]bool{token.AND: true}
var eqSet = map[token.Kind]bool{token.EQL: true, token.NEQ: true}
var relSet = map[token.Kind]bool{token.LSS: true, token.LEQ: true, token.GTR: true, token.GEQ: true}
var shiftSet = map[token.Kind]bool{token.SHL: true, token.SHR: true, token.USHR: true}
var addSet = map[token.Kind]bool{token.ADD: true, token.SUB: true}
var mulSet = map[token.Kind]bool{token.MUL: true, token.QUO: true, token.REM: true}

func (p *Parser) hier12() ast.Expr { return p.plnge(lorSet, p.hier11) }
func (p *Parser) hier11() ast.Expr { return p.plnge(landSet, p.hier10) }
func (p *Parser) hier10() ast.Expr { return p.plnge(orSet, p.hier9) }
func (p *Parser) hier9() ast.Expr  { return p.plnge(xorSet, p.hier8) }
func (p *Parser) hier8() ast.Expr  { return p.plnge(andSet, p.hier7) }
func (p *Parser) hier7() ast.Expr  { return p.plnge(eqSet, p.hier6) }
func (p *Parser) hier6() ast.Expr  { return p.plngeRel(relSet, p.hier5) }
func (p *Parser) hier5() ast.Expr  { return p.plnge(shiftSet, p.hier4) }
func (p *Parser) hier4() ast.Expr  { return p.plnge(addSet, p.hier3) }
func (p *Parser) hier3() ast.Expr  { return p.plnge(mulSet, p.hier2) }

// hier2 is the prefix/unary level: ++ -- ~ - ! new defined sizeof and
// the old-style "LABEL:" tag cast.
func (p *Parser) hier2() ast.Expr {
	pos := p.cur.Pos
	switch p.cur.Kind {
	case token.INC, token.DEC:
		op := p.cur.Kind
		p.next()
		return ast.NewPreIncExpr(pos, op, p.hier2())
	case token.BNOT, token.SUB, token.NOT:
		op := p.cur.Kind
		p.next()
		return ast.NewUnaryExpr(pos, op, p.hier2())
	case token.NEW:
		return p.parseNewExpr()
	case token.DEFINED:
		return p.parseDefinedExpr()
	case token.SIZEOF:
		return p.parseSizeofExpr()
	case token.LABEL:
		if !p.flags.allowTags {
			// The lexer has no notion of the ternary's ':' separator:
			// "b: c" after "a ?" was already lexed as one LABEL token
			// ("b" tag-cast syntax). Recover the identifier and push
			// the swallowed ':' back so the ternary's own expect(':')
			// still sees it.
			name := p.internAtom(p.cur.Name)
			p.next()
			p.pushBack(token.Token{Kind: token.COLON, Pos: pos})
			return ast.NewSymbolExpr(pos, name)
		}
		if p.cfg.RequireNewDecls {
			p.warnf(230, "old-style tag cast used where new-style is required")
		}
		tg := p.tags.Add(p.cur.Name)
		p.next()
		return ast.NewCastExpr(pos, ast.CastTag, tg, p.hier2())
	default:
		return p.hier1()
	}
}

func (p *Parser) parseDefinedExpr() ast.Expr {
	pos := p.cur.Pos
	p.next()
	paren := p.match(token.LPAREN)
	if p.cur.Kind != token.IDENT {
		p.errorf(20, "expected an identifier after 'defined'")
		return ast.NewErrorExpr(pos)
	}
	name := p.internAtom(p.cur.Name)
	p.next()
	if paren {
		p.expect(token.RPAREN)
	}
	return ast.NewIsDefinedExpr(pos, name)
}

func (p *Parser) parseSizeofExpr() ast.Expr {
	pos := p.cur.Pos
	p.next()
	paren := p.match(token.LPAREN)
	if p.cur.Kind != token.IDENT {
		p.errorf(20, "expected an identifier after 'sizeof'")
		return ast.NewErrorExpr(pos)
	}
	name := p.internAtom(p.cur.Name)
	p.next()
	var fieldName *atom.Atom
	var sep token.Kind
	if p.cur.Kind == token.PERIOD || p.cur.Kind == token.DBLCOLON {
		sep = p.cur.Kind
		p.next()
		if p.cur.Kind != token.IDENT {
			p.errorf(20, "expected a field name")
		} else {
			fieldName = p.internAtom(p.cur.Name)
			p.next()
		}
	}
	levels := 0
	for p.cur.Kind == token.LBRACK {
		p.next()
		p.expect(token.RBRACK)
		levels++
	}
	if paren {
		p.expect(token.RPAREN)
	}
	return ast.NewSizeofExpr(pos, name, fieldName, sep, levels)
}

// parseNewExpr handles `new Ident(args)` (a constructor call) and
// `new T[dims]` (array allocation).
func (p *Parser) parseNewExpr() ast.Expr {
	pos := p.cur.Pos
	p.next()
	if p.cur.Kind != token.IDENT {
		p.errorf(20, "expected a type or constructor name after 'new'")
		return ast.NewErrorExpr(pos)
	}
	name := p.cur.Name
	p.next()
	if p.cur.Kind == token.LPAREN {
		target := ast.NewSymbolExpr(pos, p.internAtom(name))
		return p.parseCallTail(target)
	}
	tg := p.tags.Add(name)
	var dims []ast.Expr
	for p.match(token.LBRACK) {
		dims = append(dims, p.hier14())
		p.expect(token.RBRACK)
	}
	if len(dims) == 0 {
		p.errorf(1, "expected '[' after 'new %s'", name)
	}
	return ast.NewNewArrayExpr(pos, tg, dims)
}

// hier1 is the postfix chain: a primary (or view_as<T>(expr)) followed
// by repeated '.field', '::field', '[index]', '(args)', and postfix
// ++/--.
func (p *Parser) hier1() ast.Expr {
	var e ast.Expr
	if p.cur.Kind == token.VIEW_AS {
		e = p.parseViewAs()
	} else {
		e = p.primary()
	}
	for {
		pos := p.cur.Pos
		switch p.cur.Kind {
		case token.PERIOD, token.DBLCOLON:
			op := p.cur.Kind
			p.next()
			if p.cur.Kind != token.IDENT {
				p.errorf(20, "expected a field name")
				return e
			}
			field := p.internAtom(p.cur.Name)
			p.next()
			e = ast.NewFieldAccessExpr(pos, op, e, field)
		case token.LBRACK:
			p.next()
			idx := p.hier14()
			p.expect(token.RBRACK)
			e = ast.NewIndexExpr(pos, e, idx)
		case token.LPAREN:
			e = p.parseCallTail(e)
		case token.INC, token.DEC:
			op := p.cur.Kind
			p.next()
			e = ast.NewPostIncExpr(pos, op, e)
		default:
			return e
		}
	}
}

// parseCallTail parses the '(' arglist ')' after target is already
// known to be callable; target's '(' is still the current token.
func (p *Parser) parseCallTail(target ast.Expr) ast.Expr {
	pos := p.cur.Pos
	p.next() // '('
	var args []ast.CallArg
	sawNamed := false
	if p.cur.Kind != token.RPAREN {
		for {
			args = append(args, p.parseCallArg(&sawNamed))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN)
	return ast.NewCallExpr(pos, target, args)
}

// parseCallArg parses one call argument: ".name = expr" for a named
// argument, "_" for the skip-argument placeholder, or a bare
// assignment-level expression. Once any argument is named, a later
// positional argument is reported as error 44 but still recorded
// (spec.md invariant 3).
func (p *Parser) parseCallArg(sawNamed *bool) ast.CallArg {
	if p.cur.Kind == token.PERIOD {
		p.next()
		if p.cur.Kind != token.IDENT {
			p.errorf(20, "expected a parameter name")
			return ast.CallArg{}
		}
		name := p.internAtom(p.cur.Name)
		p.next()
		p.expect(token.ASSIGN)
		*sawNamed = true
		return ast.CallArg{Name: name, X: p.hier14()}
	}
	if p.cur.Kind == token.IDENT && p.cur.Name == "_" {
		p.next()
		if *sawNamed {
			p.errorf(44, "positional argument after named argument")
		}
		return ast.CallArg{}
	}
	if *sawNamed {
		p.errorf(44, "positional argument after named argument")
	}
	return ast.CallArg{X: p.hier14()}
}

// parseViewAs parses `view_as<T>(expr)`. Per spec.md's Open Questions,
// the trailing ')' is only required when the '(' was actually matched.
func (p *Parser) parseViewAs() ast.Expr {
	pos := p.cur.Pos
	p.next()
	p.expect(token.LSS)
	tg, _ := p.parseNewTypename(0)
	p.expect(token.GTR)
	hasParen := p.match(token.LPAREN)
	inner := p.hier14()
	if hasParen {
		p.expect(token.RPAREN)
	}
	return ast.NewCastExpr(pos, ast.CastViewAs, tg, inner)
}

// primary parses a parenthesized comma-expression, `this`, a symbol,
// or a constant.
func (p *Parser) primary() ast.Expr {
	pos := p.cur.Pos
	switch p.cur.Kind {
	case token.LPAREN:
		p.next()
		g := p.withAllowTags(true)
		e := p.parseExpr()
		g.release()
		p.expect(token.RPAREN)
		return e
	case token.THIS:
		p.next()
		return ast.NewThisExpr(pos)
	case token.NULL:
		p.next()
		return ast.NewNullExpr(pos)
	case token.IDENT:
		name := p.internAtom(p.cur.Name)
		p.next()
		return ast.NewSymbolExpr(pos, name)
	case token.NUMBER:
		tok := p.cur
		p.next()
		return ast.NewNumberExpr(pos, &tok)
	case token.RATIONAL:
		tok := p.cur
		p.next()
		return ast.NewFloatExpr(pos, &tok)
	case token.STRING:
		s := p.cur.StrVal
		p.next()
		return ast.NewStringExpr(pos, s)
	case token.LBRACE:
		return p.parseBraceLiteral()
	default:
		p.errorf(1, "expected an expression, found %s", p.cur.Kind)
		p.next()
		return ast.NewErrorExpr(pos)
	}
}

// parseBraceLiteral parses `{elem, elem, ...}` (array literal) with an
// optional trailing ellipsis that marks "fill to end", or
// `{.field = expr, ...}` (struct literal).
func (p *Parser) parseBraceLiteral() ast.Expr {
	pos := p.cur.Pos
	p.next()
	if p.cur.Kind == token.PERIOD {
		var fields []ast.StructFieldExpr
		for {
			p.expect(token.PERIOD)
			if p.cur.Kind != token.IDENT {
				p.errorf(20, "expected a field name")
				break
			}
			name := p.internAtom(p.cur.Name)
			p.next()
			p.expect(token.ASSIGN)
			fields = append(fields, ast.StructFieldExpr{Name: name, X: p.hier14()})
			if !p.match(token.COMMA) {
				break
			}
			if p.cur.Kind == token.RBRACE {
				break
			}
		}
		p.expect(token.RBRACE)
		return ast.NewStructExpr(pos, fields)
	}
	var elems []ast.Expr
	ellipsis := false
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		if p.cur.Kind == token.ELLIPSIS {
			p.next()
			ellipsis = true
			break
		}
		elems = append(elems, p.hier14())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)
	return ast.NewArrayExpr(pos, elems, ellipsis)
}

package parser

import (
	"github.com/NiDE-gg/sourcepawn/ast"
	"github.com/NiDE-gg/sourcepawn/atom"
	"github.com/NiDE-gg/sourcepawn/tag"
	"github.com/NiDE-gg/sourcepawn/token"
)

// DeclFlags drives parseDecl's handling of the two coexisting
// declarator syntaxes (spec.md §4.2).
type DeclFlags uint

const (
	DeclMaybeFunction DeclFlags = 1 << iota
	DeclVariable
	DeclEnumRoot
	DeclOld
	DeclNew
	DeclField
	DeclArgument
	DeclMaybeNamed
)

func (f DeclFlags) has(bit DeclFlags) bool { return f&bit != 0 }

// parseDecl parses one declarator under flags. It returns false only
// when the name itself could not be parsed; any other problem is
// reported and true is returned so the caller's loop can continue
// (spec.md §4.2: "parse_decl returns false only if the name could not
// be parsed").
func (p *Parser) parseDecl(flags DeclFlags) (ast.DeclInfo, bool) {
	if flags.has(DeclOld) {
		return p.parseOldDecl(flags)
	}
	if flags.has(DeclNew) {
		return p.parseNewDecl(flags)
	}
	isConst := p.match(token.CONST)
	// Disambiguate: a LABEL or bare name with no type keyword is
	// old-style; int/char/void/object/decl/SYMBOL-as-typename (when a
	// name or a `[]` dynamic-array marker follows) is new-style.
	var info ast.DeclInfo
	var ok bool
	switch p.cur.Kind {
	case token.LABEL:
		info, ok = p.parseOldDecl(flags)
	case token.INT, token.CHAR, token.VOID, token.OBJECT, token.DECL:
		info, ok = p.parseNewDecl(flags)
	case token.IDENT:
		// An identifier type name is new-style only if another
		// identifier, or an immediate `[]`, follows; otherwise this
		// identifier is itself the declarator's name (old-style,
		// untagged).
		if p.looksLikeNewStyleTypeName() {
			info, ok = p.parseNewDecl(flags)
		} else {
			info, ok = p.parseOldDecl(flags)
		}
	default:
		if flags.has(DeclMaybeNamed) {
			return ast.DeclInfo{}, true
		}
		p.errorf(10, "illegal declaration")
		return ast.DeclInfo{}, false
	}
	if ok {
		info.Type.IsConst = isConst
	}
	return info, ok
}

// looksLikeNewStyleTypeName peeks past the current identifier: "Foo
// bar" is new-style (Foo is a type, bar the name); so is "Foo[] bar"
// (Foo is a dynamic-array type). "Foo = 1" or "Foo," is old-style (Foo
// is itself the name). The `[]` case needs a second token of
// lookahead, pushed back in reverse order so the cursor ends up
// exactly where it started (spec.md §4.4).
func (p *Parser) looksLikeNewStyleTypeName() bool {
	savedA := p.cur
	p.next()
	savedB := p.cur
	isNewStyle := savedB.Kind == token.IDENT || savedB.Kind == token.OPERATOR
	if !isNewStyle && savedB.Kind == token.LBRACK {
		p.next()
		isNewStyle = p.cur.Kind == token.RBRACK
		p.pushBack(savedB)
	}
	p.pushBack(savedA)
	return isNewStyle
}

// parseOldDecl handles `[tag:] name [postfix-dims]`.
func (p *Parser) parseOldDecl(flags DeclFlags) (ast.DeclInfo, bool) {
	if p.flags.requireNewDecls {
		p.warnf(230, "old-style declarator used where new-style is required")
	}
	var tg tag.ID
	if p.cur.Kind == token.LABEL {
		tg = p.tags.Add(p.cur.Name)
		p.next()
	}
	name, opTok, ok := p.parseDeclaratorName(flags)
	if !ok {
		return ast.DeclInfo{}, false
	}
	typ := ast.TypeRef{Tag: tg, Kind: ast.IdentScalar, IsNew: false}
	p.parsePostfixDims(&typ, flags)
	return ast.DeclInfo{
		Name:        name,
		Type:        typ,
		OperatorTok: opTok,
		IsArgument:  flags.has(DeclArgument),
		IsField:     flags.has(DeclField),
		IsVariable:  flags.has(DeclVariable),
	}, true
}

// parseNewDecl handles `type [prefix-dims] name [postfix-dims]`, where
// type is one of int|char|void|object|SYMBOL optionally wrapped in
// '&', and prefix-dims is the `[]...` dynamic-array notation that
// sits between the type and the name (`Cell[] x;`).
func (p *Parser) parseNewDecl(flags DeclFlags) (ast.DeclInfo, bool) {
	tg, ok := p.parseNewTypename(flags)
	if !ok {
		return ast.DeclInfo{}, false
	}
	typ := ast.TypeRef{Tag: tg, Kind: ast.IdentScalar, IsNew: true}
	p.parsePrefixDims(&typ, flags)
	if typ.NumDims == 0 && p.match(token.AND) {
		typ.Kind = ast.IdentReference
	}
	name, opTok, ok := p.parseDeclaratorName(flags)
	if !ok {
		return ast.DeclInfo{}, false
	}
	p.parsePostfixDims(&typ, flags)
	return ast.DeclInfo{
		Name:        name,
		Type:        typ,
		OperatorTok: opTok,
		IsArgument:  flags.has(DeclArgument),
		IsField:     flags.has(DeclField),
		IsVariable:  flags.has(DeclVariable),
	}, true
}

// parseNewTypename interns a new-style type keyword or identifier to a
// tag id.
func (p *Parser) parseNewTypename(flags DeclFlags) (tag.ID, bool) {
	switch p.cur.Kind {
	case token.INT:
		p.next()
		return p.tags.Add("int"), true
	case token.CHAR:
		p.next()
		return p.tags.Add("char"), true
	case token.VOID:
		p.next()
		return p.tags.Add("void"), true
	case token.OBJECT:
		p.next()
		return p.tags.Add("Object"), true
	case token.DECL:
		p.next()
		return p.parseNewTypename(flags)
	case token.IDENT:
		name := p.cur.Name
		p.next()
		return p.tags.Add(name), true
	case token.ENUM:
		if !flags.has(DeclEnumRoot) {
			p.errorf(10, "enum type not allowed here")
			return 0, false
		}
		p.next()
		if p.cur.Kind != token.IDENT {
			p.errorf(1, "expected enum type name")
			return 0, false
		}
		name := p.cur.Name
		p.next()
		return p.tags.Add(name), true
	default:
		p.errorf(10, "expected a type name")
		return 0, false
	}
}

// parseDeclaratorName consumes the declarator's name, handling
// `operator<op>` overload declarators (SPEC_FULL.md DOMAIN STACK): the
// name is then nil and opTok carries the overloaded operator.
func (p *Parser) parseDeclaratorName(flags DeclFlags) (*atom.Atom, token.Kind, bool) {
	if p.cur.Kind == token.OPERATOR {
		p.next()
		opTok := p.cur.Kind
		switch opTok {
		case token.ADD, token.SUB, token.MUL, token.QUO, token.REM,
			token.EQL, token.NEQ, token.LSS, token.GTR, token.LEQ, token.GEQ,
			token.NOT, token.BNOT, token.INC, token.DEC, token.ASSIGN:
			p.next()
			return nil, opTok, true
		default:
			p.errorf(10, "unknown overloaded operator")
			return nil, 0, false
		}
	}
	if p.cur.Kind != token.IDENT {
		if flags.has(DeclMaybeNamed) {
			return nil, 0, true
		}
		p.errorf(1, "expected an identifier")
		return nil, 0, false
	}
	name := p.internAtom(p.cur.Name)
	p.next()
	return name, 0, true
}

// parseAdditionalDeclarator parses one more name in a comma-separated
// declarator list that already established its type (`int a, b[4];`):
// only an optional old-style tag override and the name/dims can vary
// per entry, the base type keyword is never repeated.
func (p *Parser) parseAdditionalDeclarator(base ast.TypeRef, flags DeclFlags) (ast.DeclInfo, bool) {
	typ := base
	typ.NumDims = 0
	typ.DimExtent = nil
	typ.DimExprs = nil
	typ.PostDims = false
	if p.cur.Kind == token.LABEL {
		typ.Tag = p.tags.Add(p.cur.Name)
		p.next()
	}
	name, opTok, ok := p.parseDeclaratorName(flags)
	if !ok {
		return ast.DeclInfo{}, false
	}
	p.parsePostfixDims(&typ, flags)
	return ast.DeclInfo{
		Name:        name,
		Type:        typ,
		OperatorTok: opTok,
		IsArgument:  flags.has(DeclArgument),
		IsField:     flags.has(DeclField),
		IsVariable:  flags.has(DeclVariable),
	}, true
}

// parsePrefixDims parses `[][]...` between a new-style type name and
// the declarator name (`Cell[] x;`), SourcePawn's dynamic-array type
// notation. Unlike parsePostfixDims it leaves typ.PostDims false: the
// dims precede the name here, not follow it.
func (p *Parser) parsePrefixDims(typ *ast.TypeRef, flags DeclFlags) {
	for p.cur.Kind == token.LBRACK {
		p.next()
		var extent int
		var extentExpr ast.Expr
		if p.cur.Kind != token.RBRACK {
			extentExpr = p.hier14()
			if n, ok := constantIntValue(extentExpr); ok {
				extent = n
			}
		}
		p.expect(token.RBRACK)
		if typ.NumDims >= p.cfg.DimenMax {
			p.errorf(89, "too many array dimensions (max %d)", p.cfg.DimenMax)
			continue
		}
		typ.NumDims++
		typ.Kind = ast.IdentArray
		typ.DimExtent = append(typ.DimExtent, extent)
		typ.DimExprs = append(typ.DimExprs, extentExpr)
	}
}

// parsePostfixDims parses `[N][M]...` after a declarator's name, up to
// config.DimenMax dimensions (spec.md §4.2); overflow is reported and
// truncates.
func (p *Parser) parsePostfixDims(typ *ast.TypeRef, flags DeclFlags) {
	for p.cur.Kind == token.LBRACK {
		p.next()
		var extent int
		var extentExpr ast.Expr
		if p.cur.Kind != token.RBRACK {
			extentExpr = p.hier14()
			if n, ok := constantIntValue(extentExpr); ok {
				extent = n
			}
		}
		p.expect(token.RBRACK)
		if typ.NumDims >= p.cfg.DimenMax {
			p.errorf(89, "too many array dimensions (max %d)", p.cfg.DimenMax)
			continue
		}
		typ.NumDims++
		typ.Kind = ast.IdentArray
		typ.PostDims = true
		typ.DimExtent = append(typ.DimExtent, extent)
		typ.DimExprs = append(typ.DimExprs, extentExpr)
	}
}

// constantIntValue extracts a literal integer value from a constant
// array-extent expression without performing general constant folding
// (spec.md Non-goals: "constant folding beyond what is required to
// accept const/static_assert initializers as literals").
func constantIntValue(e ast.Expr) (int, bool) {
	n, ok := e.(*ast.NumberExpr)
	if !ok || n.Value.IntVal == nil {
		return 0, false
	}
	if !n.Value.IntVal.IsInt64() {
		return 0, false
	}
	return int(n.Value.IntVal.Int64()), true
}

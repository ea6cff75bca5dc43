package parser

import (
	"github.com/NiDE-gg/sourcepawn/ast"
	"github.com/NiDE-gg/sourcepawn/atom"
	"github.com/NiDE-gg/sourcepawn/token"
)

// This file is the top-level declaration grammar (component #5,
// spec.md §4.5): the dispatcher that routes each translation-unit-level
// construct to its production, plus the enum struct and methodmap
// productions that SPEC_FULL.md promotes from external collaborators
// (decl_enumstruct/domethodmap) into regular in-tree grammar.

// parseTopLevel parses one top-level construct and returns the
// declarations it produced — almost always exactly one, except a
// comma-separated variable declaration list which yields one Decl per
// declarator.
func (p *Parser) parseTopLevel() []ast.Decl {
	switch p.cur.Kind {
	case token.STATIC_ASSERT:
		return []ast.Decl{p.parseTopStaticAssert()}
	case token.TYPEDEF:
		return []ast.Decl{p.parseTypedef()}
	case token.TYPESET:
		return []ast.Decl{p.parseTypeset()}
	case token.STRUCT:
		return []ast.Decl{p.parsePstruct()}
	case token.CONST:
		return []ast.Decl{p.parseTopConst()}
	case token.ENUM:
		return []ast.Decl{p.parseTopEnum()}
	case token.METHODMAP:
		return []ast.Decl{p.parseMethodmap()}
	case token.USING:
		return []ast.Decl{p.parseUsing()}
	case token.FUNCENUM, token.FUNCTAG:
		pos := p.cur.Pos
		p.fatalf(107, "%s is no longer supported, use typedef/typeset", p.cur.Kind)
		p.recoverToTerminator()
		return []ast.Decl{ast.NewErrorDecl(pos)}
	case token.NEW, token.STATIC, token.PUBLIC, token.STOCK, token.NATIVE, token.FORWARD:
		return p.parseAttributedDecl()
	case token.INT, token.CHAR, token.VOID, token.OBJECT, token.LABEL, token.IDENT, token.DECL:
		return p.parseUnknownDecl()
	case token.EOF:
		return nil
	default:
		p.errorf(1, "unexpected token %s at top level", p.cur.Kind)
		p.next()
		return nil
	}
}

func (p *Parser) parseTopStaticAssert() ast.Decl {
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
	return ast.NewStaticAssertStmt(pos, cond, msg)
}

// parseTypedef handles `typedef Name = <type>;`. Function-pointer
// typedefs reduce to their return type; the parameter signature they
// would normally carry is a Non-goal here (spec.md scopes out emitting
// callable code, so a typedef's only job left is to make the name a
// known tag for the declarator grammar).
func (p *Parser) parseTypedef() ast.Decl {
	pos := p.cur.Pos
	p.next()
	if p.cur.Kind != token.IDENT {
		p.errorf(20, "expected a typedef name")
		p.recoverToTerminator()
		return ast.NewErrorDecl(pos)
	}
	name := p.internAtom(p.cur.Name)
	p.next()
	p.expect(token.ASSIGN)
	isFunc := p.cur.Kind == token.IDENT && p.cur.Name == "function"
	if isFunc {
		p.next()
	}
	tg, ok := p.parseNewTypename(0)
	if !ok {
		p.recoverToTerminator()
		return ast.NewErrorDecl(pos)
	}
	typ := ast.TypeRef{Tag: tg, Kind: ast.IdentScalar, IsNew: true}
	p.parsePostfixDims(&typ, 0)
	if isFunc && p.cur.Kind == token.LPAREN {
		p.parseParamList() // parsed to stay in sync, not retained
	}
	p.term(SemicolonRequired, pos.Line)
	return ast.NewTypedefDecl(pos, name, typ)
}

// parseTypeset handles `typeset Name { type; type; ... };`, a union of
// the alternative types a symbol of tag Name may be initialized from.
func (p *Parser) parseTypeset() ast.Decl {
	pos := p.cur.Pos
	p.next()
	if p.cur.Kind != token.IDENT {
		p.errorf(20, "expected a typeset name")
		p.recoverToTerminator()
		return ast.NewErrorDecl(pos)
	}
	name := p.internAtom(p.cur.Name)
	p.next()
	p.expect(token.LBRACE)
	var types []ast.TypeRef
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		tg, ok := p.parseNewTypename(0)
		if !ok {
			p.recoverToTerminator()
			continue
		}
		typ := ast.TypeRef{Tag: tg, Kind: ast.IdentScalar, IsNew: true}
		p.parsePostfixDims(&typ, 0)
		types = append(types, typ)
		p.match(token.SEMICOLON)
	}
	p.expect(token.RBRACE)
	p.match(token.SEMICOLON)
	return ast.NewTypesetDecl(pos, name, types)
}

// parsePstruct handles the packed-struct declaration `struct Name {
// public type field; ... };` used for POD data shared with natives;
// a field without the leading `public` is reported as error 1.
func (p *Parser) parsePstruct() ast.Decl {
	pos := p.cur.Pos
	p.next()
	if p.cur.Kind != token.IDENT {
		p.errorf(20, "expected a struct name")
		p.recoverToTerminator()
		return ast.NewErrorDecl(pos)
	}
	name := p.internAtom(p.cur.Name)
	p.next()
	p.expect(token.LBRACE)
	var fields []ast.StructField
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		p.expect(token.PUBLIC)
		info, ok := p.parseDecl(DeclField | DeclNew)
		if !ok {
			p.recoverToTerminator()
			continue
		}
		fields = append(fields, ast.StructField{Name: info.Name, Type: info.Type})
		p.term(SemicolonRequired, p.currentPos().Line)
	}
	p.expect(token.RBRACE)
	p.match(token.SEMICOLON)
	return ast.NewPstructDecl(pos, name, fields)
}

// parseTopConst handles `const [tag] name = expr;`.
func (p *Parser) parseTopConst() ast.Decl {
	pos := p.cur.Pos
	p.next()
	info, ok := p.parseDecl(DeclVariable)
	if !ok {
		p.recoverToTerminator()
		return ast.NewErrorDecl(pos)
	}
	p.expect(token.ASSIGN)
	value := p.hier14()
	p.term(SemicolonRequired, pos.Line)
	return ast.NewConstDecl(pos, info.Name, info.Type, value)
}

// parseTopEnum handles both a plain `enum [LABEL] [Name] { ... };` and,
// additively, `enum struct Name { ... };`.
func (p *Parser) parseTopEnum() ast.Decl {
	pos := p.cur.Pos
	p.next()
	if p.cur.Kind == token.STRUCT {
		return p.parseEnumStruct(pos)
	}
	var label *atom.Atom
	if p.cur.Kind == token.LABEL {
		p.tags.Add(p.cur.Name)
		label = p.internAtom(p.cur.Name)
		p.next()
	}
	var name *atom.Atom
	if p.cur.Kind == token.IDENT {
		name = p.internAtom(p.cur.Name)
		p.next()
	}
	p.parseEnumIncrementClause()
	p.expect(token.LBRACE)
	var fields []ast.EnumField
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		if p.cur.Kind == token.LABEL {
			p.errorf(153, "enum field tags are not supported")
			p.next()
		}
		if p.cur.Kind != token.IDENT {
			p.errorf(20, "expected an enum field name")
			p.recoverToTerminator()
			break
		}
		fname := p.internAtom(p.cur.Name)
		p.next()
		if p.cur.Kind == token.LBRACK {
			p.errorf(153, "enum fields cannot declare an array size")
			p.next()
			if p.cur.Kind != token.RBRACK {
				p.hier14()
			}
			p.expect(token.RBRACK)
		}
		var val ast.Expr
		if p.match(token.ASSIGN) {
			val = p.hier14()
		}
		fields = append(fields, ast.EnumField{Name: fname, Value: val})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)
	p.match(token.SEMICOLON)
	return ast.NewEnumDecl(pos, label, name, fields)
}

// parseEnumIncrementClause parses the optional `( += N | *= N | <<= N )`
// clause after an enum's name; the construct as a whole is deprecated
// and emits warning 228 regardless of which form is used (spec.md
// §4.5). The increment/multiplier value itself only affects implicit
// field numbering, which this parser does not compute, so it is
// parsed and discarded.
func (p *Parser) parseEnumIncrementClause() {
	if !p.match(token.LPAREN) {
		return
	}
	p.warnf(228, "enum increment/multiplier clause is deprecated")
	switch {
	case p.match(token.ADD_ASSIGN):
		p.hier14()
	case p.match(token.MUL_ASSIGN):
		p.hier14()
	case p.match(token.SHL_ASSIGN):
		p.hier14()
	}
	p.expect(token.RPAREN)
}

// parseEnumStruct parses `enum struct Name { field; ...; method() {} ...
// };`; a member is a method the moment its declarator name is followed
// by '(', otherwise it is a plain field terminated by ';'.
func (p *Parser) parseEnumStruct(pos token.Position) ast.Decl {
	p.next() // 'struct'
	if p.cur.Kind != token.IDENT {
		p.errorf(20, "expected an enum struct name")
		p.recoverToTerminator()
		return ast.NewErrorDecl(pos)
	}
	name := p.internAtom(p.cur.Name)
	p.next()
	p.expect(token.LBRACE)

	var fields []ast.StructField
	var methods []*ast.FuncDecl
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		mpos := p.cur.Pos
		isPublic := p.match(token.PUBLIC)
		info, ok := p.parseDecl(DeclField | DeclNew)
		if !ok {
			p.recoverToTerminator()
			continue
		}
		if p.cur.Kind == token.LPAREN {
			params := p.parseParamList()
			body := p.parseBlock()
			methods = append(methods, ast.NewFuncDecl(mpos, info, params, body, isPublic, false, false))
			continue
		}
		fields = append(fields, ast.StructField{Name: info.Name, Type: info.Type})
		p.term(SemicolonRequired, p.currentPos().Line)
	}
	p.expect(token.RBRACE)
	p.match(token.SEMICOLON)
	return ast.NewEnumStructDecl(pos, name, fields, methods)
}

// parseMethodmap parses `methodmap Name [< Parent] [__nullable__] {
// property Type name { get() {} [set(...) {}] } ... public Ret.Method(...)
// {} ... };`.
func (p *Parser) parseMethodmap() ast.Decl {
	pos := p.cur.Pos
	p.next()
	if p.cur.Kind != token.IDENT {
		p.errorf(20, "expected a methodmap name")
		p.recoverToTerminator()
		return ast.NewErrorDecl(pos)
	}
	name := p.internAtom(p.cur.Name)
	p.next()
	var parent *atom.Atom
	if p.match(token.LSS) {
		if p.cur.Kind != token.IDENT {
			p.errorf(20, "expected a parent methodmap name")
		} else {
			parent = p.internAtom(p.cur.Name)
			p.next()
		}
	}
	nullable := false
	if p.cur.Kind == token.IDENT && p.cur.Name == "__nullable__" {
		nullable = true
		p.next()
	}
	p.expect(token.LBRACE)

	var props []ast.Property
	var methods []ast.MethodStub
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		if p.cur.Kind == token.IDENT && p.cur.Name == "property" {
			props = append(props, p.parseMethodmapProperty())
			continue
		}
		isStatic := p.cur.Kind == token.STATIC
		if isStatic {
			p.next()
		}
		p.match(token.PUBLIC)
		p.match(token.NATIVE)
		info, ok := p.parseDecl(DeclMaybeFunction)
		if !ok {
			p.recoverToTerminator()
			continue
		}
		var params []ast.DeclInfo
		var body *ast.BlockStmt
		if p.cur.Kind == token.LPAREN {
			params = p.parseParamList()
		}
		if p.cur.Kind == token.LBRACE {
			body = p.parseBlock()
		} else {
			p.term(SemicolonRequired, p.currentPos().Line)
		}
		fn := ast.NewFuncStubDecl(pos, info, params, body == nil, false)
		methods = append(methods, ast.MethodStub{Name: info.Name, IsStatic: isStatic, Func: fn})
	}
	p.expect(token.RBRACE)
	p.match(token.SEMICOLON)
	return ast.NewMethodmapDecl(pos, name, parent, nullable, props, methods)
}

// parseMethodmapProperty parses `property Type name { public get() {}
// [public set(Type value) {}] }`.
func (p *Parser) parseMethodmapProperty() ast.Property {
	p.next() // 'property'
	tg, _ := p.parseNewTypename(0)
	typ := ast.TypeRef{Tag: tg, Kind: ast.IdentScalar, IsNew: true}
	var name *atom.Atom
	if p.cur.Kind == token.IDENT {
		name = p.internAtom(p.cur.Name)
		p.next()
	}
	p.expect(token.LBRACE)
	var getter, setter *ast.FuncStubDecl
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		pos := p.cur.Pos
		p.match(token.PUBLIC)
		p.match(token.NATIVE)
		if p.cur.Kind != token.IDENT {
			p.recoverToTerminator()
			continue
		}
		isSetter := p.cur.Name == "set"
		p.next()
		params := p.parseParamList()
		var body *ast.BlockStmt
		if p.cur.Kind == token.LBRACE {
			body = p.parseBlock()
		} else {
			p.term(SemicolonRequired, p.currentPos().Line)
		}
		stub := ast.NewFuncStubDecl(pos, ast.DeclInfo{Type: typ}, params, body == nil, false)
		if isSetter {
			setter = stub
		} else {
			getter = stub
		}
	}
	p.expect(token.RBRACE)
	return ast.Property{Name: name, Type: typ, Getter: getter, Setter: setter}
}

// parseUsing handles the one directive the grammar accepts:
// `using __intrinsics__.Handle;`. Anything else is error 156
// (spec.md §4.5).
func (p *Parser) parseUsing() ast.Decl {
	pos := p.cur.Pos
	p.next()
	if !p.validateUsing() {
		p.recoverToTerminator()
		return ast.NewErrorDecl(pos)
	}
	p.term(SemicolonRequired, pos.Line)
	return ast.NewUsingDecl(pos)
}

// validateUsing checks the fixed `__intrinsics__ . Handle` token
// sequence, reporting error 156 and bailing at the first mismatch.
func (p *Parser) validateUsing() bool {
	if p.cur.Kind != token.IDENT || p.cur.Name != "__intrinsics__" {
		p.errorf(156, "illegal 'using' directive")
		return false
	}
	p.next()
	if !p.match(token.PERIOD) {
		p.errorf(156, "illegal 'using' directive")
		return false
	}
	if p.cur.Kind != token.IDENT || p.cur.Name != "Handle" {
		p.errorf(156, "illegal 'using' directive")
		return false
	}
	p.next()
	return true
}

// parseAttributedDecl handles a variable or function declaration
// carrying one or more leading attribute keywords (new/static/public/
// stock/native/forward); 'new' is purely the local-declaration marker
// reused at top level and otherwise a no-op.
func (p *Parser) parseAttributedDecl() []ast.Decl {
	pos := p.cur.Pos
	var isPublic, isStatic, isStock, isNative, isForward bool
loop:
	for {
		switch p.cur.Kind {
		case token.PUBLIC:
			isPublic = true
			p.next()
		case token.STATIC:
			isStatic = true
			p.next()
		case token.STOCK:
			isStock = true
			p.next()
		case token.NATIVE:
			isNative = true
			p.next()
		case token.FORWARD:
			isForward = true
			p.next()
		case token.NEW:
			p.next()
		default:
			break loop
		}
	}

	info, ok := p.parseDecl(DeclVariable | DeclMaybeFunction)
	if !ok {
		p.recoverToTerminator()
		return []ast.Decl{ast.NewErrorDecl(pos)}
	}
	if p.cur.Kind == token.LPAREN {
		params := p.parseParamList()
		if isNative || isForward {
			p.term(SemicolonRequired, pos.Line)
			return []ast.Decl{ast.NewFuncStubDecl(pos, info, params, isNative, isForward)}
		}
		body := p.parseBlock()
		return []ast.Decl{ast.NewFuncDecl(pos, info, params, body, isPublic, isStatic, isStock)}
	}

	var decls []ast.Decl
	decls = append(decls, p.finishTopVarDecl(pos, info, false, isPublic, isStatic, isStock))
	for p.match(token.COMMA) {
		dpos := p.currentPos()
		info2, ok2 := p.parseAdditionalDeclarator(info.Type, DeclVariable)
		if !ok2 {
			break
		}
		decls = append(decls, p.finishTopVarDecl(dpos, info2, false, isPublic, isStatic, isStock))
	}
	p.term(SemicolonRequired, pos.Line)
	return decls
}

// parseUnknownDecl handles a top-level declaration with no leading
// attribute keyword: a bare variable, or a function whose name is
// immediately followed by '(' (spec.md §4.5's "unknown decl"
// disambiguation).
func (p *Parser) parseUnknownDecl() []ast.Decl {
	pos := p.cur.Pos
	info, ok := p.parseDecl(DeclVariable | DeclMaybeFunction)
	if !ok {
		p.recoverToTerminator()
		return []ast.Decl{ast.NewErrorDecl(pos)}
	}
	if p.cur.Kind == token.LPAREN {
		params := p.parseParamList()
		body := p.parseBlock()
		return []ast.Decl{ast.NewFuncDecl(pos, info, params, body, false, false, false)}
	}
	var decls []ast.Decl
	decls = append(decls, p.finishTopVarDecl(pos, info, false, false, false, false))
	for p.match(token.COMMA) {
		dpos := p.currentPos()
		info2, ok2 := p.parseAdditionalDeclarator(info.Type, DeclVariable)
		if !ok2 {
			break
		}
		decls = append(decls, p.finishTopVarDecl(dpos, info2, false, false, false, false))
	}
	p.term(SemicolonRequired, pos.Line)
	return decls
}

func (p *Parser) finishTopVarDecl(pos token.Position, info ast.DeclInfo, isConst, isPublic, isStatic, isStock bool) ast.Decl {
	var init ast.Expr
	if p.match(token.ASSIGN) {
		g := p.withAllowTags(true)
		init = p.hier14()
		g.release()
	}
	return ast.NewVarDecl(pos, info.Name, info.Type, init, isConst, isPublic, isStatic, isStock)
}

// parseParamList parses a function's parenthesized parameter list;
// default argument values are parsed (so the grammar stays in sync)
// but not retained, matching DeclInfo's scope.
func (p *Parser) parseParamList() []ast.DeclInfo {
	p.expect(token.LPAREN)
	var params []ast.DeclInfo
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		info, ok := p.parseDecl(DeclArgument | DeclMaybeNamed)
		if !ok {
			p.recoverToTerminator()
			break
		}
		if p.match(token.ASSIGN) {
			p.hier14()
		}
		params = append(params, info)
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return params
}

// Package parser implements the recursive-descent front end: the
// token source adapter, the declarator/expression/statement/top-level
// grammars, and the AST factory glue between them. It is built the way
// the teacher's parse.go is built — a struct of cursor state plus
// mutually recursive parse* methods — generalized from C to the
// SourcePawn-dialect grammar in spec.md.
package parser

import (
	"fmt"

	"github.com/NiDE-gg/sourcepawn/atom"
	"github.com/NiDE-gg/sourcepawn/ast"
	"github.com/NiDE-gg/sourcepawn/config"
	"github.com/NiDE-gg/sourcepawn/diag"
	"github.com/NiDE-gg/sourcepawn/tag"
	"github.com/NiDE-gg/sourcepawn/token"
)

// TokenSource is the lexer API the parser consumes (spec.md §6). Any
// concrete lexer, including lexer.Lexer, can satisfy it; this package's
// tests drive a real lexer.Lexer through it.
type TokenSource interface {
	Next() token.Token
}

// TerminatorPolicy controls what ends a statement-like construct.
type TerminatorPolicy int

const (
	SemicolonRequired TerminatorPolicy = iota
	NewlineOrSemicolon
)

// Visitor receives each top-level declaration immediately after it is
// parsed — spec.md invariant 6 and §5's two-pass coupling contract: the
// parser must not start the next top-level declaration until Process
// returns.
type Visitor interface {
	Process(ast.Decl)
}

// flags is the small bag of scoped parser state (spec.md §5). Every
// field is mutated only through a scoped guard that restores the prior
// value on every exit path from the production that changed it.
type flags struct {
	inLoop               bool
	inTest               bool
	allowTags            bool
	oneErrorPerStatement bool
	requireNewDecls      bool
}

// Parser is the sole owner of a translation unit's cursor, token
// buffer, and flag bag. Not safe for concurrent use — spec.md §5: the
// whole component is single-threaded.
type Parser struct {
	src  TokenSource
	cfg  *config.Config
	sink *diag.Sink
	tags *tag.Table
	atoms *atom.Interner

	cur     token.Token
	pending []token.Token // pushed-back tokens, LIFO

	flags flags

	visitor Visitor
}

// New creates a parser reading from src. sink, tags and atoms are the
// external collaborators named in spec.md §6; cfg supplies the tunable
// constants from SPEC_FULL.md's configuration layer.
func New(src TokenSource, cfg *config.Config, sink *diag.Sink, tags *tag.Table, atoms *atom.Interner) *Parser {
	p := &Parser{src: src, cfg: cfg, sink: sink, tags: tags, atoms: atoms}
	p.flags.oneErrorPerStatement = true
	p.flags.allowTags = true
	p.flags.requireNewDecls = cfg.RequireNewDecls
	p.next()
	return p
}

// ---- Token source adapter (component #1) --------------------------------

// next consumes the current token and loads the next one, either from
// the pushback buffer or the lexer.
func (p *Parser) next() {
	if n := len(p.pending); n > 0 {
		p.cur = p.pending[n-1]
		p.pending = p.pending[:n-1]
		return
	}
	p.cur = p.src.Next()
}

// current returns the token currently under the cursor without
// consuming it.
func (p *Parser) current() token.Token { return p.cur }

// currentToken is current()'s spec-named alias: "current_token()".
func (p *Parser) currentToken() token.Token { return p.current() }

// currentPos is current()'s position, "current_pos()" in spec.md §4.1.
func (p *Parser) currentPos() token.Position { return p.cur.Pos }

// peek reports whether the current token has the given kind, without
// consuming it.
func (p *Parser) peek(kind token.Kind) bool { return p.cur.Kind == kind }

// match consumes and returns true if the current token has kind,
// otherwise leaves the cursor untouched and returns false.
func (p *Parser) match(kind token.Kind) bool {
	if p.cur.Kind != kind {
		return false
	}
	p.next()
	return true
}

// expect consumes a token of the given kind, reporting error 1 (missing
// token) if the current token doesn't match, and returns false on miss
// so callers can decide whether to keep going.
func (p *Parser) expect(kind token.Kind) bool {
	if p.match(kind) {
		return true
	}
	p.errorf(1, "expected %s but found %s", kind, p.cur.Kind)
	return false
}

// pushBack makes tok the current token and saves the token that was
// current until now, so the next next() call re-delivers that saved
// token before consulting the lexer.
func (p *Parser) pushBack(tok token.Token) {
	p.pending = append(p.pending, p.cur)
	p.cur = tok
}

// term consumes the terminator for the active policy: a semicolon
// always ends a construct; under NewlineOrSemicolon, reaching EOF or a
// token on a later source line than the prior one also ends it without
// consuming anything (the lexer in this implementation does not emit
// NEWLINE tokens of its own, so "reached a later line" is the signal).
func (p *Parser) term(policy TerminatorPolicy, lastLine int) bool {
	if p.match(token.SEMICOLON) {
		return true
	}
	if policy == NewlineOrSemicolon {
		if p.cur.Kind == token.EOF || p.cur.Pos.Line > lastLine {
			return true
		}
	}
	p.errorf(36, "statement not terminated (expected ';')")
	return false
}

// ---- Scoped flag guards --------------------------------------------------

type guard struct {
	p       *Parser
	restore func()
}

func (g guard) release() { g.restore() }

func (p *Parser) withInLoop() guard {
	old := p.flags.inLoop
	p.flags.inLoop = true
	return guard{p, func() { p.flags.inLoop = old }}
}

func (p *Parser) withInTest() guard {
	old := p.flags.inTest
	p.flags.inTest = true
	return guard{p, func() { p.flags.inTest = old }}
}

func (p *Parser) withAllowTags(v bool) guard {
	old := p.flags.allowTags
	p.flags.allowTags = v
	return guard{p, func() { p.flags.allowTags = old }}
}

// ---- Errors ---------------------------------------------------------------

func (p *Parser) errorf(code int, format string, args ...interface{}) {
	p.sink.Errorf(p.cur.Pos, code, format, args...)
	if p.flags.oneErrorPerStatement {
		p.sink.MarkErrorEmitted()
	}
}

func (p *Parser) errorfAt(pos token.Position, code int, format string, args ...interface{}) {
	p.sink.Errorf(pos, code, format, args...)
	if p.flags.oneErrorPerStatement {
		p.sink.MarkErrorEmitted()
	}
}

func (p *Parser) warnf(code int, format string, args ...interface{}) {
	p.sink.Warnf(p.cur.Pos, code, format, args...)
}

func (p *Parser) fatalf(code int, format string, args ...interface{}) {
	p.sink.Fatalf(p.cur.Pos, code, format, args...)
}

// recoverToTerminator implements the "skip to the next plausible
// synchronization point" recovery policy (spec.md §7): drop tokens
// until a ';', '}' or EOF.
func (p *Parser) recoverToTerminator() {
	for p.cur.Kind != token.SEMICOLON && p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		p.next()
	}
	if p.cur.Kind == token.SEMICOLON {
		p.next()
	}
}

// ---- Driver entry point ----------------------------------------------------

// Parse runs the top-level declaration loop, handing each declaration
// to v.Process before reading the next one (spec.md invariant 6).
func (p *Parser) Parse(v Visitor) {
	p.visitor = v
	p.flags.oneErrorPerStatement = true
	for p.cur.Kind != token.EOF {
		p.sink.BeginStatement()
		for _, d := range p.parseTopLevel() {
			if d != nil {
				v.Process(d)
			}
		}
	}
}

func (p *Parser) internAtom(name string) *atom.Atom { return p.atoms.Intern(name) }

func (p *Parser) String() string {
	return fmt.Sprintf("parser at %s, current=%s", p.cur.Pos, p.cur.Kind)
}

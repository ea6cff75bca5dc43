// Package token defines the lexeme kinds, positions and literal payloads
// that flow between the lexer and the parser.
package token

import (
	"fmt"
	"math/big"

	mtoken "modernc.org/token"
)

// Kind identifies the lexical class of a Token.
type Kind uint32

// Single character tokens carry their own rune value, mirroring the
// teacher's convention of using the rune itself as the token kind for
// anything that has no multi-character form.
const (
	ADD       = Kind('+')
	SUB       = Kind('-')
	MUL       = Kind('*')
	QUO       = Kind('/')
	REM       = Kind('%')
	AND       = Kind('&')
	OR        = Kind('|')
	XOR       = Kind('^')
	QUESTION  = Kind('?')
	LSS       = Kind('<')
	GTR       = Kind('>')
	ASSIGN    = Kind('=')
	NOT       = Kind('!')
	BNOT      = Kind('~')
	LPAREN    = Kind('(')
	LBRACK    = Kind('[')
	LBRACE    = Kind('{')
	COMMA     = Kind(',')
	PERIOD    = Kind('.')
	RPAREN    = Kind(')')
	RBRACK    = Kind(']')
	RBRACE    = Kind('}')
	SEMICOLON = Kind(';')
	COLON     = Kind(':')
)

const (
	ERROR Kind = 10000 + iota
	EOF
	NEWLINE // not emitted by package lexer; the parser's term() detects line ends from token positions

	IDENT  // bare identifier
	LABEL  // "ident:" lexed as a single old-style tag prefix
	NUMBER // integer literal
	RATIONAL
	STRING

	SHL
	SHR
	USHR // >>> logical shift, kept distinct per the language's three shift ops
	ADD_ASSIGN
	SUB_ASSIGN
	MUL_ASSIGN
	QUO_ASSIGN
	REM_ASSIGN
	AND_ASSIGN
	OR_ASSIGN
	XOR_ASSIGN
	SHL_ASSIGN
	SHR_ASSIGN
	USHR_ASSIGN
	LAND
	LOR
	INC
	DEC
	EQL
	NEQ
	LEQ
	GEQ
	ELLIPSIS // "..."
	DBLCOLON // "::"

	// Keywords
	INT
	CHAR
	VOID
	OBJECT
	DECL
	STATIC
	NEW
	CONST
	ENUM
	STRUCT
	TYPEDEF
	TYPESET
	METHODMAP
	USING
	PUBLIC
	STOCK
	OPERATOR
	NATIVE
	FORWARD
	FUNCENUM
	FUNCTAG
	IF
	ELSE
	DO
	WHILE
	FOR
	SWITCH
	CASE
	DEFAULT
	BREAK
	CONTINUE
	RETURN
	ASSERT
	DELETE
	EXIT
	SIZEOF
	DEFINED
	THIS
	NULL
	STATIC_ASSERT
	VIEW_AS
	TRUE
	FALSE
)

var kindNames = map[Kind]string{
	ERROR: "error", EOF: "EOF", NEWLINE: "newline",
	IDENT: "identifier", LABEL: "label", NUMBER: "number", RATIONAL: "rational", STRING: "string",
	SHL: "<<", SHR: ">>", USHR: ">>>",
	ADD_ASSIGN: "+=", SUB_ASSIGN: "-=", MUL_ASSIGN: "*=", QUO_ASSIGN: "/=", REM_ASSIGN: "%=",
	AND_ASSIGN: "&=", OR_ASSIGN: "|=", XOR_ASSIGN: "^=", SHL_ASSIGN: "<<=", SHR_ASSIGN: ">>=",
	USHR_ASSIGN: ">>>=", LAND: "&&", LOR: "||", INC: "++", DEC: "--", EQL: "==", NEQ: "!=",
	LEQ: "<=", GEQ: ">=", ELLIPSIS: "...", DBLCOLON: "::",
	INT: "int", CHAR: "char", VOID: "void", OBJECT: "object", DECL: "decl", STATIC: "static",
	NEW: "new", CONST: "const", ENUM: "enum", STRUCT: "struct", TYPEDEF: "typedef",
	TYPESET: "typeset", METHODMAP: "methodmap", USING: "using", PUBLIC: "public", STOCK: "stock",
	OPERATOR: "operator", NATIVE: "native", FORWARD: "forward", FUNCENUM: "funcenum",
	FUNCTAG: "functag", IF: "if", ELSE: "else", DO: "do", WHILE: "while", FOR: "for",
	SWITCH: "switch", CASE: "case", DEFAULT: "default", BREAK: "break", CONTINUE: "continue",
	RETURN: "return", ASSERT: "assert", DELETE: "delete", EXIT: "exit", SIZEOF: "sizeof",
	DEFINED: "defined", THIS: "this", NULL: "null", STATIC_ASSERT: "static_assert",
	VIEW_AS: "view_as", TRUE: "true", FALSE: "false",
}

// Keywords maps a lexeme to its keyword Kind. Anything absent is an
// ordinary identifier.
var Keywords = map[string]Kind{
	"int": INT, "char": CHAR, "void": VOID, "object": OBJECT, "decl": DECL,
	"static": STATIC, "new": NEW, "const": CONST, "enum": ENUM, "struct": STRUCT,
	"typedef": TYPEDEF, "typeset": TYPESET, "methodmap": METHODMAP, "using": USING,
	"public": PUBLIC, "stock": STOCK, "operator": OPERATOR, "native": NATIVE,
	"forward": FORWARD, "funcenum": FUNCENUM, "functag": FUNCTAG,
	"if": IF, "else": ELSE, "do": DO, "while": WHILE, "for": FOR, "switch": SWITCH,
	"case": CASE, "default": DEFAULT, "break": BREAK, "continue": CONTINUE,
	"return": RETURN, "assert": ASSERT, "delete": DELETE, "exit": EXIT,
	"sizeof": SIZEOF, "defined": DEFINED, "this": THIS, "null": NULL,
	"static_assert": STATIC_ASSERT, "view_as": VIEW_AS, "true": TRUE, "false": FALSE,
}

func (k Kind) String() string {
	if k < 256 {
		return fmt.Sprintf("%q", rune(k))
	}
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Position is a file id + line + column, backed by modernc.org/token's
// compact per-file line table so repeated Position() calls during parsing
// don't carry the cost of a full line/col scan each time.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsValid reports whether p refers to an actual location.
func (p Position) IsValid() bool { return p.Line > 0 }

// File wraps a modernc.org/token.File to translate byte offsets into
// Positions as the lexer advances, and is the sole writer of line
// boundaries for its translation unit.
type File struct {
	name string
	mf   *mtoken.File
}

// NewFile creates a position table for a translation unit of the given
// byte size.
func NewFile(name string, size int) *File {
	return &File{name: name, mf: mtoken.NewFile(name, size)}
}

// AddLine records that a newline was consumed at the given byte offset,
// exactly as the lexer discovers them; must be called in increasing
// offset order.
func (f *File) AddLine(offset int) { f.mf.AddLine(offset) }

// Position resolves a byte offset into a full Position.
func (f *File) Position(offset int) Position {
	p := f.mf.PositionFor(mtoken.Pos(f.mf.Base()+offset), true)
	return Position{File: f.name, Line: p.Line, Column: p.Column}
}

// Token is a single lexeme: a kind tag, a position, and at most one of
// an integer value, a rational value, or a string slice.
type Token struct {
	Kind Kind
	Pos  Position

	// Name holds the spelling for IDENT, LABEL and keyword tokens.
	Name string

	IntVal *big.Int  // set for NUMBER
	RatVal *Rational // set for RATIONAL
	StrVal string     // set for STRING
}

func (t Token) String() string {
	switch t.Kind {
	case IDENT, LABEL:
		return fmt.Sprintf("%s(%s) at %s", t.Kind, t.Name, t.Pos)
	case NUMBER:
		return fmt.Sprintf("number(%s) at %s", t.IntVal, t.Pos)
	case RATIONAL:
		return fmt.Sprintf("rational(%s) at %s", t.RatVal, t.Pos)
	case STRING:
		return fmt.Sprintf("string(%q) at %s", t.StrVal, t.Pos)
	default:
		return fmt.Sprintf("%s at %s", t.Kind, t.Pos)
	}
}

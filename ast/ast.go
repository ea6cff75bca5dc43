// Package ast defines the parser's output: a closed, position-tagged
// node catalogue. Nodes are pure data — no Bind/Analyze/Emit virtual
// dispatch lives here, that behavior belongs to later passes which can
// each define their own visitor over this catalogue.
package ast

import (
	"github.com/NiDE-gg/sourcepawn/atom"
	"github.com/NiDE-gg/sourcepawn/tag"
	"github.com/NiDE-gg/sourcepawn/token"
)

// Node is implemented by every AST node. Every node carries a Position
// referring to a location at or before its first token.
type Node interface {
	Position() token.Position
	aNode()
}

// node is embedded by every concrete node to supply Position and the
// unexported marker method that closes the Node interface.
type node struct {
	Pos token.Position
}

func (n node) Position() token.Position { return n.Pos }
func (node) aNode()                     {}

// Decl is a top-level or statement-embedded declaration.
type Decl interface {
	Node
	aDecl()
}

type decl struct{ node }

func (decl) aDecl() {}

// Stmt is a statement-grammar node.
type Stmt interface {
	Node
	aStmt()
}

type stmt struct{ node }

func (stmt) aStmt() {}

// Expr is an expression-grammar node.
type Expr interface {
	Node
	aExpr()
}

type expr struct{ node }

func (expr) aExpr() {}

// ---- Type reference -------------------------------------------------

// IdentKind classifies what a declarator ultimately names.
type IdentKind int

const (
	IdentScalar IdentKind = iota
	IdentArray
	IdentReference
	IdentFunction
)

// TypeRef is the declarator grammar's output: a tag, the flavor of
// identifier it produces, and array-dimension bookkeeping. DimExprs
// holds the parsed extent expression of every dimension, constant or
// not (nil entries mean the dimension was empty, e.g. `x[]`).
type TypeRef struct {
	Tag       tag.ID
	Kind      IdentKind
	IsConst   bool
	IsNew     bool // true for new-style (`int x`), false for old-style (`x` / `Tag:x`)
	NumDims   int
	DimExtent []int  // constant extent per dimension, 0 if not constant
	DimExprs  []Expr // parsed extent expression per dimension, nil if empty
	PostDims  bool   // dims followed the name rather than preceding it
}

// DeclInfo is a declarator in progress, produced by the declarator
// grammar and consumed by statement/top-level productions.
type DeclInfo struct {
	Name        *atom.Atom
	Type        TypeRef
	OperatorTok token.Kind // set when Name is an `operator` overload
	IsArgument  bool
	IsField     bool
	IsVariable  bool
	IsFunction  bool
}

// ---- Declarations ----------------------------------------------------

type VarDecl struct {
	decl
	Name     *atom.Atom
	Type     TypeRef
	Init     Expr // nil if uninitialized
	IsConst  bool
	IsPublic bool
	IsStatic bool
	IsStock  bool
}

type ConstDecl struct {
	decl
	Name  *atom.Atom
	Type  TypeRef
	Value Expr
}

type EnumField struct {
	Name  *atom.Atom
	Value Expr // nil if not explicitly assigned
}

type EnumDecl struct {
	decl
	Label  *atom.Atom // old-style "enum LABEL:" tag, nil if absent
	Name   *atom.Atom // nil for an anonymous enum
	Fields []EnumField
}

// EnumStructDecl is additive over the distilled catalogue (see
// SPEC_FULL.md DOMAIN STACK): `enum struct Name { fields...; methods... }`.
type EnumStructDecl struct {
	decl
	Name    *atom.Atom
	Fields  []StructField
	Methods []*FuncDecl
}

type StructField struct {
	Name *atom.Atom
	Type TypeRef
}

type PstructDecl struct {
	decl
	Name   *atom.Atom
	Fields []StructField
}

type TypedefDecl struct {
	decl
	Name *atom.Atom
	Type TypeRef
}

type TypesetDecl struct {
	decl
	Name  *atom.Atom
	Types []TypeRef
}

// UsingDecl is the `using __intrinsics__.Handle;` marker; it carries
// no payload because that is the only form the grammar accepts
// (spec.md §4.5).
type UsingDecl struct {
	decl
}

// Property is a methodmap property accessor block.
type Property struct {
	Name   *atom.Atom
	Type   TypeRef
	Getter *FuncStubDecl
	Setter *FuncStubDecl
}

// MethodStub is one `public RetType.Method(...)` entry of a methodmap.
type MethodStub struct {
	Name     *atom.Atom
	IsStatic bool
	Func     *FuncStubDecl
}

// MethodmapDecl is additive (see SPEC_FULL.md).
type MethodmapDecl struct {
	decl
	Name       *atom.Atom
	Parent     *atom.Atom // nil if no "< Parent"
	Nullable   bool
	Properties []Property
	Methods    []MethodStub
}

// FuncStubDecl covers native/forward declarations and methodmap method
// signatures: a declarator plus flags, with no body.
type FuncStubDecl struct {
	decl
	Info      DeclInfo
	Params    []DeclInfo
	IsNative  bool
	IsForward bool
}

// FuncDecl is a function with a body (`newfunc` in the spec's external
// collaborator table; kept in-tree here since the body is statements
// this parser itself must parse).
type FuncDecl struct {
	decl
	Info     DeclInfo
	Params   []DeclInfo
	Body     *BlockStmt
	IsPublic bool
	IsStatic bool
	IsStock  bool
}

type ErrorDecl struct {
	decl
}

type StaticAssertStmt struct {
	decl
	Cond    Expr
	Message Expr // nil if omitted
}

// ---- Statements -------------------------------------------------------

type StmtList struct {
	stmt
	Stmts []Stmt
}

type BlockStmt struct {
	stmt
	Stmts []Stmt
}

type ExprStmt struct {
	stmt
	X Expr
}

type DeclStmt struct {
	stmt
	Decl Decl
}

type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

// DoWhileStmt covers both `do ... while (...)` and `while (...) ...`;
// IsDo distinguishes them.
type DoWhileStmt struct {
	stmt
	Cond Expr
	Body Stmt
	IsDo bool
}

type ForStmt struct {
	stmt
	Init    Stmt // may be a DeclStmt or ExprStmt, nil if omitted
	Cond    Expr // nil if omitted
	Advance Expr // nil if omitted
	Body    Stmt
}

type SwitchCase struct {
	Exprs []Expr
	Body  Stmt
}

type SwitchStmt struct {
	stmt
	Cond    Expr
	Cases   []SwitchCase
	Default Stmt // nil if absent
}

type LoopControlKind int

const (
	LoopBreak LoopControlKind = iota
	LoopContinue
)

type LoopControlStmt struct {
	stmt
	Kind LoopControlKind
}

type ReturnStmt struct {
	stmt
	X Expr // nil for a bare `return;`
}

type AssertStmt struct {
	stmt
	Cond Expr
}

type DeleteStmt struct {
	stmt
	X Expr
}

type ExitStmt struct {
	stmt
	X Expr // nil if the next token was the terminator (see spec Open Questions)
}

// ---- Expressions --------------------------------------------------------

type NumberExpr struct {
	expr
	Value *token.Token
}

type FloatExpr struct {
	expr
	Value *token.Token
}

type StringExpr struct {
	expr
	Value string
}

type NullExpr struct{ expr }
type ThisExpr struct{ expr }

type SymbolExpr struct {
	expr
	Name *atom.Atom
}

type ArrayExpr struct {
	expr
	Elems    []Expr
	Ellipsis bool // trailing "..." fill-to-end marker
}

type StructFieldExpr struct {
	Name *atom.Atom
	X    Expr
}

type StructExpr struct {
	expr
	Fields []StructFieldExpr
}

type NewArrayOpExpr struct {
	expr
	Tag  tag.ID
	Dims []Expr
}

type CommaExpr struct {
	expr
	Elems []Expr
}

type UnaryExpr struct {
	expr
	Op Token_
	X  Expr
}

// Token_ aliases token.Kind to keep expression-node field names short
// without importing token.Kind verbatim at every call site.
type Token_ = token.Kind

type PreIncExpr struct {
	expr
	Op Token_
	X  Expr
}

type PostIncExpr struct {
	expr
	Op Token_
	X  Expr
}

type BinaryExpr struct {
	expr
	Op   Token_
	L, R Expr
}

type LogicalExpr struct {
	expr
	Op   Token_ // LAND or LOR
	L, R Expr
}

type TernaryExpr struct {
	expr
	Cond, Then, Else Expr
}

type CompareOp struct {
	Op  Token_
	RHS Expr
}

type ChainedCompareExpr struct {
	expr
	First Expr
	Ops   []CompareOp
}

type CastKind int

const (
	CastTag CastKind = iota // old-style "Tag:expr"
	CastViewAs
)

type CastExpr struct {
	expr
	Kind  CastKind
	Tag   tag.ID
	Inner Expr
}

type SizeofExpr struct {
	expr
	Name        *atom.Atom
	Field       *atom.Atom // nil if no ".field"/"::field"
	SepToken    Token_     // PERIOD or DBLCOLON, valid only if Field != nil
	ArrayLevels int        // count of trailing "[]" groups
}

type IsDefinedExpr struct {
	expr
	Name *atom.Atom
}

type FieldAccessExpr struct {
	expr
	Op    Token_ // PERIOD or DBLCOLON
	Base  Expr
	Field *atom.Atom
}

type IndexExpr struct {
	expr
	Base  Expr
	Index Expr
}

type CallArg struct {
	Name *atom.Atom // non-nil for ".name = expr" named arguments
	X    Expr       // nil for the "_" skip-argument placeholder
}

type CallExpr struct {
	expr
	Target Expr
	Args   []CallArg
}

type ErrorExpr struct{ expr }

// DeclAt, StmtAt and ExprAt are small constructor helpers so the
// factory (factory.go) can write e.g. DeclAt(pos) as the embedded field
// initializer instead of repeating the nested struct literal at every
// node construction site.
func DeclAt(pos token.Position) decl { return decl{node{Pos: pos}} }
func StmtAt(pos token.Position) stmt { return stmt{node{Pos: pos}} }
func ExprAt(pos token.Position) expr { return expr{node{Pos: pos}} }

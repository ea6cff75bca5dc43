package ast

import (
	"github.com/NiDE-gg/sourcepawn/atom"
	"github.com/NiDE-gg/sourcepawn/tag"
	"github.com/NiDE-gg/sourcepawn/token"
)

// This file is the AST factory (component #6 of the design): the only
// place that constructs position-tagged nodes. The parser never builds
// a node literal directly — every production calls one of these.

func NewVarDecl(pos token.Position, name *atom.Atom, typ TypeRef, init Expr, isConst, isPublic, isStatic, isStock bool) *VarDecl {
	return &VarDecl{DeclAt(pos), name, typ, init, isConst, isPublic, isStatic, isStock}
}

func NewConstDecl(pos token.Position, name *atom.Atom, typ TypeRef, value Expr) *ConstDecl {
	return &ConstDecl{DeclAt(pos), name, typ, value}
}

func NewEnumDecl(pos token.Position, label, name *atom.Atom, fields []EnumField) *EnumDecl {
	return &EnumDecl{DeclAt(pos), label, name, fields}
}

func NewEnumStructDecl(pos token.Position, name *atom.Atom, fields []StructField, methods []*FuncDecl) *EnumStructDecl {
	return &EnumStructDecl{DeclAt(pos), name, fields, methods}
}

func NewPstructDecl(pos token.Position, name *atom.Atom, fields []StructField) *PstructDecl {
	return &PstructDecl{DeclAt(pos), name, fields}
}

func NewTypedefDecl(pos token.Position, name *atom.Atom, typ TypeRef) *TypedefDecl {
	return &TypedefDecl{DeclAt(pos), name, typ}
}

func NewTypesetDecl(pos token.Position, name *atom.Atom, types []TypeRef) *TypesetDecl {
	return &TypesetDecl{DeclAt(pos), name, types}
}

func NewUsingDecl(pos token.Position) *UsingDecl {
	return &UsingDecl{DeclAt(pos)}
}

func NewMethodmapDecl(pos token.Position, name, parent *atom.Atom, nullable bool, props []Property, methods []MethodStub) *MethodmapDecl {
	return &MethodmapDecl{DeclAt(pos), name, parent, nullable, props, methods}
}

func NewFuncStubDecl(pos token.Position, info DeclInfo, params []DeclInfo, isNative, isForward bool) *FuncStubDecl {
	return &FuncStubDecl{DeclAt(pos), info, params, isNative, isForward}
}

func NewFuncDecl(pos token.Position, info DeclInfo, params []DeclInfo, body *BlockStmt, isPublic, isStatic, isStock bool) *FuncDecl {
	return &FuncDecl{DeclAt(pos), info, params, body, isPublic, isStatic, isStock}
}

func NewErrorDecl(pos token.Position) *ErrorDecl { return &ErrorDecl{DeclAt(pos)} }

func NewStaticAssertStmt(pos token.Position, cond, msg Expr) *StaticAssertStmt {
	return &StaticAssertStmt{DeclAt(pos), cond, msg}
}

func NewStmtList(pos token.Position, stmts []Stmt) *StmtList { return &StmtList{StmtAt(pos), stmts} }

func NewBlockStmt(pos token.Position, stmts []Stmt) *BlockStmt { return &BlockStmt{StmtAt(pos), stmts} }

func NewExprStmt(pos token.Position, x Expr) *ExprStmt { return &ExprStmt{StmtAt(pos), x} }

func NewDeclStmt(pos token.Position, d Decl) *DeclStmt { return &DeclStmt{StmtAt(pos), d} }

func NewIfStmt(pos token.Position, cond Expr, then, els Stmt) *IfStmt {
	return &IfStmt{StmtAt(pos), cond, then, els}
}

func NewDoWhileStmt(pos token.Position, cond Expr, body Stmt, isDo bool) *DoWhileStmt {
	return &DoWhileStmt{StmtAt(pos), cond, body, isDo}
}

func NewForStmt(pos token.Position, init Stmt, cond, advance Expr, body Stmt) *ForStmt {
	return &ForStmt{StmtAt(pos), init, cond, advance, body}
}

func NewSwitchStmt(pos token.Position, cond Expr, cases []SwitchCase, def Stmt) *SwitchStmt {
	return &SwitchStmt{StmtAt(pos), cond, cases, def}
}

func NewLoopControlStmt(pos token.Position, kind LoopControlKind) *LoopControlStmt {
	return &LoopControlStmt{StmtAt(pos), kind}
}

func NewReturnStmt(pos token.Position, x Expr) *ReturnStmt { return &ReturnStmt{StmtAt(pos), x} }

func NewAssertStmt(pos token.Position, cond Expr) *AssertStmt { return &AssertStmt{StmtAt(pos), cond} }

func NewDeleteStmt(pos token.Position, x Expr) *DeleteStmt { return &DeleteStmt{StmtAt(pos), x} }

func NewExitStmt(pos token.Position, x Expr) *ExitStmt { return &ExitStmt{StmtAt(pos), x} }

func NewNumberExpr(pos token.Position, t *token.Token) *NumberExpr { return &NumberExpr{ExprAt(pos), t} }

func NewFloatExpr(pos token.Position, t *token.Token) *FloatExpr { return &FloatExpr{ExprAt(pos), t} }

func NewStringExpr(pos token.Position, v string) *StringExpr { return &StringExpr{ExprAt(pos), v} }

func NewNullExpr(pos token.Position) *NullExpr { return &NullExpr{ExprAt(pos)} }

func NewThisExpr(pos token.Position) *ThisExpr { return &ThisExpr{ExprAt(pos)} }

func NewSymbolExpr(pos token.Position, name *atom.Atom) *SymbolExpr {
	return &SymbolExpr{ExprAt(pos), name}
}

func NewArrayExpr(pos token.Position, elems []Expr, ellipsis bool) *ArrayExpr {
	return &ArrayExpr{ExprAt(pos), elems, ellipsis}
}

func NewStructExpr(pos token.Position, fields []StructFieldExpr) *StructExpr {
	return &StructExpr{ExprAt(pos), fields}
}

func NewNewArrayExpr(pos token.Position, ty tag.ID, dims []Expr) *NewArrayOpExpr {
	return &NewArrayOpExpr{ExprAt(pos), ty, dims}
}

func NewCommaExpr(pos token.Position, elems []Expr) *CommaExpr { return &CommaExpr{ExprAt(pos), elems} }

func NewUnaryExpr(pos token.Position, op Token_, x Expr) *UnaryExpr {
	return &UnaryExpr{ExprAt(pos), op, x}
}

func NewPreIncExpr(pos token.Position, op Token_, x Expr) *PreIncExpr {
	return &PreIncExpr{ExprAt(pos), op, x}
}

func NewPostIncExpr(pos token.Position, op Token_, x Expr) *PostIncExpr {
	return &PostIncExpr{ExprAt(pos), op, x}
}

func NewBinaryExpr(pos token.Position, op Token_, l, r Expr) *BinaryExpr {
	return &BinaryExpr{ExprAt(pos), op, l, r}
}

func NewLogicalExpr(pos token.Position, op Token_, l, r Expr) *LogicalExpr {
	return &LogicalExpr{ExprAt(pos), op, l, r}
}

func NewTernaryExpr(pos token.Position, cond, then, els Expr) *TernaryExpr {
	return &TernaryExpr{ExprAt(pos), cond, then, els}
}

func NewChainedCompareExpr(pos token.Position, first Expr, ops []CompareOp) *ChainedCompareExpr {
	return &ChainedCompareExpr{ExprAt(pos), first, ops}
}

func NewCastExpr(pos token.Position, kind CastKind, ty tag.ID, inner Expr) *CastExpr {
	return &CastExpr{ExprAt(pos), kind, ty, inner}
}

func NewSizeofExpr(pos token.Position, name, field *atom.Atom, sep Token_, arrayLevels int) *SizeofExpr {
	return &SizeofExpr{ExprAt(pos), name, field, sep, arrayLevels}
}

func NewIsDefinedExpr(pos token.Position, name *atom.Atom) *IsDefinedExpr {
	return &IsDefinedExpr{ExprAt(pos), name}
}

func NewFieldAccessExpr(pos token.Position, op Token_, base Expr, field *atom.Atom) *FieldAccessExpr {
	return &FieldAccessExpr{ExprAt(pos), op, base, field}
}

func NewIndexExpr(pos token.Position, base, index Expr) *IndexExpr {
	return &IndexExpr{ExprAt(pos), base, index}
}

func NewCallExpr(pos token.Position, target Expr, args []CallArg) *CallExpr {
	return &CallExpr{ExprAt(pos), target, args}
}

func NewErrorExpr(pos token.Position) *ErrorExpr { return &ErrorExpr{ExprAt(pos)} }

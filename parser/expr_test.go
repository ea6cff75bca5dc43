package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NiDE-gg/sourcepawn/ast"
	"github.com/NiDE-gg/sourcepawn/token"
)

func TestExprPrecedenceMulBindsTighterThanAdd(t *testing.T) {
	p, sink := newTestParser(t, "1 + 2 * 3")
	e := p.parseExpr()
	require.False(t, sink.HasErrors())

	add, ok := e.(*ast.BinaryExpr)
	require.True(t, ok, "expected top-level +")
	assert.Equal(t, token.ADD, add.Op)

	mul, ok := add.R.(*ast.BinaryExpr)
	require.True(t, ok, "expected nested *")
	assert.Equal(t, token.MUL, mul.Op)
}

func TestExprAssignmentIsRightAssociative(t *testing.T) {
	p, sink := newTestParser(t, "a = b = 1")
	e := p.parseExpr()
	require.False(t, sink.HasErrors())

	outer, ok := e.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.ASSIGN, outer.Op)

	inner, ok := outer.R.(*ast.BinaryExpr)
	require.True(t, ok, "assignment should recurse into its own RHS")
	assert.Equal(t, token.ASSIGN, inner.Op)
}

func TestExprChainedCompareFoldsIntoOneNode(t *testing.T) {
	p, sink := newTestParser(t, "a < b < c")
	e := p.parseExpr()
	require.False(t, sink.HasErrors())

	chain, ok := e.(*ast.ChainedCompareExpr)
	require.True(t, ok, "expected a single chained compare node")
	require.Len(t, chain.Ops, 2)
	assert.Equal(t, token.LSS, chain.Ops[0].Op)
	assert.Equal(t, token.LSS, chain.Ops[1].Op)
}

func TestExprTernaryDisablesTagCastInThenBranch(t *testing.T) {
	p, sink := newTestParser(t, "x ? Float:y : z")
	e := p.parseExpr()
	require.False(t, sink.HasErrors())

	tern, ok := e.(*ast.TernaryExpr)
	require.True(t, ok)
	// with allow_tags suppressed in the then-branch, the LABEL token
	// "Float:" parses as the plain symbol Float (its ':' becomes the
	// ternary's separator), not as a cast.
	_, isSymbol := tern.Then.(*ast.SymbolExpr)
	assert.True(t, isSymbol, "expected then-branch to parse as a bare symbol, got %T", tern.Then)
}

func TestExprOldStyleTagCastOutsideTernary(t *testing.T) {
	p, sink := newTestParser(t, "Float:x")
	e := p.hier2()
	require.False(t, sink.HasErrors())

	cast, ok := e.(*ast.CastExpr)
	require.True(t, ok)
	assert.Equal(t, ast.CastTag, cast.Kind)
}

func TestExprViewAs(t *testing.T) {
	p, sink := newTestParser(t, "view_as<Float>(x)")
	e := p.parseExpr()
	require.False(t, sink.HasErrors())

	cast, ok := e.(*ast.CastExpr)
	require.True(t, ok)
	assert.Equal(t, ast.CastViewAs, cast.Kind)
}

func TestExprCallWithNamedAndSkipArguments(t *testing.T) {
	p, sink := newTestParser(t, "f(1, _, .named = 2)")
	e := p.parseExpr()
	require.False(t, sink.HasErrors())

	call, ok := e.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 3)
	assert.Nil(t, call.Args[1].X, "skip-argument should have a nil expression")
	require.NotNil(t, call.Args[2].Name)
	assert.Equal(t, "named", call.Args[2].Name.String())
}

func TestExprSizeofWithArrayLevels(t *testing.T) {
	p, sink := newTestParser(t, "sizeof(arr[])")
	e := p.parseExpr()
	require.False(t, sink.HasErrors())

	sz, ok := e.(*ast.SizeofExpr)
	require.True(t, ok)
	assert.Equal(t, 1, sz.ArrayLevels)
}

func TestExprArrayLiteralWithEllipsis(t *testing.T) {
	p, sink := newTestParser(t, "{1, 2, ...}")
	e := p.parseExpr()
	require.False(t, sink.HasErrors())

	arr, ok := e.(*ast.ArrayExpr)
	require.True(t, ok)
	assert.True(t, arr.Ellipsis)
	assert.Len(t, arr.Elems, 2)
}

func TestExprCommaExpression(t *testing.T) {
	p, sink := newTestParser(t, "a, b, c")
	e := p.parseExpr()
	require.False(t, sink.HasErrors())

	c, ok := e.(*ast.CommaExpr)
	require.True(t, ok)
	assert.Len(t, c.Elems, 3)
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NiDE-gg/sourcepawn/ast"
)

func TestParseOldStyleDeclWithTag(t *testing.T) {
	p, sink := newTestParser(t, "Float:x")
	info, ok := p.parseDecl(DeclVariable)
	require.False(t, sink.HasErrors())
	require.True(t, ok)
	require.NotNil(t, info.Name)
	assert.Equal(t, "x", info.Name.String())
	assert.False(t, info.Type.IsNew)
}

func TestParseOldStyleDeclWithoutTag(t *testing.T) {
	p, sink := newTestParser(t, "x")
	info, ok := p.parseDecl(DeclVariable)
	require.False(t, sink.HasErrors())
	require.True(t, ok)
	assert.Equal(t, "x", info.Name.String())
}

func TestParseNewStyleDecl(t *testing.T) {
	p, sink := newTestParser(t, "int x")
	info, ok := p.parseDecl(DeclVariable)
	require.False(t, sink.HasErrors())
	require.True(t, ok)
	assert.Equal(t, "x", info.Name.String())
	assert.True(t, info.Type.IsNew)
}

func TestLooksLikeNewStyleTypeNameDisambiguation(t *testing.T) {
	// "Foo bar" -> new-style (Foo is a type, bar is the declared name).
	p, _ := newTestParser(t, "Foo bar")
	assert.True(t, p.looksLikeNewStyleTypeName())

	// "Foo = 1" -> old-style: Foo is itself the declared name.
	p2, _ := newTestParser(t, "Foo = 1")
	assert.False(t, p2.looksLikeNewStyleTypeName())
}

func TestParseDeclPostfixDims(t *testing.T) {
	p, sink := newTestParser(t, "int x[4][8]")
	info, ok := p.parseDecl(DeclVariable)
	require.False(t, sink.HasErrors())
	require.True(t, ok)
	assert.Equal(t, ast.IdentArray, info.Type.Kind)
	require.Equal(t, 2, info.Type.NumDims)
	assert.Equal(t, []int{4, 8}, info.Type.DimExtent)
}

func TestParseDeclOperatorOverloadName(t *testing.T) {
	p, sink := newTestParser(t, "bool operator==(Foo:a, Foo:b)")
	info, ok := p.parseDecl(DeclVariable | DeclMaybeFunction)
	require.False(t, sink.HasErrors())
	require.True(t, ok)
	assert.Nil(t, info.Name)
	assert.NotZero(t, info.OperatorTok)
}

func TestParseDeclTooManyDimensionsReportsError(t *testing.T) {
	p, sink := newTestParser(t, "int x[1][2][3][4][5]")
	_, ok := p.parseDecl(DeclVariable)
	require.True(t, ok)
	assert.True(t, sink.HasErrors())
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NiDE-gg/sourcepawn/ast"
)

func TestTopLevelEnum(t *testing.T) {
	p, sink := newTestParser(t, "enum Color { Red, Green, Blue = 5 };")
	decls := p.parseTopLevel()
	require.False(t, sink.HasErrors())
	require.Len(t, decls, 1)

	e, ok := decls[0].(*ast.EnumDecl)
	require.True(t, ok)
	require.Len(t, e.Fields, 3)
	assert.Nil(t, e.Fields[0].Value)
	assert.NotNil(t, e.Fields[2].Value)
}

func TestTopLevelEnumStructWithMethod(t *testing.T) {
	p, sink := newTestParser(t, `enum struct Point {
		int x;
		int y;
		int Sum() {
			return this.x + this.y;
		}
	};`)
	decls := p.parseTopLevel()
	require.False(t, sink.HasErrors())
	require.Len(t, decls, 1)

	es, ok := decls[0].(*ast.EnumStructDecl)
	require.True(t, ok)
	require.Len(t, es.Fields, 2)
	require.Len(t, es.Methods, 1)
	assert.NotNil(t, es.Methods[0].Body)
}

func TestTopLevelMethodmap(t *testing.T) {
	p, sink := newTestParser(t, `methodmap Handle < Object {
		public native void Close();
		property int Length {
			public native get();
		}
	};`)
	decls := p.parseTopLevel()
	require.False(t, sink.HasErrors())
	require.Len(t, decls, 1)

	mm, ok := decls[0].(*ast.MethodmapDecl)
	require.True(t, ok)
	require.NotNil(t, mm.Parent)
	assert.Equal(t, "Object", mm.Parent.String())
	require.Len(t, mm.Methods, 1)
	require.Len(t, mm.Properties, 1)
}

func TestTopLevelFunctionDefinition(t *testing.T) {
	p, sink := newTestParser(t, `public void OnPluginStart(int a, Float:b) {
		return;
	}`)
	decls := p.parseTopLevel()
	require.False(t, sink.HasErrors())
	require.Len(t, decls, 1)

	fn, ok := decls[0].(*ast.FuncDecl)
	require.True(t, ok)
	assert.True(t, fn.IsPublic)
	require.Len(t, fn.Params, 2)
}

func TestTopLevelNativeStub(t *testing.T) {
	p, sink := newTestParser(t, "native void PrintToServer(const char[] format);")
	decls := p.parseTopLevel()
	require.False(t, sink.HasErrors())
	require.Len(t, decls, 1)

	stub, ok := decls[0].(*ast.FuncStubDecl)
	require.True(t, ok)
	assert.True(t, stub.IsNative)
}

func TestTopLevelConst(t *testing.T) {
	p, sink := newTestParser(t, "const int MAX = 10;")
	decls := p.parseTopLevel()
	require.False(t, sink.HasErrors())
	require.Len(t, decls, 1)

	c, ok := decls[0].(*ast.ConstDecl)
	require.True(t, ok)
	assert.Equal(t, "MAX", c.Name.String())
}

func TestTopLevelVariableCommaList(t *testing.T) {
	p, sink := newTestParser(t, "int a, b, c;")
	decls := p.parseTopLevel()
	require.False(t, sink.HasErrors())
	require.Len(t, decls, 3)
}

func TestTopLevelFuncenumIsFatal(t *testing.T) {
	p, sink := newTestParser(t, "funcenum Foo {};")
	p.parseTopLevel()
	require.True(t, sink.HasErrors())
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NiDE-gg/sourcepawn/ast"
)

func TestStmtIfElse(t *testing.T) {
	p, sink := newTestParser(t, "if (x) y = 1; else y = 2;")
	s := p.parseStmt()
	require.False(t, sink.HasErrors())

	ifs, ok := s.(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifs.Then)
	assert.NotNil(t, ifs.Else)
}

func TestStmtWhileSetsInLoopForBody(t *testing.T) {
	p, sink := newTestParser(t, "while (x) { break; }")
	s := p.parseStmt()
	require.False(t, sink.HasErrors())

	loop, ok := s.(*ast.DoWhileStmt)
	require.True(t, ok)
	assert.False(t, loop.IsDo)
	assert.False(t, p.flags.inLoop, "in_loop must be restored after the body")
}

func TestStmtDoWhile(t *testing.T) {
	p, sink := newTestParser(t, "do { x = x + 1; } while (x < 10);")
	s := p.parseStmt()
	require.False(t, sink.HasErrors())

	loop, ok := s.(*ast.DoWhileStmt)
	require.True(t, ok)
	assert.True(t, loop.IsDo)
}

func TestStmtBreakOutsideLoopReportsError(t *testing.T) {
	p, sink := newTestParser(t, "break;")
	p.parseStmt()
	assert.True(t, sink.HasErrors())
}

func TestStmtForLoop(t *testing.T) {
	p, sink := newTestParser(t, "for (int i = 0; i < 10; i++) { }")
	s := p.parseStmt()
	require.False(t, sink.HasErrors())

	f, ok := s.(*ast.ForStmt)
	require.True(t, ok)
	assert.NotNil(t, f.Init)
	assert.NotNil(t, f.Cond)
	assert.NotNil(t, f.Advance)
}

func TestStmtSwitchWithMultipleCaseLabels(t *testing.T) {
	p, sink := newTestParser(t, `switch (x) {
		case 1, 2: y = 1;
		default: y = 2;
	}`)
	s := p.parseStmt()
	require.False(t, sink.HasErrors())

	sw, ok := s.(*ast.SwitchStmt)
	require.True(t, ok)
	require.Len(t, sw.Cases, 1)
	assert.Len(t, sw.Cases[0].Exprs, 2)
	assert.NotNil(t, sw.Default)
}

func TestStmtLocalDeclWithInitializer(t *testing.T) {
	p, sink := newTestParser(t, "int x = 1;")
	s := p.parseStmt()
	require.False(t, sink.HasErrors())

	ds, ok := s.(*ast.DeclStmt)
	require.True(t, ok)
	vd, ok := ds.Decl.(*ast.VarDecl)
	require.True(t, ok)
	assert.NotNil(t, vd.Init)
}

func TestStmtLocalDeclCommaList(t *testing.T) {
	p, sink := newTestParser(t, "int a, b = 2;")
	s := p.parseStmt()
	require.False(t, sink.HasErrors())

	list, ok := s.(*ast.StmtList)
	require.True(t, ok)
	assert.Len(t, list.Stmts, 2)
}

func TestStmtExitWithNoExpression(t *testing.T) {
	p, sink := newTestParser(t, "exit;")
	s := p.parseStmt()
	require.False(t, sink.HasErrors())

	ex, ok := s.(*ast.ExitStmt)
	require.True(t, ok)
	assert.Nil(t, ex.X)
}

func TestStmtAssignInTestWarns(t *testing.T) {
	p, sink := newTestParser(t, "if (x = 1) y = 2;")
	p.parseStmt()
	_, warns := sink.Count()
	assert.Equal(t, 1, warns)
}

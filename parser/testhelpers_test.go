package parser

import (
	"strings"
	"testing"

	"github.com/NiDE-gg/sourcepawn/atom"
	"github.com/NiDE-gg/sourcepawn/config"
	"github.com/NiDE-gg/sourcepawn/diag"
	"github.com/NiDE-gg/sourcepawn/lexer"
	"github.com/NiDE-gg/sourcepawn/tag"
)

// newTestParser wires a real lexer over src instead of hand-building a
// token slice, so these tests exercise the lexer/parser boundary the
// same way a caller would.
func newTestParser(t *testing.T, src string) (*Parser, *diag.Sink) {
	t.Helper()
	lx := lexer.Lex("test.sp", strings.NewReader(src), len(src))
	sink := diag.NewSink()
	p := New(lx, config.Default(), sink, tag.New(), atom.New())
	return p, sink
}

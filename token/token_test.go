package token

import "testing"

func TestKindStringSingleChar(t *testing.T) {
	if got := ADD.String(); got != `'+'` {
		t.Errorf("ADD.String() = %q, want %q", got, `'+'`)
	}
}

func TestKindStringNamed(t *testing.T) {
	if got := IF.String(); got != "if" {
		t.Errorf("IF.String() = %q, want %q", got, "if")
	}
	if got := EOF.String(); got != "EOF" {
		t.Errorf("EOF.String() = %q, want %q", got, "EOF")
	}
}

func TestKindStringUnknown(t *testing.T) {
	if got := Kind(99999).String(); got != "unknown" {
		t.Errorf("Kind(99999).String() = %q, want %q", got, "unknown")
	}
}

func TestKeywordsTableRoundTrips(t *testing.T) {
	for word, kind := range Keywords {
		if kindNames[kind] != word && kind.String() != word {
			t.Errorf("keyword %q maps to %v, whose String() is %q", word, kind, kind.String())
		}
	}
}

func TestPositionString(t *testing.T) {
	p := Position{File: "foo.sp", Line: 3, Column: 7}
	if got, want := p.String(), "foo.sp:3:7"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
	if !p.IsValid() {
		t.Error("expected valid position")
	}
	if (Position{}).IsValid() {
		t.Error("zero Position must not be valid")
	}
}

func TestFilePositionTracksLines(t *testing.T) {
	src := "abc\ndef\nghi"
	f := NewFile("test.sp", len(src))
	for i, c := range src {
		if c == '\n' {
			f.AddLine(i + 1)
		}
	}
	p := f.Position(0)
	if p.Line != 1 {
		t.Errorf("offset 0: line = %d, want 1", p.Line)
	}
	p = f.Position(4)
	if p.Line != 2 {
		t.Errorf("offset 4: line = %d, want 2", p.Line)
	}
	p = f.Position(8)
	if p.Line != 3 {
		t.Errorf("offset 8: line = %d, want 3", p.Line)
	}
}

func TestTokenStringVariants(t *testing.T) {
	tok := Token{Kind: IDENT, Name: "foo", Pos: Position{File: "f", Line: 1, Column: 1}}
	if got := tok.String(); got == "" {
		t.Error("expected non-empty String()")
	}
}

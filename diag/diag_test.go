package diag

import (
	"bytes"
	"testing"

	"github.com/NiDE-gg/sourcepawn/token"
)

func pos(line, col int) token.Position {
	return token.Position{File: "test.sp", Line: line, Column: col}
}

func TestErrorfAndWarnfAccumulate(t *testing.T) {
	s := NewSink()
	s.Errorf(pos(1, 1), 10, "bad thing %d", 1)
	s.Warnf(pos(2, 1), 20, "warn thing")
	errs, warns := s.Count()
	if errs != 1 || warns != 1 {
		t.Errorf("Count() = (%d, %d), want (1, 1)", errs, warns)
	}
}

func TestFatalfCountsAsError(t *testing.T) {
	s := NewSink()
	s.Fatalf(pos(1, 1), 99, "boom")
	if !s.HasErrors() {
		t.Error("HasErrors() should be true after Fatalf")
	}
}

func TestHasErrorsIgnoresWarnings(t *testing.T) {
	s := NewSink()
	s.Warnf(pos(1, 1), 1, "just a warning")
	if s.HasErrors() {
		t.Error("HasErrors() should be false when only warnings were recorded")
	}
}

func TestOneErrorPerStatementSuppression(t *testing.T) {
	s := NewSink()
	s.Errorf(pos(1, 1), 1, "first")
	s.MarkErrorEmitted()
	s.Errorf(pos(1, 5), 2, "second, suppressed")
	errs, _ := s.Count()
	if errs != 1 {
		t.Errorf("expected suppression to keep only 1 error, got %d", errs)
	}

	s.BeginStatement()
	s.Errorf(pos(2, 1), 3, "third, after new statement")
	errs, _ = s.Count()
	if errs != 2 {
		t.Errorf("expected BeginStatement to lift suppression, got %d errors", errs)
	}
}

func TestWarnfNeverSuppressed(t *testing.T) {
	s := NewSink()
	s.Errorf(pos(1, 1), 1, "first")
	s.MarkErrorEmitted()
	s.Warnf(pos(1, 2), 2, "still recorded")
	_, warns := s.Count()
	if warns != 1 {
		t.Errorf("expected warning to survive suppression, got %d warnings", warns)
	}
}

func TestDiagnosticsSortedByPosition(t *testing.T) {
	s := NewSink()
	s.Errorf(pos(5, 1), 1, "later line")
	s.Errorf(pos(2, 1), 2, "earlier line")
	s.Errorf(pos(2, 3), 3, "same line, later column")
	got := s.Diagnostics()
	if len(got) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(got))
	}
	if got[0].Code != 2 || got[1].Code != 3 || got[2].Code != 1 {
		t.Errorf("unexpected sort order: %d, %d, %d", got[0].Code, got[1].Code, got[2].Code)
	}
}

func TestPrintWritesNonEmptyOutput(t *testing.T) {
	s := NewSink()
	s.Errorf(pos(1, 1), 1, "something broke")
	var buf bytes.Buffer
	s.Print(&buf)
	if buf.Len() == 0 {
		t.Error("Print() wrote nothing")
	}
}

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		SeverityError:   "error",
		SeverityWarning: "warning",
		SeverityFatal:   "fatal error",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", sev, got, want)
		}
	}
}

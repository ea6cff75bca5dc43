package diag

import (
	"bytes"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// TestPrintMatchesGoldenOutput pins Print's exact wire format (position,
// severity, code, message, then the trailing count line) so a change to
// that format shows up as a readable unified diff instead of a wall of
// bytes.
func TestPrintMatchesGoldenOutput(t *testing.T) {
	s := NewSink()
	s.Errorf(pos(1, 5), 10, "illegal declaration")
	s.Warnf(pos(2, 1), 230, "old-style declarator used where new-style is required")

	var buf bytes.Buffer
	s.Print(&buf)

	want := "test.sp:1:5: error 10: illegal declaration\n" +
		"test.sp:2:1: warning 230: old-style declarator used where new-style is required\n" +
		"1 errors, 1 warnings\n"

	got := buf.String()
	if got == want {
		return
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		t.Fatalf("failed to build diff: %v", err)
	}
	t.Errorf("Print() output mismatch:\n%s", text)
}

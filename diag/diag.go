// Package diag is the parser's error sink: an append-only, numbered
// diagnostic list, with the teacher's "print the offending source line
// with a caret" behavior (report.go, cpp/error.go) generalized to
// severities and colorized output.
package diag

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/NiDE-gg/sourcepawn/token"
)

// Severity classifies a diagnostic, mirroring spec.md §7's error kinds.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityFatal:
		return "fatal error"
	default:
		return "error"
	}
}

// Diagnostic is one numbered message at a position.
type Diagnostic struct {
	Code     int
	Severity Severity
	Pos      token.Position
	Message  string
}

// Sink is the append-only error list. The parser is its sole writer.
type Sink struct {
	diags    []Diagnostic
	suppress bool // one_error_per_statement: suppress further errors for the current statement
}

// NewSink creates an empty sink.
func NewSink() *Sink { return &Sink{} }

// Errorf appends an error-severity diagnostic, honoring the
// one-error-per-statement suppression flag.
func (s *Sink) Errorf(pos token.Position, code int, format string, args ...interface{}) {
	if s.suppress {
		return
	}
	s.diags = append(s.diags, Diagnostic{Code: code, Severity: SeverityError, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// Warnf appends a warning-severity diagnostic. Warnings are never
// suppressed by one_error_per_statement — only errors are.
func (s *Sink) Warnf(pos token.Position, code int, format string, args ...interface{}) {
	s.diags = append(s.diags, Diagnostic{Code: code, Severity: SeverityWarning, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// Fatalf appends a fatal diagnostic. Callers still return normally;
// Fatal does not unwind the stack on its own.
func (s *Sink) Fatalf(pos token.Position, code int, format string, args ...interface{}) {
	s.diags = append(s.diags, Diagnostic{Code: code, Severity: SeverityFatal, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// BeginStatement resets the one-error-per-statement suppression for a
// new statement.
func (s *Sink) BeginStatement() { s.suppress = false }

// MarkErrorEmitted is called after Errorf to start suppressing further
// errors until the next BeginStatement, when the scoped
// one_error_per_statement flag is active. The parser package calls
// this explicitly because only it knows whether that flag is set.
func (s *Sink) MarkErrorEmitted() { s.suppress = true }

// Diagnostics returns the accumulated list, ordered by source position.
func (s *Sink) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Pos, out[j].Pos
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return out
}

// HasErrors reports whether any error or fatal diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity != SeverityWarning {
			return true
		}
	}
	return false
}

// Count returns (errors, warnings).
func (s *Sink) Count() (errs, warns int) {
	for _, d := range s.diags {
		switch d.Severity {
		case SeverityWarning:
			warns++
		default:
			errs++
		}
	}
	return
}

// Print writes every diagnostic to w, in position order, with the
// source line and a caret under the offending column — report.go's
// behavior — colorized the way a CLI tool decides to colorize: only
// when w is a real terminal.
func (s *Sink) Print(w io.Writer) {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd())
	}
	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)

	for _, d := range s.Diagnostics() {
		label := fmt.Sprintf("%s %d", d.Severity, d.Code)
		if colorize {
			if d.Severity == SeverityWarning {
				label = warnColor.Sprint(label)
			} else {
				label = errColor.Sprint(label)
			}
		}
		fmt.Fprintf(w, "%s: %s: %s\n", d.Pos, label, d.Message)
		printSourceLine(w, d.Pos)
	}
	errs, warns := s.Count()
	fmt.Fprintf(w, "%s errors, %s warnings\n", humanize.Comma(int64(errs)), humanize.Comma(int64(warns)))
}

func printSourceLine(w io.Writer, pos token.Position) {
	f, err := os.Open(pos.File)
	if err != nil {
		return
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	line := 1
	for sc.Scan() {
		if line == pos.Line {
			text := sc.Text()
			fmt.Fprintln(w, text)
			col := 0
			for i, r := range text {
				if i+1 >= pos.Column {
					break
				}
				if r == '\t' {
					col += 4
				} else {
					col++
				}
			}
			fmt.Fprintln(w, padding(col)+"^")
			return
		}
		line++
	}
}

func padding(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

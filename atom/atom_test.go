package atom

import "testing"

func TestInternReturnsSamePointerForEqualNames(t *testing.T) {
	in := New()
	a := in.Intern("foo")
	b := in.Intern("foo")
	if a != b {
		t.Errorf("Intern(\"foo\") returned distinct atoms: %p != %p", a, b)
	}
}

func TestInternDistinguishesDifferentNames(t *testing.T) {
	in := New()
	a := in.Intern("foo")
	b := in.Intern("bar")
	if a == b {
		t.Error("Intern(\"foo\") and Intern(\"bar\") must not alias")
	}
}

func TestAtomStringReturnsSpelling(t *testing.T) {
	in := New()
	a := in.Intern("OnPluginStart")
	if got, want := a.String(), "OnPluginStart"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNilAtomStringDoesNotPanic(t *testing.T) {
	var a *Atom
	if got, want := a.String(), "<nil>"; got != want {
		t.Errorf("nil Atom String() = %q, want %q", got, want)
	}
}

func TestLenCountsDistinctAtoms(t *testing.T) {
	in := New()
	in.Intern("a")
	in.Intern("b")
	in.Intern("a")
	if got, want := in.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

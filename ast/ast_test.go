package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/NiDE-gg/sourcepawn/atom"
	"github.com/NiDE-gg/sourcepawn/token"
)

func TestFactoryNodeCarriesItsOwnPosition(t *testing.T) {
	in := atom.New()
	name := in.Intern("MAX")
	pos := token.Position{File: "f.sp", Line: 3, Column: 1}
	d := NewConstDecl(pos, name, TypeRef{Kind: IdentScalar}, nil)
	if d.Position() != pos {
		t.Errorf("Position() = %+v, want %+v", d.Position(), pos)
	}
}

// Two ConstDecls built from the same declarator at different source
// positions should be structurally identical once position is factored
// out — a sanity check that the factory doesn't smuggle incidental
// state (like the position itself) into a field meant to be comparable.
var atomByName = cmp.Comparer(func(a, b *atom.Atom) bool { return a.String() == b.String() })

func TestFactoryNodesStructurallyEqualIgnoringPosition(t *testing.T) {
	in := atom.New()
	name := in.Intern("MAX")
	typ := TypeRef{Kind: IdentScalar, IsNew: true}

	a := NewConstDecl(token.Position{File: "a.sp", Line: 1}, name, typ, nil)
	b := NewConstDecl(token.Position{File: "b.sp", Line: 99}, name, typ, nil)

	diff := cmp.Diff(a, b, cmpopts.IgnoreUnexported(ConstDecl{}), atomByName)
	if diff != "" {
		t.Errorf("ConstDecl mismatch ignoring position (-a +b):\n%s", diff)
	}
}

func TestFactoryNodesDifferOnName(t *testing.T) {
	in := atom.New()
	typ := TypeRef{Kind: IdentScalar, IsNew: true}
	a := NewConstDecl(token.Position{}, in.Intern("MAX"), typ, nil)
	b := NewConstDecl(token.Position{}, in.Intern("MIN"), typ, nil)

	diff := cmp.Diff(a, b, cmpopts.IgnoreUnexported(ConstDecl{}), atomByName)
	if diff == "" {
		t.Error("expected a diff between ConstDecls with different names")
	}
}

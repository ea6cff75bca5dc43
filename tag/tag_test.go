package tag

import "testing"

func TestBuiltinTagsPreregistered(t *testing.T) {
	tb := New()
	cases := map[string]ID{
		"int": Int, "bool": Bool, "Float": Float, "String": String,
		"void": Void, "any": Any, "Object": Object,
	}
	for name, want := range cases {
		got, ok := tb.Find(name)
		if !ok {
			t.Errorf("builtin tag %q not found", name)
			continue
		}
		if got != want {
			t.Errorf("Find(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestAddIsIdempotentPerName(t *testing.T) {
	tb := New()
	a := tb.Add("MyTag")
	b := tb.Add("MyTag")
	if a != b {
		t.Errorf("Add(\"MyTag\") twice gave %d and %d", a, b)
	}
}

func TestAddAllocatesDistinctIdsForDistinctNames(t *testing.T) {
	tb := New()
	a := tb.Add("Foo")
	b := tb.Add("Bar")
	if a == b {
		t.Error("Add(\"Foo\") and Add(\"Bar\") must not collide")
	}
}

func TestFindReportsUnknownNames(t *testing.T) {
	tb := New()
	_, ok := tb.Find("NeverAdded")
	if ok {
		t.Error("Find(\"NeverAdded\") should report unknown before Add")
	}
	if tb.IsKnown("NeverAdded") {
		t.Error("IsKnown(\"NeverAdded\") should be false before Add")
	}
	tb.Add("NeverAdded")
	if !tb.IsKnown("NeverAdded") {
		t.Error("IsKnown(\"NeverAdded\") should be true after Add")
	}
}

func TestNameRoundTripsSpelling(t *testing.T) {
	tb := New()
	id := tb.Add("Handle")
	if got, want := tb.Name(id), "Handle"; got != want {
		t.Errorf("Name(id) = %q, want %q", got, want)
	}
}

func TestNameOfUnknownIDIsReported(t *testing.T) {
	tb := New()
	if got := tb.Name(ID(9999)); got != "<unknown tag>" {
		t.Errorf("Name(9999) = %q, want \"<unknown tag>\"", got)
	}
}

func TestAddSurvivesCacheEviction(t *testing.T) {
	tb := New()
	first := tb.Add("Warmed")
	for i := 0; i < 300; i++ {
		tb.Add("filler" + string(rune('A'+i%26)) + string(rune('A'+i/26)))
	}
	if got, ok := tb.Find("Warmed"); !ok || got != first {
		t.Errorf("Find(\"Warmed\") after cache churn = (%d, %v), want (%d, true)", got, ok, first)
	}
}

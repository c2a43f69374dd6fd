package symbol

import "testing"

func TestInternIsIdempotent(t *testing.T) {
	table := New()
	a := table.Intern("foo")
	b := table.Intern("foo")
	if a != b {
		t.Fatalf("Intern(%q) returned different ids: %d, %d", "foo", a, b)
	}
}

func TestInternAssignsDenseIDs(t *testing.T) {
	table := New()
	foo := table.Intern("foo")
	bar := table.Intern("bar")
	if foo == None || bar == None {
		t.Fatalf("interned ids must not be None: foo=%d bar=%d", foo, bar)
	}
	if foo == bar {
		t.Fatalf("distinct strings got the same id: %d", foo)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
}

func TestLookupRoundTrips(t *testing.T) {
	table := New()
	id := table.Intern("hello")
	got, ok := table.Lookup(id)
	if !ok || got != "hello" {
		t.Fatalf("Lookup(%d) = (%q, %v), want (\"hello\", true)", id, got, ok)
	}
}

func TestLookupNoneIsAbsent(t *testing.T) {
	table := New()
	if _, ok := table.Lookup(None); ok {
		t.Fatal("Lookup(None) should report absent")
	}
}

func TestLookupUnknownIsAbsent(t *testing.T) {
	table := New()
	table.Intern("only")
	if _, ok := table.Lookup(ID(99)); ok {
		t.Fatal("Lookup of a never-assigned id should report absent")
	}
}

package notation

import "testing"

func TestNewTextMeasuresRuneWidth(t *testing.T) {
	text := NewText("héllo")
	if text.Width != 5 {
		t.Fatalf("Width = %d, want 5 (rune count, not byte count)", text.Width)
	}
}

func TestCatOfNothingIsEmptyText(t *testing.T) {
	n := Cat()
	text, ok := n.(*Text)
	if !ok || text.S != "" {
		t.Fatalf("Cat() = %#v, want an empty *Text", n)
	}
}

func TestCatOfOneReturnsItUnwrapped(t *testing.T) {
	x := NewText("a")
	if got := Cat(x); got != Notation(x) {
		t.Fatalf("Cat(x) = %#v, want x itself", got)
	}
}

func TestCatFoldsLeftAssociatively(t *testing.T) {
	a, b, c := NewText("a"), NewText("b"), NewText("c")
	got := Cat(a, b, c)
	outer, ok := got.(*Concat)
	if !ok {
		t.Fatalf("Cat(a,b,c) = %#v, want *Concat", got)
	}
	if outer.B != Notation(c) {
		t.Fatalf("outer.B = %#v, want c", outer.B)
	}
	inner, ok := outer.A.(*Concat)
	if !ok {
		t.Fatalf("outer.A = %#v, want *Concat", outer.A)
	}
	if inner.A != Notation(a) || inner.B != Notation(b) {
		t.Fatalf("inner = %#v, want {A:a B:b}", inner)
	}
}

func TestAltBuildsChoiceWithGivenBranches(t *testing.T) {
	a, b := NewText("flat"), NewText("broken")
	got := Alt(a, b).(*Choice)
	if got.A != Notation(a) || got.B != Notation(b) {
		t.Fatalf("Alt(a,b) = %#v, want {A:a B:b}", got)
	}
}

func TestIndWrapsInIndent(t *testing.T) {
	x := NewText("body")
	got, ok := Ind(x).(*Indent)
	if !ok || got.X != Notation(x) {
		t.Fatalf("Ind(x) = %#v, want *Indent{X: x}", got)
	}
}

func TestBraceWrapsInBraced(t *testing.T) {
	x := NewText("{}")
	got, ok := Brace(x).(*Braced)
	if !ok || got.X != Notation(x) {
		t.Fatalf("Brace(x) = %#v, want *Braced{X: x}", got)
	}
}

func TestAsFlatWrapsInFlat(t *testing.T) {
	x := Alt(NewText("a"), NewText("b"))
	got, ok := AsFlat(x).(*Flat)
	if !ok || got.X != x {
		t.Fatalf("AsFlat(x) = %#v, want *Flat{X: x}", got)
	}
}

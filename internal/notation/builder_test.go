package notation

import (
	"testing"

	"github.com/aledsdavies/esfmt/internal/ast"
	"github.com/aledsdavies/esfmt/internal/symbol"
)

func TestBuildEmptyTreeIsEmptyText(t *testing.T) {
	tree := ast.New()
	doc := Build(tree, symbol.New())
	text, ok := doc.(*Text)
	if !ok || text.S != "" {
		t.Fatalf("Build(empty) = %#v, want empty *Text", doc)
	}
}

func TestBuildNumberLiteralStatement(t *testing.T) {
	symbols := symbol.New()
	id := symbols.Intern("42")
	tree := ast.New()
	tree.Append(ast.ExprNumber, 1, uint32(id))
	tree.Append(ast.StmtExpr, 2, 0)

	doc := Build(tree, symbols)
	concat, ok := doc.(*Concat)
	if !ok {
		t.Fatalf("Build() = %#v, want *Concat", doc)
	}
	num, ok := concat.A.(*Text)
	if !ok || num.S != "42" {
		t.Fatalf("concat.A = %#v, want Text{S: \"42\"}", concat.A)
	}
	semi, ok := concat.B.(*Text)
	if !ok || semi.S != ";" {
		t.Fatalf("concat.B = %#v, want Text{S: \";\"}", concat.B)
	}
}

func TestBuildMultipleTopLevelStatementsJoinWithNewline(t *testing.T) {
	symbols := symbol.New()
	a := symbols.Intern("a")
	b := symbols.Intern("b")
	tree := ast.New()
	tree.Append(ast.ExprWord, 1, uint32(a))
	tree.Append(ast.StmtExpr, 2, 0)
	tree.Append(ast.ExprWord, 1, uint32(b))
	tree.Append(ast.StmtExpr, 2, 0)

	doc := Build(tree, symbols)
	outer, ok := doc.(*Concat)
	if !ok {
		t.Fatalf("Build() = %#v, want *Concat", doc)
	}
	mid, ok := outer.A.(*Concat)
	if !ok {
		t.Fatalf("outer.A = %#v, want *Concat", outer.A)
	}
	if _, ok := mid.B.(*Newline); !ok {
		t.Fatalf("mid.B = %#v, want *Newline", mid.B)
	}
}

func TestBuildEmptyBlock(t *testing.T) {
	tree := ast.New()
	tree.Append(ast.StmtBlockIntro, 1, 0)
	tree.Append(ast.StmtBlock, 2, 0)

	doc := Build(tree, symbol.New())
	braced, ok := doc.(*Braced)
	if !ok {
		t.Fatalf("Build() = %#v, want *Braced", doc)
	}
	inner, ok := braced.X.(*Concat)
	if !ok {
		t.Fatalf("braced.X = %#v, want *Concat", braced.X)
	}
	// Cat("{", NL, "}") folds left: ((("{", NL), "}").
	first, ok := inner.A.(*Concat)
	if !ok {
		t.Fatalf("inner.A = %#v, want *Concat", inner.A)
	}
	open, ok := first.A.(*Text)
	if !ok || open.S != "{" {
		t.Fatalf("first.A = %#v, want Text{S: \"{\"}", first.A)
	}
}

func TestBuildIfWithoutElseReturnsHeadOnly(t *testing.T) {
	symbols := symbol.New()
	cond := symbols.Intern("true")
	tree := ast.New()
	tree.Append(ast.StmtIfIntro, 1, 0)
	tree.Append(ast.ExprBoolean, 1, uint32(cond))
	tree.Append(ast.StmtBlockIntro, 1, 0)
	tree.Append(ast.StmtBlock, 2, 0)
	tree.Append(ast.StmtIf, 5, 0)

	doc := Build(tree, symbols)
	// head = Cat("if (", condChoice, ")", thenChoice), which folds left:
	// (((  "if (" , condChoice ), ")"), thenChoice).
	outer, ok := doc.(*Concat)
	if !ok {
		t.Fatalf("Build() = %#v, want *Concat", doc)
	}
	mid, ok := outer.A.(*Concat)
	if !ok {
		t.Fatalf("outer.A = %#v, want *Concat", outer.A)
	}
	inner, ok := mid.A.(*Concat)
	if !ok {
		t.Fatalf("mid.A = %#v, want *Concat", mid.A)
	}
	head, ok := inner.A.(*Text)
	if !ok || head.S != "if (" {
		t.Fatalf("inner.A = %#v, want Text{S: \"if (\"}", inner.A)
	}
}

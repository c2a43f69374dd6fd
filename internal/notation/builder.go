package notation

import (
	"github.com/aledsdavies/esfmt/internal/ast"
	"github.com/aledsdavies/esfmt/internal/symbol"
)

// stackEntry is the builder's (optional Notation, subtree_size) pair.
type stackEntry struct {
	Notation Notation
	Size     int
}

// Build traverses tree in post-order, composing a Notation bottom-up: for
// each node it pops as many sibling sub-notations as needed to cover the
// node's own subtree, composes a notation for that node kind, and pushes
// the result back with the node's subtree_size. Remaining top-level entries
// (multiple statements at the top of the file) are concatenated with
// newlines into the document notation.
func Build(tree *ast.Tree, symbols *symbol.Table) Notation {
	var stack []stackEntry
	for i := 1; i < tree.Len(); i++ {
		size := tree.SubtreeSizeAt(i)
		children := popChildren(&stack, size-1)
		n := buildNode(tree.KindAt(i), tree.ExtraAt(i), children, symbols)
		stack = append(stack, stackEntry{Notation: n, Size: size})
	}
	if len(stack) == 0 {
		return NewText("")
	}
	doc := stack[0].Notation
	for _, e := range stack[1:] {
		doc = Cat(doc, NL(), e.Notation)
	}
	return doc
}

// popChildren pops entries off the end of *stack until their sizes sum to
// total, returning them in left-to-right child order.
func popChildren(stack *[]stackEntry, total int) []Notation {
	s := *stack
	sum := 0
	start := len(s)
	for sum < total {
		start--
		sum += s[start].Size
	}
	popped := s[start:]
	*stack = s[:start]
	out := make([]Notation, len(popped))
	for i, e := range popped {
		out[i] = e.Notation
	}
	return out
}

// buildNode composes the notation for one AST node kind. children are
// already-built sibling notations in left-to-right order.
func buildNode(kind ast.Kind, extra uint32, children []Notation, symbols *symbol.Table) Notation {
	switch kind {
	case ast.UtilSentinel, ast.StmtIfIntro, ast.StmtBlockIntro:
		return NewText("")
	case ast.StmtEmpty:
		return NewText(";")
	case ast.ExprNumber, ast.ExprBoolean, ast.ExprWord, ast.ExprString, ast.ExprTemplateChunk:
		text, _ := symbols.Lookup(symbol.ID(extra))
		return NewText(text)
	case ast.ExprTemplate:
		return Cat(children...)
	case ast.StmtBlock:
		return buildBlock(children)
	case ast.StmtIf:
		return buildIf(children)
	case ast.StmtExpr:
		return Cat(children[0], NewText(";"))
	default:
		return Cat(children...)
	}
}

// buildBlock implements `"{" & indent(nl & body) & "}"`, wrapped in braced,
// with the empty block special case `"{" & nl & "}"`. children[0] is the
// StmtBlockIntro placeholder (builds to empty text).
func buildBlock(children []Notation) Notation {
	stmts := children[1:]
	if len(stmts) == 0 {
		return Brace(Cat(NewText("{"), NL(), NewText("}")))
	}
	var body Notation
	for _, s := range stmts {
		if body == nil {
			body = Cat(s, NL())
		} else {
			body = Cat(body, s, NL())
		}
	}
	return Brace(Cat(NewText("{"), Ind(Cat(NL(), body)), NewText("}")))
}

// buildIf implements the StmtIf rule: a flat-first choice between the
// condition on one line or broken across three, likewise for
// the then-branch, plus an optional else whose prefix depends on whether
// the then-branch was a brace block (detected via the Braced marker).
// children[0] is StmtIfIntro, children[1] is the condition, children[2] is
// the then-branch, children[3] (if present) is the else-branch.
func buildIf(children []Notation) Notation {
	cond := children[1]
	then := children[2]

	condChoice := Alt(cond, Cat(NL(), Ind(cond), NL()))
	thenChoice := Alt(Cat(NewText(" "), then), Cat(NL(), Ind(then)))

	head := Cat(NewText("if ("), condChoice, NewText(")"), thenChoice)

	if len(children) < 4 {
		return head
	}

	elseNotation := children[3]
	prefix := "\nelse "
	if _, thenIsBraced := then.(*Braced); thenIsBraced {
		prefix = " else "
	}
	return Cat(head, NewText(prefix), elseNotation)
}

package fixture

import (
	"encoding/hex"
	"testing"

	"github.com/aledsdavies/esfmt/internal/ast"
	"github.com/aledsdavies/esfmt/internal/lexer"
	"github.com/aledsdavies/esfmt/internal/parser"
	"github.com/aledsdavies/esfmt/internal/symbol"
	"github.com/aledsdavies/esfmt/internal/token"
)

func newTestSymbolsForHash() *symbol.Table {
	return symbol.New()
}

func lexAndParseForHash(t *testing.T, src string, symbols *symbol.Table) (*token.Stream, *ast.Tree) {
	t.Helper()
	return lexAndParse(t, src, symbols)
}

func hexEncode(b []byte) string {
	return hex.EncodeToString(b)
}

func lexAndParse(t *testing.T, src string, symbols *symbol.Table) (*token.Stream, *ast.Tree) {
	t.Helper()
	tokens, err := lexer.New([]byte(src), symbols).Lex()
	if err != nil {
		t.Fatalf("Lex(%q) returned error: %v", src, err)
	}
	tree, err := parser.Parse(tokens, symbols)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return tokens, tree
}

func TestHashIsDeterministic(t *testing.T) {
	symbols := symbol.New()
	tokens, tree := lexAndParse(t, "42;", symbols)

	a, err := Hash(tokens, tree)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := Hash(tokens, tree)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a != b {
		t.Fatalf("Hash is not deterministic across calls: %x != %x", a, b)
	}
}

func TestHashDiffersForDifferentSource(t *testing.T) {
	// The canonical projection drops literal text, so the two sources must
	// differ in structure (a Number versus a Word), not just in spelling.
	symbolsA := symbol.New()
	tokensA, treeA := lexAndParse(t, "42;", symbolsA)
	symbolsB := symbol.New()
	tokensB, treeB := lexAndParse(t, "x;", symbolsB)

	a, err := Hash(tokensA, treeA)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := Hash(tokensB, treeB)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatal("distinct source produced identical hashes")
	}
}

func TestHashIgnoresIdentifierSpelling(t *testing.T) {
	// Extra is a symbol.ID for Word tokens, so two structurally identical
	// programs with different identifier names interned in the same order
	// hash identically — the canonical projection drops raw text.
	symbolsA := symbol.New()
	tokensA, treeA := lexAndParse(t, "foo;", symbolsA)
	symbolsB := symbol.New()
	tokensB, treeB := lexAndParse(t, "bar;", symbolsB)

	a, err := Hash(tokensA, treeA)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := Hash(tokensB, treeB)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a != b {
		t.Fatalf("hash should be identical for structurally identical programs: %x != %x", a, b)
	}
}

func TestHashIgnoresIdentifierLength(t *testing.T) {
	// Unlike the previous case, these identifiers differ in length, so the
	// canonical projection must also drop source offsets/lengths (not just
	// raw text) for the hash to still match.
	symbolsA := symbol.New()
	tokensA, treeA := lexAndParse(t, "x;", symbolsA)
	symbolsB := symbol.New()
	tokensB, treeB := lexAndParse(t, "averylongidentifier;", symbolsB)

	a, err := Hash(tokensA, treeA)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := Hash(tokensB, treeB)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a != b {
		t.Fatalf("hash should be identical regardless of identifier length: %x != %x", a, b)
	}
}

package fixture

import (
	"encoding/hex"
	"fmt"

	"github.com/aledsdavies/esfmt/internal/ast"
	"github.com/aledsdavies/esfmt/internal/layout"
	"github.com/aledsdavies/esfmt/internal/lexer"
	"github.com/aledsdavies/esfmt/internal/notation"
	"github.com/aledsdavies/esfmt/internal/parser"
	"github.com/aledsdavies/esfmt/internal/symbol"
	"github.com/aledsdavies/esfmt/internal/token"
)

// Result is the outcome of running a fixture through the full
// lex/parse/print pipeline and comparing it against the fixture's declared
// expectations.
type Result struct {
	Path    string
	Skipped bool
	Reason  string
	Errors  []string
}

// OK reports whether the fixture passed (or was legitimately skipped).
func (r *Result) OK() bool { return r.Skipped || len(r.Errors) == 0 }

// Check lexes, parses, and re-prints f.Source, comparing the result
// against f.Frontmatter's tokens/ast/hash expectations and the round-trip
// invariant: re-printing the parsed AST must reproduce the original
// source exactly.
func Check(f *Fixture, toolVersion string) *Result {
	res := &Result{Path: f.Path}

	if skip, reason := f.Skip(toolVersion); skip {
		res.Skipped = true
		res.Reason = reason
		return res
	}

	symbols := symbol.New()
	tokens, err := lexer.New(f.Source, symbols).Lex()
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("lex: %v", err))
		return res
	}

	if f.Frontmatter.Tokens != nil {
		got := tokenKindNames(tokens)
		if !equalStrings(got, f.Frontmatter.Tokens) {
			res.Errors = append(res.Errors, fmt.Sprintf("tokens: want %v, got %v", f.Frontmatter.Tokens, got))
		}
	}

	tree, err := parser.Parse(tokens, symbols)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("parse: %v", err))
		return res
	}

	if f.Frontmatter.AST != nil {
		got := astKindNames(tree)
		if !equalStrings(got, f.Frontmatter.AST) {
			res.Errors = append(res.Errors, fmt.Sprintf("ast: want %v, got %v", f.Frontmatter.AST, got))
		}
	}

	if f.Frontmatter.Hash != "" {
		sum, err := Hash(tokens, tree)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("hash: %v", err))
		} else if got := hex.EncodeToString(sum[:]); got != f.Frontmatter.Hash {
			res.Errors = append(res.Errors, fmt.Sprintf("hash: want %s, got %s", f.Frontmatter.Hash, got))
		}
	}

	doc := notation.Build(tree, symbols)
	printed := layout.Render(doc)
	if printed != string(f.Source) {
		res.Errors = append(res.Errors, fmt.Sprintf("round-trip mismatch:\nwant: %q\ngot:  %q", f.Source, printed))
	}

	return res
}

func tokenKindNames(tokens *token.Stream) []string {
	out := make([]string, 0, tokens.Len())
	for i := 0; i < tokens.Len(); i++ {
		if tokens.KindAt(i) == token.EOF {
			continue
		}
		out = append(out, tokens.KindAt(i).String())
	}
	return out
}

func astKindNames(tree *ast.Tree) []string {
	out := make([]string, 0, tree.Len()-1)
	for i := 1; i < tree.Len(); i++ {
		out = append(out, tree.KindAt(i).String())
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

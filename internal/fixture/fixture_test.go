package fixture

import (
	"strings"
	"testing"

	"github.com/aledsdavies/esfmt/internal/errkit"
)

func TestParseWithoutFrontmatter(t *testing.T) {
	f, err := Parse("plain.js", []byte("42;"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if f.HasFrontmatter {
		t.Fatal("HasFrontmatter = true, want false")
	}
	if string(f.Source) != "42;" {
		t.Fatalf("Source = %q, want %q", f.Source, "42;")
	}
}

func TestParseExtractsFrontmatterAndSource(t *testing.T) {
	raw := "/*---\ntokens:\n  - Number\n  - Semicolon\nast:\n  - ExprNumber\n  - StmtExpr\n---*/\n42;"
	f, err := Parse("with-frontmatter.js", []byte(raw))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !f.HasFrontmatter {
		t.Fatal("HasFrontmatter = false, want true")
	}
	if string(f.Source) != "42;" {
		t.Fatalf("Source = %q, want %q", f.Source, "42;")
	}
	wantTokens := []string{"Number", "Semicolon"}
	if len(f.Frontmatter.Tokens) != len(wantTokens) {
		t.Fatalf("Tokens = %v, want %v", f.Frontmatter.Tokens, wantTokens)
	}
	for i := range wantTokens {
		if f.Frontmatter.Tokens[i] != wantTokens[i] {
			t.Fatalf("Tokens = %v, want %v", f.Frontmatter.Tokens, wantTokens)
		}
	}
}

func TestParseRejectsUnknownKeyWithSuggestion(t *testing.T) {
	raw := "/*---\ntoken:\n  - Number\n---*/\n42;"
	_, err := Parse("bad-key.js", []byte(raw))
	if err == nil {
		t.Fatal("expected an error for an unknown frontmatter key")
	}
	if !strings.Contains(err.Error(), "token") {
		t.Fatalf("error %v should mention the offending key", err)
	}
	d, ok := err.(errkit.Diagnostic)
	if !ok || d.Suggestion != "tokens" {
		t.Fatalf("error %#v should be a Diagnostic suggesting %q", err, "tokens")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	raw := "/*---\ntokens: [unterminated\n---*/\n42;"
	_, err := Parse("bad-yaml.js", []byte(raw))
	if err == nil {
		t.Fatal("expected an error for malformed frontmatter YAML")
	}
}

func TestSkipWithNoMinVersionNeverSkips(t *testing.T) {
	f := &Fixture{}
	if skip, _ := f.Skip("v1.0.0"); skip {
		t.Fatal("Skip() = true with no min_tool_version set")
	}
}

func TestSkipWhenToolIsOlder(t *testing.T) {
	f := &Fixture{Frontmatter: Frontmatter{MinToolVersion: "2.0.0"}}
	skip, reason := f.Skip("v1.0.0")
	if !skip {
		t.Fatal("Skip() = false, want true when the tool is older than min_tool_version")
	}
	if reason == "" {
		t.Fatal("expected a non-empty skip reason")
	}
}

func TestSkipWhenToolIsNewerOrEqual(t *testing.T) {
	f := &Fixture{Frontmatter: Frontmatter{MinToolVersion: "1.0.0"}}
	if skip, _ := f.Skip("v1.0.0"); skip {
		t.Fatal("Skip() = true, want false when the tool version satisfies min_tool_version")
	}
	if skip, _ := f.Skip("v2.0.0"); skip {
		t.Fatal("Skip() = true, want false when the tool is newer than min_tool_version")
	}
}

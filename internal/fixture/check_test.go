package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPassesRoundTrip(t *testing.T) {
	f, err := Parse("ok.js", []byte("42;"))
	require.NoError(t, err)
	res := Check(f, "v1.0.0")
	assert.True(t, res.OK(), "Check() failed: %v", res.Errors)
}

func TestCheckVerifiesDeclaredTokens(t *testing.T) {
	raw := "/*---\ntokens:\n  - Number\n  - Semicolon\n---*/\n42;"
	f, err := Parse("tokens.js", []byte(raw))
	require.NoError(t, err)
	res := Check(f, "v1.0.0")
	assert.True(t, res.OK(), "Check() failed: %v", res.Errors)
}

func TestCheckReportsTokenMismatch(t *testing.T) {
	raw := "/*---\ntokens:\n  - Number\n---*/\n42;"
	f, err := Parse("tokens-mismatch.js", []byte(raw))
	require.NoError(t, err)
	res := Check(f, "v1.0.0")
	assert.False(t, res.OK(), "Check() passed, want a token mismatch failure")
}

func TestCheckVerifiesDeclaredAST(t *testing.T) {
	raw := "/*---\nast:\n  - ExprNumber\n  - StmtExpr\n---*/\n42;"
	f, err := Parse("ast.js", []byte(raw))
	require.NoError(t, err)
	res := Check(f, "v1.0.0")
	assert.True(t, res.OK(), "Check() failed: %v", res.Errors)
}

func TestCheckVerifiesDeclaredHash(t *testing.T) {
	symbols := newTestSymbolsForHash()
	tokens, tree := lexAndParseForHash(t, "42;", symbols)
	sum, err := Hash(tokens, tree)
	require.NoError(t, err)

	raw := "/*---\nhash: " + hexEncode(sum[:]) + "\n---*/\n42;"
	f, err := Parse("hash.js", []byte(raw))
	require.NoError(t, err)
	res := Check(f, "v1.0.0")
	assert.True(t, res.OK(), "Check() failed: %v", res.Errors)
}

func TestCheckReportsHashMismatch(t *testing.T) {
	// Quoted, so YAML reads the all-digit digest as a string, not an integer.
	raw := "/*---\nhash: \"0000000000000000000000000000000000000000000000000000000000000000\"\n---*/\n42;"
	f, err := Parse("hash-mismatch.js", []byte(raw))
	require.NoError(t, err)
	res := Check(f, "v1.0.0")
	assert.False(t, res.OK(), "Check() passed, want a hash mismatch failure")
}

func TestCheckSkipsWhenToolTooOld(t *testing.T) {
	raw := "/*---\nmin_tool_version: 99.0.0\n---*/\n42;"
	f, err := Parse("future.js", []byte(raw))
	require.NoError(t, err)
	res := Check(f, "v1.0.0")
	require.True(t, res.Skipped, "Check() did not skip a fixture requiring a newer tool version")
	assert.True(t, res.OK(), "a skipped fixture should be OK")
}

func TestCheckReportsLexError(t *testing.T) {
	f, err := Parse("lex-error.js", []byte("'unterminated\n"))
	require.NoError(t, err)
	res := Check(f, "v1.0.0")
	assert.False(t, res.OK(), "Check() passed, want a lex error")
}

func TestCheckReportsRoundTripMismatch(t *testing.T) {
	// The printer always normalizes whitespace between tokens, so a source
	// with irregular spacing never round-trips byte for byte.
	f, err := Parse("mismatch.js", []byte("if   (true)   {  }"))
	require.NoError(t, err)
	res := Check(f, "v1.0.0")
	assert.False(t, res.OK(), "Check() passed, want a round-trip mismatch")
}

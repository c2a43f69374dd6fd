package errkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticErrorWithoutLine(t *testing.T) {
	d := Diagnostic{Code: CodeLex, Message: "bad byte", Offset: 5}
	got := d.Error()
	assert.Contains(t, got, "offset 5")
	assert.Contains(t, got, "bad byte")
}

func TestDiagnosticErrorWithLine(t *testing.T) {
	d := Diagnostic{Code: CodeParse, Message: "unexpected token", Line: 3, Column: 7}
	assert.Contains(t, d.Error(), "3:7")
}

func TestWrapNilIsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
}

func TestWrapAddsMessage(t *testing.T) {
	inner := Diagnostic{Code: CodeLex, Message: "oops"}
	err := Wrap(inner, "while scanning")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "while scanning")
}

func TestSuggestKeywordFindsCloseMatch(t *testing.T) {
	candidates := []string{"if", "else", "for", "while"}
	assert.Equal(t, "if", SuggestKeyword("fi", candidates))
}

func TestSuggestKeywordRejectsUnrelatedInput(t *testing.T) {
	candidates := []string{"if", "else", "for", "while"}
	assert.Empty(t, SuggestKeyword("xyzxyzxyzxyz", candidates))
}

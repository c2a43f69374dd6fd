// Package errkit is the shared error model for the lexer, parser, and
// fixture harness: a Code/Message/Diagnostic shape with the position and
// expected/got/suggestion fields a source processor needs for useful error
// messages.
package errkit

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pkg/errors"
)

// Code classifies a Diagnostic: lex errors and parse errors.
type Code string

const (
	CodeLex   Code = "LEX_ERROR"
	CodeParse Code = "PARSE_ERROR"
)

// Diagnostic is a structured, user-facing description of a lex or parse
// failure.
type Diagnostic struct {
	Code    Code
	Message string
	Offset  int    // byte offset into source
	Line    int    // 1-based; filled in by the caller once positions are known
	Column  int    // 1-based

	Context    string   // what we were parsing, e.g. "if statement"
	Expected   []string // token kind names that would have been valid
	Got        string   // the token kind name we found instead
	Suggestion string   // "did you mean X?" — filled by fuzzy matching
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", d.Code, d.Line, d.Column, d.Message)
	}
	return fmt.Sprintf("%s at offset %d: %s", d.Code, d.Offset, d.Message)
}

// Wrap attaches a stack-trace-carrying cause to err using
// github.com/pkg/errors, at the package boundary before it reaches the CLI.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, message)
}

// SuggestKeyword returns the closest match for got among candidates using
// fuzzy ranking, or "" if nothing is close enough to be worth suggesting.
// Drives "unknown X, did you mean Y?" messages.
func SuggestKeyword(got string, candidates []string) string {
	ranks := fuzzy.RankFindFold(got, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	best := ranks[0]
	// A distance close to the word's own length means "no real match" —
	// don't suggest wildly unrelated words.
	if best.Distance > len(got) {
		return ""
	}
	return best.Target
}

package lexer

import "github.com/aledsdavies/esfmt/internal/errkit"

// Error carries the human-readable message of a lex failure; Lex returns it
// alongside the tokens scanned so far, and never attempts resynchronization.
type Error struct {
	Diagnostic errkit.Diagnostic
}

func (e *Error) Error() string { return e.Diagnostic.Message }

func newLexError(pos int, message string) *Error {
	return &Error{Diagnostic: errkit.Diagnostic{
		Code:    errkit.CodeLex,
		Message: message,
		Offset:  pos,
	}}
}

// Package lexer scans UTF-8 source bytes into a token.Stream, dispatching
// by first-byte class and using 32-wide byte-lane scanning (lane.go) for
// the character-class inner loops.
package lexer

import (
	"github.com/aledsdavies/esfmt/internal/symbol"
	"github.com/aledsdavies/esfmt/internal/token"
)

// Lexer holds the scan position, the open template-nesting depth, and the
// token stream being built, plus the shared symbol table it interns Word
// text into.
type Lexer struct {
	src     []byte
	pos     int
	symbols *symbol.Table
	out     *token.Stream
	opts    Options

	// templateBraceDepth tracks, for each currently-open template
	// interpolation hole, how many un-matched '{' have been seen inside it
	// since the hole began. A '}' closes the hole (resumes template body
	// scanning) only when the innermost entry is 0; otherwise it's an
	// ordinary block/object brace inside the hole's expression and is
	// emitted as RBrace.
	templateBraceDepth []int
}

// New creates a Lexer over src, interning identifiers into symbols.
func New(src []byte, symbols *symbol.Table, opts ...Option) *Lexer {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return &Lexer{
		src:     src,
		symbols: symbols,
		out:     token.NewStream(src),
		opts:    o,
	}
}

// Lex scans the entire input. On success it returns the full token.Stream.
// On a malformed lexeme it returns the tokens scanned so far alongside the
// error, rather than discarding partial progress.
func (l *Lexer) Lex() (*token.Stream, error) {
	for {
		done, err := l.step()
		if err != nil {
			return l.out, err
		}
		if done {
			return l.out, nil
		}
	}
}

// templateNestingDepth reports how many template literals are currently
// open.
func (l *Lexer) templateNestingDepth() int { return len(l.templateBraceDepth) }

// step scans and appends exactly one token (or skips trivia and loops
// internally), returning done=true once EOF has been emitted.
func (l *Lexer) step() (done bool, err error) {
	if l.pos >= len(l.src) {
		l.out.Append(token.EOF, l.pos, 0, 0)
		return true, nil
	}

	start := l.pos
	ch := l.src[l.pos]

	switch {
	case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
		return false, l.lexWhitespace()
	case isIdentStartClass[ch]:
		return false, l.lexIdentifier()
	case ch >= '0' && ch <= '9':
		return false, l.lexNumber()
	case ch == '.' && l.pos+1 < len(l.src) && isDigitClass[l.src[l.pos+1]]:
		return false, l.lexNumber()
	case ch == '\'' || ch == '"':
		return false, l.lexQuotedString(ch)
	case ch == '`':
		return false, l.lexTemplateStart()
	case ch == '}' && l.templateNestingDepth() > 0 && l.topTemplateBraceDepth() == 0:
		return false, l.lexTemplateResume()
	case ch == '/':
		return false, l.lexSlash()
	default:
		return false, l.lexPunctuation(start, ch)
	}
}

func (l *Lexer) topTemplateBraceDepth() int {
	return l.templateBraceDepth[len(l.templateBraceDepth)-1]
}

// lexWhitespace consumes a run of whitespace bytes via the SIMD-style
// class scan, emitting a Whitespace token only if the caller asked for
// trivia.
func (l *Lexer) lexWhitespace() error {
	start := l.pos
	l.pos = scanWhile(l.src, l.pos, &isWhitespaceClass)
	if l.opts.IncludeWhitespace {
		l.out.Append(token.Whitespace, start, l.pos-start, 0)
	}
	return nil
}

// lexIdentifier scans an identifier/keyword run via the SIMD-style class
// scan, then resolves it against the keyword table or interns it as a
// Word.
func (l *Lexer) lexIdentifier() error {
	start := l.pos
	l.pos = scanWhile(l.src, l.pos, &isIdentPartClass)
	text := string(l.src[start:l.pos])

	if kind, isKeyword := token.Keywords[text]; isKeyword {
		l.out.Append(kind, start, l.pos-start, 0)
		return nil
	}
	id := l.symbols.Intern(text)
	l.out.Append(token.Word, start, l.pos-start, uint32(id))
	return nil
}

// lexPunctuation handles single- and two-byte punctuators/operators, and
// the '+'/'-' lookahead for '++'/'--'.
func (l *Lexer) lexPunctuation(start int, ch byte) error {
	two := func(next byte, oneKind, twoKind token.Kind) error {
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == next {
			l.out.Append(twoKind, start, 2, 0)
			l.pos += 2
			return nil
		}
		l.out.Append(oneKind, start, 1, 0)
		l.pos++
		return nil
	}

	switch ch {
	case '(':
		return l.emit1(token.LParen)
	case ')':
		return l.emit1(token.RParen)
	case '[':
		return l.emit1(token.LBracket)
	case ']':
		return l.emit1(token.RBracket)
	case '{':
		if l.templateNestingDepth() > 0 {
			l.templateBraceDepth[len(l.templateBraceDepth)-1]++
		}
		return l.emit1(token.LBrace)
	case '}':
		if l.templateNestingDepth() > 0 {
			l.templateBraceDepth[len(l.templateBraceDepth)-1]--
		}
		return l.emit1(token.RBrace)
	case ';':
		return l.emit1(token.Semicolon)
	case ':':
		return l.emit1(token.Colon)
	case ',':
		return l.emit1(token.Comma)
	case '.':
		if l.pos+2 < len(l.src) && l.src[l.pos+1] == '.' && l.src[l.pos+2] == '.' {
			l.out.Append(token.Spread, start, 3, 0)
			l.pos += 3
			return nil
		}
		return l.emit1(token.Dot)
	case '+':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '+' {
			l.out.Append(token.PlusPlus, start, 2, 0)
			l.pos += 2
			return nil
		}
		return l.emit1(token.Add)
	case '-':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '-' {
			l.out.Append(token.MinusMinus, start, 2, 0)
			l.pos += 2
			return nil
		}
		return l.emit1(token.Sub)
	case '*':
		return l.emit1(token.Mult)
	case '%':
		return l.emitIllegal(start, ch)
	case '&':
		return two('&', token.BinAnd, token.BoolAnd)
	case '|':
		return two('|', token.BinOr, token.BoolOr)
	case '^':
		return l.emit1(token.BinXor)
	case '=':
		if l.pos+2 < len(l.src) && l.src[l.pos+1] == '=' && l.src[l.pos+2] == '=' {
			l.out.Append(token.EqEqEq, start, 3, 0)
			l.pos += 3
			return nil
		}
		return two('=', token.Eq, token.EqEq)
	case '!':
		if l.pos+2 < len(l.src) && l.src[l.pos+1] == '=' && l.src[l.pos+2] == '=' {
			l.out.Append(token.Neq, start, 3, 0) // !== collapses to Neq; there's no separate strict-neq kind
			l.pos += 3
			return nil
		}
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '=' {
			l.out.Append(token.Neq, start, 2, 0)
			l.pos += 2
			return nil
		}
		return l.emitIllegal(start, ch)
	case '<':
		return two('=', token.Lt, token.Leq)
	case '>':
		return two('=', token.Gt, token.Geq)
	default:
		return l.emitIllegal(start, ch)
	}
}

func (l *Lexer) emit1(kind token.Kind) error {
	l.out.Append(kind, l.pos, 1, 0)
	l.pos++
	return nil
}

func (l *Lexer) emitIllegal(start int, ch byte) error {
	l.out.Append(token.Illegal, start, 1, 0)
	l.pos++
	return newLexError(start, "unrecognized byte '"+string(rune(ch))+"'")
}

// lexSlash disambiguates division from line/block comments.
func (l *Lexer) lexSlash() error {
	start := l.pos
	if l.pos+1 < len(l.src) {
		switch l.src[l.pos+1] {
		case '/':
			return l.lexLineComment(start)
		case '*':
			return l.lexBlockComment(start)
		}
	}
	return l.emit1(token.Div)
}

func (l *Lexer) lexLineComment(start int) error {
	l.pos += 2
	bodyStart := l.pos
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
	if l.opts.IncludeComments {
		l.out.Append(token.LineComment, start, l.pos-bodyStart+2, 0)
	}
	return nil
}

// lexBlockComment scans to the matching */ via the shifted-match filter in
// lane.go.
func (l *Lexer) lexBlockComment(start int) error {
	l.pos += 2
	end := scanUntilMatch(l.src, l.pos, '*', '/', false)
	if end < 0 {
		l.pos = len(l.src)
		if l.opts.IncludeComments {
			l.out.Append(token.Comment, start, l.pos-start, 0)
		}
		return newLexError(start, "file ended without finishing block comment")
	}
	l.pos = end + 2
	if l.opts.IncludeComments {
		l.out.Append(token.Comment, start, l.pos-start, 0)
	}
	return nil
}

package lexer

import "github.com/aledsdavies/esfmt/internal/token"

// lexQuotedString scans a '…' or "…" string, ending at the matching quote
// not immediately preceded by '\'. A raw newline or EOF before the
// matching quote is a lex error.
func (l *Lexer) lexQuotedString(quote byte) error {
	start := l.pos
	l.pos++ // consume opening quote

	// The shifted-match filter targets distinct X/Y bytes; here the quote
	// opens and closes with the same byte, so we scan directly for the
	// first unescaped occurrence instead.
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == '\\' && l.pos+1 < len(l.src) {
			l.pos += 2
			continue
		}
		if ch == quote {
			l.pos++
			l.out.Append(token.String, start, l.pos-start, 0)
			return nil
		}
		if ch == '\n' {
			l.out.Append(token.String, start, l.pos-start, 0)
			return newLexError(start, "string ended with newline instead of quote")
		}
		l.pos++
	}
	l.out.Append(token.String, start, l.pos-start, 0)
	return newLexError(start, "file ended without finishing string")
}

// lexTemplateStart scans the opening of a `…` template literal: either a
// complete no-interpolation StrTemplate, or a StrTemplateBegin ending at
// the first unescaped "${".
func (l *Lexer) lexTemplateStart() error {
	start := l.pos
	l.pos++ // consume opening backtick
	return l.scanTemplateBody(start, token.StrTemplate, token.StrTemplateBegin)
}

// lexTemplateResume is invoked when a '}' closes the current interpolation
// hole (templateBraceDepth top == 0): it scans onward as either
// StrTemplateEnd (template finishes) or StrTemplateMid (another hole
// starts).
func (l *Lexer) lexTemplateResume() error {
	start := l.pos
	l.pos++ // consume '}'
	l.templateBraceDepth = l.templateBraceDepth[:len(l.templateBraceDepth)-1]
	return l.scanTemplateBody(start, token.StrTemplateEnd, token.StrTemplateMid)
}

// scanTemplateBody scans template text up to the first unescaped backtick
// or "${", whichever comes first, emitting finishKind on a backtick and
// midKind (pushing a new template-nesting frame) on "${". The caller
// distinguishes opening a brand-new template (lexTemplateStart) from
// resuming one already open (lexTemplateResume) only by which finishKind/
// midKind pair it passes in; the scan itself behaves identically either way.
//
// A single scan must race two different terminator shapes (a one-byte
// backtick and a two-byte "${"), which don't compose under the
// single-class lane abstraction lane.go provides for uniform scans — so
// this loop is scalar by design, not an oversight (see DESIGN.md).
func (l *Lexer) scanTemplateBody(start int, finishKind, midKind token.Kind) error {
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == '\\' && l.pos+1 < len(l.src) {
			l.pos += 2
			continue
		}
		if ch == '`' {
			l.pos++
			l.out.Append(finishKind, start, l.pos-start, 0)
			return nil
		}
		if ch == '$' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '{' {
			l.pos += 2
			l.out.Append(midKind, start, l.pos-start, 0)
			l.templateBraceDepth = append(l.templateBraceDepth, 0)
			return nil
		}
		l.pos++
	}
	l.out.Append(finishKind, start, l.pos-start, 0)
	return newLexError(start, "file ended without finishing template string")
}

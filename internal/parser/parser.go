// Package parser drives recursive descent through an explicit work stack of
// (continuation, saved-state) frames instead of native recursion, appending
// AST nodes to a post-order ast.Tree with computed subtree sizes.
package parser

import (
	"github.com/aledsdavies/esfmt/internal/ast"
	"github.com/aledsdavies/esfmt/internal/errkit"
	"github.com/aledsdavies/esfmt/internal/symbol"
	"github.com/aledsdavies/esfmt/internal/token"
)

// StackState captures where a frame's subtree began, so that on completion
// the frame can compute subtree_size = current_tree_len + 1 - start_tree.
type StackState struct {
	startToken int
	startTree  int
}

// continuation is one step of the parse; it may consume tokens, append AST
// nodes, and push further frames (which then run before any frame already
// below them on the stack, since the stack is LIFO).
type continuation func(*Parser, *StackState) error

type frame struct {
	cont  continuation
	state *StackState
}

// Parser holds the current token position, the pending work stack, and the
// AST built so far.
type Parser struct {
	tokens  *token.Stream
	symbols *symbol.Table
	tree    *ast.Tree
	pos     int
	stack   []frame
}

// Error wraps an errkit.Diagnostic with Code = errkit.CodeParse.
type Error struct {
	Diagnostic errkit.Diagnostic
}

func (e *Error) Error() string { return e.Diagnostic.Error() }

// Parse consumes tokens against symbols and returns the resulting post-order
// AST, or an Error with no AST on the first malformed construct. There is no
// error recovery: parsing stops at the first failure.
func Parse(tokens *token.Stream, symbols *symbol.Table) (*ast.Tree, error) {
	p := &Parser{
		tokens:  tokens,
		symbols: symbols,
		tree:    ast.New(),
	}
	p.push(parseProgram, nil)
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.tree, nil
}

func (p *Parser) push(cont continuation, state *StackState) {
	p.stack = append(p.stack, frame{cont: cont, state: state})
}

// capture snapshots the current token/tree position, for a continuation that
// will later need to compute its own subtree_size.
func (p *Parser) capture() *StackState {
	return &StackState{startToken: p.pos, startTree: p.tree.Len()}
}

// run is the driver loop: pop a frame, supply a fresh StackState if none was
// saved, invoke the continuation.
func (p *Parser) run() error {
	for len(p.stack) > 0 {
		f := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		state := f.state
		if state == nil {
			state = p.capture()
		}
		if err := f.cont(p, state); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) skipTrivia() {
	for p.pos < p.tokens.Len() {
		switch p.tokens.KindAt(p.pos) {
		case token.Whitespace, token.Comment, token.LineComment:
			p.pos++
		default:
			return
		}
	}
}

func (p *Parser) currentKind() token.Kind {
	if p.pos >= p.tokens.Len() {
		return token.EOF
	}
	return p.tokens.KindAt(p.pos)
}

func (p *Parser) atEOF() bool { return p.currentKind() == token.EOF }

func (p *Parser) consume() { p.pos++ }

func (p *Parser) subtreeSize(state *StackState) int {
	return p.tree.Len() + 1 - state.startTree
}

// parseProgram parses statements until EOF: the top-level frame seeded by
// Parse, re-pushing itself after each statement.
func parseProgram(p *Parser, _ *StackState) error {
	p.skipTrivia()
	if p.atEOF() {
		return nil
	}
	p.push(parseProgram, nil)
	p.push(parseStatement, nil)
	return nil
}

// parseStatement dispatches to the statement form matching the current
// token.
func parseStatement(p *Parser, _ *StackState) error {
	p.skipTrivia()
	switch p.currentKind() {
	case token.KeyIf:
		return enterIf(p)
	case token.LBrace:
		return enterBlock(p)
	case token.Semicolon:
		return enterEmptyStatement(p)
	default:
		return enterExpressionStatement(p)
	}
}

// enterIf consumes `if`, appends StmtIfIntro, consumes `(`, then pushes the
// finalizer, else-handler, then-statement, `)`-consumer, and
// expression-parser frames in reverse execution order (the stack is LIFO,
// so parseExpression for the condition runs first).
func enterIf(p *Parser) error {
	state := p.capture()
	p.consume() // 'if'
	p.tree.Append(ast.StmtIfIntro, 1, 0)
	p.skipTrivia()
	if p.currentKind() != token.LParen {
		return p.errorf("if statement", []string{"LParen"}, "expected '(' after 'if'")
	}
	p.consume()

	p.push(finishIf, state)
	p.push(handleElse, nil)
	p.push(parseStatement, nil) // then-statement
	p.push(consumeRParen, nil)
	p.push(parseExpression, nil)
	return nil
}

func consumeRParen(p *Parser, _ *StackState) error {
	p.skipTrivia()
	if p.currentKind() != token.RParen {
		return p.errorf("if statement", []string{"RParen"}, "missing closing ')'")
	}
	p.consume()
	return nil
}

// handleElse consumes an optional `else` and, if present, pushes a fresh
// statement parse for its branch.
func handleElse(p *Parser, _ *StackState) error {
	p.skipTrivia()
	if p.currentKind() != token.KeyElse {
		return nil
	}
	p.consume()
	p.push(parseStatement, nil)
	return nil
}

func finishIf(p *Parser, state *StackState) error {
	p.tree.Append(ast.StmtIf, p.subtreeSize(state), 0)
	return nil
}

// enterBlock implements `{ … }`: StmtBlockIntro, then zero or more
// statements, then StmtBlock with the accumulated subtree_size.
func enterBlock(p *Parser) error {
	state := p.capture()
	p.consume() // '{'
	p.tree.Append(ast.StmtBlockIntro, 1, 0)
	p.push(finishBlock, state)
	p.push(parseBlockBody, nil)
	return nil
}

func parseBlockBody(p *Parser, _ *StackState) error {
	p.skipTrivia()
	if p.currentKind() == token.RBrace {
		p.consume()
		return nil
	}
	if p.atEOF() {
		return p.errorf("block statement", []string{"RBrace"}, "file ended before closing '}'")
	}
	p.push(parseBlockBody, nil)
	p.push(parseStatement, nil)
	return nil
}

func finishBlock(p *Parser, state *StackState) error {
	p.tree.Append(ast.StmtBlock, p.subtreeSize(state), 0)
	return nil
}

func enterEmptyStatement(p *Parser) error {
	p.consume() // ';'
	p.tree.Append(ast.StmtEmpty, 1, 0)
	return nil
}

// enterExpressionStatement falls back to the expression parser with an
// optional trailing ';'.
func enterExpressionStatement(p *Parser) error {
	state := p.capture()
	p.push(finishExpressionStatement, state)
	p.push(consumeOptionalSemicolon, nil)
	p.push(parseExpression, nil)
	return nil
}

func consumeOptionalSemicolon(p *Parser, _ *StackState) error {
	p.skipTrivia()
	if p.currentKind() == token.Semicolon {
		p.consume()
	}
	return nil
}

func finishExpressionStatement(p *Parser, state *StackState) error {
	p.tree.Append(ast.StmtExpr, p.subtreeSize(state), 0)
	return nil
}

// parseExpression recognizes number, boolean, and identifier literals plus
// string and template literals. The stack-of-continuations architecture
// scales to operator precedence by stacking one frame per precedence level
// that alternately emits operand and operator nodes; none is needed yet.
func parseExpression(p *Parser, _ *StackState) error {
	p.skipTrivia()
	switch p.currentKind() {
	case token.Number, token.HexNumber, token.OctNumber, token.BinNumber, token.BigInt:
		p.tree.Append(ast.ExprNumber, 1, uint32(p.internCurrentText()))
		p.consume()
		return nil
	case token.KeyTrue, token.KeyFalse:
		p.tree.Append(ast.ExprBoolean, 1, uint32(p.internCurrentText()))
		p.consume()
		return nil
	case token.Word:
		sym := p.tokens.Symbol(p.pos)
		p.tree.Append(ast.ExprWord, 1, uint32(sym))
		p.consume()
		return nil
	case token.String:
		p.tree.Append(ast.ExprString, 1, uint32(p.internCurrentText()))
		p.consume()
		return nil
	case token.StrTemplate, token.StrTemplateBegin:
		return enterTemplate(p)
	default:
		return p.errorf("expression", []string{"Number", "KeyTrue", "KeyFalse", "Word", "String", "StrTemplate"}, "expected an expression")
	}
}

func (p *Parser) internCurrentText() symbol.ID {
	return p.symbols.Intern(string(p.tokens.Text(p.pos)))
}

// enterTemplate parses a template literal: either a single
// no-interpolation StrTemplate chunk, or a
// StrTemplateBegin chunk followed by an alternating sequence of hole
// expressions and StrTemplateMid/StrTemplateEnd chunks. Each raw chunk's
// exact source text (including its backtick/${/} delimiters) is interned
// so the printer can reconstruct it byte for byte.
func enterTemplate(p *Parser) error {
	state := p.capture()
	if p.currentKind() == token.StrTemplate {
		p.appendTemplateChunk()
		p.tree.Append(ast.ExprTemplate, p.subtreeSize(state), 0)
		return nil
	}
	p.appendTemplateChunk() // StrTemplateBegin
	p.push(finishTemplate, state)
	p.push(parseTemplateHole, nil)
	return nil
}

func parseTemplateHole(p *Parser, _ *StackState) error {
	p.push(parseTemplateAfterHole, nil)
	p.push(parseExpression, nil)
	return nil
}

func parseTemplateAfterHole(p *Parser, _ *StackState) error {
	switch p.currentKind() {
	case token.StrTemplateMid:
		p.appendTemplateChunk()
		p.push(parseTemplateHole, nil)
		return nil
	case token.StrTemplateEnd:
		p.appendTemplateChunk()
		return nil
	default:
		return p.errorf("template literal", []string{"StrTemplateMid", "StrTemplateEnd"}, "expected the rest of the template literal")
	}
}

func finishTemplate(p *Parser, state *StackState) error {
	p.tree.Append(ast.ExprTemplate, p.subtreeSize(state), 0)
	return nil
}

func (p *Parser) appendTemplateChunk() {
	p.tree.Append(ast.ExprTemplateChunk, 1, uint32(p.internCurrentText()))
	p.consume()
}

func (p *Parser) errorf(context string, expected []string, message string) error {
	got := p.currentKind().String()
	offset := 0
	if p.pos < p.tokens.Len() {
		offset = p.tokens.Offset(p.pos)
	} else if p.tokens.Len() > 0 {
		offset = p.tokens.Offset(p.tokens.Len() - 1)
	}

	suggestion := ""
	if p.currentKind() == token.Word {
		suggestion = errkit.SuggestKeyword(string(p.tokens.Text(p.pos)), keywordSpellings)
	}

	return &Error{Diagnostic: errkit.Diagnostic{
		Code:       errkit.CodeParse,
		Message:    message,
		Offset:     offset,
		Context:    context,
		Expected:   expected,
		Got:        got,
		Suggestion: suggestion,
	}}
}

var keywordSpellings = func() []string {
	out := make([]string, 0, len(token.Keywords))
	for spelling := range token.Keywords {
		out = append(out, spelling)
	}
	return out
}()

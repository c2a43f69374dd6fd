// Package token defines the lexical token kinds and the structure-of-arrays
// stream the lexer appends to and the parser consumes.
package token

import "github.com/aledsdavies/esfmt/internal/symbol"

// Kind is a one-byte tag identifying a token's lexical category.
type Kind uint8

const (
	EOF Kind = iota
	Illegal

	// Keywords — one Kind per reserved word, rather than a single Word kind
	// with a keyword flag, so a switch over Kind dispatches directly.
	KeyAs
	KeyAsync
	KeyAwait
	KeyBreak
	KeyCase
	KeyCatch
	KeyClass
	KeyConst
	KeyContinue
	KeyDebugger
	KeyDefault
	KeyDelete
	KeyDo
	KeyElse
	KeyEnum
	KeyExport
	KeyExtends
	KeyFalse
	KeyFinally
	KeyFor
	KeyFunction
	KeyIf
	KeyImport
	KeyIn
	KeyInstanceof
	KeyNew
	KeyNull
	KeyReturn
	KeySuper
	KeySwitch
	KeyThis
	KeyThrow
	KeyTrue
	KeyTry
	KeyTypeof
	KeyVar
	KeyVoid
	KeyWhile
	KeyWith
	KeyYield

	// Punctuators
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Semicolon
	Colon
	Comma
	Dot
	Spread

	// Arithmetic
	Add
	Sub
	Mult
	Div
	PlusPlus
	MinusMinus

	// Bitwise
	BinAnd
	BinOr
	BinXor

	// Boolean
	BoolAnd
	BoolOr

	// Comparison
	EqEq
	EqEqEq
	Neq
	Geq
	Leq
	Gt
	Lt
	Eq

	// Trivia
	LineComment
	Comment
	Whitespace
	Unknown

	// Literals
	String
	StrTemplate
	StrTemplateBegin
	StrTemplateMid
	StrTemplateEnd
	Number
	OctNumber
	HexNumber
	BinNumber
	BigInt

	Word
)

var kindNames = [...]string{
	EOF: "EOF", Illegal: "Illegal",
	KeyAs: "KeyAs", KeyAsync: "KeyAsync", KeyAwait: "KeyAwait", KeyBreak: "KeyBreak",
	KeyCase: "KeyCase", KeyCatch: "KeyCatch", KeyClass: "KeyClass", KeyConst: "KeyConst",
	KeyContinue: "KeyContinue", KeyDebugger: "KeyDebugger", KeyDefault: "KeyDefault",
	KeyDelete: "KeyDelete", KeyDo: "KeyDo", KeyElse: "KeyElse", KeyEnum: "KeyEnum",
	KeyExport: "KeyExport", KeyExtends: "KeyExtends", KeyFalse: "KeyFalse",
	KeyFinally: "KeyFinally", KeyFor: "KeyFor", KeyFunction: "KeyFunction", KeyIf: "KeyIf",
	KeyImport: "KeyImport", KeyIn: "KeyIn", KeyInstanceof: "KeyInstanceof", KeyNew: "KeyNew",
	KeyNull: "KeyNull", KeyReturn: "KeyReturn", KeySuper: "KeySuper", KeySwitch: "KeySwitch",
	KeyThis: "KeyThis", KeyThrow: "KeyThrow", KeyTrue: "KeyTrue", KeyTry: "KeyTry",
	KeyTypeof: "KeyTypeof", KeyVar: "KeyVar", KeyVoid: "KeyVoid", KeyWhile: "KeyWhile",
	KeyWith: "KeyWith", KeyYield: "KeyYield",
	LParen: "LParen", RParen: "RParen", LBracket: "LBracket", RBracket: "RBracket",
	LBrace: "LBrace", RBrace: "RBrace", Semicolon: "Semicolon", Colon: "Colon",
	Comma: "Comma", Dot: "Dot", Spread: "Spread",
	Add: "Add", Sub: "Sub", Mult: "Mult", Div: "Div", PlusPlus: "PlusPlus", MinusMinus: "MinusMinus",
	BinAnd: "BinAnd", BinOr: "BinOr", BinXor: "BinXor",
	BoolAnd: "BoolAnd", BoolOr: "BoolOr",
	EqEq: "EqEq", EqEqEq: "EqEqEq", Neq: "Neq", Geq: "Geq", Leq: "Leq", Gt: "Gt", Lt: "Lt", Eq: "Eq",
	LineComment: "LineComment", Comment: "Comment", Whitespace: "Whitespace", Unknown: "Unknown",
	String: "String", StrTemplate: "StrTemplate", StrTemplateBegin: "StrTemplateBegin",
	StrTemplateMid: "StrTemplateMid", StrTemplateEnd: "StrTemplateEnd",
	Number: "Number", OctNumber: "OctNumber", HexNumber: "HexNumber", BinNumber: "BinNumber",
	BigInt: "BigInt", Word: "Word",
}

// String returns the token kind's name, for debugging and fixture comparison.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Keywords maps keyword spellings to their Kind.
var Keywords = map[string]Kind{
	"as": KeyAs, "async": KeyAsync, "await": KeyAwait, "break": KeyBreak,
	"case": KeyCase, "catch": KeyCatch, "class": KeyClass, "const": KeyConst,
	"continue": KeyContinue, "debugger": KeyDebugger, "default": KeyDefault,
	"delete": KeyDelete, "do": KeyDo, "else": KeyElse, "enum": KeyEnum,
	"export": KeyExport, "extends": KeyExtends, "false": KeyFalse,
	"finally": KeyFinally, "for": KeyFor, "function": KeyFunction, "if": KeyIf,
	"import": KeyImport, "in": KeyIn, "instanceof": KeyInstanceof, "new": KeyNew,
	"null": KeyNull, "return": KeyReturn, "super": KeySuper, "switch": KeySwitch,
	"this": KeyThis, "throw": KeyThrow, "true": KeyTrue, "try": KeyTry,
	"typeof": KeyTypeof, "var": KeyVar, "void": KeyVoid, "while": KeyWhile,
	"with": KeyWith, "yield": KeyYield,
}

// Token is a single lexical token as stored by Stream's parallel columns.
// It is the array-of-structs view over those columns (see Stream.Get).
type Token struct {
	Kind       Kind
	TextOffset int    // byte offset into source
	Length     int    // byte length of the token's own lexeme (excludes trivia)
	Extra      uint32 // semantic payload: symbol.ID for Word, else kind-specific
}

// Stream is an append-only structure-of-arrays token container: parallel
// columns for kind, offset, length, and extra, plus the source bytes tokens
// point into. Column storage is a contract (cache-friendly scans), not a
// requirement on callers, who only see Token values through Get/Slice.
// extra stays kind-specific (a symbol.ID for Word) rather than doing double
// duty as a length, which gets its own column.
type Stream struct {
	Source []byte

	kinds   []Kind
	offsets []int
	lengths []int
	extras  []uint32
}

// NewStream creates an empty stream over source, pre-sizing columns for a
// typical token/byte ratio.
func NewStream(source []byte) *Stream {
	cap := len(source)/4 + 16
	return &Stream{
		Source:  source,
		kinds:   make([]Kind, 0, cap),
		offsets: make([]int, 0, cap),
		lengths: make([]int, 0, cap),
		extras:  make([]uint32, 0, cap),
	}
}

// Append adds a token to the end of the stream. Callers must append in
// source order; offset must be >= the previous append's offset.
func (s *Stream) Append(kind Kind, offset, length int, extra uint32) {
	s.kinds = append(s.kinds, kind)
	s.offsets = append(s.offsets, offset)
	s.lengths = append(s.lengths, length)
	s.extras = append(s.extras, extra)
}

// Len returns the number of tokens appended so far.
func (s *Stream) Len() int {
	return len(s.kinds)
}

// Get returns the token at index i as a Token value.
func (s *Stream) Get(i int) Token {
	return Token{Kind: s.kinds[i], TextOffset: s.offsets[i], Length: s.lengths[i], Extra: s.extras[i]}
}

// Offset returns the byte offset of token i without constructing a Token.
func (s *Stream) Offset(i int) int { return s.offsets[i] }

// KindAt returns the kind of token i without constructing a Token.
func (s *Stream) KindAt(i int) Kind { return s.kinds[i] }

// Symbol reinterprets token i's Extra column as a symbol.ID. Valid only for
// Word tokens.
func (s *Stream) Symbol(i int) symbol.ID { return symbol.ID(s.extras[i]) }

// Text returns the raw source bytes of token i's own lexeme.
func (s *Stream) Text(i int) []byte {
	start := s.offsets[i]
	end := start + s.lengths[i]
	if end > len(s.Source) {
		end = len(s.Source)
	}
	return s.Source[start:end]
}

package lexer

import "github.com/aledsdavies/esfmt/internal/token"

// lexNumber recognizes decimal integers/floats/exponents, hex/octal/binary
// literals, and the big-int 'n' suffix. Grammar is greedy and single pass;
// no numeric value is computed here, only the text span and kind.
func (l *Lexer) lexNumber() error {
	start := l.pos

	if l.src[l.pos] == '0' && l.pos+1 < len(l.src) {
		switch l.src[l.pos+1] {
		case 'x', 'X':
			l.pos += 2
			l.consumeHexDigits()
			return l.finishNumber(start, token.HexNumber)
		case 'o', 'O':
			l.pos += 2
			l.consumeWhile(isOctalDigit)
			return l.finishNumber(start, token.OctNumber)
		case 'b', 'B':
			l.pos += 2
			l.consumeWhile(isBinaryDigit)
			return l.finishNumber(start, token.BinNumber)
		}
	}

	isFloat := false
	if l.src[l.pos] == '.' {
		l.pos++
		l.consumeWhile(isDecimalDigit)
		isFloat = true
	} else {
		l.consumeWhile(isDecimalDigit)
		if l.pos < len(l.src) && l.src[l.pos] == '.' {
			l.pos++
			l.consumeWhile(isDecimalDigit)
			isFloat = true
		}
	}

	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		l.consumeWhile(isDecimalDigit)
		isFloat = true
	}

	if !isFloat && l.pos < len(l.src) && l.src[l.pos] == 'n' {
		l.pos++
		return l.finishNumber(start, token.BigInt)
	}

	if isFloat {
		return l.finishNumber(start, token.Number)
	}
	return l.finishNumber(start, token.Number)
}

func (l *Lexer) finishNumber(start int, kind token.Kind) error {
	l.out.Append(kind, start, l.pos-start, 0)
	return nil
}

func (l *Lexer) consumeWhile(pred func(byte) bool) {
	for l.pos < len(l.src) && pred(l.src[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) consumeHexDigits() {
	l.consumeWhile(isHexDigit)
}

func isDecimalDigit(b byte) bool { return b >= '0' && b <= '9' }
func isOctalDigit(b byte) bool   { return b >= '0' && b <= '7' }
func isBinaryDigit(b byte) bool  { return b == '0' || b == '1' }
func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

package lexer

import "math/bits"

// laneWidth is the width of the byte-lane scan window. Go ships no portable
// SIMD intrinsics, so a lane here is a software window: 32 bytes loaded at
// once, reduced to a 32-bit "which positions matched" mask the same way a
// real SIMD compare-and-movemask pair would, with
// math/bits.TrailingZeros32 standing in for a hardware first-set-bit
// instruction (see DESIGN.md).
const laneWidth = 32

// lane is one 32-byte scan window, zero-padded past end of input. n is the
// number of real (non-padding) bytes it holds.
type lane struct {
	data [laneWidth]byte
	n    int
}

// loadLane reads up to laneWidth bytes from src starting at pos.
func loadLane(src []byte, pos int) lane {
	var l lane
	n := copy(l.data[:], src[pos:])
	l.n = n
	return l
}

// classTable is a 256-entry byte-class membership table, gathered by byte
// value. Used for the identifier/whitespace/digit character classes.
type classTable = [256]bool

// classMask gathers l against table, producing a bitmask with bit i set iff
// l.data[i] is a member of the class (and i < l.n — padding never matches).
func (l lane) classMask(table *classTable) uint32 {
	var mask uint32
	for i := 0; i < l.n; i++ {
		if table[l.data[i]] {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// terminatorMask is classMask's complement: bit i set iff l.data[i] is NOT a
// class member, used by SIMD scans that consume a run of class members and
// stop at the first non-member (whitespace, identifier, etc. bodies).
func (l lane) terminatorMask(table *classTable) uint32 {
	var mask uint32
	for i := 0; i < l.n; i++ {
		if !table[l.data[i]] {
			mask |= 1 << uint(i)
		}
	}
	if l.n < laneWidth {
		// End of input terminates any in-progress run.
		mask |= 1 << uint(l.n)
	}
	return mask
}

// shiftedMatch is the shifted-match filter primitive: detect an unescaped
// two-byte sequence XY by rotating the lane right by one (comparing
// l.data[i-1]==X against l.data[i]==Y) and masking off position 0, whose
// "previous" byte lives outside this lane and is supplied by the caller as
// prevTail (0 if this is the first lane of the scan). A backslash
// immediately before Y does not count as a match (escape cancels it) when
// escapable is true. The lexer calls it only for the block-comment
// terminator "*/", with escapable false; quoted strings and templates are
// scanned byte by byte in strings.go.
func (l lane) shiftedMatch(prevTail byte, x, y byte, escapable bool) uint32 {
	var mask uint32
	prev := prevTail
	for i := 0; i < l.n; i++ {
		cur := l.data[i]
		if prev == x && cur == y {
			if !(escapable && prev == '\\') {
				mask |= 1 << uint(i)
			}
		}
		prev = cur
	}
	return mask
}

// firstSetBit returns the index of the lowest set bit in mask, or -1 if
// mask is zero.
func firstSetBit(mask uint32) int {
	if mask == 0 {
		return -1
	}
	return bits.TrailingZeros32(mask)
}

var (
	isWhitespaceClass classTable
	isIdentStartClass classTable
	isIdentPartClass  classTable
	isDigitClass      classTable
)

func init() {
	for _, c := range []byte{' ', '\t', '\n', '\r'} {
		isWhitespaceClass[c] = true
	}
	for c := byte('a'); c <= 'z'; c++ {
		isIdentStartClass[c] = true
		isIdentPartClass[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		isIdentStartClass[c] = true
		isIdentPartClass[c] = true
	}
	isIdentStartClass['_'] = true
	isIdentPartClass['_'] = true
	isIdentStartClass['$'] = true
	isIdentPartClass['$'] = true
	for c := byte('0'); c <= '9'; c++ {
		isIdentPartClass[c] = true
		isDigitClass[c] = true
	}
	// High-bit bytes (UTF-8 continuation/lead bytes) are treated as
	// identifier-continuation so multi-byte identifiers scan as one run;
	// the lexer only needs byte spans, not decoded runes, for Word text.
	for c := 128; c < 256; c++ {
		isIdentPartClass[byte(c)] = true
	}
}

// scanWhile advances pos over src while bytes belong to table's class,
// laneWidth bytes at a time, and returns the new position. It is the SIMD
// scan pattern shared by whitespace and identifier scanning: load
// a lane, compute the terminator mask, and either stop at the first
// terminator or advance a full lane and reload.
func scanWhile(src []byte, pos int, table *classTable) int {
	for pos < len(src) {
		l := loadLane(src, pos)
		mask := l.terminatorMask(table)
		if stop := firstSetBit(mask); stop >= 0 {
			return pos + stop
		}
		pos += l.n
	}
	return pos
}

// scanUntilMatch advances pos over src looking for the first unescaped XY
// sequence, laneWidth bytes at a time via the shifted-match filter.
// Returns the offset of X (the first byte of the match), or -1 if src is
// exhausted without one. prevTail carries the lane-boundary byte forward.
func scanUntilMatch(src []byte, pos int, x, y byte, escapable bool) int {
	prevTail := byte(0)
	if pos > 0 {
		prevTail = src[pos-1]
	}
	for pos < len(src) {
		l := loadLane(src, pos)
		mask := l.shiftedMatch(prevTail, x, y, escapable)
		if hit := firstSetBit(mask); hit >= 0 {
			return pos + hit - 1 // shiftedMatch flags the position of Y; X is one before
		}
		if l.n > 0 {
			prevTail = l.data[l.n-1]
		}
		pos += l.n
	}
	return -1
}

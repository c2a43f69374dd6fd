// Package symbol provides a dense, append-only string interner shared by the
// lexer and parser. Identifier text is interned once; everything downstream
// refers to identifiers by a 32-bit ID instead of carrying the bytes around.
package symbol

// ID is a dense, monotonically assigned identifier handle. Zero is reserved
// to mean "none" — no identifier has been interned with ID 0.
type ID uint32

// None is the reserved "no symbol" value.
const None ID = 0

// Table interns identifier text to dense IDs. It is not safe for concurrent
// use; a single lex/parse invocation owns one Table exclusively.
type Table struct {
	ids   map[string]ID
	names []string // index 0 unused, so names[id] is valid for id >= 1
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{
		ids:   make(map[string]ID),
		names: []string{""}, // reserve index 0
	}
}

// Intern returns the ID for s, assigning a new one on first sight.
// intern(s) == intern(s) for any byte-equal s, across the table's lifetime.
func (t *Table) Intern(s string) ID {
	if id, ok := t.ids[s]; ok {
		return id
	}
	id := ID(len(t.names))
	t.names = append(t.names, s)
	t.ids[s] = id
	return id
}

// Lookup returns the text for id, or ("", false) if id is unknown or None.
func (t *Table) Lookup(id ID) (string, bool) {
	if id == None || int(id) >= len(t.names) {
		return "", false
	}
	return t.names[id], true
}

// Len reports the number of distinct symbols interned so far.
func (t *Table) Len() int {
	return len(t.names) - 1
}

package fixture

import (
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/aledsdavies/esfmt/internal/ast"
	"github.com/aledsdavies/esfmt/internal/token"
)

// canonicalToken and canonicalNode are the hashed projections of a Token
// and an ast.Node: every field that participates in determinism, nothing
// else. In particular neither keeps source offsets/lengths or raw byte
// slices, so structurally identical documents lexed from different source
// buffers — even ones using differently-sized identifier spellings — still
// hash identically.
type canonicalToken struct {
	Kind  string
	Extra uint32
}

type canonicalNode struct {
	Kind        string
	SubtreeSize int
	Extra       uint32
}

type canonicalDocument struct {
	Version uint8
	Tokens  []canonicalToken
	Nodes   []canonicalNode
}

func canonicalize(tokens *token.Stream, tree *ast.Tree) *canonicalDocument {
	doc := &canonicalDocument{Version: 1}
	for i := 0; i < tokens.Len(); i++ {
		t := tokens.Get(i)
		doc.Tokens = append(doc.Tokens, canonicalToken{
			Kind: t.Kind.String(), Extra: t.Extra,
		})
	}
	for i := 0; i < tree.Len(); i++ {
		n := tree.Get(i)
		doc.Nodes = append(doc.Nodes, canonicalNode{
			Kind: n.Kind.String(), SubtreeSize: n.SubtreeSize, Extra: n.Extra,
		})
	}
	return doc
}

// marshalBinary produces a deterministic CBOR encoding of the canonical
// document: canonical encoding mode guarantees map keys and numeric widths
// serialize the same way on every call, so the resulting bytes (and thus
// the hash) depend only on the document's content.
func (d *canonicalDocument) marshalBinary() ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(d)
}

// Hash returns the blake2b-256 digest of the canonical CBOR encoding of a
// (token stream, AST) pair — the determinism check a fixture's optional
// `hash` frontmatter key is compared against.
func Hash(tokens *token.Stream, tree *ast.Tree) ([32]byte, error) {
	data, err := canonicalize(tokens, tree).marshalBinary()
	if err != nil {
		return [32]byte{}, err
	}
	return blake2b.Sum256(data), nil
}

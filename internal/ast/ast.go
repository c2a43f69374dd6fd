// Package ast is the post-order AST container: a structure-of-arrays of
// (kind, subtree_size, extra) triples, appended in post-order by the
// parser.
package ast

// Kind is a one-byte tag identifying an AST node's syntactic category.
type Kind uint8

const (
	// UtilSentinel occupies index 0 of every Tree to simplify traversal
	// arithmetic.
	UtilSentinel Kind = iota

	ExprString
	ExprNumber
	ExprBoolean
	ExprWord
	ExprTemplate
	ExprTemplateChunk
	ExprFunction
	ExprParen
	ExprParams

	StmtIfIntro
	StmtBlockIntro
	StmtIf
	StmtBlock
	StmtEmpty
	StmtExpr
)

var kindNames = [...]string{
	UtilSentinel: "UtilSentinel",
	ExprString:   "ExprString", ExprNumber: "ExprNumber", ExprBoolean: "ExprBoolean",
	ExprWord: "ExprWord", ExprTemplate: "ExprTemplate", ExprTemplateChunk: "ExprTemplateChunk",
	ExprFunction: "ExprFunction",
	ExprParen: "ExprParen", ExprParams: "ExprParams",
	StmtIfIntro: "StmtIfIntro", StmtBlockIntro: "StmtBlockIntro",
	StmtIf: "StmtIf", StmtBlock: "StmtBlock", StmtEmpty: "StmtEmpty", StmtExpr: "StmtExpr",
}

// String returns the node kind's name, for debugging and fixture comparison.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Node is the array-of-structs view of one row across Tree's parallel
// columns.
type Node struct {
	Kind        Kind
	SubtreeSize int    // number of contiguous post-order nodes in this subtree, >= 1
	Extra       uint32 // e.g. identifier symbol id for ExprWord
}

// Tree is an append-only, post-order structure-of-arrays AST container.
// Index 0 is always UtilSentinel (subtree_size = 1).
type Tree struct {
	kinds  []Kind
	sizes  []int
	extras []uint32
}

// New creates a Tree seeded with the sentinel node at index 0.
func New() *Tree {
	t := &Tree{}
	t.kinds = append(t.kinds, UtilSentinel)
	t.sizes = append(t.sizes, 1)
	t.extras = append(t.extras, 0)
	return t
}

// Append adds a node to the end of the post-order sequence and returns its
// index.
func (t *Tree) Append(kind Kind, subtreeSize int, extra uint32) int {
	t.kinds = append(t.kinds, kind)
	t.sizes = append(t.sizes, subtreeSize)
	t.extras = append(t.extras, extra)
	return len(t.kinds) - 1
}

// Len returns the number of nodes in the tree (including the sentinel).
func (t *Tree) Len() int { return len(t.kinds) }

// Get returns the node at index i.
func (t *Tree) Get(i int) Node {
	return Node{Kind: t.kinds[i], SubtreeSize: t.sizes[i], Extra: t.extras[i]}
}

// KindAt returns the kind of node i without constructing a Node.
func (t *Tree) KindAt(i int) Kind { return t.kinds[i] }

// SubtreeSizeAt returns the subtree size of node i without constructing a Node.
func (t *Tree) SubtreeSizeAt(i int) int { return t.sizes[i] }

// ExtraAt returns the extra payload of node i without constructing a Node.
func (t *Tree) ExtraAt(i int) uint32 { return t.extras[i] }

// ChildRoots returns the post-order indices of the direct children of the
// node at parent, scanned right-to-left by jumping each child's
// subtree_size, then reversed into left-to-right order.
func (t *Tree) ChildRoots(parent int) []int {
	// parent's own subtree spans [parent-size+1, parent]; children end at
	// parent-1 and walk backward.
	size := t.sizes[parent]
	firstDescendant := parent - size + 1
	var roots []int
	i := parent - 1
	for i >= firstDescendant {
		roots = append(roots, i)
		i -= t.sizes[i]
	}
	// roots was collected right-to-left; reverse for natural child order.
	for l, r := 0, len(roots)-1; l < r; l, r = l+1, r-1 {
		roots[l], roots[r] = roots[r], roots[l]
	}
	return roots
}

// PostOrder returns node indices in storage (post-order) order, excluding
// the sentinel.
func (t *Tree) PostOrder() []int {
	out := make([]int, 0, t.Len()-1)
	for i := 1; i < t.Len(); i++ {
		out = append(out, i)
	}
	return out
}

// PreOrder reconstructs top-down order via an explicit stack of node
// indices: a node is emitted the moment it is popped, then its children are
// pushed right-to-left so the leftmost child is popped (and emitted) next.
func (t *Tree) PreOrder() []int {
	out := make([]int, 0, t.Len()-1)

	// Roots: walk backward across the whole tree (above the sentinel) the
	// same way ChildRoots walks a subtree, so a tree with multiple
	// top-level statements pre-orders all of them.
	i := t.Len() - 1
	var roots []int
	for i >= 1 {
		roots = append(roots, i)
		i -= t.sizes[i]
	}
	for l, r := 0, len(roots)-1; l < r; l, r = l+1, r-1 {
		roots[l], roots[r] = roots[r], roots[l]
	}

	stack := make([]int, 0, len(roots))
	for j := len(roots) - 1; j >= 0; j-- {
		stack = append(stack, roots[j])
	}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, idx)
		children := t.ChildRoots(idx)
		for j := len(children) - 1; j >= 0; j-- {
			stack = append(stack, children[j])
		}
	}
	return out
}

// CheckInvariant reports whether the sum of root subtree_sizes equals the
// number of non-sentinel nodes. Intended for tests and debugging, not the
// hot parse path.
func (t *Tree) CheckInvariant() bool {
	i := t.Len() - 1
	total := 0
	for i >= 1 {
		total += t.sizes[i]
		i -= t.sizes[i]
	}
	return total == t.Len()-1
}

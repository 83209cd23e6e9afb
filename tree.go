package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf carries a Symbol; an internal
// node exclusively owns exactly two children and carries the sum of their
// weights.
//
// Seq is the node's tie-break key: leaves are numbered 0..n-1 in ascending
// Symbol order, and each internal node takes the next number as it is
// created.  Among candidates of equal weight, the lower Seq is merged first.
type Node struct {
	symbol Symbol
	weight uint64
	seq    uint32
	left   *Node
	right  *Node
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Symbol returns the leaf's Symbol, or InvalidSymbol for an internal node.
// BuildTree never creates a leaf holding an invalid Symbol.
func (n *Node) Symbol() Symbol {
	if !n.IsLeaf() {
		return InvalidSymbol
	}
	return n.symbol
}

// Weight returns the total frequency of all leaves beneath this node.
func (n *Node) Weight() uint64 {
	return n.weight
}

// Seq returns the node's tie-break sequence number.
func (n *Node) Seq() uint32 {
	return n.seq
}

// Left returns the child reached by bit 0, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by bit 1, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Child returns the child selected by the given bit, or nil if there is no
// such child.
func (n *Node) Child(bit byte) *Node {
	if bit == 0 {
		return n.left
	}
	return n.right
}

// Dump writes a programmer-readable debugging dump of the subtree rooted at
// this node to the given writer.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	var walk func(node *Node, depth int)
	walk = func(node *Node, depth int) {
		buf.Write(bytes.Repeat([]byte{'\t'}, depth))
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "Leaf{symbol=%d weight=%d seq=%d}\n", node.symbol, node.weight, node.seq)
			return
		}
		fmt.Fprintf(&buf, "Internal{weight=%d seq=%d}\n", node.weight, node.seq)
		walk(node.left, depth+1)
		walk(node.right, depth+1)
	}
	if n != nil {
		walk(n, 0)
	}
	return buf.WriteTo(w)
}

// BuildTree builds the Huffman tree for the given FrequencyTable and returns
// its root.  An empty table yields a nil root.  A table with a single symbol
// yields a lone leaf.  A table holding an invalid Symbol yields an
// *InvalidFrequencyError.
//
// The result depends only on the table's contents, so two calls with equal
// tables always produce identical trees.
//
func BuildTree(ft FrequencyTable) (*Node, error) {
	if err := ft.Validate(); err != nil {
		return nil, err
	}

	numLeaves := uint32(len(ft.symbols))
	if numLeaves == 0 {
		return nil, nil
	}

	// Step 1: seed the minheap with one leaf per symbol, in ascending
	// Symbol order so that leaf sequence numbers are reproducible.

	list := make([]*Node, 0, numLeaves)
	for index, sym := range ft.symbols {
		list = append(list, &Node{symbol: sym, weight: ft.counts[sym], seq: uint32(index)})
	}
	h := nodeHeap{list}
	h.Init()

	// Step 2: pop the two lightest candidates, combine them under a new
	// internal node, and push that node back, until only the root remains.
	//
	// The first candidate popped becomes the left child.

	nextSeq := numLeaves
	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)

		sum, carry := mathbits.Add64(a.weight, b.weight, 0)
		if carry != 0 {
			return nil, ErrWeightOverflow
		}

		heap.Push(&h, &Node{symbol: InvalidSymbol, weight: sum, seq: nextSeq, left: a, right: b})
		nextSeq++
	}

	root := heap.Pop(&h).(*Node)
	assert.Assertf(nextSeq == 2*numLeaves-1, "built %d nodes from %d leaves", nextSeq, numLeaves)
	return root, nil
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}

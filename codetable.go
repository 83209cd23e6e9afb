package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
)

// degenerateCode is the codeword assigned to the only Symbol of a
// single-symbol alphabet, whose tree has no edges to derive a codeword from.
var degenerateCode = Code{Size: 1, Bits: 0}

// CodeTable maps each Symbol of an alphabet to its Huffman codeword.  It is
// immutable once built; the zero value is an empty table.
type CodeTable struct {
	codes      map[Symbol]Code
	symbols    []Symbol
	minSize    byte
	maxSize    byte
	degenerate bool
}

// BuildCodeTable builds the Huffman tree for the given FrequencyTable and
// derives its CodeTable.  The single-symbol case is not treated as an error;
// check Degenerate() to distinguish it.
func BuildCodeTable(ft FrequencyTable) (CodeTable, error) {
	root, err := BuildTree(ft)
	if err != nil {
		return CodeTable{}, err
	}

	ct, err := GenerateCodeTable(root)
	var degenerate *DegenerateAlphabetError
	if errors.As(err, &degenerate) {
		return ct, nil
	}
	if err != nil {
		return CodeTable{}, err
	}
	return ct, nil
}

// GenerateCodeTable derives the CodeTable for the tree rooted at root: each
// left edge contributes a 0 bit and each right edge a 1 bit.
//
// If root is a lone leaf, its Symbol is given the fixed codeword "0" and the
// table is returned together with a *DegenerateAlphabetError.  The table is
// fully usable in that case.
//
func GenerateCodeTable(root *Node) (CodeTable, error) {
	if root == nil {
		return CodeTable{}, nil
	}

	if root.IsLeaf() {
		ct := CodeTable{
			codes:      map[Symbol]Code{root.symbol: degenerateCode},
			symbols:    []Symbol{root.symbol},
			minSize:    degenerateCode.Size,
			maxSize:    degenerateCode.Size,
			degenerate: true,
		}
		return ct, &DegenerateAlphabetError{Symbol: root.symbol}
	}

	// Walk the tree with an explicit stack.  Only internal nodes are
	// pushed; leaves are recorded as soon as they are reached.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	codes := make(map[Symbol]Code)
	stack := make([]stackItem, 0, MaxCodeSize)
	var minSize, maxSize byte
	var hasMinMax bool

	processChild := func(child *Node, code Code) {
		assert.Assertf(child != nil, "internal node is missing a child at %s", code)

		if !child.IsLeaf() {
			stack = append(stack, stackItem{node: child, code: code})
			return
		}

		codes[child.symbol] = code
		size := code.Size
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		var bit byte
		switch x {
		case 0:
			bit = 0
		case 1:
			bit = 1
		default:
			stack = stack[:len(stack)-1]
			continue
		}

		code, ok := top.code.Append(bit)
		if !ok {
			return CodeTable{}, ErrCodeTooLong
		}
		processChild(top.node.Child(bit), code)
	}

	symbols := make(bySymbol, 0, len(codes))
	for sym := range codes {
		symbols = append(symbols, sym)
	}
	symbols.Sort()

	return CodeTable{
		codes:   codes,
		symbols: symbols,
		minSize: minSize,
		maxSize: maxSize,
	}, nil
}

// Lookup returns the codeword for the given Symbol.  The second return value
// is false if the Symbol has no codeword.
func (ct CodeTable) Lookup(sym Symbol) (Code, bool) {
	hc, found := ct.codes[sym]
	return hc, found
}

// Len returns the number of symbols in the table.
func (ct CodeTable) Len() int {
	return len(ct.symbols)
}

// Symbols returns the symbols in the table in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(ct.symbols))
	copy(out, ct.symbols)
	return out
}

// MinSize is the bit length of the shortest codeword.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest codeword.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Degenerate returns true iff the table was built from a single-symbol
// alphabet and therefore uses the fixed codeword "0".
func (ct CodeTable) Degenerate() bool {
	return ct.degenerate
}

// EncodedSize returns the number of bits that encoding an input with the
// given frequencies would produce.  Symbols missing from this table are
// ignored.  The result saturates at math.MaxUint64.
func (ct CodeTable) EncodedSize(ft FrequencyTable) uint64 {
	var total uint64
	ft.Each(func(sym Symbol, count uint64) {
		hc, found := ct.codes[sym]
		if !found {
			return
		}
		hi, lo := mathbits.Mul64(count, uint64(hc.Size))
		if hi != 0 {
			lo = math.MaxUint64
		}
		total = addSaturating(total, lo)
	})
	return total
}

// Dump writes a programmer-readable debugging dump of the table's current
// state to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	fmt.Fprintf(&buf, "\tDegenerate() = %t\n", ct.degenerate)
	for _, sym := range ct.symbols {
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", sym, ct.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

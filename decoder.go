package huffman

import (
	"bytes"
	"errors"
	"io"

	"github.com/icza/bitio"
)

// Decode recovers the original symbols from a Bitstream produced by Encode.
// The tree is rebuilt from the FrequencyTable alone, using the same
// deterministic construction as BuildCodeTable.
//
// Decode returns a *CorruptStreamError if the stream ends in the middle of a
// codeword, or if a bit selects a branch that does not exist.  No partial
// output is returned on error.
//
func Decode(bs Bitstream, ft FrequencyTable) ([]Symbol, error) {
	return DecodeFrom(bytes.NewReader(bs.data), bs.size, ft)
}

// DecodeFrom is like Decode, but reads exactly size bits of packed data from
// r.  Padding after the last valid bit is ignored.  If r is not an
// io.ByteReader, it may be read past the last valid byte.
func DecodeFrom(r io.Reader, size int64, ft FrequencyTable) ([]Symbol, error) {
	if size < 0 {
		return nil, &CorruptStreamError{Offset: 0, Reason: "negative bit count"}
	}

	root, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}

	if root == nil {
		if size != 0 {
			return nil, &CorruptStreamError{Offset: 0, Reason: "stream has bits but the frequency table is empty"}
		}
		return []Symbol{}, nil
	}

	var out []Symbol
	if total := ft.Total(); total <= uint64(size) {
		out = make([]Symbol, 0, total)
	}

	// A lone leaf cannot be walked: its only codeword is "0", read one bit
	// at a time without descending.
	degenerate := root.IsLeaf()

	br := bitio.NewReader(r)
	node := root
	for offset := int64(0); offset < size; offset++ {
		bit, err := br.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, &CorruptStreamError{Offset: offset, Reason: "unexpected end of data"}
			}
			return nil, err
		}

		if degenerate {
			if bit {
				return nil, &CorruptStreamError{Offset: offset, Reason: "single-symbol stream contains a 1 bit"}
			}
			out = append(out, root.symbol)
			continue
		}

		child := node.Left()
		if bit {
			child = node.Right()
		}
		if child == nil {
			return nil, &CorruptStreamError{Offset: offset, Reason: "bit selects a missing branch"}
		}

		if child.IsLeaf() {
			out = append(out, child.symbol)
			node = root
		} else {
			node = child
		}
	}

	if node != root {
		return nil, &CorruptStreamError{Offset: size, Reason: "stream ends in the middle of a codeword"}
	}
	if out == nil {
		out = []Symbol{}
	}
	return out, nil
}

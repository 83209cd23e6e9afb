package huffman

import (
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encode replaces each Symbol of the input with its codeword from the given
// CodeTable and packs the result into a Bitstream.
//
// If any Symbol has no codeword, Encode returns an *UnknownSymbolError and
// no Bitstream.
//
func Encode(input []Symbol, ct CodeTable) (Bitstream, error) {
	var buf bytes.Buffer
	buf.Grow(int(bytesForBits(int64(len(input)) * int64(ct.minSize))))

	size, err := EncodeTo(&buf, input, ct)
	if err != nil {
		return Bitstream{}, err
	}
	return Bitstream{data: buf.Bytes(), size: size}, nil
}

// EncodeTo is like Encode, but streams the packed bits to w.  The final byte
// is zero padded.  It returns the number of valid bits written.
//
// Every Symbol is checked before anything is written, so an
// *UnknownSymbolError never leaves a partial stream behind.
//
func EncodeTo(w io.Writer, input []Symbol, ct CodeTable) (int64, error) {
	for index, sym := range input {
		if _, found := ct.codes[sym]; !found {
			return 0, &UnknownSymbolError{Symbol: sym, Index: index}
		}
	}

	bw := bitio.NewCountWriter(w)
	for _, sym := range input {
		hc := ct.codes[sym]
		assert.Assertf(hc.Size != 0, "symbol %d has an empty codeword", sym)
		if err := bw.WriteBits(hc.Bits, hc.Size); err != nil {
			return 0, err
		}
	}

	size := bw.BitsCount
	if err := bw.Close(); err != nil {
		return 0, err
	}
	return size, nil
}

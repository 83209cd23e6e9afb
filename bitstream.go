package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Bitstream is a packed sequence of bits.  Bits are stored most significant
// bit first within each byte, and Len records exactly how many bits are
// valid; the unused low bits of the final byte are zero.
type Bitstream struct {
	data []byte
	size int64
}

// NewBitstream wraps packed data holding size valid bits.  The data is
// copied.  It returns an error if data is too short for size bits.
func NewBitstream(data []byte, size int64) (Bitstream, error) {
	if size < 0 {
		return Bitstream{}, fmt.Errorf("negative bit count %d", size)
	}
	need := bytesForBits(size)
	if int64(len(data)) < need {
		return Bitstream{}, fmt.Errorf("%d bits need %d bytes, got %d", size, need, len(data))
	}
	copied := make([]byte, need)
	copy(copied, data[:need])
	if rem := size % 8; rem != 0 {
		copied[need-1] &^= byte(0xff) >> rem
	}
	return Bitstream{data: copied, size: size}, nil
}

// ParseBitstream parses a string of '0' and '1' characters, ignoring spaces.
func ParseBitstream(s string) (Bitstream, error) {
	var buf bytes.Buffer
	w := bitio.NewCountWriter(&buf)
	for i, ch := range s {
		switch ch {
		case '0', '1':
			if err := w.WriteBool(ch == '1'); err != nil {
				return Bitstream{}, err
			}
		case ' ':
		default:
			return Bitstream{}, fmt.Errorf("invalid character %q at index %d", ch, i)
		}
	}
	size := w.BitsCount
	if err := w.Close(); err != nil {
		return Bitstream{}, err
	}
	return Bitstream{data: buf.Bytes(), size: size}, nil
}

// Len returns the number of valid bits.
func (bs Bitstream) Len() int64 {
	return bs.size
}

// Bytes returns a copy of the packed bits, zero padded to a whole byte.
func (bs Bitstream) Bytes() []byte {
	out := make([]byte, len(bs.data))
	copy(out, bs.data)
	return out
}

// Bit returns the i'th bit, counting from 0.
func (bs Bitstream) Bit(i int64) byte {
	if i < 0 || i >= bs.size {
		panic(fmt.Errorf("bit index %d out of range [0, %d)", i, bs.size))
	}
	return (bs.data[i/8] >> (7 - uint(i%8))) & 1
}

// Truncate returns the first n bits of this Bitstream.
func (bs Bitstream) Truncate(n int64) Bitstream {
	if n >= bs.size {
		return bs
	}
	out, err := NewBitstream(bs.data, n)
	if err != nil {
		panic(err)
	}
	return out
}

// String returns the bits as a string of '0' and '1' characters.
func (bs Bitstream) String() string {
	var sb strings.Builder
	sb.Grow(int(bs.size))
	for i := int64(0); i < bs.size; i++ {
		sb.WriteByte('0' + bs.Bit(i))
	}
	return sb.String()
}

var _ fmt.Stringer = Bitstream{}

func bytesForBits(size int64) int64 {
	return (size + 7) / 8
}

package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the maximum number of bits in a single Code.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Only the Size least
	// significant bits are used, and the most significant of those is the
	// first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxCodeSize, "size %d > MaxCodeSize %d", size, MaxCodeSize)
	return Code{Size: size, Bits: bits & sizeMask(size)}
}

// Bit returns the i'th bit of this Code, counting from 0 at the first bit.
func (hc Code) Bit(i byte) byte {
	assert.Assertf(i < hc.Size, "bit index %d out of range for code of size %d", i, hc.Size)
	return byte(hc.Bits>>(hc.Size-1-i)) & 1
}

// Append returns the Code extended by one bit.  The second return value is
// false if the Code is already MaxCodeSize bits long.
func (hc Code) Append(bit byte) (Code, bool) {
	if hc.Size >= MaxCodeSize {
		return hc, false
	}
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}, true
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

func sizeMask(size byte) uint64 {
	if size >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << size) - 1
}

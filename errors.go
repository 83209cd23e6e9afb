package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptStream is matched by every *CorruptStreamError.
	ErrCorruptStream = errors.New("corrupt Huffman stream")

	// ErrDegenerateAlphabet is matched by every *DegenerateAlphabetError.
	ErrDegenerateAlphabet = errors.New("degenerate Huffman alphabet")

	// ErrCodeTooLong is returned when a tree is so unbalanced that some
	// codeword would exceed MaxCodeSize bits.
	ErrCodeTooLong = fmt.Errorf("Huffman codeword exceeds %d bits", MaxCodeSize)

	// ErrWeightOverflow is returned when the weights of two subtrees
	// cannot be summed without overflowing.
	ErrWeightOverflow = errors.New("Huffman tree weight overflows uint64")
)

// UnknownSymbolError is returned by Encode when the input contains a Symbol
// which has no entry in the CodeTable.
type UnknownSymbolError struct {
	Symbol Symbol
	Index  int
}

// Error fulfills the error interface.
func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %d at input index %d has no Huffman code", err.Symbol, err.Index)
}

// CorruptStreamError is returned by Decode when the bit stream does not
// resolve cleanly into leaves of the tree.
type CorruptStreamError struct {
	// Offset is the bit offset at which the problem was detected.
	Offset int64

	// Reason is a short description of the problem.
	Reason string
}

// Error fulfills the error interface.
func (err *CorruptStreamError) Error() string {
	return fmt.Sprintf("corrupt Huffman stream at bit %d: %s", err.Offset, err.Reason)
}

// Is returns true if target is ErrCorruptStream.
func (err *CorruptStreamError) Is(target error) bool {
	return target == ErrCorruptStream
}

// DegenerateAlphabetError signals that a tree consists of a single leaf, so
// its Symbol was assigned the fixed codeword "0" instead of a codeword found
// by traversal.  GenerateCodeTable returns it alongside a usable CodeTable.
type DegenerateAlphabetError struct {
	Symbol Symbol
}

// Error fulfills the error interface.
func (err *DegenerateAlphabetError) Error() string {
	return fmt.Sprintf("degenerate Huffman alphabet: symbol %d is the only symbol and uses the fixed code %s", err.Symbol, degenerateCode)
}

// Is returns true if target is ErrDegenerateAlphabet.
func (err *DegenerateAlphabetError) Is(target error) bool {
	return target == ErrDegenerateAlphabet
}

// InvalidFrequencyError is returned when a FrequencyTable is constructed from
// counts that no input could have produced.
type InvalidFrequencyError struct {
	Symbol Symbol
	Count  uint64
	Reason string
}

// Error fulfills the error interface.
func (err *InvalidFrequencyError) Error() string {
	return fmt.Sprintf("invalid frequency table entry {%d, %d}: %s", err.Symbol, err.Count, err.Reason)
}

// FormatError is returned by ReadContainer when the input is not a valid
// container.
type FormatError struct {
	Reason string
	Err    error
}

// Error fulfills the error interface.
func (err *FormatError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("invalid Huffman container: %s: %v", err.Reason, err.Err)
	}
	return fmt.Sprintf("invalid Huffman container: %s", err.Reason)
}

// Unwrap returns the underlying I/O error, if any.
func (err *FormatError) Unwrap() error {
	return err.Err
}

var (
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*CorruptStreamError)(nil)
	_ error = (*DegenerateAlphabetError)(nil)
	_ error = (*InvalidFrequencyError)(nil)
	_ error = (*FormatError)(nil)
)

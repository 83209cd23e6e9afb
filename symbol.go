package huffman

import (
	"math"
	"unicode/utf8"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is in the range [0, MaxSymbol].
func (sym Symbol) IsValid() bool {
	return sym >= 0
}

// SymbolsFromBytes converts each byte of the input into one Symbol.
func SymbolsFromBytes(p []byte) []Symbol {
	out := make([]Symbol, len(p))
	for i, b := range p {
		out[i] = Symbol(b)
	}
	return out
}

// SymbolsFromString converts each rune of the input into one Symbol.  Invalid
// UTF-8 sequences become utf8.RuneError, as with a range loop.
func SymbolsFromString(s string) []Symbol {
	out := make([]Symbol, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}

// BytesFromSymbols is the inverse of SymbolsFromBytes.  It returns false if
// any Symbol is outside the range of a byte.
func BytesFromSymbols(symbols []Symbol) ([]byte, bool) {
	out := make([]byte, len(symbols))
	for i, sym := range symbols {
		if sym < 0 || sym > math.MaxUint8 {
			return nil, false
		}
		out[i] = byte(sym)
	}
	return out, true
}

// StringFromSymbols is the inverse of SymbolsFromString.
func StringFromSymbols(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for i, sym := range symbols {
		runes[i] = rune(sym)
	}
	return string(runes)
}

package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
)

// FrequencyTable maps each Symbol of an input to its number of occurrences.
// Every count is positive.  A FrequencyTable is immutable once built; the
// zero value is an empty table.
type FrequencyTable struct {
	counts  map[Symbol]uint64
	symbols []Symbol
	total   uint64
}

// BuildFrequencyTable counts the occurrences of each distinct Symbol in the
// input.  An empty input yields an empty table.
func BuildFrequencyTable(input []Symbol) FrequencyTable {
	counts := make(map[Symbol]uint64)
	for _, sym := range input {
		counts[sym]++
	}
	return makeFrequencyTable(counts)
}

// BuildFrequencyTableParallel is equivalent to BuildFrequencyTable, but splits
// the input into up to numParts contiguous parts which are counted
// concurrently and then merged.
func BuildFrequencyTableParallel(input []Symbol, numParts int) FrequencyTable {
	if numParts <= 1 || len(input) < numParts {
		return BuildFrequencyTable(input)
	}

	partLen := (len(input) + numParts - 1) / numParts
	parts := make([]FrequencyTable, numParts)

	var wg sync.WaitGroup
	for i := 0; i < numParts; i++ {
		lo := i * partLen
		hi := lo + partLen
		if lo > len(input) {
			lo = len(input)
		}
		if hi > len(input) {
			hi = len(input)
		}
		wg.Add(1)
		go func(i int, part []Symbol) {
			defer wg.Done()
			parts[i] = BuildFrequencyTable(part)
		}(i, input[lo:hi])
	}
	wg.Wait()

	return MergeFrequencyTables(parts...)
}

// MergeFrequencyTables returns a table whose counts are the sums of the
// counts in the given tables.
func MergeFrequencyTables(tables ...FrequencyTable) FrequencyTable {
	counts := make(map[Symbol]uint64)
	for _, ft := range tables {
		for sym, count := range ft.counts {
			counts[sym] += count
		}
	}
	return makeFrequencyTable(counts)
}

// NewFrequencyTable constructs a FrequencyTable from explicit counts, such as
// a table received from the encoding side.  The map is copied.  Invalid
// symbols and zero counts are rejected.
func NewFrequencyTable(counts map[Symbol]uint64) (FrequencyTable, error) {
	copied := make(map[Symbol]uint64, len(counts))
	for sym, count := range counts {
		if !sym.IsValid() {
			return FrequencyTable{}, &InvalidFrequencyError{Symbol: sym, Count: count, Reason: "invalid symbol"}
		}
		if count == 0 {
			return FrequencyTable{}, &InvalidFrequencyError{Symbol: sym, Count: count, Reason: "zero count"}
		}
		copied[sym] = count
	}
	return makeFrequencyTable(copied), nil
}

func makeFrequencyTable(counts map[Symbol]uint64) FrequencyTable {
	symbols := make(bySymbol, 0, len(counts))
	var total uint64
	for sym, count := range counts {
		symbols = append(symbols, sym)
		total = addSaturating(total, count)
	}
	symbols.Sort()
	return FrequencyTable{counts: counts, symbols: symbols, total: total}
}

// Validate returns an *InvalidFrequencyError if the table holds a Symbol
// outside [0, MaxSymbol].  BuildFrequencyTable counts whatever it is given, so
// a table built from untrusted symbols must pass Validate before it can be
// turned into a tree or persisted.
func (ft FrequencyTable) Validate() error {
	// symbols is sorted ascending, so any negative Symbol comes first.
	if len(ft.symbols) != 0 && !ft.symbols[0].IsValid() {
		sym := ft.symbols[0]
		return &InvalidFrequencyError{Symbol: sym, Count: ft.counts[sym], Reason: "invalid symbol"}
	}
	return nil
}

// Len returns the number of distinct symbols in the table.
func (ft FrequencyTable) Len() int {
	return len(ft.symbols)
}

// Count returns the number of occurrences of the given Symbol, or 0 if the
// Symbol is not in the table.
func (ft FrequencyTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Total returns the sum of all counts, i.e. the length of the input.  The sum
// saturates at math.MaxUint64.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the distinct symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.symbols))
	copy(out, ft.symbols)
	return out
}

// Each calls fn for each (Symbol, count) pair in ascending Symbol order.
func (ft FrequencyTable) Each(fn func(sym Symbol, count uint64)) {
	for _, sym := range ft.symbols {
		fn(sym, ft.counts[sym])
	}
}

// Equal returns true iff both tables hold identical counts.
func (ft FrequencyTable) Equal(other FrequencyTable) bool {
	if len(ft.symbols) != len(other.symbols) {
		return false
	}
	for _, sym := range ft.symbols {
		if ft.counts[sym] != other.counts[sym] {
			return false
		}
	}
	return true
}

// String returns a brief description of this FrequencyTable.
func (ft FrequencyTable) String() string {
	return fmt.Sprintf("(frequency table with %d symbols, %d total occurrences)", len(ft.symbols), ft.total)
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, sym := range ft.symbols {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", sym, ft.counts[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type jsonEntry struct {
	Symbol Symbol `json:"symbol"`
	Count  uint64 `json:"count"`
}

// MarshalJSON renders the table as an array of {symbol, count} objects in
// ascending Symbol order.
func (ft FrequencyTable) MarshalJSON() ([]byte, error) {
	entries := make([]jsonEntry, 0, len(ft.symbols))
	ft.Each(func(sym Symbol, count uint64) {
		entries = append(entries, jsonEntry{sym, count})
	})
	return json.Marshal(entries)
}

// UnmarshalJSON is the inverse of MarshalJSON.  Duplicate symbols are
// rejected.
func (ft *FrequencyTable) UnmarshalJSON(raw []byte) error {
	var entries []jsonEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return err
	}
	counts := make(map[Symbol]uint64, len(entries))
	for _, e := range entries {
		if _, found := counts[e.Symbol]; found {
			return &InvalidFrequencyError{Symbol: e.Symbol, Count: e.Count, Reason: "duplicate symbol"}
		}
		counts[e.Symbol] = e.Count
	}
	table, err := NewFrequencyTable(counts)
	if err != nil {
		return err
	}
	*ft = table
	return nil
}

var (
	_ fmt.Stringer     = FrequencyTable{}
	_ json.Marshaler   = FrequencyTable{}
	_ json.Unmarshaler = (*FrequencyTable)(nil)
)

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}

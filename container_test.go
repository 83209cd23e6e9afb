package huffman

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestWriteContainer(t *testing.T) {
	input := SymbolsFromString("a")
	ft := BuildFrequencyTable(input)
	ct, err := BuildCodeTable(ft)
	if err != nil {
		t.Fatalf("BuildCodeTable failed: %v", err)
	}
	bs, err := Encode(input, ct)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := WriteContainer(&buf, ft, bs)
	if err != nil {
		t.Fatalf("WriteContainer failed: %v", err)
	}

	expect := []byte{'H', 'U', 'F', 'Q', 0x01, 0x01, 0x61, 0x01, 0x01, 0x00}
	if !bytes.Equal(expect, buf.Bytes()) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, buf.Bytes())
	}
	if n != int64(len(expect)) {
		t.Errorf("expected %d bytes written, got %d", len(expect), n)
	}
}

func TestReadContainer_RoundTrip(t *testing.T) {
	input := SymbolsFromString("the quick brown fox jumps over the lazy dog, 日本語")
	ft := BuildFrequencyTable(input)
	ct, err := BuildCodeTable(ft)
	if err != nil {
		t.Fatalf("BuildCodeTable failed: %v", err)
	}
	bs, err := Encode(input, ct)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var buf bytes.Buffer
	if _, err := WriteContainer(&buf, ft, bs); err != nil {
		t.Fatalf("WriteContainer failed: %v", err)
	}

	// Hide bytes.Buffer's ReadByte so that the buffered path is exercised.
	ft2, bs2, err := ReadContainer(struct{ io.Reader }{&buf})
	if err != nil {
		t.Fatalf("ReadContainer failed: %v", err)
	}
	if !ft.Equal(ft2) {
		t.Errorf("tables differ:\n\texpect: %v\n\tactual: %v", ft, ft2)
	}
	if bs.String() != bs2.String() {
		t.Errorf("streams differ:\n\texpect: %s\n\tactual: %s", bs, bs2)
	}

	output, err := Decode(bs2, ft2)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !equalSymbols(input, output) {
		t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", input, output)
	}
}

func TestReadContainer_Empty(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteContainer(&buf, FrequencyTable{}, Bitstream{}); err != nil {
		t.Fatalf("WriteContainer failed: %v", err)
	}
	ft, bs, err := ReadContainer(&buf)
	if err != nil {
		t.Fatalf("ReadContainer failed: %v", err)
	}
	if ft.Len() != 0 || bs.Len() != 0 {
		t.Errorf("expected empty table and stream, got %v and %d bits", ft, bs.Len())
	}
}

func TestReadContainer_Invalid(t *testing.T) {
	type testRow struct {
		name       string
		data       []byte
		unexpected bool
	}

	testData := [...]testRow{
		{name: "bad-magic", data: []byte{'H', 'U', 'F', 'X', 0x01, 0x00, 0x00}},
		{name: "bad-version", data: []byte{'H', 'U', 'F', 'Q', 0x02, 0x00, 0x00}},
		{name: "short-header", data: []byte{'H', 'U'}, unexpected: true},
		{name: "descending", data: []byte{'H', 'U', 'F', 'Q', 0x01, 0x02, 0x62, 0x01, 0x61, 0x01, 0x02, 0x40}},
		{name: "duplicate", data: []byte{'H', 'U', 'F', 'Q', 0x01, 0x02, 0x61, 0x01, 0x61, 0x01, 0x02, 0x40}},
		{name: "zero-count", data: []byte{'H', 'U', 'F', 'Q', 0x01, 0x01, 0x61, 0x00, 0x01, 0x00}},
		{name: "short-table", data: []byte{'H', 'U', 'F', 'Q', 0x01, 0x02, 0x61, 0x01}, unexpected: true},
		{name: "short-payload", data: []byte{'H', 'U', 'F', 'Q', 0x01, 0x02, 0x61, 0x01, 0x62, 0x01, 0x09, 0x40}, unexpected: true},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, _, err := ReadContainer(bytes.NewReader(row.data))
			var format *FormatError
			if !errors.As(err, &format) {
				t.Fatalf("expected *FormatError, got %v", err)
			}
			if row.unexpected && !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
			}
		})
	}
}

func TestWriteContainer_InvalidSymbol(t *testing.T) {
	type testRow struct {
		name  string
		table FrequencyTable
		sym   Symbol
	}

	testData := [...]testRow{
		{name: "built", table: BuildFrequencyTable([]Symbol{-5, 1, 1, -5, 2}), sym: -5},
		{name: "merged", table: MergeFrequencyTables(BuildFrequencyTable([]Symbol{1}), BuildFrequencyTable([]Symbol{InvalidSymbol})), sym: InvalidSymbol},
		{name: "parallel", table: BuildFrequencyTableParallel([]Symbol{3, 4, 5, -2, 6, 7}, 3), sym: -2},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := WriteContainer(&buf, row.table, Bitstream{})
			var invalid *InvalidFrequencyError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidFrequencyError, got %v", err)
			}
			if invalid.Symbol != row.sym {
				t.Errorf("expected symbol %d, got %d", row.sym, invalid.Symbol)
			}
			if n != 0 || buf.Len() != 0 {
				t.Errorf("expected nothing written, got n=%d and %d buffered bytes", n, buf.Len())
			}
		})
	}
}

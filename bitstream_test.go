package huffman

import (
	"bytes"
	"testing"
)

func TestParseBitstream(t *testing.T) {
	bs, err := ParseBitstream("1010 1100 101")
	if err != nil {
		t.Fatalf("ParseBitstream failed: %v", err)
	}
	if bs.Len() != 11 {
		t.Errorf("expected 11 bits, got %d", bs.Len())
	}
	if expect := []byte{0xac, 0xa0}; !bytes.Equal(expect, bs.Bytes()) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, bs.Bytes())
	}
	if expect, actual := "10101100101", bs.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	if _, err := ParseBitstream("0102"); err == nil {
		t.Errorf("ParseBitstream accepted '2'")
	}
}

func TestNewBitstream(t *testing.T) {
	bs, err := NewBitstream([]byte{0xff, 0xff, 0xff}, 12)
	if err != nil {
		t.Fatalf("NewBitstream failed: %v", err)
	}
	if expect := []byte{0xff, 0xf0}; !bytes.Equal(expect, bs.Bytes()) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, bs.Bytes())
	}

	if _, err := NewBitstream([]byte{0xff}, 9); err == nil {
		t.Errorf("NewBitstream accepted 1 byte for 9 bits")
	}
	if _, err := NewBitstream(nil, -1); err == nil {
		t.Errorf("NewBitstream accepted a negative bit count")
	}
}

func TestBitstream_Truncate(t *testing.T) {
	bs, err := ParseBitstream("11111111 1")
	if err != nil {
		t.Fatalf("ParseBitstream failed: %v", err)
	}

	type testRow struct {
		n      int64
		expect string
	}

	testData := [...]testRow{
		{n: 0, expect: ""},
		{n: 3, expect: "111"},
		{n: 8, expect: "11111111"},
		{n: 9, expect: "111111111"},
		{n: 20, expect: "111111111"},
	}
	for _, row := range testData {
		actual := bs.Truncate(row.n).String()
		if actual != row.expect {
			t.Errorf("Truncate(%d): expected %q, got %q", row.n, row.expect, actual)
		}
	}

	if expect := []byte{0xe0}; !bytes.Equal(expect, bs.Truncate(3).Bytes()) {
		t.Errorf("Truncate(3) left stale padding bits: %#v", bs.Truncate(3).Bytes())
	}
}

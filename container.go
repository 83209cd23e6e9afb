package huffman

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// containerMagic identifies a container produced by WriteContainer.
const containerMagic = "HUFQ"

// containerVersion is the only container version understood by this package.
const containerVersion = 1

// WriteContainer persists a FrequencyTable together with the Bitstream that
// was encoded from it, so that ReadContainer can later hand both to Decode.
//
// Layout: magic "HUFQ", version byte, uvarint symbol count, then for each
// symbol in ascending order a uvarint symbol and a uvarint count, then a
// uvarint bit count followed by the packed bits.
//
func WriteContainer(w io.Writer, ft FrequencyTable, bs Bitstream) (int64, error) {
	if err := ft.Validate(); err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	var scratch [binary.MaxVarintLen64]byte
	writeUvarint := func(x uint64) {
		n := binary.PutUvarint(scratch[:], x)
		_, _ = bw.Write(scratch[:n])
	}

	_, _ = bw.WriteString(containerMagic)
	_ = bw.WriteByte(containerVersion)
	writeUvarint(uint64(ft.Len()))
	ft.Each(func(sym Symbol, count uint64) {
		writeUvarint(uint64(sym))
		writeUvarint(count)
	})
	writeUvarint(uint64(bs.size))
	_, _ = bw.Write(bs.data)

	// bufio.Writer latches the first error and reports it on Flush.
	err := bw.Flush()
	return cw.n, err
}

// ReadContainer reads a container written by WriteContainer.  Malformed
// input yields a *FormatError.
func ReadContainer(r io.Reader) (FrequencyTable, Bitstream, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		buffered := bufio.NewReader(r)
		br, r = buffered, buffered
	}

	fail := func(reason string, err error) (FrequencyTable, Bitstream, error) {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return FrequencyTable{}, Bitstream{}, &FormatError{Reason: reason, Err: err}
	}

	var header [len(containerMagic) + 1]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return fail("short header", err)
	}
	if string(header[:len(containerMagic)]) != containerMagic {
		return fail("bad magic number", nil)
	}
	if header[len(containerMagic)] != containerVersion {
		return fail("unsupported version", nil)
	}

	numSymbols, err := binary.ReadUvarint(br)
	if err != nil {
		return fail("reading symbol count", err)
	}
	if numSymbols > uint64(MaxSymbol)+1 {
		return fail("symbol count out of range", nil)
	}

	counts := make(map[Symbol]uint64)
	prev := InvalidSymbol
	for i := uint64(0); i < numSymbols; i++ {
		raw, err := binary.ReadUvarint(br)
		if err != nil {
			return fail("reading symbol", err)
		}
		if raw > math.MaxInt32 {
			return fail("symbol out of range", nil)
		}
		sym := Symbol(raw)
		if sym <= prev {
			return fail("symbols not in ascending order", nil)
		}
		count, err := binary.ReadUvarint(br)
		if err != nil {
			return fail("reading count", err)
		}
		if count == 0 {
			return fail("zero count", nil)
		}
		counts[sym] = count
		prev = sym
	}

	size, err := binary.ReadUvarint(br)
	if err != nil {
		return fail("reading bit count", err)
	}
	if size > math.MaxInt64-7 {
		return fail("bit count out of range", nil)
	}

	// The bit count is untrusted, so the payload grows as it arrives.
	var payload bytes.Buffer
	if _, err := io.CopyN(&payload, r, bytesForBits(int64(size))); err != nil {
		return fail("short payload", err)
	}

	bs, err := NewBitstream(payload.Bytes(), int64(size))
	if err != nil {
		return fail("payload", err)
	}
	return makeFrequencyTable(counts), bs, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

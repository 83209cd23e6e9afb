// Command huff compresses and decompresses files with a frequency-table
// Huffman code.
//
// Usage:
//
//     huff -mode encode -in FILE -out FILE.huf
//     huff -mode decode -in FILE.huf -out FILE
//
// The encoded file carries the frequency table needed to decode it.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	huffman "github.com/chronos-tachyon/freqhuff"
)

type options struct {
	mode  string
	in    string
	out   string
	runes bool
}

func main() {
	var opts options
	flag.StringVar(&opts.mode, "mode", "encode", "either \"encode\" or \"decode\"")
	flag.StringVar(&opts.in, "in", "", "input file (default stdin)")
	flag.StringVar(&opts.out, "out", "", "output file (default stdout)")
	flag.BoolVar(&opts.runes, "runes", false, "encode: treat the input as UTF-8 text and count runes instead of bytes")
	flag.Parse()

	logger := newLogger(os.Stderr)
	if err := run(opts, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(opts options, logger Logger) error {
	raw, err := readInput(opts.in)
	if err != nil {
		return err
	}

	var output []byte
	switch opts.mode {
	case "encode":
		output, err = encode(raw, opts.runes)
	case "decode":
		output, err = decode(raw)
	default:
		err = fmt.Errorf("unknown mode %q", opts.mode)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(opts.out, output); err != nil {
		return err
	}

	logger.Infof("%s: size before: %d bytes, size after: %d bytes", opts.mode, len(raw), len(output))
	return nil
}

func encode(raw []byte, runes bool) ([]byte, error) {
	var input []huffman.Symbol
	if runes {
		if !utf8.Valid(raw) {
			return nil, errors.New("input is not valid UTF-8")
		}
		input = huffman.SymbolsFromString(string(raw))
	} else {
		input = huffman.SymbolsFromBytes(raw)
	}

	ft := huffman.BuildFrequencyTable(input)
	ct, err := huffman.BuildCodeTable(ft)
	if err != nil {
		return nil, fmt.Errorf("building code table: %w", err)
	}
	bs, err := huffman.Encode(input, ct)
	if err != nil {
		return nil, fmt.Errorf("encoding: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteByte(symbolKind(runes))
	if _, err := huffman.WriteContainer(&buf, ft, bs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty input")
	}
	kind, raw := raw[0], raw[1:]
	if kind != symbolKind(false) && kind != symbolKind(true) {
		return nil, fmt.Errorf("unknown symbol kind %q", kind)
	}

	ft, bs, err := huffman.ReadContainer(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	symbols, err := huffman.Decode(bs, ft)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	if kind == symbolKind(true) {
		return []byte(huffman.StringFromSymbols(symbols)), nil
	}
	out, ok := huffman.BytesFromSymbols(symbols)
	if !ok {
		return nil, errors.New("decoded symbols do not fit in bytes")
	}
	return out, nil
}

func symbolKind(runes bool) byte {
	if runes {
		return 'r'
	}
	return 'b'
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o666)
}

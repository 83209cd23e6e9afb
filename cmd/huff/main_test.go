package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_RoundTrip(t *testing.T) {
	type testRow struct {
		name  string
		input string
		runes bool
	}

	testData := [...]testRow{
		{name: "bytes", input: strings.Repeat("random text for the huffman shell\n", 20)},
		{name: "runes", input: strings.Repeat("日本語のテキスト\n", 20), runes: true},
		{name: "empty", input: ""},
		{name: "degenerate", input: "aaaa"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			dir := t.TempDir()
			plain := filepath.Join(dir, "plain.txt")
			packed := filepath.Join(dir, "plain.txt.huf")
			unpacked := filepath.Join(dir, "unpacked.txt")

			if err := os.WriteFile(plain, []byte(row.input), 0o666); err != nil {
				t.Fatal(err)
			}

			var logBuf bytes.Buffer
			logger := newLogger(&logBuf)
			if err := run(options{mode: "encode", in: plain, out: packed, runes: row.runes}, logger); err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			if err := run(options{mode: "decode", in: packed, out: unpacked}, logger); err != nil {
				t.Fatalf("decode failed: %v", err)
			}

			actual, err := os.ReadFile(unpacked)
			if err != nil {
				t.Fatal(err)
			}
			if string(actual) != row.input {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.input, actual)
			}
			if !strings.Contains(logBuf.String(), "[INFO] encode: size before:") {
				t.Errorf("missing size report in log: %q", logBuf.String())
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.huf")
	if err := os.WriteFile(garbage, []byte("bHUFX"), 0o666); err != nil {
		t.Fatal(err)
	}

	logger := newLogger(&bytes.Buffer{})
	for _, opts := range []options{
		{mode: "bogus", in: garbage, out: filepath.Join(dir, "out")},
		{mode: "decode", in: garbage, out: filepath.Join(dir, "out")},
		{mode: "encode", in: filepath.Join(dir, "missing"), out: filepath.Join(dir, "out")},
	} {
		if err := run(opts, logger); err == nil {
			t.Errorf("run(%+v) succeeded", opts)
		}
	}
}

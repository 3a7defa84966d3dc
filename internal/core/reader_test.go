package core

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestNewDecodingReader_UTF8(t *testing.T) {
	r, err := newDecodingReader(strings.NewReader("héllo"), "utf-8")
	if err != nil {
		t.Fatalf("newDecodingReader() error = %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "héllo" {
		t.Errorf("decoded = %q, want %q", got, "héllo")
	}
}

func TestNewDecodingReader_Latin1(t *testing.T) {
	// "café" in latin1: é is the single byte 0xE9.
	input := []byte{'c', 'a', 'f', 0xE9}

	r, err := newDecodingReader(bytes.NewReader(input), "latin1")
	if err != nil {
		t.Fatalf("newDecodingReader() error = %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "café" {
		t.Errorf("decoded = %q, want %q", got, "café")
	}
}

func TestNewDecodingReader_UnsupportedEncoding(t *testing.T) {
	if _, err := newDecodingReader(strings.NewReader(""), "klingon-8"); err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}

func TestBOMSkippingReader(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"BOM stripped", []byte("\xEF\xBB\xBFemail;name"), "email;name"},
		{"no BOM untouched", []byte("email;name"), "email;name"},
		{"BOM only", []byte("\xEF\xBB\xBF"), ""},
		{"empty input", nil, ""},
		{"shorter than BOM", []byte("ab"), "ab"},
		{"BOM mid-stream kept", []byte("ab\xEF\xBB\xBFcd"), "ab\xEF\xBB\xBFcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(newBOMSkippingReader(bytes.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("read = %q, want %q", got, tt.want)
			}
		})
	}
}
